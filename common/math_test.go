package common

import (
	"math"
	"testing"
)

func TestWrapAngle(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{720 + 45, 45},
	}
	for _, tt := range tests {
		if got := WrapAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLerpAngleShortestArc(t *testing.T) {
	if got := LerpAngle(170, -170, 0.5); math.Abs(WrapAngle(got)-180) > 1e-9 {
		t.Fatalf("LerpAngle across the seam = %v, want 180", got)
	}
	if got := LerpAngle(10, 50, 0.25); got != 20 {
		t.Fatalf("LerpAngle = %v, want 20", got)
	}
}

func TestSmoothFactor(t *testing.T) {
	if SmoothFactor(0, 1) != 0 || SmoothFactor(5, 0) != 0 {
		t.Fatalf("no rate or no time should not move")
	}
	if f := SmoothFactor(1000, 1); f <= 0.99 || f > 1 {
		t.Fatalf("large rate should approach 1 without overshoot, got %v", f)
	}
}

func TestCurves(t *testing.T) {
	for _, name := range []string{"linear", "out_cubic", "in_out_sine", "unknown"} {
		c := CurveByName(name)
		if math.Abs(c(0)) > 1e-9 || math.Abs(c(1)-1) > 1e-9 {
			t.Errorf("%s: curve must map 0->0 and 1->1, got %v %v", name, c(0), c(1))
		}
	}
	if CurveByName("out_cubic")(0.5) <= 0.5 {
		t.Fatalf("out_cubic should lead linear at the midpoint")
	}
}
