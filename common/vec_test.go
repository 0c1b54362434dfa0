package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// vecNear compares component-wise with an absolute tolerance, so a zero
// component matches float noise like 6e-17.
func vecNear(a, b mgl64.Vec3) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) >= 1e-9 {
			return false
		}
	}
	return true
}

func TestHeadingAndFacingDirAgree(t *testing.T) {
	tests := []struct {
		name string
		dir  mgl64.Vec3
		want float64
	}{
		{name: "forward is -z", dir: mgl64.Vec3{0, 0, -1}, want: 0},
		{name: "left", dir: mgl64.Vec3{-1, 0, 0}, want: 90},
		{name: "right", dir: mgl64.Vec3{1, 0, 0}, want: -90},
		{name: "back", dir: mgl64.Vec3{0, 0, 1}, want: 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Heading(tt.dir)
			if math.Abs(WrapAngle(got-tt.want)) > 1e-9 {
				t.Fatalf("Heading(%v) = %v, want %v", tt.dir, got, tt.want)
			}
			if back := FacingDir(got); !vecNear(back, tt.dir) {
				t.Fatalf("FacingDir(%v) = %v, want %v", got, back, tt.dir)
			}
		})
	}
}

func TestRotateYaw(t *testing.T) {
	muzzle := mgl64.Vec3{0, 2, -3}
	if got := RotateYaw(muzzle, 0); !vecNear(got, muzzle) {
		t.Fatalf("zero yaw changed the offset: %v", got)
	}
	// An entity facing +x (yaw -90) carries its forward offset along +x.
	if got := RotateYaw(muzzle, -90); !vecNear(got, mgl64.Vec3{3, 2, 0}) {
		t.Fatalf("RotateYaw(-90) = %v, want (3,2,0)", got)
	}
	if got := RotateYaw(mgl64.Vec3{0, 0, -1}, 30); !vecNear(got, FacingDir(30)) {
		t.Fatalf("rotated forward %v does not match FacingDir", got)
	}
}

func TestCameraBasis(t *testing.T) {
	if got := CameraForward(0, 0); !vecNear(got, mgl64.Vec3{0, 0, 1}) {
		t.Fatalf("CameraForward(0,0) = %v", got)
	}
	if got := CameraForward(90, 0); !vecNear(got, mgl64.Vec3{0, -1, 0}) {
		t.Fatalf("positive pitch should look down, got %v", got)
	}
	for _, yaw := range []float64{0, 45, 90, -135} {
		f := Flatten(CameraForward(20, yaw)).Normalize()
		r := CameraRight(yaw)
		if math.Abs(f.Dot(r)) > 1e-9 {
			t.Fatalf("yaw %v: right %v is not perpendicular to forward %v", yaw, r, f)
		}
	}
}

func TestNormalizeOrZero(t *testing.T) {
	if got := NormalizeOrZero(mgl64.Vec3{}); got != (mgl64.Vec3{}) {
		t.Fatalf("zero vector should stay zero, got %v", got)
	}
	if got := NormalizeOrZero(mgl64.Vec3{3, 0, 4}); !vecNear(got, mgl64.Vec3{0.6, 0, 0.8}) {
		t.Fatalf("got %v", got)
	}
}

func TestPitch(t *testing.T) {
	if got := Pitch(mgl64.Vec3{0, -1, 1}); math.Abs(got-45) > 1e-9 {
		t.Fatalf("Pitch down = %v, want 45", got)
	}
	if got := Pitch(mgl64.Vec3{1, 0, 0}); got != 0 {
		t.Fatalf("level pitch = %v", got)
	}
}
