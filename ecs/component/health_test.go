package component

import "testing"

func TestHealthTakeDamage(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		amount   float64
		want     float64
		wantDead bool
	}{
		{name: "partial", start: 100, amount: 30, want: 70},
		{name: "exactly lethal", start: 100, amount: 100, want: 0, wantDead: true},
		{name: "overkill clamps to zero", start: 10, amount: 50, want: 0, wantDead: true},
		{name: "negative is ignored", start: 100, amount: -20, want: 100},
		{name: "zero damage", start: 100, amount: 0, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Health{Current: tt.start, Max: 100}
			if dead := h.TakeDamage(tt.amount); dead != tt.wantDead {
				t.Fatalf("dead = %v, want %v", dead, tt.wantDead)
			}
			if h.Current != tt.want {
				t.Fatalf("current = %v, want %v", h.Current, tt.want)
			}
		})
	}
}

func TestHealthHeal(t *testing.T) {
	h := Health{Current: 40, Max: 100}
	h.Heal(30)
	if h.Current != 70 {
		t.Fatalf("current = %v, want 70", h.Current)
	}
	h.Heal(500)
	if h.Current != 100 {
		t.Fatalf("heal must cap at max, got %v", h.Current)
	}
	h.Heal(-10)
	if h.Current != 100 {
		t.Fatalf("negative heal must be ignored, got %v", h.Current)
	}
}

func TestNewHealthAndRatio(t *testing.T) {
	h := NewHealth(500)
	if h.Current != 500 || h.Ratio() != 1 || h.Dead() {
		t.Fatalf("unexpected fresh health %+v", h)
	}
	if r := (Health{}).Ratio(); r != 0 {
		t.Fatalf("zero max ratio = %v, want 0", r)
	}
	if h := NewHealth(-5); h.Max != 0 {
		t.Fatalf("negative max should clamp, got %+v", h)
	}
}

func TestBand(t *testing.T) {
	tests := []struct {
		ratio float64
		want  HealthBand
	}{
		{1, HealthHealthy},
		{0.61, HealthHealthy},
		{0.6, HealthWarning},
		{0.31, HealthWarning},
		{0.3, HealthCritical},
		{0, HealthCritical},
	}
	for _, tt := range tests {
		if got := Band(tt.ratio); got != tt.want {
			t.Errorf("Band(%v) = %s, want %s", tt.ratio, got, tt.want)
		}
	}
}

func TestHealThenEqualDamageRestores(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		amount  float64
		want    float64
	}{
		{name: "room to heal", current: 40, amount: 30, want: 40},
		{name: "zero amount", current: 40, amount: 0, want: 40},
		{name: "heal capped at max", current: 90, amount: 30, want: 70},
		{name: "already full", current: 100, amount: 25, want: 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Health{Current: tt.current, Max: 100}
			h.Heal(tt.amount)
			h.TakeDamage(tt.amount)
			if h.Current != tt.want {
				t.Fatalf("current = %v, want %v", h.Current, tt.want)
			}
			if h.Current < 0 || h.Current > h.Max {
				t.Fatalf("current %v left [0, %v]", h.Current, h.Max)
			}
		})
	}
}

func TestCumulativeDamageKillsAtMax(t *testing.T) {
	tests := []struct {
		name     string
		hits     []float64
		wantDead bool
	}{
		{name: "short of max", hits: []float64{20, 30, 49}, wantDead: false},
		{name: "exactly max", hits: []float64{25, 25, 25, 25}, wantDead: true},
		{name: "past max", hits: []float64{60, 60}, wantDead: true},
		{name: "negatives do not count", hits: []float64{50, -50, 40}, wantDead: false},
		{name: "many small hits", hits: []float64{10, 10, 10, 10, 10, 10, 10, 10, 10, 10}, wantDead: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealth(100)
			var sum float64
			var dead bool
			for _, d := range tt.hits {
				dead = h.TakeDamage(d)
				if d > 0 {
					sum += d
				}
				if h.Current < 0 || h.Current > h.Max {
					t.Fatalf("current %v left [0, %v]", h.Current, h.Max)
				}
			}
			if (h.Current == 0) != (sum >= h.Max) || dead != tt.wantDead || h.Dead() != tt.wantDead {
				t.Fatalf("sum=%v current=%v dead=%v, want dead=%v", sum, h.Current, dead, tt.wantDead)
			}
		})
	}
}
