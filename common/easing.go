package common

import "math"

// Curve maps progress t in [0, 1] onto eased progress in [0, 1].
type Curve func(t float64) float64

func Linear(t float64) float64 {
	return t
}

func OutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

func InOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// CurveByName resolves curve names used in prefab specs. Unknown names fall
// back to Linear.
func CurveByName(name string) Curve {
	switch name {
	case "out_cubic":
		return OutCubic
	case "in_out_sine":
		return InOutSine
	default:
		return Linear
	}
}
