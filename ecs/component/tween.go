package component

import "github.com/go-gl/mathgl/mgl64"

type TweenProperty int

const (
	TweenPositionY TweenProperty = iota
	TweenRotation
	TweenScale
	TweenAlpha
)

// Tween interpolates one property from From to To over Duration seconds.
// Scalar properties use the X component.
type Tween struct {
	Property TweenProperty
	From     mgl64.Vec3
	To       mgl64.Vec3
	Duration float64
	Elapsed  float64
	Curve    string
}

// Tweens holds the active tweens on an entity, at most one per property.
type Tweens struct {
	Items []Tween
}

// Set starts t, replacing any running tween of the same property.
func (ts *Tweens) Set(t Tween) {
	for i := range ts.Items {
		if ts.Items[i].Property == t.Property {
			ts.Items[i] = t
			return
		}
	}
	ts.Items = append(ts.Items, t)
}

var TweensComponent = NewComponent[Tweens]()
