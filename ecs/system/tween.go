package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/dragonfight/common"
	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
)

// TweenSystem advances property tweens and drops finished ones.
type TweenSystem struct{}

func NewTweenSystem() *TweenSystem {
	return &TweenSystem{}
}

func (s *TweenSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TweensComponent.Kind(), func(e ecs.Entity, ts *component.Tweens) {
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		model, _ := ecs.Get(w, e, component.ModelComponent.Kind())

		kept := ts.Items[:0]
		for _, tw := range ts.Items {
			tw.Elapsed += dt
			p := 1.0
			if tw.Duration > 0 {
				p = common.Clamp(tw.Elapsed/tw.Duration, 0, 1)
			}
			applyTween(tw, common.CurveByName(tw.Curve)(p), tr, model)
			if p < 1 {
				kept = append(kept, tw)
			}
		}
		ts.Items = kept
	})
}

func applyTween(tw component.Tween, k float64, tr *component.Transform, model *component.Model) {
	switch tw.Property {
	case component.TweenPositionY:
		if tr != nil {
			tr.Position[1] = common.Lerp(tw.From.X(), tw.To.X(), k)
		}
	case component.TweenRotation:
		if tr != nil {
			for i := 0; i < 3; i++ {
				tr.Rotation[i] = common.LerpAngle(tw.From[i], tw.To[i], k)
			}
		}
	case component.TweenScale:
		if tr != nil {
			tr.Scale = tw.From.Add(tw.To.Sub(tw.From).Mul(k))
		}
	case component.TweenAlpha:
		if model != nil {
			a := common.Clamp(common.Lerp(tw.From.X(), tw.To.X(), k), 0, 1)
			model.Color.A = uint8(a*255 + 0.5)
		}
	}
}

// StartTween tweens prop of e from its current value to `to` over duration
// seconds, replacing any running tween of the same property.
func StartTween(w *ecs.World, e ecs.Entity, prop component.TweenProperty, to mgl64.Vec3, duration float64, curve string) {
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	var from mgl64.Vec3
	switch prop {
	case component.TweenPositionY:
		if tr != nil {
			from = mgl64.Vec3{tr.Position.Y()}
		}
	case component.TweenRotation:
		if tr != nil {
			from = tr.Rotation
		}
	case component.TweenScale:
		if tr != nil {
			from = tr.Scale
		}
	case component.TweenAlpha:
		if m, ok := ecs.Get(w, e, component.ModelComponent.Kind()); ok {
			from = mgl64.Vec3{float64(m.Color.A) / 255}
		}
	}

	ts, ok := ecs.Get(w, e, component.TweensComponent.Kind())
	if !ok {
		ts = &component.Tweens{}
		if err := ecs.Add(w, e, component.TweensComponent.Kind(), ts); err != nil {
			return
		}
	}
	ts.Set(component.Tween{Property: prop, From: from, To: to, Duration: duration, Curve: curve})
}

// CancelTween stops a running tween of prop on e, leaving the property where
// it is.
func CancelTween(w *ecs.World, e ecs.Entity, prop component.TweenProperty) {
	ts, ok := ecs.Get(w, e, component.TweensComponent.Kind())
	if !ok {
		return
	}
	kept := ts.Items[:0]
	for _, tw := range ts.Items {
		if tw.Property != prop {
			kept = append(kept, tw)
		}
	}
	ts.Items = kept
}
