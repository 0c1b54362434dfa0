package entity

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
)

// NewEffect spawns a cosmetic sphere that shrinks or grows to endScale and
// fades out over fade seconds, and is destroyed after life seconds.
func NewEffect(w *ecs.World, kind component.EffectKind, pos mgl64.Vec3, c color.NRGBA, scale, endScale, fade, life float64) ecs.Entity {
	e := ecs.CreateEntity(w)
	start := mgl64.Vec3{scale, scale, scale}
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Scale: start})
	_ = ecs.Add(w, e, component.ModelComponent.Kind(), &component.Model{Primitive: component.PrimitiveSphere, Color: c, BaseColor: c})
	_ = ecs.Add(w, e, component.EffectComponent.Kind(), &component.Effect{Kind: kind})
	_ = ecs.Add(w, e, component.TweensComponent.Kind(), &component.Tweens{Items: []component.Tween{
		{Property: component.TweenScale, From: start, To: mgl64.Vec3{endScale, endScale, endScale}, Duration: fade},
		{Property: component.TweenAlpha, From: mgl64.Vec3{float64(c.A) / 255}, To: mgl64.Vec3{0}, Duration: fade},
	}})
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Seconds: life})
	return e
}
