package system

import (
	"image/color"

	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
)

// ApplyDamage routes damage to the intake rules of whatever e is: players
// honour invincibility, bosses their state machine, anything else with
// Health just loses hit points. It reports whether the damage landed.
func ApplyDamage(w *ecs.World, e ecs.Entity, amount float64) bool {
	switch {
	case ecs.Has(w, e, component.PlayerStatusComponent.Kind()):
		return DamagePlayer(w, e, amount)
	case ecs.Has(w, e, component.BossRuntimeComponent.Kind()):
		rt, _ := ecs.Get(w, e, component.BossRuntimeComponent.Kind())
		if rt.State == component.BossDead || !ecs.Has(w, e, component.HealthComponent.Kind()) {
			return false
		}
		DamageBoss(w, e, amount)
		return true
	default:
		hp, ok := ecs.Get(w, e, component.HealthComponent.Kind())
		if !ok || hp.Dead() {
			return false
		}
		died := hp.TakeDamage(amount)
		pushDamage(w, e, amount, hp)
		if died {
			w.Events().Push(ecs.Event{Type: ecs.EventDied, Data: e})
		}
		return true
	}
}

func pushDamage(w *ecs.World, e ecs.Entity, amount float64, hp *component.Health) {
	if amount < 0 {
		amount = 0
	}
	w.Events().Push(ecs.Event{Type: ecs.EventDamaged, Data: ecs.DamageEvent{Entity: e, Amount: amount, Remaining: hp.Current}})
}

// flashColor tints e's model and restores its base colour after d seconds.
// The restore is owned by e, so it never touches a destroyed entity.
func flashColor(w *ecs.World, e ecs.Entity, tint color.NRGBA, d float64) {
	m, ok := ecs.Get(w, e, component.ModelComponent.Kind())
	if !ok {
		return
	}
	m.Color = tint
	ecs.Schedule(w, e, d, func(w *ecs.World) {
		if m, ok := ecs.Get(w, e, component.ModelComponent.Kind()); ok {
			m.Color = m.BaseColor
		}
	})
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
