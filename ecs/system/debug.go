package system

import (
	"log"

	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
)

// DebugSystem turns the debug-damage key into damage on the first living
// boss.
type DebugSystem struct {
	Damage float64
}

func NewDebugSystem() *DebugSystem {
	return &DebugSystem{Damage: 50}
}

func (s *DebugSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	pressed := false
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		pressed = pressed || in.DebugDamagePressed
	})
	if !pressed {
		return
	}

	ecs.ForEach(w, component.BossRuntimeComponent.Kind(), func(e ecs.Entity, rt *component.BossRuntime) {
		if !pressed || rt.State == component.BossDead {
			return
		}
		pressed = false
		log.Printf("debug: damaging boss %v by %.0f", e, s.Damage)
		DamageBoss(w, e, s.Damage)
	})
}
