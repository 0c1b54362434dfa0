package system

import (
	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
)

// HUDSystem summarizes player and boss state for the renderer and keeps the
// most recent script message on screen for MessageDuration seconds.
type HUDSystem struct {
	MessageDuration float64
}

func NewHUDSystem() *HUDSystem {
	return &HUDSystem{MessageDuration: 3}
}

func (s *HUDSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	hudEnt, ok := ecs.First(w, component.HUDComponent.Kind())
	if !ok {
		return
	}
	hud, _ := ecs.Get(w, hudEnt, component.HUDComponent.Kind())

	if p, ok := ecs.First(w, component.PlayerStatusComponent.Kind()); ok {
		if hp, ok := ecs.Get(w, p, component.HealthComponent.Kind()); ok {
			hud.PlayerRatio = hp.Ratio()
			hud.PlayerBand = component.Band(hud.PlayerRatio)
		}
	}

	hud.BossVisible = false
	if b, ok := ecs.First(w, component.BossRuntimeComponent.Kind()); ok {
		rt, _ := ecs.Get(w, b, component.BossRuntimeComponent.Kind())
		hud.BossVisible = true
		hud.BossState = rt.State.String()
		if hp, ok := ecs.Get(w, b, component.HealthComponent.Kind()); ok {
			hud.BossRatio = hp.Ratio()
			hud.BossBand = component.Band(hud.BossRatio)
		}
	}

	if hud.MessageTime > 0 {
		hud.MessageTime -= dt
		if hud.MessageTime <= 0 {
			hud.MessageTime = 0
			hud.Message = ""
		}
	}

	for _, evt := range w.Events().Peek() {
		switch evt.Type {
		case ecs.EventGameOver:
			hud.GameOver = true
		case ecs.EventMessage:
			if msg, ok := evt.Data.(string); ok {
				hud.Message = msg
				hud.MessageTime = s.MessageDuration
			}
		}
	}
}
