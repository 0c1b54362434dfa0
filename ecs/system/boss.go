package system

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
	"github.com/milk9111/dragonfight/ecs/entity"
	"golang.org/x/image/colornames"
)

type BossActionKind int

const (
	BossActionNone BossActionKind = iota
	BossActionFire
)

// BossAction is what one boss tick asks the world to do.
type BossAction struct {
	Kind   BossActionKind
	Origin mgl64.Vec3
	Target ecs.Entity
}

// bossContext bundles the components a boss state works on. It is rebuilt
// every time it is needed, since delayed tasks outlive any single frame.
type bossContext struct {
	w      *ecs.World
	e      ecs.Entity
	cfg    *component.Boss
	rt     *component.BossRuntime
	tr     *component.Transform
	model  *component.Model
	target ecs.Entity
}

func loadBossContext(w *ecs.World, e ecs.Entity) (*bossContext, bool) {
	cfg, ok := ecs.Get(w, e, component.BossComponent.Kind())
	if !ok {
		return nil, false
	}
	rt, ok := ecs.Get(w, e, component.BossRuntimeComponent.Kind())
	if !ok {
		return nil, false
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return nil, false
	}
	model, _ := ecs.Get(w, e, component.ModelComponent.Kind())
	return &bossContext{w: w, e: e, cfg: cfg, rt: rt, tr: tr, model: model, target: ecs.Entity(rt.Target)}, true
}

func (ctx *bossContext) changeState(next component.BossState) {
	from := ctx.rt.State
	if from == next {
		return
	}
	ctx.rt.State = next
	ctx.rt.StateTime = 0
	ctx.rt.Entered = append(ctx.rt.Entered, next)
	log.Printf("boss: entity=%v %s -> %s", ctx.e, from, next)
	ctx.w.Events().Push(ecs.Event{Type: ecs.EventBossState, Data: ecs.BossStateEvent{Entity: ctx.e, From: from.String(), To: next.String()}})
	bossStates[next].Enter(ctx)
}

// scheduleTransition moves the boss from -> to after delay seconds, unless
// the engagement it was scheduled in has ended by then.
func (ctx *bossContext) scheduleTransition(delay float64, from, to component.BossState) {
	epoch := ctx.rt.Epoch
	e := ctx.e
	ecs.Schedule(ctx.w, e, delay, func(w *ecs.World) {
		c, ok := loadBossContext(w, e)
		if !ok || !c.rt.InFight || c.rt.Epoch != epoch || c.rt.State != from {
			return
		}
		c.changeState(to)
	})
}

func (ctx *bossContext) playAnimation(name string) {
	if ctx.model == nil || name == "" {
		return
	}
	if !ctx.model.HasAnimation(name) {
		log.Printf("boss: entity=%v animation %q unavailable, keeping %q", ctx.e, name, ctx.model.Current)
		return
	}
	ctx.model.Current = name
}

func (ctx *bossContext) startFight() bool {
	if ctx.rt.InFight || ctx.rt.State == component.BossDead {
		return false
	}
	ctx.rt.InFight = true
	ctx.changeState(component.BossEngaging)
	return true
}

func (ctx *bossContext) stopFight() bool {
	if !ctx.rt.InFight || ctx.rt.State == component.BossDead {
		return false
	}
	ctx.rt.InFight = false
	ctx.rt.Epoch++
	ctx.changeState(component.BossIdle)
	return true
}

// StartFight engages the boss. It reports false, changing nothing, when the
// boss is already engaged or dead.
func StartFight(w *ecs.World, e ecs.Entity) bool {
	ctx, ok := loadBossContext(w, e)
	if !ok {
		return false
	}
	return ctx.startFight()
}

// StopFight disengages the boss and sends it back to its resting pose.
func StopFight(w *ecs.World, e ecs.Entity) bool {
	ctx, ok := loadBossContext(w, e)
	if !ok {
		return false
	}
	return ctx.stopFight()
}

// StepBoss runs one boss tick against the target's current position.
// Distance at or inside the trigger radius engages; outside disengages.
func StepBoss(w *ecs.World, e ecs.Entity, dt float64, targetPos mgl64.Vec3) BossAction {
	ctx, ok := loadBossContext(w, e)
	if !ok || ctx.rt.State == component.BossDead {
		return BossAction{}
	}
	ctx.rt.StateTime += dt

	if ctx.tr.Position.Sub(targetPos).Len() <= ctx.cfg.TriggerRadius {
		ctx.startFight()
	} else {
		ctx.stopFight()
	}
	return bossStates[ctx.rt.State].Update(ctx, dt, targetPos)
}

// DamageBoss applies damage and reports whether it killed the boss. A dead
// boss ignores damage.
func DamageBoss(w *ecs.World, e ecs.Entity, amount float64) bool {
	ctx, ok := loadBossContext(w, e)
	if !ok || ctx.rt.State == component.BossDead {
		return false
	}
	hp, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return false
	}

	died := hp.TakeDamage(amount)
	log.Printf("boss: entity=%v took %.0f damage, %.0f/%.0f left", e, amount, hp.Current, hp.Max)
	pushDamage(w, e, amount, hp)
	if !died {
		flashColor(w, e, nrgba(colornames.Orange), ctx.cfg.HitFlash)
		return false
	}

	ctx.rt.InFight = false
	ctx.changeState(component.BossDead)
	log.Printf("boss: entity=%v defeated", e)
	w.Events().Push(ecs.Event{Type: ecs.EventDied, Data: e})
	return true
}

// BossSystem ticks every boss against its target, spawns the fireballs they
// ask for and runs script hooks for the states they entered.
type BossSystem struct {
	scripts *bossScripts
}

func NewBossSystem() *BossSystem {
	return &BossSystem{scripts: newBossScripts()}
}

// ReloadScripts drops compiled boss scripts so they are read again.
func (s *BossSystem) ReloadScripts() {
	s.scripts.reset()
}

func (s *BossSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.BossRuntimeComponent.Kind(), func(e ecs.Entity, rt *component.BossRuntime) {
		target := ecs.Entity(rt.Target)
		tt, ok := ecs.Get(w, target, component.TransformComponent.Kind())
		if ok {
			if status, has := ecs.Get(w, target, component.PlayerStatusComponent.Kind()); has && !status.Alive {
				ok = false
			}
		}
		if !ok {
			StopFight(w, e)
		} else if action := StepBoss(w, e, dt, tt.Position); action.Kind == BossActionFire {
			s.fire(w, e, action)
		}
		s.runHooks(w, e)
	})
}

func (s *BossSystem) fire(w *ecs.World, e ecs.Entity, action BossAction) {
	cfg, ok := ecs.Get(w, e, component.BossComponent.Kind())
	if !ok {
		return
	}
	fb, err := entity.NewFireball(w, cfg.FireballPrefab, action.Origin, e, action.Target)
	if err != nil {
		log.Printf("boss: entity=%v fire: %v", e, err)
		return
	}
	if rt, ok := ecs.Get(w, e, component.BossRuntimeComponent.Kind()); ok {
		rt.Shots++
	}
	log.Printf("boss: entity=%v fired fireball %v at %v", e, fb, action.Target)
}

func (s *BossSystem) runHooks(w *ecs.World, e ecs.Entity) {
	rt, ok := ecs.Get(w, e, component.BossRuntimeComponent.Kind())
	if !ok || len(rt.Entered) == 0 {
		return
	}
	entered := rt.Entered
	rt.Entered = nil

	script, ok := ecs.Get(w, e, component.BossScriptComponent.Kind())
	if !ok {
		return
	}
	for _, state := range entered {
		if err := s.scripts.onEnter(w, e, script.Path, state); err != nil {
			log.Printf("boss: entity=%v script %s onEnter(%s): %v", e, script.Path, state, err)
		}
	}
}
