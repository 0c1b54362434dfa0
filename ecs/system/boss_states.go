package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/dragonfight/common"
	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
	"golang.org/x/image/colornames"
)

// bossState owns the enter and per-tick logic of one boss state.
type bossState interface {
	ID() component.BossState
	Enter(ctx *bossContext)
	Update(ctx *bossContext, dt float64, targetPos mgl64.Vec3) BossAction
}

// Boss state singletons (avoid allocations on transitions).
var bossStates = map[component.BossState]bossState{
	component.BossIdle:      bossIdleState{},
	component.BossEngaging:  bossEngagingState{},
	component.BossFlying:    bossFlyingState{},
	component.BossAttacking: bossAttackingState{},
	component.BossDead:      bossDeadState{},
}

type bossIdleState struct{}

type bossEngagingState struct{}

type bossFlyingState struct{}

type bossAttackingState struct{}

type bossDeadState struct{}

// Idle is entered when a fight stops: the boss settles back onto its perch.
func (bossIdleState) ID() component.BossState { return component.BossIdle }
func (bossIdleState) Enter(ctx *bossContext) {
	ctx.playAnimation(ctx.cfg.Animations.Idle)
	StartTween(ctx.w, ctx.e, component.TweenPositionY, mgl64.Vec3{ctx.cfg.RestHeight}, ctx.cfg.LandDuration, "in_out_sine")
	StartTween(ctx.w, ctx.e, component.TweenRotation, mgl64.Vec3{0, ctx.cfg.RestYaw, 0}, ctx.cfg.LandDuration, "in_out_sine")
}
func (bossIdleState) Update(*bossContext, float64, mgl64.Vec3) BossAction { return BossAction{} }

func (bossEngagingState) ID() component.BossState { return component.BossEngaging }
func (bossEngagingState) Enter(ctx *bossContext) {
	ctx.playAnimation(ctx.cfg.Animations.Idle)
	ctx.scheduleTransition(ctx.cfg.TakeoffDelay, component.BossEngaging, component.BossFlying)
}
func (bossEngagingState) Update(*bossContext, float64, mgl64.Vec3) BossAction { return BossAction{} }

func (bossFlyingState) ID() component.BossState { return component.BossFlying }
func (bossFlyingState) Enter(ctx *bossContext) {
	ctx.playAnimation(ctx.cfg.Animations.Fly)
	StartTween(ctx.w, ctx.e, component.TweenPositionY, mgl64.Vec3{ctx.cfg.FlyHeight}, ctx.cfg.TakeoffDuration, "out_cubic")
	ctx.scheduleTransition(ctx.cfg.ClimbDelay, component.BossFlying, component.BossAttacking)
}
func (bossFlyingState) Update(*bossContext, float64, mgl64.Vec3) BossAction { return BossAction{} }

func (bossAttackingState) ID() component.BossState { return component.BossAttacking }
func (bossAttackingState) Enter(ctx *bossContext) {
	ctx.playAnimation(ctx.cfg.Animations.Attack)
	CancelTween(ctx.w, ctx.e, component.TweenRotation)
	ctx.rt.Cooldown = ctx.cfg.FirstShotDelay
}

// Update turns toward the target and fires whenever the cooldown runs out.
func (bossAttackingState) Update(ctx *bossContext, dt float64, targetPos mgl64.Vec3) BossAction {
	dir := common.Flatten(targetPos.Sub(ctx.tr.Position))
	if dir.Len() > 0 {
		want := common.Heading(dir)
		ctx.tr.Rotation[1] = common.LerpAngle(ctx.tr.Rotation.Y(), want, common.SmoothFactor(ctx.cfg.TurnRate, dt))
	}

	ctx.rt.Cooldown -= dt
	if ctx.rt.Cooldown > 0 {
		return BossAction{}
	}
	ctx.rt.Cooldown = ctx.cfg.AttackInterval
	return BossAction{
		Kind:   BossActionFire,
		Origin: ctx.tr.Position.Add(common.RotateYaw(ctx.cfg.MuzzleOffset, ctx.tr.Rotation.Y())),
		Target: ctx.target,
	}
}

// Dead is terminal: the body falls and rolls, turns grey, and is removed
// after the despawn delay.
func (bossDeadState) ID() component.BossState { return component.BossDead }
func (bossDeadState) Enter(ctx *bossContext) {
	ctx.playAnimation(ctx.cfg.Animations.Death)
	StartTween(ctx.w, ctx.e, component.TweenPositionY, mgl64.Vec3{0}, ctx.cfg.DeathDuration, "in_out_sine")
	StartTween(ctx.w, ctx.e, component.TweenRotation, mgl64.Vec3{0, ctx.tr.Rotation.Y(), ctx.cfg.DeathRoll}, ctx.cfg.DeathDuration, "in_out_sine")
	if ctx.model != nil {
		ctx.model.Color = nrgba(colornames.Gray)
		ctx.model.BaseColor = ctx.model.Color
	}
	if bar := ecs.Entity(ctx.rt.HealthBar); ecs.IsAlive(ctx.w, bar) {
		ecs.DestroyEntityAfter(ctx.w, bar, ctx.cfg.BarDespawnDelay)
	}
	ecs.DestroyEntityAfter(ctx.w, ctx.e, ctx.cfg.DespawnDelay)
}
func (bossDeadState) Update(*bossContext, float64, mgl64.Vec3) BossAction { return BossAction{} }
