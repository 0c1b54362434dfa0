package system

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/dragonfight/common"
	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
	"golang.org/x/image/colornames"
)

// LocomotionInput is what one locomotion step needs from the outside world.
// Move is the camera-relative, already normalized direction.
type LocomotionInput struct {
	Move        mgl64.Vec3
	DashPressed bool
	JumpPressed bool
	Grounded    bool
}

// StepLocomotion advances movement state by dt and returns the new state and
// the displacement to apply this frame.
func StepLocomotion(state component.Locomotion, in LocomotionInput, cfg component.Player, dt float64) (component.Locomotion, mgl64.Vec3) {
	next := state
	next.Move = in.Move
	next.Grounded = in.Grounded

	if in.DashPressed && !next.Dashing && next.DashCooldown <= 0 && in.Move.Len() > 0 {
		next.Dashing = true
		next.DashDir = common.NormalizeOrZero(in.Move)
		next.DashTime = cfg.DashDuration
	}

	var disp mgl64.Vec3
	if next.Dashing {
		disp = next.DashDir.Mul(cfg.DashSpeed * dt)
		next.DashTime -= dt
		if next.DashTime <= 0 {
			next.Dashing = false
			next.DashTime = 0
			next.DashCooldown = cfg.DashCooldown
		}
	} else {
		disp = in.Move.Mul(cfg.Speed * dt)
		if next.DashCooldown > 0 {
			next.DashCooldown = math.Max(0, next.DashCooldown-dt)
		}
	}

	switch {
	case !in.Grounded:
		next.VelocityY -= cfg.Gravity * dt
	case in.JumpPressed:
		next.VelocityY = cfg.JumpImpulse
	default:
		next.VelocityY = math.Max(0, next.VelocityY)
	}
	disp[1] += next.VelocityY * dt

	return next, disp
}

// MoveDirection sums held direction keys relative to a camera yawed by yaw
// degrees and normalizes the result.
func MoveDirection(in component.Input, yaw float64) mgl64.Vec3 {
	forward := common.NormalizeOrZero(common.Flatten(common.CameraForward(0, yaw)))
	right := common.NormalizeOrZero(common.Flatten(common.CameraRight(yaw)))

	var move mgl64.Vec3
	if in.Forward {
		move = move.Add(forward)
	}
	if in.Back {
		move = move.Sub(forward)
	}
	if in.Left {
		move = move.Sub(right)
	}
	if in.Right {
		move = move.Add(right)
	}
	return common.NormalizeOrZero(move)
}

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach4(w, component.PlayerComponent.Kind(), component.LocomotionComponent.Kind(), component.PlayerStatusComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, cfg *component.Player, loco *component.Locomotion, status *component.PlayerStatus, tr *component.Transform) {
			if !status.Alive {
				return
			}
			tickInvincibility(w, e, status, dt)

			var in component.Input
			if ip, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
				in = *ip
			}
			yaw, _ := cameraYawFor(w, e)
			move := MoveDirection(in, yaw)

			probe := groundProbe(w, e, tr.Position, cfg)
			next, disp := StepLocomotion(*loco, LocomotionInput{
				Move:        move,
				DashPressed: in.DashPressed,
				JumpPressed: in.JumpPressed,
				Grounded:    probe.Hit,
			}, *cfg, dt)
			if next.Dashing && !loco.Dashing {
				log.Printf("player: entity=%v dash", e)
			}
			*loco = next

			tr.Position = tr.Position.Add(disp)
			if probe.Hit && loco.VelocityY <= 0 {
				tr.Position[1] = probe.Point.Y()
			}

			heading, turn := tr.Rotation.Y(), false
			switch {
			case cfg.FaceCamera:
				heading, turn = common.Heading(common.CameraForward(0, yaw)), true
			case move.Len() > 0:
				heading, turn = common.Heading(move), true
			}
			if turn {
				tr.Rotation[1] = common.LerpAngle(tr.Rotation.Y(), heading, common.SmoothFactor(cfg.TurnRate, dt))
			}
		})
}

func groundProbe(w *ecs.World, e ecs.Entity, feet mgl64.Vec3, cfg *component.Player) ecs.HitInfo {
	origin := feet.Add(mgl64.Vec3{0, cfg.ProbeOffset, 0})
	return w.PhysicsWorld().Raycast(origin, mgl64.Vec3{0, -1, 0}, cfg.ProbeDistance, []ecs.Entity{e})
}

func tickInvincibility(w *ecs.World, e ecs.Entity, status *component.PlayerStatus, dt float64) {
	if !status.Invincible {
		return
	}
	status.InvincibleTimer -= dt
	if status.InvincibleTimer > 0 {
		return
	}
	status.Invincible = false
	status.InvincibleTimer = 0
	if m, ok := ecs.Get(w, e, component.ModelComponent.Kind()); ok {
		m.Color = m.BaseColor
	}
}

// DamagePlayer applies damage to a player and reports whether it landed.
// Damage is ignored while the player is dead or invincible; otherwise it
// opens an invincibility window and tints the player red briefly.
func DamagePlayer(w *ecs.World, e ecs.Entity, amount float64) bool {
	cfg, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return false
	}
	status, ok := ecs.Get(w, e, component.PlayerStatusComponent.Kind())
	if !ok || !status.Alive || status.Invincible {
		return false
	}
	hp, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return false
	}

	status.Invincible = true
	status.InvincibleTimer = cfg.InvincibleTime
	died := hp.TakeDamage(amount)
	log.Printf("player: entity=%v took %.0f damage, %.0f/%.0f left", e, amount, hp.Current, hp.Max)
	pushDamage(w, e, amount, hp)

	if died {
		status.Alive = false
		if m, ok := ecs.Get(w, e, component.ModelComponent.Kind()); ok {
			m.Color = nrgba(colornames.Gray)
			m.BaseColor = m.Color
		}
		log.Printf("player: entity=%v died", e)
		w.Events().Push(ecs.Event{Type: ecs.EventDied, Data: e})
		w.Events().Push(ecs.Event{Type: ecs.EventGameOver, Data: e})
		return true
	}

	flashColor(w, e, nrgba(colornames.Red), cfg.HitFlash)
	return true
}
