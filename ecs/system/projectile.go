package system

//go:generate go run go.uber.org/mock/mockgen -destination=./mocks/collision_querier_mock.go -package=mocks . CollisionQuerier

import (
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/dragonfight/common"
	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
	"github.com/milk9111/dragonfight/ecs/entity"
	"golang.org/x/image/colornames"
)

// CollisionQuerier answers the collision questions a projectile asks.
// ecs.PhysicsWorld implements it.
type CollisionQuerier interface {
	Raycast(origin, dir mgl64.Vec3, maxDist float64, ignore []ecs.Entity) ecs.HitInfo
	Intersects(e ecs.Entity, ignore []ecs.Entity) ecs.HitInfo
}

type ProjectileSystem struct {
	collisions CollisionQuerier
	rng        *rand.Rand
}

// NewProjectileSystem queries the world's physics unless collisions is set.
func NewProjectileSystem(collisions CollisionQuerier, seed uint64) *ProjectileSystem {
	return &ProjectileSystem{
		collisions: collisions,
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *ProjectileSystem) querier(w *ecs.World) CollisionQuerier {
	if s.collisions != nil {
		return s.collisions
	}
	if pw := w.PhysicsWorld(); pw != nil {
		return pw
	}
	return nil
}

func (s *ProjectileSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	var done []ecs.Entity
	ecs.ForEach(w, component.ProjectileRuntimeComponent.Kind(), func(e ecs.Entity, rt *component.ProjectileRuntime) {
		if s.Step(w, e, dt) != component.ProjectileFlying {
			done = append(done, e)
		}
	})
	for _, e := range done {
		s.finish(w, e)
	}
}

// Step advances one projectile by dt and returns its outcome. A hit on the
// designated target applies the projectile's damage.
func (s *ProjectileSystem) Step(w *ecs.World, e ecs.Entity, dt float64) component.ProjectileOutcome {
	cfg, ok := ecs.Get(w, e, component.ProjectileComponent.Kind())
	if !ok {
		return component.ProjectileExpired
	}
	rt, ok := ecs.Get(w, e, component.ProjectileRuntimeComponent.Kind())
	if !ok {
		return component.ProjectileExpired
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return component.ProjectileExpired
	}
	if rt.Outcome != component.ProjectileFlying {
		return rt.Outcome
	}

	rt.Elapsed += dt
	if rt.Elapsed >= cfg.MaxLife {
		rt.Outcome = component.ProjectileExpired
		return rt.Outcome
	}

	target := ecs.Entity(rt.Target)
	if tt, ok := ecs.Get(w, target, component.TransformComponent.Kind()); ok {
		if d := common.NormalizeOrZero(tt.Position.Add(cfg.AimOffset).Sub(tr.Position)); d != (mgl64.Vec3{}) {
			rt.Direction = d
		}
	}
	if rt.Direction == (mgl64.Vec3{}) {
		rt.Direction = common.NormalizeOrZero(cfg.DefaultDirection)
	}

	tr.Position = tr.Position.Add(rt.Direction.Mul(cfg.Speed * dt))
	tr.Rotation = mgl64.Vec3{common.Pitch(rt.Direction), common.Heading(rt.Direction), 0}

	s.trail(w, cfg, rt, tr, dt)

	if q := s.querier(w); q != nil {
		ignore := []ecs.Entity{e, ecs.Entity(rt.Owner)}
		hit := q.Raycast(tr.Position, rt.Direction, cfg.HitRange, ignore)
		if !hit.Hit {
			hit = q.Intersects(e, ignore)
		}
		if hit.Hit {
			if hit.Entity == target && ecs.IsAlive(w, target) {
				if ApplyDamage(w, target, cfg.Damage) {
					rt.Dealt = cfg.Damage
				}
				rt.Outcome = component.ProjectileHitTarget
			} else {
				rt.Outcome = component.ProjectileHitObstacle
			}
			return rt.Outcome
		}
	}

	if tr.Position.Y() < cfg.FloorY {
		rt.Outcome = component.ProjectileExpired
	}
	return rt.Outcome
}

func (s *ProjectileSystem) trail(w *ecs.World, cfg *component.Projectile, rt *component.ProjectileRuntime, tr *component.Transform, dt float64) {
	if cfg.TrailInterval <= 0 {
		return
	}
	rt.TrailTimer += dt
	if rt.TrailTimer < cfg.TrailInterval {
		return
	}
	rt.TrailTimer = 0

	c := color.NRGBA{R: 255, G: uint8(100 + s.rng.IntN(51)), B: 0, A: 255}
	size := 0.2 + s.rng.Float64()*0.2
	pos := tr.Position.Sub(rt.Direction.Mul(cfg.TrailBack))
	entity.NewEffect(w, component.EffectTrail, pos, c, size, 0.1, cfg.TrailLife, cfg.TrailLife)
}

func (s *ProjectileSystem) finish(w *ecs.World, e ecs.Entity) {
	cfg, ok := ecs.Get(w, e, component.ProjectileComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return
	}
	rt, _ := ecs.Get(w, e, component.ProjectileRuntimeComponent.Kind())
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())

	outcome := component.ProjectileExpired
	var damage float64
	if rt != nil {
		outcome = rt.Outcome
		damage = rt.Dealt
	}
	if tr != nil && outcome != component.ProjectileExpired {
		entity.NewEffect(w, component.EffectExplosion, tr.Position, nrgba(colornames.Orange), 0.5, cfg.ExplosionScale, 0.3, cfg.ExplosionLife)
	}

	log.Printf("fireball: entity=%v %s", e, outcome)
	w.Events().Push(ecs.Event{Type: ecs.EventFireballEnded, Data: ecs.FireballEvent{Entity: e, Outcome: outcome.String(), Damage: damage}})
	ecs.DestroyEntity(w, e)
}
