package component

import "github.com/go-gl/mathgl/mgl64"

type ProjectileOutcome int

const (
	ProjectileFlying ProjectileOutcome = iota
	ProjectileHitTarget
	ProjectileHitObstacle
	ProjectileExpired
)

func (o ProjectileOutcome) String() string {
	switch o {
	case ProjectileHitTarget:
		return "hit_target"
	case ProjectileHitObstacle:
		return "hit_obstacle"
	case ProjectileExpired:
		return "expired"
	default:
		return "flying"
	}
}

// Projectile is the tuning for a homing shot.
type Projectile struct {
	Speed            float64
	MaxLife          float64
	Damage           float64
	HitRange         float64
	FloorY           float64
	AimOffset        mgl64.Vec3
	DefaultDirection mgl64.Vec3

	TrailInterval  float64
	TrailLife      float64
	TrailBack      float64
	ExplosionScale float64
	ExplosionLife  float64
}

// ProjectileRuntime is the per-shot state.
type ProjectileRuntime struct {
	Target     uint64 // ecs.Entity
	Owner      uint64 // ecs.Entity, never hit by its own shot
	Direction  mgl64.Vec3
	Elapsed    float64
	TrailTimer float64
	Outcome    ProjectileOutcome
	Dealt      float64 // damage that landed on Target, zero if it was refused
}

var ProjectileComponent = NewComponent[Projectile]()
var ProjectileRuntimeComponent = NewComponent[ProjectileRuntime]()
