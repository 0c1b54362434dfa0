package component

import "github.com/go-gl/mathgl/mgl64"

type BossState int

const (
	BossIdle BossState = iota
	BossEngaging
	BossFlying
	BossAttacking
	BossDead
)

func (s BossState) String() string {
	switch s {
	case BossIdle:
		return "idle"
	case BossEngaging:
		return "engaging"
	case BossFlying:
		return "flying"
	case BossAttacking:
		return "attacking"
	case BossDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Boss stores the data-driven tuning for a dragon-style boss.
type Boss struct {
	DisplayName string

	TriggerRadius float64
	FlyHeight     float64
	RestHeight    float64
	RestYaw       float64
	TurnRate      float64

	TakeoffDelay    float64
	TakeoffDuration float64
	ClimbDelay      float64
	LandDuration    float64

	AttackInterval float64
	FirstShotDelay float64
	MuzzleOffset   mgl64.Vec3

	HitFlash        float64
	DeathDuration   float64
	DeathRoll       float64
	BarDespawnDelay float64
	DespawnDelay    float64

	// FireballPrefab is the prefab built for each shot.
	FireballPrefab string

	Animations BossAnimations
}

// BossAnimations names the clip played on each transition.
type BossAnimations struct {
	Idle   string
	Fly    string
	Attack string
	Death  string
}

// BossRuntime stores runtime-only fight state.
type BossRuntime struct {
	State     BossState
	InFight   bool
	Target    uint64 // ecs.Entity
	HealthBar uint64 // ecs.Entity
	Cooldown  float64
	StateTime float64
	Shots     int

	// Epoch is bumped whenever the fight stops. Delayed transitions capture
	// it and do nothing once it has moved on.
	Epoch int

	// Entered collects states entered since the boss system last ran.
	Entered []BossState
}

var BossComponent = NewComponent[Boss]()
var BossRuntimeComponent = NewComponent[BossRuntime]()
