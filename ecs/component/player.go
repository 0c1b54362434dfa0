package component

import "github.com/go-gl/mathgl/mgl64"

// Player is the tuning for the third-person controller. Speeds are in units
// per second, times in seconds.
type Player struct {
	Speed        float64
	DashSpeed    float64
	DashDuration float64
	DashCooldown float64
	JumpImpulse  float64
	Gravity      float64
	TurnRate     float64
	FaceCamera   bool

	ProbeOffset   float64
	ProbeDistance float64

	InvincibleTime float64
	HitFlash       float64
}

// Locomotion is the movement state carried between frames.
type Locomotion struct {
	Move         mgl64.Vec3
	VelocityY    float64
	Grounded     bool
	Dashing      bool
	DashTime     float64
	DashCooldown float64
	DashDir      mgl64.Vec3
}

type PlayerStatus struct {
	Alive           bool
	Invincible      bool
	InvincibleTimer float64
}

var PlayerComponent = NewComponent[Player]()
var LocomotionComponent = NewComponent[Locomotion]()
var PlayerStatusComponent = NewComponent[PlayerStatus]()
