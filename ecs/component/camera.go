package component

import "github.com/go-gl/mathgl/mgl64"

// Camera orbits Target from behind. Angles are in degrees.
type Camera struct {
	Target      uint64 // ecs.Entity
	Yaw         float64
	Pitch       float64
	MinPitch    float64
	MaxPitch    float64
	Distance    float64
	Height      float64
	Sensitivity float64

	Position mgl64.Vec3
	Forward  mgl64.Vec3
}

var CameraComponent = NewComponent[Camera]()
