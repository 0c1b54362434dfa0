package component

import "github.com/go-gl/mathgl/mgl64"

// Transform places an entity in world space. Rotation is in degrees:
// X is pitch, Y is yaw, Z is roll. Yaw 0 faces -Z.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3
}

var TransformComponent = NewComponent[Transform]()
