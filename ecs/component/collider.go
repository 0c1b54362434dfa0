package component

import "github.com/go-gl/mathgl/mgl64"

type ColliderShape int

const (
	ColliderBox ColliderShape = iota
	ColliderSphere
)

func (s ColliderShape) String() string {
	switch s {
	case ColliderSphere:
		return "sphere"
	default:
		return "box"
	}
}

// Collider is an axis-aligned volume attached to a Transform. Size is the
// full extent before Transform.Scale is applied; spheres use Size.X() as
// the diameter.
type Collider struct {
	Shape    ColliderShape
	Size     mgl64.Vec3
	Offset   mgl64.Vec3
	Disabled bool
}

var ColliderComponent = NewComponent[Collider]()
