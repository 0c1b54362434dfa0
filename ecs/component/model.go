package component

import "image/color"

type Primitive int

const (
	PrimitiveCube Primitive = iota
	PrimitiveSphere
	PrimitivePlane
)

func (p Primitive) String() string {
	switch p {
	case PrimitiveSphere:
		return "sphere"
	case PrimitivePlane:
		return "plane"
	default:
		return "cube"
	}
}

// Model is the render description of an entity. When the named asset could
// not be loaded Fallback is set and Primitive is drawn instead.
type Model struct {
	Name       string
	Primitive  Primitive
	Color      color.NRGBA
	BaseColor  color.NRGBA
	Animations []string
	Current    string
	Fallback   bool
	Hidden     bool
}

// HasAnimation reports whether the loaded asset provides clip name.
func (m Model) HasAnimation(name string) bool {
	for _, a := range m.Animations {
		if a == name {
			return true
		}
	}
	return false
}

var ModelComponent = NewComponent[Model]()
