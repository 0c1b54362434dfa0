package component

import (
	"github.com/go-gl/mathgl/mgl64"
)

// HealthBar follows Owner and mirrors its Health.
type HealthBar struct {
	Owner  uint64 // ecs.Entity
	Label  string
	Offset mgl64.Vec3
	Width  float64
	Ratio  float64
	Band   HealthBand
}

var HealthBarComponent = NewComponent[HealthBar]()
