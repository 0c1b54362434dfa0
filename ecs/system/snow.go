package system

import (
	"math/rand/v2"

	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
)

// SnowSystem drops snowflakes and respawns them above the arena once they
// pass their floor.
type SnowSystem struct {
	rng *rand.Rand
}

func NewSnowSystem(seed uint64) *SnowSystem {
	return &SnowSystem{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SnowSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.SnowflakeComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, f *component.Snowflake, tr *component.Transform) {
		if !f.Placed {
			s.scatter(f, tr)
			f.Placed = true
		}

		tr.Position[1] -= f.FallSpeed * dt
		tr.Rotation[0] += f.SpinSpeed * dt
		if tr.Rotation[0] >= 360 {
			tr.Rotation[0] -= 360
		}
		if tr.Position.Y() < f.FloorY {
			s.scatter(f, tr)
		}
	})
}

func (s *SnowSystem) scatter(f *component.Snowflake, tr *component.Transform) {
	tr.Position[0] = s.uniform(-f.Area, f.Area)
	tr.Position[1] = s.uniform(f.SpawnMinY, f.SpawnMaxY)
	tr.Position[2] = s.uniform(-f.Area, f.Area)
}

func (s *SnowSystem) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}
