package system

import (
	"testing"

	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
)

func TestSnowSystemScattersAndRespawns(t *testing.T) {
	w := ecs.NewWorld()
	flake := &component.Snowflake{FallSpeed: 1.5, SpinSpeed: 50, FloorY: -1, SpawnMinY: 5, SpawnMaxY: 10, Area: 20}
	tr := &component.Transform{}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.SnowflakeComponent.Kind(), flake)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), tr)

	s := NewSnowSystem(7)
	s.Update(w, 0)
	if !flake.Placed {
		t.Fatalf("flake should be scattered on first sight")
	}
	inArea := func() bool {
		p := tr.Position
		return p.X() >= -20 && p.X() <= 20 && p.Z() >= -20 && p.Z() <= 20
	}
	if y := tr.Position.Y(); y < 5 || y > 10 || !inArea() {
		t.Fatalf("scattered outside the spawn volume: %v", tr.Position)
	}

	tr.Position[1] = -0.9
	s.Update(w, 0.25)
	if y := tr.Position.Y(); y < 5 || y > 10 || !inArea() {
		t.Fatalf("flake below the floor should respawn above, got %v", tr.Position)
	}
	if tr.Rotation.X() != 12.5 {
		t.Fatalf("spin = %v, want 12.5 degrees", tr.Rotation.X())
	}
}
