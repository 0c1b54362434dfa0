package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/dragonfight/common"
	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
)

// NewFireball builds a projectile prefab at origin, homing on target and
// never colliding with owner.
func NewFireball(w *ecs.World, prefab string, origin mgl64.Vec3, owner, target ecs.Entity) (ecs.Entity, error) {
	if prefab == "" {
		prefab = "fireball.yaml"
	}
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, fmt.Errorf("fireball: %w", err)
	}
	cfg, ok := ecs.Get(w, e, component.ProjectileComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("fireball: prefab %q has no projectile component", prefab)
	}
	if err := SetEntityPosition(w, e, origin); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("fireball: place: %w", err)
	}

	dir := cfg.DefaultDirection
	if tt, ok := ecs.Get(w, target, component.TransformComponent.Kind()); ok {
		if d := common.NormalizeOrZero(tt.Position.Add(cfg.AimOffset).Sub(origin)); d != (mgl64.Vec3{}) {
			dir = d
		}
	}
	if err := ecs.Add(w, e, component.ProjectileRuntimeComponent.Kind(), &component.ProjectileRuntime{
		Target:    uint64(target),
		Owner:     uint64(owner),
		Direction: dir,
	}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}
