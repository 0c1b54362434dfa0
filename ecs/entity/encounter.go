package entity

import (
	"fmt"
	"log"

	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
	"github.com/milk9111/dragonfight/prefabs"
)

// Encounter holds the handles of one built fight.
type Encounter struct {
	Player ecs.Entity
	Dragon ecs.Entity
	Ground ecs.Entity
	Camera ecs.Entity
	HUD    ecs.Entity
	Snow   []ecs.Entity
}

// BuildEncounter fills w from an encounter spec. The dragon targets the
// player and the camera follows it.
func BuildEncounter(w *ecs.World, spec *prefabs.EncounterSpec) (*Encounter, error) {
	if w == nil || spec == nil {
		return nil, fmt.Errorf("encounter: world and spec are required")
	}
	enc := &Encounter{}

	place := func(p prefabs.PlacementSpec, what string) (ecs.Entity, error) {
		if p.Prefab == "" {
			return 0, nil
		}
		e, err := BuildEntity(w, p.Prefab)
		if err != nil {
			return 0, fmt.Errorf("encounter: %s: %w", what, err)
		}
		if p.Position != nil {
			if err := SetEntityPosition(w, e, p.Position.Vec3()); err != nil {
				return 0, fmt.Errorf("encounter: %s: place: %w", what, err)
			}
		}
		return e, nil
	}

	var err error
	if enc.Ground, err = place(spec.Ground, "ground"); err != nil {
		return nil, err
	}
	if enc.Player, err = place(spec.Player, "player"); err != nil {
		return nil, err
	}
	if enc.Dragon, err = place(spec.Dragon, "dragon"); err != nil {
		return nil, err
	}
	if rt, ok := ecs.Get(w, enc.Dragon, component.BossRuntimeComponent.Kind()); ok {
		rt.Target = uint64(enc.Player)
	}

	if enc.Camera, err = place(spec.Camera, "camera"); err != nil {
		return nil, err
	}
	if cam, ok := ecs.Get(w, enc.Camera, component.CameraComponent.Kind()); ok {
		cam.Target = uint64(enc.Player)
	}

	if spec.HUD != "" {
		if enc.HUD, err = BuildEntity(w, spec.HUD); err != nil {
			return nil, fmt.Errorf("encounter: hud: %w", err)
		}
	}

	if spec.Snow.Prefab != "" && spec.Snow.Count > 0 {
		flake, err := prefabs.LoadEntityBuildSpec(spec.Snow.Prefab)
		if err != nil {
			return nil, fmt.Errorf("encounter: snow: %w", err)
		}
		enc.Snow = make([]ecs.Entity, 0, spec.Snow.Count)
		for i := 0; i < spec.Snow.Count; i++ {
			e, err := buildFromSpec(w, spec.Snow.Prefab, flake)
			if err != nil {
				return nil, fmt.Errorf("encounter: snow: %w", err)
			}
			enc.Snow = append(enc.Snow, e)
		}
	}

	log.Printf("encounter: built %q player=%v dragon=%v snow=%d", spec.Name, enc.Player, enc.Dragon, len(enc.Snow))
	return enc, nil
}
