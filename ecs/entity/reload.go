package entity

import (
	"fmt"

	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
	"github.com/milk9111/dragonfight/prefabs"
)

// ReloadTuning re-reads prefabPath and replaces the tuning components on a
// live entity. Runtime state (health, positions, boss state) is kept.
func ReloadTuning(w *ecs.World, e ecs.Entity, prefabPath string) error {
	if !ecs.IsAlive(w, e) {
		return fmt.Errorf("reload %q: %w", prefabPath, component.ErrEntityNotAlive)
	}
	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return fmt.Errorf("reload %q: %w", prefabPath, err)
	}

	if raw, ok := spec.Components["player"]; ok && ecs.Has(w, e, component.PlayerComponent.Kind()) {
		ps, err := prefabs.DecodeComponentSpec[playerSpec](raw)
		if err != nil {
			return fmt.Errorf("reload %q: decode player spec: %w", prefabPath, err)
		}
		if err := ecs.Add(w, e, component.PlayerComponent.Kind(), playerFromSpec(ps)); err != nil {
			return err
		}
	}
	if raw, ok := spec.Components["boss"]; ok && ecs.Has(w, e, component.BossComponent.Kind()) {
		bs, err := prefabs.DecodeComponentSpec[bossSpec](raw)
		if err != nil {
			return fmt.Errorf("reload %q: decode boss spec: %w", prefabPath, err)
		}
		if err := ecs.Add(w, e, component.BossComponent.Kind(), bossFromSpec(bs)); err != nil {
			return err
		}
	}
	if raw, ok := spec.Components["boss_script"]; ok && ecs.Has(w, e, component.BossScriptComponent.Kind()) {
		if err := addBossScript(w, e, raw, &buildContext{PrefabPath: prefabPath}); err != nil {
			return fmt.Errorf("reload %q: %w", prefabPath, err)
		}
	}
	if raw, ok := spec.Components["camera"]; ok && ecs.Has(w, e, component.CameraComponent.Kind()) {
		cs, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
		if err != nil {
			return fmt.Errorf("reload %q: decode camera spec: %w", prefabPath, err)
		}
		cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
		cam.MinPitch, cam.MaxPitch = cs.MinPitch, cs.MaxPitch
		cam.Distance, cam.Height, cam.Sensitivity = cs.Distance, cs.Height, cs.Sensitivity
	}
	return nil
}
