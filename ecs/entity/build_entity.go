package entity

import (
	"fmt"
	"image/color"
	"log"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/dragonfight/assets"
	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
	"github.com/milk9111/dragonfight/prefabs"
	"golang.org/x/image/colornames"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":  addPlayerTag,
	"boss_tag":    addBossTag,
	"ground_tag":  addGroundTag,
	"camera_tag":  addCameraTag,
	"input":       addInput,
	"transform":   addTransform,
	"collider":    addCollider,
	"model":       addModel,
	"health":      addHealth,
	"player":      addPlayer,
	"boss":        addBoss,
	"boss_script": addBossScript,
	"projectile":  addProjectile,
	"camera":      addCamera,
	"snowflake":   addSnowflake,
	"health_bar":  addHealthBar,
	"hud":         addHUD,
}

// health_bar needs the owner's health and boss runtime in place.
var componentBuildOrder = []string{
	"player_tag",
	"boss_tag",
	"ground_tag",
	"camera_tag",
	"input",
	"transform",
	"collider",
	"model",
	"health",
	"player",
	"boss",
	"boss_script",
	"projectile",
	"camera",
	"snowflake",
	"hud",
	"health_bar",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return buildFromSpec(w, prefabPath, spec)
}

func buildFromSpec(w *ecs.World, prefabPath string, spec entityPrefabSpec) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	build := func(name string, raw any) error {
		builder, ok := componentRegistry[name]
		if !ok {
			return fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, raw, ctx); err != nil {
			return fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		return nil
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := build(name, raw); err != nil {
			destroyWithBar(w, e)
			return 0, err
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := build(name, remaining[name]); err != nil {
				destroyWithBar(w, e)
				return 0, err
			}
		}
	}

	return e, nil
}

func destroyWithBar(w *ecs.World, e ecs.Entity) {
	ecs.ForEach(w, component.HealthBarComponent.Kind(), func(bar ecs.Entity, hb *component.HealthBar) {
		if ecs.Entity(hb.Owner) == e {
			ecs.DestroyEntity(w, bar)
		}
	})
	ecs.DestroyEntity(w, e)
}

// SetEntityPosition moves e, adding a Transform when it has none.
func SetEntityPosition(w *ecs.World, e ecs.Entity, pos mgl64.Vec3) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{Scale: mgl64.Vec3{1, 1, 1}}
	}
	t.Position = pos
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addBossTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.BossTagComponent.Kind(), &component.BossTag{})
}

func addGroundTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.GroundTagComponent.Kind(), &component.GroundTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	scale := mgl64.Vec3{1, 1, 1}
	if spec.Scale != nil {
		scale = spec.Scale.Vec3()
		for i := range scale {
			if scale[i] == 0 {
				scale[i] = 1
			}
		}
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: spec.Position.Vec3(),
		Rotation: spec.Rotation.Vec3(),
		Scale:    scale,
	})
}

type colliderSpec = prefabs.ColliderComponentSpec

func addCollider(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[colliderSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collider spec: %w", err)
	}
	shape := component.ColliderBox
	switch strings.ToLower(strings.TrimSpace(spec.Shape)) {
	case "", "box":
	case "sphere":
		shape = component.ColliderSphere
	default:
		return fmt.Errorf("unknown collider shape %q", spec.Shape)
	}
	size := spec.Size.Vec3()
	if size == (mgl64.Vec3{}) {
		size = mgl64.Vec3{1, 1, 1}
	}
	return ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Shape:    shape,
		Size:     size,
		Offset:   spec.Offset.Vec3(),
		Disabled: spec.Disabled,
	})
}

type modelSpec = prefabs.ModelComponentSpec

func parsePrimitive(name string) (component.Primitive, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "cube":
		return component.PrimitiveCube, nil
	case "sphere":
		return component.PrimitiveSphere, nil
	case "plane", "quad":
		return component.PrimitivePlane, nil
	default:
		return component.PrimitiveCube, fmt.Errorf("unknown primitive %q", name)
	}
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// addModel resolves the named asset. A missing or broken asset is not an
// error: the entity falls back to a primitive and the failure is logged.
func addModel(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[modelSpec](raw)
	if err != nil {
		return fmt.Errorf("decode model spec: %w", err)
	}
	prim, err := parsePrimitive(spec.Primitive)
	if err != nil {
		return err
	}
	m := &component.Model{
		Name:      spec.Name,
		Primitive: prim,
		Color:     spec.Color.NRGBA(nrgba(colornames.White)),
		Hidden:    spec.Hidden,
	}

	if spec.Name != "" {
		manifest, err := assets.LoadModel(spec.Name)
		if err != nil {
			m.Fallback = true
			if spec.Fallback.Primitive != "" {
				if p, perr := parsePrimitive(spec.Fallback.Primitive); perr == nil {
					m.Primitive = p
				}
			}
			m.Color = spec.Fallback.Color.NRGBA(m.Color)
			log.Printf("entity: %s: model %q unavailable (%v), using %s primitive", ctx.PrefabPath, spec.Name, err, m.Primitive)
		} else {
			m.Animations = append([]string(nil), manifest.Animations...)
			if len(m.Animations) > 0 {
				m.Current = m.Animations[0]
			}
		}
	}
	m.BaseColor = m.Color
	return ecs.Add(w, e, component.ModelComponent.Kind(), m)
}

type healthSpec = prefabs.HealthComponentSpec

func addHealth(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[healthSpec](raw)
	if err != nil {
		return fmt.Errorf("decode health spec: %w", err)
	}
	if spec.Max <= 0 {
		spec.Max = 1
	}
	h := component.NewHealth(spec.Max)
	if spec.Current > 0 && spec.Current < spec.Max {
		h.Current = spec.Current
	}
	return ecs.Add(w, e, component.HealthComponent.Kind(), &h)
}

type playerSpec = prefabs.PlayerComponentSpec

func playerFromSpec(spec playerSpec) *component.Player {
	return &component.Player{
		Speed:          spec.Speed,
		DashSpeed:      spec.DashSpeed,
		DashDuration:   spec.DashDuration,
		DashCooldown:   spec.DashCooldown,
		JumpImpulse:    spec.JumpImpulse,
		Gravity:        spec.Gravity,
		TurnRate:       spec.TurnRate,
		FaceCamera:     spec.FaceCamera,
		ProbeOffset:    spec.ProbeOffset,
		ProbeDistance:  spec.ProbeDistance,
		InvincibleTime: spec.InvincibleTime,
		HitFlash:       spec.HitFlash,
	}
}

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), playerFromSpec(spec)); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.LocomotionComponent.Kind(), &component.Locomotion{}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.PlayerStatusComponent.Kind(), &component.PlayerStatus{Alive: true})
}

type bossSpec = prefabs.BossComponentSpec

func bossFromSpec(spec bossSpec) *component.Boss {
	return &component.Boss{
		DisplayName:     spec.DisplayName,
		TriggerRadius:   spec.TriggerRadius,
		FlyHeight:       spec.FlyHeight,
		RestHeight:      spec.RestHeight,
		RestYaw:         spec.RestYaw,
		TurnRate:        spec.TurnRate,
		TakeoffDelay:    spec.TakeoffDelay,
		TakeoffDuration: spec.TakeoffDuration,
		ClimbDelay:      spec.ClimbDelay,
		LandDuration:    spec.LandDuration,
		AttackInterval:  spec.AttackInterval,
		FirstShotDelay:  spec.FirstShotDelay,
		MuzzleOffset:    spec.MuzzleOffset.Vec3(),
		HitFlash:        spec.HitFlash,
		DeathDuration:   spec.DeathDuration,
		DeathRoll:       spec.DeathRoll,
		BarDespawnDelay: spec.BarDespawnDelay,
		DespawnDelay:    spec.DespawnDelay,
		FireballPrefab:  spec.FireballPrefab,
		Animations: component.BossAnimations{
			Idle:   spec.Animations.Idle,
			Fly:    spec.Animations.Fly,
			Attack: spec.Animations.Attack,
			Death:  spec.Animations.Death,
		},
	}
}

func addBoss(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[bossSpec](raw)
	if err != nil {
		return fmt.Errorf("decode boss spec: %w", err)
	}
	if spec.TriggerRadius < 0 {
		return fmt.Errorf("boss trigger_radius must be >= 0, got %v", spec.TriggerRadius)
	}
	if err := ecs.Add(w, e, component.BossComponent.Kind(), bossFromSpec(spec)); err != nil {
		return err
	}
	return ecs.Add(w, e, component.BossRuntimeComponent.Kind(), &component.BossRuntime{State: component.BossIdle})
}

type bossScriptSpec = prefabs.BossScriptComponentSpec

func addBossScript(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[bossScriptSpec](raw)
	if err != nil {
		return fmt.Errorf("decode boss_script spec: %w", err)
	}
	if strings.TrimSpace(spec.Path) == "" {
		return fmt.Errorf("boss_script requires a path")
	}
	return ecs.Add(w, e, component.BossScriptComponent.Kind(), &component.BossScript{Path: spec.Path})
}

type projectileSpec = prefabs.ProjectileComponentSpec

func projectileFromSpec(spec projectileSpec) *component.Projectile {
	dir := spec.DefaultDirection.Vec3()
	if dir.Len() < 1e-9 {
		dir = mgl64.Vec3{0, 0, -1}
	}
	return &component.Projectile{
		Speed:            spec.Speed,
		MaxLife:          spec.MaxLife,
		Damage:           spec.Damage,
		HitRange:         spec.HitRange,
		FloorY:           spec.FloorY,
		AimOffset:        spec.AimOffset.Vec3(),
		DefaultDirection: dir.Normalize(),
		TrailInterval:    spec.TrailInterval,
		TrailLife:        spec.TrailLife,
		TrailBack:        spec.TrailBack,
		ExplosionScale:   spec.ExplosionScale,
		ExplosionLife:    spec.ExplosionLife,
	}
}

func addProjectile(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[projectileSpec](raw)
	if err != nil {
		return fmt.Errorf("decode projectile spec: %w", err)
	}
	cfg := projectileFromSpec(spec)
	if err := ecs.Add(w, e, component.ProjectileComponent.Kind(), cfg); err != nil {
		return err
	}
	return ecs.Add(w, e, component.ProjectileRuntimeComponent.Kind(), &component.ProjectileRuntime{})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Distance == 0 {
		spec.Distance = 10
	}
	if spec.Sensitivity == 0 {
		spec.Sensitivity = 0.15
	}
	if spec.MaxPitch <= spec.MinPitch {
		spec.MinPitch, spec.MaxPitch = -10, 60
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		Yaw:         spec.Yaw,
		Pitch:       spec.Pitch,
		MinPitch:    spec.MinPitch,
		MaxPitch:    spec.MaxPitch,
		Distance:    spec.Distance,
		Height:      spec.Height,
		Sensitivity: spec.Sensitivity,
	})
}

type snowflakeSpec = prefabs.SnowflakeComponentSpec

func addSnowflake(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[snowflakeSpec](raw)
	if err != nil {
		return fmt.Errorf("decode snowflake spec: %w", err)
	}
	if spec.SpawnMaxY < spec.SpawnMinY {
		spec.SpawnMinY, spec.SpawnMaxY = spec.SpawnMaxY, spec.SpawnMinY
	}
	return ecs.Add(w, e, component.SnowflakeComponent.Kind(), &component.Snowflake{
		FallSpeed: spec.FallSpeed,
		SpinSpeed: spec.SpinSpeed,
		FloorY:    spec.FloorY,
		SpawnMinY: spec.SpawnMinY,
		SpawnMaxY: spec.SpawnMaxY,
		Area:      spec.Area,
	})
}

func addHUD(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.HUDComponent.Kind(), &component.HUD{PlayerRatio: 1, BossRatio: 1})
}

type healthBarSpec = prefabs.HealthBarComponentSpec

// addHealthBar spawns a separate bar entity owned by e. Bosses remember
// their bar so it can be removed ahead of the body on death.
func addHealthBar(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[healthBarSpec](raw)
	if err != nil {
		return fmt.Errorf("decode health_bar spec: %w", err)
	}
	hp, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return fmt.Errorf("health_bar requires health on the same entity")
	}
	ratio := hp.Ratio()

	bar := ecs.CreateEntity(w)
	if err := ecs.Add(w, bar, component.HealthBarComponent.Kind(), &component.HealthBar{
		Owner:  uint64(e),
		Label:  spec.Label,
		Offset: spec.Offset.Vec3(),
		Width:  spec.Width,
		Ratio:  ratio,
		Band:   component.Band(ratio),
	}); err != nil {
		ecs.DestroyEntity(w, bar)
		return err
	}
	if rt, ok := ecs.Get(w, e, component.BossRuntimeComponent.Kind()); ok {
		rt.HealthBar = uint64(bar)
	}
	return nil
}
