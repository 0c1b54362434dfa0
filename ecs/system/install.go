package system

import "github.com/milk9111/dragonfight/ecs"

// Install adds the encounter systems to w in frame order and returns the
// boss system so the host can reload its scripts. Delayed tasks run after
// the last system, inside World.Update.
func Install(w *ecs.World, sampler InputSampler, seed uint64) *BossSystem {
	boss := NewBossSystem()

	w.AddSystem(NewInputSystem(sampler))
	w.AddSystem(NewCameraSystem())
	w.AddSystem(NewPlayerControllerSystem())
	w.AddSystem(NewColliderSyncSystem())
	w.AddSystem(boss)
	w.AddSystem(NewDebugSystem())
	w.AddSystem(NewProjectileSystem(nil, seed))
	w.AddSystem(NewTweenSystem())
	w.AddSystem(NewTTLSystem())
	w.AddSystem(NewSnowSystem(seed + 1))
	w.AddSystem(NewHealthBarSystem())
	w.AddSystem(NewHUDSystem())

	return boss
}
