package system

import "github.com/milk9111/dragonfight/ecs"

// ColliderSyncSystem moves the physics index to this frame's transforms.
type ColliderSyncSystem struct{}

func NewColliderSyncSystem() *ColliderSyncSystem {
	return &ColliderSyncSystem{}
}

func (s *ColliderSyncSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	w.PhysicsWorld().Sync()
}
