package system

import (
	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
)

// HealthBarSystem mirrors each owner's Health into its bar and removes bars
// whose owner is gone.
type HealthBarSystem struct{}

func NewHealthBarSystem() *HealthBarSystem {
	return &HealthBarSystem{}
}

func (s *HealthBarSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	var orphans []ecs.Entity
	ecs.ForEach(w, component.HealthBarComponent.Kind(), func(e ecs.Entity, bar *component.HealthBar) {
		hp, ok := ecs.Get(w, ecs.Entity(bar.Owner), component.HealthComponent.Kind())
		if !ok {
			orphans = append(orphans, e)
			return
		}
		bar.Ratio = hp.Ratio()
		bar.Band = component.Band(bar.Ratio)
	})
	for _, e := range orphans {
		ecs.DestroyEntity(w, e)
	}
}
