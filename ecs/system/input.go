package system

import (
	"github.com/milk9111/dragonfight/ecs"
	"github.com/milk9111/dragonfight/ecs/component"
)

// InputSampler reads one frame of device input.
type InputSampler interface {
	Sample() component.Input
}

// InputFunc adapts a function to InputSampler.
type InputFunc func() component.Input

func (f InputFunc) Sample() component.Input { return f() }

type InputSystem struct {
	sampler InputSampler
}

func NewInputSystem(sampler InputSampler) *InputSystem {
	return &InputSystem{sampler: sampler}
}

func (i *InputSystem) Update(w *ecs.World, _ float64) {
	if w == nil || i.sampler == nil {
		return
	}

	in := i.sampler.Sample()
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = in
	})
}
