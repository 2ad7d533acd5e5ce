package system

import (
	"github.com/milk9111/fractalview/ecs"
	"github.com/milk9111/fractalview/ecs/component"
)

// ResizeSystem keeps the fractal quad square and as tall as the window.
// Each event carries an absolute size, so the last one of the frame wins.
type ResizeSystem struct{}

func NewResizeSystem() *ResizeSystem {
	return &ResizeSystem{}
}

func (s *ResizeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.MandelbrotComponent.Kind(), func(e ecs.Entity, _ *component.Mandelbrot) {
		input, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok || len(input.Resizes) == 0 {
			return
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		for _, ev := range input.Resizes {
			transform.ScaleX = ev.Height
			transform.ScaleY = ev.Height
		}
	})
}
