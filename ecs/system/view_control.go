package system

import (
	"github.com/milk9111/fractalview/ecs"
	"github.com/milk9111/fractalview/ecs/component"
)

// ViewControlSystem turns the frame's input snapshot into view motion:
// wheel zoom, mouse drag, keyboard pan and keyboard zoom, in that order.
// Every channel only adds to center or zoom, so they combine freely.
type ViewControlSystem struct{}

func NewViewControlSystem() *ViewControlSystem {
	return &ViewControlSystem{}
}

func (s *ViewControlSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.ViewComponent.Kind(), func(e ecs.Entity, view *component.View) {
		input, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok {
			return
		}

		controls := component.DefaultControls()
		if c, ok := ecs.Get(w, e, component.ControlsComponent.Kind()); ok {
			controls = *c
		}

		origin, ok := ecs.Get(w, e, component.DragOriginComponent.Kind())
		if !ok {
			origin = &component.DragOrigin{}
			if err := ecs.Add(w, e, component.DragOriginComponent.Kind(), origin); err != nil {
				panic("view control system: add drag origin: " + err.Error())
			}
		}

		if visible, changed := applyInput(view, origin, input, &controls); changed {
			if err := ecs.Add(w, e, component.CursorRequestComponent.Kind(), &component.CursorRequest{Visible: visible}); err != nil {
				panic("view control system: request cursor: " + err.Error())
			}
		}
	})
}

// applyInput runs one frame of control logic. It returns the cursor
// visibility the host should apply and whether any request was made.
func applyInput(view *component.View, origin *component.DragOrigin, in *component.Input, c *component.Controls) (visible, requested bool) {
	dt := in.DT

	for _, ev := range in.Wheel {
		switch ev.Unit {
		case component.ScrollLine:
			c.Stepping.Step(view, -c.ZoomSpeed*dt*ev.Y)
		case component.ScrollPixel:
			// not supported
		}
	}

	cx, cy := in.Cursor()
	if in.PrimaryJustPressed {
		origin.X, origin.Y = cx, cy
	}

	if in.PrimaryHeld {
		view.Pan(
			-c.MouseSpeed*(cx-origin.X)*view.Zoom*dt,
			c.MouseSpeed*(cy-origin.Y)*view.Zoom*dt,
		)
		origin.X, origin.Y = cx, cy
		visible, requested = false, true
	}

	if in.PrimaryJustReleased {
		visible, requested = true, true
	}

	step := c.MoveSpeed * view.Zoom * dt
	if in.IsHeld(c.Keys.PanLeft) {
		view.Pan(-step, 0)
	}
	if in.IsHeld(c.Keys.PanRight) {
		view.Pan(step, 0)
	}
	if in.IsHeld(c.Keys.PanUp) {
		view.Pan(0, step)
	}
	if in.IsHeld(c.Keys.PanDown) {
		view.Pan(0, -step)
	}

	if in.IsHeld(c.Keys.ZoomIn) {
		c.Stepping.Step(view, c.ZoomSpeed*dt)
	}
	if in.IsHeld(c.Keys.ZoomOut) {
		c.Stepping.Step(view, -c.ZoomSpeed*dt)
	}

	return visible, requested
}
