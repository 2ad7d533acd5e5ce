package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fractalview/ecs"
	"github.com/milk9111/fractalview/ecs/component"
	"github.com/milk9111/fractalview/prefabs"
)

// NewMandelbrot spawns the fractal surface: the view it renders, the drag
// origin, the quad transform, its controls and an input snapshot.
func NewMandelbrot(w *ecs.World, spec *prefabs.ViewerSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("mandelbrot: nil spec")
	}

	controls, err := BuildControls(spec.Controls)
	if err != nil {
		return 0, fmt.Errorf("mandelbrot: %w", err)
	}
	view := ViewFromSpec(spec.View)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.MandelbrotComponent.Kind(), &component.Mandelbrot{}); err != nil {
		return 0, fmt.Errorf("mandelbrot: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.ViewComponent.Kind(), &view); err != nil {
		return 0, fmt.Errorf("mandelbrot: add view: %w", err)
	}
	if err := ecs.Add(w, e, component.HomeViewComponent.Kind(), &component.HomeView{View: view}); err != nil {
		return 0, fmt.Errorf("mandelbrot: add home view: %w", err)
	}
	if err := ecs.Add(w, e, component.DragOriginComponent.Kind(), &component.DragOrigin{}); err != nil {
		return 0, fmt.Errorf("mandelbrot: add drag origin: %w", err)
	}

	size := float64(spec.Window.Height)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		ScaleX: size,
		ScaleY: size,
	}); err != nil {
		return 0, fmt.Errorf("mandelbrot: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.ControlsComponent.Kind(), &controls); err != nil {
		return 0, fmt.Errorf("mandelbrot: add controls: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("mandelbrot: add input: %w", err)
	}

	return e, nil
}

// ViewFromSpec converts a view prefab or bookmark into a View.
func ViewFromSpec(spec prefabs.ViewSpec) component.View {
	return component.View{
		Zoom:    spec.Zoom,
		CenterX: spec.CenterX,
		CenterY: spec.CenterY,
		Epsilon: spec.Epsilon,
	}
}

// SpecFromView is the inverse of ViewFromSpec.
func SpecFromView(v component.View) prefabs.ViewSpec {
	return prefabs.ViewSpec{
		Zoom:    v.Zoom,
		CenterX: v.CenterX,
		CenterY: v.CenterY,
		Epsilon: v.Epsilon,
	}
}

// BuildControls starts from the defaults and overrides every field the
// spec sets. Zero speeds fall back to the defaults.
func BuildControls(spec prefabs.ControlsSpec) (component.Controls, error) {
	c := component.DefaultControls()
	if spec.MoveSpeed != 0 {
		c.MoveSpeed = spec.MoveSpeed
	}
	if spec.MouseSpeed != 0 {
		c.MouseSpeed = spec.MouseSpeed
	}
	if spec.ZoomSpeed != 0 {
		c.ZoomSpeed = spec.ZoomSpeed
	}
	if spec.MaxFrameTime != 0 {
		c.MaxFrameTime = spec.MaxFrameTime
	}

	stepping, err := component.ParseZoomStepping(spec.ZoomStepping)
	if err != nil {
		return component.Controls{}, fmt.Errorf("controls: %w", err)
	}
	c.Stepping = stepping

	bindings := []struct {
		name string
		dst  *ebiten.Key
	}{
		{spec.Keys.PanLeft, &c.Keys.PanLeft},
		{spec.Keys.PanRight, &c.Keys.PanRight},
		{spec.Keys.PanUp, &c.Keys.PanUp},
		{spec.Keys.PanDown, &c.Keys.PanDown},
		{spec.Keys.ZoomIn, &c.Keys.ZoomIn},
		{spec.Keys.ZoomOut, &c.Keys.ZoomOut},
		{spec.Keys.CopyView, &c.Keys.CopyView},
		{spec.Keys.PasteView, &c.Keys.PasteView},
		{spec.Keys.ResetView, &c.Keys.ResetView},
		{spec.Keys.ToggleHUD, &c.Keys.ToggleHUD},
	}
	for _, b := range bindings {
		if b.name == "" {
			continue
		}
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(b.name)); err != nil {
			return component.Controls{}, fmt.Errorf("controls: key %q: %w", b.name, err)
		}
		*b.dst = k
	}

	return c, nil
}
