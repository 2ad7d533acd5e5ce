package entity

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fractalview/ecs"
	"github.com/milk9111/fractalview/ecs/component"
	"github.com/milk9111/fractalview/prefabs"
)

func TestNewMandelbrot(t *testing.T) {
	spec, err := prefabs.LoadViewerSpec()
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}

	w := ecs.NewWorld()
	e, err := NewMandelbrot(w, spec)
	if err != nil {
		t.Fatalf("new mandelbrot: %v", err)
	}

	view, ok := ecs.Get(w, e, component.ViewComponent.Kind())
	if !ok || view.Zoom != 0.005 || view.CenterX != 0 || view.CenterY != 0 || view.Epsilon != 1000 {
		t.Fatalf("unexpected view %+v", view)
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || transform.ScaleY != 1080 || transform.ScaleX != 1080 {
		t.Fatalf("unexpected transform %+v", transform)
	}
	for name, has := range map[string]bool{
		"tag":         ecs.Has(w, e, component.MandelbrotComponent.Kind()),
		"home":        ecs.Has(w, e, component.HomeViewComponent.Kind()),
		"drag_origin": ecs.Has(w, e, component.DragOriginComponent.Kind()),
		"controls":    ecs.Has(w, e, component.ControlsComponent.Kind()),
		"input":       ecs.Has(w, e, component.InputComponent.Kind()),
	} {
		if !has {
			t.Fatalf("missing %s component", name)
		}
	}

	if _, err := NewMandelbrot(w, nil); err == nil {
		t.Fatalf("expected error for nil spec")
	}
}

func TestBuildControls(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := BuildControls(prefabs.ControlsSpec{})
		if err != nil {
			t.Fatal(err)
		}
		if c != component.DefaultControls() {
			t.Fatalf("expected defaults, got %+v", c)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		c, err := BuildControls(prefabs.ControlsSpec{
			ZoomSpeed:    4,
			ZoomStepping: "exponential",
			Keys:         prefabs.KeysSpec{ZoomIn: "PageUp", PanLeft: "H"},
		})
		if err != nil {
			t.Fatal(err)
		}
		if c.ZoomSpeed != 4 || c.Stepping != component.ZoomExponential {
			t.Fatalf("unexpected controls %+v", c)
		}
		if c.Keys.ZoomIn != ebiten.KeyPageUp || c.Keys.PanLeft != ebiten.KeyH {
			t.Fatalf("unexpected keys %+v", c.Keys)
		}
		if c.Keys.ZoomOut != ebiten.KeyA {
			t.Fatalf("unset key should keep default, got %v", c.Keys.ZoomOut)
		}
	})

	t.Run("errors", func(t *testing.T) {
		if _, err := BuildControls(prefabs.ControlsSpec{ZoomStepping: "cubic"}); err == nil {
			t.Fatalf("expected stepping error")
		}
		if _, err := BuildControls(prefabs.ControlsSpec{Keys: prefabs.KeysSpec{ZoomIn: "NotAKey"}}); err == nil {
			t.Fatalf("expected key error")
		}
	})
}

func TestViewSpecRoundTrip(t *testing.T) {
	v := component.View{Zoom: 2e-7, CenterX: -1.25, CenterY: 0.02, Epsilon: 1000}
	if got := ViewFromSpec(SpecFromView(v)); got != v {
		t.Fatalf("expected %+v, got %+v", v, got)
	}
}
