package system

import (
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fractalview/ecs"
	"github.com/milk9111/fractalview/ecs/component"
	"github.com/milk9111/fractalview/ecs/entity"
	"github.com/milk9111/fractalview/prefabs"
)

func testSpec() *prefabs.ViewerSpec {
	return &prefabs.ViewerSpec{
		Window: prefabs.WindowSpec{Width: 1920, Height: 1080},
		View:   prefabs.ViewSpec{Zoom: 0.005, Epsilon: 1000},
	}
}

func newSurface(t *testing.T) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	e, err := entity.NewMandelbrot(w, testSpec())
	if err != nil {
		t.Fatalf("new mandelbrot: %v", err)
	}
	return w, e
}

func mustView(t *testing.T, w *ecs.World, e ecs.Entity) *component.View {
	t.Helper()
	v, ok := ecs.Get(w, e, component.ViewComponent.Kind())
	if !ok {
		t.Fatalf("entity has no view")
	}
	return v
}

func mustInput(t *testing.T, w *ecs.World, e ecs.Entity) *component.Input {
	t.Helper()
	in, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		t.Fatalf("entity has no input")
	}
	return in
}

// setFrame replaces the entity's input snapshot for one frame.
func setFrame(t *testing.T, w *ecs.World, e ecs.Entity, frame component.Input) {
	t.Helper()
	*mustInput(t, w, e) = frame
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-12*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// fakeHost is a scripted InputHost.
type fakeHost struct {
	held         []ebiten.Key
	just         []ebiten.Key
	justPressed  bool
	pressed      bool
	justReleased bool
	x, y         int
	wheelX       float64
	wheelY       float64
}

func (h *fakeHost) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, h.held...)
}

func (h *fakeHost) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, h.just...)
}

func (h *fakeHost) PrimaryButton() (bool, bool, bool) {
	return h.justPressed, h.pressed, h.justReleased
}

func (h *fakeHost) CursorPosition() (int, int) {
	return h.x, h.y
}

func (h *fakeHost) Wheel() (float64, float64) {
	return h.wheelX, h.wheelY
}

// stepClock returns a clock that advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}
