package system

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/fractalview/ecs"
	"github.com/milk9111/fractalview/ecs/component"
)

// InputHost is the slice of the windowing host the input system polls.
type InputHost interface {
	AppendPressedKeys(keys []ebiten.Key) []ebiten.Key
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	PrimaryButton() (justPressed, held, justReleased bool)
	CursorPosition() (int, int)
	Wheel() (float64, float64)
}

// EbitenHost reads input from the running ebiten game.
type EbitenHost struct{}

func (EbitenHost) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendPressedKeys(keys)
}

func (EbitenHost) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (EbitenHost) PrimaryButton() (bool, bool, bool) {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (EbitenHost) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (EbitenHost) Wheel() (float64, float64) {
	return ebiten.Wheel()
}

// InputSystem snapshots host input once per frame into every Input
// component and drains the resize and wheel queues into it.
type InputSystem struct {
	host    InputHost
	resizes *ecs.EventQueue[component.ResizeEvent]
	wheel   *ecs.EventQueue[component.WheelEvent]
	now     func() time.Time
	last    time.Time

	width  float64
	height float64

	held []ebiten.Key
	just []ebiten.Key
}

func NewInputSystem(host InputHost, resizes *ecs.EventQueue[component.ResizeEvent], wheel *ecs.EventQueue[component.WheelEvent]) *InputSystem {
	if host == nil {
		host = EbitenHost{}
	}
	return &InputSystem{
		host:    host,
		resizes: resizes,
		wheel:   wheel,
		now:     time.Now,
	}
}

// SetClock replaces the wall clock used to measure frame time.
func (i *InputSystem) SetClock(now func() time.Time) {
	i.now = now
	i.last = time.Time{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	now := i.now()
	dt := 0.0
	if !i.last.IsZero() {
		dt = now.Sub(i.last).Seconds()
	}
	i.last = now

	resizes := i.resizes.Drain()
	for _, r := range resizes {
		i.width, i.height = r.Width, r.Height
	}

	// ebiten normalises wheel deltas to line-like steps
	wheel := i.wheel.Drain()
	if wx, wy := i.host.Wheel(); wx != 0 || wy != 0 {
		wheel = append(wheel, component.WheelEvent{Unit: component.ScrollLine, X: wx, Y: wy})
	}

	i.held = i.host.AppendPressedKeys(i.held[:0])
	i.just = i.host.AppendJustPressedKeys(i.just[:0])
	justPressed, held, justReleased := i.host.PrimaryButton()

	mx, my := i.host.CursorPosition()
	cx, cy := float64(mx), float64(my)
	cursorValid := cx >= 0 && cy >= 0 && cx < i.width && cy < i.height

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		frame := dt
		if c, ok := ecs.Get(w, e, component.ControlsComponent.Kind()); ok && c.MaxFrameTime > 0 && frame > c.MaxFrameTime {
			frame = c.MaxFrameTime
		}

		input.Held = append(input.Held[:0], i.held...)
		input.JustPressed = append(input.JustPressed[:0], i.just...)
		input.Wheel = wheel
		input.Resizes = resizes
		input.PrimaryJustPressed = justPressed
		input.PrimaryHeld = held
		input.PrimaryJustReleased = justReleased
		input.CursorX = cx
		input.CursorY = cy
		input.CursorValid = cursorValid
		input.DT = frame
	})
}
