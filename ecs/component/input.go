package component

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// ScrollUnit tags how a wheel delta is measured.
type ScrollUnit int

const (
	ScrollLine ScrollUnit = iota
	ScrollPixel
)

func (u ScrollUnit) String() string {
	switch u {
	case ScrollLine:
		return "line"
	case ScrollPixel:
		return "pixel"
	default:
		return "unknown"
	}
}

// WheelEvent is one scroll step. Positive Y scrolls away from the user.
type WheelEvent struct {
	Unit ScrollUnit
	X    float64
	Y    float64
}

// ResizeEvent carries the absolute window size after a resize.
type ResizeEvent struct {
	Width  float64
	Height float64
}

// Input is the per-frame snapshot of host input for an entity. Wheel and
// Resizes hold exactly the events delivered since the previous frame.
type Input struct {
	Held        []ebiten.Key
	JustPressed []ebiten.Key

	Wheel   []WheelEvent
	Resizes []ResizeEvent

	PrimaryJustPressed  bool
	PrimaryHeld         bool
	PrimaryJustReleased bool

	CursorX     float64
	CursorY     float64
	CursorValid bool

	// DT is the elapsed time since the previous frame in seconds.
	DT float64
}

var InputComponent = NewComponent[Input]()

func (in *Input) IsHeld(k ebiten.Key) bool {
	return slices.Contains(in.Held, k)
}

func (in *Input) IsJustPressed(k ebiten.Key) bool {
	return slices.Contains(in.JustPressed, k)
}

// Cursor returns the cursor position, or the origin when the host could
// not report one.
func (in *Input) Cursor() (float64, float64) {
	if !in.CursorValid {
		return 0, 0
	}
	return in.CursorX, in.CursorY
}
