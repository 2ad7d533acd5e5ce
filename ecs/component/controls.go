package component

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ZoomStepping selects how a zoom rate is integrated over a frame.
type ZoomStepping int

const (
	// ZoomEuler applies zoom += rate*zoom once per frame.
	ZoomEuler ZoomStepping = iota
	// ZoomExponential applies zoom *= e^rate.
	ZoomExponential
)

func (s ZoomStepping) String() string {
	switch s {
	case ZoomEuler:
		return "euler"
	case ZoomExponential:
		return "exponential"
	default:
		return "unknown"
	}
}

// ParseZoomStepping accepts the names produced by String. Empty means euler.
func ParseZoomStepping(s string) (ZoomStepping, error) {
	switch s {
	case "", "euler":
		return ZoomEuler, nil
	case "exponential":
		return ZoomExponential, nil
	default:
		return 0, fmt.Errorf("component: unknown zoom stepping %q", s)
	}
}

// Step applies rate to v using this integration model.
func (s ZoomStepping) Step(v *View, rate float64) bool {
	if s == ZoomExponential {
		return v.ZoomExp(rate)
	}
	return v.ZoomBy(rate)
}

type KeyBindings struct {
	PanLeft   ebiten.Key
	PanRight  ebiten.Key
	PanUp     ebiten.Key
	PanDown   ebiten.Key
	ZoomIn    ebiten.Key
	ZoomOut   ebiten.Key
	CopyView  ebiten.Key
	PasteView ebiten.Key
	ResetView ebiten.Key
	ToggleHUD ebiten.Key
}

// Controls tunes how input maps onto the view.
type Controls struct {
	// MoveSpeed is the keyboard pan rate in screen pixels per second.
	MoveSpeed float64
	// MouseSpeed scales the per-frame drag delta.
	MouseSpeed float64
	// ZoomSpeed is the relative zoom rate per second.
	ZoomSpeed float64
	// MaxFrameTime caps the frame duration fed to the controller.
	MaxFrameTime float64
	Stepping     ZoomStepping
	Keys         KeyBindings
}

var ControlsComponent = NewComponent[Controls]()

const (
	DefaultMoveSpeed    = 200.0
	DefaultMouseSpeed   = 100.0
	DefaultZoomSpeed    = 2.5
	DefaultMaxFrameTime = 0.1
)

func DefaultControls() Controls {
	return Controls{
		MoveSpeed:    DefaultMoveSpeed,
		MouseSpeed:   DefaultMouseSpeed,
		ZoomSpeed:    DefaultZoomSpeed,
		MaxFrameTime: DefaultMaxFrameTime,
		Stepping:     ZoomEuler,
		Keys: KeyBindings{
			PanLeft:   ebiten.KeyArrowLeft,
			PanRight:  ebiten.KeyArrowRight,
			PanUp:     ebiten.KeyArrowUp,
			PanDown:   ebiten.KeyArrowDown,
			ZoomIn:    ebiten.KeyE,
			ZoomOut:   ebiten.KeyA,
			CopyView:  ebiten.KeyC,
			PasteView: ebiten.KeyV,
			ResetView: ebiten.KeyR,
			ToggleHUD: ebiten.KeyF1,
		},
	}
}
