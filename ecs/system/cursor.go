package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fractalview/ecs"
	"github.com/milk9111/fractalview/ecs/component"
)

// CursorSystem applies cursor visibility requests to the host. The host is
// only called when the visibility actually changes.
type CursorSystem struct {
	setVisible func(bool)
	visible    bool
}

func NewCursorSystem(setVisible func(bool)) *CursorSystem {
	if setVisible == nil {
		setVisible = setEbitenCursorVisible
	}
	return &CursorSystem{setVisible: setVisible, visible: true}
}

func setEbitenCursorVisible(visible bool) {
	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
}

func (s *CursorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	requested := s.visible
	pending := false
	ecs.ForEach(w, component.CursorRequestComponent.Kind(), func(e ecs.Entity, req *component.CursorRequest) {
		requested = req.Visible
		pending = true
		_ = ecs.Remove(w, e, component.CursorRequestComponent.Kind())
	})

	if pending && requested != s.visible {
		s.visible = requested
		s.setVisible(requested)
	}
}
