package system

import (
	"errors"
	"log"
	"sync"

	"github.com/milk9111/fractalview/ecs"
	"github.com/milk9111/fractalview/ecs/component"
	"github.com/milk9111/fractalview/ecs/entity"
	"github.com/milk9111/fractalview/prefabs"
	"golang.design/x/clipboard"
)

// Clipboard is a plain-text clipboard.
type Clipboard interface {
	ReadText() ([]byte, error)
	WriteText(data []byte) error
}

// SystemClipboard talks to the OS clipboard, initialising it on first use.
type SystemClipboard struct {
	once sync.Once
	err  error
}

func (c *SystemClipboard) init() error {
	c.once.Do(func() {
		c.err = clipboard.Init()
	})
	return c.err
}

func (c *SystemClipboard) ReadText() ([]byte, error) {
	if err := c.init(); err != nil {
		return nil, err
	}
	return clipboard.Read(clipboard.FmtText), nil
}

func (c *SystemClipboard) WriteText(data []byte) error {
	if err := c.init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, data)
	return nil
}

var errEmptyClipboard = errors.New("clipboard is empty")

// BookmarkSystem copies the view to the clipboard as YAML, pastes a view
// back from it and resets to the home view.
type BookmarkSystem struct {
	clip Clipboard
}

func NewBookmarkSystem(clip Clipboard) *BookmarkSystem {
	if clip == nil {
		clip = &SystemClipboard{}
	}
	return &BookmarkSystem{clip: clip}
}

func (s *BookmarkSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.ViewComponent.Kind(), func(e ecs.Entity, view *component.View) {
		input, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok || len(input.JustPressed) == 0 {
			return
		}
		keys := component.DefaultControls().Keys
		if c, ok := ecs.Get(w, e, component.ControlsComponent.Kind()); ok {
			keys = c.Keys
		}

		if input.IsJustPressed(keys.CopyView) {
			if err := s.copy(*view); err != nil {
				log.Printf("bookmark: copy view: %v", err)
			}
		}
		if input.IsJustPressed(keys.PasteView) {
			if err := s.paste(view); err != nil {
				log.Printf("bookmark: paste view: %v", err)
			}
		}
		if input.IsJustPressed(keys.ResetView) {
			if home, ok := ecs.Get(w, e, component.HomeViewComponent.Kind()); ok {
				*view = home.View
			}
		}
	})
}

func (s *BookmarkSystem) copy(view component.View) error {
	data, err := prefabs.EncodeBookmark(entity.SpecFromView(view))
	if err != nil {
		return err
	}
	return s.clip.WriteText(data)
}

func (s *BookmarkSystem) paste(view *component.View) error {
	data, err := s.clip.ReadText()
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return errEmptyClipboard
	}
	spec, err := prefabs.DecodeBookmark(data)
	if err != nil {
		return err
	}
	next := entity.ViewFromSpec(spec)
	if next.Epsilon == 0 {
		next.Epsilon = view.Epsilon
	}
	if !next.Valid() {
		return errors.New("bookmark holds a non-finite view")
	}
	*view = next
	return nil
}
