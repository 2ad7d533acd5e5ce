package system

import (
	"log"

	"github.com/milk9111/fractalview/ecs"
	"github.com/milk9111/fractalview/ecs/component"
	"github.com/milk9111/fractalview/ecs/entity"
	"github.com/milk9111/fractalview/prefabs"
)

// ConfigReloadSystem re-applies viewer.yaml when the prefab watcher
// reports a change. Controls and the home view are replaced; the live view
// is left where the user put it. A bad file keeps the previous settings.
type ConfigReloadSystem struct {
	events <-chan string
	errs   <-chan error
	load   func() (*prefabs.ViewerSpec, error)
}

func NewConfigReloadSystem(events <-chan string, errs <-chan error, load func() (*prefabs.ViewerSpec, error)) *ConfigReloadSystem {
	if load == nil {
		load = prefabs.LoadViewerSpec
	}
	return &ConfigReloadSystem{events: events, errs: errs, load: load}
}

func (s *ConfigReloadSystem) Update(w *ecs.World) {
	if w == nil || !s.pending() {
		return
	}

	spec, err := s.load()
	if err != nil {
		log.Printf("config reload: %v", err)
		return
	}
	controls, err := entity.BuildControls(spec.Controls)
	if err != nil {
		log.Printf("config reload: %v", err)
		return
	}
	home := entity.ViewFromSpec(spec.View)

	ecs.ForEach(w, component.ControlsComponent.Kind(), func(_ ecs.Entity, c *component.Controls) {
		*c = controls
	})
	ecs.ForEach(w, component.HomeViewComponent.Kind(), func(_ ecs.Entity, h *component.HomeView) {
		h.View = home
	})
	log.Printf("config reload: applied %s", prefabs.ViewerFile)
}

// pending drains the watcher channels without blocking and reports whether
// the viewer prefab changed.
func (s *ConfigReloadSystem) pending() bool {
	changed := false
	for {
		select {
		case name, ok := <-s.events:
			if !ok {
				s.events = nil
				continue
			}
			if name == prefabs.ViewerFile {
				changed = true
			}
		case err, ok := <-s.errs:
			if !ok {
				s.errs = nil
				continue
			}
			log.Printf("config reload: watcher: %v", err)
		default:
			return changed
		}
	}
}
