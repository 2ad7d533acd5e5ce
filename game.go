package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/fractalview/ecs"
	"github.com/milk9111/fractalview/ecs/component"
	"github.com/milk9111/fractalview/ecs/entity"
	"github.com/milk9111/fractalview/ecs/system"
	"github.com/milk9111/fractalview/prefabs"
	"github.com/milk9111/fractalview/shaders"
	"golang.org/x/image/colornames"
)

type Game struct {
	frames int
	debug  bool

	world     *ecs.World
	surface   ecs.Entity
	scheduler *ecs.Scheduler
	resizes   *ecs.EventQueue[component.ResizeEvent]
	watcher   *prefabs.Watcher

	outsideW float64
	outsideH float64
}

func NewGame(spec *prefabs.ViewerSpec, debug, watch bool) (*Game, error) {
	shader, err := ebiten.NewShader(shaders.Mandelbrot)
	if err != nil {
		return nil, fmt.Errorf("game: compile shader: %w", err)
	}

	world := ecs.NewWorld()
	surface, err := entity.NewMandelbrot(world, spec)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		debug:   debug,
		world:   world,
		surface: surface,
		resizes: ecs.NewEventQueue[component.ResizeEvent](),
	}

	var events <-chan string
	var errs <-chan error
	if watch {
		if w, err := prefabs.NewWatcher(prefabs.DiskDir); err != nil {
			log.Printf("prefab hot reload disabled: %v", err)
		} else {
			g.watcher = w
			events, errs = w.Events, w.Errors
		}
	}

	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(system.EbitenHost{}, g.resizes, nil),
		system.NewConfigReloadSystem(events, errs, prefabs.LoadViewerSpec),
		system.NewResizeSystem(),
		system.NewViewControlSystem(),
		system.NewCursorSystem(nil),
		system.NewBookmarkSystem(nil),
		system.NewRenderSystem(shader),
		system.NewHUDSystem(spec.HUD),
	)

	return g, nil
}

func (g *Game) Update() error {
	g.frames++
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	g.scheduler.Draw(g.world, screen)

	if g.debug {
		msg := fmt.Sprintf("Frames: %d    TPS: %.2f    FPS: %.2f", g.frames, ebiten.ActualTPS(), ebiten.ActualFPS())
		if view, ok := ecs.Get(g.world, g.surface, component.ViewComponent.Kind()); ok {
			u := view.Uniforms()
			msg += fmt.Sprintf("\nuniforms zoom=%g center=(%g, %g) epsilon=%g", u.Zoom, u.Center[0], u.Center[1], u.Epsilon)
		}
		ebitenutil.DebugPrintAt(screen, msg, 8, screen.Bounds().Dy()-40)
	}
}

// LayoutF reports a resize whenever the outside size changes; ebiten calls
// it every frame before Update.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth != g.outsideW || outsideHeight != g.outsideH {
		g.outsideW, g.outsideH = outsideWidth, outsideHeight
		g.resizes.Push(component.ResizeEvent{Width: outsideWidth, Height: outsideHeight})
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
