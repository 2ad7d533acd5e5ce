package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fractalview/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	prefabDir := flag.String("prefabs", prefabs.DiskDir, "directory checked for prefab overrides before the embedded copies")
	watch := flag.Bool("watch", true, "hot reload viewer.yaml from the prefab directory")
	flag.Parse()

	prefabs.DiskDir = *prefabDir

	spec, err := prefabs.LoadViewerSpec()
	if err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	if spec.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowSize(spec.Window.Width, spec.Window.Height)
	title := spec.Window.Title
	if title == "" {
		title = "fractalview"
	}
	ebiten.SetWindowTitle(title)

	game, err := NewGame(spec, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
