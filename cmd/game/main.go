package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/DetectiveFierce/pause-menu/internal/application/game"
	"github.com/DetectiveFierce/pause-menu/internal/infrastructure/config"
	"github.com/DetectiveFierce/pause-menu/internal/render"
)

//go:embed configs
var configFS embed.FS

func main() {
	configDir := flag.String("configs", "", "Load configs from a directory instead of the built-in ones")
	debugFlag := flag.Bool("debug", false, "Start with the debug overlay enabled")
	flag.Parse()

	var loader *config.Loader
	if *configDir != "" {
		loader = config.NewLoader(*configDir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			log.Fatalf("Failed to get config subfs: %v", err)
		}
		loader = config.NewFSLoader(fsys)
	}

	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *debugFlag {
		cfg.UI.Debug.Overlay = true
	}

	measurer := render.NewFaceMeasurer()
	raster, err := render.NewRasterizer(measurer)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	g := game.New(cfg, measurer, raster)

	ebiten.SetWindowSize(cfg.UI.Display.ScreenWidth, cfg.UI.Display.ScreenHeight)
	ebiten.SetWindowTitle(cfg.UI.Display.Title)
	if cfg.UI.Display.Framerate > 0 {
		ebiten.SetTPS(cfg.UI.Display.Framerate)
	}
	if cfg.UI.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
