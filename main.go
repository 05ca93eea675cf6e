package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ajroz/tilestage/config"
)

func main() {
	configPath := flag.String("config", "tilestage.yaml", "path to the YAML config file")
	mapPath := flag.String("map", "", "map file to load (overrides config)")
	watch := flag.Bool("watch", false, "hot-reload the map file on change")
	debug := flag.Bool("debug", false, "draw the debug overlay")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("using default config: %v", err)
		cfg = config.Default()
	}
	path := cfg.Map
	if *mapPath != "" {
		path = *mapPath
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game := NewGame(cfg, path, *watch, *debug)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
