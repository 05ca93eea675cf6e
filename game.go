package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/ajroz/tilestage/anim"
	"github.com/ajroz/tilestage/assets"
	"github.com/ajroz/tilestage/atlas"
	"github.com/ajroz/tilestage/config"
	"github.com/ajroz/tilestage/entity"
	"github.com/ajroz/tilestage/event"
	"github.com/ajroz/tilestage/maps"
	"github.com/ajroz/tilestage/stage"
	"github.com/ajroz/tilestage/system"
	"github.com/ajroz/tilestage/tilemap"
)

// tickDelta is the fixed per-frame delta. Ebiten drives Update at 60 TPS.
const tickDelta = 1.0 / 60

type Game struct {
	cfg     *config.Config
	mapPath string
	debug   bool
	frames  int

	stage        *stage.Stage
	catalog      *atlas.Atlas
	clips        *anim.Cache
	registry     *entity.Registry
	materializer *entity.Materializer
	resolver     *system.SpawnResolver
	animation    *system.AnimationSystem
	render       *system.RenderSystem
	dispatcher   *event.Dispatcher
	watcher      *tilemap.Watcher
}

func NewGame(cfg *config.Config, mapPath string, watch, debug bool) *Game {
	catalog := loadCatalog(cfg.Atlas)
	clips := anim.NewCache(catalog, cfg.FrameDuration())
	st := stage.New()
	registry := entity.NewRegistry(st)

	aliases := entity.DefaultAliases()
	for k, v := range cfg.SpawnAliases {
		aliases[k] = v
	}

	g := &Game{
		cfg:          cfg,
		mapPath:      mapPath,
		debug:        debug,
		stage:        st,
		catalog:      catalog,
		clips:        clips,
		registry:     registry,
		materializer: entity.NewMaterializer(registry, clips, cfg.PixelsPerUnit, aliases),
		resolver:     system.NewSpawnResolver(),
		animation:    system.NewAnimationSystem(clips, registry),
		render:       system.NewRenderSystem(st, catalog),
		dispatcher:   &event.Dispatcher{},
	}

	// Dispatch order: layers repartition first, the old map's entities are
	// culled second, new spawns queue last.
	g.dispatcher.Subscribe(g.render)
	g.dispatcher.Subscribe(g.registry)
	g.dispatcher.Subscribe(g.resolver)

	g.loadMap(mapPath)

	if watch && mapPath != "" {
		w, err := tilemap.NewWatcher(mapPath)
		if err != nil {
			log.Printf("map watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g
}

// loadCatalog builds the texture atlas from its manifest. A missing or
// broken manifest leaves an empty catalog; every clip build will then fail
// loudly with the offending key.
func loadCatalog(manifestPath string) *atlas.Atlas {
	data, err := assets.LoadFile(manifestPath)
	if err != nil {
		log.Printf("failed to read atlas manifest %s: %v", manifestPath, err)
		return atlas.New()
	}
	catalog, err := atlas.FromManifest(data, assets.LoadImage)
	if err != nil {
		log.Printf("failed to build atlas from %s: %v", manifestPath, err)
		return atlas.New()
	}
	return catalog
}

// loadMap loads a map file, preferring disk over the embedded copy, and
// broadcasts the change. A failed load keeps the game running without a
// map; a broken map file is recoverable content, not a crash.
func (g *Game) loadMap(path string) {
	if path == "" {
		return
	}
	m, err := tilemap.Load(path)
	if err != nil {
		m, err = maps.Load(path)
	}
	if err != nil {
		log.Printf("failed to load map %s, continuing without a map: %v", path, err)
		return
	}
	if err := g.dispatcher.Publish(event.MapChanged{Map: m}); err != nil {
		log.Printf("map change for %s: %v", path, err)
	}
}

func (g *Game) Update() error {
	g.frames++

	g.drainReloads()

	// Safe point: apply deferred destruction and materialize queued spawns
	// before any system iterates the stage.
	g.registry.Flush()
	for _, req := range g.resolver.Drain() {
		if _, err := g.materializer.Materialize(req); err != nil {
			log.Printf("spawn %q at (%.1f, %.1f): %v", req.EntityType, req.X, req.Y, err)
		}
	}

	if err := g.animation.Update(tickDelta); err != nil {
		log.Printf("animation: %v", err)
	}
	g.stage.Act(tickDelta)

	return nil
}

// drainReloads applies pending hot-reload events on the game goroutine, so
// map swaps never race the tick.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("map file changed, reloading %s", path)
			g.loadMap(path)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("map watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(screen)
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Entities: %d",
			g.frames, ebiten.ActualFPS(), len(g.registry.Entities())))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
