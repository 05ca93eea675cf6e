// mapcheck validates a map file against an atlas manifest: every placed
// object must have a spawn type whose idle animation exists, and every tile
// layer a known tileset key. It runs headless and exits non-zero on any
// content error.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ajroz/tilestage/anim"
	"github.com/ajroz/tilestage/assets"
	"github.com/ajroz/tilestage/atlas"
	"github.com/ajroz/tilestage/config"
	"github.com/ajroz/tilestage/entity"
	"github.com/ajroz/tilestage/tilemap"
)

func main() {
	configPath := flag.String("config", "tilestage.yaml", "path to the YAML config file")
	mapPath := flag.String("map", "", "map file to check (default: the configured map)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		cfg = config.Default()
	}
	path := cfg.Map
	if *mapPath != "" {
		path = *mapPath
	}

	manifest, err := assets.LoadFile(cfg.Atlas)
	if err != nil {
		log.Fatalf("read atlas manifest %s: %v", cfg.Atlas, err)
	}
	// Region metadata is enough for validation; no images are decoded.
	catalog, err := atlas.FromManifest(manifest, nil)
	if err != nil {
		log.Fatalf("build atlas from %s: %v", cfg.Atlas, err)
	}

	m, err := tilemap.Load(path)
	if err != nil {
		log.Fatalf("load map %s: %v", path, err)
	}

	aliases := entity.DefaultAliases()
	for k, v := range cfg.SpawnAliases {
		aliases[k] = v
	}

	failures := 0
	report := func(format string, args ...any) {
		failures++
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}

	for _, layer := range m.TileLayers {
		if layer.Tileset == "" {
			continue
		}
		if len(catalog.FindRegions(layer.Tileset)) == 0 {
			report("layer %q: no regions for tileset key %q", layer.Name, layer.Tileset)
		}
	}

	clips := anim.NewCache(catalog, cfg.FrameDuration())
	materializer := entity.NewMaterializer(nil, clips, cfg.PixelsPerUnit, aliases)
	for _, obj := range m.Entities() {
		key, err := materializer.AtlasKey(obj.Type)
		if err != nil {
			report("object %d (%s): %v", obj.ID, obj.Name, err)
			continue
		}
		if _, err := clips.GetOrBuild(anim.ClipID(key, entity.IdleAnimation)); err != nil {
			report("object %d (%s): %v", obj.ID, obj.Name, err)
		}
	}

	if failures > 0 {
		log.Fatalf("%s: %d problem(s)", path, failures)
	}
	fmt.Printf("%s: ok (%d tile layers, %d entities)\n", path, len(m.TileLayers), len(m.Entities()))
}
