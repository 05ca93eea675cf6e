package tilemap

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// EntitiesLayerName is the designated object layer that spawnable entities
// are read from.
const EntitiesLayerName = "entities"

// Map is a tile map stored as JSON: a stack of named tile layers plus named
// object layers.
type Map struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	TileSize int `json:"tile_size"`

	// TileLayers are drawn in declaration order, index 0 at the bottom.
	TileLayers []*TileLayer `json:"tile_layers"`

	ObjectLayers []ObjectLayer `json:"object_layers,omitempty"`
}

// ObjectLayer is a named list of placed map objects.
type ObjectLayer struct {
	Name    string      `json:"name"`
	Objects []MapObject `json:"objects,omitempty"`
}

// MapObject is one placed object. Type selects the spawned entity kind;
// X and Y are world units. Properties carries optional per-object data such
// as a "color" tint.
type MapObject struct {
	ID         int               `json:"id"`
	Name       string            `json:"name,omitempty"`
	Type       string            `json:"type,omitempty"`
	X          float64           `json:"x"`
	Y          float64           `json:"y"`
	Properties map[string]string `json:"properties,omitempty"`
}

// Load loads a map from a JSON file at path.
func Load(path string) (*Map, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return loadFromBytes(b)
}

// LoadFromFS loads a map JSON from an fs.FS (e.g. embedded maps).
func LoadFromFS(fsys fs.FS, path string) (*Map, error) {
	clean := strings.TrimPrefix(filepath.ToSlash(path), "maps/")
	b, err := fs.ReadFile(fsys, clean)
	if err != nil {
		return nil, err
	}
	return loadFromBytes(b)
}

func loadFromBytes(b []byte) (*Map, error) {
	var m Map
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	if m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("tilemap: invalid map dimensions: %dx%d", m.Width, m.Height)
	}
	if m.TileSize <= 0 {
		m.TileSize = 16
	}
	for _, l := range m.TileLayers {
		if len(l.Tiles) != m.Width*m.Height {
			return nil, fmt.Errorf("tilemap: layer %q has %d tiles, want %d", l.Name, len(l.Tiles), m.Width*m.Height)
		}
	}
	return &m, nil
}

// Entities returns the objects of the designated entities layer, or nil
// when the map has none.
func (m *Map) Entities() []MapObject {
	if m == nil {
		return nil
	}
	for _, layer := range m.ObjectLayers {
		if layer.Name == EntitiesLayerName {
			return layer.Objects
		}
	}
	return nil
}
