package maps

import (
	"embed"

	"github.com/ajroz/tilestage/tilemap"
)

//go:embed *.json
var MapsFS embed.FS

// Load loads an embedded map by name, e.g. "intro.json".
func Load(name string) (*tilemap.Map, error) {
	return tilemap.LoadFromFS(MapsFS, name)
}
