package entity

import (
	"fmt"
	"strings"

	"github.com/ajroz/tilestage/anim"
)

// IdleAnimation is the animation kind every freshly spawned entity starts
// in, and the one used to resolve its reference size.
const IdleAnimation = "idle"

// DefaultLayer is the render layer assigned to spawned entities.
const DefaultLayer = 1

// DefaultAliases maps curated entity type names to their atlas keys. Types
// without an alias lowercase to their own key.
func DefaultAliases() map[string]string {
	return map[string]string{
		"Player": "player",
	}
}

// spawnSize is a cached reference size in world units, keyed by atlas key.
type spawnSize struct {
	w float64
	h float64
}

// Materializer turns spawn requests into live entities. The type→atlas-key
// mapping and the per-key reference size are resolved once and cached for
// the session.
type Materializer struct {
	registry  *Registry
	clips     *anim.Cache
	unitScale float64

	aliases map[string]string
	configs map[string]string
	sizes   map[string]spawnSize
}

// NewMaterializer creates a materializer. unitScale is pixels per world
// unit; aliases may be nil to use the defaults.
func NewMaterializer(registry *Registry, clips *anim.Cache, unitScale float64, aliases map[string]string) *Materializer {
	if aliases == nil {
		aliases = DefaultAliases()
	}
	return &Materializer{
		registry:  registry,
		clips:     clips,
		unitScale: unitScale,
		aliases:   aliases,
		configs:   make(map[string]string),
		sizes:     make(map[string]spawnSize),
	}
}

// Materialize consumes a spawn request and creates one live entity: atlas
// key resolved via the config cache, rect sized from the idle clip's first
// frame, playback state pointed at the idle clip. The entity only becomes
// visible once fully constructed; on error nothing is registered.
func (m *Materializer) Materialize(req SpawnRequest) (*Entity, error) {
	key, err := m.AtlasKey(req.EntityType)
	if err != nil {
		return nil, err
	}
	w, h, err := m.referenceSize(key)
	if err != nil {
		return nil, err
	}

	e := &Entity{
		Name:      req.EntityType,
		Rect:      Rect{X: req.X, Y: req.Y, W: w, H: h},
		Layer:     DefaultLayer,
		Tint:      req.Tint,
		Anim:      anim.NewState(key, anim.Loop),
		unitScale: m.unitScale,
	}
	e.Anim.SetClip(anim.ClipID(key, IdleAnimation))

	m.registry.Add(e)
	return e, nil
}

// AtlasKey resolves the atlas key for an entity type, caching the result.
// Curated aliases win; any other non-blank type lowercases to its own key.
func (m *Materializer) AtlasKey(entityType string) (string, error) {
	if key, ok := m.configs[entityType]; ok {
		return key, nil
	}
	trimmed := strings.TrimSpace(entityType)
	if trimmed == "" {
		return "", &ConfigError{Reason: "spawn type must be specified"}
	}
	key, ok := m.aliases[trimmed]
	if !ok {
		key = strings.ToLower(trimmed)
	}
	m.configs[entityType] = key
	return key, nil
}

// referenceSize reads the idle clip's first frame and scales its native
// pixel size into world units, caching per atlas key.
func (m *Materializer) referenceSize(atlasKey string) (float64, float64, error) {
	if size, ok := m.sizes[atlasKey]; ok {
		return size.w, size.h, nil
	}
	clip, err := m.clips.GetOrBuild(anim.ClipID(atlasKey, IdleAnimation))
	if err != nil {
		return 0, 0, err
	}
	frame := clip.Frame(0)
	if frame == nil {
		return 0, 0, fmt.Errorf("entity: empty idle clip for atlas key %q", atlasKey)
	}
	scale := m.unitScale
	if scale <= 0 {
		scale = 1
	}
	size := spawnSize{w: float64(frame.W) / scale, h: float64(frame.H) / scale}
	m.sizes[atlasKey] = size
	return size.w, size.h, nil
}
