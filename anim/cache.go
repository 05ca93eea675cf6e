package anim

import "github.com/ajroz/tilestage/atlas"

// ClipID builds the cache key for an atlas key and animation kind,
// e.g. ClipID("player", "idle") == "player/idle".
func ClipID(atlasKey, kind string) string {
	return atlasKey + "/" + kind
}

// Cache lazily builds clips from an atlas and shares them by id. A clip id
// is "<atlasKey>/<kind>", e.g. "player/idle". Entries are never evicted;
// the id space is bounded by the distinct entity types and animation kinds
// in the content.
type Cache struct {
	catalog       *atlas.Atlas
	frameDuration float64
	clips         map[string]*Clip
}

// NewCache creates a clip cache over the given catalog. frameDuration is
// the fixed per-frame duration applied to every built clip.
func NewCache(catalog *atlas.Atlas, frameDuration float64) *Cache {
	return &Cache{
		catalog:       catalog,
		frameDuration: frameDuration,
		clips:         make(map[string]*Clip),
	}
}

// GetOrBuild returns the shared clip for id, building it on first
// reference. The catalog is only scanned on a miss; a hit returns the same
// clip instance every time. An id matching zero regions fails with
// *atlas.AssetError and caches nothing.
func (c *Cache) GetOrBuild(id string) (*Clip, error) {
	if clip, ok := c.clips[id]; ok {
		return clip, nil
	}
	regions := c.catalog.FindRegions(id)
	if len(regions) == 0 {
		return nil, &atlas.AssetError{Key: id}
	}
	clip := NewClip(regions, c.frameDuration)
	c.clips[id] = clip
	return clip, nil
}
