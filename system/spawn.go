package system

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/ajroz/tilestage/entity"
	"github.com/ajroz/tilestage/event"
)

// tintWhite is the default tint applied when a map object carries no color
// property, or a malformed one.
var tintWhite = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// SpawnResolver turns the entities layer of a newly loaded map into spawn
// requests. Requests are queued here and drained by the game at the start
// of the next tick, where the materializer consumes them.
type SpawnResolver struct {
	requests []entity.SpawnRequest
}

// NewSpawnResolver creates an empty resolver.
func NewSpawnResolver() *SpawnResolver {
	return &SpawnResolver{}
}

// HandleMapChanged queues one spawn request per object on the entities
// layer. An object without a type tag fails with *entity.ConfigError naming
// the object id; the failure skips only that object, and all such errors
// are joined into the returned error.
func (s *SpawnResolver) HandleMapChanged(ev event.MapChanged) (bool, error) {
	if s == nil || ev.Map == nil {
		return false, nil
	}
	var errs []error
	for _, obj := range ev.Map.Entities() {
		if strings.TrimSpace(obj.Type) == "" {
			errs = append(errs, &entity.ConfigError{
				Reason: fmt.Sprintf("missing entity type for object %d", obj.ID),
			})
			continue
		}
		s.requests = append(s.requests, entity.SpawnRequest{
			EntityType: obj.Type,
			X:          obj.X,
			Y:          obj.Y,
			Tint:       parseTint(obj.Properties["color"]),
		})
	}
	return false, errors.Join(errs...)
}

// Drain returns the queued spawn requests and clears the queue.
func (s *SpawnResolver) Drain() []entity.SpawnRequest {
	if s == nil || len(s.requests) == 0 {
		return nil
	}
	out := s.requests
	s.requests = nil
	return out
}

// Pending returns the number of queued spawn requests.
func (s *SpawnResolver) Pending() int {
	if s == nil {
		return 0
	}
	return len(s.requests)
}

// parseTint parses a color property: "#rrggbb" or "#rrggbbaa" hex, or an
// SVG 1.1 color name. Anything absent or malformed falls back to opaque
// white; a bad tint is a cosmetic issue, not a spawn failure.
func parseTint(value string) color.RGBA {
	v := strings.TrimSpace(strings.ToLower(value))
	if v == "" {
		return tintWhite
	}
	if hex, ok := strings.CutPrefix(v, "#"); ok {
		return parseHexTint(hex)
	}
	if named, ok := colornames.Map[v]; ok {
		return named
	}
	return tintWhite
}

func parseHexTint(hex string) color.RGBA {
	if len(hex) != 6 && len(hex) != 8 {
		return tintWhite
	}
	n, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return tintWhite
	}
	if len(hex) == 6 {
		n = n<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}
}
