package system

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ajroz/tilestage/atlas"
	"github.com/ajroz/tilestage/entity"
	"github.com/ajroz/tilestage/event"
	"github.com/ajroz/tilestage/stage"
	"github.com/ajroz/tilestage/tilemap"
)

// ForegroundPrefix marks a tile layer as drawn in front of the actors.
const ForegroundPrefix = "fgd"

// RenderSystem draws the frame: viewport transform, background tile layers,
// actors in depth order, foreground tile layers. On a map change it
// repartitions the map's tile layers into the two sets.
type RenderSystem struct {
	stage   *stage.Stage
	catalog *atlas.Atlas

	m          *tilemap.Map
	background []*tilemap.TileLayer
	foreground []*tilemap.TileLayer
}

// NewRenderSystem creates a render system drawing the given stage.
func NewRenderSystem(st *stage.Stage, catalog *atlas.Atlas) *RenderSystem {
	return &RenderSystem{stage: st, catalog: catalog}
}

// HandleMapChanged clears and repartitions the tile layers of the new map.
// Layers whose name starts with the foreground prefix draw in front of the
// actors; all others behind. Each set keeps the map's declaration order.
func (s *RenderSystem) HandleMapChanged(ev event.MapChanged) (bool, error) {
	if s == nil {
		return false, nil
	}
	s.m = ev.Map
	s.background = nil
	s.foreground = nil
	if ev.Map == nil {
		return false, nil
	}
	for _, layer := range ev.Map.TileLayers {
		layer.Bind(s.catalog)
		if strings.HasPrefix(layer.Name, ForegroundPrefix) {
			s.foreground = append(s.foreground, layer)
		} else {
			s.background = append(s.background, layer)
		}
	}
	return false, nil
}

// Background returns the background tile layers in draw order.
func (s *RenderSystem) Background() []*tilemap.TileLayer {
	return s.background
}

// Foreground returns the foreground tile layers in draw order.
func (s *RenderSystem) Foreground() []*tilemap.TileLayer {
	return s.foreground
}

// Draw renders one frame.
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	if s == nil || screen == nil || s.stage == nil {
		return
	}
	camX, camY, zoom := s.stage.Camera().Apply()

	for _, layer := range s.background {
		layer.Draw(screen, s.m, s.catalog, camX, camY, zoom)
	}

	s.stage.SortActors(actorDrawsBefore)
	s.stage.Draw(screen)

	for _, layer := range s.foreground {
		layer.Draw(screen, s.m, s.catalog, camX, camY, zoom)
	}
}

// actorDrawsBefore orders stage actors for drawing: lower layers first,
// then greater x first within a layer (right-to-left paint order for
// pseudo-depth). The sort is stable, so equal keys keep insertion order and
// never flicker. Non-entity actors keep their place.
func actorDrawsBefore(a, b stage.Actor) bool {
	ea, aok := a.(*entity.Entity)
	eb, bok := b.(*entity.Entity)
	if !aok || !bok {
		return false
	}
	return drawsBefore(ea, eb)
}

func drawsBefore(a, b *entity.Entity) bool {
	if a.Layer != b.Layer {
		return a.Layer < b.Layer
	}
	return a.Rect.X > b.Rect.X
}
