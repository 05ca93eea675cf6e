package tilemap

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ajroz/tilestage/atlas"
)

// TileLayer owns the tile data and drawing for a single layer. Tiles is a
// flat row-major array of length Width*Height; value 0 is empty, value v>0
// selects frame v-1 of the layer's tileset key in the atlas.
type TileLayer struct {
	Name    string `json:"name"`
	Tileset string `json:"tileset,omitempty"`
	Tiles   []int  `json:"tiles"`

	frames []*atlas.Region
	bound  bool
}

// Bind resolves the layer's tileset frames from the catalog. Draw binds
// lazily, so calling this is optional; it exists so a map change can rebind
// eagerly.
func (l *TileLayer) Bind(catalog *atlas.Atlas) {
	if l == nil || catalog == nil {
		return
	}
	l.frames = catalog.FindRegions(l.Tileset)
	l.bound = true
}

// Draw renders the layer. camX and camY are the world-space camera origin
// in pixels; zoom scales around it.
func (l *TileLayer) Draw(screen *ebiten.Image, m *Map, catalog *atlas.Atlas, camX, camY, zoom float64) {
	if l == nil || screen == nil || m == nil {
		return
	}
	if !l.bound {
		l.Bind(catalog)
	}
	if len(l.frames) == 0 || len(l.Tiles) != m.Width*m.Height {
		return
	}
	if zoom <= 0 {
		zoom = 1
	}

	ts := float64(m.TileSize)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			v := l.Tiles[y*m.Width+x]
			if v <= 0 || v > len(l.frames) {
				continue
			}
			frame := l.frames[v-1]
			if frame == nil || frame.Img == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(zoom, zoom)
			sx := (float64(x)*ts - camX) * zoom
			sy := (float64(y)*ts - camY) * zoom
			op.GeoM.Translate(math.Round(sx), math.Round(sy))
			op.Filter = ebiten.FilterNearest
			screen.DrawImage(frame.Img, op)
		}
	}
}
