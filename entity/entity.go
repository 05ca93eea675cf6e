package entity

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ajroz/tilestage/anim"
	"github.com/ajroz/tilestage/atlas"
)

// Rect is an axis-aligned box in world units.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Entity is a live, renderable, animated game object. It carries its own
// playback state and its currently presented frame; clips themselves are
// shared through the clip cache and never owned here.
type Entity struct {
	ID    int
	Name  string
	Rect  Rect
	Layer int
	Tint  color.RGBA
	Anim  *anim.State

	// unitScale converts world units back to pixels at draw time.
	unitScale float64
	frame     *atlas.Region
}

// SetFrame updates the presented frame. Called by the animation system once
// per tick.
func (e *Entity) SetFrame(r *atlas.Region) {
	if e == nil {
		return
	}
	e.frame = r
}

// Frame returns the currently presented frame, if any.
func (e *Entity) Frame() *atlas.Region {
	if e == nil {
		return nil
	}
	return e.frame
}

// Act is the per-frame update hook. Playback time is advanced by the
// animation system, not here.
func (e *Entity) Act(delta float64) {}

// Draw renders the current frame scaled to the entity rect and tinted.
func (e *Entity) Draw(screen *ebiten.Image, camX, camY, zoom float64) {
	if e == nil || screen == nil || e.frame == nil || e.frame.Img == nil {
		return
	}
	fw := e.frame.W
	fh := e.frame.H
	if fw <= 0 || fh <= 0 {
		return
	}
	if zoom <= 0 {
		zoom = 1
	}
	scale := e.unitScale
	if scale <= 0 {
		scale = 1
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(e.Rect.W*scale/float64(fw)*zoom, e.Rect.H*scale/float64(fh)*zoom)
	sx := (e.Rect.X*scale - camX) * zoom
	sy := (e.Rect.Y*scale - camY) * zoom
	op.GeoM.Translate(math.Round(sx), math.Round(sy))
	op.ColorScale.ScaleWithColor(e.Tint)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(e.frame.Img, op)
}
