package atlas

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// Manifest describes the sheets an atlas is built from.
type Manifest struct {
	Sheets []SheetSpec `yaml:"sheets"`
}

// SheetSpec is one spritesheet image plus the animations sliced out of it.
// Frames are laid out left-to-right, top-to-bottom.
type SheetSpec struct {
	Image       string          `yaml:"image"`
	FrameWidth  int             `yaml:"frame_width"`
	FrameHeight int             `yaml:"frame_height"`
	Animations  []AnimationSpec `yaml:"animations"`
}

// AnimationSpec names a frame sequence starting at the given row (0-based)
// and reading Frames frames left-to-right, continuing onto subsequent rows
// if the row runs out.
type AnimationSpec struct {
	Name   string `yaml:"name"`
	Row    int    `yaml:"row"`
	Frames int    `yaml:"frames"`
}

// ImageLoader resolves a sheet path to a decoded image.
type ImageLoader func(path string) (*ebiten.Image, error)

// FromManifest builds an atlas from YAML manifest data. load may be nil, in
// which case regions carry their native sizes but no image; tools that only
// need region metadata use this to stay off the GPU.
func FromManifest(data []byte, load ImageLoader) (*Atlas, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("atlas: unmarshal manifest: %w", err)
	}

	a := New()
	for _, sheet := range m.Sheets {
		if err := a.addSheet(sheet, load); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *Atlas) addSheet(sheet SheetSpec, load ImageLoader) error {
	if sheet.FrameWidth <= 0 || sheet.FrameHeight <= 0 {
		return fmt.Errorf("atlas: sheet %s: invalid frame size %dx%d", sheet.Image, sheet.FrameWidth, sheet.FrameHeight)
	}

	var img *ebiten.Image
	cols := 0
	if load != nil {
		loaded, err := load(sheet.Image)
		if err != nil {
			return fmt.Errorf("atlas: sheet %s: %w", sheet.Image, err)
		}
		img = loaded
		cols = img.Bounds().Dx() / sheet.FrameWidth
	}

	for _, spec := range sheet.Animations {
		if spec.Name == "" || spec.Frames <= 0 {
			return fmt.Errorf("atlas: sheet %s: animation needs a name and a positive frame count", sheet.Image)
		}
		row := spec.Row
		if row < 0 {
			row = 0
		}
		start := 0
		if cols > 0 {
			start = row * cols
		}
		for i := 0; i < spec.Frames; i++ {
			r := &Region{
				Name:  spec.Name,
				Index: i,
				W:     sheet.FrameWidth,
				H:     sheet.FrameHeight,
			}
			if img != nil && cols > 0 {
				idx := start + i
				sx := (idx % cols) * sheet.FrameWidth
				sy := (idx / cols) * sheet.FrameHeight
				bounds := image.Rect(sx, sy, sx+sheet.FrameWidth, sy+sheet.FrameHeight)
				r.Img = img.SubImage(bounds).(*ebiten.Image)
			}
			a.Add(r)
		}
	}
	return nil
}
