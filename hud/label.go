// Package hud rasterises the viewer's status line for hosts that draw
// overlays as textures.
package hud

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gekko3d/gcview"
	"github.com/gekko3d/gcview/core"
)

const padding = 4

var (
	Background = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	Foreground = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	Warning    = color.RGBA{R: 255, G: 170, B: 40, A: 255}
)

// Status is what the label shows.
type Status struct {
	HasModel  bool
	Current   int
	MaxLayers int
	AllLayers bool
	LastLayer bool
	Mode      core.ProjectionMode
	Zoom      float64
	OffScreen bool
}

// FromFrame collects a status from a frame snapshot. visible is the
// result of Viewer.ModelVisible.
func FromFrame(f gcview.FrameState, visible bool) Status {
	return Status{
		HasModel:  f.HasModel,
		Current:   f.LayersToDraw,
		MaxLayers: f.MaxLayers,
		AllLayers: f.AllLayers,
		LastLayer: f.LastLayer,
		Mode:      f.Mode,
		Zoom:      f.Zoom,
		OffScreen: f.HasModel && !visible,
	}
}

// Lines is the label text, one entry per row.
func (s Status) Lines() []string {
	var layers string
	switch {
	case !s.HasModel:
		layers = "no model"
	case s.AllLayers:
		layers = fmt.Sprintf("all %d layers", s.MaxLayers)
	case s.LastLayer:
		layers = fmt.Sprintf("layer %d/%d (last)", s.Current, s.MaxLayers)
	default:
		layers = fmt.Sprintf("layer %d/%d", s.Current, s.MaxLayers)
	}

	view := fmt.Sprintf("%s x%.2f", s.Mode, s.Zoom)
	if s.OffScreen {
		view += " off screen"
	}
	return []string{layers, view}
}

func (s Status) String() string { return strings.Join(s.Lines(), "\n") }

// LoadFace opens a TrueType/OpenType font at the given pixel size.
func LoadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}
	return face, nil
}

// Label draws s onto a padded, translucent box sized to fit the text.
// A nil face uses the built-in 7x13 bitmap font.
func Label(s Status, face font.Face) *image.RGBA {
	if face == nil {
		face = basicfont.Face7x13
	}
	lines := s.Lines()
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()

	width := 0
	for _, l := range lines {
		width = max(width, font.MeasureString(face, l).Ceil())
	}

	img := image.NewRGBA(image.Rect(0, 0, width+2*padding, lineHeight*len(lines)+2*padding))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img, Face: face}
	for i, l := range lines {
		d.Src = image.NewUniform(Foreground)
		if i == 1 && s.OffScreen {
			d.Src = image.NewUniform(Warning)
		}
		d.Dot = fixed.P(padding, padding+i*lineHeight+metrics.Ascent.Ceil())
		d.DrawString(l)
	}
	return img
}
