// Package overlay rasterizes short strings, such as the FPS counter, into
// transparent RGBA images that can be uploaded as textures.
package overlay

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Spacing in pixels around the rasterized text.
const padding = 2

var (
	ErrNoFace = errors.New("overlay: no font face")
)

// Overlay renders text with a single face and color. The last raster is cached
// and only redrawn when the text changes.
type Overlay struct {
	face  font.Face
	color color.Color

	text   string
	raster *image.RGBA
}

// Create a new overlay. A nil face selects the built-in 7x13 bitmap font.
func New(face font.Face, c color.Color) *Overlay {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Overlay{face: face, color: c}
}

// Load a TrueType face from fontFile at the given point size.
func LoadFace(fontFile string, points float64) (font.Face, error) {
	if fontFile == "" {
		return nil, ErrNoFace
	}
	face, err := gg.LoadFontFace(fontFile, points)
	if err != nil {
		return nil, fmt.Errorf("overlay: could not load font '%s': %s", fontFile, err.Error())
	}
	return face, nil
}

// Rasterize text into an image sized to fit it. The pixels are
// alpha-premultiplied. The returned image is shared with subsequent calls for
// the same text and must not be modified.
func (o *Overlay) Rasterize(text string) *image.RGBA {
	if o.raster != nil && text == o.text {
		return o.raster
	}

	w, h := o.Measure(text)
	dc := gg.NewContext(w, h)
	dc.SetFontFace(o.face)
	dc.SetColor(o.color)

	ascent := float64(o.face.Metrics().Ascent.Ceil())
	dc.DrawString(text, padding, padding+ascent)

	o.text = text
	o.raster = dc.Image().(*image.RGBA)
	return o.raster
}

// Measure returns the pixel dimensions of the raster for text.
func (o *Overlay) Measure(text string) (int, int) {
	metrics := o.face.Metrics()
	advance := font.MeasureString(o.face, text).Ceil()
	lineH := (metrics.Ascent + metrics.Descent).Ceil()

	w := advance + 2*padding
	if w < 1+2*padding {
		w = 1 + 2*padding
	}
	return w, lineH + 2*padding
}

// Format the label for an FPS value.
func FPSLabel(fps int) string {
	return fmt.Sprintf("%d FPS", fps)
}
