// Package viewport computes aspect-preserving viewports inside a framebuffer.
package viewport

import "github.com/achilleasa/shaderlab/types"

// The aspect ratio used when none is specified.
const DefaultAspect float32 = 1.85

// Rect describes a viewport in framebuffer pixels with the origin at the
// bottom-left corner.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Size returns the viewport dimensions.
func (r Rect) Size() types.Vec2 {
	return types.XY(r.Width, r.Height)
}

// Empty reports whether the viewport covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Fit returns the largest centered rectangle with the requested aspect ratio
// that fits inside a fbW x fbH framebuffer. Wider framebuffers are pillarboxed
// using a horizontal offset; taller ones are letterboxed using a vertical
// offset. A non-positive aspect ratio selects the full framebuffer.
func Fit(fbW, fbH int, aspect float32) Rect {
	if fbW <= 0 || fbH <= 0 {
		return Rect{}
	}

	w, h := float32(fbW), float32(fbH)
	if aspect <= 0 {
		return Rect{Width: w, Height: h}
	}

	if types.XY(w, h).Aspect() > aspect {
		fitW := h * aspect
		return Rect{X: (w - fitW) / 2, Width: fitW, Height: h}
	}

	fitH := w / aspect
	return Rect{Y: (h - fitH) / 2, Width: w, Height: fitH}
}
