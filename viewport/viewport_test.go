package viewport

import (
	"math"
	"testing"
)

const epsilon = 1e-3

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func TestFit(t *testing.T) {
	type spec struct {
		fbW, fbH int
		aspect   float32
		exp      Rect
	}
	specs := []spec{
		// Exact match
		spec{1850, 1000, 1.85, Rect{0, 0, 1850, 1000}},
		// 16:9 is narrower than 1.85 so the image gets letterboxed
		spec{1920, 1080, 1.85, Rect{0, 21.0811, 1920, 1037.8378}},
		// Ultra-wide displays are pillarboxed
		spec{3440, 1440, 1.85, Rect{388, 0, 2664, 1440}},
		// Square aspect on a 16:10 display
		spec{1680, 1050, 1, Rect{315, 0, 1050, 1050}},
		// Disabled aspect correction
		spec{800, 600, 0, Rect{0, 0, 800, 600}},
		// Minimized window
		spec{0, 0, 1.85, Rect{}},
	}

	for index, s := range specs {
		got := Fit(s.fbW, s.fbH, s.aspect)
		if !approx(got.X, s.exp.X) || !approx(got.Y, s.exp.Y) || !approx(got.Width, s.exp.Width) || !approx(got.Height, s.exp.Height) {
			t.Fatalf("[spec %d] expected viewport %+v; got %+v", index, s.exp, got)
		}
	}
}

func TestFitPreservesAspect(t *testing.T) {
	sizes := [][2]int{{640, 480}, {1920, 1080}, {2560, 1080}, {1080, 1920}, {3, 2}}

	for index, size := range sizes {
		r := Fit(size[0], size[1], DefaultAspect)
		if r.Empty() {
			t.Fatalf("[size %d] expected non-empty viewport", index)
		}
		if got := r.Size().Aspect(); !approx(got, DefaultAspect) {
			t.Fatalf("[size %d] expected aspect %f; got %f", index, DefaultAspect, got)
		}
		if r.X < 0 || r.Y < 0 || r.X+r.Width > float32(size[0])+epsilon || r.Y+r.Height > float32(size[1])+epsilon {
			t.Fatalf("[size %d] expected viewport %+v to fit inside %dx%d", index, r, size[0], size[1])
		}
		if !approx(2*r.X+r.Width, float32(size[0])) || !approx(2*r.Y+r.Height, float32(size[1])) {
			t.Fatalf("[size %d] expected viewport %+v to be centered", index, r)
		}
	}
}
