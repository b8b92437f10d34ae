package renderer

import (
	"time"

	"github.com/achilleasa/shaderlab/types"
)

type FrameStats struct {
	// Number of presented frames.
	Frames uint64

	// Time spent in the render loop.
	RenderTime time.Duration

	// FPS values sampled by the frame timer.
	MinFPS int
	MaxFPS int

	// Viewport dimensions for the last frame.
	Viewport types.Vec2

	// False if the shader pair failed to build and only the clear color
	// was rendered.
	ShaderOK bool
}

// Average frames per second over the whole run.
func (s FrameStats) AvgFPS() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.Frames) / s.RenderTime.Seconds()
}

// Record an FPS sample. Zero samples are ignored since the first sampling
// window always reports zero.
func (s *FrameStats) sampleFPS(fps int) {
	if fps <= 0 {
		return
	}
	if s.MinFPS == 0 || fps < s.MinFPS {
		s.MinFPS = fps
	}
	if fps > s.MaxFPS {
		s.MaxFPS = fps
	}
}
