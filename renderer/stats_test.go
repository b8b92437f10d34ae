package renderer

import (
	"testing"
	"time"
)

func TestSampleFPS(t *testing.T) {
	type spec struct {
		samples []int
		expMin  int
		expMax  int
	}
	specs := []spec{
		spec{nil, 0, 0},
		spec{[]int{0, 0}, 0, 0},
		spec{[]int{0, 60}, 60, 60},
		spec{[]int{0, 60, 45, 90, 0, 75}, 45, 90},
		spec{[]int{-1, 30}, 30, 30},
	}

	for index, s := range specs {
		var stats FrameStats
		for _, fps := range s.samples {
			stats.sampleFPS(fps)
		}
		if stats.MinFPS != s.expMin || stats.MaxFPS != s.expMax {
			t.Fatalf("[spec %d] expected min/max FPS %d/%d; got %d/%d", index, s.expMin, s.expMax, stats.MinFPS, stats.MaxFPS)
		}
	}
}

func TestAvgFPS(t *testing.T) {
	type spec struct {
		frames     uint64
		renderTime time.Duration
		exp        float64
	}
	specs := []spec{
		spec{120, 2 * time.Second, 60},
		spec{30, 500 * time.Millisecond, 60},
		spec{100, 0, 0},
		spec{100, -time.Second, 0},
		spec{0, time.Second, 0},
	}

	for index, s := range specs {
		stats := FrameStats{Frames: s.frames, RenderTime: s.renderTime}
		if got := stats.AvgFPS(); got != s.exp {
			t.Fatalf("[spec %d] expected avg FPS %f; got %f", index, s.exp, got)
		}
	}
}
