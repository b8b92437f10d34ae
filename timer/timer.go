// Package timer tracks elapsed wall-clock time and a frames-per-second counter
// that refreshes once per second.
package timer

import "time"

// The window over which frames are counted before the FPS value is refreshed.
const fpsWindow = time.Second

// Timer measures the time elapsed since it was started and counts rendered
// frames. A Timer is owned by the render thread and must not be shared.
type Timer struct {
	now func() time.Time

	running bool
	start   time.Time
	stop    time.Time

	// FPS sampling state. fps only changes when a sampling window rolls over.
	lastSample time.Time
	frames     int
	fps        int
}

// Create a new stopped timer backed by the monotonic system clock.
func New() *Timer {
	return NewWithClock(time.Now)
}

// Create a new stopped timer that reads the current instant from now.
func NewWithClock(now func() time.Time) *Timer {
	t := now()
	return &Timer{
		now:        now,
		start:      t,
		stop:       t,
		lastSample: t,
	}
}

// Start the timer. It returns false without touching the epoch if the timer
// is already running.
func (t *Timer) Start() bool {
	if t.running {
		return false
	}

	t.start = t.now()
	t.running = true
	return true
}

// Stop the timer, freezing the elapsed time. It returns false if the timer is
// already stopped.
func (t *Timer) Stop() bool {
	if !t.running {
		return false
	}

	t.stop = t.now()
	t.running = false
	return true
}

// Restart resets the frame counter and the epoch and leaves the timer running.
func (t *Timer) Restart() {
	t.frames = 0
	t.start = t.now()
	t.running = true
}

// Running reports whether the timer is running.
func (t *Timer) Running() bool {
	return t.running
}

// Elapsed returns the time since the timer was started. For a stopped timer
// this is the time between start and stop.
func (t *Timer) Elapsed() time.Duration {
	if t.running {
		return t.now().Sub(t.start)
	}
	return t.stop.Sub(t.start)
}

// ElapsedSeconds returns Elapsed in seconds.
func (t *Timer) ElapsedSeconds() float64 {
	return t.Elapsed().Seconds()
}

// Tick records a rendered frame.
func (t *Timer) Tick() {
	t.frames++
}

// FPS returns the number of frames counted in the last completed one-second
// window. The value is stale by up to one second.
func (t *Timer) FPS() int {
	now := t.now()
	if now.Sub(t.lastSample) >= fpsWindow {
		t.lastSample = now
		t.fps = t.frames
		t.frames = 0
	}
	return t.fps
}
