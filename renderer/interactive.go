package renderer

import (
	"time"

	"github.com/achilleasa/shaderlab/timer"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// An interactive renderer that previews the shader pair until the window is
// closed or escape is pressed.
type interactiveRenderer struct {
	ctx   *Context
	timer *timer.Timer
	stats FrameStats
}

// Create a new interactive renderer.
func NewInteractive(opts Options) (Renderer, error) {
	ctx, err := NewContext(opts)
	if err != nil {
		return nil, err
	}

	r := &interactiveRenderer{
		ctx:   ctx,
		timer: timer.New(),
	}

	ctx.window.SetKeyCallback(r.onKeyEvent)
	ctx.window.SetFramebufferSizeCallback(r.onFramebufferSizeEvent)

	return r, nil
}

func (r *interactiveRenderer) Close() {
	if r.ctx != nil {
		r.ctx.Close()
		r.ctx = nil
	}
}

func (r *interactiveRenderer) Stats() FrameStats {
	return r.stats
}

func (r *interactiveRenderer) Render() error {
	window := r.ctx.window
	r.stats.ShaderOK = r.ctx.ShaderOK()

	r.timer.Start()
	start := time.Now()
	for !window.ShouldClose() {
		glfw.PollEvents()

		fps := r.timer.FPS()
		r.stats.sampleFPS(fps)

		r.ctx.Frame(float32(r.timer.ElapsedSeconds()), fps)
		window.SwapBuffers()
		r.timer.Tick()
		r.stats.Frames++
	}
	r.timer.Stop()

	r.stats.RenderTime = time.Since(start)
	r.stats.Viewport = r.ctx.viewport.Size()
	return nil
}

func (r *interactiveRenderer) onKeyEvent(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

func (r *interactiveRenderer) onFramebufferSizeEvent(w *glfw.Window, width, height int) {
	r.ctx.Resize(width, height)
}
