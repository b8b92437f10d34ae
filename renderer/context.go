package renderer

import (
	"fmt"

	"github.com/achilleasa/shaderlab/log"
	"github.com/achilleasa/shaderlab/overlay"
	"github.com/achilleasa/shaderlab/types"
	"github.com/achilleasa/shaderlab/uniform"
	"github.com/achilleasa/shaderlab/viewport"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const windowTitle = "shaderlab"

var logger = log.New("renderer")

// The color used to clear the back buffer before drawing the quad.
var clearColor = types.XYZW(0.0, 0.2, 0.4, 1.0)

// Context owns every window and GL resource used for rendering. It must be
// created, used and closed from the thread that owns the GL context.
type Context struct {
	options Options

	window *glfw.Window

	// 0 if the shader pair could not be built.
	program uint32

	quad           *quad
	timeBuffer     *uniformBuffer
	resolutionBuff *uniformBuffer
	text           *textRenderer

	// Framebuffer and viewport dims.
	fbW, fbH int
	viewport viewport.Rect
}

// Create a window with a GL 3.3 core context and set up the rendering pipeline.
//
// Failing to build the shader pair is not fatal; the context falls back to
// rendering the clear color. Failing to set up the text overlay is fatal and
// reported as ErrOverlaySetup.
func NewContext(opts Options) (*Context, error) {
	ctx := &Context{options: opts}

	if err := ctx.initWindow(); err != nil {
		ctx.Close()
		return nil, err
	}

	ctx.initPipeline()

	var err error
	ctx.text, err = newTextRenderer(opts)
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("%w: %s", ErrOverlaySetup, err.Error())
	}

	fbW, fbH := ctx.window.GetFramebufferSize()
	ctx.Resize(fbW, fbH)

	return ctx, nil
}

func (ctx *Context) initWindow() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: failed to initialize glfw: %s", ErrWindowSetup, err.Error())
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if ctx.options.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	var (
		monitor *glfw.Monitor
		width   = int(ctx.options.FrameW)
		height  = int(ctx.options.FrameH)
	)
	if !ctx.options.Windowed && !ctx.options.Hidden {
		monitor = glfw.GetPrimaryMonitor()
		if monitor == nil {
			return fmt.Errorf("%w: no monitor attached", ErrWindowSetup)
		}
		mode := monitor.GetVideoMode()
		width, height = mode.Width, mode.Height
		logger.Infof("using fullscreen mode %dx%d@%dHz on %q", mode.Width, mode.Height, mode.RefreshRate, monitor.GetName())
	}

	var err error
	ctx.window, err = glfw.CreateWindow(width, height, windowTitle, monitor, nil)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrWindowSetup, err.Error())
	}
	ctx.window.MakeContextCurrent()

	if err = gl.Init(); err != nil {
		return fmt.Errorf("%w: %s", ErrContextSetup, err.Error())
	}
	logger.Infof("opengl version %s (%s)", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	// Present without waiting for vertical sync.
	glfw.SwapInterval(0)
	ctx.window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)

	return nil
}

func (ctx *Context) initPipeline() {
	var err error
	ctx.program, err = loadProgram(ctx.options.VertexShader, ctx.options.PixelShader)
	if err != nil {
		logger.Errorf("could not build shader pair; rendering clear color only: %s", err.Error())
		ctx.program = 0
	}

	ctx.quad = newQuad()
	ctx.timeBuffer = newUniformBuffer(uniform.TimeBinding)
	ctx.resolutionBuff = newUniformBuffer(uniform.ResolutionBinding)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
}

// ShaderOK reports whether the shader pair was built successfully.
func (ctx *Context) ShaderOK() bool {
	return ctx.program != 0
}

// Resize recomputes the viewport for a new framebuffer size.
func (ctx *Context) Resize(fbW, fbH int) {
	ctx.fbW, ctx.fbH = fbW, fbH
	ctx.viewport = viewport.Fit(fbW, fbH, ctx.options.AspectRatio)
	logger.Debugf("framebuffer resized to %dx%d; viewport %+v", fbW, fbH, ctx.viewport)
}

// Frame draws a single frame into the currently bound framebuffer. The caller
// is responsible for presenting it.
func (ctx *Context) Frame(elapsed float32, fps int) {
	ctx.timeBuffer.update(uniform.TimeBuffer{ElapsedTime: elapsed})
	ctx.resolutionBuff.update(uniform.ResolutionBuffer{Resolution: ctx.viewport.Size()})

	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if ctx.program != 0 && !ctx.viewport.Empty() {
		vp := ctx.viewport
		gl.Viewport(int32(vp.X), int32(vp.Y), int32(vp.Width), int32(vp.Height))
		gl.UseProgram(ctx.program)
		ctx.quad.draw()
		gl.UseProgram(0)
	}

	if ctx.text != nil && !ctx.options.HideOverlay && ctx.fbW > 0 && ctx.fbH > 0 {
		ctx.text.draw(overlay.FPSLabel(fps), ctx.fbW, ctx.fbH)
	}
}

// Close releases all GL resources, destroys the window and terminates glfw.
// It is safe to call Close on a partially initialized context.
func (ctx *Context) Close() {
	if ctx == nil {
		return
	}

	if ctx.window != nil {
		if ctx.text != nil {
			ctx.text.release()
			ctx.text = nil
		}
		if ctx.timeBuffer != nil {
			ctx.timeBuffer.release()
			ctx.timeBuffer = nil
		}
		if ctx.resolutionBuff != nil {
			ctx.resolutionBuff.release()
			ctx.resolutionBuff = nil
		}
		if ctx.quad != nil {
			ctx.quad.release()
			ctx.quad = nil
		}
		if ctx.program != 0 {
			gl.DeleteProgram(ctx.program)
			ctx.program = 0
		}

		ctx.window.Destroy()
		ctx.window = nil
	}

	glfw.Terminate()
}
