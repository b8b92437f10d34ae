package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// A renderer that draws a single frame at a fixed point in time into an
// offscreen framebuffer and saves it to an image file.
type offscreenRenderer struct {
	ctx *Context

	elapsed float32
	outFile string

	fbo   uint32
	color uint32

	stats FrameStats
}

// Create a new offscreen renderer. The output format is selected by the
// extension of outFile.
func NewOffscreen(opts Options, elapsed time.Duration, outFile string) (Renderer, error) {
	if opts.FrameW == 0 || opts.FrameH == 0 {
		return nil, ErrInvalidCapture
	}

	opts.Hidden = true
	opts.Windowed = true
	opts.HideOverlay = true
	ctx, err := NewContext(opts)
	if err != nil {
		return nil, err
	}

	r := &offscreenRenderer{
		ctx:     ctx,
		elapsed: float32(elapsed.Seconds()),
		outFile: outFile,
	}

	if err = r.initFramebuffer(); err != nil {
		r.Close()
		return nil, err
	}

	return r, nil
}

func (r *offscreenRenderer) initFramebuffer() error {
	w, h := int32(r.ctx.options.FrameW), int32(r.ctx.options.FrameH)

	gl.GenRenderbuffers(1, &r.color)
	gl.BindRenderbuffer(gl.RENDERBUFFER, r.color)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA8, w, h)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	gl.GenFramebuffers(1, &r.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.fbo)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, r.color)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("renderer: incomplete capture framebuffer (status 0x%x)", status)
	}

	// The viewport follows the capture size rather than the hidden window.
	r.ctx.Resize(int(w), int(h))
	return nil
}

func (r *offscreenRenderer) Close() {
	if r.ctx == nil {
		return
	}
	if r.fbo != 0 {
		gl.DeleteFramebuffers(1, &r.fbo)
	}
	if r.color != 0 {
		gl.DeleteRenderbuffers(1, &r.color)
	}
	r.ctx.Close()
	r.ctx = nil
}

func (r *offscreenRenderer) Stats() FrameStats {
	return r.stats
}

func (r *offscreenRenderer) Render() error {
	w, h := int(r.ctx.options.FrameW), int(r.ctx.options.FrameH)
	start := time.Now()

	gl.BindFramebuffer(gl.FRAMEBUFFER, r.fbo)
	r.ctx.Frame(r.elapsed, 0)
	gl.Finish()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	r.stats = FrameStats{
		Frames:     1,
		RenderTime: time.Since(start),
		Viewport:   r.ctx.viewport.Size(),
		ShaderOK:   r.ctx.ShaderOK(),
	}

	// GL rows start at the bottom of the image.
	if err := imaging.Save(imaging.FlipV(img), r.outFile); err != nil {
		return fmt.Errorf("renderer: could not save frame to '%s': %s", r.outFile, err.Error())
	}
	logger.Noticef("saved %dx%d frame at t=%.3fs to %s", w, h, r.elapsed, r.outFile)

	return nil
}
