package renderer

import (
	"image"
	"image/color"

	"github.com/achilleasa/shaderlab/overlay"
	"github.com/achilleasa/shaderlab/types"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Top-left corner of the overlay text in window pixels.
const (
	overlayX float32 = 10
	overlayY float32 = 10
)

var textVertexShader = `#version 330 core
layout(location = 0) in vec2 position;
layout(location = 1) in vec2 uv;
uniform vec2 screenSize;
out vec2 texCoord;
void main() {
	vec2 ndc = position / screenSize * 2.0 - 1.0;
	gl_Position = vec4(ndc.x, -ndc.y, 0.0, 1.0);
	texCoord = uv;
}` + "\x00"

var textFragmentShader = `#version 330 core
in vec2 texCoord;
uniform sampler2D glyphs;
out vec4 fragColor;
void main() {
	fragColor = texture(glyphs, texCoord);
}` + "\x00"

// Draws rasterized overlay text as a blended screen-space quad.
type textRenderer struct {
	overlay *overlay.Overlay
	scale   float32

	program       uint32
	screenSizeLoc int32
	vao           uint32
	vbo           uint32
	texture       uint32

	// The raster currently stored in texture.
	uploaded *image.RGBA
}

func newTextRenderer(opts Options) (*textRenderer, error) {
	program, err := linkProgram(textVertexShader, textFragmentShader)
	if err != nil {
		return nil, err
	}

	scale := opts.OverlayScale
	if scale == 0 {
		scale = 1
	}

	tr := &textRenderer{
		overlay:       overlay.New(opts.OverlayFace, color.White),
		scale:         float32(scale),
		program:       program,
		screenSizeLoc: gl.GetUniformLocation(program, gl.Str("screenSize\x00")),
	}

	gl.UseProgram(program)
	gl.Uniform1i(gl.GetUniformLocation(program, gl.Str("glyphs\x00")), 0)
	gl.UseProgram(0)

	// Two triangles, each vertex holds a pixel position and a texture coordinate.
	gl.GenVertexArrays(1, &tr.vao)
	gl.GenBuffers(1, &tr.vbo)
	gl.BindVertexArray(tr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenTextures(1, &tr.texture)
	gl.BindTexture(gl.TEXTURE_2D, tr.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tr, nil
}

// Draw text at the overlay origin of a fbW x fbH framebuffer.
func (tr *textRenderer) draw(text string, fbW, fbH int) {
	img := tr.overlay.Rasterize(text)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.texture)
	if img != tr.uploaded {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		tr.uploaded = img
	}

	size := types.XY(float32(img.Rect.Dx()), float32(img.Rect.Dy())).Mul(tr.scale)
	x0, y0 := overlayX, overlayY
	x1, y1 := x0+size[0], y0+size[1]

	// Image row 0 is the top of the text so v grows downwards.
	vertices := [6 * 4]float32{
		x0, y0, 0, 0,
		x0, y1, 0, 1,
		x1, y0, 1, 0,
		x1, y0, 1, 0,
		x0, y1, 0, 1,
		x1, y1, 1, 1,
	}

	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Enable(gl.BLEND)
	// The raster is alpha-premultiplied.
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(tr.program)
	gl.Uniform2f(tr.screenSizeLoc, float32(fbW), float32(fbH))

	gl.BindVertexArray(tr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(&vertices[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.BLEND)
}

func (tr *textRenderer) release() {
	gl.DeleteTextures(1, &tr.texture)
	gl.DeleteBuffers(1, &tr.vbo)
	gl.DeleteVertexArrays(1, &tr.vao)
	gl.DeleteProgram(tr.program)
}
