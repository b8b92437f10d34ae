package renderer

import "golang.org/x/image/font"

type Options struct {
	// Shader sources.
	VertexShader string
	PixelShader  string

	// Window dims. Ignored for fullscreen windows which use the current
	// video mode of the primary monitor.
	FrameW uint32
	FrameH uint32

	// Open a regular window instead of a fullscreen one.
	Windowed bool

	// Hide the window. Used for offscreen rendering.
	Hidden bool

	// Aspect ratio preserved by the viewport. Values <= 0 fill the framebuffer.
	AspectRatio float32

	// Face used for the FPS overlay. If nil the built-in bitmap font is used.
	OverlayFace font.Face

	// Integer scale factor applied to the overlay text.
	OverlayScale uint32

	// Skip drawing the FPS overlay. The overlay resources are still created.
	HideOverlay bool
}
