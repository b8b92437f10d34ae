package renderer

import "errors"

var (
	ErrWindowSetup    = errors.New("renderer: could not create window")
	ErrContextSetup   = errors.New("renderer: could not initialize opengl")
	ErrOverlaySetup   = errors.New("renderer: could not initialize text overlay")
	ErrInvalidCapture = errors.New("renderer: invalid capture dimensions")
)
