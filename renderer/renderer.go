package renderer

type Renderer interface {
	// Render frames until the renderer is done.
	Render() error

	// Release all renderer resources.
	Close()

	// Get render statistics.
	Stats() FrameStats
}
