package cmd

import (
	"time"

	"github.com/achilleasa/shaderlab/renderer"
	"github.com/urfave/cli"
)

// Render a single frame of the shader pair to an image file.
func Capture(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.Int("width") <= 0 || ctx.Int("height") <= 0 {
		return cli.NewExitError(renderer.ErrInvalidCapture.Error(), exitSetupFailure)
	}

	opts := renderer.Options{
		VertexShader: ctx.String("vertex"),
		PixelShader:  ctx.String("pixel"),
		FrameW:       uint32(ctx.Int("width")),
		FrameH:       uint32(ctx.Int("height")),
		AspectRatio:  float32(ctx.Float64("aspect")),
	}
	elapsed := time.Duration(ctx.Float64("time") * float64(time.Second))

	r, err := renderer.NewOffscreen(opts, elapsed, ctx.String("out"))
	if err != nil {
		return setupError(err)
	}
	defer r.Close()

	if err = r.Render(); err != nil {
		logger.Error(err)
		return err
	}

	displayFrameStats(r.Stats())
	return nil
}
