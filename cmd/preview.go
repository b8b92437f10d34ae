package cmd

import (
	"errors"
	"fmt"

	"github.com/achilleasa/shaderlab/overlay"
	"github.com/achilleasa/shaderlab/renderer"
	"github.com/achilleasa/shaderlab/shader"
	"github.com/achilleasa/shaderlab/viewport"
	"github.com/pkg/profile"
	"github.com/urfave/cli"
)

const (
	// Initial window size in windowed mode.
	defaultFrameW = 1920
	defaultFrameH = 1080

	// Point size for TrueType overlay fonts.
	defaultFontSize = 24.0
)

// Exit codes reported for setup failures.
const (
	exitOverlayFailure = 1
	exitSetupFailure   = 2
)

// Flags shared by the preview and capture commands.
var shaderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "vertex",
		Value: shader.DefaultVertexFile,
		Usage: "vertex shader source file",
	},
	cli.StringFlag{
		Name:  "pixel",
		Value: shader.DefaultPixelFile,
		Usage: "pixel shader source file",
	},
	cli.Float64Flag{
		Name:  "aspect",
		Value: float64(viewport.DefaultAspect),
		Usage: "aspect ratio preserved by the viewport; 0 fills the window",
	},
}

// Flags for the preview command. They are also registered on the app so that
// running without a command starts the preview.
var PreviewFlags = append([]cli.Flag{
	cli.BoolFlag{
		Name:  "windowed",
		Usage: "open a 1920x1080 window instead of going fullscreen",
	},
	cli.StringFlag{
		Name:  "font",
		Usage: "truetype font for the fps overlay (default: built-in bitmap font)",
	},
	cli.Float64Flag{
		Name:  "font-size",
		Value: defaultFontSize,
		Usage: "point size for the overlay font",
	},
	cli.StringFlag{
		Name:  "profile",
		Usage: "write a 'cpu' or 'mem' profile to the working directory",
	},
}, shaderFlags...)

// Flags for the capture command.
var CaptureFlags = append([]cli.Flag{
	cli.IntFlag{
		Name:  "width",
		Value: defaultFrameW,
		Usage: "frame width",
	},
	cli.IntFlag{
		Name:  "height",
		Value: defaultFrameH,
		Usage: "frame height",
	},
	cli.Float64Flag{
		Name:  "time",
		Value: 0,
		Usage: "elapsed time in seconds passed to the shader",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "frame.png",
		Usage: "image filename for the captured frame",
	},
}, shaderFlags...)

// Preview the shader pair in an interactive window.
func Preview(ctx *cli.Context) error {
	setupLogging(ctx)

	switch ctx.String("profile") {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		return cli.NewExitError(fmt.Sprintf("unsupported profile mode %q", ctx.String("profile")), exitSetupFailure)
	}

	opts := renderer.Options{
		VertexShader: ctx.String("vertex"),
		PixelShader:  ctx.String("pixel"),
		FrameW:       defaultFrameW,
		FrameH:       defaultFrameH,
		Windowed:     ctx.Bool("windowed"),
		AspectRatio:  float32(ctx.Float64("aspect")),
		OverlayScale: 2,
	}

	if fontFile := ctx.String("font"); fontFile != "" {
		face, err := overlay.LoadFace(fontFile, ctx.Float64("font-size"))
		if err != nil {
			logger.Error(err)
			return cli.NewExitError(err.Error(), exitOverlayFailure)
		}
		opts.OverlayFace = face
		opts.OverlayScale = 1
	}

	r, err := renderer.NewInteractive(opts)
	if err != nil {
		return setupError(err)
	}
	defer r.Close()

	if err = r.Render(); err != nil {
		return err
	}

	displayFrameStats(r.Stats())
	return nil
}

// Map renderer setup errors to exit codes.
func setupError(err error) error {
	logger.Error(err)
	if errors.Is(err, renderer.ErrOverlaySetup) {
		return cli.NewExitError(err.Error(), exitOverlayFailure)
	}
	return cli.NewExitError(err.Error(), exitSetupFailure)
}
