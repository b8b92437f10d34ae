package main

import (
	"os"
	"runtime"

	"github.com/achilleasa/shaderlab/cmd"
	"github.com/urfave/cli"
)

func init() {
	// glfw and opengl calls must be issued from the main thread.
	runtime.LockOSThread()
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "shaderlab"
	app.Usage = "preview pixel shaders on a full-screen quad"
	app.Version = "0.0.1"
	app.Flags = append([]cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}, cmd.PreviewFlags...)
	app.Action = cmd.Preview
	app.Commands = []cli.Command{
		{
			Name:  "preview",
			Usage: "preview a shader pair",
			Description: `
Compile the vertex and pixel shader pair and draw it on a full-screen quad
until escape is pressed. The pixel shader receives the elapsed time in seconds
through the TimeBuffer uniform block (binding 0) and the viewport size in pixels
through the ResolutionBuffer uniform block (binding 1).

This is the default command.`,
			Flags:  cmd.PreviewFlags,
			Action: cmd.Preview,
		},
		{
			Name:        "capture",
			Usage:       "render a single frame to an image file",
			Description: `Render the shader pair at a fixed elapsed time into an offscreen buffer and save it as a png or jpeg image.`,
			Flags:       cmd.CaptureFlags,
			Action:      cmd.Capture,
		},
		{
			Name:   "list-monitors",
			Usage:  "list available monitors",
			Action: cmd.ListMonitors,
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
