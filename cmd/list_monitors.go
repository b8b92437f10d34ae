package cmd

import (
	"bytes"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the monitors available for fullscreen previews.
func ListMonitors(ctx *cli.Context) error {
	setupLogging(ctx)

	if err := glfw.Init(); err != nil {
		logger.Error(err)
		return cli.NewExitError(fmt.Sprintf("failed to initialize glfw: %s", err.Error()), exitSetupFailure)
	}
	defer glfw.Terminate()

	primary := glfw.GetPrimaryMonitor()
	monitors := glfw.GetMonitors()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Name", "Primary", "Mode", "Refresh", "Size (mm)"})
	for index, monitor := range monitors {
		mode := monitor.GetVideoMode()
		widthMM, heightMM := monitor.GetPhysicalSize()
		table.Append([]string{
			fmt.Sprintf("%02d", index),
			monitor.GetName(),
			fmt.Sprintf("%t", monitor == primary),
			fmt.Sprintf("%dx%d", mode.Width, mode.Height),
			fmt.Sprintf("%d Hz", mode.RefreshRate),
			fmt.Sprintf("%dx%d", widthMM, heightMM),
		})
	}
	table.Render()

	logger.Noticef("system provides %d monitor(s)\n%s", len(monitors), buf.String())
	return nil
}
