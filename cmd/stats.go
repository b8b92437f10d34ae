package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/shaderlab/renderer"
	"github.com/olekukonko/tablewriter"
)

func displayFrameStats(stats renderer.FrameStats) {
	logger.Noticef("frame statistics\n%s", formatFrameStats(stats))
}

func formatFrameStats(stats renderer.FrameStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frames", "Viewport", "Shader", "Min FPS", "Max FPS", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Frames),
		fmt.Sprintf("%.0fx%.0f", stats.Viewport[0], stats.Viewport[1]),
		shaderStatus(stats.ShaderOK),
		fmt.Sprintf("%d", stats.MinFPS),
		fmt.Sprintf("%d", stats.MaxFPS),
		stats.RenderTime.String(),
	})
	table.SetFooter([]string{"", "", "", "", "AVG FPS", fmt.Sprintf("%.1f", stats.AvgFPS())})

	table.Render()
	return buf.String()
}

func shaderStatus(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}
