package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"clipshort/internal/types"
)

// renderSummary builds the end-of-run table shown on stdout.
func renderSummary(res types.Result) string {
	captions := "off"
	if res.CaptionsBurnt {
		captions = fmt.Sprintf("burned (%d events)", res.CaptionEvents)
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendRows([]table.Row{
		{"Output", res.OutputPath},
		{"Window", fmt.Sprintf("%.1fs - %.1fs", res.Window.Start, res.Window.End())},
		{"Captions", captions},
	})
	return tw.Render()
}
