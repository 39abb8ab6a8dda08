// Package charts renders benchmark trends content for the dashboard. Two
// interchangeable renderers implement the same contract: a gonum/plot based
// renderer producing PNG artifacts, and a text-only fallback.
package charts

import (
	"fmt"
	"strings"

	"github.com/lspbridge/benchdash/internal/benchdata"
)

// Renderer produces the trends content block embedded in the dashboard and
// the Markdown summary.
type Renderer interface {
	Render(runs []benchdata.Run) (string, error)
}

// NoDataMessage is returned by the text renderer when no runs are available.
const NoDataMessage = "No benchmark data available for visualization.\n"

// TextRenderer produces a text-only summary of the most recent run. It is
// the fallback when chart rendering is disabled or fails.
type TextRenderer struct{}

// Render summarizes the most recent run: total benchmark count plus
// avg/min/max mean time per group.
func (TextRenderer) Render(runs []benchdata.Run) (string, error) {
	if len(runs) == 0 {
		return NoDataMessage, nil
	}

	latest := runs[len(runs)-1]

	var sb strings.Builder
	sb.WriteString("## Performance Summary (Text)\n\n")
	fmt.Fprintf(&sb, "**Last Updated**: %s\n", valueOr(latest.Timestamp, "unknown"))
	fmt.Fprintf(&sb, "**Commit**: %s\n", latest.ShortCommit())
	fmt.Fprintf(&sb, "**Total Benchmarks**: %d\n", len(latest.Benchmarks))

	if len(latest.Benchmarks) > 0 {
		sb.WriteString("\n### Performance by Group\n")
		for _, g := range benchdata.SummarizeGroups(latest.Benchmarks) {
			fmt.Fprintf(&sb, "- **%s**: %.2fms avg (min: %.2fms, max: %.2fms)\n",
				g.Group, g.AvgMs, g.MinMs, g.MaxMs)
		}
	}

	return sb.String(), nil
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
