// Package trend classifies per-group performance movement between the two
// most recent benchmark runs. The classification is informational; it never
// affects the process exit status.
package trend

import (
	"fmt"
	"strings"

	"github.com/lspbridge/benchdash/internal/benchdata"
)

// Direction describes how a group's mean time moved between runs.
type Direction int

const (
	// Stable means the change stayed within the noise band.
	Stable Direction = iota
	// Improving means the group got faster.
	Improving
	// Degrading means the group got slower.
	Degrading
)

// stableBandPct is the +/- percent change treated as noise.
const stableBandPct = 2.0

func (d Direction) String() string {
	switch d {
	case Improving:
		return "improving"
	case Degrading:
		return "degrading"
	default:
		return "stable"
	}
}

// GroupTrend is the movement of one benchmark group between the previous
// and latest runs.
type GroupTrend struct {
	Group      string
	PreviousMs float64
	LatestMs   float64
	ChangePct  float64
	Direction  Direction
}

// Analyze compares the two most recent runs group by group. Groups absent
// from either run are skipped. Fewer than two runs yields no trends.
func Analyze(runs []benchdata.Run) []GroupTrend {
	if len(runs) < 2 {
		return nil
	}

	previous := summaryByGroup(runs[len(runs)-2].Benchmarks)
	latest := benchdata.SummarizeGroups(runs[len(runs)-1].Benchmarks)

	var trends []GroupTrend
	for _, g := range latest {
		prev, ok := previous[g.Group]
		if !ok || prev.AvgMs == 0 {
			continue
		}

		change := (g.AvgMs - prev.AvgMs) / prev.AvgMs * 100
		dir := Stable
		switch {
		case change > stableBandPct:
			dir = Degrading
		case change < -stableBandPct:
			dir = Improving
		}

		trends = append(trends, GroupTrend{
			Group:      g.Group,
			PreviousMs: prev.AvgMs,
			LatestMs:   g.AvgMs,
			ChangePct:  change,
			Direction:  dir,
		})
	}
	return trends
}

// Markdown renders the trends as a Markdown section, or an empty string
// when there is nothing to compare.
func Markdown(trends []GroupTrend) string {
	if len(trends) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("### Group Trends (vs previous run)\n\n")
	for _, t := range trends {
		marker := "→"
		switch t.Direction {
		case Improving:
			marker = "↓"
		case Degrading:
			marker = "↑"
		}
		fmt.Fprintf(&sb, "- %s **%s**: %.2fms → %.2fms (%+.1f%%, %s)\n",
			marker, t.Group, t.PreviousMs, t.LatestMs, t.ChangePct, t.Direction)
	}
	return sb.String()
}

func summaryByGroup(samples []benchdata.Sample) map[string]benchdata.GroupSummary {
	byGroup := make(map[string]benchdata.GroupSummary)
	for _, g := range benchdata.SummarizeGroups(samples) {
		byGroup[g.Group] = g
	}
	return byGroup
}
