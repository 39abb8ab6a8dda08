package benchdata

// GroupSummary contains aggregated timing statistics for one benchmark group.
type GroupSummary struct {
	Group string
	Count int
	AvgMs float64
	MinMs float64
	MaxMs float64
}

// SummarizeGroups aggregates a run's samples by group. Groups are returned
// in first-seen sample order so report sections stay stable across reruns.
func SummarizeGroups(samples []Sample) []GroupSummary {
	index := make(map[string]int)
	var summaries []GroupSummary

	for _, s := range samples {
		i, ok := index[s.Group]
		if !ok {
			index[s.Group] = len(summaries)
			summaries = append(summaries, GroupSummary{
				Group: s.Group,
				Count: 1,
				AvgMs: s.MeanMs,
				MinMs: s.MeanMs,
				MaxMs: s.MeanMs,
			})
			continue
		}

		g := &summaries[i]
		// AvgMs temporarily accumulates the sum; divided below.
		g.AvgMs += s.MeanMs
		g.Count++
		if s.MeanMs < g.MinMs {
			g.MinMs = s.MeanMs
		}
		if s.MeanMs > g.MaxMs {
			g.MaxMs = s.MeanMs
		}
	}

	for i := range summaries {
		summaries[i].AvgMs /= float64(summaries[i].Count)
	}
	return summaries
}
