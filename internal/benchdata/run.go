// Package benchdata provides the benchmark result data model and loading
// of archived *_parsed.json result files.
package benchdata

import (
	"sort"
)

// Run represents one timestamped benchmark execution. Immutable after load.
type Run struct {
	Timestamp  string   `json:"timestamp"`
	Commit     string   `json:"commit"`
	Benchmarks []Sample `json:"benchmarks"`
}

// Sample is a single named measurement within a run. Names need not be
// unique within a run; grouping is by the Group field.
type Sample struct {
	Name     string  `json:"name"`
	Group    string  `json:"group"`
	MeanMs   float64 `json:"mean_ms"`
	StdDevNs float64 `json:"std_dev_ns"`
}

// Record is a denormalized (run, sample) row used as an intermediate for
// charting and discarded after rendering.
type Record struct {
	Timestamp   string
	ShortCommit string
	Benchmark   string
	Group       string
	MeanMs      float64
	StdDevMs    float64
}

// ShortCommit returns the first 8 characters of the run's commit hash.
func (r Run) ShortCommit() string {
	return shortCommit(r.Commit)
}

func shortCommit(commit string) string {
	if commit == "" {
		return "unknown"
	}
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}

// Flatten expands runs into one Record per (run, sample) pair, converting
// standard deviation from nanoseconds to milliseconds.
func Flatten(runs []Run) []Record {
	var records []Record
	for _, run := range runs {
		for _, b := range run.Benchmarks {
			records = append(records, Record{
				Timestamp:   run.Timestamp,
				ShortCommit: run.ShortCommit(),
				Benchmark:   b.Name,
				Group:       b.Group,
				MeanMs:      b.MeanMs,
				StdDevMs:    b.StdDevNs / 1e6,
			})
		}
	}
	return records
}

// Groups returns the unique group names across records, in first-seen order.
func Groups(records []Record) []string {
	seen := make(map[string]bool)
	var groups []string
	for _, r := range records {
		if !seen[r.Group] {
			seen[r.Group] = true
			groups = append(groups, r.Group)
		}
	}
	return groups
}

// Benchmarks returns the unique benchmark names across records, sorted.
func Benchmarks(records []Record) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range records {
		if !seen[r.Benchmark] {
			seen[r.Benchmark] = true
			names = append(names, r.Benchmark)
		}
	}
	sort.Strings(names)
	return names
}
