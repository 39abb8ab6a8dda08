package charts

import (
	"strings"
	"testing"

	"github.com/lspbridge/benchdash/internal/benchdata"
)

func TestTextRenderer_NoRuns(t *testing.T) {
	content, err := TextRenderer{}.Render(nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if content != "No benchmark data available for visualization.\n" {
		t.Errorf("unexpected no-data content: %q", content)
	}
}

func TestTextRenderer_SummarizesLatestRun(t *testing.T) {
	runs := []benchdata.Run{
		{
			Timestamp: "2024-03-01T00:00:00Z",
			Commit:    "older",
			Benchmarks: []benchdata.Sample{
				{Name: "x", Group: "cache", MeanMs: 9.0},
			},
		},
		{
			Timestamp: "2024-03-02T00:00:00Z",
			Commit:    "0123456789abcdef",
			Benchmarks: []benchdata.Sample{
				{Name: "a", Group: "extraction", MeanMs: 2.0},
				{Name: "b", Group: "extraction", MeanMs: 4.0},
				{Name: "c", Group: "cache", MeanMs: 1.0},
			},
		},
	}

	content, err := TextRenderer{}.Render(runs)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(content, "**Last Updated**: 2024-03-02T00:00:00Z") {
		t.Error("summary should report the most recent run's timestamp")
	}
	if !strings.Contains(content, "**Commit**: 01234567") {
		t.Error("summary should report the truncated commit")
	}
	if !strings.Contains(content, "**Total Benchmarks**: 3") {
		t.Error("summary should count the latest run's benchmarks")
	}
	if !strings.Contains(content, "- **extraction**: 3.00ms avg (min: 2.00ms, max: 4.00ms)") {
		t.Errorf("missing extraction group line in:\n%s", content)
	}
	if !strings.Contains(content, "- **cache**: 1.00ms avg (min: 1.00ms, max: 1.00ms)") {
		t.Errorf("missing cache group line in:\n%s", content)
	}
	if strings.Contains(content, "9.00ms") {
		t.Error("summary should ignore earlier runs")
	}
}

func TestTextRenderer_MissingFields(t *testing.T) {
	runs := []benchdata.Run{{}}

	content, err := TextRenderer{}.Render(runs)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(content, "**Last Updated**: unknown") {
		t.Error("summary should fall back to 'unknown' for missing timestamp")
	}
	if !strings.Contains(content, "**Commit**: unknown") {
		t.Error("summary should fall back to 'unknown' for missing commit")
	}
	if !strings.Contains(content, "**Total Benchmarks**: 0") {
		t.Error("summary should report zero benchmarks")
	}
	if strings.Contains(content, "Performance by Group") {
		t.Error("group section should be omitted without samples")
	}
}
