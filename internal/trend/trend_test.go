package trend

import (
	"math"
	"strings"
	"testing"

	"github.com/lspbridge/benchdash/internal/benchdata"
)

func twoRuns(prevMs, latestMs float64) []benchdata.Run {
	return []benchdata.Run{
		{
			Timestamp:  "2024-03-01T00:00:00Z",
			Benchmarks: []benchdata.Sample{{Name: "a", Group: "cache", MeanMs: prevMs}},
		},
		{
			Timestamp:  "2024-03-02T00:00:00Z",
			Benchmarks: []benchdata.Sample{{Name: "a", Group: "cache", MeanMs: latestMs}},
		},
	}
}

func TestAnalyze_Degrading(t *testing.T) {
	trends := Analyze(twoRuns(10.0, 12.0))
	if len(trends) != 1 {
		t.Fatalf("expected 1 trend, got %d", len(trends))
	}
	if trends[0].Direction != Degrading {
		t.Errorf("expected degrading, got %s", trends[0].Direction)
	}
	if math.Abs(trends[0].ChangePct-20.0) > 1e-9 {
		t.Errorf("expected +20%% change, got %f", trends[0].ChangePct)
	}
}

func TestAnalyze_Improving(t *testing.T) {
	trends := Analyze(twoRuns(10.0, 8.0))
	if len(trends) != 1 {
		t.Fatalf("expected 1 trend, got %d", len(trends))
	}
	if trends[0].Direction != Improving {
		t.Errorf("expected improving, got %s", trends[0].Direction)
	}
}

func TestAnalyze_StableWithinBand(t *testing.T) {
	trends := Analyze(twoRuns(10.0, 10.1))
	if len(trends) != 1 {
		t.Fatalf("expected 1 trend, got %d", len(trends))
	}
	if trends[0].Direction != Stable {
		t.Errorf("expected stable, got %s", trends[0].Direction)
	}
}

func TestAnalyze_FewerThanTwoRuns(t *testing.T) {
	if got := Analyze(twoRuns(10, 11)[:1]); got != nil {
		t.Errorf("expected nil trends for one run, got %v", got)
	}
	if got := Analyze(nil); got != nil {
		t.Errorf("expected nil trends for no runs, got %v", got)
	}
}

func TestAnalyze_NewGroupSkipped(t *testing.T) {
	runs := twoRuns(10.0, 10.0)
	runs[1].Benchmarks = append(runs[1].Benchmarks, benchdata.Sample{
		Name: "b", Group: "ranking", MeanMs: 3.0,
	})

	trends := Analyze(runs)
	if len(trends) != 1 {
		t.Fatalf("expected group without history to be skipped, got %d trends", len(trends))
	}
	if trends[0].Group != "cache" {
		t.Errorf("expected cache trend, got %s", trends[0].Group)
	}
}

func TestMarkdown_FormatsDirections(t *testing.T) {
	md := Markdown(Analyze(twoRuns(10.0, 12.0)))
	if !strings.Contains(md, "### Group Trends (vs previous run)") {
		t.Error("markdown should include the section heading")
	}
	if !strings.Contains(md, "**cache**") {
		t.Error("markdown should name the group")
	}
	if !strings.Contains(md, "degrading") {
		t.Error("markdown should state the direction")
	}
}

func TestMarkdown_EmptyTrends(t *testing.T) {
	if got := Markdown(nil); got != "" {
		t.Errorf("expected empty markdown for no trends, got %q", got)
	}
}
