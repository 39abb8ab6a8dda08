package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lspbridge/benchdash/internal/benchdata"
	"github.com/lspbridge/benchdash/internal/charts"
	"github.com/lspbridge/benchdash/internal/config"
	"github.com/lspbridge/benchdash/internal/debug"
	"github.com/lspbridge/benchdash/internal/progress"
	"github.com/lspbridge/benchdash/internal/trend"
)

// Stages is the number of progress steps one generation run takes.
const Stages = 3

// Generator orchestrates one dashboard generation pass: load, render trends,
// write index.html and README.md. Reruns overwrite the same output files.
type Generator struct {
	cfg        *config.Config
	loader     *benchdata.Loader
	renderer   charts.Renderer
	log        *logrus.Logger
	trace      *debug.Logger
	prog       *progress.Manager
	reportsDir string
	now        func() time.Time
}

// NewGenerator creates a generator rooted at the configured benchmark
// directory. When charts are disabled the text renderer is used directly.
func NewGenerator(cfg *config.Config, log *logrus.Logger, trace *debug.Logger, prog *progress.Manager) *Generator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if prog == nil {
		prog = progress.NewManager(Stages, false)
	}

	reportsDir := filepath.Join(cfg.General.BenchmarkDir, "reports")

	loader := benchdata.NewLoader(cfg.General.BenchmarkDir, log)
	loader.Trace = trace

	var renderer charts.Renderer = charts.TextRenderer{}
	if cfg.General.Charts {
		renderer = charts.NewPlotRenderer(reportsDir, cfg.General.MaxChartGroups, cfg.General.RecentRuns)
	}

	return &Generator{
		cfg:        cfg,
		loader:     loader,
		renderer:   renderer,
		log:        log,
		trace:      trace,
		prog:       prog,
		reportsDir: reportsDir,
		now:        time.Now,
	}
}

// ReportsDir returns the directory the dashboard files are written into.
func (g *Generator) ReportsDir() string {
	return g.reportsDir
}

// Run executes the full pipeline. Per-file load problems have already been
// skipped by the loader; any error returned here is a generation failure the
// caller is expected to log and swallow.
func (g *Generator) Run() error {
	if err := os.MkdirAll(g.reportsDir, 0750); err != nil {
		return fmt.Errorf("failed to create reports directory: %w", err)
	}

	g.prog.Step("loading benchmark data")
	runs := g.loader.Load()
	g.log.Infof("loaded %d benchmark datasets", len(runs))

	g.prog.Step("rendering performance trends")
	trends := g.renderTrends(runs)

	if section := trend.Markdown(trend.Analyze(runs)); section != "" {
		trends = trends + "\n" + section
	}

	g.prog.Step("writing dashboard")
	indexPath := filepath.Join(g.reportsDir, "index.html")
	html := IndexHTML(trends, g.now(), g.cfg.Thresholds.LatencyRegressionPct)
	// #nosec G306 - 0640 allows owner/group to read, which is appropriate for report files
	if err := os.WriteFile(indexPath, []byte(html), 0640); err != nil {
		return fmt.Errorf("failed to write index.html: %w", err)
	}
	g.traceArtifact(indexPath)
	g.log.Infof("generated benchmark dashboard at %s", indexPath)

	readmePath := filepath.Join(g.reportsDir, "README.md")
	// #nosec G306 - 0640 allows owner/group to read, which is appropriate for report files
	if err := os.WriteFile(readmePath, []byte(g.readme(trends)), 0640); err != nil {
		return fmt.Errorf("failed to write README.md: %w", err)
	}
	g.traceArtifact(readmePath)

	g.prog.Finish()
	return nil
}

// renderTrends produces the trends content block, falling back to the text
// summary when chart rendering fails. Visualization problems never abort the
// run.
func (g *Generator) renderTrends(runs []benchdata.Run) string {
	content, err := g.renderer.Render(runs)
	if err == nil {
		return content
	}

	g.log.WithError(err).Warn("chart rendering failed, falling back to text summary")
	if g.trace != nil {
		g.trace.LogError("render trends", err)
	}

	content, _ = charts.TextRenderer{}.Render(runs)
	return content
}

// readme builds the Markdown summary: the trends content plus fixed
// documentation about monitored categories and regression thresholds. The
// thresholds are documentation only; nothing here enforces them.
func (g *Generator) readme(trendsContent string) string {
	var sb strings.Builder

	sb.WriteString("# LSPbridge Benchmark Dashboard\n\n")
	sb.WriteString(trendsContent)
	sb.WriteString(`
## Navigation

- [Interactive Dashboard](./index.html)
- [Latest Results](../latest/)
- [Historical Archive](../archive/)

## Performance Monitoring

This dashboard automatically tracks performance across all LSPbridge benchmarks:

- **Context Extraction**: File parsing and semantic analysis performance
- **Context Ranking**: Algorithm efficiency for relevance scoring
- **Diagnostic Prioritization**: Error categorization and sorting speed
- **Memory Usage**: Memory consumption patterns and cache efficiency
- **Concurrent Throughput**: Parallel processing performance
- **Cache Performance**: Hit rates and retrieval speeds
- **Cold Start**: Initialization and startup performance

## Regression Detection

`)
	fmt.Fprintf(&sb, "- **Threshold**: %d%% performance degradation triggers alerts\n", g.cfg.Thresholds.LatencyRegressionPct)
	fmt.Fprintf(&sb, "- **Memory Threshold**: %d%% memory increase triggers warnings\n", g.cfg.Thresholds.MemoryIncreasePct)
	fmt.Fprintf(&sb, "- **Cache Threshold**: %d%% cache hit rate decrease triggers investigation\n", g.cfg.Thresholds.CacheHitDropPct)
	fmt.Fprintf(&sb, "\nGenerated: %s\n", g.now().Format("2006-01-02 15:04:05"))

	return sb.String()
}

func (g *Generator) traceArtifact(path string) {
	if g.trace != nil {
		g.trace.LogArtifact(path)
	}
}
