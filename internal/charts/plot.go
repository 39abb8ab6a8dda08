package charts

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/lspbridge/benchdash/internal/benchdata"
)

// Chart artifact file names, written into the reports directory.
const (
	TrendsFile       = "performance_trends.png"
	GroupFile        = "group_performance.png"
	RecentFile       = "recent_changes.png"
	DistributionFile = "performance_distribution.png"
)

// PlotRenderer renders the four PNG chart artifacts with gonum/plot and
// returns Markdown image references for each.
type PlotRenderer struct {
	OutDir     string
	MaxGroups  int // group trend subplots, 2x2 grid
	RecentRuns int // heatmap window
}

// NewPlotRenderer creates a chart renderer writing into outDir.
func NewPlotRenderer(outDir string, maxGroups, recentRuns int) *PlotRenderer {
	if maxGroups <= 0 {
		maxGroups = 4
	}
	if recentRuns <= 0 {
		recentRuns = 10
	}
	return &PlotRenderer{OutDir: outDir, MaxGroups: maxGroups, RecentRuns: recentRuns}
}

// Render writes the chart artifacts and returns their Markdown references.
// With no sample data it degrades to the text summary.
func (r *PlotRenderer) Render(runs []benchdata.Run) (string, error) {
	records := benchdata.Flatten(runs)
	if len(records) == 0 {
		return TextRenderer{}.Render(runs)
	}

	steps := []struct {
		file  string
		title string
		fn    func([]benchdata.Run, []benchdata.Record, string) error
	}{
		{TrendsFile, "Performance Trends", r.overallTrends},
		{GroupFile, "Group Performance", r.groupTrends},
		{RecentFile, "Recent Changes", r.recentChanges},
		{DistributionFile, "Performance Distribution", r.distribution},
	}

	var refs []string
	for _, s := range steps {
		if err := s.fn(runs, records, filepath.Join(r.OutDir, s.file)); err != nil {
			return strings.Join(refs, "\n"), fmt.Errorf("failed to render %s: %w", s.file, err)
		}
		refs = append(refs, fmt.Sprintf("![%s](./%s)\n", s.title, s.file))
	}
	return strings.Join(refs, "\n"), nil
}

// overallTrends plots the per-run mean across all benchmarks with a shaded
// standard deviation band.
func (r *PlotRenderer) overallTrends(runs []benchdata.Run, _ []benchdata.Record, path string) error {
	p := plot.New()
	p.Title.Text = "LSPbridge Overall Performance Trends"
	p.X.Label.Text = "Run"
	p.Y.Label.Text = "Average Execution Time (ms)"
	p.Add(plotter.NewGrid())

	means := make(plotter.XYs, 0, len(runs))
	upper := make(plotter.XYs, 0, len(runs))
	lower := make(plotter.XYs, 0, len(runs))
	ticks := make([]plot.Tick, 0, len(runs))

	for i, run := range runs {
		m, sd := meanStd(run.Benchmarks)
		x := float64(i)
		means = append(means, plotter.XY{X: x, Y: m})
		upper = append(upper, plotter.XY{X: x, Y: m + sd})
		lower = append(lower, plotter.XY{X: x, Y: m - sd})
		ticks = append(ticks, plot.Tick{Value: x, Label: dateLabel(run.Timestamp)})
	}

	// Band outline: upper path forward, lower path reversed.
	band := make(plotter.XYs, 0, 2*len(runs))
	band = append(band, upper...)
	for i := len(lower) - 1; i >= 0; i-- {
		band = append(band, lower[i])
	}

	poly, err := plotter.NewPolygon(band)
	if err != nil {
		return err
	}
	poly.Color = color.NRGBA{R: 100, G: 149, B: 237, A: 70}
	poly.LineStyle.Width = 0

	line, points, err := plotter.NewLinePoints(means)
	if err != nil {
		return err
	}
	line.Color = color.NRGBA{R: 31, G: 119, B: 180, A: 255}
	line.Width = vg.Points(2)
	points.Color = line.Color
	points.Radius = vg.Points(3)

	p.Add(poly, line, points)
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	return p.Save(14*vg.Inch, 8*vg.Inch, path)
}

// groupTrends renders up to MaxGroups per-group trend lines in a 2x2 tile
// layout, one subplot per group.
func (r *PlotRenderer) groupTrends(runs []benchdata.Run, records []benchdata.Record, path string) error {
	groups := benchdata.Groups(records)
	if len(groups) > r.MaxGroups {
		groups = groups[:r.MaxGroups]
	}

	const rows, cols = 2, 2
	plots := make([][]*plot.Plot, rows)
	for j := range plots {
		plots[j] = make([]*plot.Plot, cols)
	}

	for gi, group := range groups {
		if gi >= rows*cols {
			break
		}

		p := plot.New()
		p.Title.Text = capitalize(group) + " Performance"
		p.Y.Label.Text = "Time (ms)"
		p.Add(plotter.NewGrid())

		var xys plotter.XYs
		var ticks []plot.Tick
		for i, run := range runs {
			m, ok := groupMean(run.Benchmarks, group)
			if !ok {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(i), Y: m})
			ticks = append(ticks, plot.Tick{Value: float64(i), Label: dateLabel(run.Timestamp)})
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return err
		}
		line.Width = vg.Points(2)
		points.Radius = vg.Points(3)
		p.Add(line, points)
		p.X.Tick.Marker = plot.ConstantTicks(ticks)

		plots[gi/cols][gi%cols] = p
	}

	img := vgimg.New(16*vg.Inch, 12*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows, Cols: cols,
		PadX: vg.Millimeter * 4, PadY: vg.Millimeter * 4,
		PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}

	canvases := plot.Align(plots, tiles, dc)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			if plots[j][i] != nil {
				plots[j][i].Draw(canvases[j][i])
			}
		}
	}

	return writePNG(img, path)
}

// recentChanges renders a heatmap of benchmark mean times for the most
// recent runs, one column per commit.
func (r *PlotRenderer) recentChanges(runs []benchdata.Run, _ []benchdata.Record, path string) error {
	recent := runs
	if len(recent) > r.RecentRuns {
		recent = recent[len(recent)-r.RecentRuns:]
	}

	records := benchdata.Flatten(recent)
	benches := benchdata.Benchmarks(records)

	commits := make([]string, len(recent))
	for i, run := range recent {
		commits[i] = run.ShortCommit()
	}

	benchRow := make(map[string]int, len(benches))
	for i, b := range benches {
		benchRow[b] = i
	}

	// Missing cells stay at zero, mirroring the dashboard's historical
	// treatment of absent samples.
	z := make([][]float64, len(benches))
	for i := range z {
		z[i] = make([]float64, len(recent))
	}
	for col, run := range recent {
		for _, b := range run.Benchmarks {
			row := benchRow[b.Name]
			if z[row][col] == 0 {
				z[row][col] = b.MeanMs
			}
		}
	}

	p := plot.New()
	p.Title.Text = "Recent Performance Changes by Commit"
	p.X.Label.Text = "Commit"
	p.Y.Label.Text = "Benchmark"

	grid := heatGrid{cols: len(recent), rows: len(benches), z: z}
	p.Add(plotter.NewHeatMap(grid, moreland.SmoothBlueRed().Palette(255)))

	xticks := make([]plot.Tick, len(commits))
	for i, c := range commits {
		xticks[i] = plot.Tick{Value: float64(i), Label: c}
	}
	yticks := make([]plot.Tick, len(benches))
	for i, b := range benches {
		yticks[i] = plot.Tick{Value: float64(i), Label: b}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xticks)
	p.Y.Tick.Marker = plot.ConstantTicks(yticks)

	return p.Save(12*vg.Inch, 8*vg.Inch, path)
}

// distribution renders a box plot of benchmark mean times by group across
// all loaded runs.
func (r *PlotRenderer) distribution(_ []benchdata.Run, records []benchdata.Record, path string) error {
	p := plot.New()
	p.Title.Text = "Performance Distribution by Benchmark Group"
	p.X.Label.Text = "Benchmark Group"
	p.Y.Label.Text = "Execution Time (ms)"

	groups := benchdata.Groups(records)
	for i, group := range groups {
		var vals plotter.Values
		for _, rec := range records {
			if rec.Group == group {
				vals = append(vals, rec.MeanMs)
			}
		}
		box, err := plotter.NewBoxPlot(vg.Points(40), float64(i), vals)
		if err != nil {
			return err
		}
		p.Add(box)
	}
	p.NominalX(groups...)

	return p.Save(12*vg.Inch, 8*vg.Inch, path)
}

// heatGrid adapts a dense matrix to plotter.GridXYZ.
type heatGrid struct {
	cols, rows int
	z          [][]float64 // [row][col]
}

func (g heatGrid) Dims() (int, int)   { return g.cols, g.rows }
func (g heatGrid) Z(c, r int) float64 { return g.z[r][c] }
func (g heatGrid) X(c int) float64    { return float64(c) }
func (g heatGrid) Y(r int) float64    { return float64(r) }

func writePNG(img *vgimg.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(f)
	return err
}

func meanStd(samples []benchdata.Sample) (mean, std float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	for _, s := range samples {
		mean += s.MeanMs
	}
	mean /= float64(len(samples))

	var variance float64
	for _, s := range samples {
		d := s.MeanMs - mean
		variance += d * d
	}
	variance /= float64(len(samples))
	return mean, math.Sqrt(variance)
}

func groupMean(samples []benchdata.Sample, group string) (float64, bool) {
	var sum float64
	var n int
	for _, s := range samples {
		if s.Group == group {
			sum += s.MeanMs
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// dateLabel trims an ISO-8601 timestamp down to its date portion.
func dateLabel(ts string) string {
	if len(ts) > 10 {
		return ts[:10]
	}
	return ts
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-32) + s[1:]
	}
	return s
}
