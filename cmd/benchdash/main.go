// Package main provides the entry point for the benchmark dashboard
// generator. The tool is advisory: it always exits 0 so a visualization
// failure can never break the CI step that invokes it.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/lspbridge/benchdash/internal/config"
	"github.com/lspbridge/benchdash/internal/debug"
	"github.com/lspbridge/benchdash/internal/progress"
	"github.com/lspbridge/benchdash/internal/report"
)

type cliFlags struct {
	configPath *string
	dir        *string
	noCharts   *bool
	noProgress *bool
	debugMode  *bool
}

func parseFlags() *cliFlags {
	return &cliFlags{
		configPath: flag.String("config", "benchdash.toml", "Path to configuration file"),
		dir:        flag.String("dir", "", "Benchmark results directory (overrides BENCHMARK_DIR and config)"),
		noCharts:   flag.Bool("no-charts", false, "Skip PNG chart rendering and emit a text summary"),
		noProgress: flag.Bool("no-progress", false, "Disable progress bar (useful for CI)"),
		debugMode:  flag.Bool("debug", false, "Write a JSON trace of the generation session"),
	}
}

func main() {
	flags := parseFlags()
	flag.Parse()

	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(*flags.configPath)
	if err != nil {
		log.WithError(err).Warn("invalid configuration, using defaults")
		cfg = config.Default()
	}

	if dir := resolveBenchmarkDir(*flags.dir); dir != "" {
		cfg.General.BenchmarkDir = dir
	}
	if *flags.noCharts {
		cfg.General.Charts = false
	}

	if _, err := os.Stat(cfg.General.BenchmarkDir); os.IsNotExist(err) {
		log.Warnf("benchmark directory %s does not exist - creating basic structure", cfg.General.BenchmarkDir)
		if err := os.MkdirAll(cfg.General.BenchmarkDir, 0750); err != nil {
			log.WithError(err).Error("failed to create benchmark directory")
		}
		return
	}

	trace := debug.NewLogger(*flags.debugMode, filepath.Join(cfg.General.BenchmarkDir, "reports"))
	prog := progress.NewManager(report.Stages, !*flags.noProgress)
	gen := report.NewGenerator(cfg, log, trace, prog)

	log.Info("starting benchmark visualization generation")
	if err := gen.Run(); err != nil {
		// Advisory tool: log and swallow, never propagate a failure status.
		log.WithError(err).Error("visualization failed")
	} else {
		log.Info("benchmark visualization generation completed successfully")
	}

	if trace.IsEnabled() {
		if err := trace.Finalize(); err != nil {
			log.WithError(err).Warn("failed to write debug trace")
		} else {
			fmt.Printf("✓ Debug trace written to: %s/\n", trace.GetOutputPath())
		}
	}
}

// resolveBenchmarkDir prefers the -dir flag, then BENCHMARK_DIR. An empty
// result keeps the configured default.
func resolveBenchmarkDir(flagDir string) string {
	if flagDir != "" {
		return flagDir
	}
	return os.Getenv("BENCHMARK_DIR")
}
