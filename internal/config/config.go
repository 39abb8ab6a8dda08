// Package config provides configuration loading for the dashboard generator.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the main configuration structure
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Thresholds ThresholdsConfig `toml:"thresholds"`
}

// GeneralConfig contains general settings
type GeneralConfig struct {
	BenchmarkDir   string `toml:"benchmark_dir"`
	Charts         bool   `toml:"charts"`
	MaxChartGroups int    `toml:"max_chart_groups"`
	RecentRuns     int    `toml:"recent_runs"`
}

// ThresholdsConfig holds the documented regression thresholds rendered into
// the Markdown summary. They are documentation only and never enforced.
type ThresholdsConfig struct {
	LatencyRegressionPct int `toml:"latency_regression_pct"`
	MemoryIncreasePct    int `toml:"memory_increase_pct"`
	CacheHitDropPct      int `toml:"cache_hit_drop_pct"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			BenchmarkDir:   "benchmark-results",
			Charts:         true,
			MaxChartGroups: 4,
			RecentRuns:     10,
		},
		Thresholds: ThresholdsConfig{
			LatencyRegressionPct: 15,
			MemoryIncreasePct:    20,
			CacheHitDropPct:      10,
		},
	}
}

// validatePath checks for path traversal attempts
func validatePath(path string) error {
	cleanPath := filepath.Clean(path)
	if strings.HasPrefix(cleanPath, "..") || strings.Contains(cleanPath, "../") {
		return fmt.Errorf("path contains invalid traversal sequence: %s", path)
	}
	return nil
}

// Load reads and parses the TOML configuration file. A missing file is not
// an error; defaults are returned so the tool stays zero-configuration.
func Load(path string) (*Config, error) {
	if err := validatePath(path); err != nil {
		return nil, fmt.Errorf("invalid config path: %w", err)
	}

	// #nosec G304 - Path validated above, this is intentional file inclusion
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Group subplots live on a fixed 2x2 canvas.
	if cfg.General.MaxChartGroups <= 0 || cfg.General.MaxChartGroups > 4 {
		cfg.General.MaxChartGroups = 4
	}
	if cfg.General.RecentRuns <= 0 {
		cfg.General.RecentRuns = 10
	}
	if cfg.General.BenchmarkDir == "" {
		cfg.General.BenchmarkDir = "benchmark-results"
	}

	return cfg, nil
}
