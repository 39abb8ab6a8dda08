package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	content := `
[general]
benchmark_dir = "./perf-results"
charts = false
max_chart_groups = 2
recent_runs = 5

[thresholds]
latency_regression_pct = 25
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "benchdash.toml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.General.BenchmarkDir != "./perf-results" {
		t.Errorf("expected benchmark_dir ./perf-results, got %s", cfg.General.BenchmarkDir)
	}
	if cfg.General.Charts {
		t.Error("expected charts disabled")
	}
	if cfg.General.MaxChartGroups != 2 {
		t.Errorf("expected max_chart_groups 2, got %d", cfg.General.MaxChartGroups)
	}
	if cfg.General.RecentRuns != 5 {
		t.Errorf("expected recent_runs 5, got %d", cfg.General.RecentRuns)
	}
	if cfg.Thresholds.LatencyRegressionPct != 25 {
		t.Errorf("expected latency threshold 25, got %d", cfg.Thresholds.LatencyRegressionPct)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "benchdash.toml"))
	if err != nil {
		t.Fatalf("Load failed for missing file: %v", err)
	}

	def := Default()
	if cfg.General.BenchmarkDir != def.General.BenchmarkDir {
		t.Errorf("expected default benchmark_dir %s, got %s", def.General.BenchmarkDir, cfg.General.BenchmarkDir)
	}
	if !cfg.General.Charts {
		t.Error("expected charts enabled by default")
	}
	if cfg.Thresholds != def.Thresholds {
		t.Errorf("expected default thresholds %+v, got %+v", def.Thresholds, cfg.Thresholds)
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	content := `
[general]
benchmark_dir = "./custom"
charts = true
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "benchdash.toml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.General.MaxChartGroups != 4 {
		t.Errorf("expected default max_chart_groups 4, got %d", cfg.General.MaxChartGroups)
	}
	if cfg.General.RecentRuns != 10 {
		t.Errorf("expected default recent_runs 10, got %d", cfg.General.RecentRuns)
	}
	if cfg.Thresholds.MemoryIncreasePct != 20 {
		t.Errorf("expected default memory threshold 20, got %d", cfg.Thresholds.MemoryIncreasePct)
	}
}

func TestLoad_GroupCountClamped(t *testing.T) {
	content := `
[general]
max_chart_groups = 9
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "benchdash.toml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.General.MaxChartGroups != 4 {
		t.Errorf("expected max_chart_groups clamped to 4, got %d", cfg.General.MaxChartGroups)
	}
}

func TestLoad_InvalidTOMLError(t *testing.T) {
	content := `this is not valid toml [[[`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "benchdash.toml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected error for invalid TOML, got nil")
	}
}

func TestLoad_PathTraversalRejected(t *testing.T) {
	_, err := Load("../../etc/benchdash.toml")
	if err == nil {
		t.Fatal("expected error for traversal path, got nil")
	}
}
