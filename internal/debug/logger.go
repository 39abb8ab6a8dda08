// Package debug provides an opt-in JSON trace of a dashboard generation
// session for troubleshooting CI runs.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Logger records load attempts and written artifacts for one generation run.
type Logger struct {
	mu         sync.Mutex
	enabled    bool
	outputPath string
	session    *Session
}

// Session represents the entire trace session
type Session struct {
	StartTime  time.Time              `json:"start_time"`
	EndTime    *time.Time             `json:"end_time,omitempty"`
	Files      []FileLog              `json:"files"`
	Artifacts  []string               `json:"artifacts"`
	Errors     []ErrorLog             `json:"errors"`
	SystemInfo map[string]interface{} `json:"system_info"`
}

// FileLog captures one input file load attempt
type FileLog struct {
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
	Loaded    bool      `json:"loaded"`
	Error     string    `json:"error,omitempty"`
}

// ErrorLog captures error details with context
type ErrorLog struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Context   string    `json:"context,omitempty"`
}

// NewLogger creates a trace logger writing under outputDir when enabled.
func NewLogger(enabled bool, outputDir string) *Logger {
	l := &Logger{
		enabled: enabled,
		session: &Session{
			StartTime: time.Now(),
			SystemInfo: map[string]interface{}{
				"go_version": runtime.Version(),
				"timestamp":  time.Now().Format(time.RFC3339),
			},
		},
	}
	if enabled {
		l.outputPath = filepath.Join(outputDir, "debug")
	}
	return l
}

// IsEnabled returns whether trace logging is enabled
func (l *Logger) IsEnabled() bool {
	return l.enabled
}

// GetOutputPath returns the directory trace files are written to.
func (l *Logger) GetOutputPath() string {
	return l.outputPath
}

// LogFile records a load attempt for one input file.
func (l *Logger) LogFile(path string, err error) {
	if !l.enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := FileLog{Timestamp: time.Now(), Path: path, Loaded: err == nil}
	if err != nil {
		entry.Error = err.Error()
	}
	l.session.Files = append(l.session.Files, entry)
}

// LogArtifact records an output file written during generation.
func (l *Logger) LogArtifact(path string) {
	if !l.enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.session.Artifacts = append(l.session.Artifacts, path)
}

// LogError records a failure with its context.
func (l *Logger) LogError(context string, err error) {
	if !l.enabled || err == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.session.Errors = append(l.session.Errors, ErrorLog{
		Timestamp: time.Now(),
		Message:   err.Error(),
		Context:   context,
	})
}

// Finalize writes the session trace to disk.
func (l *Logger) Finalize() error {
	if !l.enabled {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.session.EndTime = &now

	if err := os.MkdirAll(l.outputPath, 0750); err != nil {
		return fmt.Errorf("failed to create debug directory: %w", err)
	}

	data, err := json.MarshalIndent(l.session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal debug session: %w", err)
	}

	name := fmt.Sprintf("session_%s.json", l.session.StartTime.Format("2006-01-02_15-04-05"))
	// #nosec G306 - 0640 allows owner/group to read, which is appropriate for trace files
	return os.WriteFile(filepath.Join(l.outputPath, name), data, 0640)
}
