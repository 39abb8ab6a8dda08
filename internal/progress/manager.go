// Package progress provides a terminal progress display for the generation
// stages. It is disabled by default for CI invocations.
package progress

import (
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Manager tracks progress through the fixed generation stages.
type Manager struct {
	enabled bool
	bar     *progressbar.ProgressBar
}

// NewManager creates a progress manager over the given number of stages.
func NewManager(stages int, enabled bool) *Manager {
	m := &Manager{enabled: enabled}
	if !enabled {
		return m
	}

	m.bar = progressbar.NewOptions(stages,
		progressbar.OptionSetDescription("Generating dashboard"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "|",
			BarEnd:        "|",
		}),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionOnCompletion(func() {
			_, _ = os.Stderr.WriteString("\n")
		}),
	)
	return m
}

// Step marks one stage complete and updates the displayed description.
func (m *Manager) Step(description string) {
	if !m.enabled {
		return
	}
	m.bar.Describe(description)
	_ = m.bar.Add(1)
}

// Finish completes the display.
func (m *Manager) Finish() {
	if !m.enabled {
		return
	}
	_ = m.bar.Finish()
}

// IsEnabled returns whether progress display is enabled
func (m *Manager) IsEnabled() bool {
	return m.enabled
}
