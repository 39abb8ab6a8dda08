package benchdata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/lspbridge/benchdash/internal/debug"
)

// Loader reads benchmark runs from an archive directory tree plus a latest
// results directory. Load errors on individual files are logged and skipped;
// partial data is preferred over total failure.
type Loader struct {
	ArchiveDir string
	LatestDir  string
	Log        *logrus.Logger
	Trace      *debug.Logger // optional session trace
}

// NewLoader creates a loader rooted at benchmarkDir, expecting the layout
// <benchmarkDir>/archive/<subdir>/*_parsed.json and
// <benchmarkDir>/latest/*_parsed.json with a latest.json sentinel.
func NewLoader(benchmarkDir string, log *logrus.Logger) *Loader {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Loader{
		ArchiveDir: filepath.Join(benchmarkDir, "archive"),
		LatestDir:  filepath.Join(benchmarkDir, "latest"),
		Log:        log,
	}
}

// Load returns all available runs: archive subdirectories in sorted order,
// then the latest run if its timestamp is not already present. A missing
// archive or latest directory yields an empty (or shorter) result, never an
// error.
func (l *Loader) Load() []Run {
	runs := l.loadArchive()

	latest, ok := l.loadLatest()
	if !ok {
		return runs
	}
	for _, r := range runs {
		if r.Timestamp == latest.Timestamp {
			return runs
		}
	}
	return append(runs, latest)
}

func (l *Loader) loadArchive() []Run {
	entries, err := os.ReadDir(l.ArchiveDir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var runs []Run
	for _, name := range names {
		run, ok := l.loadParsedFile(filepath.Join(l.ArchiveDir, name))
		if ok {
			runs = append(runs, run)
		}
	}
	return runs
}

// loadLatest reads the latest run. The latest.json sentinel marks the
// presence of fresh data; without it the latest directory is ignored.
func (l *Loader) loadLatest() (Run, bool) {
	if _, err := os.Stat(filepath.Join(l.LatestDir, "latest.json")); err != nil {
		return Run{}, false
	}
	return l.loadParsedFile(l.LatestDir)
}

// loadParsedFile loads the first *_parsed.json file inside dir.
func (l *Loader) loadParsedFile(dir string) (Run, bool) {
	matches, err := filepath.Glob(filepath.Join(dir, "*_parsed.json"))
	if err != nil || len(matches) == 0 {
		return Run{}, false
	}
	sort.Strings(matches)
	path := matches[0]

	data, err := os.ReadFile(path)
	if err != nil {
		l.Log.WithError(err).Warnf("could not load %s", path)
		l.trace(path, err)
		return Run{}, false
	}

	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		l.Log.WithError(err).Warnf("could not parse %s", path)
		l.trace(path, err)
		return Run{}, false
	}
	l.trace(path, nil)
	return run, true
}

func (l *Loader) trace(path string, err error) {
	if l.Trace != nil {
		l.Trace.LogFile(path, err)
	}
}
