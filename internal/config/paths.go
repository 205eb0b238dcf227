package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Paths contains all the application paths
// This is the single source of truth for ALL file paths in the application
type Paths struct {
	ExecutableDir string
	DataDir       string
	FeedDir       string
	PartitionsDir string
	ReportsDir    string
	LogsDir       string
}

// GetPaths returns the application paths relative to the executable location
// All paths are ALWAYS relative to the executable directory, never the current working directory
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %v", err)
	}

	// Resolve symlinks to get the actual executable location
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %v", err)
	}

	// Get the directory containing the executable
	exeDir := filepath.Dir(exe)

	// Directory structure:
	// dist/
	//   ├── config.yaml          (optional)
	//   ├── data/
	//   │   ├── feed/            (raw .DAT feed files)
	//   │   ├── partitions/      (stage-1 per-key CSV output)
	//   │   └── reports/         (stage-2 statistics reports)
	//   └── logs/                (application logs)

	dataDir := filepath.Join(exeDir, "data")

	paths := &Paths{
		ExecutableDir: exeDir,
		DataDir:       dataDir,
		FeedDir:       filepath.Join(dataDir, "feed"),
		PartitionsDir: filepath.Join(dataDir, "partitions"),
		ReportsDir:    filepath.Join(dataDir, "reports"),
		LogsDir:       filepath.Join(exeDir, "logs"),
	}

	return paths, nil
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	// Per-input partition subdirectories are created by the processor as
	// files are routed; this only creates the base layout.
	directories := []string{
		p.DataDir,
		p.FeedDir,
		p.PartitionsDir,
		p.ReportsDir,
		p.LogsDir,
	}

	logger := slog.Default()

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}

		if logger != nil {
			logger.Debug("Ensured directory exists",
				slog.String("directory", dir))
		}
	}

	return nil
}

// GetRelativePath returns a path relative to the executable directory
func (p *Paths) GetRelativePath(subpath string) string {
	return filepath.Join(p.ExecutableDir, subpath)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// GetFeedPath returns the path for a raw feed file
func (p *Paths) GetFeedPath(filename string) string {
	return filepath.Join(p.FeedDir, filename)
}

// GetPartitionDir returns the partition output directory for one input file.
// The stem is the input file name without its extension.
func (p *Paths) GetPartitionDir(stem string) string {
	return filepath.Join(p.PartitionsDir, stem)
}

// GetReportPath returns the path for a report file
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetLogPath returns the path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// GetStatsCSVPath returns the path for a dated statistics report
// (e.g., trade_stats_20120928.csv)
func (p *Paths) GetStatsCSVPath(date time.Time) string {
	filename := fmt.Sprintf("trade_stats_%s.csv", date.Format("20060102"))
	return filepath.Join(p.ReportsDir, filename)
}

// FeedFileStem returns the feed file name without its extension, used to
// name the per-input partition subdirectory.
func FeedFileStem(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LogPathResolution logs detailed path resolution information for debugging
func (p *Paths) LogPathResolution() {
	logger := slog.Default()
	if logger == nil {
		return
	}

	logger.Debug("Path resolution summary",
		slog.Group("directories",
			slog.String("executable", p.ExecutableDir),
			slog.String("data", p.DataDir),
			slog.String("feed", p.FeedDir),
			slog.String("partitions", p.PartitionsDir),
			slog.String("reports", p.ReportsDir),
			slog.String("logs", p.LogsDir),
		))
}
