package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Feed      FeedConfig      `yaml:"feed" envconfig:"FEED"`
	Partition PartitionConfig `yaml:"partition" envconfig:"PARTITION"`
	Stats     StatsConfig     `yaml:"stats" envconfig:"STATS"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Paths     PathsConfig     `yaml:"paths" envconfig:"PATHS"`
}

// FeedConfig contains raw feed decoding configuration
type FeedConfig struct {
	// TimebaseDenominator is the sub-second unit of the feed timestamps.
	// 65536 for current feeds, 65535 for the historical variant.
	TimebaseDenominator float64 `yaml:"timebase_denominator" envconfig:"TIMEBASE_DENOMINATOR"`
	// SkipMalformed makes the decoder log and skip records it cannot
	// decode instead of aborting the file.
	SkipMalformed bool `yaml:"skip_malformed" envconfig:"SKIP_MALFORMED"`
}

// PartitionConfig controls how decoded records are routed to output files
type PartitionConfig struct {
	Policy     string `yaml:"policy" envconfig:"POLICY"`
	ChunkSize  int    `yaml:"chunk_size" envconfig:"CHUNK_SIZE"`
	DateSource string `yaml:"date_source" envconfig:"DATE_SOURCE"`
}

// StatsConfig contains the monthly statistics parameters
type StatsConfig struct {
	SampleInterval string `yaml:"sample_interval" envconfig:"SAMPLE_INTERVAL"`
	MarketOpen     string `yaml:"market_open" envconfig:"MARKET_OPEN"`
	MarketClose    string `yaml:"market_close" envconfig:"MARKET_CLOSE"`
	ReferenceMonth string `yaml:"reference_month" envconfig:"REFERENCE_MONTH"`
	// CalendarMIC selects an exchange calendar for the reference month.
	// Empty means plain Monday-Friday business days.
	CalendarMIC string `yaml:"calendar_mic" envconfig:"CALENDAR_MIC"`
}

// Interval returns the resampling grid step. Validated at load time;
// falls back to the default when the config was built by hand.
func (s StatsConfig) Interval() time.Duration {
	d, err := time.ParseDuration(s.SampleInterval)
	if err != nil || d <= 0 {
		return 3 * time.Minute
	}
	return d
}

// Month returns the reference month as a time anchored at its first day.
func (s StatsConfig) Month() (time.Time, error) {
	return time.Parse("2006-01", s.ReferenceMonth)
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `yaml:"level" envconfig:"LEVEL"`
	Format     string `yaml:"format" envconfig:"FORMAT"`
	Output     string `yaml:"output" envconfig:"OUTPUT"`
	FilePath   string `yaml:"file_path" envconfig:"FILE_PATH"`
	MaxSizeMB  int    `yaml:"max_size_mb" envconfig:"MAX_SIZE_MB"`
	MaxAgeDays int    `yaml:"max_age_days" envconfig:"MAX_AGE_DAYS"`
	MaxBackups int    `yaml:"max_backups" envconfig:"MAX_BACKUPS"`
	Compress   bool   `yaml:"compress" envconfig:"COMPRESS"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	ExecutableDir string `yaml:"executable_dir" envconfig:"EXECUTABLE_DIR"`
	DataDir       string `yaml:"data_dir" envconfig:"DATA_DIR"`
	LogsDir       string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
}

// Load loads configuration from defaults, an optional config file, and
// environment variables, in that order of precedence (environment wins).
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom is Load with an explicit config file path. An empty path falls
// back to the default search locations.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	configFile := path
	if configFile == "" {
		configFile = getConfigFilePath()
	}
	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			if path != "" {
				return nil, fmt.Errorf("config file %s: %w", configFile, err)
			}
		} else if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Environment variables override file values
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Resolve relative paths
	if err := cfg.resolvePaths(); err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Validate paths
	if err := cfg.ValidatePaths(); err != nil {
		return nil, fmt.Errorf("path validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays configuration from a YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// resolvePaths sets up the executable directory and anchors relative paths
func (c *Config) resolvePaths() error {
	paths, err := GetPaths()
	if err != nil {
		return fmt.Errorf("failed to get paths: %w", err)
	}

	c.Paths.ExecutableDir = paths.ExecutableDir

	// The log file follows the executable, not the working directory
	if c.Logging.FilePath != "" && !filepath.IsAbs(c.Logging.FilePath) {
		c.Logging.FilePath = filepath.Join(paths.ExecutableDir, c.Logging.FilePath)
	}

	return nil
}

// ValidatePaths validates that critical paths exist or can be created
func (c *Config) ValidatePaths() error {
	paths, err := GetPaths()
	if err != nil {
		return fmt.Errorf("failed to get paths: %w", err)
	}

	if err := paths.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	paths.LogPathResolution()

	return nil
}

// GetDataDir returns the resolved data directory path
func (c *Config) GetDataDir() string {
	paths, err := GetPaths()
	if err != nil {
		// Fallback to config-based resolution if paths system fails
		if filepath.IsAbs(c.Paths.DataDir) {
			return c.Paths.DataDir
		}
		return filepath.Join(c.Paths.ExecutableDir, c.Paths.DataDir)
	}
	return paths.DataDir
}

// GetFeedDir returns the resolved raw feed directory path
func (c *Config) GetFeedDir() string {
	paths, err := GetPaths()
	if err != nil {
		return filepath.Join(c.GetDataDir(), "feed")
	}
	return paths.FeedDir
}

// GetPartitionsDir returns the resolved partition output directory path
func (c *Config) GetPartitionsDir() string {
	paths, err := GetPaths()
	if err != nil {
		return filepath.Join(c.GetDataDir(), "partitions")
	}
	return paths.PartitionsDir
}

// GetReportsDir returns the resolved reports directory path
func (c *Config) GetReportsDir() string {
	paths, err := GetPaths()
	if err != nil {
		return filepath.Join(c.GetDataDir(), "reports")
	}
	return paths.ReportsDir
}

// GetLogsDir returns the resolved logs directory path
func (c *Config) GetLogsDir() string {
	paths, err := GetPaths()
	if err != nil {
		// Fallback to config-based resolution if paths system fails
		if filepath.IsAbs(c.Paths.LogsDir) {
			return c.Paths.LogsDir
		}
		return filepath.Join(c.Paths.ExecutableDir, c.Paths.LogsDir)
	}
	return paths.LogsDir
}

// validate validates the configuration
func (c *Config) validate() error {
	switch c.Feed.TimebaseDenominator {
	case JiffiesPerSecond, JiffiesPerSecondLegacy:
	default:
		return fmt.Errorf("invalid feed timebase denominator %v: must be %v or %v",
			c.Feed.TimebaseDenominator, JiffiesPerSecond, JiffiesPerSecondLegacy)
	}

	switch c.Partition.Policy {
	case PolicySymbol, PolicyChunk, PolicyDate:
	default:
		return fmt.Errorf("invalid partition policy %q", c.Partition.Policy)
	}

	if c.Partition.ChunkSize <= 0 {
		return fmt.Errorf("partition chunk size must be positive, got %d", c.Partition.ChunkSize)
	}

	switch c.Partition.DateSource {
	case DateSourceTimestamp, DateSourceNumber:
	default:
		return fmt.Errorf("invalid partition date source %q", c.Partition.DateSource)
	}

	interval, err := time.ParseDuration(c.Stats.SampleInterval)
	if err != nil {
		return fmt.Errorf("invalid stats sample interval %q: %w", c.Stats.SampleInterval, err)
	}
	if interval <= 0 {
		return fmt.Errorf("stats sample interval must be positive, got %s", interval)
	}

	openTime, err := time.Parse("15:04", c.Stats.MarketOpen)
	if err != nil {
		return fmt.Errorf("invalid market open %q: %w", c.Stats.MarketOpen, err)
	}
	closeTime, err := time.Parse("15:04", c.Stats.MarketClose)
	if err != nil {
		return fmt.Errorf("invalid market close %q: %w", c.Stats.MarketClose, err)
	}
	if !openTime.Before(closeTime) {
		return fmt.Errorf("market open %q must be before market close %q",
			c.Stats.MarketOpen, c.Stats.MarketClose)
	}

	if _, err := c.Stats.Month(); err != nil {
		return fmt.Errorf("invalid reference month %q: %w", c.Stats.ReferenceMonth, err)
	}

	// Logging values are normalized rather than rejected
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		c.Logging.Format = DefaultLogFormat
	}
	if c.Logging.Output != "stdout" && c.Logging.Output != "file" && c.Logging.Output != "both" {
		c.Logging.Output = DefaultLogOutput
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = DefaultLogFile
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	// Check for config file in common locations
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
		"../configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Feed: FeedConfig{
			TimebaseDenominator: JiffiesPerSecond,
			SkipMalformed:       true,
		},
		Partition: PartitionConfig{
			Policy:     PolicySymbol,
			ChunkSize:  DefaultChunkSize,
			DateSource: DateSourceTimestamp,
		},
		Stats: StatsConfig{
			SampleInterval: DefaultSampleInterval,
			MarketOpen:     DefaultMarketOpen,
			MarketClose:    DefaultMarketClose,
			ReferenceMonth: DefaultReferenceMonth,
		},
		Logging: LoggingConfig{
			Level:      DefaultLogLevel,
			Format:     DefaultLogFormat,
			Output:     DefaultLogOutput,
			FilePath:   DefaultLogFile,
			MaxSizeMB:  MaxLogFileSizeMB,
			MaxAgeDays: MaxLogFileAgeDays,
			MaxBackups: MaxLogFileBackups,
			Compress:   true,
		},
		Paths: PathsConfig{
			DataDir: DefaultDataDir,
			LogsDir: DefaultLogsDir,
		},
	}
}
