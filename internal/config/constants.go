package config

// Application constants - all hardcoded values for the faocli pipeline
const (
	// Application Info
	AppName    = "faocli"
	AppVersion = "1.2.0"

	// EnvPrefix namespaces all environment variables (FAO_LOGGING_LEVEL, ...)
	EnvPrefix = "FAO"

	// Feed Files
	FeedOrdersPrefix  = "FAO_Orders_"
	FeedTradesPrefix  = "FAO_Trades_"
	FeedFileExtension = ".DAT"

	// Feed Timebase
	// Timestamps count jiffies since 1980-01-01 UTC. The denominator is the
	// number of jiffies per second; 65535 appears in older feeds.
	JiffiesPerSecond       = 65536.0
	JiffiesPerSecondLegacy = 65535.0

	// Partition Policies
	PolicySymbol = "symbol"
	PolicyChunk  = "chunk"
	PolicyDate   = "date"

	// Date Partition Key Sources
	DateSourceTimestamp = "timestamp"
	DateSourceNumber    = "number"

	DefaultChunkSize = 100000

	// Statistics Defaults
	DefaultSampleInterval = "3m"
	DefaultMarketOpen     = "09:15"
	DefaultMarketClose    = "15:30"
	DefaultReferenceMonth = "2012-09"

	// File Paths (relative to executable)
	DefaultDataDir       = "data"
	DefaultFeedDir       = "data/feed"
	DefaultPartitionsDir = "data/partitions"
	DefaultReportsDir    = "data/reports"
	DefaultLogsDir       = "logs"

	// Log Settings
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "json"
	DefaultLogOutput  = "both"
	DefaultLogFile    = "logs/faocli.log"
	MaxLogFileSizeMB  = 100
	MaxLogFileAgeDays = 30
	MaxLogFileBackups = 10
)
