// Package config provides centralized configuration management for the
// faocli pipeline. It handles loading configuration from multiple sources,
// validation, and provides a type-safe API for accessing configuration
// values throughout the application.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (config.yaml)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern FAO_* for namespacing:
//
//	FAO_FEED_TIMEBASE_DENOMINATOR=65535
//	FAO_PARTITION_POLICY=chunk
//	FAO_PARTITION_CHUNK_SIZE=250000
//	FAO_STATS_SAMPLE_INTERVAL=3m
//	FAO_LOGGING_LEVEL=debug
//
// # Path Management
//
// The package provides centralized path management through the Paths type,
// which handles all file system paths relative to the executable location:
//
//	paths, err := config.GetPaths()
//	feedPath := paths.GetFeedPath("FAO_Trades_28092012.DAT")
//	reportPath := paths.GetReportPath("trade_stats_20120928.csv")
//
// # Validation
//
// All configuration is validated at load time to ensure:
//
//	- The feed timebase denominator is one of the two supported units
//	- The partition policy and date source are known values
//	- Session bounds and the reference month parse
//	- Output directories exist or can be created
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
