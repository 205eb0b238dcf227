// Package files provides file discovery for the feed processing pipeline.
//
// Discovery locates raw feed files by kind prefix and partitioned CSV
// files by base-name pattern. Feed results are name sorted so repeated
// runs process files in a stable order.
//
// Example usage:
//
//	discovery := files.NewDiscovery("/path/to/data")
//
//	// Find all trade feed files
//	feedFiles, err := discovery.FindFeedFiles("feed", config.FeedTradesPrefix)
//
//	// Find every per-symbol trade CSV under the partitions tree
//	csvFiles, err := discovery.FindCSVFiles("partitions", "*-trades.csv")
package files
