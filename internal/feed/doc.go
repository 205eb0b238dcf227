// Package feed decodes the fixed-width order and trade records of the
// derivatives market feed.
//
// Records arrive as newline-delimited lines of space-padded fields at
// fixed byte offsets. Order records carry the full order life cycle
// (entry, modification, cancellation) and trade records carry matched
// executions. Both share a common prefix of record indicator, segment,
// record number and a timestamp counted in jiffies since the feed epoch
// (1980-01-01 UTC).
//
// The decoder retains index and stock futures only. Records of any other
// instrument kind are dropped silently, not reported as errors.
//
// Example usage:
//
//	decoder := feed.NewDecoder(feed.Options{}, logger)
//
//	f, err := os.Open("FAO_Trades_14092012.DAT")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	summary, err := decoder.DecodeTrades(ctx, f, func(rec domain.TradeRecord) error {
//		return sink.Write(rec)
//	})
package feed
