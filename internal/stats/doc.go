// Package stats computes monthly per-file statistics over partitioned
// trade CSVs.
//
// A trade table loaded from one partition is grouped by calendar day and
// reduced to a fixed-width report row: quantity and interarrival
// quartiles, daily volume aggregates, resampled price dispersion,
// basis-point returns, and per-business-day price extremes relative to
// the file's opening price.
//
// Prices are forward-filled onto a fixed intraday grid before any
// dispersion or return is computed, so files with uneven trade density
// remain comparable. Days on the reference trading calendar with no
// observed trades contribute zero volume and zero price extremes.
//
// Example usage:
//
//	table, err := stats.LoadTradeTable("NIFTY-trades.csv")
//	if err != nil {
//		return err
//	}
//
//	agg, err := stats.NewAggregator(stats.Options{
//		Month: time.Date(2012, time.September, 1, 0, 0, 0, 0, time.UTC),
//	}, logger)
//	if err != nil {
//		return err
//	}
//
//	result, err := agg.Analyze("NIFTY-trades", table)
//	if err != nil {
//		return err
//	}
//	return stats.SaveToCSV([]domain.MonthlyStats{result}, outPath, writer)
package stats
