package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sept2012() time.Time {
	return time.Date(2012, time.September, 1, 0, 0, 0, 0, time.UTC)
}

func newTestAggregator(t *testing.T, opts Options) *Aggregator {
	t.Helper()
	if opts.Month.IsZero() {
		opts.Month = sept2012()
	}
	agg, err := NewAggregator(opts, nil)
	require.NoError(t, err)
	return agg
}

func addTrade(t *testing.T, table *TradeTable, date, clock string, price float64, quantity int64) {
	t.Helper()
	ts, err := time.Parse("01/02/2006 15:04:05", date+" "+clock)
	require.NoError(t, err)
	table.appendRow(date, ts, price, quantity)
}

// intradayTable holds three trades on Friday September 14th: ten lots at
// 100.00, five at 100.50 thirty seconds later, and twenty at 99.00 after
// a 210 second lull.
func intradayTable(t *testing.T) *TradeTable {
	t.Helper()
	table := &TradeTable{Symbol: "NIFTY"}
	addTrade(t, table, "09/14/2012", "09:16:00", 100.00, 10)
	addTrade(t, table, "09/14/2012", "09:16:30", 100.50, 5)
	addTrade(t, table, "09/14/2012", "09:20:00", 99.00, 20)
	return table
}

func TestAnalyzeIntradayResampling(t *testing.T) {
	agg := newTestAggregator(t, Options{MarketOpen: "09:15", MarketClose: "09:21"})

	stats, err := agg.Analyze("NIFTY-trades", intradayTable(t))
	require.NoError(t, err)

	assert.Equal(t, "NIFTY-trades", stats.FileID)
	require.Len(t, stats.Days, 20)

	// September 14th is the tenth business day of the month. Its grid
	// runs 09:15, 09:18, 09:21; the 09:15 point predates every trade and
	// carries the first price forward.
	day := stats.Days[9]
	assert.True(t, day.Date.Equal(time.Date(2012, time.September, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 3, day.TradeCount)
	assert.Equal(t, int64(35), day.TotalQuantity)
	assert.Equal(t, []float64{100.00, 100.50, 99.00}, day.ResampledPrices)
	assert.Equal(t, 100.50, day.PriceMax)
	assert.Equal(t, 99.00, day.PriceMin)
	assert.InDelta(t, 99.833333333, day.PriceMean, 1e-9)
}

func TestAnalyzeScalarStatistics(t *testing.T) {
	agg := newTestAggregator(t, Options{MarketOpen: "09:15", MarketClose: "09:21"})

	stats, err := agg.Analyze("NIFTY-trades", intradayTable(t))
	require.NoError(t, err)

	assert.InDelta(t, 7.5, stats.QuantityQ1, 1e-9)
	assert.InDelta(t, 10.0, stats.QuantityQ2, 1e-9)
	assert.InDelta(t, 15.0, stats.QuantityQ3, 1e-9)
	assert.Equal(t, int64(20), stats.QuantityMax)
	assert.Equal(t, int64(5), stats.QuantityMin)
	assert.InDelta(t, 11.666666666666666, stats.QuantityMean, 1e-9)

	// Two gaps of 30 and 210 seconds.
	assert.InDelta(t, 75.0, stats.InterarrivalQ1, 1e-9)
	assert.InDelta(t, 120.0, stats.InterarrivalQ2, 1e-9)
	assert.InDelta(t, 165.0, stats.InterarrivalQ3, 1e-9)

	// One observed day of volume 35 against nineteen zero-filled days.
	assert.Equal(t, 35.0, stats.DailyVolumeMax)
	assert.Equal(t, 0.0, stats.DailyVolumeMin)
	assert.InDelta(t, 1.75, stats.DailyVolumeMean, 1e-9)
	assert.Equal(t, 0.0, stats.DailyVolumeMedian)

	assert.InDelta(t, 99.83333333333333, stats.MeanTradePrice, 1e-9)
	assert.InDelta(t, 0.7637626158259733, stats.ResampledPriceStd, 1e-9)

	// Grid-to-grid returns (100.00 to 100.50 to 99.00) in basis points.
	assert.InDelta(t, -50.8819538670285, stats.ReturnsMeanBps, 1e-9)
	assert.InDelta(t, 142.3168329389478, stats.ReturnsStdBps, 1e-9)
	assert.InDelta(t, 201.26639529624603, stats.ReturnsAbsSumBps, 1e-9)
}

func TestAnalyzeZeroFillsCalendarDays(t *testing.T) {
	agg := newTestAggregator(t, Options{MarketOpen: "09:15", MarketClose: "09:21"})

	stats, err := agg.Analyze("NIFTY-trades", intradayTable(t))
	require.NoError(t, err)
	require.Len(t, stats.Days, 20)

	// September 3rd saw no trades but stays on the monthly record.
	day := stats.Days[0]
	assert.True(t, day.Date.Equal(time.Date(2012, time.September, 3, 0, 0, 0, 0, time.UTC)))
	assert.Zero(t, day.TradeCount)
	assert.Zero(t, day.TotalQuantity)
	assert.Empty(t, day.ResampledPrices)
}

func TestAnalyzePriceExtremes(t *testing.T) {
	agg := newTestAggregator(t, Options{MarketOpen: "09:15", MarketClose: "09:21"})

	stats, err := agg.Analyze("NIFTY-trades", intradayTable(t))
	require.NoError(t, err)

	require.Len(t, stats.DailyPriceMaxBps, 20)
	require.Len(t, stats.DailyPriceMinBps, 20)

	// Offsets from the opening trade at 100.00. The day high of 100.50
	// truncates to zero whole units; the low of 99.00 is one unit down.
	assert.Equal(t, int64(0), stats.DailyPriceMaxBps[9])
	assert.Equal(t, int64(-10000), stats.DailyPriceMinBps[9])

	// Days without trades price at zero, 100 whole units below the open.
	assert.Equal(t, int64(-1000000), stats.DailyPriceMaxBps[0])
	assert.Equal(t, int64(-1000000), stats.DailyPriceMinBps[0])
}

func TestAnalyzePriceExtremesTruncateTowardZero(t *testing.T) {
	table := &TradeTable{Symbol: "SBIN"}
	addTrade(t, table, "09/14/2012", "09:16:00", 100.00, 1)
	addTrade(t, table, "09/14/2012", "09:17:00", 101.75, 1)
	addTrade(t, table, "09/14/2012", "09:18:00", 99.25, 1)

	agg := newTestAggregator(t, Options{MarketOpen: "09:15", MarketClose: "09:21"})
	stats, err := agg.Analyze("SBIN-trades", table)
	require.NoError(t, err)

	// +1.75 truncates to +1 whole unit and -0.75 truncates to zero.
	assert.Equal(t, int64(10000), stats.DailyPriceMaxBps[9])
	assert.Equal(t, int64(0), stats.DailyPriceMinBps[9])
}

func TestAnalyzeMultipleDays(t *testing.T) {
	table := &TradeTable{Symbol: "NIFTY"}
	// File order differs from calendar order, and the September 14th
	// rows arrive time-reversed.
	addTrade(t, table, "09/17/2012", "10:00:00", 101.00, 4)
	addTrade(t, table, "09/17/2012", "10:00:30", 102.00, 6)
	addTrade(t, table, "09/14/2012", "10:01:00", 100.00, 2)
	addTrade(t, table, "09/14/2012", "10:00:00", 100.00, 8)

	agg := newTestAggregator(t, Options{MarketOpen: "09:15", MarketClose: "09:21"})
	stats, err := agg.Analyze("NIFTY-trades", table)
	require.NoError(t, err)

	require.Len(t, stats.Days, 20)
	assert.Equal(t, 2, stats.Days[9].TradeCount)
	assert.Equal(t, int64(10), stats.Days[9].TotalQuantity)
	assert.Equal(t, 2, stats.Days[10].TradeCount)
	assert.Equal(t, int64(10), stats.Days[10].TotalQuantity)

	// Pooled gaps are 60s and 30s; the weekend between the two days
	// never appears as a gap.
	assert.InDelta(t, 45.0, stats.InterarrivalQ2, 1e-9)

	// The opening price is the first row in file order, 101.00, so the
	// September 14th high of 100.00 sits one whole unit below it.
	assert.Equal(t, int64(-10000), stats.DailyPriceMaxBps[9])
}

func TestAnalyzeSingleTrade(t *testing.T) {
	table := &TradeTable{Symbol: "SBIN"}
	addTrade(t, table, "09/14/2012", "11:00:00", 250.50, 10)

	agg := newTestAggregator(t, Options{})
	stats, err := agg.Analyze("SBIN-trades", table)
	require.NoError(t, err)

	// Default grid 09:15 to 15:30 every 3 minutes.
	assert.Len(t, stats.Days[9].ResampledPrices, 126)

	assert.Equal(t, 250.50, stats.MeanTradePrice)
	assert.Equal(t, int64(10), stats.QuantityMax)
	assert.Equal(t, int64(10), stats.QuantityMin)
	assert.InDelta(t, 10.0, stats.QuantityQ2, 1e-9)

	// No gaps and a perfectly flat resampled series.
	assert.Zero(t, stats.InterarrivalQ1)
	assert.Zero(t, stats.InterarrivalQ2)
	assert.Zero(t, stats.InterarrivalQ3)
	assert.Zero(t, stats.ResampledPriceStd)
	assert.Zero(t, stats.ReturnsMeanBps)
	assert.Zero(t, stats.ReturnsStdBps)
	assert.Zero(t, stats.ReturnsAbsSumBps)
}

func TestAnalyzeEmptyTable(t *testing.T) {
	agg := newTestAggregator(t, Options{})

	_, err := agg.Analyze("empty-trades", &TradeTable{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no trades to analyze")

	_, err = agg.Analyze("nil-trades", nil)
	require.Error(t, err)
}

func TestAnalyzeBadTradeDate(t *testing.T) {
	table := &TradeTable{Symbol: "NIFTY"}
	table.appendRow("14-09-2012", time.Date(2012, time.September, 14, 10, 0, 0, 0, time.UTC), 100, 1)

	agg := newTestAggregator(t, Options{})
	_, err := agg.Analyze("NIFTY-trades", table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid trade date")
}

func TestNewAggregatorValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{
			name:    "missing month",
			opts:    Options{},
			wantErr: "reference month is required",
		},
		{
			name:    "negative interval",
			opts:    Options{Month: sept2012(), Interval: -time.Minute},
			wantErr: "sample interval must be positive",
		},
		{
			name:    "open after close",
			opts:    Options{Month: sept2012(), MarketOpen: "16:00", MarketClose: "09:00"},
			wantErr: "is not before close",
		},
		{
			name:    "open equals close",
			opts:    Options{Month: sept2012(), MarketOpen: "09:15", MarketClose: "09:15"},
			wantErr: "is not before close",
		},
		{
			name:    "malformed boundary",
			opts:    Options{Month: sept2012(), MarketOpen: "9am"},
			wantErr: "invalid market boundary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAggregator(tt.opts, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewAggregatorDefaults(t *testing.T) {
	agg, err := NewAggregator(Options{Month: sept2012()}, nil)
	require.NoError(t, err)

	assert.Equal(t, 3*time.Minute, agg.interval)
	assert.Equal(t, 9*60+15, agg.openMins)
	assert.Equal(t, 15*60+30, agg.closeMins)
	assert.NotNil(t, agg.calendar)
	assert.NotNil(t, agg.logger)
}
