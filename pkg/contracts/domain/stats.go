package domain

import (
	"time"
)

// DailyAggregate summarizes one calendar day of trades for a single
// partitioned file. Days with no trades still appear in a month's aggregate
// set, with zero counts and prices, so that monthly statistics never drop
// non-trading observations silently.
type DailyAggregate struct {
	Date            time.Time `json:"date"`
	TradeCount      int       `json:"trade_count"`
	TotalQuantity   int64     `json:"total_quantity"`
	PriceMax        float64   `json:"price_max"`
	PriceMin        float64   `json:"price_min"`
	PriceMean       float64   `json:"price_mean"`
	ResampledPrices []float64 `json:"resampled_prices,omitempty"`
}

// MonthlyStats is the full statistics vector for one analyzed trade file:
// eighteen scalar statistics followed by per-business-day price extremes in
// calendar order. Interarrival quartiles are in seconds; return statistics
// and price extremes are scaled to basis points.
type MonthlyStats struct {
	FileID string `json:"file_id"`

	QuantityQ1   float64 `json:"quantity_q1"`
	QuantityQ2   float64 `json:"quantity_q2"`
	QuantityQ3   float64 `json:"quantity_q3"`
	QuantityMax  int64   `json:"quantity_max"`
	QuantityMin  int64   `json:"quantity_min"`
	QuantityMean float64 `json:"quantity_mean"`

	InterarrivalQ1 float64 `json:"interarrival_q1"`
	InterarrivalQ2 float64 `json:"interarrival_q2"`
	InterarrivalQ3 float64 `json:"interarrival_q3"`

	DailyVolumeMax    float64 `json:"daily_volume_max"`
	DailyVolumeMin    float64 `json:"daily_volume_min"`
	DailyVolumeMean   float64 `json:"daily_volume_mean"`
	DailyVolumeMedian float64 `json:"daily_volume_median"`

	MeanTradePrice    float64 `json:"mean_trade_price"`
	ResampledPriceStd float64 `json:"resampled_price_std"`

	ReturnsMeanBps   float64 `json:"returns_mean_bps"`
	ReturnsStdBps    float64 `json:"returns_std_bps"`
	ReturnsAbsSumBps float64 `json:"returns_abs_sum_bps"`

	DailyPriceMaxBps []int64 `json:"daily_price_max_bps"`
	DailyPriceMinBps []int64 `json:"daily_price_min_bps"`

	// Days carries the per-day aggregates the scalars were derived from.
	// It is not part of the report row format.
	Days []DailyAggregate `json:"days,omitempty"`
}
