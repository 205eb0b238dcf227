package stats

import (
	"time"
)

// TradeTable is the columnar view of one partitioned trade file, holding
// only the columns the aggregation needs. Rows keep file order; the first
// row is the month's opening trade.
type TradeTable struct {
	Symbol     string
	Dates      []string // trade date column, MM/DD/YYYY
	Times      []time.Time
	Prices     []float64
	Quantities []int64
}

// Len reports the number of trades in the table.
func (t *TradeTable) Len() int {
	return len(t.Times)
}

func (t *TradeTable) appendRow(date string, ts time.Time, price float64, quantity int64) {
	t.Dates = append(t.Dates, date)
	t.Times = append(t.Times, ts)
	t.Prices = append(t.Prices, price)
	t.Quantities = append(t.Quantities, quantity)
}
