package exporter

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// formatPrice formats a price for CSV output with exactly 2 decimal places
func formatPrice(d decimal.Decimal) string {
	// Always format with exactly 2 decimal places for consistency
	// This ensures values like 13.4 appear as 13.40 in CSV
	return d.StringFixed(2)
}

// formatInt formats an int64 value for CSV output
func formatInt(i int64) string {
	return fmt.Sprintf("%d", i)
}

// formatDate formats the date component of a timestamp
func formatDate(t time.Time) string {
	return t.Format("01/02/2006")
}

// formatTimeOfDay formats the time component of a timestamp with
// microsecond precision
func formatTimeOfDay(t time.Time) string {
	return t.Format("15:04:05.000000")
}
