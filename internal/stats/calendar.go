package stats

import (
	"strings"
	"time"

	"github.com/scmhub/calendar"
)

// TradingCalendar enumerates the business days of a reference month.
type TradingCalendar struct {
	cal *calendar.Calendar
}

// NewTradingCalendar returns a calendar for the given MIC code (ISO
// 10383). An empty or unknown MIC falls back to plain Monday to Friday
// business days, which is the calendar the historical reference reports
// were produced against.
func NewTradingCalendar(mic string) *TradingCalendar {
	if mic == "" {
		return &TradingCalendar{}
	}
	return &TradingCalendar{cal: calendar.GetCalendar(strings.ToLower(mic))}
}

// BusinessDays lists the business days of the month containing ref, as
// UTC midnights in calendar order.
func (tc *TradingCalendar) BusinessDays(ref time.Time) []time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)

	var days []time.Time
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if tc.isBusinessDay(d) {
			days = append(days, d)
		}
	}
	return days
}

func (tc *TradingCalendar) isBusinessDay(d time.Time) bool {
	if tc.cal != nil {
		return tc.cal.IsBusinessDay(d)
	}
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
