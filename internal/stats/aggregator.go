package stats

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"faocli/internal/config"
	"faocli/internal/errors"
	"faocli/pkg/contracts/domain"
)

const dateLayout = "01/02/2006"

// Options configures an Aggregator.
type Options struct {
	// Interval is the resampling grid step. Zero selects 3 minutes.
	Interval time.Duration
	// MarketOpen and MarketClose bound the daily resampling grid,
	// formatted HH:MM. Empty selects 09:15 and 15:30.
	MarketOpen  string
	MarketClose string
	// Month anchors the reference calendar month.
	Month time.Time
	// Calendar enumerates the month's business days. Nil selects plain
	// Monday to Friday days.
	Calendar *TradingCalendar
}

// Aggregator computes the monthly statistics vector for partitioned
// trade files, one file per symbol and month.
type Aggregator struct {
	interval  time.Duration
	openMins  int
	closeMins int
	month     time.Time
	calendar  *TradingCalendar
	logger    *slog.Logger
}

// NewAggregator creates an Aggregator for one reference month.
func NewAggregator(opts Options, logger *slog.Logger) (*Aggregator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Month.IsZero() {
		return nil, errors.NewValidationError("reference month is required")
	}

	interval := opts.Interval
	if interval == 0 {
		interval = 3 * time.Minute
	}
	if interval < 0 {
		return nil, errors.NewValidationError(fmt.Sprintf("sample interval must be positive, got %s", interval))
	}

	openMins, err := parseClock(opts.MarketOpen, config.DefaultMarketOpen)
	if err != nil {
		return nil, err
	}
	closeMins, err := parseClock(opts.MarketClose, config.DefaultMarketClose)
	if err != nil {
		return nil, err
	}
	if openMins >= closeMins {
		return nil, errors.NewValidationError(fmt.Sprintf("market open %s is not before close %s", opts.MarketOpen, opts.MarketClose))
	}

	cal := opts.Calendar
	if cal == nil {
		cal = NewTradingCalendar("")
	}

	return &Aggregator{
		interval:  interval,
		openMins:  openMins,
		closeMins: closeMins,
		month:     opts.Month,
		calendar:  cal,
		logger:    logger,
	}, nil
}

func parseClock(s, fallback string) (int, error) {
	if s == "" {
		s = fallback
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid market boundary %q", s))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// dayGroup collects one calendar day's row indices, sorted by timestamp.
type dayGroup struct {
	date time.Time
	key  string
	rows []int
}

// Analyze computes the statistics vector for one trade table. The table
// holds one symbol's trades for one month, in file order.
func (a *Aggregator) Analyze(fileID string, table *TradeTable) (domain.MonthlyStats, error) {
	if table == nil || table.Len() == 0 {
		return domain.MonthlyStats{}, errors.NewValidationError(fmt.Sprintf("no trades to analyze in %s", fileID))
	}

	groups, order, err := a.groupByDay(table)
	if err != nil {
		return domain.MonthlyStats{}, err
	}

	stats := domain.MonthlyStats{FileID: fileID}
	a.quantityStats(table, &stats)
	a.interarrivalStats(table, order, &stats)

	days := a.dailyAggregates(table, order, &stats)
	a.volumeStats(days, &stats)
	a.priceExtremes(table, groups, &stats)
	stats.Days = days

	a.logger.Debug("analyzed trade file",
		slog.String("file", fileID),
		slog.String("symbol", table.Symbol),
		slog.Int("trades", table.Len()),
		slog.Int("observed_days", len(order)))

	return stats, nil
}

// groupByDay indexes rows by their trade date column and sorts each day
// by timestamp. Day order is chronological.
func (a *Aggregator) groupByDay(table *TradeTable) (map[string]*dayGroup, []*dayGroup, error) {
	groups := make(map[string]*dayGroup)
	var order []*dayGroup

	for i, key := range table.Dates {
		g, ok := groups[key]
		if !ok {
			date, err := time.Parse(dateLayout, key)
			if err != nil {
				return nil, nil, errors.NewParsingError(fmt.Sprintf("invalid trade date %q", key), err)
			}
			g = &dayGroup{date: date, key: key}
			groups[key] = g
			order = append(order, g)
		}
		g.rows = append(g.rows, i)
	}

	sort.Slice(order, func(i, j int) bool {
		return order[i].date.Before(order[j].date)
	})
	for _, g := range order {
		rows := g.rows
		sort.SliceStable(rows, func(i, j int) bool {
			return table.Times[rows[i]].Before(table.Times[rows[j]])
		})
	}
	return groups, order, nil
}

func (a *Aggregator) quantityStats(table *TradeTable, stats *domain.MonthlyStats) {
	quantities := make([]float64, len(table.Quantities))
	qmax, qmin := table.Quantities[0], table.Quantities[0]
	for i, q := range table.Quantities {
		quantities[i] = float64(q)
		if q > qmax {
			qmax = q
		}
		if q < qmin {
			qmin = q
		}
	}

	stats.QuantityQ1 = quantile(quantities, 0.25)
	stats.QuantityQ2 = quantile(quantities, 0.50)
	stats.QuantityQ3 = quantile(quantities, 0.75)
	stats.QuantityMax = qmax
	stats.QuantityMin = qmin
	stats.QuantityMean = mean(quantities)
}

// interarrivalStats pools the consecutive-trade gaps of each day. The
// first gap of every day is undefined and discarded, so no pooled gap
// ever spans two calendar days.
func (a *Aggregator) interarrivalStats(table *TradeTable, order []*dayGroup, stats *domain.MonthlyStats) {
	var gaps []float64
	for _, g := range order {
		for i := 1; i < len(g.rows); i++ {
			gap := table.Times[g.rows[i]].Sub(table.Times[g.rows[i-1]]).Seconds()
			gaps = append(gaps, gap)
		}
	}

	stats.InterarrivalQ1 = quantile(gaps, 0.25)
	stats.InterarrivalQ2 = quantile(gaps, 0.50)
	stats.InterarrivalQ3 = quantile(gaps, 0.75)
}

// dailyAggregates builds the per-day view over the union of observed days
// and the reference calendar, resamples each observed day's prices, and
// fills the resampling-derived scalars.
func (a *Aggregator) dailyAggregates(table *TradeTable, order []*dayGroup, stats *domain.MonthlyStats) []domain.DailyAggregate {
	byKey := make(map[string]domain.DailyAggregate)

	var pooledPrices []float64
	var pooledReturns []float64

	for _, g := range order {
		agg := domain.DailyAggregate{
			Date:       g.date,
			TradeCount: len(g.rows),
		}

		obs := make([]Observation[float64], 0, len(g.rows))
		first := true
		for _, r := range g.rows {
			price := table.Prices[r]
			agg.TotalQuantity += table.Quantities[r]
			agg.PriceMean += price
			if first || price > agg.PriceMax {
				agg.PriceMax = price
			}
			if first || price < agg.PriceMin {
				agg.PriceMin = price
			}
			first = false
			obs = append(obs, Observation[float64]{Time: table.Times[r], Value: price})
		}
		agg.PriceMean /= float64(len(g.rows))

		samples := ForwardFill(obs, a.gridBoundary(g.date, a.openMins), a.gridBoundary(g.date, a.closeMins), a.interval)
		agg.ResampledPrices = make([]float64, len(samples))
		for i, s := range samples {
			agg.ResampledPrices[i] = s.Value
			pooledPrices = append(pooledPrices, s.Value)
			if i > 0 {
				pooledReturns = append(pooledReturns, (s.Value-samples[i-1].Value)/s.Value)
			}
		}

		byKey[g.key] = agg
	}

	// Reference-calendar days with no trades appear with zero volume so
	// monthly statistics never drop non-trading days silently.
	for _, day := range a.calendar.BusinessDays(a.month) {
		key := day.Format(dateLayout)
		if _, ok := byKey[key]; !ok {
			byKey[key] = domain.DailyAggregate{Date: day}
		}
	}

	days := make([]domain.DailyAggregate, 0, len(byKey))
	for _, agg := range byKey {
		days = append(days, agg)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	stats.MeanTradePrice = mean(table.Prices)
	stats.ResampledPriceStd = sampleStd(pooledPrices)

	if len(pooledReturns) > 0 {
		stats.ReturnsMeanBps = mean(pooledReturns) * 10000
		stats.ReturnsStdBps = sampleStd(pooledReturns) * 10000
		var absSum float64
		for _, r := range pooledReturns {
			absSum += math.Abs(r)
		}
		stats.ReturnsAbsSumBps = absSum * 10000
	}

	return days
}

func (a *Aggregator) gridBoundary(day time.Time, minutes int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, time.UTC)
}

func (a *Aggregator) volumeStats(days []domain.DailyAggregate, stats *domain.MonthlyStats) {
	volumes := make([]float64, len(days))
	for i, d := range days {
		volumes[i] = float64(d.TotalQuantity)
	}

	vmax, vmin := volumes[0], volumes[0]
	for _, v := range volumes {
		if v > vmax {
			vmax = v
		}
		if v < vmin {
			vmin = v
		}
	}

	stats.DailyVolumeMax = vmax
	stats.DailyVolumeMin = vmin
	stats.DailyVolumeMean = mean(volumes)
	stats.DailyVolumeMedian = median(volumes)
}

// priceExtremes emits one max and one min value per business day of the
// reference month, in calendar order. Each day's extreme price, with 0
// standing in for days without trades, is offset by the month's first
// trade price and scaled to basis points, truncated to an integer.
func (a *Aggregator) priceExtremes(table *TradeTable, groups map[string]*dayGroup, stats *domain.MonthlyStats) {
	opening := table.Prices[0]
	refDays := a.calendar.BusinessDays(a.month)

	stats.DailyPriceMaxBps = make([]int64, 0, len(refDays))
	stats.DailyPriceMinBps = make([]int64, 0, len(refDays))

	for _, day := range refDays {
		var dayMax, dayMin float64
		if g, ok := groups[day.Format(dateLayout)]; ok && len(g.rows) > 0 {
			dayMax, dayMin = table.Prices[g.rows[0]], table.Prices[g.rows[0]]
			for _, r := range g.rows {
				price := table.Prices[r]
				if price > dayMax {
					dayMax = price
				}
				if price < dayMin {
					dayMin = price
				}
			}
		}

		stats.DailyPriceMaxBps = append(stats.DailyPriceMaxBps, 10000*int64(math.Trunc(dayMax-opening)))
		stats.DailyPriceMinBps = append(stats.DailyPriceMinBps, 10000*int64(math.Trunc(dayMin-opening)))
	}
}
