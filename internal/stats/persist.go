package stats

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"faocli/internal/errors"
	"faocli/internal/exporter"
	"faocli/pkg/contracts/domain"
)

// SaveToCSV writes one headerless report row per analyzed file: the file
// identifier, the eighteen scalar statistics, then the per-day max and
// min price extremes in calendar order.
func SaveToCSV(results []domain.MonthlyStats, path string, writer *exporter.CSVWriter) error {
	records := make([][]string, 0, len(results))
	for _, r := range results {
		records = append(records, statsRow(r))
	}
	return writer.WriteCSV(path, exporter.WriteOptions{Records: records})
}

// SaveToExcel writes the same report rows as a workbook with a header
// row, for hand inspection.
func SaveToExcel(results []domain.MonthlyStats, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Monthly Statistics"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return errors.NewStorageError("failed to prepare workbook", err)
	}

	var headers []string
	if len(results) > 0 {
		headers = statsHeaders(results[0])
	}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, r := range results {
		for col, v := range statsValues(r) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to save workbook %s", path), err)
	}
	return nil
}

// SaveSummaryReport writes a compact per-file overview alongside the
// full report.
func SaveSummaryReport(results []domain.MonthlyStats, path string, writer *exporter.CSVWriter) error {
	headers := []string{"file_id", "trades", "observed_days", "total_volume", "mean_trade_price", "returns_mean_bps"}

	records := make([][]string, 0, len(results))
	for _, r := range results {
		var trades, observed int
		var volume int64
		for _, d := range r.Days {
			trades += d.TradeCount
			volume += d.TotalQuantity
			if d.TradeCount > 0 {
				observed++
			}
		}
		records = append(records, []string{
			r.FileID,
			strconv.Itoa(trades),
			strconv.Itoa(observed),
			strconv.FormatInt(volume, 10),
			formatScalar(r.MeanTradePrice),
			formatScalar(r.ReturnsMeanBps),
		})
	}

	return writer.WriteSimpleCSV(path, headers, records)
}

// statsValues returns the typed report row in output order.
func statsValues(r domain.MonthlyStats) []interface{} {
	values := []interface{}{
		r.FileID,
		r.QuantityQ1, r.QuantityQ2, r.QuantityQ3,
		r.QuantityMax, r.QuantityMin, r.QuantityMean,
		r.InterarrivalQ1, r.InterarrivalQ2, r.InterarrivalQ3,
		r.DailyVolumeMax, r.DailyVolumeMin, r.DailyVolumeMean, r.DailyVolumeMedian,
		r.MeanTradePrice, r.ResampledPriceStd,
		r.ReturnsMeanBps, r.ReturnsStdBps, r.ReturnsAbsSumBps,
	}
	for _, v := range r.DailyPriceMaxBps {
		values = append(values, v)
	}
	for _, v := range r.DailyPriceMinBps {
		values = append(values, v)
	}
	return values
}

func statsRow(r domain.MonthlyStats) []string {
	values := statsValues(r)
	row := make([]string, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case string:
			row[i] = x
		case int64:
			row[i] = strconv.FormatInt(x, 10)
		case float64:
			row[i] = formatScalar(x)
		default:
			row[i] = fmt.Sprint(x)
		}
	}
	return row
}

func statsHeaders(r domain.MonthlyStats) []string {
	headers := []string{
		"file_id",
		"quantity_q1", "quantity_q2", "quantity_q3",
		"quantity_max", "quantity_min", "quantity_mean",
		"interarrival_q1", "interarrival_q2", "interarrival_q3",
		"daily_volume_max", "daily_volume_min", "daily_volume_mean", "daily_volume_median",
		"mean_trade_price", "resampled_price_std",
		"returns_mean_bps", "returns_std_bps", "returns_abs_sum_bps",
	}
	for i := range r.DailyPriceMaxBps {
		headers = append(headers, fmt.Sprintf("max_bps_day%02d", i+1))
	}
	for i := range r.DailyPriceMinBps {
		headers = append(headers, fmt.Sprintf("min_bps_day%02d", i+1))
	}
	return headers
}

func formatScalar(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
