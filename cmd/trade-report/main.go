package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"faocli/internal/config"
	"faocli/internal/exporter"
	"faocli/internal/files"
	"faocli/internal/infrastructure"
	"faocli/internal/stats"
	"faocli/pkg/contracts"
	"faocli/pkg/contracts/domain"
)

func main() {
	inDir := flag.String("in", "", "directory of partitioned trade CSVs (defaults to data/partitions)")
	outPath := flag.String("out", "", "output CSV path (defaults to data/reports/trade_stats_<date>.csv)")
	pattern := flag.String("pattern", "*-trades.csv", "glob pattern for trade partition files")
	interval := flag.String("interval", "", "resampling interval, e.g. 3m (overrides config)")
	month := flag.String("month", "", "reference month as YYYY-MM (overrides config)")
	mic := flag.String("mic", "", "exchange calendar MIC code, empty for Monday-Friday (overrides config)")
	excel := flag.Bool("excel", false, "also write an .xlsx workbook next to the CSV")
	summary := flag.Bool("summary", false, "also write a per-file summary CSV")
	configPath := flag.String("config", "", "config file path")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	// Initialize paths
	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	// Command line flags override the config file
	if *interval != "" {
		cfg.Stats.SampleInterval = *interval
	}
	if *month != "" {
		cfg.Stats.ReferenceMonth = *month
	}
	if *mic != "" {
		cfg.Stats.CalendarMIC = *mic
	}
	if *inDir == "" {
		*inDir = cfg.GetPartitionsDir()
	}

	refMonth, err := cfg.Stats.Month()
	if err != nil {
		slog.Error("Invalid reference month, want YYYY-MM",
			"month", cfg.Stats.ReferenceMonth,
			"error", err)
		os.Exit(1)
	}

	agg, err := stats.NewAggregator(stats.Options{
		Interval:    cfg.Stats.Interval(),
		MarketOpen:  cfg.Stats.MarketOpen,
		MarketClose: cfg.Stats.MarketClose,
		Month:       refMonth,
		Calendar:    stats.NewTradingCalendar(cfg.Stats.CalendarMIC),
	}, logger)
	if err != nil {
		slog.Error("Failed to configure aggregator", "error", err)
		os.Exit(1)
	}

	slog.Info("Scanning for trade partitions", "dir", *inDir, "pattern", *pattern)
	discovery := files.NewDiscovery(paths.ExecutableDir)
	tradeFiles, err := discovery.FindCSVFiles(*inDir, *pattern)
	if err != nil {
		slog.Error("Failed to scan for trade partitions", "error", err)
		os.Exit(1)
	}
	if len(tradeFiles) == 0 {
		slog.Error("No trade partition files found",
			"dir", *inDir,
			"pattern", *pattern,
			"hint", "Run processor first to partition the trade feed")
		os.Exit(1)
	}
	slog.Info("Found trade partitions", "count", len(tradeFiles))

	var results []domain.MonthlyStats
	failed := 0
	for _, f := range tradeFiles {
		table, err := stats.LoadTradeTable(f.Path)
		if err != nil {
			logger.Error("Failed to load trade partition",
				slog.String("file", f.Name),
				slog.String("error", err.Error()))
			failed++
			continue
		}

		fileID := strings.TrimSuffix(f.Name, ".csv")
		result, err := agg.Analyze(fileID, table)
		if err != nil {
			logger.Error("Failed to analyze trade partition",
				slog.String("file", f.Name),
				slog.String("error", err.Error()))
			failed++
			continue
		}
		results = append(results, result)
	}

	if len(results) == 0 {
		slog.Error("No trade partitions could be analyzed",
			"files", len(tradeFiles),
			"failed", failed)
		os.Exit(1)
	}

	if *outPath == "" {
		*outPath = paths.GetStatsCSVPath(time.Now())
	}

	writer := exporter.NewCSVWriter(paths)
	slog.Info("Saving statistics report", "path", *outPath)
	if err := stats.SaveToCSV(results, *outPath, writer); err != nil {
		slog.Error("Failed to save statistics report", "error", err)
		os.Exit(1)
	}

	if *excel {
		xlsxPath := strings.TrimSuffix(*outPath, ".csv") + ".xlsx"
		slog.Info("Saving statistics workbook", "path", xlsxPath)
		if err := stats.SaveToExcel(results, xlsxPath); err != nil {
			slog.Error("Failed to save statistics workbook", "error", err)
			os.Exit(1)
		}
	}

	if *summary {
		summaryPath := strings.TrimSuffix(*outPath, ".csv") + "_summary.csv"
		slog.Info("Saving summary report", "path", summaryPath)
		if err := stats.SaveSummaryReport(results, summaryPath, writer); err != nil {
			slog.Error("Failed to save summary report", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Statistics report generated",
		"report", *outPath,
		"files_analyzed", len(results),
		"files_failed", failed)

	printOverview(results)

	if failed > 0 {
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func printOverview(results []domain.MonthlyStats) {
	if len(results) == 0 {
		return
	}

	fmt.Println("\n=== MONTHLY TRADE STATISTICS ===")
	fmt.Println("File                     | Trades | Mean Price | Ret Mean (bps) | Ret Std (bps)")
	fmt.Println("-------------------------|--------|------------|----------------|--------------")

	for _, r := range results {
		trades := 0
		for _, d := range r.Days {
			trades += d.TradeCount
		}
		fmt.Printf("%-24s | %6d | %10.2f | %14.2f | %13.2f\n",
			r.FileID, trades, r.MeanTradePrice, r.ReturnsMeanBps, r.ReturnsStdBps)
	}
}
