package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"faocli/internal/config"
	"faocli/internal/exporter"
	"faocli/internal/feed"
	"faocli/internal/files"
	"faocli/internal/infrastructure"
	"faocli/internal/partition"
	"faocli/pkg/contracts"
	"faocli/pkg/contracts/domain"
)

// feedJob is one feed file queued for decoding.
type feedJob struct {
	Path string
	Name string
	Kind domain.RecordKind
}

// feedSource pairs a file name prefix with the record kind behind it.
type feedSource struct {
	Prefix string
	Kind   domain.RecordKind
}

func main() {
	inDir := flag.String("in", "", "input directory for .DAT feed files (defaults to data/feed relative to executable)")
	outDir := flag.String("out", "", "output directory for partition CSVs (defaults to data/partitions relative to executable)")
	kind := flag.String("kind", "both", "feed kind to process: orders, trades, or both")
	policy := flag.String("policy", "", "partition policy: symbol, chunk, or date (overrides config)")
	chunkSize := flag.Int("chunk-size", 0, "records per chunk for the chunk policy (overrides config)")
	dateSource := flag.String("date-source", "", "date partition key source: timestamp or number (overrides config)")
	timebase := flag.Float64("timebase", 0, "feed timestamp denominator: 65536 or 65535 (overrides config)")
	skipMalformed := flag.Bool("skip-malformed", false, "log and skip undecodable records instead of aborting the file")
	workers := flag.Int("workers", 1, "number of feed files decoded concurrently")
	configPath := flag.String("config", "", "config file path")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	// Initialize paths first to get default directories
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
	if *policy != "" {
		cfg.Partition.Policy = *policy
	}
	if *chunkSize > 0 {
		cfg.Partition.ChunkSize = *chunkSize
	}
	if *dateSource != "" {
		cfg.Partition.DateSource = *dateSource
	}
	if *timebase != 0 {
		cfg.Feed.TimebaseDenominator = *timebase
	}
	if *skipMalformed {
		cfg.Feed.SkipMalformed = true
	}
	if *inDir == "" {
		*inDir = cfg.GetFeedDir()
	}
	if *outDir == "" {
		*outDir = cfg.GetPartitionsDir()
	}
	if *workers < 1 {
		*workers = 1
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	ctx := infrastructure.EnsureRunID(context.Background())

	logger.InfoContext(ctx, "Starting feed processing",
		slog.String("input_dir", *inDir),
		slog.String("output_dir", *outDir),
		slog.String("kind", *kind),
		slog.String("policy", cfg.Partition.Policy),
		slog.Int("workers", *workers))

	jobs, err := collectJobs(*inDir, *kind, paths)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to discover feed files", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Feed files discovered", slog.Int("count", len(jobs)))
	fmt.Printf("Found %d feed files\n", len(jobs))

	if len(jobs) == 0 {
		logger.WarnContext(ctx, "No feed files found in input directory",
			slog.String("input_dir", *inDir),
			slog.String("extension", config.FeedFileExtension))
		fmt.Println("No feed files to process")
		return
	}

	writer := exporter.NewCSVWriter(paths)

	bar := progressbar.Default(int64(len(jobs)), "decode")

	var failed, read, decoded, dropped, skipped atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			summary, err := processFeedFile(gctx, cfg, writer, job, *outDir, logger)
			if err != nil {
				logger.ErrorContext(gctx, "Failed to process feed file",
					slog.String("file", job.Name),
					slog.String("error", err.Error()))
				failed.Add(1)
			} else {
				read.Add(summary.Read)
				decoded.Add(summary.Decoded)
				dropped.Add(summary.Dropped)
				skipped.Add(summary.Skipped)
			}
			bar.Add(1)
			return nil
		})
	}
	g.Wait()
	bar.Close()

	logger.InfoContext(ctx, "Feed processing complete",
		slog.Int("files", len(jobs)),
		slog.Int64("failed_files", failed.Load()),
		slog.Int64("records_read", read.Load()),
		slog.Int64("records_decoded", decoded.Load()),
		slog.Int64("records_dropped", dropped.Load()),
		slog.Int64("records_skipped", skipped.Load()))

	fmt.Printf("Processing complete: %d files, %d records decoded\n", len(jobs), decoded.Load())

	if failed.Load() > 0 {
		fmt.Printf("Failed to process %d files, see log for details\n", failed.Load())
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// collectJobs lists the feed files to decode, orders before trades.
func collectJobs(inDir, kind string, paths *config.Paths) ([]feedJob, error) {
	var sources []feedSource
	switch kind {
	case "orders":
		sources = []feedSource{{config.FeedOrdersPrefix, domain.KindOrders}}
	case "trades":
		sources = []feedSource{{config.FeedTradesPrefix, domain.KindTrades}}
	case "both":
		sources = []feedSource{
			{config.FeedOrdersPrefix, domain.KindOrders},
			{config.FeedTradesPrefix, domain.KindTrades},
		}
	default:
		return nil, fmt.Errorf("unknown feed kind %q (want orders, trades, or both)", kind)
	}

	discovery := files.NewDiscovery(paths.ExecutableDir)

	var jobs []feedJob
	for _, src := range sources {
		found, err := discovery.FindFeedFiles(inDir, src.Prefix)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			jobs = append(jobs, feedJob{Path: f.Path, Name: f.Name, Kind: src.Kind})
		}
	}
	return jobs, nil
}

// processFeedFile decodes one feed file and routes its records into
// partition sinks under a per-file output directory.
func processFeedFile(ctx context.Context, cfg *config.Config, writer *exporter.CSVWriter, job feedJob, outDir string, logger *slog.Logger) (feed.Summary, error) {
	f, err := os.Open(job.Path)
	if err != nil {
		return feed.Summary{}, fmt.Errorf("failed to open feed file: %w", err)
	}
	defer f.Close()

	p, err := partition.NewPartitioner(partition.Config{
		Policy:     cfg.Partition.Policy,
		ChunkSize:  int64(cfg.Partition.ChunkSize),
		DateSource: cfg.Partition.DateSource,
		Kind:       job.Kind,
		OutputDir:  filepath.Join(outDir, config.FeedFileStem(job.Name)),
	}, writer, logger)
	if err != nil {
		return feed.Summary{}, err
	}

	decoder := feed.NewDecoder(feed.Options{
		TimebaseDenominator: cfg.Feed.TimebaseDenominator,
		SkipMalformed:       cfg.Feed.SkipMalformed,
	}, logger)

	var summary feed.Summary
	switch job.Kind {
	case domain.KindOrders:
		summary, err = decoder.DecodeOrders(ctx, f, p.RouteOrder)
	case domain.KindTrades:
		summary, err = decoder.DecodeTrades(ctx, f, p.RouteTrade)
	}
	if err != nil {
		p.Close()
		return summary, err
	}
	if err := p.Close(); err != nil {
		return summary, err
	}

	logger.InfoContext(ctx, "Decoded feed file",
		slog.String("file", job.Name),
		slog.String("kind", string(job.Kind)),
		slog.Int64("records_read", summary.Read),
		slog.Int64("records_decoded", summary.Decoded),
		slog.Int64("records_dropped", summary.Dropped),
		slog.Int64("records_skipped", summary.Skipped),
		slog.Int("sinks", p.SinkCount()))

	return summary, nil
}
