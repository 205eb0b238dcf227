package partition

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"faocli/internal/config"
	"faocli/internal/errors"
	"faocli/internal/exporter"
	"faocli/pkg/contracts/domain"
)

// Config selects the partition policy and the output location.
type Config struct {
	// Policy is one of config.PolicySymbol, config.PolicyChunk or
	// config.PolicyDate.
	Policy string
	// ChunkSize is the number of records per sink under the chunk policy.
	ChunkSize int64
	// DateSource selects where the date policy reads its key from, either
	// config.DateSourceTimestamp or config.DateSourceNumber.
	DateSource string
	// Kind names the record kind in sink file names.
	Kind domain.RecordKind
	// OutputDir is the directory that receives the sink files.
	OutputDir string
}

// Partitioner routes decoded records to CSV sinks selected by the
// configured partition key. Sinks are created lazily on the first record
// of each key and stay open until Close.
type Partitioner struct {
	cfg    Config
	writer *exporter.CSVWriter
	logger *slog.Logger
	sinks  map[string]*exporter.StreamWriter
	count  int64
}

// NewPartitioner creates a Partitioner for one feed file run.
func NewPartitioner(cfg Config, writer *exporter.CSVWriter, logger *slog.Logger) (*Partitioner, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Policy {
	case config.PolicySymbol, config.PolicyDate:
	case config.PolicyChunk:
		if cfg.ChunkSize <= 0 {
			return nil, errors.NewValidationError(fmt.Sprintf("chunk size must be positive, got %d", cfg.ChunkSize))
		}
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("unknown partition policy: %s", cfg.Policy))
	}
	if cfg.Policy == config.PolicyDate {
		switch cfg.DateSource {
		case config.DateSourceTimestamp, config.DateSourceNumber:
		default:
			return nil, errors.NewValidationError(fmt.Sprintf("unknown date source: %s", cfg.DateSource))
		}
	}

	return &Partitioner{
		cfg:    cfg,
		writer: writer,
		logger: logger,
		sinks:  make(map[string]*exporter.StreamWriter),
	}, nil
}

// RouteOrder writes a decoded order record to the sink its partition key
// selects.
func (p *Partitioner) RouteOrder(rec domain.OrderRecord) error {
	sink, err := p.sinkFor(p.orderKey(rec))
	if err != nil {
		return err
	}
	p.count++
	return sink.WriteRecord(exporter.OrderRow(rec))
}

// RouteTrade writes a decoded trade record to the sink its partition key
// selects.
func (p *Partitioner) RouteTrade(rec domain.TradeRecord) error {
	sink, err := p.sinkFor(p.tradeKey(rec))
	if err != nil {
		return err
	}
	p.count++
	return sink.WriteRecord(exporter.TradeRow(rec))
}

// SinkCount reports the number of sinks opened so far.
func (p *Partitioner) SinkCount() int {
	return len(p.sinks)
}

// Close flushes and closes every open sink. All sinks are closed even
// when one of them fails; the first failure is returned.
func (p *Partitioner) Close() error {
	names := make([]string, 0, len(p.sinks))
	for name := range p.sinks {
		names = append(names, name)
	}
	sort.Strings(names)

	var firstErr error
	for _, name := range names {
		if err := p.sinks[name].Close(); err != nil && firstErr == nil {
			firstErr = errors.NewStorageError(fmt.Sprintf("failed to close sink %s", name), err)
		}
	}
	p.sinks = make(map[string]*exporter.StreamWriter)
	return firstErr
}

func (p *Partitioner) orderKey(rec domain.OrderRecord) string {
	switch p.cfg.Policy {
	case config.PolicySymbol:
		return rec.Symbol
	case config.PolicyChunk:
		return p.chunkKey()
	default:
		return p.dateKey(rec.Timestamp, rec.OrderNumber)
	}
}

func (p *Partitioner) tradeKey(rec domain.TradeRecord) string {
	switch p.cfg.Policy {
	case config.PolicySymbol:
		return rec.Symbol
	case config.PolicyChunk:
		return p.chunkKey()
	default:
		return p.dateKey(rec.Timestamp, rec.TradeNumber)
	}
}

// chunkKey names chunks by the cumulative record count at which each
// chunk starts, so the name is fixed when the sink is created even though
// the final chunk may close short.
func (p *Partitioner) chunkKey() string {
	index := p.count / p.cfg.ChunkSize
	return fmt.Sprintf("%09d", index*p.cfg.ChunkSize)
}

// dateKey derives the calendar date key from the decoded timestamp or
// from the leading digits of the record number, which encode the trading
// date in the source feed.
func (p *Partitioner) dateKey(ts time.Time, number string) string {
	if p.cfg.DateSource == config.DateSourceNumber && len(number) >= 8 {
		return number[:8]
	}
	return ts.Format("2006-01-02")
}

// sinkFor returns the open sink for a key, creating it on first use.
func (p *Partitioner) sinkFor(key string) (*exporter.StreamWriter, error) {
	if sink, ok := p.sinks[key]; ok {
		return sink, nil
	}

	path := filepath.Join(p.cfg.OutputDir, p.sinkName(key))
	sink, err := p.writer.CreateStreamWriter(path, exporter.StreamOptions{})
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("failed to create sink for key %s", key), err)
	}

	p.logger.Debug("opened partition sink",
		slog.String("key", key),
		slog.String("path", sink.Path()),
		slog.String("policy", p.cfg.Policy))

	p.sinks[key] = sink
	return sink, nil
}

func (p *Partitioner) sinkName(key string) string {
	if p.cfg.Policy == config.PolicyChunk {
		return fmt.Sprintf("%s-%s.csv", p.cfg.Kind, key)
	}
	return fmt.Sprintf("%s-%s.csv", key, p.cfg.Kind)
}
