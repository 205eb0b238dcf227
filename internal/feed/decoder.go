package feed

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"faocli/internal/errors"
	"faocli/pkg/contracts/domain"
)

// Options configures a Decoder.
type Options struct {
	// TimebaseDenominator is the number of jiffies per second of the feed
	// timestamps. Zero selects the default (65536).
	TimebaseDenominator float64
	// SkipMalformed makes the streaming readers log and skip records that
	// fail to decode instead of stopping at the first bad record.
	SkipMalformed bool
}

// Decoder decodes fixed-width order and trade records.
type Decoder struct {
	clock  jiffyClock
	skip   bool
	logger *slog.Logger
}

// NewDecoder creates a Decoder with the given options.
func NewDecoder(opts Options, logger *slog.Logger) *Decoder {
	denominator := opts.TimebaseDenominator
	if denominator == 0 {
		denominator = DefaultJiffiesPerSecond
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Decoder{
		clock:  jiffyClock{denominator: denominator},
		skip:   opts.SkipMalformed,
		logger: logger,
	}
}

// Summary reports the outcome of decoding one feed file.
type Summary struct {
	Read    int64 // records scanned
	Decoded int64 // records decoded and retained
	Dropped int64 // records dropped by the instrument filter
	Skipped int64 // malformed records skipped
}

// DecodeOrder decodes a single raw order record. The boolean reports
// retention: (rec, true, nil) for a decoded futures record, (zero, false,
// nil) for a record dropped by the instrument filter, (zero, false, err)
// for a record that could not be decoded.
func (d *Decoder) DecodeOrder(raw []byte) (domain.OrderRecord, bool, error) {
	if len(raw) < OrderRecordLength {
		return domain.OrderRecord{}, false, errors.NewDecodeError("order record too short", nil).
			WithContext("record_length", len(raw)).
			WithContext("required", OrderRecordLength)
	}

	jiffies, err := parseInt(raw[jiffiesStart:jiffiesEnd])
	if err != nil {
		return domain.OrderRecord{}, false, decodeErr("timestamp", jiffiesStart, jiffiesEnd, err)
	}

	// Non-futures records are dropped before any suffix field is parsed
	instrument := trimPad(raw[orderInstrumentStart:orderInstrumentEnd])
	if !domain.IsRetainedInstrument(instrument) {
		return domain.OrderRecord{}, false, nil
	}

	rec := domain.OrderRecord{
		RecordIndicator: trimPad(raw[indicatorStart:indicatorEnd]),
		Segment:         trimPad(raw[segmentStart:segmentEnd]),
		OrderNumber:     trimPad(raw[numberStart:numberEnd]),
		Timestamp:       d.clock.Time(jiffies),
		BuySell:         string(raw[orderBuySellStart:orderBuySellEnd]),
		ActivityType:    string(raw[orderActivityStart:orderActivityEnd]),
		Symbol:          trimPad(raw[orderSymbolStart:orderSymbolEnd]),
		Instrument:      instrument,
		OptionType:      trimPad(raw[orderOptionTypeStart:orderOptionTypeEnd]),
		MarketFlag:      string(raw[orderMarketFlagStart:orderMarketFlagEnd]),
		OnStopFlag:      string(raw[orderOnStopFlagStart:orderOnStopFlagEnd]),
		IOFlag:          string(raw[orderIOFlagStart:orderIOFlagEnd]),
		SpreadCombType:  string(raw[orderSpreadFlagStart:orderSpreadFlagEnd]),
		AlgoIndicator:   string(raw[orderAlgoFlagStart:orderAlgoFlagEnd]),
		ClientIDFlag:    string(raw[orderClientFlagStart:orderClientFlagEnd]),
	}

	if rec.ExpiryDate, err = parseExpiry(raw[orderExpiryStart:orderExpiryEnd]); err != nil {
		return domain.OrderRecord{}, false, decodeErr("expiry", orderExpiryStart, orderExpiryEnd, err)
	}
	if rec.StrikePrice, err = parseInt(raw[orderStrikeStart:orderStrikeEnd]); err != nil {
		return domain.OrderRecord{}, false, decodeErr("strike price", orderStrikeStart, orderStrikeEnd, err)
	}
	if rec.VolumeDisclosed, err = parseInt(raw[orderVolumeDiscStart:orderVolumeDiscEnd]); err != nil {
		return domain.OrderRecord{}, false, decodeErr("disclosed volume", orderVolumeDiscStart, orderVolumeDiscEnd, err)
	}
	if rec.VolumeOriginal, err = parseInt(raw[orderVolumeOrigStart:orderVolumeOrigEnd]); err != nil {
		return domain.OrderRecord{}, false, decodeErr("original volume", orderVolumeOrigStart, orderVolumeOrigEnd, err)
	}
	if rec.LimitPrice, err = parsePrice(raw[orderLimitIntStart:orderLimitIntEnd], raw[orderLimitFracStart:orderLimitFracEnd]); err != nil {
		return domain.OrderRecord{}, false, decodeErr("limit price", orderLimitIntStart, orderLimitFracEnd, err)
	}
	if rec.TriggerPrice, err = parsePrice(raw[orderTriggerIntStart:orderTriggerIntEnd], raw[orderTriggerFracStart:orderTriggerFracEnd]); err != nil {
		return domain.OrderRecord{}, false, decodeErr("trigger price", orderTriggerIntStart, orderTriggerIntEnd, err)
	}

	return rec, true, nil
}

// DecodeTrade decodes a single raw trade record. Result semantics match
// DecodeOrder.
func (d *Decoder) DecodeTrade(raw []byte) (domain.TradeRecord, bool, error) {
	if len(raw) < TradeRecordLength {
		return domain.TradeRecord{}, false, errors.NewDecodeError("trade record too short", nil).
			WithContext("record_length", len(raw)).
			WithContext("required", TradeRecordLength)
	}

	jiffies, err := parseInt(raw[jiffiesStart:jiffiesEnd])
	if err != nil {
		return domain.TradeRecord{}, false, decodeErr("timestamp", jiffiesStart, jiffiesEnd, err)
	}

	instrument := trimPad(raw[tradeInstrumentStart:tradeInstrumentEnd])
	if !domain.IsRetainedInstrument(instrument) {
		return domain.TradeRecord{}, false, nil
	}

	rec := domain.TradeRecord{
		RecordIndicator:   trimPad(raw[indicatorStart:indicatorEnd]),
		Segment:           trimPad(raw[segmentStart:segmentEnd]),
		TradeNumber:       trimPad(raw[numberStart:numberEnd]),
		Timestamp:         d.clock.Time(jiffies),
		Symbol:            trimPad(raw[tradeSymbolStart:tradeSymbolEnd]),
		Instrument:        instrument,
		OptionType:        trimPad(raw[tradeOptionTypeStart:tradeOptionTypeEnd]),
		BuyOrderNumber:    trimPad(raw[tradeBuyNumberStart:tradeBuyNumberEnd]),
		BuyAlgoIndicator:  string(raw[tradeBuyAlgoStart:tradeBuyAlgoEnd]),
		BuyClientIDFlag:   string(raw[tradeBuyClientStart:tradeBuyClientEnd]),
		SellOrderNumber:   trimPad(raw[tradeSellNumberStart:tradeSellNumberEnd]),
		SellAlgoIndicator: string(raw[tradeSellAlgoStart:tradeSellAlgoEnd]),
		SellClientIDFlag:  string(raw[tradeSellClientStart:tradeSellClientEnd]),
	}

	if rec.ExpiryDate, err = parseExpiry(raw[tradeExpiryStart:tradeExpiryEnd]); err != nil {
		return domain.TradeRecord{}, false, decodeErr("expiry", tradeExpiryStart, tradeExpiryEnd, err)
	}
	if rec.StrikePrice, err = parsePrice(raw[tradeStrikeIntStart:tradeStrikeIntEnd], raw[tradeStrikeFracStart:tradeStrikeFracEnd]); err != nil {
		return domain.TradeRecord{}, false, decodeErr("strike price", tradeStrikeIntStart, tradeStrikeFracEnd, err)
	}
	if rec.TradePrice, err = parsePrice(raw[tradePriceIntStart:tradePriceIntEnd], raw[tradePriceFracStart:tradePriceFracEnd]); err != nil {
		return domain.TradeRecord{}, false, decodeErr("trade price", tradePriceIntStart, tradePriceFracEnd, err)
	}
	if rec.TradeQuantity, err = parseInt(raw[tradeQuantityStart:tradeQuantityEnd]); err != nil {
		return domain.TradeRecord{}, false, decodeErr("trade quantity", tradeQuantityStart, tradeQuantityEnd, err)
	}

	return rec, true, nil
}

// DecodeOrders reads newline-delimited order records from r and invokes fn
// for each retained record. Malformed records stop the scan unless the
// decoder was configured to skip them.
func (d *Decoder) DecodeOrders(ctx context.Context, r io.Reader, fn func(domain.OrderRecord) error) (Summary, error) {
	var sum Summary
	scanner := newRecordScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		sum.Read++
		rec, ok, err := d.DecodeOrder(scanner.Bytes())
		if err != nil {
			if d.skip {
				sum.Skipped++
				d.logger.WarnContext(ctx, "skipping malformed order record",
					slog.Int64("record", sum.Read),
					slog.String("error", err.Error()))
				continue
			}
			return sum, fmt.Errorf("record %d: %w", sum.Read, err)
		}
		if !ok {
			sum.Dropped++
			continue
		}
		sum.Decoded++
		if err := fn(rec); err != nil {
			return sum, err
		}
	}
	if err := scanner.Err(); err != nil {
		return sum, fmt.Errorf("failed to read feed: %w", err)
	}
	return sum, nil
}

// DecodeTrades is the trade-record counterpart of DecodeOrders.
func (d *Decoder) DecodeTrades(ctx context.Context, r io.Reader, fn func(domain.TradeRecord) error) (Summary, error) {
	var sum Summary
	scanner := newRecordScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		sum.Read++
		rec, ok, err := d.DecodeTrade(scanner.Bytes())
		if err != nil {
			if d.skip {
				sum.Skipped++
				d.logger.WarnContext(ctx, "skipping malformed trade record",
					slog.Int64("record", sum.Read),
					slog.String("error", err.Error()))
				continue
			}
			return sum, fmt.Errorf("record %d: %w", sum.Read, err)
		}
		if !ok {
			sum.Dropped++
			continue
		}
		sum.Decoded++
		if err := fn(rec); err != nil {
			return sum, err
		}
	}
	if err := scanner.Err(); err != nil {
		return sum, fmt.Errorf("failed to read feed: %w", err)
	}
	return sum, nil
}

// newRecordScanner builds a line scanner sized for feed records.
func newRecordScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return scanner
}

// trimPad strips the space padding of a fixed-width field.
func trimPad(b []byte) string {
	return strings.TrimSpace(string(b))
}

// parseInt parses a space-padded integer field.
func parseInt(b []byte) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(string(b)), 10, 64)
}

// parsePrice reconstructs a price from its split integer and fraction
// fields.
func parsePrice(whole, frac []byte) (decimal.Decimal, error) {
	w := strings.TrimSpace(string(whole))
	f := strings.TrimSpace(string(frac))
	if w == "" {
		w = "0"
	}
	if f == "" {
		return decimal.NewFromString(w)
	}
	return decimal.NewFromString(w + "." + f)
}

// parseExpiry parses the 9-byte ddMONyyyy expiry field. The feed writes
// the month fully uppercase; time.Parse wants it in title case.
func parseExpiry(b []byte) (time.Time, error) {
	s := strings.TrimSpace(string(b))
	if len(s) != 9 {
		return time.Time{}, fmt.Errorf("expiry %q: want 9 characters", s)
	}
	normalized := s[:2] + strings.ToUpper(s[2:3]) + strings.ToLower(s[3:5]) + s[5:]
	return time.Parse("02Jan2006", normalized)
}

// decodeErr builds the decode failure for one field, carrying its byte
// range.
func decodeErr(field string, start, end int, cause error) error {
	return errors.NewDecodeError(fmt.Sprintf("invalid %s field", field), cause).
		WithContext("field", field).
		WithContext("byte_range", fmt.Sprintf("[%d,%d)", start, end))
}
