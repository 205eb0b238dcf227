package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind identifies which of the two feed record layouts a file carries.
type RecordKind string

const (
	KindOrders RecordKind = "orders"
	KindTrades RecordKind = "trades"
)

// Instrument codes retained by the decoder. Records carrying any other
// instrument are dropped before construction completes.
const (
	InstrumentFutIdx = "FUTIDX"
	InstrumentFutStk = "FUTSTK"
)

// IsRetainedInstrument reports whether the decoder keeps records for the
// given instrument code.
func IsRetainedInstrument(instrument string) bool {
	return instrument == InstrumentFutIdx || instrument == InstrumentFutStk
}

// OrderRecord is one decoded order-feed record. Single-byte feed flags are
// kept as-is; prices are exact decimals reconstructed from the split
// integer/fraction fields of the raw record.
type OrderRecord struct {
	RecordIndicator string          `json:"record_indicator"`
	Segment         string          `json:"segment"`
	OrderNumber     string          `json:"order_number"`
	Timestamp       time.Time       `json:"timestamp"`
	BuySell         string          `json:"buy_sell"`
	ActivityType    string          `json:"activity_type"`
	Symbol          string          `json:"symbol"`
	Instrument      string          `json:"instrument"`
	ExpiryDate      time.Time       `json:"expiry_date"`
	StrikePrice     int64           `json:"strike_price"`
	OptionType      string          `json:"option_type"`
	VolumeDisclosed int64           `json:"volume_disclosed"`
	VolumeOriginal  int64           `json:"volume_original"`
	LimitPrice      decimal.Decimal `json:"limit_price"`
	TriggerPrice    decimal.Decimal `json:"trigger_price"`
	MarketFlag      string          `json:"market_flag"`
	OnStopFlag      string          `json:"on_stop_flag"`
	IOFlag          string          `json:"io_flag"`
	SpreadCombType  string          `json:"spread_comb_type"`
	AlgoIndicator   string          `json:"algo_indicator"`
	ClientIDFlag    string          `json:"client_id_flag"`
}

// TradeRecord is one decoded trade-feed record.
type TradeRecord struct {
	RecordIndicator   string          `json:"record_indicator"`
	Segment           string          `json:"segment"`
	TradeNumber       string          `json:"trade_number"`
	Timestamp         time.Time       `json:"timestamp"`
	Symbol            string          `json:"symbol"`
	Instrument        string          `json:"instrument"`
	ExpiryDate        time.Time       `json:"expiry_date"`
	StrikePrice       decimal.Decimal `json:"strike_price"`
	OptionType        string          `json:"option_type"`
	TradePrice        decimal.Decimal `json:"trade_price"`
	TradeQuantity     int64           `json:"trade_quantity"`
	BuyOrderNumber    string          `json:"buy_order_number"`
	BuyAlgoIndicator  string          `json:"buy_algo_indicator"`
	BuyClientIDFlag   string          `json:"buy_client_id_flag"`
	SellOrderNumber   string          `json:"sell_order_number"`
	SellAlgoIndicator string          `json:"sell_algo_indicator"`
	SellClientIDFlag  string          `json:"sell_client_id_flag"`
}
