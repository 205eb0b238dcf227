package exporter

import (
	"faocli/pkg/contracts/domain"
)

// OrderRow converts a decoded order record to a CSV row. Columns follow
// the decoded field order with the timestamp split into a date column and
// a time column.
func OrderRow(rec domain.OrderRecord) []string {
	return []string{
		rec.RecordIndicator,
		rec.Segment,
		rec.OrderNumber,
		formatDate(rec.Timestamp),
		formatTimeOfDay(rec.Timestamp),
		rec.BuySell,
		rec.ActivityType,
		rec.Symbol,
		rec.Instrument,
		formatDate(rec.ExpiryDate),
		formatInt(rec.StrikePrice),
		rec.OptionType,
		formatInt(rec.VolumeDisclosed),
		formatInt(rec.VolumeOriginal),
		formatPrice(rec.LimitPrice),
		formatPrice(rec.TriggerPrice),
		rec.MarketFlag,
		rec.OnStopFlag,
		rec.IOFlag,
		rec.SpreadCombType,
		rec.AlgoIndicator,
		rec.ClientIDFlag,
	}
}

// TradeRow converts a decoded trade record to a CSV row.
func TradeRow(rec domain.TradeRecord) []string {
	return []string{
		rec.RecordIndicator,
		rec.Segment,
		rec.TradeNumber,
		formatDate(rec.Timestamp),
		formatTimeOfDay(rec.Timestamp),
		rec.Symbol,
		rec.Instrument,
		formatDate(rec.ExpiryDate),
		formatPrice(rec.StrikePrice),
		rec.OptionType,
		formatPrice(rec.TradePrice),
		formatInt(rec.TradeQuantity),
		rec.BuyOrderNumber,
		rec.BuyAlgoIndicator,
		rec.BuyClientIDFlag,
		rec.SellOrderNumber,
		rec.SellAlgoIndicator,
		rec.SellClientIDFlag,
	}
}
