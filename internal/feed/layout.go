package feed

// Byte offsets (half-open ranges) of the fixed-width feed layouts. Order
// and trade records share a common prefix; the suffixes differ.

// Common prefix
const (
	indicatorStart = 0
	indicatorEnd   = 2
	segmentStart   = 2
	segmentEnd     = 6
	numberStart    = 6
	numberEnd      = 22
	jiffiesStart   = 22
	jiffiesEnd     = 36
)

// Order record suffix
const (
	orderBuySellStart     = 36
	orderBuySellEnd       = 37
	orderActivityStart    = 37
	orderActivityEnd      = 38
	orderSymbolStart      = 38
	orderSymbolEnd        = 48
	orderInstrumentStart  = 48
	orderInstrumentEnd    = 54
	orderExpiryStart      = 54
	orderExpiryEnd        = 63
	orderStrikeStart      = 63
	orderStrikeEnd        = 71
	orderOptionTypeStart  = 71
	orderOptionTypeEnd    = 73
	orderVolumeDiscStart  = 73
	orderVolumeDiscEnd    = 81
	orderVolumeOrigStart  = 81
	orderVolumeOrigEnd    = 89
	orderLimitIntStart    = 89
	orderLimitIntEnd      = 95
	orderLimitFracStart   = 95
	orderLimitFracEnd     = 97
	orderTriggerIntStart  = 97
	orderTriggerIntEnd    = 105
	// The trigger fraction range overlaps the tail of its integer range in
	// the published layout. Both reads are kept exactly as published.
	orderTriggerFracStart = 103
	orderTriggerFracEnd   = 105
	orderMarketFlagStart  = 105
	orderMarketFlagEnd    = 106
	orderOnStopFlagStart  = 106
	orderOnStopFlagEnd    = 107
	orderIOFlagStart      = 107
	orderIOFlagEnd        = 108
	orderSpreadFlagStart  = 108
	orderSpreadFlagEnd    = 109
	orderAlgoFlagStart    = 109
	orderAlgoFlagEnd      = 110
	orderClientFlagStart  = 110
	orderClientFlagEnd    = 111
)

// OrderRecordLength is the minimum byte length of an order record.
const OrderRecordLength = 111

// Trade record suffix
const (
	tradeSymbolStart     = 36
	tradeSymbolEnd       = 46
	tradeInstrumentStart = 46
	tradeInstrumentEnd   = 52
	tradeExpiryStart     = 52
	tradeExpiryEnd       = 61
	tradeStrikeIntStart  = 61
	tradeStrikeIntEnd    = 67
	tradeStrikeFracStart = 67
	tradeStrikeFracEnd   = 69
	tradeOptionTypeStart = 69
	tradeOptionTypeEnd   = 71
	tradePriceIntStart   = 71
	tradePriceIntEnd     = 77
	tradePriceFracStart  = 77
	tradePriceFracEnd    = 79
	tradeQuantityStart   = 79
	tradeQuantityEnd     = 87
	tradeBuyNumberStart  = 87
	tradeBuyNumberEnd    = 103
	tradeBuyAlgoStart    = 103
	tradeBuyAlgoEnd      = 104
	tradeBuyClientStart  = 104
	tradeBuyClientEnd    = 105
	tradeSellNumberStart = 105
	tradeSellNumberEnd   = 121
	tradeSellAlgoStart   = 121
	tradeSellAlgoEnd     = 122
	tradeSellClientStart = 122
	tradeSellClientEnd   = 123
)

// TradeRecordLength is the minimum byte length of a trade record.
const TradeRecordLength = 123
