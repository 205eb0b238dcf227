package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"faocli/internal/errors"
)

// Column positions in a partitioned trade CSV. Rows are headerless, one
// column per decoded field with the timestamp split into date and time.
const (
	colTradeDate = 3
	colTradeTime = 4
	colSymbol    = 5
	colPrice     = 10
	colQuantity  = 11

	tradeColumns = 18
)

const timestampLayout = "01/02/2006 15:04:05.000000"

// LoadTradeTable reads a partitioned trade CSV into a columnar table.
func LoadTradeTable(path string) (*TradeTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("failed to open trade file %s", path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = tradeColumns

	table := &TradeTable{}
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("malformed row %d in %s", row, path), err)
		}

		ts, err := time.Parse(timestampLayout, record[colTradeDate]+" "+record[colTradeTime])
		if err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("invalid timestamp at row %d in %s", row, path), err)
		}
		price, err := strconv.ParseFloat(record[colPrice], 64)
		if err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("invalid trade price at row %d in %s", row, path), err)
		}
		quantity, err := strconv.ParseInt(record[colQuantity], 10, 64)
		if err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("invalid trade quantity at row %d in %s", row, path), err)
		}

		if table.Symbol == "" {
			table.Symbol = record[colSymbol]
		}
		table.appendRow(record[colTradeDate], ts, price, quantity)
	}

	return table, nil
}
