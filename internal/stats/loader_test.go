package stats

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTradeFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "NIFTY-trades.csv")
	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func tradeLine(date, clock, symbol, price, quantity string) string {
	return strings.Join([]string{
		"20", "FO", "2200000000000456", date, clock, symbol, "FUTIDX",
		"09/27/2012", "0.00", "XX", price, quantity,
		"1100000000000123", "1", "2", "1100000000000088", "0", "1",
	}, ",")
}

func TestLoadTradeTable(t *testing.T) {
	path := writeTradeFile(t,
		tradeLine("09/14/2012", "09:15:30.500000", "NIFTY", "5305.45", "75"),
		tradeLine("09/14/2012", "11:30:00.000000", "NIFTY", "5310.00", "150"),
		tradeLine("09/17/2012", "09:16:00.000000", "NIFTY", "5290.10", "25"),
	)

	table, err := LoadTradeTable(path)
	require.NoError(t, err)

	assert.Equal(t, "NIFTY", table.Symbol)
	require.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"09/14/2012", "09/14/2012", "09/17/2012"}, table.Dates)
	assert.True(t, table.Times[0].Equal(time.Date(2012, time.September, 14, 9, 15, 30, 500000000, time.UTC)))
	assert.True(t, table.Times[2].Equal(time.Date(2012, time.September, 17, 9, 16, 0, 0, time.UTC)))
	assert.Equal(t, []float64{5305.45, 5310.00, 5290.10}, table.Prices)
	assert.Equal(t, []int64{75, 150, 25}, table.Quantities)
}

func TestLoadTradeTableEmptyFile(t *testing.T) {
	path := writeTradeFile(t)

	table, err := LoadTradeTable(path)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Empty(t, table.Symbol)
}

func TestLoadTradeTableMissingFile(t *testing.T) {
	_, err := LoadTradeTable(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open trade file")
}

func TestLoadTradeTableMalformed(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr string
	}{
		{
			name:    "wrong column count",
			line:    "20,FO,NIFTY",
			wantErr: "malformed row 1",
		},
		{
			name:    "bad timestamp",
			line:    tradeLine("2012-09-14", "09:15:30.500000", "NIFTY", "5305.45", "75"),
			wantErr: "invalid timestamp at row 1",
		},
		{
			name:    "bad price",
			line:    tradeLine("09/14/2012", "09:15:30.500000", "NIFTY", "n/a", "75"),
			wantErr: "invalid trade price at row 1",
		},
		{
			name:    "bad quantity",
			line:    tradeLine("09/14/2012", "09:15:30.500000", "NIFTY", "5305.45", "7.5"),
			wantErr: "invalid trade quantity at row 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTradeFile(t, tt.line)

			_, err := LoadTradeTable(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
