package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJiffyClockTime(t *testing.T) {
	clock := jiffyClock{denominator: DefaultJiffiesPerSecond}

	tests := []struct {
		name    string
		jiffies int64
		want    time.Time
	}{
		{
			name:    "feed epoch",
			jiffies: 0,
			want:    time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "one second",
			jiffies: 65536,
			want:    time.Date(1980, time.January, 1, 0, 0, 1, 0, time.UTC),
		},
		{
			name:    "half second",
			jiffies: 32768,
			want:    time.Date(1980, time.January, 1, 0, 0, 0, 500000000, time.UTC),
		},
		{
			name:    "half microsecond rounds down to even",
			jiffies: 512,
			want:    time.Date(1980, time.January, 1, 0, 0, 0, 7812000, time.UTC),
		},
		{
			name:    "half microsecond rounds up to even",
			jiffies: 1536,
			want:    time.Date(1980, time.January, 1, 0, 0, 0, 23438000, time.UTC),
		},
		{
			name:    "trading day timestamp",
			jiffies: 67638482042880,
			want:    time.Date(2012, time.September, 14, 9, 15, 30, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clock.Time(tt.jiffies)
			assert.True(t, got.Equal(tt.want), "Time(%d) = %s, want %s", tt.jiffies, got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestJiffyClockLegacyDenominator(t *testing.T) {
	clock := jiffyClock{denominator: 65535.0}

	tests := []struct {
		name    string
		jiffies int64
		want    time.Time
	}{
		{
			name:    "one second",
			jiffies: 65535,
			want:    time.Date(1980, time.January, 1, 0, 0, 1, 0, time.UTC),
		},
		{
			name:    "trading day timestamp",
			jiffies: 67637449961550,
			want:    time.Date(2012, time.September, 14, 9, 15, 30, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clock.Time(tt.jiffies)
			assert.True(t, got.Equal(tt.want), "Time(%d) = %s, want %s", tt.jiffies, got, tt.want)
		})
	}
}
