package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h, m, s int) time.Time {
	return time.Date(2012, time.September, 14, h, m, s, 0, time.UTC)
}

func TestForwardFill(t *testing.T) {
	obs := []Observation[float64]{
		{Time: at(9, 16, 0), Value: 100.00},
		{Time: at(9, 16, 30), Value: 100.50},
		{Time: at(9, 20, 0), Value: 99.00},
	}

	samples := ForwardFill(obs, at(9, 15, 0), at(9, 21, 0), 3*time.Minute)
	require.Len(t, samples, 3)

	// 09:15 predates every trade and carries the first price; 09:18
	// carries the latest of the two 09:16 trades.
	assert.True(t, samples[0].Time.Equal(at(9, 15, 0)))
	assert.Equal(t, 100.00, samples[0].Value)
	assert.True(t, samples[1].Time.Equal(at(9, 18, 0)))
	assert.Equal(t, 100.50, samples[1].Value)
	assert.True(t, samples[2].Time.Equal(at(9, 21, 0)))
	assert.Equal(t, 99.00, samples[2].Value)
}

func TestForwardFillSingleObservation(t *testing.T) {
	obs := []Observation[float64]{{Time: at(11, 42, 17), Value: 512.25}}

	samples := ForwardFill(obs, at(9, 15, 0), at(15, 30, 0), 3*time.Minute)
	require.Len(t, samples, 126)
	for _, s := range samples {
		assert.Equal(t, 512.25, s.Value)
	}
}

func TestForwardFillObservationOnGridPoint(t *testing.T) {
	obs := []Observation[float64]{
		{Time: at(9, 15, 0), Value: 1},
		{Time: at(9, 18, 0), Value: 2},
	}

	samples := ForwardFill(obs, at(9, 15, 0), at(9, 18, 0), 3*time.Minute)
	require.Len(t, samples, 2)
	assert.Equal(t, 1.0, samples[0].Value)
	// An observation exactly on a grid point belongs to that grid point.
	assert.Equal(t, 2.0, samples[1].Value)
}

func TestForwardFillIgnoresObservationsAfterClose(t *testing.T) {
	obs := []Observation[float64]{
		{Time: at(9, 16, 0), Value: 10},
		{Time: at(15, 31, 0), Value: 20},
	}

	samples := ForwardFill(obs, at(15, 27, 0), at(15, 30, 0), 3*time.Minute)
	require.Len(t, samples, 2)
	assert.Equal(t, 10.0, samples[0].Value)
	assert.Equal(t, 10.0, samples[1].Value)
}

func TestForwardFillSinglePointGrid(t *testing.T) {
	obs := []Observation[float64]{{Time: at(9, 14, 0), Value: 7}}

	samples := ForwardFill(obs, at(9, 15, 0), at(9, 15, 0), 3*time.Minute)
	require.Len(t, samples, 1)
	assert.Equal(t, 7.0, samples[0].Value)
}

func TestForwardFillEmpty(t *testing.T) {
	assert.Nil(t, ForwardFill[float64](nil, at(9, 15, 0), at(15, 30, 0), 3*time.Minute))
}

func TestForwardFillNonPositiveInterval(t *testing.T) {
	obs := []Observation[float64]{{Time: at(9, 16, 0), Value: 1}}
	assert.Nil(t, ForwardFill(obs, at(9, 15, 0), at(15, 30, 0), 0))
	assert.Nil(t, ForwardFill(obs, at(9, 15, 0), at(15, 30, 0), -time.Minute))
}

func TestForwardFillGenericValue(t *testing.T) {
	obs := []Observation[string]{
		{Time: at(9, 16, 0), Value: "open"},
		{Time: at(9, 19, 0), Value: "mid"},
	}

	samples := ForwardFill(obs, at(9, 15, 0), at(9, 21, 0), 3*time.Minute)
	require.Len(t, samples, 3)
	assert.Equal(t, []string{"open", "open", "mid"}, []string{samples[0].Value, samples[1].Value, samples[2].Value})
}
