package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantile(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		q      float64
		want   float64
	}{
		{
			name:   "lower quartile interpolates",
			values: []float64{1, 2, 3, 4},
			q:      0.25,
			want:   1.75,
		},
		{
			name:   "median of even count",
			values: []float64{1, 2, 3, 4},
			q:      0.50,
			want:   2.5,
		},
		{
			name:   "upper quartile interpolates",
			values: []float64{1, 2, 3, 4},
			q:      0.75,
			want:   3.25,
		},
		{
			name:   "exact rank needs no interpolation",
			values: []float64{1, 2, 3},
			q:      0.50,
			want:   2,
		},
		{
			name:   "input order does not matter",
			values: []float64{3, 1, 2},
			q:      0.50,
			want:   2,
		},
		{
			name:   "zero quantile is the minimum",
			values: []float64{4, 1, 3},
			q:      0,
			want:   1,
		},
		{
			name:   "full quantile is the maximum",
			values: []float64{4, 1, 3},
			q:      1,
			want:   4,
		},
		{
			name:   "single value",
			values: []float64{7.5},
			q:      0.25,
			want:   7.5,
		},
		{
			name:   "empty input",
			values: nil,
			q:      0.50,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, quantile(tt.values, tt.q), 1e-12)
		})
	}
}

func TestQuantileDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	quantile(values, 0.5)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestMedian(t *testing.T) {
	assert.InDelta(t, 4.0, median([]float64{5, 1, 9, 3}), 1e-12)
	assert.InDelta(t, 2.0, median([]float64{1, 2, 3}), 1e-12)
	assert.Zero(t, median(nil))
}

func TestMean(t *testing.T) {
	assert.InDelta(t, 2.5, mean([]float64{1, 2, 3, 4}), 1e-12)
	assert.Zero(t, mean(nil))
}

func TestSampleStd(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{
			name:   "sample variance divides by n-1",
			values: []float64{1, 2, 3},
			want:   1,
		},
		{
			name:   "four values",
			values: []float64{1, 2, 3, 4},
			want:   1.2909944487358056,
		},
		{
			name:   "constant series has no spread",
			values: []float64{2, 2, 2},
			want:   0,
		},
		{
			name:   "single value reports zero",
			values: []float64{5},
			want:   0,
		},
		{
			name:   "empty input reports zero",
			values: nil,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, sampleStd(tt.values), 1e-9)
		})
	}
}
