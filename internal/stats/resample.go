package stats

import (
	"time"
)

// Observation pairs a timestamp with a value.
type Observation[V any] struct {
	Time  time.Time
	Value V
}

// ForwardFill samples a time-ordered series onto a fixed grid running
// from open to close inclusive, spaced by interval. Each grid point
// carries the value of the most recent observation at or before it. Grid
// points before the first observation carry the first observation's
// value, so the pre-open stretch of every day is seeded rather than left
// undefined.
//
// A single forward pass advances two cursors, one over the grid and one
// over the series. An empty series produces no samples.
func ForwardFill[V any](obs []Observation[V], open, close time.Time, interval time.Duration) []Observation[V] {
	if len(obs) == 0 || interval <= 0 {
		return nil
	}

	var samples []Observation[V]
	carried := obs[0].Value
	i := 0
	for t := open; !t.After(close); t = t.Add(interval) {
		for i < len(obs) && !obs[i].Time.After(t) {
			carried = obs[i].Value
			i++
		}
		samples = append(samples, Observation[V]{Time: t, Value: carried})
	}
	return samples
}
