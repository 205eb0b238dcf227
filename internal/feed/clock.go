package feed

import (
	"math"
	"time"
)

// feedEpochOffset is the Unix timestamp of 1980-01-01T00:00:00Z, the epoch
// of the feed timebase.
const feedEpochOffset = 315532800

// DefaultJiffiesPerSecond is the sub-second unit of current feeds (2^16).
// Older feeds used 65535.
const DefaultJiffiesPerSecond = 65536.0

// jiffyClock converts feed timestamps, expressed as jiffies since the 1980
// epoch, to UTC wall-clock times.
type jiffyClock struct {
	denominator float64
}

// Time converts a jiffy count to a UTC timestamp with microsecond
// resolution. The microsecond is rounded half to even; a rounded-up full
// second carries into the seconds part.
func (c jiffyClock) Time(jiffies int64) time.Time {
	seconds := float64(jiffies)/c.denominator + feedEpochOffset
	whole := math.Floor(seconds)
	us := int64(math.RoundToEven((seconds - whole) * 1e6))
	sec := int64(whole)
	if us >= 1000000 {
		sec++
		us -= 1000000
	}
	return time.Unix(sec, us*1000).UTC()
}
