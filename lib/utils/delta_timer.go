package utils

import "time"

// DeltaTimer measures the time between successive frames.
type DeltaTimer struct {
	last time.Time
}

// Next returns the time elapsed since the previous call, or zero on the
// first call.
func (d *DeltaTimer) Next() time.Duration {
	// take the timestamp once so that error does not accumulate between frames
	now := time.Now()
	defer d.Set(now)

	if d.last.IsZero() {
		return 0
	}
	return now.Sub(d.last)
}

func (d *DeltaTimer) Set(t time.Time) {
	d.last = t
}
