//go:build !unix

package clock

import "time"

// Realtime samples the wall clock on platforms without clock_gettime.
type Realtime struct {
	last Sample
}

// NewRealtime returns a Realtime clock.
func NewRealtime() *Realtime {
	return &Realtime{}
}

// NowNanos returns nanoseconds since the Unix epoch.
func (r *Realtime) NowNanos() uint64 {
	now := time.Now()
	r.last = Sample{Sec: now.Unix(), Nsec: int64(now.Nanosecond())}

	return r.last.Nanos()
}

// Last returns the most recent sample.
func (r *Realtime) Last() Sample {
	return r.last
}
