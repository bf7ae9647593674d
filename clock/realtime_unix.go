//go:build unix

package clock

import (
	"golang.org/x/sys/unix"
)

// Realtime samples CLOCK_REALTIME into a reused timespec buffer.
type Realtime struct {
	ts   unix.Timespec
	last Sample
}

// NewRealtime returns a Realtime clock.
func NewRealtime() *Realtime {
	return &Realtime{}
}

// NowNanos returns nanoseconds since the Unix epoch. If the clock cannot
// be read the previous sample is returned.
func (r *Realtime) NowNanos() uint64 {
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &r.ts); err == nil {
		r.last = Sample{Sec: int64(r.ts.Sec), Nsec: int64(r.ts.Nsec)}
	}

	return r.last.Nanos()
}

// Last returns the most recent sample.
func (r *Realtime) Last() Sample {
	return r.last
}
