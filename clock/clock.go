// Package clock provides the nanosecond timestamp sources used to bound
// benchmark loops.
package clock

import (
	"fmt"
	"time"
)

// Names of the selectable clocks.
const (
	MonotonicName = "monotonic"
	RealtimeName  = "realtime"
)

// Clock reports a nanosecond timestamp. Successive calls are
// non-decreasing in practice; callers must tolerate the occasional step
// back of a realtime clock.
type Clock interface {
	NowNanos() uint64
}

// Sample is a timestamp split into seconds and nanoseconds.
type Sample struct {
	Sec  int64
	Nsec int64
}

// Nanos returns the sample as nanoseconds since its epoch.
func (s Sample) Nanos() uint64 {
	return uint64(s.Sec)*uint64(time.Second) + uint64(s.Nsec)
}

// Monotonic reads the runtime's monotonic clock, which the Go runtime
// samples through the vDSO without entering the kernel.
type Monotonic struct {
	base time.Time
}

// NewMonotonic returns a Monotonic clock whose epoch is now.
func NewMonotonic() *Monotonic {
	return &Monotonic{base: time.Now()}
}

// NowNanos returns nanoseconds elapsed since the clock was created.
func (m *Monotonic) NowNanos() uint64 {
	return uint64(time.Since(m.base))
}

// New returns the clock registered under name.
func New(name string) (Clock, error) {
	switch name {
	case "", MonotonicName:
		return NewMonotonic(), nil
	case RealtimeName:
		return NewRealtime(), nil
	default:
		return nil, fmt.Errorf("unknown clock %q", name)
	}
}

// Names returns the selectable clock names.
func Names() []string {
	return []string{MonotonicName, RealtimeName}
}
