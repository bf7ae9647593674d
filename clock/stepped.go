package clock

// Stepped is a deterministic Clock for tests. It returns the programmed
// timestamps in order, then keeps advancing by Step from the last one.
type Stepped struct {
	Times []uint64
	Step  uint64

	next  int
	now   uint64
	calls int
}

// NewStepped returns a clock that starts at zero and advances by step on
// every read.
func NewStepped(step uint64) *Stepped {
	return &Stepped{Step: step}
}

// NewSequence returns a clock that replays times, then advances by step.
func NewSequence(step uint64, times ...uint64) *Stepped {
	return &Stepped{Times: times, Step: step}
}

// NowNanos returns the next timestamp.
func (s *Stepped) NowNanos() uint64 {
	s.calls++

	if s.next < len(s.Times) {
		s.now = s.Times[s.next]
		s.next++

		return s.now
	}

	if s.calls > 1 {
		s.now += s.Step
	}

	return s.now
}

// Calls reports how many times the clock has been read.
func (s *Stepped) Calls() int {
	return s.calls
}
