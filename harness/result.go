// Package harness runs the timed serialization loop for each strategy.
package harness

import "time"

// Result holds the accumulated output of one strategy run.
type Result struct {
	Strategy   string
	Bytes      uint64
	Iterations uint64
	Elapsed    time.Duration
}
