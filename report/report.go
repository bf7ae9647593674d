// Package report formats benchmark results into throughput lines.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/dustin/go-humanize"
)

const (
	labelWidth = 26
	rateWidth  = 13
	unit       = "bytes/sec"
)

// Line writes a single throughput line for label.
func Line(w io.Writer, label string, totalBytes, durationSeconds uint64) error {
	_, err := fmt.Fprintf(w, "%-*s %*s %s\n",
		labelWidth, truncate(label, labelWidth),
		rateWidth, FormatRate(totalBytes, durationSeconds),
		unit,
	)

	return err
}

// FormatRate returns totalBytes/durationSeconds rounded half to even and
// grouped with thousands separators. A zero duration reports the raw
// total.
func FormatRate(totalBytes, durationSeconds uint64) string {
	rate := float64(totalBytes)
	if durationSeconds > 0 {
		rate /= float64(durationSeconds)
	}

	return humanize.Commaf(math.RoundToEven(rate))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n])
}
