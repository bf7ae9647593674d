package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/weiihann/fafjson/clock"
	"github.com/weiihann/fafjson/payload"
	"github.com/weiihann/fafjson/strategy"
)

// ErrMismatch is returned when a strategy's output differs from the
// expected bytes.
var ErrMismatch = errors.New("serialized output mismatch")

// RunConfig holds parameters shared by every strategy run.
type RunConfig struct {
	// Duration is the time budget per strategy in whole seconds.
	Duration uint64
}

// Budget returns the per-strategy budget in nanoseconds.
func (c RunConfig) Budget() uint64 {
	return c.Duration * uint64(time.Second)
}

// Runner executes strategies against a clock.
type Runner struct {
	Clock  clock.Clock
	Config RunConfig
	Logger *slog.Logger
}

// NewRunner creates a Runner.
func NewRunner(
	clk clock.Clock,
	cfg RunConfig,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		Clock:  clk,
		Config: cfg,
		Logger: logger,
	}
}

// Run measures one strategy until the budget is spent. The deadline is
// checked before each iteration, so the final iteration may overshoot it.
func (r *Runner) Run(ctx context.Context, s strategy.Strategy) (*Result, error) {
	logger := r.Logger.With(slog.String("strategy", s.Name))
	logger.DebugContext(ctx, "strategy starting",
		slog.String("buffer", s.Buffer.String()),
	)

	ser := s.New()
	want := s.ExpectedOutput()
	budget := r.Config.Budget()

	var (
		byteCount  uint64
		iterations uint64
		elapsed    uint64
	)

	start := r.Clock.NowNanos()

	for {
		now := r.Clock.NowNanos()

		elapsed = 0
		if now > start {
			elapsed = now - start
		}

		if elapsed > budget {
			break
		}

		rec := payload.New()

		out, err := ser.Serialize(rec)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: serialize iteration %d: %w", s.Name, iterations, err,
			)
		}

		if !bytes.Equal(out, want) {
			return nil, fmt.Errorf(
				"%s: iteration %d: %w: got %q, want %q",
				s.Name, iterations, ErrMismatch, out, want,
			)
		}

		byteCount += uint64(len(out))
		iterations++
	}

	result := &Result{
		Strategy:   s.Name,
		Bytes:      byteCount,
		Iterations: iterations,
		Elapsed:    time.Duration(elapsed),
	}

	logger.DebugContext(ctx, "strategy finished",
		slog.Uint64("iterations", result.Iterations),
		slog.Uint64("bytes", result.Bytes),
		slog.Duration("elapsed", result.Elapsed),
	)

	return result, nil
}

// RunAll runs each strategy in order and hands every result to emit as
// soon as it is available. It stops at the first failure.
func (r *Runner) RunAll(
	ctx context.Context,
	strategies []strategy.Strategy,
	emit func(Result) error,
) ([]Result, error) {
	results := make([]Result, 0, len(strategies))

	for _, s := range strategies {
		result, err := r.Run(ctx, s)
		if err != nil {
			return results, err
		}

		if err := emit(*result); err != nil {
			return results, fmt.Errorf("emit %s: %w", s.Name, err)
		}

		results = append(results, *result)
	}

	return results, nil
}
