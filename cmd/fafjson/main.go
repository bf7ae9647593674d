// Package main provides the CLI entry point for fafjson, a JSON
// serialization throughput benchmark.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/weiihann/fafjson/clock"
	"github.com/weiihann/fafjson/config"
	"github.com/weiihann/fafjson/harness"
	"github.com/weiihann/fafjson/report"
	"github.com/weiihann/fafjson/strategy"
)

const (
	projectName = "fafjson"
	version     = "0.1.0"
	repoURL     = "https://github.com/weiihann/fafjson"
)

// deps are the collaborators the commands resolve at run time.
type deps struct {
	newClock   func(name string) (clock.Clock, error)
	strategies func(names []string) ([]strategy.Strategy, error)
}

func defaultDeps() deps {
	return deps{
		newClock:   clock.New,
		strategies: strategy.Select,
	}
}

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	root := newRootCmd(logger, level, defaultDeps())
	if err := root.Execute(); err != nil {
		logger.Error("fafjson failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar, d deps) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   projectName,
		Short: "JSON serialization throughput benchmark",
		Long: `fafjson serializes the same fixed record with several JSON libraries,
each for a fixed wall-clock duration, verifies every output byte for byte,
and reports the throughput of each in bytes per second.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, configFile)
			if err != nil {
				return err
			}

			if cfg.Debug {
				level.Set(slog.LevelDebug)
			}

			return runBenchmark(cmd.Context(), logger, cmd.OutOrStdout(), cfg, d)
		},
	}

	config.RegisterFlags(root.Flags())
	root.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (yaml, toml or json)")

	root.AddCommand(newListCmd(d))

	return root
}

func newListCmd(d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered serialization strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			strategies, err := d.strategies(nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range strategies {
				fmt.Fprintf(out, "%-26s %s\n", s.Name, s.Buffer)
			}

			return nil
		},
	}
}

func loadConfig(cmd *cobra.Command, configFile string) (config.BenchConfig, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return config.BenchConfig{}, err
	}

	v, err := config.NewViper(cmd.Flags(), configFile)
	if err != nil {
		return config.BenchConfig{}, err
	}

	return config.Load(v)
}

func runBenchmark(
	ctx context.Context,
	logger *slog.Logger,
	out io.Writer,
	cfg config.BenchConfig,
	d deps,
) error {
	// About wins over clear.
	if cfg.About {
		_, err := fmt.Fprintln(out, aboutLine())
		return err
	}

	if cfg.Clear {
		// Nothing is persisted between runs, so there is nothing to remove.
		_, err := fmt.Fprintln(out, "Stats Cleared.")
		return err
	}

	strategies, err := d.strategies(cfg.Strategies)
	if err != nil {
		return fmt.Errorf("select strategies: %w", err)
	}

	clk, err := d.newClock(cfg.Clock)
	if err != nil {
		return fmt.Errorf("create clock: %w", err)
	}

	logger.InfoContext(ctx, "starting benchmark",
		slog.Uint64("duration_seconds", cfg.Duration),
		slog.String("clock", cfg.Clock),
		slog.Int("strategies", len(strategies)),
	)

	runner := harness.NewRunner(clk, harness.RunConfig{
		Duration: cfg.Duration,
	}, logger)

	_, err = runner.RunAll(ctx, strategies, func(r harness.Result) error {
		return report.Line(out, r.Strategy, r.Bytes, cfg.Duration)
	})
	if err != nil {
		return fmt.Errorf("run benchmark: %w", err)
	}

	logger.InfoContext(ctx, "benchmark complete")

	return nil
}

func aboutLine() string {
	return fmt.Sprintf("%s v%s | repo: %s", projectName, version, repoURL)
}
