// Package config loads the immutable benchmark configuration from flags,
// environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/weiihann/fafjson/clock"
	"github.com/weiihann/fafjson/strategy"
)

// EnvPrefix prefixes every environment override, e.g. FAFJSON_DURATION.
const EnvPrefix = "FAFJSON"

// Configuration keys. Each is also the long flag name.
const (
	KeyDebug      = "debug"
	KeyDuration   = "duration"
	KeyAbout      = "about"
	KeyClear      = "clear"
	KeyStrategies = "strategies"
	KeyClock      = "clock"
)

// DefaultDuration is the per-strategy budget in seconds.
const DefaultDuration uint64 = 3

// ErrInvalid marks configuration that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// BenchConfig is loaded once at startup and never mutated.
type BenchConfig struct {
	Debug      bool
	Duration   uint64
	About      bool
	Clear      bool
	Strategies []string
	Clock      string
}

// Default returns the configuration used when nothing is set.
func Default() BenchConfig {
	return BenchConfig{
		Duration: DefaultDuration,
		Clock:    clock.MonotonicName,
	}
}

// RegisterFlags defines the benchmark flags on flags.
func RegisterFlags(flags *pflag.FlagSet) {
	def := Default()

	flags.Bool(KeyDebug, def.Debug, "enable debug output")
	flags.Uint64P(KeyDuration, "d", def.Duration,
		"the duration of each strategy run in seconds")
	flags.BoolP(KeyAbout, "a", def.About, "show 'about' info")
	flags.Bool(KeyClear, def.Clear, "clear saved stats")
	flags.StringSliceP(KeyStrategies, "s", nil,
		"strategies to run, comma separated (default all)")
	flags.String(KeyClock, def.Clock,
		"clock source: "+strings.Join(clock.Names(), ", "))
}

// NewViper returns a viper instance reading flags, FAFJSON_* environment
// variables and, if configFile is set, that file.
func NewViper(flags *pflag.FlagSet, configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: read %s: %v",
				ErrInvalid, configFile, err)
		}
	}

	return v, nil
}

// LoadDotEnv loads environment variables from path. A missing file is
// not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load %s: %w", path, err)
}

// Load builds a validated BenchConfig from v.
func Load(v *viper.Viper) (BenchConfig, error) {
	var (
		cfg BenchConfig
		err error
	)

	if cfg.Debug, err = cast.ToBoolE(v.Get(KeyDebug)); err != nil {
		return cfg, invalid(KeyDebug, err)
	}

	if cfg.Duration, err = loadDuration(v); err != nil {
		return cfg, invalid(KeyDuration, err)
	}

	if cfg.About, err = cast.ToBoolE(v.Get(KeyAbout)); err != nil {
		return cfg, invalid(KeyAbout, err)
	}

	if cfg.Clear, err = cast.ToBoolE(v.Get(KeyClear)); err != nil {
		return cfg, invalid(KeyClear, err)
	}

	cfg.Strategies = stringList(v.Get(KeyStrategies))
	cfg.Clock = v.GetString(KeyClock)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks that the clock and strategy names are known.
func (c BenchConfig) Validate() error {
	if c.Clock != "" && !slices.Contains(clock.Names(), c.Clock) {
		return fmt.Errorf("%w: unknown clock %q (want one of %s)",
			ErrInvalid, c.Clock, strings.Join(clock.Names(), ", "))
	}

	if _, err := strategy.Select(c.Strategies); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

func loadDuration(v *viper.Viper) (uint64, error) {
	raw := v.Get(KeyDuration)
	if raw == nil {
		return DefaultDuration, nil
	}

	return cast.ToUint64E(raw)
}

// stringList accepts either a parsed flag slice or a comma separated
// string from the environment or a config file.
func stringList(raw any) []string {
	var parts []string

	switch val := raw.(type) {
	case nil:
		return nil
	case string:
		parts = strings.Split(val, ",")
	default:
		parts = cast.ToStringSlice(val)
	}

	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}

func invalid(key string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
}
