// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Static configuration: hioload.yaml plus HIOLOAD_* environment variables.

package control

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/internal/logutil"
	"github.com/momentics/hioload-mem/pool"
)

// Config holds static settings read at startup.
type Config struct {
	Pool    PoolConfig    `mapstructure:"pool"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// PoolConfig configures shared array pools.
type PoolConfig struct {
	MinimumLength      int    `mapstructure:"minimum_length"`
	MaximumLength      int    `mapstructure:"maximum_length"`
	MaxArraysPerBucket int    `mapstructure:"max_arrays_per_bucket"`
	Scrub              string `mapstructure:"scrub"` // auto, always, never
	CheckReturns       bool   `mapstructure:"check_returns"`
}

// LogConfig configures the global zap logger.
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"` // json, console
}

// MetricsConfig toggles Prometheus export of pool counters.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads configuration from hioload.yaml (optional) in paths, or in the
// working directory and /etc/hioload/ when none are given, then applies
// HIOLOAD_* environment overrides such as HIOLOAD_POOL_MAXIMUM_LENGTH.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("hioload")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "/etc/hioload/"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("HIOLOAD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration Load yields with no file and no environment.
func Default() *Config {
	return &Config{
		Pool: PoolConfig{
			MinimumLength:      pool.DefaultMinimumLength,
			MaximumLength:      pool.DefaultMaximumLength,
			MaxArraysPerBucket: pool.DefaultMaxArraysPerBucket,
			Scrub:              "auto",
		},
		Log:     LogConfig{Level: "info", Encoding: "json"},
		Metrics: MetricsConfig{Enabled: true},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("pool.minimum_length", d.Pool.MinimumLength)
	v.SetDefault("pool.maximum_length", d.Pool.MaximumLength)
	v.SetDefault("pool.max_arrays_per_bucket", d.Pool.MaxArraysPerBucket)
	v.SetDefault("pool.scrub", d.Pool.Scrub)
	v.SetDefault("pool.check_returns", d.Pool.CheckReturns)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.encoding", d.Log.Encoding)

	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
}

// Validate checks pool bounds, scrub policy and logging settings.
func (c *Config) Validate() error {
	policy, err := ParseScrubPolicy(c.Pool.Scrub)
	if err != nil {
		return err
	}
	o := pool.DefaultOptions()
	o.MinimumLength = c.Pool.MinimumLength
	o.MaximumLength = c.Pool.MaximumLength
	o.MaxArraysPerBucket = c.Pool.MaxArraysPerBucket
	o.Scrub = policy
	if err := o.Validate(); err != nil {
		return err
	}
	if _, err := logutil.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Encoding) {
	case "", "json", "console":
	default:
		return api.InvalidArgument("log.encoding", c.Log.Encoding)
	}
	return nil
}

// PoolOptions converts the pool section into options for pool.SetDefaultOptions.
func (c *Config) PoolOptions() []pool.Option {
	policy, _ := ParseScrubPolicy(c.Pool.Scrub)
	return []pool.Option{
		pool.WithMinimumLength(c.Pool.MinimumLength),
		pool.WithMaximumLength(c.Pool.MaximumLength),
		pool.WithMaxArraysPerBucket(c.Pool.MaxArraysPerBucket),
		pool.WithScrubPolicy(policy),
		pool.WithReturnCheck(c.Pool.CheckReturns),
		pool.WithMetricsExport(c.Metrics.Enabled),
	}
}

// ParseScrubPolicy maps "auto", "always" and "never" onto pool.ScrubPolicy.
func ParseScrubPolicy(s string) (pool.ScrubPolicy, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return pool.ScrubAuto, nil
	case "always":
		return pool.ScrubAlways, nil
	case "never":
		return pool.ScrubNever, nil
	default:
		return pool.ScrubAuto, api.InvalidArgument("pool.scrub", s)
	}
}
