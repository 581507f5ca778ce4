package game

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/samdwyer/forestquest/internal/ui"
)

// Environment variables read by LoadConfig.
const (
	EnvSeed      = "FORESTQUEST_SEED"
	EnvTextDelay = "FORESTQUEST_TEXT_DELAY"
	EnvPause     = "FORESTQUEST_PAUSE"
	EnvNoColor   = "NO_COLOR"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible sessions.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	TextDelay time.Duration // Typewriter delay per character
	Pause     time.Duration // Pause before each exploration
	Color     bool          // Colored output

	// Interactive is true when output is a terminal. Without a terminal,
	// colors, screen clearing and delays are all disabled.
	Interactive bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		TextDelay:   30 * time.Millisecond,
		Pause:       time.Second,
		Color:       true,
		Interactive: true,
	}
}

// LoadConfig builds a Config from environment lookups. Invalid values keep
// their defaults and are reported together in the returned error.
func LoadConfig(lookup func(string) (string, bool), interactive bool) (Config, error) {
	cfg := DefaultConfig()
	cfg.Interactive = interactive
	var errs []error

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		} else {
			cfg.Seed = seed
		}
	}

	parseDuration := func(key string, dst *time.Duration) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		if d < 0 {
			errs = append(errs, fmt.Errorf("%s: negative duration %s", key, v))
			return
		}
		*dst = d
	}
	parseDuration(EnvTextDelay, &cfg.TextDelay)
	parseDuration(EnvPause, &cfg.Pause)

	if _, ok := lookup(EnvNoColor); ok {
		cfg.Color = false
	}

	return cfg, errors.Join(errs...)
}

// ConsoleOptions derives console presentation from the config.
func (c Config) ConsoleOptions() ui.Options {
	if !c.Interactive {
		return ui.Options{}
	}
	return ui.Options{
		Color:     c.Color,
		Clear:     true,
		TextDelay: c.TextDelay,
		Pause:     c.Pause,
	}
}
