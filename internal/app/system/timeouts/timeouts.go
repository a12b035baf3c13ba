// Package timeouts provides centralized timeout values for handler operations.
//
// Handlers wrap every backend call in context.WithTimeout using one of these
// values, so a slow backend cannot hold a request open indefinitely.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks
//   - Short: single-record reads (edit form prefill)
//   - Medium: list loads, creates, updates, deletes followed by a reload
//   - Long: exports that load several lists
package timeouts

import (
	"os"
	"sync"
	"time"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
	DefaultLong   = 30 * time.Second
)

var mu sync.RWMutex

var (
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
	long   = DefaultLong
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for single-record reads.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for list loads and mutations.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// Long returns the timeout for exports.
func Long() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return long
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Ping   time.Duration
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
}

// Configure sets custom timeout values. Zero values in the config are ignored.
// Call during startup before handlers are registered.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Short > 0 {
		short = cfg.Short
	}
	if cfg.Medium > 0 {
		medium = cfg.Medium
	}
	if cfg.Long > 0 {
		long = cfg.Long
	}
}

// Reset restores all timeouts to their default values.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
	medium = DefaultMedium
	long = DefaultLong
}

// ConfigureFromEnv reads EDUADMIN_TIMEOUT_PING, EDUADMIN_TIMEOUT_SHORT,
// EDUADMIN_TIMEOUT_MEDIUM and EDUADMIN_TIMEOUT_LONG (Go durations such as
// "2s" or "500ms"). Unset or invalid values are skipped.
//
// Returns the number of timeouts configured from the environment.
func ConfigureFromEnv() int {
	targets := []struct {
		env string
		dst *time.Duration
	}{
		{"EDUADMIN_TIMEOUT_PING", &ping},
		{"EDUADMIN_TIMEOUT_SHORT", &short},
		{"EDUADMIN_TIMEOUT_MEDIUM", &medium},
		{"EDUADMIN_TIMEOUT_LONG", &long},
	}

	mu.Lock()
	defer mu.Unlock()
	configured := 0
	for _, t := range targets {
		v := os.Getenv(t.env)
		if v == "" {
			continue
		}
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			*t.dst = d
			configured++
		}
	}
	return configured
}

// Current returns the current timeout configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{
		Ping:   ping,
		Short:  short,
		Medium: medium,
		Long:   long,
	}
}
