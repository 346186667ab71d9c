// Package timeouts holds the deadlines handlers put on database work.
//
// Values start at the defaults below and can be replaced once at startup
// with Configure. Handlers read them through the getters:
//   - Ping: health checks
//   - Short: single-document reads and edits (link, attendance)
//   - Medium: roster and schedule listings
//   - Batch: roster uploads that replace a whole collection
//   - Generate: loading rosters, running the allocator and storing the run
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing     = 2 * time.Second
	DefaultShort    = 5 * time.Second
	DefaultMedium   = 10 * time.Second
	DefaultBatch    = 60 * time.Second
	DefaultGenerate = 90 * time.Second
)

var mu sync.RWMutex

var current = Config{
	Ping:     DefaultPing,
	Short:    DefaultShort,
	Medium:   DefaultMedium,
	Batch:    DefaultBatch,
	Generate: DefaultGenerate,
}

// Config holds timeout values. Zero values are ignored by Configure.
type Config struct {
	Ping     time.Duration
	Short    time.Duration
	Medium   time.Duration
	Batch    time.Duration
	Generate time.Duration
}

func Ping() time.Duration     { return get().Ping }
func Short() time.Duration    { return get().Short }
func Medium() time.Duration   { return get().Medium }
func Batch() time.Duration    { return get().Batch }
func Generate() time.Duration { return get().Generate }

func get() Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Configure replaces the non-zero values in cfg. Call it during startup
// before handlers are built.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		current.Ping = cfg.Ping
	}
	if cfg.Short > 0 {
		current.Short = cfg.Short
	}
	if cfg.Medium > 0 {
		current.Medium = cfg.Medium
	}
	if cfg.Batch > 0 {
		current.Batch = cfg.Batch
	}
	if cfg.Generate > 0 {
		current.Generate = cfg.Generate
	}
}

// Reset restores the defaults. Used by tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	current = Config{
		Ping:     DefaultPing,
		Short:    DefaultShort,
		Medium:   DefaultMedium,
		Batch:    DefaultBatch,
		Generate: DefaultGenerate,
	}
}

// Current returns the active configuration, for startup logging.
func Current() Config {
	return get()
}

// WithTimeout is context.WithTimeout whose cancel func logs a warning when
// the deadline was what ended the operation.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Generate(), h.Log, "generate schedule")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
