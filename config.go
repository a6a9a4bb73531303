package triot

import (
	"time"

	"github.com/ygrebnov/errorc"
	"golang.org/x/time/rate"

	"github.com/ttabwol-git/triot/metrics"
)

// DefaultMaxWorkers is the worker ceiling applied when no option overrides it.
const DefaultMaxWorkers = 8

// config holds Executor configuration. It is assembled once by New and is
// immutable for the lifetime of the instance.
type config struct {
	// maxWorkers caps concurrency; the per-batch pool size is
	// min(maxWorkers, len(items)).
	maxWorkers int

	// taskBuffer sizes the internal task channel. Zero means "size to the
	// per-batch worker count".
	taskBuffer int

	// itemDelay is an artificial fixed latency applied before each
	// transformation, standing in for real per-item work.
	itemDelay time.Duration

	// limiter optionally gates task starts across all workers.
	limiter *rate.Limiter

	// onItemDone is invoked with the input index after each successful item.
	onItemDone func(index int)

	metrics metrics.Provider
}

func defaultConfig() config {
	return config{
		maxWorkers: DefaultMaxWorkers,
		metrics:    metrics.NewNoopProvider(),
	}
}

// Option configures an Executor. Invalid values are reported as errors by New
// rather than panicking.
type Option func(*config) error

// WithMaxWorkers sets the worker ceiling (must be > 0). Default: 8.
func WithMaxWorkers(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMaxWorkers requires n > 0"))
		}
		cfg.maxWorkers = n
		return nil
	}
}

// WithTaskBuffer sets the task channel buffer size. Zero (the default) sizes
// the buffer to the per-batch worker count.
func WithTaskBuffer(size int) Option {
	return func(cfg *config) error {
		if size < 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithTaskBuffer requires size >= 0"))
		}
		cfg.taskBuffer = size
		return nil
	}
}

// WithItemDelay applies a fixed artificial latency before each transformation.
func WithItemDelay(d time.Duration) Option {
	return func(cfg *config) error {
		if d < 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithItemDelay requires d >= 0"))
		}
		cfg.itemDelay = d
		return nil
	}
}

// WithRateLimit caps task starts at itemsPerSecond with the given burst.
func WithRateLimit(itemsPerSecond float64, burst int) Option {
	return func(cfg *config) error {
		if itemsPerSecond <= 0 || burst <= 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithRateLimit requires positive rate and burst"))
		}
		cfg.limiter = rate.NewLimiter(rate.Limit(itemsPerSecond), burst)
		return nil
	}
}

// WithOnItemDone registers an observer invoked with the input index after each
// successfully transformed item. Completion order across workers is
// unspecified; the hook must be safe for concurrent use.
func WithOnItemDone(fn func(index int)) Option {
	return func(cfg *config) error {
		if fn == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithOnItemDone requires a non-nil hook"))
		}
		cfg.onItemDone = fn
		return nil
	}
}

// WithMetrics sets the metrics provider. Default: a no-op provider.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.metrics = p
		return nil
	}
}
