package triot

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ygrebnov/errorc"
	"golang.org/x/sync/errgroup"

	"github.com/ttabwol-git/triot/metrics"
	"github.com/ttabwol-git/triot/pool"
)

// TransformFunc is the per-item transformation applied by the executor. The
// worker argument identifies the execution unit running the item and is meant
// for diagnostics only. Implementations must be pure apart from logging.
type TransformFunc[T, R any] func(ctx context.Context, worker string, item T) (R, error)

// indexedItem pairs an input item with its position so results can be written
// back in input order regardless of completion order.
type indexedItem[T any] struct {
	index int
	item  T
}

// Executor maps a transformation over a batch of items with bounded
// concurrency. An Executor is safe for concurrent use; each Run owns its own
// task channel and result slots, and worker instances are borrowed from a
// shared fixed pool.
type Executor[T, R any] struct {
	cfg config
	log logrus.FieldLogger

	workers pool.Pool

	batches  metrics.Counter
	duration metrics.Histogram
}

// New constructs an Executor from functional options.
func New[T, R any](log logrus.FieldLogger, opts ...Option) (*Executor[T, R], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if log == nil {
		log = logrus.StandardLogger()
	}

	var seq uint64
	workers := pool.NewFixed(uint(cfg.maxWorkers), func() any {
		id := atomic.AddUint64(&seq, 1)
		return newWorker[T, R](fmt.Sprintf("worker-%d", id), log, cfg.itemDelay, cfg.metrics)
	})

	return &Executor[T, R]{
		cfg:     cfg,
		log:     log,
		workers: workers,
		batches: cfg.metrics.Counter("batches_total", metrics.WithUnit("1")),
		duration: cfg.metrics.Histogram("batch_duration_seconds",
			metrics.WithUnit("seconds"), metrics.WithDescription("wall time per batch")),
	}, nil
}

// effectiveWorkers caps the pool size at the number of items so small batches
// never hold idle workers.
func effectiveWorkers(maxWorkers, items int) int { return min(maxWorkers, items) }

// Run transforms every item of a batch and returns the results aligned with
// the input indices. It blocks until the whole batch has completed or the
// first item has failed.
//
// On failure no partial results are returned: the batch is cancelled, every
// worker goroutine is joined, and the error carries the offending index and
// worker id (see ItemMetaError). On success len(results) == len(items) and
// results[i] == fn(items[i]) for every i.
func (e *Executor[T, R]) Run(ctx context.Context, items []T, fn TransformFunc[T, R]) ([]R, error) {
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}
	if fn == nil {
		return nil, errorc.With(ErrInvalidConfig, errorc.String("", "Run requires a non-nil transform"))
	}

	count := effectiveWorkers(e.cfg.maxWorkers, len(items))
	e.log.Infof("starting batch: %d items, %d workers", len(items), count)

	buffer := e.cfg.taskBuffer
	if buffer == 0 {
		buffer = count
	}
	tasks := make(chan indexedItem[T], buffer)
	results := make([]R, len(items))

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)

	for i := 0; i < count; i++ {
		g.Go(func() error {
			w := e.workers.Get().(*worker[T, R])
			defer e.workers.Put(w)
			return e.runWorker(gctx, w, tasks, results, fn)
		})
	}

	// Feed tasks from the submitting side; closing the channel releases idle
	// workers once the batch has drained.
	g.Go(func() error {
		defer close(tasks)
		for i := range items {
			select {
			case tasks <- indexedItem[T]{index: i, item: items[i]}:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	err := g.Wait()
	e.batches.Add(1)
	e.duration.Record(time.Since(start).Seconds())

	if err != nil {
		return nil, err
	}

	e.log.Infof("batch complete: %d items in %s", len(items), time.Since(start).Round(time.Millisecond))
	return results, nil
}

// runWorker drains the task channel with a single borrowed worker. Each task
// writes exclusively to its own result slot, so no locking is needed on the
// results slice. Returning a non-nil error cancels the group context and
// aborts the batch.
func (e *Executor[T, R]) runWorker(
	ctx context.Context,
	w *worker[T, R],
	tasks <-chan indexedItem[T],
	results []R,
	fn TransformFunc[T, R],
) error {
	for {
		select {
		case t, ok := <-tasks:
			if !ok {
				return nil
			}
			if e.cfg.limiter != nil {
				if err := e.cfg.limiter.Wait(ctx); err != nil {
					return err
				}
			}
			result, err := w.process(ctx, t, fn)
			if err != nil {
				return err
			}
			results[t.index] = result
			if e.cfg.onItemDone != nil {
				e.cfg.onItemDone(t.index)
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// RunCollect executes the batch like Run but preserves the legacy observable
// contract: any failure is logged and collapses to an empty result set. Given
// that empty input is rejected upstream, an empty return unambiguously signals
// a failed batch.
func (e *Executor[T, R]) RunCollect(ctx context.Context, items []T, fn TransformFunc[T, R]) []R {
	results, err := e.Run(ctx, items, fn)
	if err != nil {
		e.log.Errorf("an error occurred: %v", err)
		return []R{}
	}
	return results
}
