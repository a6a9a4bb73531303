package triot

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ttabwol-git/triot/metrics"
)

// worker is a single execution unit pulled from the pool for the duration of a
// batch. Its id is stable across batches and is passed to the transformation
// for diagnostics only; correctness never depends on which worker processed
// which item.
type worker[T, R any] struct {
	id        string
	log       logrus.FieldLogger
	delay     time.Duration
	processed metrics.Counter
	failed    metrics.Counter
}

func newWorker[T, R any](id string, log logrus.FieldLogger, delay time.Duration, m metrics.Provider) *worker[T, R] {
	return &worker[T, R]{
		id:        id,
		log:       log,
		delay:     delay,
		processed: m.Counter("items_processed", metrics.WithUnit("1")),
		failed:    m.Counter("items_failed", metrics.WithUnit("1")),
	}
}

// process applies fn to a single indexed item. Errors and panics are tagged
// with the item index and this worker's id; a recovered panic surfaces as
// ErrTaskPanicked.
func (w *worker[T, R]) process(ctx context.Context, t indexedItem[T], fn TransformFunc[T, R]) (result R, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = newItemTaggedError(fmt.Errorf("%w: %v", ErrTaskPanicked, p), t.index, w.id)
		}
		if err != nil {
			w.failed.Add(1)
		} else {
			w.processed.Add(1)
		}
	}()

	if w.delay > 0 {
		time.Sleep(w.delay)
	}

	result, err = fn(ctx, w.id, t.item)
	if err != nil {
		return result, newItemTaggedError(fmt.Errorf("%w: %w", ErrTaskFailed, err), t.index, w.id)
	}

	w.log.Debugf("worker: %s - input: %v - result: %v", w.id, t.item, result)
	return result, nil
}
