package triot

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Processor is the canonical pipeline: it validates a candidate batch of
// integers at construction time and doubles every element through the bounded
// executor. Construction fails with the Validate error taxonomy, so a
// Processor never holds a malformed batch.
type Processor struct {
	log   logrus.FieldLogger
	exec  *Executor[int64, int64]
	items []int64
}

// NewProcessor validates candidate and builds the doubling pipeline around it.
func NewProcessor(log logrus.FieldLogger, candidate any, opts ...Option) (*Processor, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	items, err := Validate(log, candidate)
	if err != nil {
		return nil, err
	}
	log.Info("data input validated")

	exec, err := New[int64, int64](log, opts...)
	if err != nil {
		return nil, err
	}
	log.Infof("processor initialized with %d workers", effectiveWorkers(exec.cfg.maxWorkers, len(items)))

	return &Processor{log: log, exec: exec, items: items}, nil
}

// Items returns the validated input sequence.
func (p *Processor) Items() []int64 { return p.items }

// Double is the per-item transformation: it doubles the value.
func Double(_ context.Context, _ string, item int64) (int64, error) {
	return item * 2, nil
}

// RunProcess doubles every validated item and returns the results in input
// order. Any item failure collapses to an empty result set; partial results
// are never exposed.
func (p *Processor) RunProcess(ctx context.Context) []int64 {
	return p.exec.RunCollect(ctx, p.items, Double)
}
