package triot

import (
	"errors"
	"fmt"
)

// ItemMetaError exposes correlation metadata for a failed batch item.
type ItemMetaError interface {
	error
	Unwrap() error
	ItemIndex() (int, bool)
	WorkerID() (string, bool)
}

type itemTaggedError struct {
	err    error
	index  int
	worker string
}

// newItemTaggedError wraps err with the input index of the offending item and,
// when known, the id of the worker that processed it. Validation failures carry
// no worker id.
func newItemTaggedError(err error, index int, worker string) error {
	if err == nil {
		return nil
	}
	return &itemTaggedError{err: err, index: index, worker: worker}
}

func (e *itemTaggedError) Error() string { return e.err.Error() }
func (e *itemTaggedError) Unwrap() error { return e.err }

func (e *itemTaggedError) ItemIndex() (int, bool) { return e.index, true }

func (e *itemTaggedError) WorkerID() (string, bool) {
	if e.worker == "" {
		return "", false
	}
	return e.worker, true
}

func (e *itemTaggedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "item(index=%d,worker=%s): %+v", e.index, e.worker, e.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractItemIndex returns the input index carried by err if present.
func ExtractItemIndex(err error) (int, bool) {
	var ime ItemMetaError
	if errors.As(err, &ime) {
		return ime.ItemIndex()
	}
	return 0, false
}

// ExtractWorkerID returns the worker id carried by err if present.
func ExtractWorkerID(err error) (string, bool) {
	var ime ItemMetaError
	if errors.As(err, &ime) {
		return ime.WorkerID()
	}
	return "", false
}
