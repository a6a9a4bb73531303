package triot

import (
	"errors"
	"fmt"
	"testing"
)

func TestItemTaggedError_Metadata(t *testing.T) {
	cause := errors.New("boom")
	err := newItemTaggedError(fmt.Errorf("%w: %w", ErrTaskFailed, cause), 4, "worker-2")

	if !errors.Is(err, ErrTaskFailed) {
		t.Fatalf("errors.Is(err, ErrTaskFailed) = false")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(err, cause) = false")
	}

	idx, ok := ExtractItemIndex(err)
	if !ok || idx != 4 {
		t.Fatalf("ExtractItemIndex = (%d, %v); want (4, true)", idx, ok)
	}
	worker, ok := ExtractWorkerID(err)
	if !ok || worker != "worker-2" {
		t.Fatalf("ExtractWorkerID = (%q, %v); want (\"worker-2\", true)", worker, ok)
	}
}

func TestItemTaggedError_NoWorker(t *testing.T) {
	err := newItemTaggedError(ErrInvalidElement, 1, "")
	if _, ok := ExtractWorkerID(err); ok {
		t.Fatal("validation errors must not report a worker id")
	}
	if idx, ok := ExtractItemIndex(err); !ok || idx != 1 {
		t.Fatalf("ExtractItemIndex = (%d, %v); want (1, true)", idx, ok)
	}
}

func TestNewItemTaggedError_NilPassthrough(t *testing.T) {
	if err := newItemTaggedError(nil, 0, "worker-1"); err != nil {
		t.Fatalf("newItemTaggedError(nil) = %v; want nil", err)
	}
}

func TestExtract_PlainError(t *testing.T) {
	if _, ok := ExtractItemIndex(errors.New("plain")); ok {
		t.Fatal("plain errors must not report an index")
	}
	if _, ok := ExtractWorkerID(errors.New("plain")); ok {
		t.Fatal("plain errors must not report a worker id")
	}
}

func TestItemTaggedError_VerboseFormat(t *testing.T) {
	err := newItemTaggedError(ErrTaskFailed, 2, "worker-1")
	got := fmt.Sprintf("%+v", err)
	want := "item(index=2,worker=worker-1)"
	if len(got) == 0 || got[:len(want)] != want {
		t.Fatalf("%%+v = %q; want prefix %q", got, want)
	}
}
