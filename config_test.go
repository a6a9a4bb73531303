package triot

import (
	"errors"
	"testing"
	"time"

	"github.com/ttabwol-git/triot/metrics"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := defaultConfig()
	if cfg.maxWorkers != DefaultMaxWorkers {
		t.Fatalf("maxWorkers default = %d; want %d", cfg.maxWorkers, DefaultMaxWorkers)
	}
	if cfg.taskBuffer != 0 {
		t.Fatalf("taskBuffer default = %d; want 0", cfg.taskBuffer)
	}
	if cfg.itemDelay != 0 {
		t.Fatalf("itemDelay default = %v; want 0", cfg.itemDelay)
	}
	if cfg.limiter != nil {
		t.Fatalf("limiter default = %v; want nil", cfg.limiter)
	}
	if cfg.onItemDone != nil {
		t.Fatal("onItemDone default must be nil")
	}
	if cfg.metrics == nil {
		t.Fatal("metrics default must be the noop provider, not nil")
	}
}

func TestNew_InvalidOptions_ReturnError(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"zero max workers", WithMaxWorkers(0)},
		{"negative max workers", WithMaxWorkers(-3)},
		{"negative task buffer", WithTaskBuffer(-1)},
		{"negative item delay", WithItemDelay(-time.Millisecond)},
		{"zero rate", WithRateLimit(0, 1)},
		{"zero burst", WithRateLimit(10, 0)},
		{"nil hook", WithOnItemDone(nil)},
		{"nil provider", WithMetrics(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New[int64, int64](nil, tt.opt)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("New error = %v; want ErrInvalidConfig", err)
			}
		})
	}
}

func TestNew_NilOptionsAreSkipped(t *testing.T) {
	e, err := New[int64, int64](nil, nil, WithMaxWorkers(2), nil, WithMetrics(metrics.NewBasicProvider()))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if e.cfg.maxWorkers != 2 {
		t.Fatalf("maxWorkers = %d; want 2", e.cfg.maxWorkers)
	}
}

func TestEffectiveWorkers(t *testing.T) {
	tests := []struct {
		maxWorkers, items, want int
	}{
		{8, 3, 3},
		{8, 20, 8},
		{1, 5, 1},
		{8, 8, 8},
		{8, 1, 1},
	}
	for _, tt := range tests {
		if got := effectiveWorkers(tt.maxWorkers, tt.items); got != tt.want {
			t.Fatalf("effectiveWorkers(%d, %d) = %d; want %d", tt.maxWorkers, tt.items, got, tt.want)
		}
	}
}
