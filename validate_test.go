package triot

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestValidate_RejectsNonSequence(t *testing.T) {
	for _, candidate := range []any{nil, "not a list", 42, 3.14, map[string]int{"a": 1}, struct{}{}} {
		_, err := Validate(nil, candidate)
		require.ErrorIs(t, err, ErrInvalidType, "candidate %v", candidate)
	}
}

func TestValidate_RejectsEmpty(t *testing.T) {
	for _, candidate := range []any{[]int64{}, []int{}, []any{}, [0]int{}} {
		_, err := Validate(nil, candidate)
		require.ErrorIs(t, err, ErrEmptyInput, "candidate %v", candidate)
	}
}

func TestValidate_RejectsNonIntegerElement(t *testing.T) {
	_, err := Validate(nil, []any{1, "x", 3})
	require.ErrorIs(t, err, ErrInvalidElement)

	idx, ok := ExtractItemIndex(err)
	require.True(t, ok)
	require.Equal(t, 1, idx, "first offending index must be reported")

	// Later offending elements do not mask the first one.
	_, err = Validate(nil, []any{1, 2, nil, "y"})
	require.ErrorIs(t, err, ErrInvalidElement)
	idx, ok = ExtractItemIndex(err)
	require.True(t, ok)
	require.Equal(t, 2, idx)
}

func TestValidate_RejectsFloatElements(t *testing.T) {
	_, err := Validate(nil, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrInvalidElement)
	idx, ok := ExtractItemIndex(err)
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

func TestValidate_AcceptsIntegerKinds(t *testing.T) {
	tests := []struct {
		name      string
		candidate any
		want      []int64
	}{
		{"int64 slice", []int64{1, -2, 3}, []int64{1, -2, 3}},
		{"int slice", []int{-100, 0, 100}, []int64{-100, 0, 100}},
		{"int16 array", [3]int16{7, -8, 9}, []int64{7, -8, 9}},
		{"uint16 slice", []uint16{0, 65535}, []int64{0, 65535}},
		{"mixed widths in any", []any{int8(-5), uint32(6), int64(7), 8}, []int64{-5, 6, 7, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(nil, tt.candidate)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_RejectsOverflowingUint64(t *testing.T) {
	_, err := Validate(nil, []uint64{math.MaxUint64})
	require.ErrorIs(t, err, ErrInvalidElement)
	idx, ok := ExtractItemIndex(err)
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

func TestValidate_EmitsDiagnosticTrace(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := Validate(logger, []int64{1, 2})
	require.NoError(t, err)

	var debugs int
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.DebugLevel {
			debugs++
		}
	}
	require.GreaterOrEqual(t, debugs, 4, "expected a trace per validation step")

	hook.Reset()
	_, err = Validate(logger, []any{1, "x"})
	require.Error(t, err)
	require.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	require.Contains(t, hook.LastEntry().Message, "index 1")
}
