package triot

import (
	"math"
	"reflect"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/ygrebnov/errorc"
)

// Validate gates a candidate input into the executor. It checks, in order, that
// candidate is a sequence, that it is non-empty, and that every element is an
// integer, reporting the first offending index. On success the elements are
// returned widened to int64; the candidate itself is never mutated.
//
// Any slice or array of integer kinds is accepted, including []any holding
// integers of mixed widths. The check order only affects which error is
// reported; each failure is terminal.
func Validate(log logrus.FieldLogger, candidate any) ([]int64, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	log.Debugf("data input: %v", candidate)

	seq, ok := asSequence(candidate)
	if !ok {
		log.Errorf("data must be a sequence - input: %v", candidate)
		return nil, ErrInvalidType
	}
	log.Debug("data validation: input is a sequence")

	if seq.Len() == 0 {
		log.Errorf("data cannot be empty - input: %v", candidate)
		return nil, ErrEmptyInput
	}
	log.Debug("data validation: input is not empty")

	items := make([]int64, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		n, ok := asInt64(seq.Index(i))
		if !ok {
			log.Errorf("incorrect data type at index %d - input: %v", i, candidate)
			return nil, newItemTaggedError(
				errorc.With(ErrInvalidElement, errorc.String("index", strconv.Itoa(i))), i, "",
			)
		}
		items[i] = n
	}
	log.Debug("data validation: all elements are integers")

	return items, nil
}

func asSequence(candidate any) (reflect.Value, bool) {
	if candidate == nil {
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(candidate)
	if k := v.Kind(); k != reflect.Slice && k != reflect.Array {
		return reflect.Value{}, false
	}
	return v, true
}

// asInt64 widens integer kinds to int64. Unsigned values above math.MaxInt64
// are rejected rather than wrapped.
func asInt64(v reflect.Value) (int64, bool) {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	default:
		return 0, false
	}
}
