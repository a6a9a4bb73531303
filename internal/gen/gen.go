// Package gen produces random input batches for the doubling pipeline.
package gen

import "math/rand"

// Bounds of the generated batches. These mirror the reference generator; they
// are test-range conventions, not limits the engine enforces.
const (
	MinLen   = 6
	MaxLen   = 20
	MinValue = -100
	MaxValue = 100
)

// Ints returns a batch of random length within [MinLen, MaxLen].
func Ints(r *rand.Rand) []int64 {
	n := MinLen + r.Intn(MaxLen-MinLen+1)
	return IntsN(r, n)
}

// IntsN returns n random values within [MinValue, MaxValue].
func IntsN(r *rand.Rand, n int) []int64 {
	items := make([]int64, n)
	for i := range items {
		items[i] = int64(MinValue + r.Intn(MaxValue-MinValue+1))
	}
	return items
}
