// Package pool provides a fixed-capacity pool of reusable worker instances.
package pool

// Pool hands out worker instances with exclusive ownership: an instance
// obtained via Get is not visible to other callers until it is returned
// with Put.
type Pool interface {
	// Get returns a worker, creating one if the pool is below capacity.
	// It blocks while all workers are checked out.
	Get() any

	// Put returns a worker to the pool.
	Put(any)
}
