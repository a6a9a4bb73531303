package pool

import "sync"

type fixed struct {
	mu        sync.Mutex
	created   uint
	capacity  uint
	available chan any
	newFn     func() any
}

// NewFixed returns a pool holding at most capacity workers, created lazily by
// newFn on first demand.
func NewFixed(capacity uint, newFn func() any) Pool {
	return &fixed{
		capacity:  capacity,
		available: make(chan any, capacity),
		newFn:     newFn,
	}
}

func (p *fixed) Get() any {
	select {
	case w := <-p.available:
		return w
	default:
	}

	p.mu.Lock()
	if p.created < p.capacity {
		p.created++
		p.mu.Unlock()
		return p.newFn()
	}
	p.mu.Unlock()

	// At capacity with nothing idle: wait for a return.
	return <-p.available
}

func (p *fixed) Put(w any) {
	p.available <- w
}
