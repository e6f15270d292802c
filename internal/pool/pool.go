// Package pool provides object pooling for go-keyopt run loops.
// Used by the registry to reuse queue and parameter storage across runs and
// reduce GC pressure.
package pool

import "sync"

// Pool is a generic, type-safe object pool.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // optional reset called before reuse
}

// NewPool creates a pool with the given factory function.
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool with a reset function called before reuse.
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// SlicePool pools slices of a fixed element type. Returned slices have zero
// length and at least the configured capacity.
type SlicePool[T any] struct {
	pool     *Pool[[]T]
	capacity int
}

// NewSlicePool creates a slice pool whose slices start with the given capacity.
func NewSlicePool[T any](capacity int) *SlicePool[T] {
	if capacity <= 0 {
		capacity = 8
	}
	sp := &SlicePool[T]{capacity: capacity}
	sp.pool = NewPoolWithReset(
		func() *[]T {
			s := make([]T, 0, capacity)
			return &s
		},
		func(s *[]T) {
			*s = (*s)[:0]
		},
	)
	return sp
}

// Get returns an empty slice from the pool.
func (sp *SlicePool[T]) Get() []T {
	return *sp.pool.Get()
}

// Put returns a slice to the pool. Slices that grew far beyond the configured
// capacity are dropped so the pool does not pin large backing arrays.
func (sp *SlicePool[T]) Put(s []T) {
	if cap(s) > sp.capacity*16 {
		return
	}
	s = s[:0]
	sp.pool.Put(&s)
}
