// Package pool provides a recycling object pool driven by reference-counted
// handles: a pooled value returns for reuse at the exact moment its last
// owner releases it, not when the collector gets around to it.
package pool

import (
	"sync"

	"github.com/joshuapare/refkit/rc"
)

// Pool hands out owning handles to recycled values. When the last strong
// handle to a value drops, the value is reset and returned to the pool.
//
// The pool's internal free list is goroutine-safe, but the handles it
// returns follow the rc contract: each handle and its clones belong to a
// single goroutine.
type Pool[T any] struct {
	p     sync.Pool
	reset func(*T)
	alloc rc.Allocator
}

// Options configures a Pool. A nil pointer selects all defaults.
type Options struct {
	// Allocator accounts for the control blocks of handed-out handles.
	// If nil, rc.Heap is used.
	Allocator rc.Allocator
}

// New creates a pool. newFn builds a fresh value when the free list is
// empty; reset, if non-nil, clears a value before it is reused.
func New[T any](newFn func() *T, reset func(*T), opts *Options) *Pool[T] {
	var alloc rc.Allocator
	if opts != nil {
		alloc = opts.Allocator
	}
	return &Pool[T]{
		p:     sync.Pool{New: func() any { return newFn() }},
		reset: reset,
		alloc: alloc,
	}
}

// Get returns an owning handle to a pooled value. Clone the handle to share
// the value; it returns to the pool once every owner has released it.
func (p *Pool[T]) Get() (rc.Strong[T], error) {
	v := p.p.Get().(*T)
	return rc.Adopt(v, &rc.AdoptOptions[T]{
		Destroyer: rc.DestroyerFn[T](p.put),
		Allocator: p.alloc,
	})
}

func (p *Pool[T]) put(v *T) {
	if p.reset != nil {
		p.reset(v)
	}
	p.p.Put(v)
}
