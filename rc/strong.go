package rc

import "unsafe"

// handle is the shared ownership record behind both handle kinds: the
// logical value address plus the control-block reference.
type handle[T any] struct {
	ptr *T
	cb  control[T]
}

// Strong is an owning reference: the value stays alive while at least one
// strong handle exists. The zero value is an empty handle with UseCount 0.
//
// Strong is a plain value; assignment copies are uncounted. Use Clone for a
// new counted reference and Move to transfer one.
type Strong[T any] struct {
	handle[T]
}

// New stores v in a combined control block and returns an owning handle with
// UseCount 1. One allocation serves the value and the bookkeeping.
func New[T any](v T) Strong[T] {
	s, err := NewIn(Heap{}, v)
	if err != nil {
		// Heap never fails.
		panic(err)
	}
	return s
}

// NewIn is New with an explicit allocator accounting for the combined block.
func NewIn[T any](a Allocator, v T) (Strong[T], error) {
	return Build(a, func() (T, error) { return v, nil })
}

// Build allocates a combined block and constructs the value in place via
// build. If build fails, the block storage is returned to the allocator
// before the error propagates, so a failed construction leaks nothing.
// A nil allocator means Heap.
func Build[T any](a Allocator, build func() (T, error)) (Strong[T], error) {
	if a == nil {
		a = Heap{}
	}
	size := unsafe.Sizeof(embedBlock[T]{})
	if err := a.Allocate(size); err != nil {
		return Strong[T]{}, err
	}
	v, err := build()
	if err != nil {
		a.Deallocate(size)
		return Strong[T]{}, err
	}
	b := &embedBlock[T]{val: v, alloc: a, trace: captureOrigin()}
	b.strong = 1
	return Strong[T]{handle[T]{ptr: &b.val, cb: b}}, nil
}

// Adopt takes ownership of a caller-allocated pointer, allocating an
// adopted-pointer control block for it. opts may be nil. If the allocator
// fails, the pointer is untouched and stays caller-owned.
func Adopt[T any](ptr *T, opts *AdoptOptions[T]) (Strong[T], error) {
	var (
		d Destroyer[T]
		a Allocator
	)
	if opts != nil {
		d, a = opts.Destroyer, opts.Allocator
	}
	if d == nil {
		d = DestroyerFn[T](defaultDestroy[T])
	}
	if a == nil {
		a = Heap{}
	}
	size := unsafe.Sizeof(adoptBlock[T]{})
	if err := a.Allocate(size); err != nil {
		return Strong[T]{}, err
	}
	b := &adoptBlock[T]{ptr: ptr, destroyer: d, alloc: a, trace: captureOrigin()}
	b.strong = 1
	return Strong[T]{handle[T]{ptr: ptr, cb: b}}, nil
}

// Clone returns a new owning handle to the same value, incrementing the
// strong count. Cloning an empty handle yields an empty handle.
func (s Strong[T]) Clone() Strong[T] {
	if s.cb != nil {
		s.cb.counts().strong++
	}
	return s
}

// Move transfers ownership out of s, leaving it empty. The count is
// untouched.
func (s *Strong[T]) Move() Strong[T] {
	out := Strong[T]{s.handle}
	s.ptr, s.cb = nil, nil
	return out
}

// Release drops this handle's ownership and empties it. When the last
// strong handle drops, the destruction strategy runs; when no weak handle
// remains either, the block storage is returned to the allocator. Releasing
// an empty handle is a no-op.
func (s *Strong[T]) Release() {
	cb := s.cb
	s.ptr, s.cb = nil, nil
	if cb == nil {
		return
	}
	c := cb.counts()
	if c.strong == 0 {
		misuse(ErrStrongUnderflow, cb.origin())
		return
	}
	c.strong--
	if c.strong == 0 {
		cb.destroyValue()
		if c.weak == 0 {
			cb.releaseStorage()
		}
	}
}

// Reset releases the current ownership, leaving the handle empty.
func (s *Strong[T]) Reset() {
	var empty Strong[T]
	empty.Swap(s)
	empty.Release()
}

// ResetTo replaces the current ownership with a newly adopted pointer. The
// replacement is fully constructed before the old value is released, so the
// old value goes exactly once and a failed adoption leaves the handle
// unmodified.
func (s *Strong[T]) ResetTo(ptr *T, opts *AdoptOptions[T]) error {
	repl, err := Adopt(ptr, opts)
	if err != nil {
		return err
	}
	repl.Swap(s)
	repl.Release()
	return nil
}

// Swap exchanges the referents of two handles. No counts change.
func (s *Strong[T]) Swap(other *Strong[T]) {
	s.handle, other.handle = other.handle, s.handle
}

// UseCount reports how many strong handles share the value, or 0 for an
// empty handle.
func (s Strong[T]) UseCount() int {
	if s.cb == nil {
		return 0
	}
	return s.cb.counts().strong
}

// Get returns the value's address, or nil for an empty handle. Both block
// kinds report the logical value address, so adopted and embedded backings
// dereference identically.
func (s Strong[T]) Get() *T { return s.ptr }

// Value dereferences the handle. It panics on an empty handle, exactly as a
// nil pointer dereference would.
func (s Strong[T]) Value() T { return *s.ptr }

// Downgrade returns a weak observer of the same value. Downgrading an empty
// handle yields an empty, expired weak handle.
func (s Strong[T]) Downgrade() Weak[T] {
	if s.cb != nil {
		s.cb.counts().weak++
	}
	return Weak[T]{s.handle}
}
