package rc

import "unsafe"

// refCounts is the pair of counters shared by every handle referencing one
// block. Plain ints, no atomicity; see the package documentation for the
// threading contract.
type refCounts struct {
	strong int
	weak   int
}

// control is the bookkeeping record behind a set of handles. The two
// implementations differ in where the value lives and how it dies; the
// interface keeps the set open to further strategies.
type control[T any] interface {
	counts() *refCounts

	// destroyValue runs the destruction strategy on the owned value. Called
	// at most once, when the strong count drops to zero.
	destroyValue()

	// releaseStorage returns the block's accounted storage to its allocator.
	// Called at most once, after destroyValue (or in its place when the
	// value was never owned), once both counts are zero.
	releaseStorage()

	// origin is the creation stack recorded for misuse reports, nil unless
	// traceback was enabled at construction.
	origin() []byte
}

// adoptBlock wraps a caller-allocated value with its destroyer. The value
// and the block are separate accounting units.
type adoptBlock[T any] struct {
	refCounts
	ptr       *T
	destroyer Destroyer[T]
	alloc     Allocator
	trace     []byte
}

func (b *adoptBlock[T]) counts() *refCounts { return &b.refCounts }

func (b *adoptBlock[T]) destroyValue() {
	b.destroyer.Destroy(b.ptr)
	b.ptr = nil
}

func (b *adoptBlock[T]) releaseStorage() {
	b.alloc.Deallocate(unsafe.Sizeof(*b))
}

func (b *adoptBlock[T]) origin() []byte { return b.trace }

// embedBlock stores the value inline next to the counters, so one accounting
// unit covers both the value and the bookkeeping.
type embedBlock[T any] struct {
	refCounts
	val   T
	alloc Allocator
	trace []byte
}

func (b *embedBlock[T]) counts() *refCounts { return &b.refCounts }

// destroyValue destroys the value in place. The storage is zeroed so
// anything it referenced is immediately collectible; the storage itself
// survives until the last weak handle drops.
func (b *embedBlock[T]) destroyValue() {
	defaultDestroy(&b.val)
	var zero T
	b.val = zero
}

func (b *embedBlock[T]) releaseStorage() {
	b.alloc.Deallocate(unsafe.Sizeof(*b))
}

func (b *embedBlock[T]) origin() []byte { return b.trace }
