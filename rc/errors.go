package rc

import "errors"

var (
	// ErrExhausted indicates the allocator refused control-block storage.
	ErrExhausted = errors.New("rc: allocator exhausted")

	// ErrOverFree indicates more storage was returned to an allocator than it
	// had live. Always handle misuse upstream, never an allocator bug.
	ErrOverFree = errors.New("rc: allocator over-free")

	// ErrStrongUnderflow indicates a strong count was decremented below zero:
	// an uncounted handle copy was released alongside the original.
	ErrStrongUnderflow = errors.New("rc: strong count below zero")

	// ErrWeakUnderflow indicates a weak count was decremented below zero.
	ErrWeakUnderflow = errors.New("rc: weak count below zero")
)
