package rc

import "fmt"

// Allocator accounts for control-block storage. The Go runtime owns the
// memory itself; implementations express policy: accounting, byte budgets,
// failure injection. Each block reports the size of its own concrete layout,
// so a single allocator serves both block kinds.
//
// Implementations:
//   - Heap: default allocator, never fails, no accounting
//   - CountingAllocator: tracks live blocks and bytes for leak checks
//   - CapAllocator: fails allocations past a byte budget
type Allocator interface {
	// Allocate authorizes storage for one control block of the given size.
	// An error aborts handle construction with no state retained.
	Allocate(size uintptr) error

	// Deallocate returns the accounting for a block of the given size.
	// Called exactly once per successful Allocate, when the last handle to
	// the block drops.
	Deallocate(size uintptr)
}

// Heap is the default allocator. It never fails and keeps no accounting.
type Heap struct{}

// Allocate always succeeds.
func (Heap) Allocate(uintptr) error { return nil }

// Deallocate is a no-op; the collector reclaims the block.
func (Heap) Deallocate(uintptr) {}

// CountingAllocator tracks live control blocks and bytes. A Live() of zero
// after all handles are released means no block leaked, which makes it the
// leak-check tool used throughout this package's tests.
//
// Like the handles themselves, it is not safe for concurrent use.
type CountingAllocator struct {
	liveBlocks int
	liveBytes  uintptr
	allocs     int
	frees      int
}

// Allocate records one live block of the given size. It never fails.
func (a *CountingAllocator) Allocate(size uintptr) error {
	a.liveBlocks++
	a.liveBytes += size
	a.allocs++
	return nil
}

// Deallocate retires one live block. Returning more than was allocated is
// reported through the misuse hook.
func (a *CountingAllocator) Deallocate(size uintptr) {
	if a.liveBlocks == 0 || a.liveBytes < size {
		panicFn(fmt.Errorf("%w: returning %d bytes with %d live", ErrOverFree, size, a.liveBytes))
		return
	}
	a.liveBlocks--
	a.liveBytes -= size
	a.frees++
}

// Live returns the number of blocks allocated but not yet released.
func (a *CountingAllocator) Live() int { return a.liveBlocks }

// LiveBytes returns the bytes held by live blocks.
func (a *CountingAllocator) LiveBytes() uintptr { return a.liveBytes }

// Allocs returns the total number of allocations performed.
func (a *CountingAllocator) Allocs() int { return a.allocs }

// Frees returns the total number of deallocations performed.
func (a *CountingAllocator) Frees() int { return a.frees }

// CapAllocator fails any allocation that would push live bytes past Max.
// The zero value fails every allocation, which makes it the standard
// failure-injection allocator for tests.
type CapAllocator struct {
	// Max is the byte budget for live control blocks.
	Max uintptr

	used uintptr
}

// Allocate reserves size bytes of the budget, or fails with ErrExhausted.
func (a *CapAllocator) Allocate(size uintptr) error {
	if a.used+size > a.Max {
		return fmt.Errorf("%w: need %d bytes, %d of %d in use", ErrExhausted, size, a.used, a.Max)
	}
	a.used += size
	return nil
}

// Deallocate returns size bytes to the budget.
func (a *CapAllocator) Deallocate(size uintptr) {
	if a.used < size {
		panicFn(fmt.Errorf("%w: returning %d bytes with %d in use", ErrOverFree, size, a.used))
		return
	}
	a.used -= size
}

// Used returns the bytes currently reserved from the budget.
func (a *CapAllocator) Used() uintptr { return a.used }
