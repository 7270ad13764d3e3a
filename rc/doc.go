// Package rc provides reference-counted ownership handles for single values.
//
// # Overview
//
// This package implements deterministic, count-based value lifetime on top of
// a shared control block: a Strong handle owns the value and keeps it alive,
// a Weak handle observes it without extending its life. The destruction
// strategy for the value runs exactly once, when the last Strong handle is
// released, and the control block's storage is returned to its allocator
// exactly once, when no handle of either kind remains.
//
// Go's collector already reclaims memory; what it does not give you is an
// exact moment at which a shared resource is no longer referenced. That is
// the job of this package: files, pooled buffers, C-allocated memory, and
// similar resources get their cleanup invoked at a deterministic point, not
// whenever a finalizer happens to run.
//
// # Handles
//
// The main types provided by this package are:
//
//   - Strong[T]: owning reference; Clone/Release drive the strong count
//   - Weak[T]: non-owning observer; supports Expired and Upgrade
//   - Destroyer[T]: the destruction strategy invoked on adopted values
//   - Allocator: accounting policy for control-block storage
//
// Handles are plain values with explicit lifetime methods. Clone creates a
// new counted reference, Move transfers one without touching the count, and
// Release drops one. Copying a handle by assignment does NOT count; exactly
// one Release must be issued per Clone, Move target, Adopt, New, Upgrade, or
// Downgrade.
//
// # Block Kinds
//
// Two control-block strategies exist, chosen by the construction path:
//
//   - Adopt wraps a pointer the caller already has, together with a
//     Destroyer to run on it. This is the path for resources allocated
//     elsewhere or needing special cleanup.
//   - New, NewIn, and Build store the value inline in the block, next to the
//     counters, so one accounting unit covers value and bookkeeping. This is
//     the preferred path for newly constructed values.
//
// Both backings dereference identically through Get and Value.
//
// # Allocators
//
// The Allocator interface accounts for control-block storage. The Go runtime
// owns the memory itself; allocators express policy:
//
//   - Heap: the default, never fails, no accounting
//   - CountingAllocator: live-block tracking, the leak-check tool for tests
//   - CapAllocator: byte budget with failure past the cap
//
// A failed allocation aborts handle construction with no state retained; an
// adopted pointer stays caller-owned.
//
// # Destruction
//
// An adopted value is destroyed by its Destroyer. If none is supplied, the
// default strategy invokes Destroy() when the value implements Destroyable
// and otherwise simply drops the reference for the collector. Embedded
// values use the same default strategy in place, then have their storage
// zeroed.
//
// # Thread Safety
//
// Handles are not thread-safe. The counters are plain integers with no
// atomicity guarantee, so manipulating handles that share a block from
// multiple goroutines without external synchronization is a data race. This
// is the performance contract of the package; a concurrent variant would
// need atomic counters, not locks bolted onto this one.
//
// # Cycles
//
// A cycle of Strong handles keeps every block in the cycle alive forever.
// This package performs no cycle detection; break cycles with Weak handles.
//
// # Misuse Detection
//
// Releasing more references than exist (possible only through uncounted
// assignment copies) is reported through a pluggable panic hook, see
// SetPanicFn. With traceback enabled (SetTraceback or the RC_TRACEBACK
// environment variable) the report includes the stack that created the
// offending block.
package rc
