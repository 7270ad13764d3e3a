package rc

// Destroyer is the destruction strategy for an adopted value. It is invoked
// exactly once, when the last strong handle to the value is released.
type Destroyer[T any] interface {
	Destroy(*T)
}

// DestroyerFn is a function literal that is a Destroyer.
type DestroyerFn[T any] func(*T)

// Destroy invokes the function literal on the value.
func (fn DestroyerFn[T]) Destroy(p *T) { fn(p) }

// Destroyable values participate in default destruction: when no explicit
// Destroyer is supplied, Destroy is invoked on the value before its
// reference is dropped.
type Destroyable interface {
	Destroy()
}

// AdoptOptions controls how Adopt and ResetTo take ownership of a pointer.
// A nil options pointer selects all defaults.
type AdoptOptions[T any] struct {
	// Destroyer runs on the adopted pointer when the last strong handle
	// drops. If nil, default destruction is used: Destroy() when the value
	// implements Destroyable, otherwise nothing beyond dropping the
	// reference.
	Destroyer Destroyer[T]

	// Allocator accounts for the control-block storage. If nil, Heap is
	// used.
	Allocator Allocator
}

// defaultDestroy implements the ordinary-deletion analogue.
func defaultDestroy[T any](p *T) {
	if p == nil {
		return
	}
	if d, ok := any(p).(Destroyable); ok {
		d.Destroy()
	}
}
