package rc

// Weak is a non-owning observer: it never keeps the value alive, only the
// bookkeeping block, so liveness can be checked after the owners are gone.
// The zero value is an empty, expired handle.
//
// Weak handles are obtained from Strong.Downgrade or by cloning another
// weak handle; they are never created standalone.
type Weak[T any] struct {
	handle[T]
}

// Clone returns a new observer of the same value, incrementing the weak
// count. Cloning an empty handle yields an empty handle.
func (w Weak[T]) Clone() Weak[T] {
	if w.cb != nil {
		w.cb.counts().weak++
	}
	return w
}

// Move transfers the observation out of w, leaving it empty. The count is
// untouched.
func (w *Weak[T]) Move() Weak[T] {
	out := Weak[T]{w.handle}
	w.ptr, w.cb = nil, nil
	return out
}

// Release drops this observer and empties it. When the last handle of
// either kind drops, the block storage is returned to the allocator.
// Releasing an empty handle is a no-op.
func (w *Weak[T]) Release() {
	cb := w.cb
	w.ptr, w.cb = nil, nil
	if cb == nil {
		return
	}
	c := cb.counts()
	if c.weak == 0 {
		misuse(ErrWeakUnderflow, cb.origin())
		return
	}
	c.weak--
	if c.weak == 0 && c.strong == 0 {
		cb.releaseStorage()
	}
}

// Swap exchanges the referents of two handles. No counts change.
func (w *Weak[T]) Swap(other *Weak[T]) {
	w.handle, other.handle = other.handle, w.handle
}

// UseCount reports how many strong owners remain, not how many observers
// exist. 0 for an empty handle.
func (w Weak[T]) UseCount() int {
	if w.cb == nil {
		return 0
	}
	return w.cb.counts().strong
}

// Expired reports whether the observed value has been destroyed, or the
// handle is empty.
func (w Weak[T]) Expired() bool { return w.UseCount() == 0 }

// Upgrade attempts to obtain an owning handle to the observed value. It
// reports false once the value has been destroyed; on success the strong
// count is one higher than before the call.
func (w Weak[T]) Upgrade() (Strong[T], bool) {
	if w.cb == nil {
		return Strong[T]{}, false
	}
	c := w.cb.counts()
	if c.strong == 0 {
		return Strong[T]{}, false
	}
	c.strong++
	return Strong[T]{w.handle}, true
}
