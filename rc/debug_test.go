package rc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPanicFn_StrongUnderflow tests that releasing an uncounted assignment
// copy is caught instead of corrupting the count.
func TestPanicFn_StrongUnderflow(t *testing.T) {
	var got error
	SetPanicFn(func(err error) { got = err })
	defer ResetPanicFn()

	s := New(1)
	dup := s // uncounted copy: assignment does not clone
	s.Release()
	dup.Release()

	require.ErrorIs(t, got, ErrStrongUnderflow)
}

// TestPanicFn_WeakUnderflow tests the observer-side counterpart.
func TestPanicFn_WeakUnderflow(t *testing.T) {
	var got error
	SetPanicFn(func(err error) { got = err })
	defer ResetPanicFn()

	s := New(1)
	defer s.Release()

	w := s.Downgrade()
	dup := w
	w.Release()
	dup.Release()

	require.ErrorIs(t, got, ErrWeakUnderflow)
}

// TestTraceback_IncludesCreationSite tests that misuse reports carry the
// block's creation stack when recording is on.
func TestTraceback_IncludesCreationSite(t *testing.T) {
	SetTraceback(true)
	defer SetTraceback(false)

	var got error
	SetPanicFn(func(err error) { got = err })
	defer ResetPanicFn()

	s := New(1)
	dup := s
	s.Release()
	dup.Release()

	require.ErrorIs(t, got, ErrStrongUnderflow)
	assert.True(t, strings.Contains(got.Error(), "block created at:"),
		"report should include the creation stack")
	assert.True(t, strings.Contains(got.Error(), "TestTraceback_IncludesCreationSite"),
		"creation stack should name the constructing function")
}

// TestTraceback_OffByDefault tests that blocks carry no stack unless
// recording is enabled.
func TestTraceback_OffByDefault(t *testing.T) {
	var got error
	SetPanicFn(func(err error) { got = err })
	defer ResetPanicFn()

	s := New(1)
	dup := s
	s.Release()
	dup.Release()

	require.ErrorIs(t, got, ErrStrongUnderflow)
	assert.False(t, strings.Contains(got.Error(), "block created at:"))
}

// TestDefaultPanic tests that misuse panics when no hook is installed.
func TestDefaultPanic(t *testing.T) {
	s := New(1)
	dup := s
	s.Release()

	assert.Panics(t, func() { dup.Release() })
}
