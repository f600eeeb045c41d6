package erased

import (
	"unsafe"

	"github.com/oliverbestmann/erased/internal/assert"
)

// Mut carries an exclusive reference to a value owned elsewhere, with the
// type of the value erased.
//
// The exclusivity contract of the original reference stays in force for the
// whole life of the Mut: no other access path to the value may be used while
// the Mut or any view recovered from it is alive. The Mut must not outlive
// the reference it was created from. It never owns the value, so there is
// nothing to release.
//
// A Mut must not be copied, exclusivity does not duplicate.
type Mut struct {
	_   noCopy
	ptr unsafe.Pointer
}

// NewMut erases the type of an exclusive reference. The original owner keeps
// ownership of the value. A nil pointer panics.
func NewMut[T any](value *T) *Mut {
	assert.NotNil(unsafe.Pointer(value), "erased.NewMut")
	return &Mut{ptr: unsafe.Pointer(value)}
}

// MutGet returns an exclusive typed view of the referenced value, valid for
// as long as the original reference is. Writes through the result are
// visible through the original reference.
//
// The type argument T must match the T the Mut was created with in NewMut
// exactly. Recovering a different type is undefined behavior.
func MutGet[T any](m *Mut) *T {
	return (*T)(m.ptr)
}

// MutRef returns a shared typed view of the referenced value, valid for as
// long as the original reference is. The result must not be written through.
//
// The type argument T must match the T the Mut was created with exactly.
func MutRef[T any](m *Mut) *T {
	return (*T)(m.ptr)
}
