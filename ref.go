package erased

import (
	"unsafe"

	"github.com/oliverbestmann/erased/internal/assert"
)

// Ref carries a shared reference to a value owned elsewhere, with the type
// of the value erased.
//
// A Ref is a plain value and may be copied freely: it only grants read
// access, so a bit-copy of the handle is always sound. Every copy carries
// the same validity bound and the same type obligation. Because the shape of
// a Ref does not depend on the erased type, Refs made from values of
// different types can live in one homogeneous slice or map.
//
// The sharing contract of the original reference stays in force: the value
// must not be mutated through any path while a Ref to it is alive, and the
// Ref must not outlive the reference it was created from.
type Ref struct {
	ptr unsafe.Pointer
}

// NewRef erases the type of a shared reference. A nil pointer panics.
func NewRef[T any](value *T) Ref {
	assert.NotNil(unsafe.Pointer(value), "erased.NewRef")
	return Ref{ptr: unsafe.Pointer(value)}
}

// Get returns the typed view of the referenced value. The result compares
// equal to the pointer given to NewRef and must not be written through.
//
// The type argument T must match the T the Ref was created with in NewRef
// exactly. Recovering a different type is undefined behavior.
func Get[T any](ref Ref) *T {
	return (*T)(ref.ptr)
}
