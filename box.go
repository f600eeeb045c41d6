// Package erased provides wrappers that carry a value or a reference of a
// statically unknown type behind an untyped, pointer-sized handle.
//
// The handle carries no runtime type information. Every recovery operation
// simply reinterprets the handle as the type given by its type argument;
// supplying a type that differs from the one used at erasure is undefined
// behavior. Always spell the type argument out explicitly at the call site,
// even where it could be inferred, so that an accidental change of the
// inferred type does not silently corrupt memory.
//
// For a variant that trades a word of storage and an integer compare for a
// checked recovery, see the checked subpackage.
package erased

import (
	"unsafe"

	"github.com/oliverbestmann/erased/internal/assert"
)

// Box holds exclusive ownership of a single value whose static type has
// been erased.
//
// Ownership leaves a Box only through IntoInner. A Box that is discarded
// without IntoInner is simply abandoned: this layer runs no cleanup of its
// own. That is not an error, the garbage collector still sees the handle and
// will reclaim the value eventually.
type Box struct {
	_   noCopy
	ptr unsafe.Pointer
}

// NewBox erases the type of the value behind ptr and takes ownership of it.
// The value must not be accessed through the original pointer while the Box
// is alive. No copy of the value is made.
//
// NewBox cannot fail, a nil pointer panics.
func NewBox[T any](value *T) *Box {
	assert.NotNil(unsafe.Pointer(value), "erased.NewBox")
	return &Box{ptr: unsafe.Pointer(value)}
}

// IntoInner consumes the box and returns ownership of the value. This is the
// only operation that hands the value back out; the caller is responsible
// for it from then on. Consuming a box twice panics.
//
// The type argument T must match the T the box was created with in NewBox
// exactly. Recovering a different type is undefined behavior.
func IntoInner[T any](box *Box) *T {
	assert.NotConsumed(box.ptr, "erased.IntoInner")

	ptr := box.ptr
	box.ptr = nil

	return (*T)(ptr)
}

// BoxRef returns a shared typed view of the value in the box. The result is
// valid as long as the box is alive and not consumed, and must not be
// written through.
//
// The type argument T must match the T the box was created with exactly.
func BoxRef[T any](box *Box) *T {
	assert.NotConsumed(box.ptr, "erased.BoxRef")
	return (*T)(box.ptr)
}

// BoxMut returns an exclusive typed view of the value in the box. While the
// result is in use no other view of the same box may be.
//
// The type argument T must match the T the box was created with exactly.
func BoxMut[T any](box *Box) *T {
	assert.NotConsumed(box.ptr, "erased.BoxMut")
	return (*T)(box.ptr)
}
