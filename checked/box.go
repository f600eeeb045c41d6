package checked

import (
	"reflect"
	"unsafe"

	"github.com/oliverbestmann/erased/internal/assert"
)

// Box holds exclusive ownership of a single value, tagged with the id of its
// erased type. It behaves like the root package's Box, except that recovery
// with a wrong type argument returns an error instead of being undefined
// behavior.
//
// A Box discarded without IntoInner is simply abandoned, same as in the root
// package.
type Box struct {
	_   noCopy
	ptr unsafe.Pointer
	typ TypeID
}

// NewBox erases the type of the value behind ptr, takes ownership of it and
// records the type tag. A nil pointer panics.
func NewBox[T any](value *T) *Box {
	assert.NotNil(unsafe.Pointer(value), "checked.NewBox")

	return &Box{
		ptr: unsafe.Pointer(value),
		typ: TypeIDOf[T](),
	}
}

// IntoInner consumes the box and returns ownership of the value. On a type
// mismatch the box stays valid and unconsumed. Consuming a box twice panics.
func IntoInner[T any](box *Box) (*T, error) {
	assert.NotConsumed(box.ptr, "checked.IntoInner")

	if TypeIDOf[T]() != box.typ {
		return nil, mismatchError("checked.IntoInner", box.typ, reflect.TypeFor[T]())
	}

	ptr := box.ptr
	box.ptr = nil

	return (*T)(ptr), nil
}

// BoxRef returns a shared typed view of the value in the box. The result
// must not be written through.
func BoxRef[T any](box *Box) (*T, error) {
	assert.NotConsumed(box.ptr, "checked.BoxRef")

	if TypeIDOf[T]() != box.typ {
		return nil, mismatchError("checked.BoxRef", box.typ, reflect.TypeFor[T]())
	}

	return (*T)(box.ptr), nil
}

// BoxMut returns an exclusive typed view of the value in the box.
func BoxMut[T any](box *Box) (*T, error) {
	assert.NotConsumed(box.ptr, "checked.BoxMut")

	if TypeIDOf[T]() != box.typ {
		return nil, mismatchError("checked.BoxMut", box.typ, reflect.TypeFor[T]())
	}

	return (*T)(box.ptr), nil
}
