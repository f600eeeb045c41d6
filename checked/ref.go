package checked

import (
	"reflect"
	"unsafe"

	"github.com/oliverbestmann/erased/internal/assert"
)

// Ref carries a shared reference to a value owned elsewhere, tagged with the
// id of its erased type. Like the root package's Ref it is a plain value and
// may be copied freely, and Refs of differently typed values can live in one
// homogeneous collection.
type Ref struct {
	ptr unsafe.Pointer
	typ TypeID
}

// NewRef erases the type of a shared reference and records the type tag.
// A nil pointer panics.
func NewRef[T any](value *T) Ref {
	assert.NotNil(unsafe.Pointer(value), "checked.NewRef")

	return Ref{
		ptr: unsafe.Pointer(value),
		typ: TypeIDOf[T](),
	}
}

// Get returns the typed view of the referenced value. The result compares
// equal to the pointer given to NewRef and must not be written through.
func Get[T any](ref Ref) (*T, error) {
	if TypeIDOf[T]() != ref.typ {
		return nil, mismatchError("checked.Get", ref.typ, reflect.TypeFor[T]())
	}

	return (*T)(ref.ptr), nil
}
