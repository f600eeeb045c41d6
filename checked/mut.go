package checked

import (
	"reflect"
	"unsafe"

	"github.com/oliverbestmann/erased/internal/assert"
)

// Mut carries an exclusive reference to a value owned elsewhere, tagged with
// the id of its erased type. The exclusivity contract of the original
// reference stays in force for the life of the Mut, and the Mut must not
// outlive it. Must not be copied.
type Mut struct {
	_   noCopy
	ptr unsafe.Pointer
	typ TypeID
}

// NewMut erases the type of an exclusive reference and records the type tag.
// The original owner keeps ownership of the value. A nil pointer panics.
func NewMut[T any](value *T) *Mut {
	assert.NotNil(unsafe.Pointer(value), "checked.NewMut")

	return &Mut{
		ptr: unsafe.Pointer(value),
		typ: TypeIDOf[T](),
	}
}

// MutGet returns an exclusive typed view of the referenced value. Writes
// through the result are visible through the original reference.
func MutGet[T any](m *Mut) (*T, error) {
	if TypeIDOf[T]() != m.typ {
		return nil, mismatchError("checked.MutGet", m.typ, reflect.TypeFor[T]())
	}

	return (*T)(m.ptr), nil
}

// MutRef returns a shared typed view of the referenced value. The result
// must not be written through.
func MutRef[T any](m *Mut) (*T, error) {
	if TypeIDOf[T]() != m.typ {
		return nil, mismatchError("checked.MutRef", m.typ, reflect.TypeFor[T]())
	}

	return (*T)(m.ptr), nil
}
