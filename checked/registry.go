// Package checked provides the same type-erasure wrappers as the root
// package, with a small integer type tag stored next to the handle. Recovery
// verifies the tag and reports a mismatch as an error instead of running
// into undefined behavior.
//
// The cost over the unchecked wrappers is one word of storage per wrapper
// and one atomic map load plus an integer compare per recovery.
package checked

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"sync/atomic"
)

// TypeID identifies a concrete type that has been erased through this
// package. Ids are handed out in registration order, starting at 1.
type TypeID uint32

var typeIds atomic.Pointer[map[reflect.Type]TypeID]

func init() {
	// initialize the lookup table
	typeIds.Store(&map[reflect.Type]TypeID{})
}

// TypeIDOf returns the id of the type T, registering it on first use.
// The id of a type is stable for the lifetime of the process.
func TypeIDOf[T any]() TypeID {
	return typeIDOf(reflect.TypeFor[T]())
}

func typeIDOf(ty reflect.Type) TypeID {
	for {
		previousIds := typeIds.Load()
		if cached, ok := (*previousIds)[ty]; ok {
			return cached
		}

		newId := TypeID(len(*previousIds) + 1)

		newIds := maps.Clone(*previousIds)
		newIds[ty] = newId

		if typeIds.CompareAndSwap(previousIds, &newIds) {
			slog.Debug(
				"New erased type registered",
				slog.String("type", ty.String()),
				slog.Int("id", int(newId)),
			)

			return newId
		}
	}
}

// typeNameOf resolves an id back to the name of the registered type. Only
// used to build error messages, so the linear scan does not matter.
func typeNameOf(id TypeID) string {
	for ty, tyId := range *typeIds.Load() {
		if tyId == id {
			return ty.String()
		}
	}

	return fmt.Sprintf("TypeID(%d)", id)
}

// ErrTypeMismatch is returned when the type argument of a recovery operation
// does not name the type the wrapper was created with.
var ErrTypeMismatch = errors.New("erased type mismatch")

func mismatchError(op string, stored TypeID, requested reflect.Type) error {
	return fmt.Errorf("%s: value of type %s recovered as %s: %w",
		op, typeNameOf(stored), requested, ErrTypeMismatch)
}
