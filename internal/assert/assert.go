package assert

import (
	"fmt"
	"unsafe"
)

func NotNil(ptr unsafe.Pointer, op string) {
	if ptr == nil {
		panic(fmt.Sprintf("%s: nil value", op))
	}
}

func NotConsumed(ptr unsafe.Pointer, op string) {
	if ptr == nil {
		panic(fmt.Sprintf("%s: box was already consumed", op))
	}
}
