//go:build tinygo

package mmio

import (
	"runtime/volatile"
	"unsafe"
)

// Hardware accesses physical addresses through volatile loads and stores.
type Hardware struct{}

func (Hardware) Load32(addr uintptr) uint32 {
	return (*volatile.Register32)(unsafe.Pointer(addr)).Get()
}

func (Hardware) Store32(addr uintptr, value uint32) {
	(*volatile.Register32)(unsafe.Pointer(addr)).Set(value)
}
