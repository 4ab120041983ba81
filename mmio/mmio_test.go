package mmio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegister32(t *testing.T) {
	mem := NewMemory()
	reg := NewRegister32(mem, 0x40020C00)

	assert.Equal(t, uintptr(0x40020C00), reg.Address())
	assert.Equal(t, uint32(0), reg.Get())

	reg.Set(0x00000050)
	assert.Equal(t, uint32(0x50), reg.Get())

	reg.SetBits(1 << 31)
	assert.True(t, reg.HasBits(1<<31))
	assert.Equal(t, uint32(0x80000050), mem.Load32(0x40020C00))

	reg.ClearBits(1 << 31)
	assert.False(t, reg.HasBits(1<<31))

	// PRECISION field
	reg.ReplaceBits(0x3, 0xF, 4)
	assert.Equal(t, uint32(0x30), reg.Get())

	// Value bits outside of the mask are dropped
	reg.ReplaceBits(0x1F, 0x7, 8)
	assert.Equal(t, uint32(0x730), reg.Get())
}

func TestMemoryAlignment(t *testing.T) {
	var mem Memory
	mem.Store32(0x1002, 0xCAFE)
	assert.Equal(t, uint32(0xCAFE), mem.Load32(0x1000))
	assert.Equal(t, uint32(0), mem.Load32(0x1004))
}
