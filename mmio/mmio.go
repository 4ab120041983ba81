// Package mmio provides 32-bit memory mapped register access over a Bus so the
// same peripheral code can drive real silicon or a host side model.
package mmio

import "sync"

// Bus performs 32-bit loads and stores at absolute addresses.
type Bus interface {
	Load32(addr uintptr) uint32
	Store32(addr uintptr, value uint32)
}

// Register32 is a single 32-bit register on a bus.
type Register32 struct {
	bus  Bus
	addr uintptr
}

func NewRegister32(bus Bus, addr uintptr) Register32 {
	return Register32{bus: bus, addr: addr}
}

func (r Register32) Address() uintptr {
	return r.addr
}

func (r Register32) Get() uint32 {
	return r.bus.Load32(r.addr)
}

func (r Register32) Set(value uint32) {
	r.bus.Store32(r.addr, value)
}

// SetBits sets all bits of value in the register.
func (r Register32) SetBits(value uint32) {
	r.Set(r.Get() | value)
}

func (r Register32) ClearBits(value uint32) {
	r.Set(r.Get() &^ value)
}

// HasBits reports whether any bit of value is set.
func (r Register32) HasBits(value uint32) bool {
	return r.Get()&value != 0
}

// ReplaceBits replaces the bits of mask at position pos with value.
func (r Register32) ReplaceBits(value uint32, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | (value&mask)<<pos)
}

// Memory is a sparse word addressed memory. Unwritten words read as zero.
type Memory struct {
	mu    sync.Mutex
	words map[uintptr]uint32
}

func NewMemory() *Memory {
	return &Memory{words: map[uintptr]uint32{}}
}

func (m *Memory) Load32(addr uintptr) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.words[addr&^3]
}

func (m *Memory) Store32(addr uintptr, value uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.words == nil {
		m.words = map[uintptr]uint32{}
	}
	m.words[addr&^3] = value
}
