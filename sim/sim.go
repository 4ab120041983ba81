// Package sim emulates the register behaviour of the STM32G4 CORDIC and the
// clock gate in RCC so the driver can run on a development host.
//
// The model follows the scaling conventions of the reference manual: angles are
// in units of π, the SCALE field n divides arguments by 2^n and results by 2^n
// (2^(n+1) for the natural logarithm). The calculation latency is one control
// register poll per PRECISION step.
package sim

import (
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"omibyte.io/cordic/chip/stm32g4"
	"omibyte.io/cordic/mmio"
)

const (
	csrOffset   = 0x0
	wdataOffset = 0x4
	rdataOffset = 0x8

	ahb1enrOffset = 0x48
	cordicEnBit   = 1 << 3

	csrReset   = 0x00000050
	arg2Reset  = 0x7FFFFFFF
	rrdyBit    = 1 << 31
	csrRWMask  = 0x007F07FF
	argSizeBit = 1 << 22
	resSizeBit = 1 << 21
	nargsBit   = 1 << 20
	nresBit    = 1 << 19
)

// Stats counts the traffic the device has seen.
type Stats struct {
	Calculations int
	Writes       int
	Reads        int
	Polls        int
}

// Device is a bus with a CORDIC and RCC behind their reset addresses. Accesses
// to any other address go to plain memory.
type Device struct {
	mu  sync.Mutex
	log *zap.Logger
	mem *mmio.Memory

	cordicBase uintptr
	rccBase    uintptr

	ahb1enr uint32

	csr     uint32
	args    [2]uint32
	written int
	results [2]uint32
	pending int
	next    int
	busy    int
	stall   bool

	stats Stats
}

var _ mmio.Bus = (*Device)(nil)

// New creates a device at the STM32G4 reset addresses. A nil logger discards
// all output.
func New(log *zap.Logger) *Device {
	return NewAt(log, stm32g4.CORDIC_BASE, stm32g4.RCC_BASE)
}

func NewAt(log *zap.Logger, cordicBase, rccBase uintptr) *Device {
	if log == nil {
		log = zap.NewNop()
	}
	return &Device{
		log:        log,
		mem:        mmio.NewMemory(),
		cordicBase: cordicBase,
		rccBase:    rccBase,
		ahb1enr:    0x100,
		csr:        csrReset,
		args:       [2]uint32{0, arg2Reset},
	}
}

// Stall keeps the ready flag cleared while enabled.
func (d *Device) Stall(stall bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stall = stall
}

func (d *Device) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

func (d *Device) Load32(addr uintptr) uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch addr {
	case d.rccBase + ahb1enrOffset:
		return d.ahb1enr
	case d.cordicBase + csrOffset:
		if !d.clocked() {
			return 0
		}
		return d.readCSR()
	case d.cordicBase + wdataOffset:
		// Write only
		return 0
	case d.cordicBase + rdataOffset:
		if !d.clocked() {
			return 0
		}
		return d.readRDATA()
	}
	return d.mem.Load32(addr)
}

func (d *Device) Store32(addr uintptr, value uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch addr {
	case d.rccBase + ahb1enrOffset:
		d.ahb1enr = value
		d.log.Debug("rcc", zap.Bool("cordicen", value&cordicEnBit != 0))
	case d.cordicBase + csrOffset:
		if !d.clocked() {
			d.log.Warn("csr write ignored, clock disabled", zap.Uint32("value", value))
			return
		}
		d.csr = value & csrRWMask
		d.written = 0
		d.log.Debug("csr", zap.Uint32("value", d.csr))
	case d.cordicBase + wdataOffset:
		if !d.clocked() {
			d.log.Warn("wdata write ignored, clock disabled", zap.Uint32("value", value))
			return
		}
		d.writeWDATA(value)
	case d.cordicBase + rdataOffset:
		// Read only
	default:
		d.mem.Store32(addr, value)
	}
}

func (d *Device) clocked() bool {
	return d.ahb1enr&cordicEnBit != 0
}

func (d *Device) readCSR() uint32 {
	v := d.csr
	if d.pending == 0 {
		return v
	}

	d.stats.Polls++
	if !d.stall && d.busy > 0 {
		d.busy--
	}
	if !d.stall && d.busy == 0 {
		v |= rrdyBit
	}
	return v
}

func (d *Device) readRDATA() uint32 {
	d.stats.Reads++
	if d.pending == 0 {
		d.log.Warn("rdata read without result")
		return d.results[0]
	}
	if d.stall {
		d.log.Warn("rdata read while stalled")
		return 0
	}

	// Reading early inserts wait states until the result is there
	d.busy = 0

	v := d.results[d.next]
	d.next++
	d.pending--
	d.log.Debug("rdata", zap.Uint32("value", v), zap.Int("pending", d.pending))
	return v
}

func (d *Device) writeWDATA(value uint32) {
	d.stats.Writes++
	d.log.Debug("wdata", zap.Uint32("value", value))

	if d.csr&argSizeBit != 0 {
		// Two 16-bit arguments in one word
		d.args[0] = uint32(int32(int16(value)))
		d.args[1] = uint32(int32(int16(value >> 16)))
		d.start()
		return
	}

	d.args[d.written] = value
	d.written++
	if d.csr&nargsBit == 0 || d.written == 2 {
		d.start()
	}
}

func (d *Device) start() {
	d.written = 0

	fn := stm32g4.CORDIC_CSR_REG_FUNC(d.csr & 0xF)
	precision := int(d.csr>>4) & 0xF
	scale := int(d.csr>>8) & 0x7

	var frac int
	if d.csr&argSizeBit != 0 {
		frac = 15
	} else {
		frac = 31
	}
	x := math.Ldexp(float64(int32(d.args[0])), -frac)
	y := math.Ldexp(float64(int32(d.args[1])), -frac)

	r1, r2 := Evaluate(fn, scale, x, y)
	if math.IsNaN(r1) || math.IsNaN(r2) {
		d.log.Warn("argument outside of the function domain",
			zap.Stringer("func", funcName(fn)),
			zap.Float64("x", x),
			zap.Float64("y", y),
			zap.Int("scale", scale))
	}

	// Every iteration adds about one bit
	bits := 4 * precision
	if d.csr&resSizeBit != 0 {
		q1, q2 := encode(r1, bits, 15), encode(r2, bits, 15)
		d.results[0] = uint32(uint16(q1)) | uint32(uint16(q2))<<16
		d.pending = 1
	} else {
		d.results[0] = uint32(encode(r1, bits, 31))
		d.results[1] = uint32(encode(r2, bits, 31))
		d.pending = 1
		if d.csr&nresBit != 0 {
			d.pending = 2
		}
	}

	d.next = 0
	d.busy = precision
	d.stats.Calculations++
	d.log.Debug("calculate",
		zap.Stringer("func", funcName(fn)),
		zap.Float64("x", x),
		zap.Float64("y", y),
		zap.Int("scale", scale),
		zap.Float64("r1", r1),
		zap.Float64("r2", r2))
}

// Evaluate computes both results of a function for the unscaled hardware
// arguments x and y the way the co-processor defines them.
func Evaluate(fn stm32g4.CORDIC_CSR_REG_FUNC, scale int, x, y float64) (r1, r2 float64) {
	n := float64(scale)
	up := math.Exp2(n)
	down := math.Exp2(-n)

	switch fn {
	case stm32g4.CORDIC_CSR_REG_FUNC_COSINE:
		return y * math.Cos(x*math.Pi), y * math.Sin(x*math.Pi)
	case stm32g4.CORDIC_CSR_REG_FUNC_SINE:
		return y * math.Sin(x*math.Pi), y * math.Cos(x*math.Pi)
	case stm32g4.CORDIC_CSR_REG_FUNC_PHASE:
		return math.Atan2(y, x) / math.Pi, math.Hypot(x, y)
	case stm32g4.CORDIC_CSR_REG_FUNC_MODULUS:
		return math.Hypot(x, y), math.Atan2(y, x) / math.Pi
	case stm32g4.CORDIC_CSR_REG_FUNC_ARCTANGENT:
		return down * math.Atan(x*up) / math.Pi, 0
	case stm32g4.CORDIC_CSR_REG_FUNC_HYPERBOLICCOSINE:
		return down * math.Cosh(x*up), down * math.Sinh(x*up)
	case stm32g4.CORDIC_CSR_REG_FUNC_HYPERBOLICSINE:
		return down * math.Sinh(x*up), down * math.Cosh(x*up)
	case stm32g4.CORDIC_CSR_REG_FUNC_ARCTANH:
		return down * math.Atanh(x*up), 0
	case stm32g4.CORDIC_CSR_REG_FUNC_NATURALLOGARITHM:
		return down / 2 * math.Log(x*up), 0
	case stm32g4.CORDIC_CSR_REG_FUNC_SQUAREROOT:
		return down * math.Sqrt(x*up), 0
	}
	return math.NaN(), math.NaN()
}

// encode rounds r to the given number of significant fractional bits and
// saturates it into a signed word with frac fractional bits.
func encode(r float64, bits, frac int) int32 {
	if math.IsNaN(r) {
		return 0
	}
	if bits < frac {
		r = math.Ldexp(math.Round(math.Ldexp(r, bits)), -bits)
	}

	v := math.Round(math.Ldexp(r, frac))
	hi := math.Ldexp(1, frac) - 1
	switch {
	case v >= hi:
		return int32(hi)
	case v <= -hi-1:
		return int32(-hi - 1)
	}
	return int32(v)
}

type funcName stm32g4.CORDIC_CSR_REG_FUNC

var funcNames = [...]string{
	"cosine",
	"sine",
	"phase",
	"modulus",
	"arctangent",
	"hyperbolic-cosine",
	"hyperbolic-sine",
	"arctanh",
	"natural-logarithm",
	"square-root",
}

func (f funcName) String() string {
	if int(f) < len(funcNames) {
		return funcNames[f]
	}
	return fmt.Sprintf("func(%d)", uint32(f))
}
