// Package cordic drives the CORDIC co-processor of the STM32G4.
//
// An Operation carries the encoded arguments of one of the ten hardware
// functions. The driver programs the control register for it, writes the
// argument words, waits for the ready flag and decodes the result words into a
// Result:
//
//	c := cordic.New[int32](bus)
//	c.EnableClock()
//	res, err := c.Calculate(cordic.Cos(fixed.AngleFromDegrees[int32](30)))
package cordic

import (
	"fmt"
	"sync"

	"omibyte.io/cordic/chip/stm32g4"
	"omibyte.io/cordic/fixed"
	"omibyte.io/cordic/mmio"
	"omibyte.io/cordic/peripheral"
)

// PrecisionNormal is the default number of iterations divided by four.
const PrecisionNormal = 14

type Config struct {
	// Precision is the number of iterations divided by four, 1 to 15. Zero
	// selects PrecisionNormal.
	Precision uint8

	// PollLimit bounds the number of ready flag polls per calculation. Zero
	// polls until the flag is set. A calculation that timed out is not
	// cancelled: RDATA holds its results until the next argument write starts
	// a new one.
	PollLimit int
}

// CORDIC is the driver for one co-processor. T selects q1.15 (int16) or q1.31
// (int32) arguments and results.
type CORDIC[T Word] struct {
	mu     sync.Mutex
	regs   *stm32g4.CORDIC_TYPE
	rcc    *stm32g4.RCC_TYPE
	config Config
	half   bool
}

func New[T Word](bus mmio.Bus) *CORDIC[T] {
	return NewAt[T](bus, stm32g4.CORDIC_BASE, stm32g4.RCC_BASE)
}

// NewAt creates a driver for a co-processor and clock controller at the given
// base addresses.
func NewAt[T Word](bus mmio.Bus, cordicBase, rccBase uintptr) *CORDIC[T] {
	return &CORDIC[T]{
		regs:   stm32g4.NewCORDICAt(bus, cordicBase),
		rcc:    stm32g4.NewRCCAt(bus, rccBase),
		config: Config{Precision: PrecisionNormal},
		half:   fixed.Bits[T]() == 16,
	}
}

func (c *CORDIC[T]) EnableClock() {
	c.rcc.AHB1ENR.SetCORDICEN(true)
}

func (c *CORDIC[T]) DisableClock() {
	c.rcc.AHB1ENR.SetCORDICEN(false)
}

func (c *CORDIC[T]) Configure(config Config) error {
	if config.Precision == 0 {
		config.Precision = PrecisionNormal
	}
	if config.Precision > 15 || config.PollLimit < 0 {
		return peripheral.ErrInvalidConfig
	}

	c.mu.Lock()
	c.config = config
	c.mu.Unlock()
	return nil
}

func (c *CORDIC[T]) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.config
}

// Registers exposes the register block the driver operates on.
func (c *CORDIC[T]) Registers() *stm32g4.CORDIC_TYPE {
	return c.regs
}

// Calculate runs op and returns its results.
func (c *CORDIC[T]) Calculate(op *Operation[T]) (*Result[T], error) {
	if op == nil {
		return nil, peripheral.ErrInvalidArgument
	}

	res := op.NewResult()
	if err := c.CalculateInto(op, res); err != nil {
		return nil, err
	}
	return res, nil
}

// CalculateInto runs op and overwrites res with its results.
func (c *CORDIC[T]) CalculateInto(op *Operation[T], res *Result[T]) error {
	if op == nil || res == nil {
		return peripheral.ErrInvalidArgument
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.program(op)
	return c.run(op, res)
}

// CalculateBatch runs the operations back to back. The control register is
// only rewritten when the function or the scale changes between operations.
// On error the results of the operations completed so far are returned.
func (c *CORDIC[T]) CalculateBatch(ops []*Operation[T]) ([]*Result[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	results := make([]*Result[T], 0, len(ops))
	for i, op := range ops {
		if op == nil {
			return results, fmt.Errorf("operation %d: %w", i, peripheral.ErrInvalidArgument)
		}

		if i == 0 || op.desc != ops[i-1].desc || op.Scale() != ops[i-1].Scale() {
			c.program(op)
		}

		res := op.NewResult()
		if err := c.run(op, res); err != nil {
			return results, fmt.Errorf("operation %d: %w", i, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (c *CORDIC[T]) program(op *Operation[T]) {
	desc := op.desc
	csr := c.regs.CSR

	csr.SetFUNC(desc.Opcode)
	csr.SetARGSIZE(c.half)
	csr.SetRESSIZE(c.half)
	if c.half {
		// Both 16-bit values share a single word
		csr.SetNARGS(false)
		csr.SetNRES(false)
	} else {
		csr.SetNARGS(desc.Args == Two)
		csr.SetNRES(desc.Results == Two)
	}
	csr.SetPRECISION(c.config.Precision)
	csr.SetSCALE(op.Scale())

	// Polling mode only
	csr.SetDMAWEN(false)
	csr.SetDMAREN(false)
	csr.SetIEN(false)
}

func (c *CORDIC[T]) run(op *Operation[T], res *Result[T]) error {
	c.write(op)

	// Wait for the result
	for polls := 1; !c.regs.CSR.GetRRDY(); polls++ {
		if c.config.PollLimit > 0 && polls >= c.config.PollLimit {
			return fmt.Errorf("%v: not ready after %d polls: %w", op.desc.Function, polls, peripheral.ErrTimeout)
		}
	}

	c.read(op, res)
	return nil
}

func (c *CORDIC[T]) write(op *Operation[T]) {
	if c.half {
		c.regs.WDATA.SetARG(op.arg1.Word()&0xFFFF | op.arg2.Word()<<16)
		return
	}

	c.regs.WDATA.SetARG(op.arg1.Word())
	if op.desc.Args == Two {
		c.regs.WDATA.SetARG(op.arg2.Word())
	}
}

func (c *CORDIC[T]) read(op *Operation[T], res *Result[T]) {
	res.desc = op.desc

	if c.half {
		w := c.regs.RDATA.GetRES()
		res.SetResult(op.decode(0, T(int16(w))))
		if op.desc.Results == Two {
			res.SetSecondaryResult(op.decode(1, T(int16(w>>16))))
		}
		return
	}

	res.SetResult(op.decode(0, T(int32(c.regs.RDATA.GetRES()))))
	if op.desc.Results == Two {
		res.SetSecondaryResult(op.decode(1, T(int32(c.regs.RDATA.GetRES()))))
	}
}
