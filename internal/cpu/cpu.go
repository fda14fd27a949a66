// Package cpu provides an implementation of the Sharp SM83, the
// CPU of the Game Boy. Instructions are decoded from a table of
// descriptors, their operands resolved by addressing mode, and
// executed by a routine per operation. Every memory access is
// clocked, so that the timer and DMA advance in lock-step with
// the instruction being executed.
package cpu

import (
	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
)

// Bus is the memory the CPU executes from. Every device the CPU
// can reach is mapped into it.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// Clock is advanced by the CPU for every M-cycle it consumes.
type Clock interface {
	Advance(mcycles int)
}

// Tracer is notified before each instruction is executed.
type Tracer interface {
	Trace(pc uint16, opcode uint8, instruction Instruction)
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	bus   Bus
	irq   *interrupts.Service
	clock Clock

	// Debug enables the LD B, B breakpoint.
	Debug bool
	// DebugBreakpoint is set when LD B, B is executed with Debug enabled.
	DebugBreakpoint bool

	tracer Tracer
	halted bool

	currentTick uint8
}

// NewCPU creates a new CPU, with the registers set to their
// state after the boot ROM has finished.
func NewCPU(bus Bus, irq *interrupts.Service, clock Clock) *CPU {
	c := &CPU{
		bus:   bus,
		irq:   irq,
		clock: clock,
	}
	c.Reset()
	return c
}

// Reset sets the registers to their power on state, and enables
// interrupts.
func (c *CPU) Reset() {
	c.PC = 0x0100
	c.SP = 0xFFFE
	c.A = 0x01
	c.F = 0xB0
	c.SetBC(0x0013)
	c.SetDE(0x00D8)
	c.SetHL(0x014D)
	c.halted = false
	c.irq.EnableInterrupts()
}

// SetTracer sets the Tracer notified before every instruction.
func (c *CPU) SetTracer(t Tracer) {
	c.tracer = t
}

// Halted returns true if the CPU is waiting for an interrupt.
func (c *CPU) Halted() bool {
	return c.halted
}

// Step executes a single instruction, or a single M-cycle when
// halted, followed by the interrupt check. It returns the number
// of M-cycles consumed. A non-nil error is a *Fault, after which
// execution cannot continue.
func (c *CPU) Step() (uint8, error) {
	// reset tick counter
	c.currentTick = 0

	if c.halted {
		// in halt mode, the CPU ticks but does not execute
		// any instructions, and is woken by any request
		c.tickCycle()
		if c.irq.HasRequests() {
			c.halted = false
		}
	} else if err := c.runInstruction(); err != nil {
		return c.currentTick, err
	}

	c.irq.InstructionDone()

	// did we get an interrupt?
	if c.irq.IME {
		c.executeInterrupt()
	}

	return c.currentTick, nil
}

// runInstruction fetches, decodes and executes the instruction at PC.
func (c *CPU) runInstruction() error {
	pc := c.PC
	opcode := c.readOperand()
	instruction := instructions[opcode]

	if c.tracer != nil {
		c.tracer.Trace(pc, opcode, instruction)
	}

	fault := func(reason error) error {
		return &Fault{PC: pc, Opcode: opcode, Kind: instruction.Kind, Mode: instruction.Mode, Reason: reason}
	}
	if instruction.Kind == Undefined {
		return fault(ErrUndefinedOpcode)
	}
	exec := executors[instruction.Kind]
	if exec == nil {
		return fault(ErrUnsupportedOperation)
	}
	op, err := c.resolve(instruction)
	if err != nil {
		return fault(err)
	}

	exec(c, instruction, op)

	// check for debug
	if c.Debug && opcode == 0x40 {
		c.DebugBreakpoint = true
	}
	return nil
}

// executeInterrupt services the highest priority pending
// interrupt, if any. Servicing takes 5 M-cycles: 2 internal,
// 2 for pushing PC, and 1 to jump to the vector.
func (c *CPU) executeInterrupt() {
	src, ok := c.irq.Next()
	if !ok {
		return
	}
	c.irq.DisableInterrupts()
	c.halted = false

	c.tickCycle()
	c.tickCycle()
	c.push16(c.PC)
	c.tickCycle()
	c.PC = src.Vector()
}

// tickCycle advances the clock by one M-cycle.
func (c *CPU) tickCycle() {
	c.clock.Advance(1)
	c.currentTick++
}

// readOperand reads the byte at PC, and increments PC.
func (c *CPU) readOperand() uint8 {
	value := c.readByte(c.PC)
	c.PC++
	return value
}

// readOperand16 reads the little-endian word at PC.
func (c *CPU) readOperand16() uint16 {
	lo := c.readOperand()
	hi := c.readOperand()
	return uint16(hi)<<8 | uint16(lo)
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	c.tickCycle()
	return c.bus.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.tickCycle()
	c.bus.Write(addr, val)
}
