// Package timer provides an implementation of the Game Boy
// timer. It is the cycle clock of the system: every M-cycle
// consumed by the CPU advances the divider, which in turn
// drives TIMA at the frequency configured by the types.TAC
// register, and steps any attached DMA controller.
package timer

import (
	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

// TicksPerCycle is the number of clock ticks in one M-cycle.
const TicksPerCycle = 4

// divSeed is the value of the internal divider at power on.
const divSeed = 0xAC00

// Stepper is a device that is advanced once per M-cycle, such
// as the OAM DMA controller.
type Stepper interface {
	Step()
}

// Controller is a timer controller. It is used to generate
// interrupts at a specific frequency. The frequency can be
// configured using the types.TAC register.
type Controller struct {
	ticks uint64
	div   uint16

	tima uint8
	tma  uint8
	tac  uint8

	irq *interrupts.Service
	dma Stepper
}

// NewController returns a new timer controller, with DIV, TIMA,
// TMA and TAC registered in the given hardware register table.
func NewController(regs *types.HardwareRegisters, irq *interrupts.Service) *Controller {
	c := &Controller{
		irq: irq,
		div: divSeed,
	}
	// set up registers
	regs.RegisterHardware(
		types.DIV,
		func(v uint8) {
			// any write resets the divider, which may itself
			// produce a falling edge on the selected bit
			old := c.div
			c.div = 0
			c.checkEdge(old, c.div)
		}, func() uint8 {
			return uint8(c.div >> 8)
		},
	)
	regs.RegisterHardware(
		types.TIMA,
		func(v uint8) {
			c.tima = v
		}, func() uint8 {
			return c.tima
		},
	)
	regs.RegisterHardware(
		types.TMA,
		func(v uint8) {
			c.tma = v
		}, func() uint8 {
			return c.tma
		},
	)
	regs.RegisterHardware(
		types.TAC,
		func(v uint8) {
			// 00 = bit 9
			// 01 = bit 3
			// 10 = bit 5
			// 11 = bit 7
			c.tac = v & 0x07
		}, func() uint8 {
			return c.tac | 0b11111000
		},
	)

	return c
}

// AttachDMA sets the device stepped once per M-cycle.
func (c *Controller) AttachDMA(s Stepper) {
	c.dma = s
}

// Advance advances the clock by the given number of M-cycles.
func (c *Controller) Advance(mcycles int) {
	for i := 0; i < mcycles; i++ {
		for j := 0; j < TicksPerCycle; j++ {
			c.tick()
		}
		if c.dma != nil {
			c.dma.Step()
		}
	}
}

// tick advances the clock by a single tick.
func (c *Controller) tick() {
	c.ticks++
	old := c.div
	c.div++
	c.checkEdge(old, c.div)
}

// checkEdge increments TIMA when the bit selected by TAC falls
// from high to low between old and new, and the timer is enabled.
func (c *Controller) checkEdge(old, new uint16) {
	if !c.Enabled() {
		return
	}
	bit := bits[c.tac&0b11]
	if old&bit != 0 && new&bit == 0 {
		c.incrementTIMA()
	}
}

func (c *Controller) incrementTIMA() {
	if c.tima == 0xFF {
		c.tima = c.tma
		c.irq.Request(interrupts.TimerFlag)
		return
	}
	c.tima++
}

// Enabled reports whether TIMA is counting (TAC bit 2).
func (c *Controller) Enabled() bool {
	return c.tac&types.Bit2 != 0
}

// Ticks returns the number of clock ticks since power on.
func (c *Controller) Ticks() uint64 {
	return c.ticks
}

// Cycles returns the number of M-cycles since power on.
func (c *Controller) Cycles() uint64 {
	return c.ticks / TicksPerCycle
}

// Divider returns the full 16-bit internal divider.
func (c *Controller) Divider() uint16 {
	return c.div
}

var bits = [4]uint16{512, 8, 32, 128}
