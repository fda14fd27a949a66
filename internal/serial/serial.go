// Package serial provides the Game Boy serial port. Transfers
// complete as soon as they are requested, which is enough for
// test ROMs that report their results over the link cable.
package serial

import (
	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

// Observer is notified of every byte transmitted by the Controller.
type Observer interface {
	Transmit(b uint8)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(b uint8)

// Transmit calls f(b).
func (f ObserverFunc) Transmit(b uint8) { f(b) }

// Controller is the serial controller. It is responsible for sending and
// receiving data to and from devices.
//
// Writing SC with both the transfer request (bit 7) and the internal
// clock (bit 0) set shifts all 8 bits of SB out to the attached device,
// and 8 bits in from it. The transfer request is then cleared, and a
// serial interrupt is requested.
type Controller struct {
	data    uint8 // types.SB
	control uint8 // types.SC

	irq            *interrupts.Service
	AttachedDevice Device // the device that is attached to this controller.
	observers      []Observer
}

// NewController creates a new Controller, with SB and SC registered in
// the given hardware register table.
//
// By default, the Controller is attached to a nullDevice, which acts as if
// there is no device attached. This is the same as if the device is not
// plugged in. If you want to attach a device, use the Controller.Attach method.
func NewController(regs *types.HardwareRegisters, irq *interrupts.Service) *Controller {
	c := &Controller{
		irq:            irq,
		AttachedDevice: nullDevice{},
	}
	regs.RegisterHardware(
		types.SB,
		func(v uint8) {
			c.data = v
		}, func() uint8 {
			return c.data
		},
	)
	regs.RegisterHardware(
		types.SC,
		func(v uint8) {
			c.control = v & (types.Bit7 | types.Bit0)
			if c.control == types.Bit7|types.Bit0 {
				c.transfer()
			}
		}, func() uint8 {
			return c.control | 0x7E // bits 1-6 are always set
		},
	)
	return c
}

// Attach attaches a Device to the Controller.
func (c *Controller) Attach(d Device) {
	c.AttachedDevice = d
}

// Observe adds an Observer notified of every transmitted byte.
func (c *Controller) Observe(o Observer) {
	c.observers = append(c.observers, o)
}

// transfer exchanges SB with the attached device.
func (c *Controller) transfer() {
	for _, o := range c.observers {
		o.Transmit(c.data)
	}

	for i := 0; i < 8; i++ {
		c.AttachedDevice.Receive(c.data&types.Bit7 == types.Bit7)
		c.data <<= 1
		if c.AttachedDevice.Send() {
			c.data |= 1
		}
	}

	c.control &^= types.Bit7
	c.irq.Request(interrupts.SerialFlag)
}
