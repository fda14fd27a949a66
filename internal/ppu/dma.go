package ppu

import (
	"github.com/thelolagemann/gomeboy-core/internal/ram"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

const (
	// dmaLength is the number of bytes copied by a transfer.
	dmaLength = 0xA0
	// dmaStartDelay is the number of M-cycles between writing
	// to types.DMA and the first byte being copied.
	dmaStartDelay = 2
)

// Reader is the memory a DMA transfer copies from.
type Reader interface {
	Read(addr uint16) uint8
}

// DMA is the OAM DMA controller. Writing to types.DMA starts a
// transfer of 0xA0 bytes from value<<8 into OAM, one byte per
// M-cycle, during which the CPU cannot access OAM.
type DMA struct {
	enabled bool

	delay  uint8
	offset uint16
	source uint16
	value  uint8

	bus Reader
	oam ram.RAM
}

// NewDMA returns a new DMA controller copying into oam, with
// types.DMA registered in the given hardware register table.
func NewDMA(regs *types.HardwareRegisters, oam ram.RAM) *DMA {
	d := &DMA{
		oam: oam,
	}
	// setup register
	regs.RegisterHardware(
		types.DMA,
		func(v uint8) {
			d.value = v
			d.source = uint16(v) << 8
			d.offset = 0
			d.delay = dmaStartDelay
			d.enabled = true
		},
		func() uint8 {
			return d.value
		},
	)
	return d
}

// AttachBus sets the memory transfers are copied from.
func (d *DMA) AttachBus(bus Reader) {
	d.bus = bus
}

// Step advances the transfer by one M-cycle.
func (d *DMA) Step() {
	if !d.enabled || d.bus == nil {
		return
	}
	if d.delay > 0 {
		d.delay--
		return
	}

	currentSource := d.source + d.offset
	// sources past WRAM read from the WRAM mirror
	if currentSource >= types.EchoStart {
		currentSource &^= 0x2000
	}
	// write directly to OAM as the bus blocks it
	d.oam.Write(d.offset, d.bus.Read(currentSource))

	d.offset++
	if d.offset >= dmaLength {
		d.enabled = false
	}
}

// IsTransferring returns true while a transfer is in progress,
// including its start delay.
func (d *DMA) IsTransferring() bool {
	return d.enabled
}
