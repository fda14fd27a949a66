// Package ppu provides the memory and register file of the Game
// Boy's (P)ixel (P)rocessing (U)nit: video RAM, object attribute
// memory, the LCD registers and the OAM DMA controller. Scanline
// timing and rendering are not emulated, so LY always reports the
// first line of VBlank.
package ppu

import (
	"github.com/thelolagemann/gomeboy-core/internal/ram"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144

	vramSize = 0x2000
	oamSize  = 0xA0
)

// PPU holds the video memory and the LCD registers.
type PPU struct {
	VRAM ram.RAM
	OAM  ram.RAM
	DMA  *DMA

	// LCD registers
	lcdc     uint8 // LCDC - LCD Control
	status   uint8 // STAT - LCD Status
	scy, scx uint8 // Background viewport position
	lyc      uint8 // LYC - LY Compare
	bgp      uint8 // BGP - Background Palette
	obp0     uint8 // OBP0 - Object Palette 0
	obp1     uint8 // OBP1 - Object Palette 1
	wy, wx   uint8 // Window Position
}

// New returns a new PPU, with the LCD and DMA registers registered
// in the given hardware register table.
func New(regs *types.HardwareRegisters) *PPU {
	p := &PPU{
		VRAM: ram.NewRAM(vramSize),
		OAM:  ram.NewRAM(oamSize),
		lcdc: 0x91,
		bgp:  0xFC,
	}
	p.DMA = NewDMA(regs, p.OAM)

	regs.RegisterHardware(types.LCDC, func(v uint8) { p.lcdc = v }, func() uint8 { return p.lcdc })
	regs.RegisterHardware(
		types.STAT,
		func(v uint8) {
			// the lower 3 bits are read only
			p.status = p.status&0b0000_0111 | v&0b0111_1000
		}, func() uint8 {
			return p.status | 0b1000_0000
		},
	)
	regs.RegisterHardware(types.SCY, func(v uint8) { p.scy = v }, func() uint8 { return p.scy })
	regs.RegisterHardware(types.SCX, func(v uint8) { p.scx = v }, func() uint8 { return p.scx })
	regs.RegisterHardware(
		types.LY,
		types.NoWrite,
		func() uint8 {
			return ScreenHeight
		},
	)
	regs.RegisterHardware(types.LYC, func(v uint8) { p.lyc = v }, func() uint8 { return p.lyc })
	regs.RegisterHardware(types.BGP, func(v uint8) { p.bgp = v }, func() uint8 { return p.bgp })
	regs.RegisterHardware(types.OBP0, func(v uint8) { p.obp0 = v }, func() uint8 { return p.obp0 })
	regs.RegisterHardware(types.OBP1, func(v uint8) { p.obp1 = v }, func() uint8 { return p.obp1 })
	regs.RegisterHardware(types.WY, func(v uint8) { p.wy = v }, func() uint8 { return p.wy })
	regs.RegisterHardware(types.WX, func(v uint8) { p.wx = v }, func() uint8 { return p.wx })

	return p
}

// ReadOAM reads from OAM, returning 0xFF while a DMA transfer
// is in progress.
func (p *PPU) ReadOAM(address uint16) uint8 {
	if p.DMA.IsTransferring() {
		return 0xFF
	}
	return p.OAM.Read(address)
}

// WriteOAM writes to OAM, unless a DMA transfer is in progress.
func (p *PPU) WriteOAM(address uint16, value uint8) {
	if p.DMA.IsTransferring() {
		return
	}
	p.OAM.Write(address, value)
}
