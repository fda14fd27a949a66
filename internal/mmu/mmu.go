// Package mmu provides a memory management unit for the Game Boy. The
// MMU is unaware of the other components, and handles all the memory
// reads and writes by decoding the address and delegating to the
// component mapped there.
package mmu

import (
	"github.com/thelolagemann/gomeboy-core/internal/cartridge"
	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/internal/ram"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB of memory.
type MMU struct {
	// 0x0000 - 0x7FFF - ROM (32kB)
	// 0xA000 - 0xBFFF - External RAM (8kB)
	Cart *cartridge.Cartridge

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	Video *ppu.PPU

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	wRAM ram.RAM

	// 0xFF00 - 0xFF7F - I/O Registers
	// (0xFFFF) - interrupt enable register
	registers *types.HardwareRegisters

	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	zRAM ram.RAM

	Log log.Logger
}

// NewMMU returns a new MMU.
func NewMMU(cart *cartridge.Cartridge, video *ppu.PPU, regs *types.HardwareRegisters, l log.Logger) *MMU {
	if l == nil {
		l = log.NewNullLogger()
	}
	return &MMU{
		Cart:      cart,
		Video:     video,
		wRAM:      ram.NewRAM(0x2000),
		registers: regs,
		zRAM:      ram.NewRAM(0x7F),
		Log:       l,
	}
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address <= types.ROMEnd:
		return m.Cart.Read(address)
	case address <= types.VRAMEnd:
		return m.Video.VRAM.Read(address - types.VRAMStart)
	case address <= types.ExtRAMEnd:
		return m.Cart.ReadRAM(address - types.ExtRAMStart)
	case address <= types.WRAMEnd:
		return m.wRAM.Read(address - types.WRAMStart)
	case address <= types.EchoEnd:
		// echo RAM is left unmapped
		return 0xFF
	case address <= types.OAMEnd:
		return m.Video.ReadOAM(address - types.OAMStart)
	case address <= types.UnusedEnd:
		return 0xFF
	case address <= types.IOEnd:
		return m.registers.Read(address)
	case address <= types.HRAMEnd:
		return m.zRAM.Read(address - types.HRAMStart)
	default:
		return m.registers.Read(address)
	}
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address <= types.ROMEnd:
		m.Log.Debugf("ignoring write to ROM 0x%04X: 0x%02X", address, value)
	case address <= types.VRAMEnd:
		m.Video.VRAM.Write(address-types.VRAMStart, value)
	case address <= types.ExtRAMEnd:
		m.Cart.WriteRAM(address-types.ExtRAMStart, value)
	case address <= types.WRAMEnd:
		m.wRAM.Write(address-types.WRAMStart, value)
	case address <= types.EchoEnd:
		m.Log.Debugf("ignoring write to echo RAM 0x%04X: 0x%02X", address, value)
	case address <= types.OAMEnd:
		m.Video.WriteOAM(address-types.OAMStart, value)
	case address <= types.UnusedEnd:
		// writes to the unusable region are dropped silently
	case address <= types.IOEnd:
		m.writeRegister(address, value)
	case address <= types.HRAMEnd:
		m.zRAM.Write(address-types.HRAMStart, value)
	default:
		m.writeRegister(address, value)
	}
}

func (m *MMU) writeRegister(address uint16, value uint8) {
	if !m.registers.Registered(address) {
		m.Log.Debugf("write to unmapped register 0x%04X: 0x%02X", address, value)
		return
	}
	m.registers.Write(address, value)
}
