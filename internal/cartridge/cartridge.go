// Package cartridge provides the Cartridge for the DMG. The cartridge
// holds the game ROM and any external RAM. Bank switching is not
// emulated, so only the first 32kB of ROM are visible.
package cartridge

import (
	"errors"

	"github.com/cespare/xxhash"
)

// ErrTruncatedHeader is returned for ROMs too small to contain a header.
var ErrTruncatedHeader = errors.New("cartridge: ROM too small to contain a header")

// Cartridge represents a basic game cartridge.
type Cartridge struct {
	rom    []byte
	ram    []byte
	header Header
}

// NewCartridge parses the header of rom and returns a new Cartridge.
// A mismatching header checksum is not an error, see Header.Valid.
func NewCartridge(rom []byte) (*Cartridge, error) {
	if len(rom) < 0x150 {
		return nil, ErrTruncatedHeader
	}

	// parse the cartridge header (0x0100 - 0x014F)
	header, err := parseHeader(rom[0x100:0x150])
	if err != nil {
		return nil, err
	}

	return &Cartridge{
		rom:    rom,
		ram:    make([]byte, header.RAMSize),
		header: header,
	}, nil
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the cartridge title.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// Read returns the value at the given ROM address. Addresses past
// the end of the ROM read 0xFF.
func (c *Cartridge) Read(address uint16) uint8 {
	if int(address) >= len(c.rom) {
		return 0xFF
	}
	return c.rom[address]
}

// ReadRAM returns the value at the given offset into external RAM.
// Cartridges without RAM read 0xFF.
func (c *Cartridge) ReadRAM(offset uint16) uint8 {
	if int(offset) >= len(c.ram) {
		return 0xFF
	}
	return c.ram[offset]
}

// WriteRAM writes the value at the given offset into external RAM.
func (c *Cartridge) WriteRAM(offset uint16, value uint8) {
	if int(offset) >= len(c.ram) {
		return
	}
	c.ram[offset] = value
}

// GlobalChecksumValid reports whether the global checksum matches
// the sum of every ROM byte, excluding the checksum itself.
func (c *Cartridge) GlobalChecksumValid() bool {
	var sum uint16
	for i, b := range c.rom {
		if i == 0x14E || i == 0x14F {
			continue
		}
		sum += uint16(b)
	}
	return sum == c.header.GlobalChecksum
}

// Hash returns the xxhash of the ROM, used to identify it.
func (c *Cartridge) Hash() uint64 {
	return xxhash.Sum64(c.rom)
}
