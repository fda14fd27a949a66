package cartridge

import (
	"errors"
	"testing"
)

// newTestROM returns a 32kB ROM with a valid header.
func newTestROM(title string) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x100:], []byte{0x00, 0xC3, 0x50, 0x01})
	copy(rom[0x134:], title)
	rom[0x147] = byte(ROM)
	rom[0x14B] = 0x01

	var x uint8
	for i := 0x134; i <= 0x14C; i++ {
		x = x - rom[i] - 1
	}
	rom[0x14D] = x

	var sum uint16
	for i, b := range rom {
		if i != 0x14E && i != 0x14F {
			sum += uint16(b)
		}
	}
	rom[0x14E], rom[0x14F] = uint8(sum>>8), uint8(sum)
	return rom
}

func TestHeader_Checksum(t *testing.T) {
	t.Run("matching", func(t *testing.T) {
		cart, err := NewCartridge(newTestROM("CPU_INSTRS"))
		if err != nil {
			t.Fatal(err)
		}
		h := cart.Header()
		if !h.Valid() {
			t.Errorf("expected checksum 0x%02X to be valid, computed 0x%02X", h.HeaderChecksum, h.ComputedChecksum())
		}
		if !cart.GlobalChecksumValid() {
			t.Errorf("expected global checksum to be valid")
		}
	})
	t.Run("mismatching", func(t *testing.T) {
		rom := newTestROM("CPU_INSTRS")
		rom[0x14D]++
		cart, err := NewCartridge(rom)
		if err != nil {
			t.Fatal(err)
		}
		h := cart.Header()
		if h.Valid() {
			t.Errorf("expected checksum to be invalid")
		}
	})
}

func TestHeader_Fields(t *testing.T) {
	rom := newTestROM("TETRIS")
	rom[0x148] = 0x01
	rom[0x149] = 0x02
	cart, err := NewCartridge(rom)
	if err != nil {
		t.Fatal(err)
	}
	h := cart.Header()
	if h.Title != "TETRIS" || cart.Title() != "TETRIS" {
		t.Errorf("expected title TETRIS, got %q", h.Title)
	}
	if h.EntryPoint != [4]byte{0x00, 0xC3, 0x50, 0x01} {
		t.Errorf("expected entry point NOP; JP 0x0150, got % X", h.EntryPoint)
	}
	if h.ROMSize != 64*1024 || h.RAMSize != 8*1024 {
		t.Errorf("expected 64kB ROM 8kB RAM, got %d %d", h.ROMSize, h.RAMSize)
	}
	if h.CartridgeType.String() != "ROM ONLY" {
		t.Errorf("expected ROM ONLY, got %s", h.CartridgeType)
	}
	if h.Licensee() != "Nintendo" {
		t.Errorf("expected Nintendo, got %s", h.Licensee())
	}
	if h.Hardware() != "DMG" {
		t.Errorf("expected DMG, got %s", h.Hardware())
	}

	h.OldLicenseeCode = 0x33
	h.NewLicenseeCode = "01"
	if h.Licensee() != "Nintendo R&D1" {
		t.Errorf("expected new licensee, got %s", h.Licensee())
	}
}

func TestCartridge_Memory(t *testing.T) {
	rom := newTestROM("RAM")
	rom[0x149] = 0x02
	cart, err := NewCartridge(rom)
	if err != nil {
		t.Fatal(err)
	}
	if v := cart.Read(0x0101); v != 0xC3 {
		t.Errorf("expected 0xC3, got 0x%02X", v)
	}
	if v := cart.Read(0x9000); v != 0xFF {
		t.Errorf("expected reads past the ROM to be 0xFF, got 0x%02X", v)
	}
	cart.WriteRAM(0x0010, 0x42)
	if v := cart.ReadRAM(0x0010); v != 0x42 {
		t.Errorf("expected 0x42, got 0x%02X", v)
	}

	noRAM, _ := NewCartridge(newTestROM("NORAM"))
	noRAM.WriteRAM(0, 0x42)
	if v := noRAM.ReadRAM(0); v != 0xFF {
		t.Errorf("expected 0xFF without RAM, got 0x%02X", v)
	}
}

func TestCartridge_Hash(t *testing.T) {
	a, _ := NewCartridge(newTestROM("A"))
	b, _ := NewCartridge(newTestROM("B"))
	a2, _ := NewCartridge(newTestROM("A"))
	if a.Hash() == b.Hash() {
		t.Errorf("expected different ROMs to hash differently")
	}
	if a.Hash() != a2.Hash() {
		t.Errorf("expected identical ROMs to hash the same")
	}
}

func TestNewCartridge_Truncated(t *testing.T) {
	if _, err := NewCartridge(make([]byte, 0x100)); !errors.Is(err, ErrTruncatedHeader) {
		t.Errorf("expected ErrTruncatedHeader, got %v", err)
	}
}
