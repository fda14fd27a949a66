package cpu

import "github.com/thelolagemann/gomeboy-core/pkg/bits"

// Registers contains the 8-bit registers of the CPU. The
// register pairs AF, BC, DE and HL are composed from them.
type Registers struct {
	A, F uint8
	B, C uint8
	D, E uint8
	H, L uint8
}

// AF returns the AF register pair.
func (r *Registers) AF() uint16 { return bits.Join(r.A, r.F) }

// BC returns the BC register pair.
func (r *Registers) BC() uint16 { return bits.Join(r.B, r.C) }

// DE returns the DE register pair.
func (r *Registers) DE() uint16 { return bits.Join(r.D, r.E) }

// HL returns the HL register pair.
func (r *Registers) HL() uint16 { return bits.Join(r.H, r.L) }

// SetAF sets the AF register pair. The lower nibble of F
// is always zero.
func (r *Registers) SetAF(v uint16) {
	r.A, r.F = bits.Split(v)
	r.F &= 0xF0
}

// SetBC sets the BC register pair.
func (r *Registers) SetBC(v uint16) { r.B, r.C = bits.Split(v) }

// SetDE sets the DE register pair.
func (r *Registers) SetDE(v uint16) { r.D, r.E = bits.Split(v) }

// SetHL sets the HL register pair.
func (r *Registers) SetHL(v uint16) { r.H, r.L = bits.Split(v) }

// RegisterID identifies a register, or register pair, referenced
// by an instruction.
type RegisterID uint8

const (
	RegNone RegisterID = iota
	RegA
	RegF
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
	RegAF
	RegBC
	RegDE
	RegHL
	RegSP
	RegPC
)

var registerNames = [...]string{
	RegNone: "",
	RegA:    "A",
	RegF:    "F",
	RegB:    "B",
	RegC:    "C",
	RegD:    "D",
	RegE:    "E",
	RegH:    "H",
	RegL:    "L",
	RegAF:   "AF",
	RegBC:   "BC",
	RegDE:   "DE",
	RegHL:   "HL",
	RegSP:   "SP",
	RegPC:   "PC",
}

func (r RegisterID) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return "?"
}

// Is16 reports whether the register is 16 bits wide.
func (r RegisterID) Is16() bool {
	return r >= RegAF
}

// readRegister returns the value of the given register.
func (c *CPU) readRegister(r RegisterID) uint16 {
	switch r {
	case RegA:
		return uint16(c.A)
	case RegF:
		return uint16(c.F)
	case RegB:
		return uint16(c.B)
	case RegC:
		return uint16(c.C)
	case RegD:
		return uint16(c.D)
	case RegE:
		return uint16(c.E)
	case RegH:
		return uint16(c.H)
	case RegL:
		return uint16(c.L)
	case RegAF:
		return c.AF()
	case RegBC:
		return c.BC()
	case RegDE:
		return c.DE()
	case RegHL:
		return c.HL()
	case RegSP:
		return c.SP
	case RegPC:
		return c.PC
	}
	return 0
}

// writeRegister sets the given register. 8-bit registers
// receive the low byte of v.
func (c *CPU) writeRegister(r RegisterID, v uint16) {
	switch r {
	case RegA:
		c.A = uint8(v)
	case RegF:
		c.F = uint8(v) & 0xF0
	case RegB:
		c.B = uint8(v)
	case RegC:
		c.C = uint8(v)
	case RegD:
		c.D = uint8(v)
	case RegE:
		c.E = uint8(v)
	case RegH:
		c.H = uint8(v)
	case RegL:
		c.L = uint8(v)
	case RegAF:
		c.SetAF(v)
	case RegBC:
		c.SetBC(v)
	case RegDE:
		c.SetDE(v)
	case RegHL:
		c.SetHL(v)
	case RegSP:
		c.SP = v
	case RegPC:
		c.PC = v
	}
}
