package cpu

import "github.com/thelolagemann/gomeboy-core/internal/types"

// operand is the result of resolving an instruction's addressing
// mode: the value it operates on, and where the result goes when
// the destination is memory.
type operand struct {
	value     uint16
	dest      uint16
	destIsMem bool
}

// resolvers maps each addressing mode to the routine that fetches
// its operand. Every memory access made by a resolver is clocked.
var resolvers = [modeCount]func(*CPU, Instruction) operand{
	Implied: func(c *CPU, i Instruction) operand {
		return operand{}
	},
	Reg: func(c *CPU, i Instruction) operand {
		return operand{value: c.readRegister(i.Reg1)}
	},
	RegReg: func(c *CPU, i Instruction) operand {
		return operand{value: c.readRegister(i.Reg2)}
	},
	RegD8: func(c *CPU, i Instruction) operand {
		return operand{value: uint16(c.readOperand())}
	},
	D8: func(c *CPU, i Instruction) operand {
		return operand{value: uint16(c.readOperand())}
	},
	HLSPRel: func(c *CPU, i Instruction) operand {
		return operand{value: uint16(c.readOperand())}
	},
	RegD16: func(c *CPU, i Instruction) operand {
		return operand{value: c.readOperand16()}
	},
	D16: func(c *CPU, i Instruction) operand {
		return operand{value: c.readOperand16()}
	},
	MemReg: func(c *CPU, i Instruction) operand {
		return operand{
			value:     c.readRegister(i.Reg2),
			dest:      c.address(i.Reg1),
			destIsMem: true,
		}
	},
	RegMem: func(c *CPU, i Instruction) operand {
		return operand{value: uint16(c.readByte(c.address(i.Reg2)))}
	},
	RegHLI: func(c *CPU, i Instruction) operand {
		hl := c.HL()
		v := c.readByte(hl)
		c.SetHL(hl + 1)
		return operand{value: uint16(v)}
	},
	RegHLD: func(c *CPU, i Instruction) operand {
		hl := c.HL()
		v := c.readByte(hl)
		c.SetHL(hl - 1)
		return operand{value: uint16(v)}
	},
	HLIReg: func(c *CPU, i Instruction) operand {
		hl := c.HL()
		c.SetHL(hl + 1)
		return operand{value: c.readRegister(i.Reg2), dest: hl, destIsMem: true}
	},
	HLDReg: func(c *CPU, i Instruction) operand {
		hl := c.HL()
		c.SetHL(hl - 1)
		return operand{value: c.readRegister(i.Reg2), dest: hl, destIsMem: true}
	},
	RegA8: func(c *CPU, i Instruction) operand {
		return operand{value: uint16(c.readOperand())}
	},
	A8Reg: func(c *CPU, i Instruction) operand {
		return operand{
			value:     c.readRegister(i.Reg2),
			dest:      types.HighPageBase | uint16(c.readOperand()),
			destIsMem: true,
		}
	},
	D16Reg: func(c *CPU, i Instruction) operand {
		return operand{value: c.readRegister(i.Reg2), dest: c.readOperand16(), destIsMem: true}
	},
	A16Reg: func(c *CPU, i Instruction) operand {
		return operand{value: c.readRegister(i.Reg2), dest: c.readOperand16(), destIsMem: true}
	},
	RegA16: func(c *CPU, i Instruction) operand {
		addr := c.readOperand16()
		return operand{value: uint16(c.readByte(addr))}
	},
	MemD8: func(c *CPU, i Instruction) operand {
		return operand{
			value:     uint16(c.readOperand()),
			dest:      c.readRegister(i.Reg1),
			destIsMem: true,
		}
	},
	Mem: func(c *CPU, i Instruction) operand {
		addr := c.readRegister(i.Reg1)
		return operand{value: uint16(c.readByte(addr)), dest: addr, destIsMem: true}
	},
}

// address returns the address held in r. The C register addresses
// the high page, as used by LD (C),A and LD A,(C).
func (c *CPU) address(r RegisterID) uint16 {
	if r == RegC {
		return types.HighPageBase | uint16(c.C)
	}
	return c.readRegister(r)
}

// resolve fetches the operand of i according to its addressing mode.
func (c *CPU) resolve(i Instruction) (operand, error) {
	if i.Mode >= modeCount || resolvers[i.Mode] == nil {
		return operand{}, ErrUnknownMode
	}
	return resolvers[i.Mode](c, i), nil
}
