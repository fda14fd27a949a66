package cpu

import (
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/bits"
)

// executors maps each operation to its routine. STOP and
// Undefined have no routine.
var executors = [kindCount]func(*CPU, Instruction, operand){
	NOP:  func(*CPU, Instruction, operand) {},
	LD:   (*CPU).load,
	LDH:  (*CPU).loadHigh,
	INC:  (*CPU).inc,
	DEC:  (*CPU).dec,
	ADD:  (*CPU).addOp,
	ADC:  func(c *CPU, _ Instruction, op operand) { c.add(uint8(op.value), true) },
	SUB:  func(c *CPU, _ Instruction, op operand) { c.A = c.subtract(uint8(op.value), false) },
	SBC:  func(c *CPU, _ Instruction, op operand) { c.A = c.subtract(uint8(op.value), true) },
	CP:   func(c *CPU, _ Instruction, op operand) { c.subtract(uint8(op.value), false) },
	AND:  func(c *CPU, _ Instruction, op operand) { c.and(uint8(op.value)) },
	OR:   func(c *CPU, _ Instruction, op operand) { c.or(uint8(op.value)) },
	XOR:  func(c *CPU, _ Instruction, op operand) { c.xor(uint8(op.value)) },
	RLCA: func(c *CPU, _ Instruction, _ operand) { c.rotateAccumulator((*CPU).rotateLeft) },
	RRCA: func(c *CPU, _ Instruction, _ operand) { c.rotateAccumulator((*CPU).rotateRight) },
	RLA:  func(c *CPU, _ Instruction, _ operand) { c.rotateAccumulator((*CPU).rotateLeftThroughCarry) },
	RRA:  func(c *CPU, _ Instruction, _ operand) { c.rotateAccumulator((*CPU).rotateRightThroughCarry) },
	DAA:  func(c *CPU, _ Instruction, _ operand) { c.daa() },
	CPL:  func(c *CPU, _ Instruction, _ operand) { c.complement() },
	SCF:  func(c *CPU, _ Instruction, _ operand) { c.setCarryFlag() },
	CCF:  func(c *CPU, _ Instruction, _ operand) { c.complementCarryFlag() },
	JP:   (*CPU).jp,
	JR: func(c *CPU, i Instruction, op operand) {
		c.jump(c.PC+uint16(int8(op.value)), i.Cond, false)
	},
	CALL: func(c *CPU, i Instruction, op operand) { c.jump(op.value, i.Cond, true) },
	RST: func(c *CPU, i Instruction, _ operand) {
		addr, _ := i.Param.Value()
		c.jump(uint16(addr), CondNone, true)
	},
	RET: func(c *CPU, i Instruction, _ operand) { c.ret(i.Cond) },
	RETI: func(c *CPU, _ Instruction, _ operand) {
		c.irq.EnableInterrupts()
		c.ret(CondNone)
	},
	PUSH: func(c *CPU, _ Instruction, op operand) {
		c.tickCycle()
		c.push16(op.value)
	},
	POP:  func(c *CPU, i Instruction, _ operand) { c.writeRegister(i.Reg1, c.pop16()) },
	DI:   func(c *CPU, _ Instruction, _ operand) { c.irq.DisableInterrupts() },
	EI:   func(c *CPU, _ Instruction, _ operand) { c.irq.ScheduleEnable() },
	HALT: func(c *CPU, _ Instruction, _ operand) { c.halted = true },
	CB:   (*CPU).prefixCB,
}

// load copies the operand to its destination.
//
//	LD r, r'
//	LD r, n
//	LD rr, nn
//	LD (rr), r
//	LD (a16), SP
//	LD HL, SP+e
//	LD SP, HL
func (c *CPU) load(i Instruction, op operand) {
	switch {
	case op.destIsMem && i.Reg2.Is16():
		lo, hi := uint8(op.value), uint8(op.value>>8)
		c.writeByte(op.dest, lo)
		c.writeByte(op.dest+1, hi)
	case op.destIsMem:
		c.writeByte(op.dest, uint8(op.value))
	case i.Mode == HLSPRel:
		c.writeRegister(i.Reg1, c.addSPSigned(uint8(op.value)))
		c.tickCycle()
	case i.Mode == RegReg && i.Reg1.Is16():
		c.writeRegister(i.Reg1, op.value)
		c.tickCycle()
	default:
		c.writeRegister(i.Reg1, op.value)
	}
}

// loadHigh loads to or from the high page.
//
//	LDH (a8), A
//	LDH A, (a8)
func (c *CPU) loadHigh(i Instruction, op operand) {
	if op.destIsMem {
		c.writeByte(op.dest, uint8(op.value))
		return
	}
	c.writeRegister(i.Reg1, uint16(c.readByte(types.HighPageBase|op.value)))
}

// inc increments a register, register pair, or (HL). 16-bit
// increments take an extra M-cycle and affect no flags.
func (c *CPU) inc(i Instruction, op operand) {
	switch {
	case op.destIsMem:
		c.writeByte(op.dest, c.increment(uint8(op.value)))
	case i.Reg1.Is16():
		c.tickCycle()
		c.writeRegister(i.Reg1, op.value+1)
	default:
		c.writeRegister(i.Reg1, uint16(c.increment(uint8(op.value))))
	}
}

// dec decrements a register, register pair, or (HL). 16-bit
// decrements take an extra M-cycle and affect no flags.
func (c *CPU) dec(i Instruction, op operand) {
	switch {
	case op.destIsMem:
		c.writeByte(op.dest, c.decrement(uint8(op.value)))
	case i.Reg1.Is16():
		c.tickCycle()
		c.writeRegister(i.Reg1, op.value-1)
	default:
		c.writeRegister(i.Reg1, uint16(c.decrement(uint8(op.value))))
	}
}

// addOp handles the three forms of ADD.
//
//	ADD A, n
//	ADD HL, rr
//	ADD SP, e
func (c *CPU) addOp(i Instruction, op operand) {
	switch i.Reg1 {
	case RegSP:
		c.SP = c.addSPSigned(uint8(op.value))
		c.tickCycle()
		c.tickCycle()
	case RegHL:
		c.SetHL(c.addUint16(c.HL(), op.value))
		c.tickCycle()
	default:
		c.add(uint8(op.value), false)
	}
}

// jp jumps to an absolute address, or to HL without an extra cycle.
//
//	JP cc, nn
//	JP HL
func (c *CPU) jp(i Instruction, op operand) {
	if i.Mode == Reg {
		c.PC = op.value
		return
	}
	c.jump(op.value, i.Cond, false)
}

// prefixCB executes the CB prefixed instruction encoded by the
// byte fetched as the operand. Operations on (HL) read and write
// back the byte through the bus, except BIT which only reads.
func (c *CPU) prefixCB(_ Instruction, op operand) {
	kind, reg, bit := DecodeCB(uint8(op.value))

	var value uint8
	if reg == RegHL {
		value = c.readByte(c.HL())
	} else {
		value = uint8(c.readRegister(reg))
	}

	switch kind {
	case BIT:
		c.testBit(value, bit)
		return
	case RES:
		value = bits.Reset(value, bit)
	case SET:
		value = bits.Set(value, bit)
	case RLC:
		value = c.rotateLeft(value)
	case RRC:
		value = c.rotateRight(value)
	case RL:
		value = c.rotateLeftThroughCarry(value)
	case RR:
		value = c.rotateRightThroughCarry(value)
	case SLA:
		value = c.shiftLeftArithmetic(value)
	case SRA:
		value = c.shiftRightArithmetic(value)
	case SWAP:
		value = c.swap(value)
	case SRL:
		value = c.shiftRightLogical(value)
	}

	if reg == RegHL {
		c.writeByte(c.HL(), value)
	} else {
		c.writeRegister(reg, uint16(value))
	}
}
