package cpu

import "github.com/thelolagemann/gomeboy-core/pkg/bits"

// checkCondition returns true if the given condition holds.
func (c *CPU) checkCondition(cond Condition) bool {
	switch cond {
	case CondNZ:
		return !c.isFlagSet(FlagZero)
	case CondZ:
		return c.isFlagSet(FlagZero)
	case CondNC:
		return !c.isFlagSet(FlagCarry)
	case CondC:
		return c.isFlagSet(FlagCarry)
	}
	return true
}

// jump sets PC to addr if cond holds. A taken jump costs one
// extra M-cycle, and when call is set, PC is pushed onto the
// stack before jumping.
//
//	JP cc, nn
//	JR cc, e
//	CALL cc, nn
//	RST n
//	RET
func (c *CPU) jump(addr uint16, cond Condition, call bool) {
	if !c.checkCondition(cond) {
		return
	}
	c.tickCycle()
	if call {
		c.push16(c.PC)
	}
	c.PC = addr
}

// ret pops the return address off the stack if cond holds.
// Conditional returns spend an extra M-cycle evaluating cond.
//
//	RET cc
func (c *CPU) ret(cond Condition) {
	if cond != CondNone {
		c.tickCycle()
	}
	if !c.checkCondition(cond) {
		return
	}
	c.jump(c.pop16(), CondNone, false)
}

// push16 pushes v onto the stack, high byte first.
func (c *CPU) push16(v uint16) {
	hi, lo := bits.Split(v)
	c.SP--
	c.writeByte(c.SP, hi)
	c.SP--
	c.writeByte(c.SP, lo)
}

// pop16 pops a 16-bit value off the stack, low byte first.
func (c *CPU) pop16() uint16 {
	lo := c.readByte(c.SP)
	c.SP++
	hi := c.readByte(c.SP)
	c.SP++
	return bits.Join(hi, lo)
}
