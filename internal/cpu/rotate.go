package cpu

import "github.com/thelolagemann/gomeboy-core/pkg/bits"

// The CB prefixed rotates and shifts share the same flag behaviour:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains the bit shifted out (reset for SWAP).
//
// The accumulator forms (RLCA, RRCA, RLA, RRA) always reset Z.

func (c *CPU) shiftFlags(result uint8, carry bool) uint8 {
	c.setFlags(flagIf(result == 0), FlagReset, FlagReset, flagIf(carry))
	return result
}

// rotateLeft rotates n left, bit 7 moving to both bit 0 and the carry flag.
//
//	RLC n
func (c *CPU) rotateLeft(n uint8) uint8 {
	return c.shiftFlags(n<<1|n>>7, n&0x80 != 0)
}

// rotateRight rotates n right, bit 0 moving to both bit 7 and the carry flag.
//
//	RRC n
func (c *CPU) rotateRight(n uint8) uint8 {
	return c.shiftFlags(n>>1|n<<7, n&0x01 != 0)
}

// rotateLeftThroughCarry rotates n left through the carry flag.
//
//	RL n
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	return c.shiftFlags(n<<1|c.carry(), n&0x80 != 0)
}

// rotateRightThroughCarry rotates n right through the carry flag.
//
//	RR n
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	return c.shiftFlags(n>>1|c.carry()<<7, n&0x01 != 0)
}

// shiftLeftArithmetic shifts n left into the carry flag, bit 0 reset.
//
//	SLA n
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	return c.shiftFlags(n<<1, n&0x80 != 0)
}

// shiftRightArithmetic shifts n right into the carry flag, bit 7 unchanged.
//
//	SRA n
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	return c.shiftFlags(n>>1|n&0x80, n&0x01 != 0)
}

// swap the upper and lower nibbles of a byte.
//
//	SWAP n
func (c *CPU) swap(n uint8) uint8 {
	return c.shiftFlags(n<<4|n>>4, false)
}

// shiftRightLogical shifts n right into the carry flag, bit 7 reset.
//
//	SRL n
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	return c.shiftFlags(n>>1, n&0x01 != 0)
}

// testBit tests the bit at the given position in n.
//
//	BIT b, n
//	b = 0-7
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit b of n is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(n uint8, b uint8) {
	c.setFlags(flagIf(!bits.Test(n, b)), FlagReset, FlagSet, FlagKeep)
}

// rotateAccumulator applies fn to the A Register, and resets Z.
//
//	RLCA, RRCA, RLA, RRA
func (c *CPU) rotateAccumulator(fn func(*CPU, uint8) uint8) {
	c.A = fn(c, c.A)
	c.setFlags(FlagReset, FlagKeep, FlagKeep, FlagKeep)
}
