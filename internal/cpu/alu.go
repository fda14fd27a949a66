package cpu

// add adds n to the A Register, optionally including the carry flag.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	var cy uint8
	if withCarry {
		cy = c.carry()
	}
	sum := uint16(c.A) + uint16(n) + uint16(cy)
	halfCarry := (c.A&0x0F)+(n&0x0F)+cy > 0x0F
	c.A = uint8(sum)
	c.setFlags(flagIf(c.A == 0), FlagReset, flagIf(halfCarry), flagIf(sum > 0xFF))
}

// subtract subtracts n from the A Register, optionally including
// the carry flag, and returns the result without storing it.
//
//	SUB n
//	SBC A, n
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) subtract(n uint8, withCarry bool) uint8 {
	var cy uint8
	if withCarry {
		cy = c.carry()
	}
	diff := int16(c.A) - int16(n) - int16(cy)
	halfBorrow := int16(c.A&0x0F)-int16(n&0x0F)-int16(cy) < 0
	result := uint8(diff)
	c.setFlags(flagIf(result == 0), FlagSet, flagIf(halfBorrow), flagIf(diff < 0))
	return result
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(flagIf(c.A == 0), FlagReset, FlagSet, FlagReset)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(flagIf(c.A == 0), FlagReset, FlagReset, FlagReset)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(flagIf(c.A == 0), FlagReset, FlagReset, FlagReset)
}

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 1
	c.setFlags(flagIf(incremented == 0), FlagReset, flagIf(n&0x0F == 0x0F), FlagKeep)
	return incremented
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 1
	c.setFlags(flagIf(decremented == 0), FlagSet, flagIf(n&0x0F == 0), FlagKeep)
	return decremented
}

// addUint16 adds two 16-bit values and returns the result.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addUint16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	c.setFlags(FlagKeep, FlagReset, flagIf((a&0x0FFF)+(b&0x0FFF) > 0x0FFF), flagIf(sum > 0xFFFF))
	return uint16(sum)
}

// addSPSigned adds the signed offset e to SP and returns the
// result. The flags are computed from the unsigned addition of
// the low byte of SP and e.
//
//	ADD SP, e
//	LD HL, SP+e
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(e uint8) uint16 {
	sp := c.SP
	c.setFlags(
		FlagReset,
		FlagReset,
		flagIf((sp&0x0F)+uint16(e&0x0F) > 0x0F),
		flagIf((sp&0xFF)+uint16(e) > 0xFF),
	)
	return sp + uint16(int8(e))
}

// daa decimal adjusts the A Register after a BCD addition or
// subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if the 0x60 adjustment was applied.
func (c *CPU) daa() {
	var adjust uint8
	carry := false
	subtract := c.isFlagSet(FlagSubtract)

	if c.isFlagSet(FlagHalfCarry) || (!subtract && c.A&0x0F > 0x09) {
		adjust |= 0x06
	}
	if c.isFlagSet(FlagCarry) || (!subtract && c.A > 0x99) {
		adjust |= 0x60
		carry = true
	}

	if subtract {
		c.A -= adjust
	} else {
		c.A += adjust
	}
	c.setFlags(flagIf(c.A == 0), FlagKeep, FlagReset, flagIf(carry))
}

// complement flips every bit of the A Register.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) complement() {
	c.A = ^c.A
	c.setFlags(FlagKeep, FlagSet, FlagSet, FlagKeep)
}

// setCarryFlag sets the carry flag.
//
//	SCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Set.
func (c *CPU) setCarryFlag() {
	c.setFlags(FlagKeep, FlagReset, FlagReset, FlagSet)
}

// complementCarryFlag flips the carry flag.
//
//	CCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Complemented.
func (c *CPU) complementCarryFlag() {
	c.setFlags(FlagKeep, FlagReset, FlagReset, flagIf(!c.isFlagSet(FlagCarry)))
}
