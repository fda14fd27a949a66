package cpu

// Flag is the bit position of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// FlagOp is the effect an operation has on a single flag.
type FlagOp uint8

const (
	// FlagKeep leaves the flag unchanged.
	FlagKeep FlagOp = iota
	// FlagReset clears the flag.
	FlagReset
	// FlagSet sets the flag.
	FlagSet
)

// flagIf returns FlagSet if cond is true, FlagReset otherwise.
func flagIf(cond bool) FlagOp {
	if cond {
		return FlagSet
	}
	return FlagReset
}

// setFlags applies the given operations to the Z, N, H and C
// flags. Flags given FlagKeep are left untouched.
func (c *CPU) setFlags(z, n, h, cy FlagOp) {
	c.applyFlag(FlagZero, z)
	c.applyFlag(FlagSubtract, n)
	c.applyFlag(FlagHalfCarry, h)
	c.applyFlag(FlagCarry, cy)
}

func (c *CPU) applyFlag(flag Flag, op FlagOp) {
	switch op {
	case FlagSet:
		c.F |= 1 << flag
	case FlagReset:
		c.F &^= 1 << flag
	}
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&(1<<flag) != 0
}

// carry returns the carry flag as 0 or 1.
func (c *CPU) carry() uint8 {
	return (c.F >> FlagCarry) & 1
}
