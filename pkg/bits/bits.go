package bits

// Val returns the value of the bit at the given index.
func Val(b uint8, i uint8) uint8 {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// Test16 tests the bit at the given index of a 16-bit value.
func Test16(v uint16, i uint8) bool {
	return (v>>i)&1 != 0
}

// Join combines a high and low byte into a 16-bit value.
func Join(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// Split returns the high and low bytes of a 16-bit value.
func Split(v uint16) (hi, lo uint8) {
	return uint8(v >> 8), uint8(v)
}
