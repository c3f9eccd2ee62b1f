package cpu

import "pocketgb/pkg/bits"

// setBit sets the given bit of value.
//
//	SET n, r
//	n = 0-7
//	r = A, B, C, D, E, H, L, (HL)
func (c *CPU) setBit(value uint8, position uint8) uint8 {
	return bits.Set(value, position)
}

// clearBit clears the given bit of value.
//
//	RES n, r
//	n = 0-7
//	r = A, B, C, D, E, H, L, (HL)
func (c *CPU) clearBit(value uint8, position uint8) uint8 {
	return bits.Reset(value, position)
}

// testBit sets Z to the complement of the given bit of value and
// unconditionally resets N and sets H.
//
//	BIT n, r
//	n = 0-7
//	r = A, B, C, D, E, H, L, (HL)
func (c *CPU) testBit(value uint8, position uint8) {
	c.shouldZeroFlag(bits.Val(value, position))
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}
