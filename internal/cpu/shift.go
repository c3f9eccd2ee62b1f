package cpu

import "pocketgb/pkg/bits"

// shiftLeftIntoCarry shifts value left by one bit, carry taking the
// old bit 7 and bit 0 filling with 0.
//
//	SLA n
//	n = A, B, C, D, E, H, L, (HL)
func (c *CPU) shiftLeftIntoCarry(value uint8) uint8 {
	carry := bits.Test(value, 7)
	result := value << 1
	c.setFlags(result == 0, false, false, carry)
	return result
}

// shiftRightIntoCarry shifts value right by one bit, carry taking the
// old bit 0 and bit 7 held at its previous value (arithmetic shift).
//
//	SRA n
//	n = A, B, C, D, E, H, L, (HL)
func (c *CPU) shiftRightIntoCarry(value uint8) uint8 {
	carry := bits.Test(value, 0)
	result := (value >> 1) | (value & 0x80)
	c.setFlags(result == 0, false, false, carry)
	return result
}

// shiftRightLogical shifts value right by one bit, carry taking the
// old bit 0 and bit 7 filling with 0.
//
//	SRL n
//	n = A, B, C, D, E, H, L, (HL)
func (c *CPU) shiftRightLogical(value uint8) uint8 {
	carry := bits.Test(value, 0)
	result := value >> 1
	c.setFlags(result == 0, false, false, carry)
	return result
}
