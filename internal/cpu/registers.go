package cpu

import "pocketgb/pkg/bits"

// Register is a single 8-bit register.
type Register = uint8

// RegisterPair addresses two registers as a combined 16-bit value, high
// byte first, matching BC/DE/HL/AF.
type RegisterPair struct {
	High, Low *Register
}

// Uint16 returns the combined 16-bit value of the pair.
func (r *RegisterPair) Uint16() uint16 {
	return bits.Combine(*r.High, *r.Low)
}

// SetUint16 writes a 16-bit value into the pair's two registers.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = bits.HighByte(value)
	*r.Low = bits.LowByte(value)
}

// Registers holds the Sharp LR35902's eight 8-bit registers, accessible
// individually or, via the BC/DE/HL/AF pairs, as 16-bit values.
type Registers struct {
	A, F, B, C, D, E, H, L Register

	BC, DE, HL, AF *RegisterPair
}
