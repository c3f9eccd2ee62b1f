package cpu

import "pocketgb/pkg/bits"

// push writes a single byte to the address below the current stack
// pointer and decrements SP.
//
//	PUSH nn (one byte of a pair)
func (c *CPU) push(value uint8) {
	c.SP--
	c.mmu.Write(c.SP, value)
}

// push16 pushes a 16-bit value onto the stack, high byte first.
//
//	PUSH nn
//	nn = BC, DE, HL, AF
func (c *CPU) push16(value uint16) {
	c.push(bits.HighByte(value))
	c.push(bits.LowByte(value))
}

// pop16 pops a 16-bit value off the stack, low byte first.
//
//	POP nn
//	nn = BC, DE, HL, AF
func (c *CPU) pop16() uint16 {
	low := c.mmu.Read(c.SP)
	c.SP++
	high := c.mmu.Read(c.SP)
	c.SP++
	return bits.Combine(high, low)
}

// jumpAbsolute sets PC to address.
//
//	JP a16
//	JP (HL)
func (c *CPU) jumpAbsolute(address uint16) {
	c.PC = address
}

// jumpAbsoluteConditional sets PC to address only if condition holds.
//
//	JP cc, a16
func (c *CPU) jumpAbsoluteConditional(condition bool, address uint16) {
	if condition {
		c.PC = address
	} else {
		c.branchPenalty = 1
	}
}

// jumpRelative adds the signed offset to PC.
//
//	JR r8
func (c *CPU) jumpRelative(offset uint8) {
	c.PC = uint16(int32(c.PC) + int32(int8(offset)))
}

// jumpRelativeConditional adds the signed offset to PC only if
// condition holds.
//
//	JR cc, r8
func (c *CPU) jumpRelativeConditional(condition bool, offset uint8) {
	if condition {
		c.jumpRelative(offset)
	} else {
		c.branchPenalty = 1
	}
}

// call pushes the address of the next instruction and jumps to
// address.
//
//	CALL a16
func (c *CPU) call(address uint16) {
	c.push16(c.PC)
	c.PC = address
}

// callConditional calls address only if condition holds.
//
//	CALL cc, a16
func (c *CPU) callConditional(condition bool, address uint16) {
	if condition {
		c.call(address)
	} else {
		c.branchPenalty = 1
	}
}

// ret pops the return address off the stack and jumps to it.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.pop16()
}

// retConditional returns only if condition holds.
//
//	RET cc
func (c *CPU) retConditional(condition bool) {
	if condition {
		c.ret()
	} else {
		c.branchPenalty = 1
	}
}

// retInterrupt returns and re-enables interrupts immediately, with no
// one-instruction delay.
//
//	RETI
func (c *CPU) retInterrupt() {
	c.ret()
	c.IME = true
}

// rst pushes PC and jumps to one of the eight fixed restart vectors.
//
//	RST n
func (c *CPU) rst(vector uint8) {
	c.push16(c.PC)
	c.PC = uint16(vector)
}
