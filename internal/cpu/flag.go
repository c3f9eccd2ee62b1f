package cpu

import "pocketgb/pkg/bits"

type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F &^= 1 << flag
	c.F &= 0xF0
}

// clearFlags clears the given flags.
func (c *CPU) clearFlags(flags ...Flag) {
	for _, flag := range flags {
		c.clearFlag(flag)
	}
}

// setFlag sets a flag to the given value.
func (c *CPU) setFlag(flag Flag) {
	c.F |= 1 << flag
	c.F &= 0xF0 // the lower 4 bits of the F register are always 0
}

// setFlags sets all four flags at once from individual booleans.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.F = 0
	if zero {
		c.F |= 1 << FlagZero
	}
	if subtract {
		c.F |= 1 << FlagSubtract
	}
	if halfCarry {
		c.F |= 1 << FlagHalfCarry
	}
	if carry {
		c.F |= 1 << FlagCarry
	}
}

// shouldZeroFlag sets or clears FlagZero depending on whether value is 0.
func (c *CPU) shouldZeroFlag(value uint8) {
	if value == 0 {
		c.setFlag(FlagZero)
	} else {
		c.clearFlag(FlagZero)
	}
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return bits.Test(c.F, flag)
}

// isFlagsSet returns true if all the given flags are set.
func (c *CPU) isFlagsSet(flags ...Flag) bool {
	for _, flag := range flags {
		if !c.isFlagSet(flag) {
			return false
		}
	}
	return true
}

// isFlagsNotSet returns true if all the given flags are not set.
func (c *CPU) isFlagsNotSet(flags ...Flag) bool {
	return !c.isFlagsSet(flags...)
}
