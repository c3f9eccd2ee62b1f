// Package cpu implements the Sharp LR35902 instruction set: fetch,
// decode, execute, and interrupt dispatch.
package cpu

import (
	"pocketgb/internal/interrupts"
	"pocketgb/internal/mmu"
)

// ClockSpeed is the CPU's T-cycle clock speed in Hz.
const ClockSpeed = 4194304

// CPU executes Sharp LR35902 machine code against an MMU-backed
// address space, raising and dispatching interrupts through a shared
// interrupts.Service.
type CPU struct {
	PC uint16
	SP uint16
	Registers

	IME bool

	// imeScheduled latches a pending EI: the flag takes effect only
	// after the instruction following EI has executed.
	imeScheduled bool

	halted  bool
	stopped bool

	// branchPenalty is set non-zero by a conditional branch helper when
	// the branch is not taken this step; Step then charges the
	// not-taken count from conditionalCycles instead of the taken one.
	branchPenalty uint8

	mmu *mmu.MMU
	irq *interrupts.Service
}

// New returns a CPU wired to mmu for memory access and irq for
// interrupt dispatch, with registers zeroed and PC at 0 (the boot
// ROM's entry point).
func New(m *mmu.MMU, irq *interrupts.Service) *CPU {
	c := &CPU{
		mmu: m,
		irq: irq,
	}
	c.BC = &RegisterPair{&c.B, &c.C}
	c.DE = &RegisterPair{&c.D, &c.E}
	c.HL = &RegisterPair{&c.H, &c.L}
	c.AF = &RegisterPair{&c.A, &c.F}
	c.generateCBInstructionSet()
	return c
}

// conditionalCycles gives the (taken, not-taken) M-cycle counts for
// the 16 opcodes whose cost depends on whether a branch is taken.
// instruction.go's literal table only ever records one of the two.
var conditionalCycles = map[uint8][2]uint8{
	0x20: {3, 2}, 0x28: {3, 2}, 0x30: {3, 2}, 0x38: {3, 2}, // JR cc, r8
	0xC2: {4, 3}, 0xCA: {4, 3}, 0xD2: {4, 3}, 0xDA: {4, 3}, // JP cc, a16
	0xC4: {6, 3}, 0xCC: {6, 3}, 0xD4: {6, 3}, 0xDC: {6, 3}, // CALL cc, a16
	0xC0: {5, 2}, 0xC8: {5, 2}, 0xD0: {5, 2}, 0xD8: {5, 2}, // RET cc
}

// Step executes one dispatch cycle: interrupt service if one is
// pending and enabled, a halted no-op, or one fetched instruction. It
// returns the number of T-cycles consumed.
func (c *CPU) Step() uint8 {
	// An EI executed in an earlier step takes effect once this step's
	// instruction has run, unless that instruction is DI.
	enableIME := c.imeScheduled

	if flag, vector, ok := c.irq.Highest(); ok && c.IME {
		c.irq.Clear(flag)
		c.IME = false
		c.imeScheduled = false
		c.halted = false
		c.push16(c.PC)
		c.PC = vector
		return 20
	}

	if c.halted {
		if _, _, pending := c.irq.Highest(); pending {
			// Wakes on any pending IE&IF even with IME disabled; no
			// dispatch happens, execution just resumes at the
			// unmodified PC on the next Step's fetch.
			c.halted = false
		}
		return 4
	}

	opcode := c.fetch()

	var instr Instruction
	var operands []byte
	if opcode == 0xCB {
		cb := c.fetch()
		instr = InstructionSetCB[cb]
	} else {
		instr = InstructionSet[opcode]
		if instr.Length > 1 {
			operands = make([]byte, instr.Length-1)
			for i := range operands {
				operands[i] = c.fetch()
			}
		}
	}

	c.branchPenalty = 0
	instr.Execute(c, operands)

	if enableIME && c.imeScheduled {
		c.imeScheduled = false
		c.IME = true
	}

	cycles := instr.Cycles
	if pair, ok := conditionalCycles[opcode]; ok {
		if c.branchPenalty != 0 {
			cycles = pair[1]
		} else {
			cycles = pair[0]
		}
	}
	return cycles * 4
}

// fetch reads the byte at PC and advances PC by one.
func (c *CPU) fetch() uint8 {
	value := c.mmu.Read(c.PC)
	c.PC++
	return value
}

// halt enters HALT mode. Step wakes it on any pending IE&IF, even
// with IME disabled, and resumes normal fetch-decode-execute from the
// next instruction without dispatching it.
func (c *CPU) halt() {
	c.halted = true
}

// scheduleIME arms IME to take effect after the next instruction,
// matching EI's one-instruction delay.
func (c *CPU) scheduleIME() {
	c.imeScheduled = true
}

// registerMap returns a pointer to the named 8-bit register (B, C, D,
// E, H, L, or A). It panics on any other name, including "(HL)",
// which addresses memory rather than a register.
func (c *CPU) registerMap(name string) *Register {
	switch name {
	case "B":
		return &c.B
	case "C":
		return &c.C
	case "D":
		return &c.D
	case "E":
		return &c.E
	case "H":
		return &c.H
	case "L":
		return &c.L
	case "A":
		return &c.A
	}
	panic("cpu: unknown register name " + name)
}

// registerPairMap returns the named 16-bit register pair (BC, DE, HL,
// or AF). It panics on any other name.
func (c *CPU) registerPairMap(name string) *RegisterPair {
	switch name {
	case "BC":
		return c.BC
	case "DE":
		return c.DE
	case "HL":
		return c.HL
	case "AF":
		return c.AF
	}
	panic("cpu: unknown register pair name " + name)
}

