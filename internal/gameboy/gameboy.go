// Package gameboy wires the CPU, MMU, PPU, timer, joypad, and
// interrupt service into a single runnable unit and drives the
// per-frame stepping loop the host calls into.
package gameboy

import (
	"io"

	"pocketgb/internal/boot"
	"pocketgb/internal/cartridge"
	"pocketgb/internal/cpu"
	"pocketgb/internal/interrupts"
	"pocketgb/internal/joypad"
	"pocketgb/internal/mmu"
	"pocketgb/internal/ppu"
	"pocketgb/internal/timer"
	"pocketgb/pkg/log"
)

// Button identifies a physical joypad button.
type Button = joypad.Button

const (
	ButtonA      = joypad.ButtonA
	ButtonB      = joypad.ButtonB
	ButtonSelect = joypad.ButtonSelect
	ButtonStart  = joypad.ButtonStart
	ButtonRight  = joypad.ButtonRight
	ButtonLeft   = joypad.ButtonLeft
	ButtonUp     = joypad.ButtonUp
	ButtonDown   = joypad.ButtonDown
)

// cyclesPerFrame is one frame's worth of CPU T-cycles at 4.194304 MHz
// and 60 Hz.
const cyclesPerFrame = 69905

// Frame is a copy of the framebuffer, one RGB triple per pixel, row
// major from the top-left.
type Frame = [ppu.Height][ppu.Width][3]uint8

// RegisterSnapshot is a read-only copy of CPU register state, for
// debug and profiling tools that must not hold a live pointer into
// the running Core.
type RegisterSnapshot struct {
	A, F, B, C, D, E, H, L uint8
	PC, SP                 uint16
	IME                    bool
}

// GameBoy owns every emulated subsystem and drives the frame loop.
type GameBoy struct {
	CPU  *cpu.CPU
	MMU  *mmu.MMU
	PPU  *ppu.PPU
	cart *cartridge.Cartridge
	pad  *joypad.State
	irq  *interrupts.Service
	tmr  *timer.Timer

	log        log.Logger
	serialSink io.Writer
}

// New constructs a GameBoy from a cartridge image and an optional
// 256-byte boot ROM. A nil boot starts execution directly at the
// cartridge entry point (0x0100) with post-boot register and I/O
// state, skipping the boot animation.
func New(bootImage, rom []byte, opts ...Option) (*GameBoy, error) {
	gb := &GameBoy{
		log:        log.NewNullLogger(),
		serialSink: io.Discard,
	}
	// The PPU exists before the options run, since WithPalette configures it.
	irq := interrupts.NewService()
	video := ppu.New(irq)
	gb.PPU = video
	for _, opt := range opts {
		opt(gb)
	}

	var bootROM *boot.ROM
	if bootImage != nil {
		b, err := boot.New(bootImage)
		if err != nil {
			return nil, err
		}
		bootROM = b
	}

	gb.cart = cartridge.New(rom, gb.log)
	pad := joypad.New()
	tmr := timer.New(irq)

	gb.MMU = mmu.New(gb.cart, bootROM, video, tmr, pad, irq, gb.serialSink, gb.log)
	gb.pad = pad
	gb.irq = irq
	gb.tmr = tmr
	gb.CPU = cpu.New(gb.MMU, irq)

	if bootROM == nil {
		gb.skipBoot()
	}

	return gb, nil
}

// skipBoot sets CPU and I/O state to what the real boot ROM would
// have left behind by the time it hands off to the cartridge, for
// callers that don't supply one.
func (gb *GameBoy) skipBoot() {
	gb.CPU.PC = 0x0100
	gb.CPU.SP = 0xFFFE
	gb.CPU.A, gb.CPU.F = 0x01, 0xB0
	gb.CPU.B, gb.CPU.C = 0x00, 0x13
	gb.CPU.D, gb.CPU.E = 0x00, 0xD8
	gb.CPU.H, gb.CPU.L = 0x01, 0x4D
	gb.MMU.Write(0xFF40, 0x91) // LCDC: LCD and background on
	gb.MMU.Write(0xFF47, 0xFC) // BGP
	gb.MMU.Write(0xFF50, 1)
}

// StepFrame runs CPU, Timer, and PPU until cyclesPerFrame T-cycles
// have elapsed, one 60 Hz frame's worth of emulated time. Each CPU
// step's cycle count is handed to the timer and PPU so they advance
// in lockstep with the instruction that just ran.
func (gb *GameBoy) StepFrame() {
	var elapsed uint
	for elapsed < cyclesPerFrame {
		cycles := gb.CPU.Step()
		gb.tmr.Step(cycles)
		gb.PPU.Step(cycles)
		elapsed += uint(cycles)
	}
}

// Framebuffer returns a flat RGB triple array matching the host API's
// &[RGB; 160*144] shape: row major, 3 bytes per pixel.
func (gb *GameBoy) Framebuffer() *[ppu.Width * ppu.Height * 3]byte {
	snap := gb.PPU.Snapshot()
	var out [ppu.Width * ppu.Height * 3]byte
	i := 0
	for y := 0; y < ppu.Height; y++ {
		for x := 0; x < ppu.Width; x++ {
			out[i] = snap[y][x][0]
			out[i+1] = snap[y][x][1]
			out[i+2] = snap[y][x][2]
			i += 3
		}
	}
	return &out
}

// Snapshot returns a copy of the current framebuffer, indexed
// [row][col][channel].
func (gb *GameBoy) Snapshot() Frame {
	return gb.PPU.Snapshot()
}

// Title returns the loaded cartridge's title.
func (gb *GameBoy) Title() string {
	return gb.cart.Title()
}

// Registers returns a copy of the CPU's register state.
func (gb *GameBoy) Registers() RegisterSnapshot {
	return RegisterSnapshot{
		A: gb.CPU.A, F: gb.CPU.F,
		B: gb.CPU.B, C: gb.CPU.C,
		D: gb.CPU.D, E: gb.CPU.E,
		H: gb.CPU.H, L: gb.CPU.L,
		PC: gb.CPU.PC, SP: gb.CPU.SP,
		IME: gb.CPU.IME,
	}
}

// Press presses button, updating the joypad matrix and raising the
// joypad interrupt if the press causes a selected line to fall.
func (gb *GameBoy) Press(button Button) {
	if gb.pad.Press(button) {
		gb.irq.Request(interrupts.JoypadFlag)
	}
}

// Release releases button.
func (gb *GameBoy) Release(button Button) {
	gb.pad.Release(button)
}

// CyclePalette advances the PPU's active display palette to the next
// one in internal/ppu/palette's built-in list, returning its name.
func (gb *GameBoy) CyclePalette() string {
	return gb.PPU.CyclePalette()
}

// ExternalRAM returns the cartridge's battery-backed RAM contents, for
// the host to persist across sessions. It returns nil if the
// cartridge has none.
func (gb *GameBoy) ExternalRAM() []byte {
	return gb.cart.ExternalRAM()
}

// LoadExternalRAM restores previously saved battery-backed RAM.
func (gb *GameBoy) LoadExternalRAM(data []byte) {
	gb.cart.LoadExternalRAM(data)
}
