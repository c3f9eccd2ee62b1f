// Package ppu implements the picture processing unit: the LCDC/STAT
// mode state machine, VRAM/OAM storage with CPU-facing access gating,
// and the background/window/sprite scanline compositor that produces
// the 160x144 framebuffer.
package ppu

import (
	"pocketgb/internal/interrupts"
	"pocketgb/internal/ppu/palette"
)

// Mode is the two-bit value STAT bits 1-0 report.
type Mode uint8

const (
	ModeHBlank Mode = 0
	ModeVBlank Mode = 1
	ModeOAM    Mode = 2
	ModeTransfer Mode = 3
)

const (
	oamScanCycles  = 80
	transferCycles = 172
	hblankCycles   = 204
	lineCycles     = oamScanCycles + transferCycles + hblankCycles // 456
	visibleLines   = 144
	totalLines     = 154

	Width  = 160
	Height = 144
)

const (
	lcdcEnable           uint8 = 1 << 7
	lcdcWindowTileMap    uint8 = 1 << 6
	lcdcWindowEnable     uint8 = 1 << 5
	lcdcBGWindowTileData uint8 = 1 << 4
	lcdcBGTileMap        uint8 = 1 << 3
	lcdcObjSize          uint8 = 1 << 2
	lcdcObjEnable        uint8 = 1 << 1
	lcdcBGEnable         uint8 = 1 << 0

	statLYCInterrupt   uint8 = 1 << 6
	statOAMInterrupt   uint8 = 1 << 5
	statVBlankInterrupt uint8 = 1 << 4
	statHBlankInterrupt uint8 = 1 << 3
	statLYCFlag        uint8 = 1 << 2
	statModeMask       uint8 = 0x03
)

const (
	regLCDC uint16 = 0xFF40
	regSTAT uint16 = 0xFF41
	regSCY  uint16 = 0xFF42
	regSCX  uint16 = 0xFF43
	regLY   uint16 = 0xFF44
	regLYC  uint16 = 0xFF45
	regDMA  uint16 = 0xFF46
	regBGP  uint16 = 0xFF47
	regOBP0 uint16 = 0xFF48
	regOBP1 uint16 = 0xFF49
	regWY   uint16 = 0xFF4A
	regWX   uint16 = 0xFF4B
)

// PPU owns VRAM, OAM, and the LCD registers, and renders one scanline
// at a time as the mode state machine reaches HBlank.
type PPU struct {
	vram [0x2000]uint8
	oam  [0xA0]uint8

	lcdc, stat             uint8
	scy, scx               uint8
	ly, lyc                uint8
	bgp, obp0, obp1        uint8
	wy, wx                 uint8

	mode   Mode
	cycles uint16

	windowLine uint8

	framebuffer [Height][Width][3]uint8
	bgIndex     [Width]uint8 // last scanline's BG/window color index, for sprite BG-priority

	pal      palette.Palette
	palIndex int

	irq *interrupts.Service
}

// New returns a PPU wired to irq for VBlank/LCD-STAT interrupt
// requests, starting in OAM-scan at LY 0 with the default palette.
func New(irq *interrupts.Service) *PPU {
	return &PPU{
		mode: ModeOAM,
		pal:  palette.Default,
		irq:  irq,
	}
}

// SetPalette switches the active display palette by name. It returns
// false and leaves the palette unchanged if name isn't recognized.
func (p *PPU) SetPalette(name string) bool {
	for i, n := range palette.Named {
		if n.Name == name {
			p.pal = n.Palette
			p.palIndex = i
			return true
		}
	}
	return false
}

// CyclePalette advances to the next built-in palette, wrapping
// around, and returns its name.
func (p *PPU) CyclePalette() string {
	pal, idx := palette.Next(p.palIndex)
	p.pal = pal
	p.palIndex = idx
	return palette.Named[idx].Name
}

// Step advances the mode state machine by cycles T-cycles. While the
// LCD is off (LCDC bit 7 clear) the state machine is frozen, matching
// real hardware.
func (p *PPU) Step(cycles uint8) {
	if p.lcdc&lcdcEnable == 0 {
		return
	}
	p.cycles += uint16(cycles)

	switch p.mode {
	case ModeOAM:
		if p.cycles >= oamScanCycles {
			p.cycles -= oamScanCycles
			p.setMode(ModeTransfer)
		}
	case ModeTransfer:
		if p.cycles >= transferCycles {
			p.cycles -= transferCycles
			p.renderScanline()
			p.setMode(ModeHBlank)
		}
	case ModeHBlank:
		if p.cycles >= hblankCycles {
			p.cycles -= hblankCycles
			p.advanceLine()
			if p.ly == visibleLines {
				p.setMode(ModeVBlank)
				p.irq.Request(interrupts.VBlankFlag)
			} else {
				p.setMode(ModeOAM)
			}
		}
	case ModeVBlank:
		if p.cycles >= lineCycles {
			p.cycles -= lineCycles
			p.advanceLine()
			if p.ly >= totalLines {
				p.ly = 0
				p.windowLine = 0
				p.checkLYC()
				p.setMode(ModeOAM)
			}
		}
	}
}

func (p *PPU) advanceLine() {
	p.ly++
	p.checkLYC()
}

func (p *PPU) setMode(m Mode) {
	p.mode = m
	p.stat = p.stat&^statModeMask | uint8(m)

	var source uint8
	switch m {
	case ModeHBlank:
		source = statHBlankInterrupt
	case ModeVBlank:
		source = statVBlankInterrupt
	case ModeOAM:
		source = statOAMInterrupt
	default:
		return
	}
	if p.stat&source != 0 {
		p.irq.Request(interrupts.LCDFlag)
	}
}

func (p *PPU) checkLYC() {
	if p.ly == p.lyc {
		if p.stat&statLYCFlag == 0 {
			p.stat |= statLYCFlag
			if p.stat&statLYCInterrupt != 0 {
				p.irq.Request(interrupts.LCDFlag)
			}
		}
	} else {
		p.stat &^= statLYCFlag
	}
}

// Mode reports the current STAT mode.
func (p *PPU) Mode() Mode { return p.mode }

// LY reports the current scanline.
func (p *PPU) LY() uint8 { return p.ly }

// Snapshot returns a defensive copy of the current framebuffer.
func (p *PPU) Snapshot() [Height][Width][3]uint8 {
	return p.framebuffer
}

// ReadRegister reads one of the LCD registers at 0xFF40-0xFF4B. The
// DMA trigger register is intercepted by the MMU and never reaches
// here; reading it back returns 0xFF same as any write-only register.
func (p *PPU) ReadRegister(address uint16) uint8 {
	switch address {
	case regLCDC:
		return p.lcdc
	case regSTAT:
		return p.stat | 0x80
	case regSCY:
		return p.scy
	case regSCX:
		return p.scx
	case regLY:
		return p.ly
	case regLYC:
		return p.lyc
	case regBGP:
		return p.bgp
	case regOBP0:
		return p.obp0
	case regOBP1:
		return p.obp1
	case regWY:
		return p.wy
	case regWX:
		return p.wx
	}
	return 0xFF
}

// WriteRegister writes one of the LCD registers. Writing LY resets it
// to 0, matching real hardware. Clearing LCDC's enable bit resets the
// mode to HBlank and LY to 0, since the state machine stays frozen
// while the LCD is off and should resume cleanly when re-enabled.
func (p *PPU) WriteRegister(address uint16, value uint8) {
	switch address {
	case regLCDC:
		wasEnabled := p.lcdc&lcdcEnable != 0
		p.lcdc = value
		if wasEnabled && value&lcdcEnable == 0 {
			p.ly = 0
			p.cycles = 0
			p.windowLine = 0
			p.mode = ModeHBlank
			p.stat &^= statModeMask
		}
	case regSTAT:
		// Bits 2 and 1-0 are hardware-maintained (LYC flag, mode);
		// only the four interrupt-source enable bits are writable.
		p.stat = p.stat&(statLYCFlag|statModeMask) | value&0x78
	case regSCY:
		p.scy = value
	case regSCX:
		p.scx = value
	case regLY:
		p.ly = 0
	case regLYC:
		p.lyc = value
		p.checkLYC()
	case regBGP:
		p.bgp = value
	case regOBP0:
		p.obp0 = value
	case regOBP1:
		p.obp1 = value
	case regWY:
		p.wy = value
	case regWX:
		p.wx = value
	}
}

// vramBlocked reports whether the CPU-facing VRAM path is gated shut:
// true only during pixel-transfer, when the PPU itself is reading
// tile data every cycle.
func (p *PPU) vramBlocked() bool {
	return p.lcdc&lcdcEnable != 0 && p.mode == ModeTransfer
}

// oamBlocked reports whether the CPU-facing OAM path is gated shut:
// true during OAM-scan and pixel-transfer.
func (p *PPU) oamBlocked() bool {
	return p.lcdc&lcdcEnable != 0 && (p.mode == ModeOAM || p.mode == ModeTransfer)
}

func (p *PPU) ReadVRAM(address uint16) uint8 {
	if p.vramBlocked() {
		return 0xFF
	}
	return p.vram[address-0x8000]
}

func (p *PPU) WriteVRAM(address uint16, value uint8) {
	if p.vramBlocked() {
		return
	}
	p.vram[address-0x8000] = value
}

func (p *PPU) ReadOAM(address uint16) uint8 {
	if p.oamBlocked() {
		return 0xFF
	}
	return p.oam[address-0xFE00]
}

func (p *PPU) WriteOAM(address uint16, value uint8) {
	if p.oamBlocked() {
		return
	}
	p.oam[address-0xFE00] = value
}

// WriteOAMDirect is the OAM-DMA controller's path: a separate bus
// master, unaffected by the CPU-facing mode gating.
func (p *PPU) WriteOAMDirect(offset uint8, value uint8) {
	p.oam[offset] = value
}
