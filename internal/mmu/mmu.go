// Package mmu provides the memory management unit: the single address
// decoder every other component reads and writes the 64 KiB address
// space through. It owns work RAM and high RAM directly, and
// delegates to the cartridge, PPU, timer, joypad, and interrupt
// service for the regions and registers they own.
package mmu

import (
	"io"

	"pocketgb/internal/boot"
	"pocketgb/internal/cartridge"
	"pocketgb/internal/interrupts"
	"pocketgb/internal/ram"
	"pocketgb/internal/timer"
	"pocketgb/pkg/log"
)

// PPU is the subset of PPU behavior the MMU needs: gated register and
// VRAM/OAM access for the CPU-facing path, plus a direct OAM writer
// for the DMA controller, which is a separate bus master and isn't
// subject to the CPU's mode-based access restrictions.
type PPU interface {
	ReadRegister(address uint16) uint8
	WriteRegister(address uint16, value uint8)
	ReadVRAM(address uint16) uint8
	WriteVRAM(address uint16, value uint8)
	ReadOAM(address uint16) uint8
	WriteOAM(address uint16, value uint8)
	WriteOAMDirect(offset uint8, value uint8)
}

// Timer is the subset of Timer behavior the MMU routes register
// access to.
type Timer interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Joypad is the subset of joypad behavior the MMU routes P1 access
// to.
type Joypad interface {
	ReadP1() uint8
	WriteP1(value uint8)
}

const (
	wramSize = 0x2000
	hramSize = 0x7F

	p1Address     uint16 = 0xFF00
	serialData    uint16 = 0xFF01
	serialControl uint16 = 0xFF02
	dmaAddress    uint16 = 0xFF46
	bootLockAddr  uint16 = 0xFF50
	ieAddress     uint16 = 0xFFFF
)

// MMU is the bus arbitrator.
type MMU struct {
	cart *cartridge.Cartridge
	boot *boot.ROM
	ppu  PPU
	tmr  Timer
	pad  Joypad
	irq  *interrupts.Service

	wram *ram.RAM
	hram *ram.RAM

	bootDisabled bool

	serialData uint8
	serialSink io.Writer

	log log.Logger
}

// New returns an MMU wiring together the given components. serialSink
// receives the byte written to 0xFF01 whenever the host triggers the
// serial debug side effect (a write of 0x81 to 0xFF02); pass io.Discard
// to suppress it.
func New(cart *cartridge.Cartridge, bootROM *boot.ROM, ppu PPU, tmr Timer, pad Joypad, irq *interrupts.Service, serialSink io.Writer, l log.Logger) *MMU {
	if l == nil {
		l = log.NewNullLogger()
	}
	if serialSink == nil {
		serialSink = io.Discard
	}
	return &MMU{
		cart:       cart,
		boot:       bootROM,
		ppu:        ppu,
		tmr:        tmr,
		pad:        pad,
		irq:        irq,
		wram:       ram.New(wramSize),
		hram:       ram.New(hramSize),
		serialSink: serialSink,
		log:        l,
	}
}

// Read returns the byte at address via the CPU-facing gated path.
func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address < 0x100 && !m.bootDisabled && m.boot != nil:
		return m.boot.Read(address)
	case address < 0x8000:
		return m.cart.Read(address)
	case address < 0xA000:
		return m.ppu.ReadVRAM(address)
	case address < 0xC000:
		return m.cart.Read(address)
	case address < 0xE000:
		return m.wram.Read((address - 0xC000) & 0x1FFF)
	case address < 0xFE00:
		return m.wram.Read((address - 0xE000) & 0x1FFF)
	case address < 0xFEA0:
		return m.ppu.ReadOAM(address)
	case address < 0xFF00:
		return 0xFF
	case address == p1Address:
		return m.pad.ReadP1()
	case address == serialData:
		return m.serialData
	case address == serialControl:
		return 0xFF
	case address == timer.DIVAddress, address == timer.TIMAAddress, address == timer.TMAAddress, address == timer.TACAddress:
		return m.tmr.Read(address)
	case address == interrupts.FlagRegister:
		return m.irq.Read(address)
	case address == dmaAddress:
		return 0xFF
	case address == bootLockAddr:
		return 0xFF
	case address >= 0xFF40 && address <= 0xFF4B:
		return m.ppu.ReadRegister(address)
	case address < 0xFF80:
		return 0xFF
	case address < 0xFFFF:
		return m.hram.Read(address - 0xFF80)
	case address == ieAddress:
		return m.irq.Read(address)
	}
	return 0xFF
}

// Write stores value at address via the CPU-facing gated path.
func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address < 0x8000:
		m.cart.Write(address, value)
	case address < 0xA000:
		m.ppu.WriteVRAM(address, value)
	case address < 0xC000:
		m.cart.Write(address, value)
	case address < 0xE000:
		m.wram.Write((address-0xC000)&0x1FFF, value)
	case address < 0xFE00:
		m.wram.Write((address-0xE000)&0x1FFF, value)
	case address < 0xFEA0:
		m.ppu.WriteOAM(address, value)
	case address < 0xFF00:
		// unusable region, writes dropped
	case address == p1Address:
		m.pad.WriteP1(value)
	case address == serialData:
		m.serialData = value
	case address == serialControl:
		if value == 0x81 {
			_, _ = m.serialSink.Write([]byte{m.serialData})
		}
	case address == timer.DIVAddress, address == timer.TIMAAddress, address == timer.TMAAddress, address == timer.TACAddress:
		m.tmr.Write(address, value)
	case address == interrupts.FlagRegister:
		m.irq.Write(address, value)
	case address == dmaAddress:
		m.runOAMDMA(value)
	case address == bootLockAddr:
		if value != 0 {
			m.bootDisabled = true
		}
	case address >= 0xFF40 && address <= 0xFF4B:
		m.ppu.WriteRegister(address, value)
	case address < 0xFF80:
		// unmapped I/O, dropped
	case address < 0xFFFF:
		m.hram.Write(address-0xFF80, value)
	case address == ieAddress:
		m.irq.Write(address, value)
	}
}

// runOAMDMA copies 160 bytes from (src<<8) through OAM. It's performed
// in a single synchronous call, so from the CPU's perspective it is
// atomic: no instruction can observe a partially-copied OAM.
func (m *MMU) runOAMDMA(src uint8) {
	base := uint16(src) << 8
	for i := uint8(0); i < 0xA0; i++ {
		m.ppu.WriteOAMDirect(i, m.Read(base+uint16(i)))
	}
}
