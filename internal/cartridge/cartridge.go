// Package cartridge decodes a Game Boy ROM image's header and serves
// reads/writes through whichever memory bank controller the header's
// type byte calls for.
package cartridge

import "pocketgb/pkg/log"

// Controller is the behavior every MBC variant (and the generic
// fallback) implements. It is addressed with the full CPU address
// space; callers don't need to know which region (ROM vs. external
// RAM) an address falls in.
type Controller interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	ExternalRAM() []byte
	LoadExternalRAM(data []byte)
}

// Cartridge is a parsed ROM image bound to the Controller its header
// type calls for.
type Cartridge struct {
	Controller
	header Header
	log    log.Logger
}

// New parses rom's header and constructs the Cartridge. It never
// fails on a malformed or short image: unparsable headers produce a
// zero Header and an empty-ROM fallback controller, since a cartridge
// slot is expected to always be readable even with nothing useful
// inserted. A nil logger falls back to a no-op logger.
func New(rom []byte, l log.Logger) *Cartridge {
	if l == nil {
		l = log.NewNullLogger()
	}
	if len(rom) < 0x150 {
		l.Warnf("cartridge: rom shorter than header region, treating as blank")
		return &Cartridge{Controller: newGenericFallback(nil), log: l}
	}

	header := parseHeader(rom[0x100:0x150])
	if !header.ChecksumOK {
		l.Warnf("cartridge: header checksum mismatch for %q", header.Title)
	}
	l.Infof("cartridge: loaded %s", header.String())

	c := &Cartridge{header: header, log: l}
	switch header.Type {
	case TypeMBC1:
		c.Controller = newMBC1(rom, header)
	case TypeMBC3:
		c.Controller = newMBC3(rom, header)
	case TypeNone:
		c.Controller = newROMOnly(rom)
	default:
		l.Warnf("cartridge: unsupported mbc type %#02x, falling back to linear bank-0 reads", header.RawType)
		c.Controller = newGenericFallback(rom)
	}
	return c
}

// Header returns the cartridge's parsed header.
func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the cartridge's title as stored in its header.
func (c *Cartridge) Title() string {
	return c.header.Title
}
