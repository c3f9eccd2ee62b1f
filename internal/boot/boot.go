// Package boot provides the boot ROM overlay mapped at 0x0000-0x00FF
// until the cartridge takes over. The boot ROM itself (the raw 256
// bytes) is supplied by the host; this package only validates it and
// identifies which known boot ROM variant it is.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash"
)

// Size is the length in bytes of the classic DMG/MGB/SGB boot ROM.
// CGB boot ROMs (2304 bytes) are out of scope per the CGB non-goal.
const Size = 256

// ROM is a validated boot ROM image.
type ROM struct {
	raw      [Size]byte
	checksum string // MD5, used to identify known variants
	fnv      uint64 // xxHash64, used for fast equality/logging
}

// New validates and wraps a boot ROM image. It returns an error
// rather than panicking on a malformed image, since the image
// originates from host-supplied (possibly untrusted) input.
func New(raw []byte) (*ROM, error) {
	if len(raw) != Size {
		return nil, fmt.Errorf("boot: invalid boot rom length: got %d, want %d", len(raw), Size)
	}
	r := &ROM{}
	copy(r.raw[:], raw)
	sum := md5.Sum(r.raw[:])
	r.checksum = hex.EncodeToString(sum[:])
	r.fnv = xxhash.Sum64(r.raw[:])
	return r, nil
}

// Read returns the byte at the given address within the boot ROM.
func (r *ROM) Read(addr uint16) uint8 {
	if int(addr) >= Size {
		return 0xFF
	}
	return r.raw[addr]
}

// Checksum returns the MD5 checksum of the boot ROM, used to look up
// known variants.
func (r *ROM) Checksum() string {
	if r == nil {
		return ""
	}
	return r.checksum
}

// Fingerprint returns an xxHash64 digest of the boot ROM, suitable for
// fast equality checks and log lines where a cryptographic hash isn't
// warranted.
func (r *ROM) Fingerprint() uint64 {
	if r == nil {
		return 0
	}
	return r.fnv
}

// Model identifies the boot ROM variant by its checksum, or "unknown"
// if it isn't one of the recognized dumps.
func (r *ROM) Model() string {
	if r == nil {
		return "none"
	}
	if model, ok := knownBootROMChecksums[r.checksum]; ok {
		return model
	}
	return "unknown"
}

var knownBootROMChecksums = map[string]string{
	dmg0:        "Game Boy (DMG-0)",
	dmg:         "Game Boy (DMG-01)",
	mgb:         "Game Boy Pocket",
	sgb:         "Super Game Boy",
	sgb2:        "Super Game Boy 2",
	fortune:     "Fortune/Bitman 3000B",
	gameFighter: "Game Fighter",
	maxStation:  "Max Station",
}

const (
	// dmg0 is the checksum of the DMG early boot ROM, a variant found
	// only in very early DMG units sold in Japan: on a boot failure it
	// flashes the screen instead of hanging after the Nintendo logo.
	dmg0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// dmg is the checksum of the boot ROM found in most original
	// DMG-01 units.
	dmg = "32fbbd84168d3482956eb3c5051637f5"
	// mgb differs from dmg by a single byte: it loads 0xFF into A
	// rather than 0x01, letting games detect Game Boy Pocket hardware.
	mgb = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// sgb sends the cartridge header to the SNES via the Super Game
	// Boy link instead of animating a logo directly.
	sgb = "d574d4f9c12f305074798f54c091a8b4"
	// sgb2 differs from sgb the same way mgb differs from dmg.
	sgb2 = "e0430bca9925fb9882148fd2dc2418c1"
	// fortune is the boot ROM of the "Fortune/Bitman 3000B" clone.
	fortune = "92ed4eca17d61fcd53f8a64c3ce84743"
	// gameFighter is the boot ROM of the "Game Fighter" clone.
	gameFighter = "6a7b8ee12a793f66a969c6a2b8926cc9"
	// maxStation is the boot ROM of the "Maxstation" clone.
	maxStation = "77a7021db824010a678791f6d062943d"
)
