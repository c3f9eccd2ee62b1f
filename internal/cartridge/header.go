package cartridge

import "fmt"

// Type is the MBC family the Core actually emulates, collapsed from
// the full header type-byte enum. Anything the Core doesn't model is
// reported as TypeOther and served through the generic fallback.
type Type uint8

const (
	TypeNone Type = iota
	TypeMBC1
	TypeMBC2
	TypeMBC3
	TypeMBC5
	TypeOther
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "ROM ONLY"
	case TypeMBC1:
		return "MBC1"
	case TypeMBC2:
		return "MBC2"
	case TypeMBC3:
		return "MBC3"
	case TypeMBC5:
		return "MBC5"
	default:
		return "Other/Unsupported"
	}
}

// rawTypeToType maps every header type byte seen in the wild to the
// collapsed Type above.
var rawTypeToType = map[uint8]Type{
	0x00: TypeNone,
	0x08: TypeNone,
	0x09: TypeNone,
	0x01: TypeMBC1,
	0x02: TypeMBC1,
	0x03: TypeMBC1,
	0x05: TypeMBC2,
	0x06: TypeMBC2,
	0x0F: TypeMBC3,
	0x10: TypeMBC3,
	0x11: TypeMBC3,
	0x12: TypeMBC3,
	0x13: TypeMBC3,
	0x19: TypeMBC5,
	0x1A: TypeMBC5,
	0x1B: TypeMBC5,
	0x1C: TypeMBC5,
	0x1D: TypeMBC5,
	0x1E: TypeMBC5,
}

var ramSizeCodes = map[uint8]uint{
	0x00: 0,
	0x01: 0,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// CGBFlag records header byte 0x143. The Core runs every cartridge in
// DMG mode regardless of this flag; it's retained for diagnostics
// only, since CGB-specific behavior is out of scope.
type CGBFlag uint8

const (
	CGBFlagNone CGBFlag = iota
	CGBFlagSupported
	CGBFlagOnly
)

func (f CGBFlag) String() string {
	switch f {
	case CGBFlagSupported:
		return "CGB-supported"
	case CGBFlagOnly:
		return "CGB-only"
	default:
		return "DMG"
	}
}

// Header is the parsed cartridge header, address range 0x0100-0x014F.
type Header struct {
	Title            string
	ManufacturerCode string
	CGBFlag          CGBFlag
	NewLicenseeCode  string
	SGBFlag          bool
	RawType          uint8
	Type             Type
	ROMSize          uint
	RAMSize          uint
	CountryCode      uint8
	OldLicenseeCode  uint8
	MaskROMVersion   uint8
	HeaderChecksum   uint8
	GlobalChecksum   uint16
	ChecksumOK       bool
}

// parseHeader parses the 0x50-byte header region (offsets 0x100-0x14F
// of the ROM) passed in header. The caller is expected to have already
// validated that the ROM is at least 0x150 bytes long; parseHeader
// never panics on the bytes it's given.
func parseHeader(header []byte) Header {
	h := Header{}

	switch header[0x43] {
	case 0x80:
		h.CGBFlag = CGBFlagSupported
	case 0xC0:
		h.CGBFlag = CGBFlagOnly
	default:
		h.CGBFlag = CGBFlagNone
	}

	titleEnd := 0x44
	if h.CGBFlag != CGBFlagNone {
		titleEnd = 0x43
	}
	h.Title = trimNulls(header[0x34:titleEnd])
	h.ManufacturerCode = trimNulls(header[0x3F:0x43])
	h.NewLicenseeCode = string(header[0x44:0x46])
	h.SGBFlag = header[0x46] == 0x03

	h.RawType = header[0x47]
	if t, ok := rawTypeToType[h.RawType]; ok {
		h.Type = t
	} else {
		h.Type = TypeOther
	}

	h.ROMSize = (32 * 1024) << header[0x48]
	h.RAMSize = ramSizeCodes[header[0x49]]

	h.CountryCode = header[0x4A]
	h.OldLicenseeCode = header[0x4B]
	h.MaskROMVersion = header[0x4C]
	h.HeaderChecksum = header[0x4D]
	h.GlobalChecksum = uint16(header[0x4E])<<8 | uint16(header[0x4F])

	sum := uint8(0)
	for _, b := range header[0x34:0x4D] {
		sum = sum - b - 1
	}
	h.ChecksumOK = sum == h.HeaderChecksum

	return h
}

// trimNulls returns b up to its first NUL byte, the convention
// cartridge titles use to pad to their field width.
func trimNulls(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func (h Header) GameboyColor() bool {
	return h.CGBFlag == CGBFlagSupported || h.CGBFlag == CGBFlagOnly
}

func (h Header) String() string {
	return fmt.Sprintf("%q [%s, %s] ROM=%dKiB RAM=%dKiB", h.Title, h.Type, h.CGBFlag, h.ROMSize/1024, h.RAMSize/1024)
}
