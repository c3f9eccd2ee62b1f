// Package palette holds the host-selectable 4-shade color tables the
// PPU translates BGP/OBP0/OBP1 shade indices through. The Game Boy
// itself only ever produced four shades of green-gray; these named
// tables are the common "virtual DMG" palettes collectors' tools and
// modern shells offer in place of the real thing.
package palette

// Palette maps the four 2-bit shade indices (0 = lightest, 3 =
// darkest) to an RGB triple.
type Palette [4][3]uint8

// Named is the table of built-in palettes, in cycle order.
var Named = []struct {
	Name    string
	Palette Palette
}{
	{"dmg", Palette{{0x9B, 0xBC, 0x0F}, {0x8B, 0xAC, 0x0F}, {0x30, 0x62, 0x30}, {0x0F, 0x38, 0x0F}}},
	{"pokemon_blue", Palette{{0xFF, 0xFF, 0xB5}, {0x7B, 0xC6, 0x7B}, {0x6B, 0x8C, 0x42}, {0x5A, 0x39, 0x21}}},
	{"pokemon_red", Palette{{0xFF, 0xEF, 0xAC}, {0xF7, 0xB5, 0x8C}, {0x84, 0x6B, 0x59}, {0x29, 0x29, 0x29}}},
	{"kirokaze", Palette{{0xE2, 0xF3, 0xE4}, {0x94, 0xE3, 0x44}, {0x46, 0x87, 0x8F}, {0x33, 0x2C, 0x50}}},
	{"ice_cream", Palette{{0xFF, 0xF6, 0xD3}, {0xF9, 0xA8, 0x75}, {0xEB, 0x6B, 0x6F}, {0x7C, 0x3F, 0x58}}},
	{"mist", Palette{{0xC4, 0xF0, 0xC2}, {0x5A, 0xB9, 0xA8}, {0x1E, 0x60, 0x6E}, {0x2D, 0x1B, 0x00}}},
	{"gray_2bit", Palette{{0xFF, 0xFF, 0xFF}, {0xB0, 0xB0, 0xB0}, {0x60, 0x60, 0x60}, {0x00, 0x00, 0x00}}},
	{"demichrome_2bit", Palette{{0xE9, 0xEF, 0xEC}, {0xA8, 0xB4, 0xAC}, {0x52, 0x5E, 0x64}, {0x20, 0x20, 0x24}}},
	{"rustic", Palette{{0xED, 0xB4, 0xA1}, {0xA4, 0x6D, 0x5E}, {0x5C, 0x35, 0x38}, {0x20, 0x12, 0x1B}}},
	{"wish", Palette{{0x8B, 0xE5, 0xFF}, {0x60, 0x8F, 0xCF}, {0x75, 0x50, 0xE8}, {0x42, 0x2A, 0x9D}}},
	{"ayy4", Palette{{0xF1, 0xF2, 0xDA}, {0xFF, 0xC0, 0x7E}, {0x5E, 0x48, 0xE8}, {0x17, 0x0F, 0x26}}},
	{"crimson", Palette{{0xEB, 0xA6, 0xA6}, {0xB5, 0x6B, 0x6B}, {0x6B, 0x35, 0x35}, {0x1A, 0x0A, 0x0A}}},
	{"arq4", Palette{{0xFF, 0xFF, 0xFF}, {0x6B, 0x6D, 0x8D}, {0x5C, 0x40, 0x33}, {0x00, 0x00, 0x00}}},
	{"pumpkin", Palette{{0xFF, 0xE6, 0xC7}, {0xF7, 0xA4, 0x41}, {0x9E, 0x4A, 0x1B}, {0x2B, 0x0F, 0x08}}},
	{"aqu4", Palette{{0x81, 0xD1, 0xCB}, {0x3E, 0x8E, 0x8B}, {0x2A, 0x5A, 0x63}, {0x12, 0x2A, 0x3A}}},
}

// Default is the palette the PPU starts with.
var Default = Named[0].Palette

// Lookup returns the named palette and true, or a zero Palette and
// false if name isn't one of Named.
func Lookup(name string) (Palette, bool) {
	for _, p := range Named {
		if p.Name == name {
			return p.Palette, true
		}
	}
	return Palette{}, false
}

// Next returns the palette that follows the one at index, wrapping
// around, along with its new index — mirroring a physical shell's
// "cycle palette" button.
func Next(index int) (Palette, int) {
	next := (index + 1) % len(Named)
	return Named[next].Palette, next
}
