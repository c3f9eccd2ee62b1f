package ppu

// renderScanline composites the background, window, and sprite layers
// for the current LY into the framebuffer. It runs once per line, at
// the Transfer-to-HBlank boundary, rather than pixel-by-pixel.
func (p *PPU) renderScanline() {
	if p.lcdc&lcdcBGEnable != 0 {
		p.renderBackgroundWindow()
	} else {
		shade := p.shade(p.bgp, 0)
		for x := 0; x < Width; x++ {
			p.framebuffer[p.ly][x] = p.pal[shade]
			p.bgIndex[x] = 0
		}
	}
	if p.lcdc&lcdcObjEnable != 0 {
		p.renderSprites()
	}
}

func (p *PPU) shade(palReg uint8, colorIndex uint8) uint8 {
	return (palReg >> (colorIndex * 2)) & 0x03
}

func (p *PPU) renderBackgroundWindow() {
	ly := p.ly
	windowEnabled := p.lcdc&lcdcWindowEnable != 0 && p.wy <= ly
	windowUsed := false

	for x := 0; x < Width; x++ {
		var tileMapBase uint16
		var mapX, mapY uint8

		useWindow := windowEnabled && int(x) >= int(p.wx)-7
		if useWindow {
			windowUsed = true
			if p.lcdc&lcdcWindowTileMap != 0 {
				tileMapBase = 0x9C00
			} else {
				tileMapBase = 0x9800
			}
			mapX = uint8(int(x) - (int(p.wx) - 7))
			mapY = p.windowLine
		} else {
			if p.lcdc&lcdcBGTileMap != 0 {
				tileMapBase = 0x9C00
			} else {
				tileMapBase = 0x9800
			}
			mapX = uint8(x) + p.scx
			mapY = ly + p.scy
		}

		tileCol := uint16(mapX / 8)
		tileRow := uint16(mapY / 8)
		tileNumber := p.vram[tileMapBase+tileRow*32+tileCol-0x8000]

		tileAddr := bgTileAddr(p.lcdc, tileNumber)
		lineOffset := uint16(mapY%8) * 2
		lo := p.vram[tileAddr+lineOffset-0x8000]
		hi := p.vram[tileAddr+lineOffset+1-0x8000]

		colorIndex := tilePixel(lo, hi, mapX%8)
		shade := p.shade(p.bgp, colorIndex)

		p.framebuffer[ly][x] = p.pal[shade]
		p.bgIndex[x] = colorIndex
	}

	if windowUsed {
		p.windowLine++
	}
}

// spriteAttr is one 4-byte OAM entry, decoded.
type spriteAttr struct {
	y, x       int
	tile       uint8
	palette1   bool
	xFlip      bool
	yFlip      bool
	behindBG   bool
}

// renderSprites selects up to 10 sprites intersecting the current
// line, in OAM order, and draws them left-to-right within each
// sprite, later entries overwriting earlier ones' opaque pixels. This
// repo doesn't implement the hardware's X-coordinate priority sort
// since nothing in this design depends on sprite-vs-sprite ordering
// beyond OAM order.
func (p *PPU) renderSprites() {
	height := 8
	if p.lcdc&lcdcObjSize != 0 {
		height = 16
	}
	ly := int(p.ly)

	var selected []spriteAttr
	for i := 0; i < 40 && len(selected) < 10; i++ {
		base := i * 4
		sy := int(p.oam[base]) - 16
		if ly < sy || ly >= sy+height {
			continue
		}
		sx := int(p.oam[base+1]) - 8
		attr := p.oam[base+3]
		selected = append(selected, spriteAttr{
			y:        sy,
			x:        sx,
			tile:     p.oam[base+2],
			palette1: attr&0x10 != 0,
			xFlip:    attr&0x20 != 0,
			yFlip:    attr&0x40 != 0,
			behindBG: attr&0x80 != 0,
		})
	}

	for _, s := range selected {
		row := ly - s.y
		if s.yFlip {
			row = height - 1 - row
		}
		tileNumber := s.tile
		if height == 16 {
			tileNumber &^= 0x01
		}
		tileAddr := 0x8000 + uint16(tileNumber)*16 + uint16(row)*2
		lo := p.vram[tileAddr-0x8000]
		hi := p.vram[tileAddr+1-0x8000]

		for px := 0; px < 8; px++ {
			col := uint8(px)
			if s.xFlip {
				col = 7 - col
			}
			colorIndex := tilePixel(lo, hi, col)
			if colorIndex == 0 {
				continue
			}
			x := s.x + px
			if x < 0 || x >= Width {
				continue
			}
			if s.behindBG && p.bgIndex[x] != 0 {
				continue
			}
			palReg := p.obp0
			if s.palette1 {
				palReg = p.obp1
			}
			p.framebuffer[p.ly][x] = p.pal[p.shade(palReg, colorIndex)]
		}
	}
}
