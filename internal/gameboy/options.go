package gameboy

import (
	"io"

	"pocketgb/pkg/log"
)

// Option configures a GameBoy at construction time.
type Option func(*GameBoy)

// WithLogger routes the emulator's diagnostic output through l instead
// of the default no-op logger.
func WithLogger(l log.Logger) Option {
	return func(gb *GameBoy) {
		gb.log = l
	}
}

// WithPalette selects one of the named built-in display palettes
// (see internal/ppu/palette.Named). An unknown name is ignored and
// the default palette is kept.
func WithPalette(name string) Option {
	return func(gb *GameBoy) {
		gb.PPU.SetPalette(name)
	}
}

// WithSerialSink routes the byte stream written through the serial
// port to w. The default is io.Discard.
func WithSerialSink(w io.Writer) Option {
	return func(gb *GameBoy) {
		gb.serialSink = w
	}
}
