//go:build !test

// Package inputdevice adapts physical input hardware to the
// gameboy.Button press/release calls the Core expects.
package inputdevice

import (
	"github.com/veandco/go-sdl2/sdl"

	"pocketgb/internal/gameboy"
)

// axisThreshold is how far off-center an analog stick axis must read
// before it counts as a directional press.
const axisThreshold = 16384

// SDLGamepad polls an SDL2 joystick and turns its button and D-pad/
// axis events into gameboy.Button press/release calls against a
// target GameBoy.
type SDLGamepad struct {
	joystick *sdl.Joystick
	buttons  map[uint8]gameboy.Button
	axes     map[uint8][2]gameboy.Button // axis index -> {negative, positive}
}

// defaultButtons is a common layout for a standard SDL game
// controller mapped as a raw joystick: face buttons 0/1 as A/B,
// 6/7 as Select/Start.
var defaultButtons = map[uint8]gameboy.Button{
	0: gameboy.ButtonA,
	1: gameboy.ButtonB,
	6: gameboy.ButtonSelect,
	7: gameboy.ButtonStart,
}

var defaultAxes = map[uint8][2]gameboy.Button{
	0: {gameboy.ButtonLeft, gameboy.ButtonRight},
	1: {gameboy.ButtonUp, gameboy.ButtonDown},
}

// OpenSDLGamepad initializes SDL's joystick subsystem and opens
// joystick index 0. The caller must have already called sdl.Init for
// any other subsystems it needs; this only adds sdl.INIT_JOYSTICK.
func OpenSDLGamepad() (*SDLGamepad, error) {
	if err := sdl.InitSubSystem(sdl.INIT_JOYSTICK); err != nil {
		return nil, err
	}
	if sdl.NumJoysticks() < 1 {
		return &SDLGamepad{buttons: defaultButtons, axes: defaultAxes}, nil
	}
	js := sdl.JoystickOpen(0)
	return &SDLGamepad{joystick: js, buttons: defaultButtons, axes: defaultAxes}, nil
}

// Close releases the underlying joystick handle, if one was opened.
func (g *SDLGamepad) Close() {
	if g.joystick != nil {
		g.joystick.Close()
	}
}

// Poll drains pending SDL joystick events and applies them to gb as
// Press/Release calls. Call once per host frame.
func (g *SDLGamepad) Poll(gb *gameboy.GameBoy) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.JoyButtonEvent:
			button, ok := g.buttons[e.Button]
			if !ok {
				continue
			}
			if e.State == sdl.PRESSED {
				gb.Press(button)
			} else {
				gb.Release(button)
			}
		case *sdl.JoyAxisEvent:
			pair, ok := g.axes[e.Axis]
			if !ok {
				continue
			}
			negative, positive := pair[0], pair[1]
			switch {
			case e.Value < -axisThreshold:
				gb.Release(positive)
				gb.Press(negative)
			case e.Value > axisThreshold:
				gb.Release(negative)
				gb.Press(positive)
			default:
				gb.Release(negative)
				gb.Release(positive)
			}
		}
	}
}
