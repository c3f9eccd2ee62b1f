// Package joypad emulates the Game Boy's button matrix and the P1
// (0xFF00) register protocol used to read it back.
package joypad

// Button identifies a physical button by its bit position within the
// 8-bit matrix: the low nibble is the action row (A, B, Select,
// Start), the high nibble is the direction row (Right, Left, Up,
// Down).
type Button = uint8

const (
	ButtonA      Button = 1 << 0
	ButtonB      Button = 1 << 1
	ButtonSelect Button = 1 << 2
	ButtonStart  Button = 1 << 3
	ButtonRight  Button = 1 << 4
	ButtonLeft   Button = 1 << 5
	ButtonUp     Button = 1 << 6
	ButtonDown   Button = 1 << 7
)

const (
	selectAction = 1 << 5 // P1 bit 5: 0 selects the action-button row
	selectDirect = 1 << 4 // P1 bit 4: 0 selects the direction-button row
)

// State is the joypad's button matrix and row-selector flags.
//
// matrix holds one bit per button; 0 means pressed, 1 means released,
// matching the hardware's active-low convention. selector holds the
// two row-select bits exactly as last written to P1 (0 = selected).
type State struct {
	matrix   uint8
	selector uint8
}

// New returns a joypad with every button released and no row
// selected.
func New() *State {
	return &State{matrix: 0xFF, selector: selectAction | selectDirect}
}

// ReadP1 returns the current value of the P1 register: bits 7-6 are
// always 1, bits 5-4 echo the row selector, and bits 3-0 are the AND
// of whichever matrix halves are currently selected (a half that
// isn't selected contributes all ones).
func (s *State) ReadP1() uint8 {
	nibble := uint8(0x0F)
	if s.selector&selectAction == 0 {
		nibble &= s.matrix & 0x0F
	}
	if s.selector&selectDirect == 0 {
		nibble &= (s.matrix >> 4) & 0x0F
	}
	return 0xC0 | s.selector | nibble
}

// WriteP1 updates the row selector from bits 5 and 4 of value.
func (s *State) WriteP1(value uint8) {
	s.selector = value & 0x30
}

// Press marks a button as held down. Idempotent: pressing an
// already-pressed button has no further effect. Returns true if this
// press should raise the joypad interrupt — i.e. the button's row is
// currently selected and the button transitioned from released to
// pressed.
func (s *State) Press(button Button) bool {
	wasReleased := s.matrix&button != 0
	s.matrix &^= button
	if !wasReleased {
		return false
	}
	return s.rowSelected(button)
}

// Release marks a button as not held down. Idempotent.
func (s *State) Release(button Button) {
	s.matrix |= button
}

func (s *State) rowSelected(button Button) bool {
	if button <= ButtonStart {
		return s.selector&selectAction == 0
	}
	return s.selector&selectDirect == 0
}
