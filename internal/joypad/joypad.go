// Package joypad provides an implementation of the Game Boy
// joypad. The joypad is used to read the state of the buttons
// and the direction keys.
package joypad

import (
	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/bits"
)

// Button represents a physical button on the Game Boy.
type Button = uint8

const (
	// ButtonA is the A button.
	ButtonA Button = iota
	// ButtonB is the B button.
	ButtonB
	// ButtonSelect is the Select button.
	ButtonSelect
	// ButtonStart is the Start button.
	ButtonStart
	// ButtonRight is the Right button.
	ButtonRight
	// ButtonLeft is the Left button.
	ButtonLeft
	// ButtonUp is the Up button.
	ButtonUp
	// ButtonDown is the Down button.
	ButtonDown
)

// State represents the state of the joypad. Select either
// action or direction buttons by writing to the register,
// and then read out bits 0-3 to get the state of the buttons.
//
//	Bit 7 - Not used
//	Bit 6 - Not used
//	Bit 5 - P15 Select Button Keys      (0=Select)
//	Bit 4 - P14 Select Direction Keys   (0=Select)
//	Bit 3 - P13 Input Down  or Start    (0=Pressed) (Read Only)
//	Bit 2 - P12 Input Up    or Select   (0=Pressed) (Read Only)
//	Bit 1 - P11 Input Left  or Button B (0=Pressed) (Read Only)
//	Bit 0 - P10 Input Right or Button A (0=Pressed) (Read Only)
type State struct {
	// State holds a set bit for every pressed button, the lower
	// 4 bits for the action buttons and the upper 4 bits for
	// the direction buttons.
	State    Button
	selected uint8
	irq      *interrupts.Service
}

// New returns a new joypad state, with P1 registered in the
// given hardware register table.
func New(regs *types.HardwareRegisters, irq *interrupts.Service) *State {
	s := &State{
		selected: 0x30,
		irq:      irq,
	}
	regs.RegisterHardware(
		types.P1,
		func(v uint8) {
			// only the select bits are writable
			s.selected = v & 0x30
		},
		s.read,
	)

	return s
}

func (s *State) read() uint8 {
	d := uint8(0)
	if s.selected&types.Bit4 == 0 {
		d |= s.State >> 4 & 0xf
	}
	if s.selected&types.Bit5 == 0 {
		d |= s.State & 0xf
	}

	// pressed buttons read as 0
	return 0xC0 | s.selected | (d ^ 0xf)
}

// Press presses a button.
func (s *State) Press(button Button) {
	if bits.Test(s.State, button) {
		return
	}
	s.State = bits.Set(s.State, button)
	s.irq.Request(interrupts.JoypadFlag)
}

// Release releases a button.
func (s *State) Release(button Button) {
	s.State = bits.Reset(s.State, button)
}
