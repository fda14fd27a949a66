package joypad

import (
	"testing"

	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

func TestState_Read(t *testing.T) {
	regs := types.NewHardwareRegisters()
	irq := interrupts.NewService(regs)
	pad := New(regs, irq)

	if v := regs.Read(types.P1); v != 0xFF {
		t.Errorf("expected 0xFF with nothing selected, got 0x%02X", v)
	}

	pad.Press(ButtonA)
	pad.Press(ButtonDown)
	if irq.Flag&interrupts.JoypadFlag == 0 {
		t.Errorf("expected joypad interrupt to be requested")
	}

	// select the action buttons
	regs.Write(types.P1, 0x10)
	if v := regs.Read(types.P1); v != 0xDE {
		t.Errorf("expected 0xDE with A pressed, got 0x%02X", v)
	}

	// select the direction buttons
	regs.Write(types.P1, 0x20)
	if v := regs.Read(types.P1); v != 0xE7 {
		t.Errorf("expected 0xE7 with down pressed, got 0x%02X", v)
	}

	pad.Release(ButtonDown)
	if v := regs.Read(types.P1); v != 0xEF {
		t.Errorf("expected 0xEF after release, got 0x%02X", v)
	}
}

func TestState_PressHeld(t *testing.T) {
	regs := types.NewHardwareRegisters()
	irq := interrupts.NewService(regs)
	pad := New(regs, irq)

	pad.Press(ButtonStart)
	irq.Flag = 0
	pad.Press(ButtonStart)
	if irq.Flag != 0 {
		t.Errorf("expected no interrupt for a held button")
	}
}
