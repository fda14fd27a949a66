package timer

import (
	"testing"

	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

type countingStepper int

func (c *countingStepper) Step() { *c++ }

func newTestController() (*Controller, *types.HardwareRegisters, *interrupts.Service) {
	regs := types.NewHardwareRegisters()
	irq := interrupts.NewService(regs)
	return NewController(regs, irq), regs, irq
}

func TestController_Overflow(t *testing.T) {
	c, regs, irq := newTestController()
	regs.Write(types.TMA, 0x42)
	regs.Write(types.TIMA, 0xFF)
	regs.Write(types.TAC, 0b101)

	// bit 3 of the divider falls once every 16 ticks
	c.Advance(3)
	if v := regs.Read(types.TIMA); v != 0xFF {
		t.Fatalf("expected TIMA to be 0xFF, got 0x%02X", v)
	}
	c.Advance(1)
	if v := regs.Read(types.TIMA); v != 0x42 {
		t.Errorf("expected TIMA to reload to 0x42, got 0x%02X", v)
	}
	if irq.Flag&interrupts.TimerFlag == 0 {
		t.Errorf("expected timer interrupt to be requested")
	}
}

func TestController_Frequencies(t *testing.T) {
	tests := []struct {
		tac    uint8
		cycles int
	}{
		{0b100, 256},
		{0b101, 4},
		{0b110, 16},
		{0b111, 64},
	}
	for _, tt := range tests {
		c, regs, _ := newTestController()
		regs.Write(types.DIV, 0)
		regs.Write(types.TAC, tt.tac)
		c.Advance(tt.cycles * 3)
		if v := regs.Read(types.TIMA); v != 3 {
			t.Errorf("TAC %03b: expected TIMA 3, got %d", tt.tac, v)
		}
	}
}

func TestController_Disabled(t *testing.T) {
	c, regs, _ := newTestController()
	regs.Write(types.TAC, 0b001)
	c.Advance(100)
	if v := regs.Read(types.TIMA); v != 0 {
		t.Errorf("expected TIMA to stay 0 while disabled, got %d", v)
	}
	if v := regs.Read(types.TAC); v != 0xF9 {
		t.Errorf("expected TAC to read 0xF9, got 0x%02X", v)
	}
}

func TestController_DIV(t *testing.T) {
	c, regs, _ := newTestController()
	if v := regs.Read(types.DIV); v != 0xAC {
		t.Errorf("expected DIV to be seeded with 0xAC, got 0x%02X", v)
	}

	regs.Write(types.DIV, 0x55)
	if v := regs.Read(types.DIV); v != 0 {
		t.Errorf("expected DIV reset to 0, got 0x%02X", v)
	}
	c.Advance(64)
	if v := regs.Read(types.DIV); v != 1 {
		t.Errorf("expected DIV 1 after 256 ticks, got %d", v)
	}
	if c.Ticks() != 256 || c.Cycles() != 64 {
		t.Errorf("expected 256 ticks, got %d", c.Ticks())
	}

	t.Run("reset edge", func(t *testing.T) {
		regs.Write(types.DIV, 0)
		regs.Write(types.TAC, 0b101)
		c.Advance(2) // divider = 8, bit 3 high
		regs.Write(types.DIV, 0)
		if v := regs.Read(types.TIMA); v != 1 {
			t.Errorf("expected DIV reset to increment TIMA, got %d", v)
		}
	})
}

func TestController_StepsDMA(t *testing.T) {
	c, _, _ := newTestController()
	var s countingStepper
	c.AttachDMA(&s)
	c.Advance(7)
	if s != 7 {
		t.Errorf("expected 7 DMA steps, got %d", s)
	}
}
