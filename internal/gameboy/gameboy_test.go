package gameboy

import (
	"context"
	"errors"
	"testing"

	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/serial"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// helloROM prints "Passed" over the serial port, then executes
// LD B, B and spins forever.
var helloROM = []byte{
	0x21, 0x00, 0x02, // LD HL, 0x0200
	0x2A,       // loop: LD A, (HL+)
	0xB7,       // OR A
	0x28, 0x08, // JR Z, done
	0xE0, 0x01, // LDH (SB), A
	0x3E, 0x81, // LD A, 0x81
	0xE0, 0x02, // LDH (SC), A
	0x18, 0xF4, // JR loop
	0x40,       // done: LD B, B
	0x18, 0xFE, // JR -2
}

func newTestROM(program []byte) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x100:], []byte{0x00, 0xC3, 0x50, 0x01}) // NOP; JP 0x0150
	copy(rom[0x134:], "TEST")
	copy(rom[0x150:], program)
	copy(rom[0x200:], "Passed\x00")
	return rom
}

func newTestGameBoy(t *testing.T, program []byte, opts ...Opt) *GameBoy {
	t.Helper()
	g, err := NewGameBoy(newTestROM(program), append([]Opt{WithLogger(log.NewNullLogger())}, opts...)...)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestGameBoy_Serial(t *testing.T) {
	var output serial.Capture
	g := newTestGameBoy(t, helloROM, Debug(), WithSerialObserver(&output))

	if err := g.Run(context.Background()); !errors.Is(err, ErrBreakpoint) {
		t.Fatalf("expected ErrBreakpoint, got %v", err)
	}
	if output.String() != "Passed" {
		t.Errorf("expected Passed, got %q", output.String())
	}
	if g.CPU.PC != 0x0160 {
		t.Errorf("expected PC 0x0160, got 0x%04X", g.CPU.PC)
	}
}

func TestGameBoy_CycleLimit(t *testing.T) {
	g := newTestGameBoy(t, helloROM, MaxCycles(10000))

	if err := g.Run(context.Background()); !errors.Is(err, ErrCycleLimit) {
		t.Fatalf("expected ErrCycleLimit, got %v", err)
	}
	if c := g.Timer.Cycles(); c < 10000 || c > 10010 {
		t.Errorf("expected to stop just after 10000 cycles, got %d", c)
	}
}

func TestGameBoy_Cancel(t *testing.T) {
	g := newTestGameBoy(t, helloROM)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := g.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if g.CPU.PC != 0x0100 {
		t.Errorf("expected no instructions to run, PC 0x%04X", g.CPU.PC)
	}
}

func TestGameBoy_Fault(t *testing.T) {
	g := newTestGameBoy(t, []byte{0x00, 0xD3})

	err := g.Run(context.Background())
	if !errors.Is(err, cpu.ErrUndefinedOpcode) {
		t.Fatalf("expected ErrUndefinedOpcode, got %v", err)
	}
	var fault *cpu.Fault
	if !errors.As(err, &fault) {
		t.Fatalf("expected a *cpu.Fault, got %T", err)
	}
	if fault.PC != 0x0151 || fault.Opcode != 0xD3 {
		t.Errorf("expected fault at 0x0151 (0xD3), got 0x%04X (0x%02X)", fault.PC, fault.Opcode)
	}
}

func TestGameBoy_Status(t *testing.T) {
	ch := make(chan Status, 1)
	g := newTestGameBoy(t, helloROM, WithStatus(ch, 100), MaxCycles(1000))

	if err := g.Run(context.Background()); !errors.Is(err, ErrCycleLimit) {
		t.Fatalf("expected ErrCycleLimit, got %v", err)
	}
	select {
	case s := <-ch:
		if s.Title != "TEST" {
			t.Errorf("expected title TEST, got %q", s.Title)
		}
		if s.Hash != g.Cart.Hash() {
			t.Errorf("expected hash %016x, got %016x", g.Cart.Hash(), s.Hash)
		}
		if s.Cycles < 100 {
			t.Errorf("expected at least 100 cycles, got %d", s.Cycles)
		}
	default:
		t.Errorf("expected a status to be sent")
	}
}

func TestNewGameBoy_Truncated(t *testing.T) {
	if _, err := NewGameBoy(make([]byte, 0x40)); err == nil {
		t.Errorf("expected an error for a truncated ROM")
	}
}

type countingTracer struct {
	count int
}

func (c *countingTracer) Trace(uint16, uint8, cpu.Instruction) {
	c.count++
}

func TestGameBoy_Tracer(t *testing.T) {
	tr := &countingTracer{}
	g := newTestGameBoy(t, helloROM, WithTracer(tr))
	for i := 0; i < 5; i++ {
		if _, err := g.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if tr.count != 5 {
		t.Errorf("expected 5 traced instructions, got %d", tr.count)
	}
}
