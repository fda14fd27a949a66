package cpu

import (
	"errors"
	"testing"

	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/timer"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

// testBus is a flat 64 KiB memory.
type testBus struct {
	mem [0x10000]uint8
}

func (b *testBus) Read(addr uint16) uint8 {
	return b.mem[addr]
}

func (b *testBus) Write(addr uint16, value uint8) {
	b.mem[addr] = value
}

// newTestCPU returns a CPU with the given program loaded at 0x0100.
func newTestCPU(program ...uint8) (*CPU, *testBus, *interrupts.Service) {
	regs := types.NewHardwareRegisters()
	irq := interrupts.NewService(regs)
	clock := timer.NewController(regs, irq)
	bus := &testBus{}
	copy(bus.mem[0x0100:], program)
	return NewCPU(bus, irq, clock), bus, irq
}

// mustStep steps the CPU, failing the test on a fault.
func mustStep(t *testing.T, c *CPU) uint8 {
	t.Helper()
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("unexpected fault: %v", err)
	}
	return cycles
}

func TestCPU_PowerOn(t *testing.T) {
	c, _, irq := newTestCPU()
	if c.PC != 0x0100 || c.SP != 0xFFFE {
		t.Errorf("expected PC 0x0100 SP 0xFFFE, got PC 0x%04X SP 0x%04X", c.PC, c.SP)
	}
	if c.AF() != 0x01B0 || c.BC() != 0x0013 || c.DE() != 0x00D8 || c.HL() != 0x014D {
		t.Errorf("expected AF 01B0 BC 0013 DE 00D8 HL 014D, got %04X %04X %04X %04X", c.AF(), c.BC(), c.DE(), c.HL())
	}
	if !irq.IME {
		t.Errorf("expected IME to be set")
	}
}

func TestCPU_XorA(t *testing.T) {
	c, _, _ := newTestCPU(0xAF)
	for a := 0; a < 0x100; a++ {
		c.PC = 0x0100
		c.A = uint8(a)
		c.F = 0xF0
		mustStep(t, c)
		if c.A != 0 || c.F != 0x80 {
			t.Fatalf("XOR A with A=0x%02X: expected A=0 F=0x80, got A=0x%02X F=0x%02X", a, c.A, c.F)
		}
	}
}

func TestCPU_PushPop(t *testing.T) {
	c, _, _ := newTestCPU()
	for v := 0; v < 0x10000; v++ {
		sp := c.SP
		c.push16(uint16(v))
		if got := c.pop16(); got != uint16(v) {
			t.Fatalf("expected 0x%04X, got 0x%04X", v, got)
		}
		if c.SP != sp {
			t.Fatalf("expected SP 0x%04X, got 0x%04X", sp, c.SP)
		}
	}

	t.Run("wraps", func(t *testing.T) {
		c.SP = 0x0001
		c.push16(0xBEEF)
		if c.SP != 0xFFFF {
			t.Errorf("expected SP to wrap to 0xFFFF, got 0x%04X", c.SP)
		}
		if v := c.pop16(); v != 0xBEEF || c.SP != 0x0001 {
			t.Errorf("expected 0xBEEF at SP 0x0001, got 0x%04X at 0x%04X", v, c.SP)
		}
	})
}

func TestCPU_PushPopInstructions(t *testing.T) {
	// PUSH BC, POP AF
	c, bus, _ := newTestCPU(0xC5, 0xF1)
	c.SetBC(0x12FF)
	mustStep(t, c)
	if bus.mem[0xFFFD] != 0x12 || bus.mem[0xFFFC] != 0xFF {
		t.Errorf("expected 12 FF on the stack, got %02X %02X", bus.mem[0xFFFD], bus.mem[0xFFFC])
	}
	mustStep(t, c)
	if c.A != 0x12 || c.F != 0xF0 {
		t.Errorf("expected A 0x12 F 0xF0, got A 0x%02X F 0x%02X", c.A, c.F)
	}
	if c.SP != 0xFFFE {
		t.Errorf("expected SP 0xFFFE, got 0x%04X", c.SP)
	}
}

func TestCPU_IncBCWraps(t *testing.T) {
	for _, f := range []uint8{0x00, 0x80, 0xF0} {
		c, _, _ := newTestCPU(0x03)
		c.SetBC(0xFFFF)
		c.F = f
		if cycles := mustStep(t, c); cycles != 2 {
			t.Errorf("expected 2 cycles, got %d", cycles)
		}
		if c.BC() != 0 {
			t.Errorf("expected BC 0x0000, got 0x%04X", c.BC())
		}
		if c.F != f {
			t.Errorf("expected F 0x%02X to be unchanged, got 0x%02X", f, c.F)
		}
	}
}

func TestCPU_DecHalfCarry(t *testing.T) {
	for hi := 0; hi < 0x10; hi++ {
		for _, carry := range []bool{false, true} {
			c, _, _ := newTestCPU(0x05)
			c.B = uint8(hi << 4)
			c.F = 0
			if carry {
				c.F = 1 << FlagCarry
			}
			mustStep(t, c)
			if c.B != uint8(hi<<4)-1 {
				t.Errorf("expected B 0x%02X, got 0x%02X", uint8(hi<<4)-1, c.B)
			}
			if !c.isFlagSet(FlagHalfCarry) || !c.isFlagSet(FlagSubtract) {
				t.Errorf("DEC B from 0x%02X: expected H and N to be set, got F 0x%02X", hi<<4, c.F)
			}
			if c.isFlagSet(FlagCarry) != carry {
				t.Errorf("DEC B from 0x%02X: expected carry to be unchanged", hi<<4)
			}
		}
	}
}

func TestCPU_CallRet(t *testing.T) {
	c, bus, _ := newTestCPU(0xCD, 0x00, 0x20) // CALL 0x2000
	bus.mem[0x2000] = 0xC9                     // RET

	if cycles := mustStep(t, c); cycles != 6 {
		t.Errorf("expected CALL to take 6 cycles, got %d", cycles)
	}
	if c.PC != 0x2000 || c.SP != 0xFFFC {
		t.Errorf("expected PC 0x2000 SP 0xFFFC, got PC 0x%04X SP 0x%04X", c.PC, c.SP)
	}
	if cycles := mustStep(t, c); cycles != 4 {
		t.Errorf("expected RET to take 4 cycles, got %d", cycles)
	}
	if c.PC != 0x0103 {
		t.Errorf("expected PC 0x0103, got 0x%04X", c.PC)
	}
	if c.SP != 0xFFFE {
		t.Errorf("expected SP 0xFFFE, got 0x%04X", c.SP)
	}
}

func TestCPU_JumpAbsolute(t *testing.T) {
	c, _, _ := newTestCPU(0xC3, 0x34, 0x12)
	if cycles := mustStep(t, c); cycles != 4 {
		t.Errorf("expected 4 cycles, got %d", cycles)
	}
	if c.PC != 0x1234 {
		t.Errorf("expected PC 0x1234, got 0x%04X", c.PC)
	}
}

func TestCPU_InterruptPriority(t *testing.T) {
	c, bus, irq := newTestCPU(0x00)
	irq.Enable = 0x1F
	irq.Request(interrupts.VBlankFlag | interrupts.TimerFlag)

	cycles := mustStep(t, c)
	if c.PC != 0x0040 {
		t.Errorf("expected PC 0x0040, got 0x%04X", c.PC)
	}
	if irq.Flag&interrupts.VBlankFlag != 0 {
		t.Errorf("expected VBlank request to be cleared")
	}
	if irq.Flag&interrupts.TimerFlag == 0 {
		t.Errorf("expected Timer request to remain")
	}
	if irq.IME {
		t.Errorf("expected IME to be cleared")
	}
	if cycles != 1+5 {
		t.Errorf("expected 6 cycles, got %d", cycles)
	}
	if bus.mem[0xFFFD] != 0x01 || bus.mem[0xFFFC] != 0x01 {
		t.Errorf("expected return address 0x0101 on the stack, got %02X%02X", bus.mem[0xFFFD], bus.mem[0xFFFC])
	}
}

func TestCPU_EnableInterruptDelay(t *testing.T) {
	t.Run("latency", func(t *testing.T) {
		c, _, irq := newTestCPU(0xFB, 0x00, 0x00)
		irq.DisableInterrupts()

		mustStep(t, c) // EI
		if irq.IME {
			t.Fatalf("expected IME to be clear after EI")
		}
		mustStep(t, c) // NOP
		if !irq.IME {
			t.Fatalf("expected IME to be set after the instruction following EI")
		}
	})
	t.Run("service", func(t *testing.T) {
		c, bus, irq := newTestCPU(0xFB, 0x00, 0x00)
		irq.DisableInterrupts()
		irq.Enable = interrupts.VBlankFlag
		irq.Request(interrupts.VBlankFlag)

		mustStep(t, c)
		if c.PC != 0x0101 {
			t.Fatalf("expected no interrupt during EI, got PC 0x%04X", c.PC)
		}
		mustStep(t, c)
		if c.PC != 0x0040 {
			t.Fatalf("expected interrupt after the instruction following EI, got PC 0x%04X", c.PC)
		}
		if bus.mem[0xFFFC] != 0x02 {
			t.Errorf("expected return address 0x0102, got 0x01%02X", bus.mem[0xFFFC])
		}
	})
	t.Run("DI cancels", func(t *testing.T) {
		c, _, irq := newTestCPU(0xFB, 0xF3, 0x00)
		irq.DisableInterrupts()
		mustStep(t, c)
		mustStep(t, c)
		mustStep(t, c)
		if irq.IME {
			t.Errorf("expected DI to cancel EI")
		}
	})
	t.Run("RETI", func(t *testing.T) {
		c, bus, irq := newTestCPU(0xD9)
		irq.DisableInterrupts()
		bus.mem[0xFFFC], bus.mem[0xFFFD] = 0x00, 0x30
		c.SP = 0xFFFC
		mustStep(t, c)
		if !irq.IME || c.PC != 0x3000 {
			t.Errorf("expected RETI to return to 0x3000 with IME set, got PC 0x%04X IME %v", c.PC, irq.IME)
		}
	})
}

func TestCPU_Halt(t *testing.T) {
	c, _, irq := newTestCPU(0x76, 0x3C) // HALT, INC A
	irq.DisableInterrupts()

	mustStep(t, c)
	if !c.Halted() {
		t.Fatalf("expected CPU to be halted")
	}
	for i := 0; i < 10; i++ {
		if cycles := mustStep(t, c); cycles != 1 {
			t.Errorf("expected halted step to take 1 cycle, got %d", cycles)
		}
		if c.PC != 0x0101 || !c.Halted() {
			t.Fatalf("expected CPU to stay halted at 0x0101, got PC 0x%04X", c.PC)
		}
	}

	// wakes without IME, and without the interrupt being enabled
	irq.Request(interrupts.JoypadFlag)
	mustStep(t, c)
	if c.Halted() {
		t.Fatalf("expected CPU to wake")
	}
	if c.PC != 0x0101 {
		t.Errorf("expected PC 0x0101, got 0x%04X", c.PC)
	}
	a := c.A
	mustStep(t, c)
	if c.A != a+1 {
		t.Errorf("expected execution to resume")
	}

	t.Run("services", func(t *testing.T) {
		c, _, irq := newTestCPU(0x76)
		irq.Enable = interrupts.TimerFlag
		mustStep(t, c)
		irq.Request(interrupts.TimerFlag)
		mustStep(t, c)
		if c.Halted() || c.PC != 0x0050 {
			t.Errorf("expected timer interrupt to be serviced, got PC 0x%04X", c.PC)
		}
	})
}

func TestCPU_Faults(t *testing.T) {
	for _, opcode := range []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		c, _, _ := newTestCPU(opcode)
		_, err := c.Step()
		if !errors.Is(err, ErrUndefinedOpcode) {
			t.Errorf("opcode 0x%02X: expected undefined opcode, got %v", opcode, err)
			continue
		}
		var fault *Fault
		if !errors.As(err, &fault) || fault.PC != 0x0100 || fault.Opcode != opcode {
			t.Errorf("expected fault at 0x0100 for 0x%02X, got %+v", opcode, fault)
		}
	}

	c, _, _ := newTestCPU(0x10)
	if _, err := c.Step(); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("expected STOP to be unsupported, got %v", err)
	}
}

func TestCPU_DebugBreakpoint(t *testing.T) {
	c, _, _ := newTestCPU(0x40)
	c.Debug = true
	mustStep(t, c)
	if !c.DebugBreakpoint {
		t.Errorf("expected LD B, B to trigger the breakpoint")
	}
}

type traceRecorder struct {
	pcs  []uint16
	last Instruction
}

func (r *traceRecorder) Trace(pc uint16, _ uint8, i Instruction) {
	r.pcs = append(r.pcs, pc)
	r.last = i
}

func TestCPU_Tracer(t *testing.T) {
	c, _, _ := newTestCPU(0x00, 0x04)
	var rec traceRecorder
	c.SetTracer(&rec)
	mustStep(t, c)
	mustStep(t, c)
	if len(rec.pcs) != 2 || rec.pcs[1] != 0x0101 {
		t.Errorf("expected trace of 0x0100 0x0101, got %v", rec.pcs)
	}
	if rec.last.String() != "INC B" {
		t.Errorf("expected INC B, got %s", rec.last)
	}
}
