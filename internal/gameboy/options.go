package gameboy

import (
	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/serial"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// Debug enables the LD B, B breakpoint, used by the
// mooneye test suite to signal completion.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.CPU.Debug = true
	}
}

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithSerialObserver registers o to receive every byte
// transmitted over the serial port.
func WithSerialObserver(o serial.Observer) Opt {
	return func(gb *GameBoy) {
		gb.Serial.Observe(o)
	}
}

// WithTracer sets the tracer notified before every
// instruction.
func WithTracer(t cpu.Tracer) Opt {
	return func(gb *GameBoy) {
		gb.CPU.SetTracer(t)
	}
}

// WithStatus sends a Status to ch every given number of
// M-cycles while running. Statuses are dropped when ch
// is not ready to receive.
func WithStatus(ch chan<- Status, every uint64) Opt {
	return func(gb *GameBoy) {
		if every == 0 {
			every = CyclesPerFrame / 4
		}
		gb.status = ch
		gb.statusEvery = every
	}
}

// MaxCycles stops Run with ErrCycleLimit once the given
// number of M-cycles have elapsed. 0 means no limit.
func MaxCycles(n uint64) Opt {
	return func(gb *GameBoy) {
		gb.maxCycles = n
	}
}
