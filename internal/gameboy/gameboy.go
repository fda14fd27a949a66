// Package gameboy provides an emulation of a Nintendo Game Boy.
//
// A GameBoy wires the CPU to the memory bus and the devices mapped
// into it, and runs it until it faults, hits the debug breakpoint,
// exhausts its cycle budget or is cancelled.
package gameboy

import (
	"context"
	"errors"
	"fmt"

	"github.com/thelolagemann/gomeboy-core/internal/cartridge"
	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/joypad"
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/internal/serial"
	"github.com/thelolagemann/gomeboy-core/internal/timer"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = 4194304 // 4.194304 MHz
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = 70224 // 4194304 / 60
)

var (
	// ErrBreakpoint is returned by Run when the CPU executes LD B, B
	// with Debug enabled.
	ErrBreakpoint = errors.New("gameboy: debug breakpoint")
	// ErrCycleLimit is returned by Run when the MaxCycles budget is
	// exhausted.
	ErrCycleLimit = errors.New("gameboy: cycle limit reached")
)

// Status is a snapshot of the running emulation, sent to the
// channel given to WithStatus.
type Status struct {
	Title  string `json:"title"`
	Hash   uint64 `json:"hash"`
	PC     uint16 `json:"pc"`
	SP     uint16 `json:"sp"`
	Cycles uint64 `json:"cycles"`
	Halted bool   `json:"halted"`
}

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU  *cpu.CPU
	MMU  *mmu.MMU
	PPU  *ppu.PPU
	Cart *cartridge.Cartridge

	Interrupts *interrupts.Service
	Timer      *timer.Controller
	Serial     *serial.Controller
	Joypad     *joypad.State

	log.Logger

	maxCycles   uint64
	status      chan<- Status
	statusEvery uint64
	lastStatus  uint64
}

// NewGameBoy returns a new GameBoy running the given ROM.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	cart, err := cartridge.NewCartridge(rom)
	if err != nil {
		return nil, err
	}

	regs := types.NewHardwareRegisters()
	interrupt := interrupts.NewService(regs)
	timerCtl := timer.NewController(regs, interrupt)
	video := ppu.New(regs)
	serialCtl := serial.NewController(regs, interrupt)
	pad := joypad.New(regs, interrupt)
	memBus := mmu.NewMMU(cart, video, regs, nil)

	// DMA copies over the bus, one byte per M-cycle
	video.DMA.AttachBus(memBus)
	timerCtl.AttachDMA(video.DMA)

	g := &GameBoy{
		CPU:  cpu.NewCPU(memBus, interrupt, timerCtl),
		MMU:  memBus,
		PPU:  video,
		Cart: cart,

		Interrupts: interrupt,
		Timer:      timerCtl,
		Serial:     serialCtl,
		Joypad:     pad,

		Logger: log.New(),
	}

	for _, opt := range opts {
		opt(g)
	}
	g.MMU.Log = g.Logger

	header := cart.Header()
	g.Infof("loaded %s", header.String())
	g.Infof("ROM hash: %016x", cart.Hash())
	if !header.Valid() {
		g.Warnf("header checksum mismatch: expected 0x%02X, got 0x%02X", header.HeaderChecksum, header.ComputedChecksum())
	}
	if !cart.GlobalChecksumValid() {
		g.Debugf("global checksum mismatch: 0x%04X", header.GlobalChecksum)
	}

	return g, nil
}

// Step executes a single CPU step, returning the M-cycles it took.
func (g *GameBoy) Step() (uint8, error) {
	return g.CPU.Step()
}

// Run steps the CPU until ctx is cancelled, the CPU faults, the
// debug breakpoint is hit or the cycle budget is exhausted.
// Cancellation is only observed between instructions.
func (g *GameBoy) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := g.CPU.Step(); err != nil {
			g.Errorf("%v", err)
			return fmt.Errorf("gameboy: %w", err)
		}

		if g.CPU.DebugBreakpoint {
			return ErrBreakpoint
		}

		cycles := g.Timer.Cycles()
		if g.status != nil && cycles-g.lastStatus >= g.statusEvery {
			g.lastStatus = cycles
			g.sendStatus()
		}
		if g.maxCycles > 0 && cycles >= g.maxCycles {
			return ErrCycleLimit
		}
	}
}

// Status returns a snapshot of the emulation.
func (g *GameBoy) Status() Status {
	return Status{
		Title:  g.Cart.Title(),
		Hash:   g.Cart.Hash(),
		PC:     g.CPU.PC,
		SP:     g.CPU.SP,
		Cycles: g.Timer.Cycles(),
		Halted: g.CPU.Halted(),
	}
}

// sendStatus sends the status without blocking, dropping it
// if the receiver isn't keeping up.
func (g *GameBoy) sendStatus() {
	select {
	case g.status <- g.Status():
	default:
	}
}
