package interrupts

import (
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0),
	// which is requested every time the PPU enters
	// VBlank mode.
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1), which
	// is requested by the LCD STAT register (types.STAT),
	// when certain conditions are met.
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2),
	// which is requested when the timer overflows,
	// (types.TIMA > 0xFF).
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3),
	// which is requested when a serial transfer is
	// completed.
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt Flag (bit 4).
	JoypadFlag = types.Bit4

	// mask covers the five implemented sources.
	mask = 0x1F
)

// Source identifies one of the five interrupt sources, in
// priority order.
type Source uint8

const (
	VBlank Source = iota
	LCD
	Timer
	Serial
	Joypad
)

// Vector returns the address of the handler for the source.
func (s Source) Vector() uint16 {
	return 0x0040 + uint16(s)*8
}

// Flag returns the bit used by the source in IF and IE.
func (s Source) Flag() uint8 {
	return 1 << s
}

func (s Source) String() string {
	switch s {
	case VBlank:
		return "VBlank"
	case LCD:
		return "LCD"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return "Unknown"
}

// Service is the interrupt controller, used to request
// interrupts and to select the next interrupt to be serviced.
//
// When an interrupt is requested, the corresponding bit
// in the Flag register is set. When an interrupt is
// enabled, the corresponding bit in the Enable register
// is set. When an interrupt is requested and enabled,
// and the IME is set, the CPU will jump to the interrupt
// vector, and the corresponding bit in the Flag register
// will be cleared.
//
// The IME is cleared by DI, set by RETI and set by EI
// once the instruction following the EI has completed.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
	IME    bool  // interrupt master enable

	// enableDelay counts down the instruction boundaries
	// remaining until a scheduled EI takes effect.
	enableDelay uint8
}

// NewService returns a new Service, with IF and IE registered
// in the given hardware register table.
func NewService(regs *types.HardwareRegisters) *Service {
	s := &Service{}
	regs.RegisterHardware(
		types.IF,
		func(v uint8) {
			s.Flag = v & mask // only the first 5 bits are used
		}, func() uint8 {
			return s.Flag | 0xE0 // the upper 3 bits are always set
		},
	)
	regs.RegisterHardware(
		types.IE,
		func(v uint8) {
			s.Enable = v
		}, func() uint8 {
			return s.Enable
		},
	)

	return s
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag & mask
}

// RequestSource requests the interrupt for the given source.
func (s *Service) RequestSource(src Source) {
	s.Request(src.Flag())
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag&mask != 0
}

// HasRequests returns true if any interrupt has been requested,
// regardless of whether it has been enabled.
func (s *Service) HasRequests() bool {
	return s.Flag&mask != 0
}

// EnableInterrupts sets the IME immediately, as RETI does.
func (s *Service) EnableInterrupts() {
	s.IME = true
	s.enableDelay = 0
}

// DisableInterrupts clears the IME, cancelling any pending EI.
func (s *Service) DisableInterrupts() {
	s.IME = false
	s.enableDelay = 0
}

// ScheduleEnable arms the delayed enable used by EI. The IME is
// set at the end of the instruction following the EI.
func (s *Service) ScheduleEnable() {
	if s.IME || s.enableDelay > 0 {
		return
	}
	s.enableDelay = 2
}

// Enabling reports whether an EI is waiting to take effect.
func (s *Service) Enabling() bool {
	return s.enableDelay > 0
}

// InstructionDone is called at every instruction boundary, and
// advances a scheduled EI.
func (s *Service) InstructionDone() {
	if s.enableDelay == 0 {
		return
	}
	s.enableDelay--
	if s.enableDelay == 0 {
		s.IME = true
	}
}

// Next returns the highest priority source that is both
// requested and enabled, clearing its request bit. The
// second return value is false if nothing is pending.
func (s *Service) Next() (Source, bool) {
	pending := s.Enable & s.Flag & mask
	if pending == 0 {
		return 0, false
	}
	for src := VBlank; src <= Joypad; src++ {
		if pending&src.Flag() != 0 {
			s.Flag &^= src.Flag()
			return src, true
		}
	}
	return 0, false
}
