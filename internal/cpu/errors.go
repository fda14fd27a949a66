package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrUndefinedOpcode is the reason for a Fault raised by an
	// opcode with no architectural meaning.
	ErrUndefinedOpcode = errors.New("undefined opcode")
	// ErrUnsupportedOperation is the reason for a Fault raised by
	// an operation with no dispatch routine, such as STOP.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrUnknownMode is the reason for a Fault raised by an
	// addressing mode with no resolver.
	ErrUnknownMode = errors.New("unknown addressing mode")
)

// Fault is a fatal error raised while executing a single
// instruction. Execution cannot continue past a Fault.
type Fault struct {
	PC     uint16
	Opcode uint8
	Kind   Kind
	Mode   Mode
	Reason error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("cpu: %v: opcode 0x%02X (%s) at 0x%04X", f.Reason, f.Opcode, f.Kind, f.PC)
}

func (f *Fault) Unwrap() error {
	return f.Reason
}
