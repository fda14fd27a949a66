package types

import "fmt"

// HardwareRegisters is the table of memory mapped I/O registers
// owned by a single machine. It is indexed by the address of the
// register ANDed with 0x007F, which places IE (0xFFFF) at 0x7F.
//
// Devices register their registers on construction, which lets the
// bus route an access without knowing anything about the device.
type HardwareRegisters struct {
	registers [0x80]*HardwareRegister
}

// NewHardwareRegisters returns an empty register table.
func NewHardwareRegisters() *HardwareRegisters {
	return &HardwareRegisters{}
}

// HardwareRegister is a single I/O register, backed by the
// read and write closures of the device that owns it.
type HardwareRegister struct {
	address HardwareAddress
	write   func(v uint8)
	read    func() uint8
}

// RegisterHardware adds a hardware register at the given address.
// Either function may be nil: NoRead and NoWrite are substituted so
// that the register behaves as write-only or read-only respectively.
// Registering the same address twice panics, as it indicates two
// devices claiming the same register.
func (h *HardwareRegisters) RegisterHardware(address HardwareAddress, write func(v uint8), read func() uint8) {
	if address < IOStart || (address > IOEnd && address != IE) {
		panic(fmt.Sprintf("hardware: 0x%04X is not an I/O address", address))
	}
	if h.registers[address&0x007F] != nil {
		panic(fmt.Sprintf("hardware: 0x%04X has already been registered", address))
	}
	if write == nil {
		write = NoWrite
	}
	if read == nil {
		read = NoRead
	}

	h.registers[address&0x007F] = &HardwareRegister{
		address: address,
		write:   write,
		read:    read,
	}
}

// Registered reports whether a register exists for address.
func (h *HardwareRegisters) Registered(address uint16) bool {
	if address == 0xFF7F {
		return false
	}
	return h.registers[address&0x007F] != nil
}

// Read returns the value of the hardware register for the given
// address, or 0xFF if nothing is registered there.
func (h *HardwareRegisters) Read(address uint16) uint8 {
	// 0xFF7F shares an index with IE
	if address == 0xFF7F || !h.Registered(address) {
		return 0xFF
	}
	return h.registers[address&0x007F].read()
}

// Write writes value to the hardware register for the given
// address. Writes to unregistered addresses are dropped.
func (h *HardwareRegisters) Write(address uint16, value uint8) {
	if address == 0xFF7F || !h.Registered(address) {
		return
	}
	h.registers[address&0x007F].write(value)
}

// Address returns the address the register was registered at.
func (r *HardwareRegister) Address() HardwareAddress {
	return r.address
}

// NoRead is used for registers that cannot be read, which
// always read back as 0xFF.
func NoRead() uint8 {
	return 0xFF
}

// NoWrite is used for read-only registers.
func NoWrite(v uint8) {}
