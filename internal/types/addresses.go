package types

// HardwareAddress is the address of a memory mapped I/O
// register. The registers live at 0xFF00 - 0xFF7F, with the
// interrupt enable register sitting alone at 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 selects and reads the joypad matrix.
	P1 HardwareAddress = 0xFF00
	// SB holds the byte that will be shifted out over the
	// serial port, and receives the byte shifted in.
	SB HardwareAddress = 0xFF01
	// SC controls the serial port.
	//
	//  Bit 7: Transfer Start   (0=Idle, 1=Requested/In progress)
	//  Bit 0: Clock Select     (0=External, 1=Internal)
	SC HardwareAddress = 0xFF02
	// DIV exposes the upper 8 bits of the free-running 16-bit
	// divider. Writing any value resets the whole divider to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is the timer counter. It is incremented on a falling
	// edge of the divider bit selected by TAC, and reloaded from
	// TMA when it overflows, requesting a timer interrupt.
	TIMA HardwareAddress = 0xFF05
	// TMA is the value loaded into TIMA on overflow.
	TMA HardwareAddress = 0xFF06
	// TAC controls the timer.
	//
	//  Bit 2:   Timer Enable
	//  Bit 1-0: Input Clock Select (00=bit 9, 01=bit 3, 10=bit 5, 11=bit 7)
	TAC HardwareAddress = 0xFF07
	// IF requests interrupts. A set bit marks the source as pending.
	//
	//  Bit 0: V-Blank  (INT 40h)
	//  Bit 1: LCD STAT (INT 48h)
	//  Bit 2: Timer    (INT 50h)
	//  Bit 3: Serial   (INT 58h)
	//  Bit 4: Joypad   (INT 60h)
	IF HardwareAddress = 0xFF0F
	// LCDC is the LCD control register.
	LCDC HardwareAddress = 0xFF40
	// STAT is the LCD status register.
	STAT HardwareAddress = 0xFF41
	// SCY is the background viewport Y position.
	SCY HardwareAddress = 0xFF42
	// SCX is the background viewport X position.
	SCX HardwareAddress = 0xFF43
	// LY is the current scanline (0-153).
	LY HardwareAddress = 0xFF44
	// LYC is compared against LY.
	LYC HardwareAddress = 0xFF45
	// DMA starts an OAM DMA transfer from (value << 8).
	DMA HardwareAddress = 0xFF46
	// BGP is the background palette.
	BGP HardwareAddress = 0xFF47
	// OBP0 is object palette 0.
	OBP0 HardwareAddress = 0xFF48
	// OBP1 is object palette 1.
	OBP1 HardwareAddress = 0xFF49
	// WY is the window Y position.
	WY HardwareAddress = 0xFF4A
	// WX is the window X position plus 7.
	WX HardwareAddress = 0xFF4B
	// IE enables interrupts, using the same bit layout as IF.
	IE HardwareAddress = 0xFFFF
)

// Memory map boundaries.
const (
	ROMStart     uint16 = 0x0000
	ROMEnd       uint16 = 0x7FFF
	VRAMStart    uint16 = 0x8000
	VRAMEnd      uint16 = 0x9FFF
	ExtRAMStart  uint16 = 0xA000
	ExtRAMEnd    uint16 = 0xBFFF
	WRAMStart    uint16 = 0xC000
	WRAMEnd      uint16 = 0xDFFF
	EchoStart    uint16 = 0xE000
	EchoEnd      uint16 = 0xFDFF
	OAMStart     uint16 = 0xFE00
	OAMEnd       uint16 = 0xFE9F
	UnusedStart  uint16 = 0xFEA0
	UnusedEnd    uint16 = 0xFEFF
	IOStart      uint16 = 0xFF00
	IOEnd        uint16 = 0xFF7F
	HRAMStart    uint16 = 0xFF80
	HRAMEnd      uint16 = 0xFFFE
	HighPageBase uint16 = 0xFF00
)
