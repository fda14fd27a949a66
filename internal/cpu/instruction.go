package cpu

import (
	"fmt"
	"strings"
)

// Kind is the operation performed by an instruction.
type Kind uint8

const (
	// Undefined marks opcodes with no architectural meaning.
	Undefined Kind = iota
	NOP
	LD
	INC
	DEC
	RLCA
	ADD
	RRCA
	STOP
	RLA
	JR
	RRA
	DAA
	CPL
	SCF
	CCF
	HALT
	ADC
	SUB
	SBC
	AND
	XOR
	OR
	CP
	POP
	JP
	PUSH
	RET
	CB
	CALL
	RETI
	LDH
	DI
	EI
	RST

	// CB prefixed operations
	RLC
	RRC
	RL
	RR
	SLA
	SRA
	SWAP
	SRL
	BIT
	RES
	SET

	kindCount
)

var kindNames = [kindCount]string{
	Undefined: "???",
	NOP:       "NOP",
	LD:        "LD",
	INC:       "INC",
	DEC:       "DEC",
	RLCA:      "RLCA",
	ADD:       "ADD",
	RRCA:      "RRCA",
	STOP:      "STOP",
	RLA:       "RLA",
	JR:        "JR",
	RRA:       "RRA",
	DAA:       "DAA",
	CPL:       "CPL",
	SCF:       "SCF",
	CCF:       "CCF",
	HALT:      "HALT",
	ADC:       "ADC",
	SUB:       "SUB",
	SBC:       "SBC",
	AND:       "AND",
	XOR:       "XOR",
	OR:        "OR",
	CP:        "CP",
	POP:       "POP",
	JP:        "JP",
	PUSH:      "PUSH",
	RET:       "RET",
	CB:        "PREFIX CB",
	CALL:      "CALL",
	RETI:      "RETI",
	LDH:       "LDH",
	DI:        "DI",
	EI:        "EI",
	RST:       "RST",
	RLC:       "RLC",
	RRC:       "RRC",
	RL:        "RL",
	RR:        "RR",
	SLA:       "SLA",
	SRA:       "SRA",
	SWAP:      "SWAP",
	SRL:       "SRL",
	BIT:       "BIT",
	RES:       "RES",
	SET:       "SET",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Mode is the addressing mode of an instruction, describing
// where its operand and destination live.
type Mode uint8

const (
	// Implied instructions take no operand.
	Implied Mode = iota
	// RegD16 loads a 16-bit immediate into Reg1.
	RegD16
	// RegReg reads Reg2, destination Reg1.
	RegReg
	// MemReg writes Reg2 to the address in Reg1.
	MemReg
	// Reg operates on Reg1.
	Reg
	// RegD8 reads an 8-bit immediate, destination Reg1.
	RegD8
	// RegMem reads from the address in Reg2, destination Reg1.
	RegMem
	// RegHLI reads from (HL), then increments HL.
	RegHLI
	// RegHLD reads from (HL), then decrements HL.
	RegHLD
	// HLIReg writes Reg2 to (HL), then increments HL.
	HLIReg
	// HLDReg writes Reg2 to (HL), then decrements HL.
	HLDReg
	// RegA8 reads from the high page address 0xFF00+a8.
	RegA8
	// A8Reg writes Reg2 to the high page address 0xFF00+a8.
	A8Reg
	// HLSPRel reads a signed 8-bit offset to be added to SP.
	HLSPRel
	// D16 reads a 16-bit immediate.
	D16
	// D8 reads an 8-bit immediate.
	D8
	// D16Reg writes the 16-bit Reg2 to an absolute address.
	D16Reg
	// MemD8 writes an 8-bit immediate to the address in Reg1.
	MemD8
	// Mem reads and writes back the address in Reg1.
	Mem
	// A16Reg writes Reg2 to an absolute address.
	A16Reg
	// RegA16 reads from an absolute address, destination Reg1.
	RegA16

	modeCount
)

// Condition is the flag condition of a conditional jump,
// call or return.
type Condition uint8

const (
	CondNone Condition = iota
	CondNZ
	CondZ
	CondNC
	CondC
)

func (c Condition) String() string {
	switch c {
	case CondNZ:
		return "NZ"
	case CondZ:
		return "Z"
	case CondNC:
		return "NC"
	case CondC:
		return "C"
	}
	return ""
}

// Param is an optional literal carried by an instruction. Only
// RST carries one, the address of its target.
type Param struct {
	value   uint8
	present bool
}

// param returns a present Param holding v.
func param(v uint8) Param {
	return Param{value: v, present: true}
}

// Value returns the literal and whether it is present.
func (p Param) Value() (uint8, bool) {
	return p.value, p.present
}

// Instruction describes a single opcode: what it does, and
// how its operands are resolved.
type Instruction struct {
	Kind  Kind
	Mode  Mode
	Reg1  RegisterID
	Reg2  RegisterID
	Cond  Condition
	Param Param
}

// String returns the instruction in assembly form, e.g. "LD B,B".
func (i Instruction) String() string {
	var args []string
	if i.Cond != CondNone {
		args = append(args, i.Cond.String())
	}
	switch i.Mode {
	case Implied:
		if p, ok := i.Param.Value(); ok {
			args = append(args, fmt.Sprintf("%02XH", p))
		}
	case Reg:
		args = append(args, i.Reg1.String())
	case RegReg:
		args = append(args, i.Reg1.String(), i.Reg2.String())
	case RegD8:
		args = append(args, i.Reg1.String(), "d8")
	case RegD16:
		args = append(args, i.Reg1.String(), "d16")
	case MemReg:
		args = append(args, indirect(i.Reg1), i.Reg2.String())
	case RegMem:
		args = append(args, i.Reg1.String(), indirect(i.Reg2))
	case RegHLI:
		args = append(args, i.Reg1.String(), "(HL+)")
	case RegHLD:
		args = append(args, i.Reg1.String(), "(HL-)")
	case HLIReg:
		args = append(args, "(HL+)", i.Reg2.String())
	case HLDReg:
		args = append(args, "(HL-)", i.Reg2.String())
	case RegA8:
		args = append(args, i.Reg1.String(), "(a8)")
	case A8Reg:
		args = append(args, "(a8)", i.Reg2.String())
	case HLSPRel:
		args = append(args, "HL", "SP+r8")
	case D16:
		args = append(args, "a16")
	case D8:
		if i.Kind != CB {
			args = append(args, "r8")
		}
	case D16Reg, A16Reg:
		args = append(args, "(a16)", i.Reg2.String())
	case RegA16:
		args = append(args, i.Reg1.String(), "(a16)")
	case MemD8:
		args = append(args, indirect(i.Reg1), "d8")
	case Mem:
		args = append(args, indirect(i.Reg1))
	}
	if len(args) == 0 {
		return i.Kind.String()
	}
	return i.Kind.String() + " " + strings.Join(args, ",")
}

func indirect(r RegisterID) string {
	return "(" + r.String() + ")"
}
