package cpu

// instructions is the main instruction table, indexed by
// opcode. Opcodes missing from the table are Undefined.
var instructions = [256]Instruction{
	0x00: {Kind: NOP},
	0x01: {Kind: LD, Mode: RegD16, Reg1: RegBC},
	0x02: {Kind: LD, Mode: MemReg, Reg1: RegBC, Reg2: RegA},
	0x03: {Kind: INC, Mode: Reg, Reg1: RegBC},
	0x04: {Kind: INC, Mode: Reg, Reg1: RegB},
	0x05: {Kind: DEC, Mode: Reg, Reg1: RegB},
	0x06: {Kind: LD, Mode: RegD8, Reg1: RegB},
	0x07: {Kind: RLCA},
	0x08: {Kind: LD, Mode: D16Reg, Reg2: RegSP},
	0x09: {Kind: ADD, Mode: RegReg, Reg1: RegHL, Reg2: RegBC},
	0x0A: {Kind: LD, Mode: RegMem, Reg1: RegA, Reg2: RegBC},
	0x0B: {Kind: DEC, Mode: Reg, Reg1: RegBC},
	0x0C: {Kind: INC, Mode: Reg, Reg1: RegC},
	0x0D: {Kind: DEC, Mode: Reg, Reg1: RegC},
	0x0E: {Kind: LD, Mode: RegD8, Reg1: RegC},
	0x0F: {Kind: RRCA},

	0x10: {Kind: STOP},
	0x11: {Kind: LD, Mode: RegD16, Reg1: RegDE},
	0x12: {Kind: LD, Mode: MemReg, Reg1: RegDE, Reg2: RegA},
	0x13: {Kind: INC, Mode: Reg, Reg1: RegDE},
	0x14: {Kind: INC, Mode: Reg, Reg1: RegD},
	0x15: {Kind: DEC, Mode: Reg, Reg1: RegD},
	0x16: {Kind: LD, Mode: RegD8, Reg1: RegD},
	0x17: {Kind: RLA},
	0x18: {Kind: JR, Mode: D8},
	0x19: {Kind: ADD, Mode: RegReg, Reg1: RegHL, Reg2: RegDE},
	0x1A: {Kind: LD, Mode: RegMem, Reg1: RegA, Reg2: RegDE},
	0x1B: {Kind: DEC, Mode: Reg, Reg1: RegDE},
	0x1C: {Kind: INC, Mode: Reg, Reg1: RegE},
	0x1D: {Kind: DEC, Mode: Reg, Reg1: RegE},
	0x1E: {Kind: LD, Mode: RegD8, Reg1: RegE},
	0x1F: {Kind: RRA},

	0x20: {Kind: JR, Mode: D8, Cond: CondNZ},
	0x21: {Kind: LD, Mode: RegD16, Reg1: RegHL},
	0x22: {Kind: LD, Mode: HLIReg, Reg1: RegHL, Reg2: RegA},
	0x23: {Kind: INC, Mode: Reg, Reg1: RegHL},
	0x24: {Kind: INC, Mode: Reg, Reg1: RegH},
	0x25: {Kind: DEC, Mode: Reg, Reg1: RegH},
	0x26: {Kind: LD, Mode: RegD8, Reg1: RegH},
	0x27: {Kind: DAA},
	0x28: {Kind: JR, Mode: D8, Cond: CondZ},
	0x29: {Kind: ADD, Mode: RegReg, Reg1: RegHL, Reg2: RegHL},
	0x2A: {Kind: LD, Mode: RegHLI, Reg1: RegA, Reg2: RegHL},
	0x2B: {Kind: DEC, Mode: Reg, Reg1: RegHL},
	0x2C: {Kind: INC, Mode: Reg, Reg1: RegL},
	0x2D: {Kind: DEC, Mode: Reg, Reg1: RegL},
	0x2E: {Kind: LD, Mode: RegD8, Reg1: RegL},
	0x2F: {Kind: CPL},

	0x30: {Kind: JR, Mode: D8, Cond: CondNC},
	0x31: {Kind: LD, Mode: RegD16, Reg1: RegSP},
	0x32: {Kind: LD, Mode: HLDReg, Reg1: RegHL, Reg2: RegA},
	0x33: {Kind: INC, Mode: Reg, Reg1: RegSP},
	0x34: {Kind: INC, Mode: Mem, Reg1: RegHL},
	0x35: {Kind: DEC, Mode: Mem, Reg1: RegHL},
	0x36: {Kind: LD, Mode: MemD8, Reg1: RegHL},
	0x37: {Kind: SCF},
	0x38: {Kind: JR, Mode: D8, Cond: CondC},
	0x39: {Kind: ADD, Mode: RegReg, Reg1: RegHL, Reg2: RegSP},
	0x3A: {Kind: LD, Mode: RegHLD, Reg1: RegA, Reg2: RegHL},
	0x3B: {Kind: DEC, Mode: Reg, Reg1: RegSP},
	0x3C: {Kind: INC, Mode: Reg, Reg1: RegA},
	0x3D: {Kind: DEC, Mode: Reg, Reg1: RegA},
	0x3E: {Kind: LD, Mode: RegD8, Reg1: RegA},
	0x3F: {Kind: CCF},

	// 0x40 - 0xBF are filled in by init

	0xC0: {Kind: RET, Cond: CondNZ},
	0xC1: {Kind: POP, Mode: Reg, Reg1: RegBC},
	0xC2: {Kind: JP, Mode: D16, Cond: CondNZ},
	0xC3: {Kind: JP, Mode: D16},
	0xC4: {Kind: CALL, Mode: D16, Cond: CondNZ},
	0xC5: {Kind: PUSH, Mode: Reg, Reg1: RegBC},
	0xC6: {Kind: ADD, Mode: RegD8, Reg1: RegA},
	0xC7: {Kind: RST, Param: param(0x00)},
	0xC8: {Kind: RET, Cond: CondZ},
	0xC9: {Kind: RET},
	0xCA: {Kind: JP, Mode: D16, Cond: CondZ},
	0xCB: {Kind: CB, Mode: D8},
	0xCC: {Kind: CALL, Mode: D16, Cond: CondZ},
	0xCD: {Kind: CALL, Mode: D16},
	0xCE: {Kind: ADC, Mode: RegD8, Reg1: RegA},
	0xCF: {Kind: RST, Param: param(0x08)},

	0xD0: {Kind: RET, Cond: CondNC},
	0xD1: {Kind: POP, Mode: Reg, Reg1: RegDE},
	0xD2: {Kind: JP, Mode: D16, Cond: CondNC},
	0xD4: {Kind: CALL, Mode: D16, Cond: CondNC},
	0xD5: {Kind: PUSH, Mode: Reg, Reg1: RegDE},
	0xD6: {Kind: SUB, Mode: RegD8, Reg1: RegA},
	0xD7: {Kind: RST, Param: param(0x10)},
	0xD8: {Kind: RET, Cond: CondC},
	0xD9: {Kind: RETI},
	0xDA: {Kind: JP, Mode: D16, Cond: CondC},
	0xDC: {Kind: CALL, Mode: D16, Cond: CondC},
	0xDE: {Kind: SBC, Mode: RegD8, Reg1: RegA},
	0xDF: {Kind: RST, Param: param(0x18)},

	0xE0: {Kind: LDH, Mode: A8Reg, Reg2: RegA},
	0xE1: {Kind: POP, Mode: Reg, Reg1: RegHL},
	0xE2: {Kind: LD, Mode: MemReg, Reg1: RegC, Reg2: RegA},
	0xE5: {Kind: PUSH, Mode: Reg, Reg1: RegHL},
	0xE6: {Kind: AND, Mode: RegD8, Reg1: RegA},
	0xE7: {Kind: RST, Param: param(0x20)},
	0xE8: {Kind: ADD, Mode: RegD8, Reg1: RegSP},
	0xE9: {Kind: JP, Mode: Reg, Reg1: RegHL},
	0xEA: {Kind: LD, Mode: A16Reg, Reg2: RegA},
	0xEE: {Kind: XOR, Mode: RegD8, Reg1: RegA},
	0xEF: {Kind: RST, Param: param(0x28)},

	0xF0: {Kind: LDH, Mode: RegA8, Reg1: RegA},
	0xF1: {Kind: POP, Mode: Reg, Reg1: RegAF},
	0xF2: {Kind: LD, Mode: RegMem, Reg1: RegA, Reg2: RegC},
	0xF3: {Kind: DI},
	0xF5: {Kind: PUSH, Mode: Reg, Reg1: RegAF},
	0xF6: {Kind: OR, Mode: RegD8, Reg1: RegA},
	0xF7: {Kind: RST, Param: param(0x30)},
	0xF8: {Kind: LD, Mode: HLSPRel, Reg1: RegHL, Reg2: RegSP},
	0xF9: {Kind: LD, Mode: RegReg, Reg1: RegSP, Reg2: RegHL},
	0xFA: {Kind: LD, Mode: RegA16, Reg1: RegA},
	0xFB: {Kind: EI},
	0xFE: {Kind: CP, Mode: RegD8, Reg1: RegA},
	0xFF: {Kind: RST, Param: param(0x38)},
}

// operandRegisters is the register encoded by the low three bits
// of the LD r,r', ALU and CB opcodes. RegHL stands for (HL).
var operandRegisters = [8]RegisterID{RegB, RegC, RegD, RegE, RegH, RegL, RegHL, RegA}

var aluKinds = [8]Kind{ADD, ADC, SUB, SBC, AND, XOR, OR, CP}

var cbKinds = [8]Kind{RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL}

func init() {
	// LD r, r'
	for op := 0x40; op < 0x80; op++ {
		dst := operandRegisters[(op>>3)&7]
		src := operandRegisters[op&7]
		switch {
		case op == 0x76:
			instructions[op] = Instruction{Kind: HALT}
		case dst == RegHL:
			instructions[op] = Instruction{Kind: LD, Mode: MemReg, Reg1: RegHL, Reg2: src}
		case src == RegHL:
			instructions[op] = Instruction{Kind: LD, Mode: RegMem, Reg1: dst, Reg2: RegHL}
		default:
			instructions[op] = Instruction{Kind: LD, Mode: RegReg, Reg1: dst, Reg2: src}
		}
	}

	// ALU A, r
	for op := 0x80; op < 0xC0; op++ {
		kind := aluKinds[(op>>3)&7]
		src := operandRegisters[op&7]
		if src == RegHL {
			instructions[op] = Instruction{Kind: kind, Mode: RegMem, Reg1: RegA, Reg2: RegHL}
		} else {
			instructions[op] = Instruction{Kind: kind, Mode: RegReg, Reg1: RegA, Reg2: src}
		}
	}
}

// Decode returns the instruction for the given opcode. Opcodes
// with no architectural meaning return an Undefined instruction.
func Decode(opcode uint8) Instruction {
	return instructions[opcode]
}

// DecodeCB decodes the byte following a 0xCB prefix into its
// operation, the register it operates on (RegHL for (HL)), and
// the bit index or sub-operation group.
func DecodeCB(b uint8) (kind Kind, reg RegisterID, bit uint8) {
	reg = operandRegisters[b&0b111]
	bit = (b >> 3) & 0b111
	switch (b >> 6) & 0b11 {
	case 0:
		kind = cbKinds[bit]
	case 1:
		kind = BIT
	case 2:
		kind = RES
	case 3:
		kind = SET
	}
	return kind, reg, bit
}
