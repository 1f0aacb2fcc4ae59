package cpu

// opcodeDesc describes one of the 256 possible opcode byte values: its
// mnemonic (for the debugger/disassembler), its addressing mode, the total
// instruction length in bytes (opcode + operand), a base cycle count, and
// the execFunc that carries out its semantics.
//
// BaseCycles does not account for page-crossing or branch-taken penalties;
// this core does not model cycle-exact timing (see Non-goals).
type opcodeDesc struct {
	Mnemonic   string
	Mode       AddressingMode
	ByteLength int
	BaseCycles byte
	Exec       execFunc
}

// opcodeTable maps each of the ~151 official NMOS 6502 opcode bytes to its
// descriptor. Byte values absent from the table are illegal opcodes; Step
// reports them via UnsupportedOpcode rather than guessing at undocumented
// behavior.
var opcodeTable = map[byte]opcodeDesc{
	0x69: {"ADC", Immediate, 2, 2, opADC},
	0x65: {"ADC", ZeroPage, 2, 3, opADC},
	0x75: {"ADC", ZeroPageX, 2, 4, opADC},
	0x6D: {"ADC", Absolute, 3, 4, opADC},
	0x7D: {"ADC", AbsoluteX, 3, 4, opADC},
	0x79: {"ADC", AbsoluteY, 3, 4, opADC},
	0x61: {"ADC", IndexedIndirectX, 2, 6, opADC},
	0x71: {"ADC", IndirectIndexedY, 2, 5, opADC},

	0x29: {"AND", Immediate, 2, 2, opAND},
	0x25: {"AND", ZeroPage, 2, 3, opAND},
	0x35: {"AND", ZeroPageX, 2, 4, opAND},
	0x2D: {"AND", Absolute, 3, 4, opAND},
	0x3D: {"AND", AbsoluteX, 3, 4, opAND},
	0x39: {"AND", AbsoluteY, 3, 4, opAND},
	0x21: {"AND", IndexedIndirectX, 2, 6, opAND},
	0x31: {"AND", IndirectIndexedY, 2, 5, opAND},

	0x0A: {"ASL", Accumulator, 1, 2, opASL},
	0x06: {"ASL", ZeroPage, 2, 5, opASL},
	0x16: {"ASL", ZeroPageX, 2, 6, opASL},
	0x0E: {"ASL", Absolute, 3, 6, opASL},
	0x1E: {"ASL", AbsoluteX, 3, 7, opASL},

	0x24: {"BIT", ZeroPage, 2, 3, opBIT},
	0x2C: {"BIT", Absolute, 3, 4, opBIT},

	0x10: {"BPL", Relative, 2, 2, opBPL},
	0x30: {"BMI", Relative, 2, 2, opBMI},
	0x50: {"BVC", Relative, 2, 2, opBVC},
	0x70: {"BVS", Relative, 2, 2, opBVS},
	0x90: {"BCC", Relative, 2, 2, opBCC},
	0xB0: {"BCS", Relative, 2, 2, opBCS},
	0xD0: {"BNE", Relative, 2, 2, opBNE},
	0xF0: {"BEQ", Relative, 2, 2, opBEQ},

	0x00: {"BRK", Implied, 1, 7, opBRK},

	0xC9: {"CMP", Immediate, 2, 2, opCMP},
	0xC5: {"CMP", ZeroPage, 2, 3, opCMP},
	0xD5: {"CMP", ZeroPageX, 2, 4, opCMP},
	0xCD: {"CMP", Absolute, 3, 4, opCMP},
	0xDD: {"CMP", AbsoluteX, 3, 4, opCMP},
	0xD9: {"CMP", AbsoluteY, 3, 4, opCMP},
	0xC1: {"CMP", IndexedIndirectX, 2, 6, opCMP},
	0xD1: {"CMP", IndirectIndexedY, 2, 5, opCMP},

	0xE0: {"CPX", Immediate, 2, 2, opCPX},
	0xE4: {"CPX", ZeroPage, 2, 3, opCPX},
	0xEC: {"CPX", Absolute, 3, 4, opCPX},

	0xC0: {"CPY", Immediate, 2, 2, opCPY},
	0xC4: {"CPY", ZeroPage, 2, 3, opCPY},
	0xCC: {"CPY", Absolute, 3, 4, opCPY},

	0xC6: {"DEC", ZeroPage, 2, 5, opDEC},
	0xD6: {"DEC", ZeroPageX, 2, 6, opDEC},
	0xCE: {"DEC", Absolute, 3, 6, opDEC},
	0xDE: {"DEC", AbsoluteX, 3, 7, opDEC},

	0x49: {"EOR", Immediate, 2, 2, opEOR},
	0x45: {"EOR", ZeroPage, 2, 3, opEOR},
	0x55: {"EOR", ZeroPageX, 2, 4, opEOR},
	0x4D: {"EOR", Absolute, 3, 4, opEOR},
	0x5D: {"EOR", AbsoluteX, 3, 4, opEOR},
	0x59: {"EOR", AbsoluteY, 3, 4, opEOR},
	0x41: {"EOR", IndexedIndirectX, 2, 6, opEOR},
	0x51: {"EOR", IndirectIndexedY, 2, 5, opEOR},

	0x18: {"CLC", Implied, 1, 2, opCLC},
	0x38: {"SEC", Implied, 1, 2, opSEC},
	0x58: {"CLI", Implied, 1, 2, opCLI},
	0x78: {"SEI", Implied, 1, 2, opSEI},
	0xB8: {"CLV", Implied, 1, 2, opCLV},
	0xD8: {"CLD", Implied, 1, 2, opCLD},
	0xF8: {"SED", Implied, 1, 2, opSED},

	0xE6: {"INC", ZeroPage, 2, 5, opINC},
	0xF6: {"INC", ZeroPageX, 2, 6, opINC},
	0xEE: {"INC", Absolute, 3, 6, opINC},
	0xFE: {"INC", AbsoluteX, 3, 7, opINC},

	0x4C: {"JMP", Absolute, 3, 3, opJMP},
	0x6C: {"JMP", Indirect, 3, 5, opJMP},

	0x20: {"JSR", Absolute, 3, 6, opJSR},

	0xA9: {"LDA", Immediate, 2, 2, opLDA},
	0xA5: {"LDA", ZeroPage, 2, 3, opLDA},
	0xB5: {"LDA", ZeroPageX, 2, 4, opLDA},
	0xAD: {"LDA", Absolute, 3, 4, opLDA},
	0xBD: {"LDA", AbsoluteX, 3, 4, opLDA},
	0xB9: {"LDA", AbsoluteY, 3, 4, opLDA},
	0xA1: {"LDA", IndexedIndirectX, 2, 6, opLDA},
	0xB1: {"LDA", IndirectIndexedY, 2, 5, opLDA},

	0xA2: {"LDX", Immediate, 2, 2, opLDX},
	0xA6: {"LDX", ZeroPage, 2, 3, opLDX},
	0xB6: {"LDX", ZeroPageY, 2, 4, opLDX},
	0xAE: {"LDX", Absolute, 3, 4, opLDX},
	0xBE: {"LDX", AbsoluteY, 3, 4, opLDX},

	0xA0: {"LDY", Immediate, 2, 2, opLDY},
	0xA4: {"LDY", ZeroPage, 2, 3, opLDY},
	0xB4: {"LDY", ZeroPageX, 2, 4, opLDY},
	0xAC: {"LDY", Absolute, 3, 4, opLDY},
	0xBC: {"LDY", AbsoluteX, 3, 4, opLDY},

	0x4A: {"LSR", Accumulator, 1, 2, opLSR},
	0x46: {"LSR", ZeroPage, 2, 5, opLSR},
	0x56: {"LSR", ZeroPageX, 2, 6, opLSR},
	0x4E: {"LSR", Absolute, 3, 6, opLSR},
	0x5E: {"LSR", AbsoluteX, 3, 7, opLSR},

	0xEA: {"NOP", Implied, 1, 2, opNOP},

	0x09: {"ORA", Immediate, 2, 2, opORA},
	0x05: {"ORA", ZeroPage, 2, 3, opORA},
	0x15: {"ORA", ZeroPageX, 2, 4, opORA},
	0x0D: {"ORA", Absolute, 3, 4, opORA},
	0x1D: {"ORA", AbsoluteX, 3, 4, opORA},
	0x19: {"ORA", AbsoluteY, 3, 4, opORA},
	0x01: {"ORA", IndexedIndirectX, 2, 6, opORA},
	0x11: {"ORA", IndirectIndexedY, 2, 5, opORA},

	0xAA: {"TAX", Implied, 1, 2, opTAX},
	0x8A: {"TXA", Implied, 1, 2, opTXA},
	0xCA: {"DEX", Implied, 1, 2, opDEX},
	0xE8: {"INX", Implied, 1, 2, opINX},
	0xA8: {"TAY", Implied, 1, 2, opTAY},
	0x98: {"TYA", Implied, 1, 2, opTYA},
	0x88: {"DEY", Implied, 1, 2, opDEY},
	0xC8: {"INY", Implied, 1, 2, opINY},

	0x2A: {"ROL", Accumulator, 1, 2, opROL},
	0x26: {"ROL", ZeroPage, 2, 5, opROL},
	0x36: {"ROL", ZeroPageX, 2, 6, opROL},
	0x2E: {"ROL", Absolute, 3, 6, opROL},
	0x3E: {"ROL", AbsoluteX, 3, 7, opROL},

	0x6A: {"ROR", Accumulator, 1, 2, opROR},
	0x66: {"ROR", ZeroPage, 2, 5, opROR},
	0x76: {"ROR", ZeroPageX, 2, 6, opROR},
	0x6E: {"ROR", Absolute, 3, 6, opROR},
	0x7E: {"ROR", AbsoluteX, 3, 7, opROR},

	0x40: {"RTI", Implied, 1, 6, opRTI},
	0x60: {"RTS", Implied, 1, 6, opRTS},

	0xE9: {"SBC", Immediate, 2, 2, opSBC},
	0xE5: {"SBC", ZeroPage, 2, 3, opSBC},
	0xF5: {"SBC", ZeroPageX, 2, 4, opSBC},
	0xED: {"SBC", Absolute, 3, 4, opSBC},
	0xFD: {"SBC", AbsoluteX, 3, 4, opSBC},
	0xF9: {"SBC", AbsoluteY, 3, 4, opSBC},
	0xE1: {"SBC", IndexedIndirectX, 2, 6, opSBC},
	0xF1: {"SBC", IndirectIndexedY, 2, 5, opSBC},

	0x85: {"STA", ZeroPage, 2, 3, opSTA},
	0x95: {"STA", ZeroPageX, 2, 4, opSTA},
	0x8D: {"STA", Absolute, 3, 4, opSTA},
	0x9D: {"STA", AbsoluteX, 3, 5, opSTA},
	0x99: {"STA", AbsoluteY, 3, 5, opSTA},
	0x81: {"STA", IndexedIndirectX, 2, 6, opSTA},
	0x91: {"STA", IndirectIndexedY, 2, 6, opSTA},

	0x86: {"STX", ZeroPage, 2, 3, opSTX},
	0x96: {"STX", ZeroPageY, 2, 4, opSTX},
	0x8E: {"STX", Absolute, 3, 4, opSTX},

	0x84: {"STY", ZeroPage, 2, 3, opSTY},
	0x94: {"STY", ZeroPageX, 2, 4, opSTY},
	0x8C: {"STY", Absolute, 3, 4, opSTY},

	0x9A: {"TXS", Implied, 1, 2, opTXS},
	0xBA: {"TSX", Implied, 1, 2, opTSX},
	0x48: {"PHA", Implied, 1, 3, opPHA},
	0x68: {"PLA", Implied, 1, 4, opPLA},
	0x08: {"PHP", Implied, 1, 3, opPHP},
	0x28: {"PLP", Implied, 1, 4, opPLP},
}
