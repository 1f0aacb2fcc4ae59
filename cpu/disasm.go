package cpu

import (
	"fmt"

	"nes6502/mem"
)

// Disassemble renders the instruction at pc as "MNEMONIC operand", using
// each addressing mode's conventional syntax. It reads m but never mutates
// it or any interpreter state, so it is safe to call between or instead of
// Step calls (the debugger and tests both rely on this).
func Disassemble(m mem.Memory, pc uint16) string {
	opByte := m.Read8(pc)
	desc, ok := opcodeTable[opByte]
	if !ok {
		return fmt.Sprintf(".byte $%02X", opByte)
	}

	switch desc.Mode {
	case Implied:
		return desc.Mnemonic
	case Accumulator:
		return fmt.Sprintf("%s A", desc.Mnemonic)
	case Immediate:
		return fmt.Sprintf("%s #$%02X", desc.Mnemonic, m.Read8(pc+1))
	case ZeroPage:
		return fmt.Sprintf("%s $%02X", desc.Mnemonic, m.Read8(pc+1))
	case ZeroPageX:
		return fmt.Sprintf("%s $%02X,X", desc.Mnemonic, m.Read8(pc+1))
	case ZeroPageY:
		return fmt.Sprintf("%s $%02X,Y", desc.Mnemonic, m.Read8(pc+1))
	case Relative:
		offset := int8(m.Read8(pc + 1))
		target := pc + 2 + uint16(offset)
		return fmt.Sprintf("%s $%04X", desc.Mnemonic, target)
	case Absolute:
		return fmt.Sprintf("%s $%04X", desc.Mnemonic, mem.Read16(m, pc+1))
	case AbsoluteX:
		return fmt.Sprintf("%s $%04X,X", desc.Mnemonic, mem.Read16(m, pc+1))
	case AbsoluteY:
		return fmt.Sprintf("%s $%04X,Y", desc.Mnemonic, mem.Read16(m, pc+1))
	case Indirect:
		return fmt.Sprintf("%s ($%04X)", desc.Mnemonic, mem.Read16(m, pc+1))
	case IndexedIndirectX:
		return fmt.Sprintf("%s ($%02X,X)", desc.Mnemonic, m.Read8(pc+1))
	case IndirectIndexedY:
		return fmt.Sprintf("%s ($%02X),Y", desc.Mnemonic, m.Read8(pc+1))
	default:
		return desc.Mnemonic
	}
}
