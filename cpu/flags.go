package cpu

import "nes6502/mask"

// Flags is the packed 8-bit processor status register (the "P" register).
//
// 7654 3210
// NV1B DIZC
type Flags byte

const (
	FlagC Flags = 1 << iota // Carry
	FlagZ                   // Zero
	FlagI                   // Interrupt disable
	FlagD                   // Decimal mode (inert on the NES)
	FlagB                   // Break (only meaningful in a pushed copy of P)
	FlagU                   // Unused, conventionally always 1
	FlagV                   // Overflow
	FlagN                   // Negative
)

// IsSet reports whether f is set in p. Bit positions are expressed via the
// mask package's 1-indexed-from-the-left convention.
func (p Flags) IsSet(f Flags) bool {
	switch f {
	case FlagC:
		return mask.IsSet(byte(p), mask.I8)
	case FlagZ:
		return mask.IsSet(byte(p), mask.I7)
	case FlagI:
		return mask.IsSet(byte(p), mask.I6)
	case FlagD:
		return mask.IsSet(byte(p), mask.I5)
	case FlagB:
		return mask.IsSet(byte(p), mask.I4)
	case FlagU:
		return mask.IsSet(byte(p), mask.I3)
	case FlagV:
		return mask.IsSet(byte(p), mask.I2)
	default: // FlagN
		return mask.IsSet(byte(p), mask.I1)
	}
}

// Set updates f in p according to b.
func (p *Flags) Set(f Flags, b bool) {
	if b {
		*p |= f
	} else {
		*p &^= f
	}
}

// AsByte returns p as a plain byte, e.g. for pushing to the stack.
func (p Flags) AsByte() byte {
	return byte(p)
}

// SetFromByte replaces p wholesale from a byte, e.g. after pulling from the
// stack.
func (p *Flags) SetFromByte(b byte) {
	*p = Flags(b)
}

// UpdateZN sets Z iff value is zero and N iff bit 7 of value is set. This is
// the shared flag update used by nearly every instruction that produces a
// register or memory result.
func (p *Flags) UpdateZN(value byte) {
	p.Set(FlagZ, value == 0)
	p.Set(FlagN, value&0x80 != 0)
}
