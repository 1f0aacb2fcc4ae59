package cpu

// AddressingMode tells the Cpu how to locate the operand for an
// instruction. There are 13 distinct modes recognized by this core.
type AddressingMode int

const (
	Implied     AddressingMode = iota // no operand
	Accumulator                       // operand is the Accumulator itself

	Immediate // operand is the byte at PC
	ZeroPage  // operand address is a single zero-page byte
	ZeroPageX // zero-page byte + X, wrapping within page 0
	ZeroPageY // zero-page byte + Y, wrapping within page 0

	Relative // signed 8-bit branch offset, relative to PC after the operand

	Absolute  // operand address is a 16-bit little-endian value
	AbsoluteX // absolute address + X, may cross a page
	AbsoluteY // absolute address + Y, may cross a page

	Indirect // JMP only; reproduces the page-wrap pointer bug

	IndexedIndirectX // (d,X): zero-page pointer indexed before dereferencing
	IndirectIndexedY // (d),Y: zero-page pointer dereferenced, then indexed
)

// String renders a short marker for the mode (e.g. "abs,X"), shown when the
// debugger dumps the current opcode descriptor. Disassemble does not use it;
// it formats each mode's operand syntax itself.
func (a AddressingMode) String() string {
	switch a {
	case Implied:
		return "impl"
	case Accumulator:
		return "A"
	case Immediate:
		return "#"
	case ZeroPage:
		return "zp"
	case ZeroPageX:
		return "zp,X"
	case ZeroPageY:
		return "zp,Y"
	case Relative:
		return "rel"
	case Absolute:
		return "abs"
	case AbsoluteX:
		return "abs,X"
	case AbsoluteY:
		return "abs,Y"
	case Indirect:
		return "ind"
	case IndexedIndirectX:
		return "X,ind"
	case IndirectIndexedY:
		return "ind,Y"
	default:
		return "?"
	}
}
