// Package cpu implements the MOS Technology 6502 microprocessor, as used in
// the NES.
package cpu

import (
	"fmt"

	"nes6502/mask"
	"nes6502/mem"
)

const stackBase uint16 = 0x0100

const (
	resetVectAddr = 0xFFFC
	brkVectAddr   = 0xFFFE
)

// Cpu is a MOS 6502 register file and dispatch loop bound to a Memory bus.
// It has no memory of its own (aside from its handful of registers); all
// reads and writes go through Bus.
type Cpu struct {
	Bus mem.Memory

	A  uint8  // Accumulator
	X  uint8  // X index register
	Y  uint8  // Y index register
	S  uint8  // Stack pointer (actual stack address is 0x0100|S)
	P  Flags  // Processor status
	PC uint16 // Program counter

	// AbsAddress is the effective operand address computed by the most
	// recent addressing-mode resolution. Relative mode stores its (already
	// offset-applied) branch target here too.
	AbsAddress uint16

	// halted is set once a BRK has been executed; Run stops when it is set.
	halted bool
}

// New returns a Cpu wired to bus, in power-on state.
func New(bus mem.Memory) *Cpu {
	c := &Cpu{Bus: bus}
	c.Reset()
	return c
}

// Read reads one byte from the attached bus.
func (c *Cpu) Read(addr uint16) byte {
	return c.Bus.Read8(addr)
}

// Write writes one byte to the attached bus.
func (c *Cpu) Write(addr uint16, data byte) {
	c.Bus.Write8(addr, data)
}

// readWord reads a little-endian word from memory.
func (c *Cpu) readWord(addr uint16) uint16 {
	return mem.Read16(c.Bus, addr)
}

// stackPush writes data to the stack and decrements S (wrapping at 8 bits).
func (c *Cpu) stackPush(data byte) {
	c.Write(stackBase|uint16(c.S), data)
	c.S--
}

// stackPop increments S (wrapping at 8 bits) and reads the stack.
func (c *Cpu) stackPop() byte {
	c.S++
	return c.Read(stackBase | uint16(c.S))
}

// pushWord pushes a 16-bit value high byte first, matching JSR/BRK.
func (c *Cpu) pushWord(val uint16) {
	c.stackPush(byte(val >> 8))
	c.stackPush(byte(val))
}

// pullWord pulls a 16-bit value low byte first, matching RTS/RTI.
func (c *Cpu) pullWord() uint16 {
	lo := c.stackPop()
	hi := c.stackPop()
	return mask.Word(hi, lo)
}

// Reset installs power-on register state and loads PC from the reset
// vector: A=X=Y=0, SP=0xFD, P has I=1 and U=1, PC from $FFFC/$FFFD.
func (c *Cpu) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.S = 0xFD
	c.P = Flags(0)
	c.P.Set(FlagI, true)
	c.P.Set(FlagU, true)
	c.PC = c.readWord(resetVectAddr)
	c.AbsAddress = 0
	c.halted = false
}

// UnsupportedOpcode is returned when the decoder encounters a byte outside
// the official opcode table.
type UnsupportedOpcode struct {
	Opcode byte
	PC     uint16
}

func (e UnsupportedOpcode) Error() string {
	return fmt.Sprintf("unsupported opcode 0x%02X at $%04X", e.Opcode, e.PC)
}

// resolve computes the effective operand address for mode, consuming
// operand bytes from PC as needed. Accumulator and Implied carry no
// address; callers must special-case them (the byte is read directly from
// c.A, or no operand exists at all).
func (c *Cpu) resolve(mode AddressingMode) uint16 {
	switch mode {
	case Implied, Accumulator:
		return 0

	case Immediate:
		addr := c.PC
		c.PC++
		return addr

	case ZeroPage:
		addr := uint16(c.Read(c.PC))
		c.PC++
		return addr

	case ZeroPageX:
		addr := uint16(c.Read(c.PC)+c.X) & 0x00FF
		c.PC++
		return addr

	case ZeroPageY:
		addr := uint16(c.Read(c.PC)+c.Y) & 0x00FF
		c.PC++
		return addr

	case Absolute:
		addr := c.readWord(c.PC)
		c.PC += 2
		return addr

	case AbsoluteX:
		base := c.readWord(c.PC)
		c.PC += 2
		return base + uint16(c.X)

	case AbsoluteY:
		base := c.readWord(c.PC)
		c.PC += 2
		return base + uint16(c.Y)

	case Indirect:
		ptr := c.readWord(c.PC)
		c.PC += 2
		lo := c.Read(ptr)
		// Page-wrap bug: the high byte is fetched from the same page as
		// the pointer's low byte, not the next page, when the low byte of
		// ptr is 0xFF.
		hi := c.Read((ptr & 0xFF00) | ((ptr + 1) & 0x00FF))
		return mask.Word(hi, lo)

	case IndexedIndirectX:
		zp := uint16(c.Read(c.PC)+c.X) & 0x00FF
		c.PC++
		lo := c.Read(zp)
		hi := c.Read((zp + 1) & 0x00FF)
		return mask.Word(hi, lo)

	case IndirectIndexedY:
		zp := uint16(c.Read(c.PC))
		c.PC++
		lo := c.Read(zp)
		hi := c.Read((zp + 1) & 0x00FF)
		return mask.Word(hi, lo) + uint16(c.Y)

	case Relative:
		offset := int8(c.Read(c.PC))
		c.PC++
		return c.PC + uint16(offset)

	default:
		return 0
	}
}

// operand returns the byte the current instruction operates on: A itself
// for Accumulator mode, otherwise whatever resolve computed into addr.
func (c *Cpu) operand(mode AddressingMode, addr uint16) byte {
	if mode == Accumulator {
		return c.A
	}
	return c.Read(addr)
}

// writeResult stores an RMW instruction's result back to A (Accumulator
// mode) or to memory at addr.
func (c *Cpu) writeResult(mode AddressingMode, addr uint16, val byte) {
	if mode == Accumulator {
		c.A = val
		return
	}
	c.Write(addr, val)
}

// Step executes exactly one instruction: fetch, decode, resolve, execute,
// and (unless the instruction already redirected PC) advance PC past the
// operand bytes. It reports whether the Cpu is halted, i.e. whether a BRK
// has executed since the last Reset (not only in this step).
func (c *Cpu) Step() (halted bool, err error) {
	opByte := c.Read(c.PC)
	c.PC++

	desc, ok := opcodeTable[opByte]
	if !ok {
		return false, UnsupportedOpcode{Opcode: opByte, PC: c.PC - 1}
	}

	pcAfterOp := c.PC
	c.AbsAddress = c.resolve(desc.Mode)

	desc.Exec(c, desc.Mode, c.AbsAddress)

	if c.PC == pcAfterOp {
		c.PC += uint16(desc.ByteLength - 1)
	}

	if desc.Mnemonic == "BRK" {
		c.halted = true
	}
	return c.halted, nil
}

// Run steps the Cpu until BRK executes or an error occurs.
func (c *Cpu) Run() error {
	for {
		halted, err := c.Step()
		if err != nil {
			return err
		}
		if halted {
			return nil
		}
	}
}

// LoadProgram loads a raw program at addr and points PC at it, for the
// "raw program at $0600" testing convention. It does not run Reset, since
// doing so would overwrite PC from the (likely absent) reset vector.
func (c *Cpu) LoadProgram(program []byte, addr uint16) error {
	b, ok := c.Bus.(interface {
		LoadRaw([]byte, uint16) error
	})
	if !ok {
		return fmt.Errorf("bus does not support LoadRaw")
	}
	if err := b.LoadRaw(program, addr); err != nil {
		return err
	}
	c.PC = addr
	return nil
}
