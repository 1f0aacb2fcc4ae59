package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nes6502/mem"
)

func newTestCpu(t *testing.T) (*Cpu, *mem.Bus) {
	t.Helper()
	bus := mem.NewBus()
	c := &Cpu{Bus: bus}
	c.Reset()
	return c, bus
}

func TestLoadProgram(t *testing.T) {
	program := []byte{0xA2, 0x0A, 0x8E, 0x00, 0x00, 0xA2, 0x03, 0x8E, 0x01, 0x00,
		0xAC, 0x00, 0x00, 0xA9, 0x00, 0x18, 0x6D, 0x01, 0x00, 0x88, 0xD0,
		0xFA, 0x8D, 0x02, 0x00, 0xEA, 0xEA, 0xEA} // 28 bytes

	c, bus := newTestCpu(t)
	err := c.LoadProgram(program, 0x8000)
	assert.NoError(t, err)

	assert.Equal(t, uint8(0xA2), bus.Read8(0x8000))
	assert.Equal(t, uint8(0x0A), bus.Read8(0x8001))
	assert.Equal(t, uint8(0x8E), bus.Read8(0x8002))
	assert.Equal(t, uint8(0xEA), bus.Read8(0x801b))
	assert.Equal(t, uint8(0), bus.Read8(0x801c))

	assert.Equal(t, "LDX", opcodeTable[bus.Read8(0x8000)].Mnemonic)
	assert.Equal(t, "ASL", opcodeTable[bus.Read8(0x8001)].Mnemonic)
	assert.Equal(t, "STX", opcodeTable[bus.Read8(0x8002)].Mnemonic)
	assert.Equal(t, "NOP", opcodeTable[bus.Read8(0x801b)].Mnemonic)
	assert.Equal(t, "BRK", opcodeTable[bus.Read8(0x801c)].Mnemonic)
}

// TestMultiplyByRepeatedAddition loads 10 into X, stores it at $00, loads 3
// into X, stores it at $01, then computes memory[0x00] * memory[0x01] via
// repeated addition into A, storing the 30 result at $02 before halting.
func TestMultiplyByRepeatedAddition(t *testing.T) {
	program := []byte{0xA2, 0x0A, 0x8E, 0x00, 0x00, 0xA2, 0x03, 0x8E, 0x01, 0x00,
		0xAC, 0x00, 0x00, 0xA9, 0x00, 0x18, 0x6D, 0x01, 0x00, 0x88, 0xD0,
		0xFA, 0x8D, 0x02, 0x00, 0xEA, 0xEA, 0xEA}

	c, bus := newTestCpu(t)
	offset := uint16(0x8000)
	err := c.LoadProgram(program, offset)
	assert.NoError(t, err)

	err = c.Run()
	assert.NoError(t, err)

	assert.Equal(t, uint8(30), c.A)
	assert.Equal(t, uint8(3), c.X)
	assert.Equal(t, uint8(0), c.Y)

	assert.Equal(t, uint8(10), bus.Read8(0x00))
	assert.Equal(t, uint8(3), bus.Read8(0x01))
	assert.Equal(t, uint8(30), bus.Read8(0x02))
}

// TestImmediateLoadAndStore is scenario 1: LDA #$80; STA $10; BRK.
func TestImmediateLoadAndStore(t *testing.T) {
	c, bus := newTestCpu(t)
	program := []byte{0xA9, 0x80, 0x85, 0x10, 0x00}
	require := func(err error) { assert.NoError(t, err) }
	require(c.LoadProgram(program, 0x0600))

	require(c.Run())

	assert.Equal(t, uint8(0x80), c.A)
	assert.Equal(t, uint8(0x80), bus.Read8(0x10))
	assert.True(t, c.P.IsSet(FlagN))
	assert.False(t, c.P.IsSet(FlagZ))
}

// TestZeroPageLoadChain is scenario 2.
func TestZeroPageLoadChain(t *testing.T) {
	c, bus := newTestCpu(t)
	bus.Write8(0x80, 0xF1)
	bus.Write8(0x81, 0xF2)
	bus.Write8(0x82, 0xF3)

	program := []byte{
		0xA5, 0x80, 0x85, 0x20,
		0xA6, 0x81, 0x86, 0x21,
		0xA4, 0x82, 0x84, 0x22,
		0x00,
	}
	assert.NoError(t, c.LoadProgram(program, 0x0600))
	assert.NoError(t, c.Run())

	assert.Equal(t, uint8(0xF1), bus.Read8(0x20))
	assert.Equal(t, uint8(0xF2), bus.Read8(0x21))
	assert.Equal(t, uint8(0xF3), bus.Read8(0x22))
}

// TestADCCarryAndOverflow is scenario 3: 0x50 + 0x50 signed overflows into a
// negative result despite both operands being positive.
func TestADCCarryAndOverflow(t *testing.T) {
	c, _ := newTestCpu(t)
	program := []byte{0x69, 0x50, 0x00}
	assert.NoError(t, c.LoadProgram(program, 0x0600))
	c.A = 0x50
	c.P.Set(FlagC, false)

	assert.NoError(t, c.Run())

	assert.Equal(t, uint8(0xA0), c.A)
	assert.False(t, c.P.IsSet(FlagC))
	assert.True(t, c.P.IsSet(FlagV))
	assert.True(t, c.P.IsSet(FlagN))
	assert.False(t, c.P.IsSet(FlagZ))
}

// TestSBCBorrow is scenario 4.
func TestSBCBorrow(t *testing.T) {
	c, _ := newTestCpu(t)
	program := []byte{0xE9, 0xB0, 0x00}
	assert.NoError(t, c.LoadProgram(program, 0x0600))
	c.A = 0x50
	c.P.Set(FlagC, true)

	assert.NoError(t, c.Run())

	assert.Equal(t, uint8(0xA0), c.A)
	assert.False(t, c.P.IsSet(FlagC))
	assert.True(t, c.P.IsSet(FlagV))
	assert.True(t, c.P.IsSet(FlagN))
}

// TestBranchTakenSkipsLoad is scenario 5: the BEQ is taken, jumping past the
// LDA #$FF straight into the first BRK, so the LDA #$42 is never reached.
func TestBranchTakenSkipsLoad(t *testing.T) {
	c, bus := newTestCpu(t)
	program := []byte{0xA9, 0x00, 0xF0, 0x02, 0xA9, 0xFF, 0x00, 0xA9, 0x42, 0x00}
	assert.NoError(t, c.LoadProgram(program, 0x0600))

	_, err := c.Step() // LDA #$00
	assert.NoError(t, err)
	_, err = c.Step() // BEQ +2, taken since Z is set
	assert.NoError(t, err)

	// The branch must have landed directly on the first BRK at $0606,
	// skipping over the LDA #$FF at $0604/$0605 entirely.
	assert.Equal(t, uint16(0x0606), c.PC)
	assert.Equal(t, uint8(0x00), bus.Read8(c.PC))
	assert.Equal(t, uint8(0x00), c.A)

	halted, err := c.Step() // BRK
	assert.NoError(t, err)
	assert.True(t, halted)
	assert.Equal(t, uint8(0x00), c.A)
}

// TestJSRRTSRoundTrip is scenario 6. The stack pointer is checked right after
// RTS, since the BRK that ends the program pushes three more bytes.
func TestJSRRTSRoundTrip(t *testing.T) {
	c, _ := newTestCpu(t)
	program := []byte{0x20, 0x09, 0x06, 0xA9, 0x11, 0x00, 0x00, 0x00, 0x00, 0xA9, 0x22, 0x60}
	assert.NoError(t, c.LoadProgram(program, 0x0600))

	for range 3 { // JSR $0609; LDA #$22; RTS
		_, err := c.Step()
		assert.NoError(t, err)
	}
	assert.Equal(t, uint16(0x0603), c.PC)
	assert.Equal(t, uint8(0xFD), c.S)

	assert.NoError(t, c.Run())

	assert.Equal(t, uint8(0x11), c.A)
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	c, bus := newTestCpu(t)
	bus.Write8(0x02FF, 0x00)
	bus.Write8(0x0200, 0x12) // wrongly-fetched high byte
	bus.Write8(0x0300, 0x34) // correct high byte, never fetched

	program := []byte{0x6C, 0xFF, 0x02}
	assert.NoError(t, c.LoadProgram(program, 0x0600))

	_, err := c.Step()
	assert.NoError(t, err)

	assert.Equal(t, uint16(0x1200), c.PC)
}

func TestPushPullRestoresAccumulatorAndStackPointer(t *testing.T) {
	c, bus := newTestCpu(t)
	program := []byte{0xA9, 0x42, 0x48, 0xA9, 0x00, 0x68, 0x00} // LDA #$42; PHA; LDA #$00; PLA; BRK
	assert.NoError(t, c.LoadProgram(program, 0x0600))
	startS := c.S
	pushedAt := stackBase | uint16(startS)

	_, err := c.Step() // LDA #$42
	assert.NoError(t, err)
	_, err = c.Step() // PHA
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x42), bus.Read8(pushedAt))

	_, err = c.Step() // LDA #$00
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x00), c.A)

	_, err = c.Step() // PLA
	assert.NoError(t, err)

	assert.Equal(t, uint8(0x42), c.A)
	assert.Equal(t, startS, c.S)
}

func TestCompareSetsCarryAndZero(t *testing.T) {
	c, _ := newTestCpu(t)
	c.A = 0x10
	program := []byte{0xC9, 0x10, 0x00} // CMP #$10
	assert.NoError(t, c.LoadProgram(program, 0x0600))

	assert.NoError(t, c.Run())

	assert.True(t, c.P.IsSet(FlagC))
	assert.True(t, c.P.IsSet(FlagZ))
}

func TestUnsupportedOpcode(t *testing.T) {
	c, _ := newTestCpu(t)
	program := []byte{0xFF} // not a defined opcode
	assert.NoError(t, c.LoadProgram(program, 0x0600))

	_, err := c.Step()
	assert.Error(t, err)

	var unsupported UnsupportedOpcode
	assert.ErrorAs(t, err, &unsupported)
	assert.Equal(t, byte(0xFF), unsupported.Opcode)
}

func TestResetLoadsVectorAndPowerOnState(t *testing.T) {
	bus := mem.NewBus()
	bus.Write8(0xFFFC, 0x00)
	bus.Write8(0xFFFD, 0x86)

	c := New(bus)

	assert.Equal(t, uint16(0x8600), c.PC)
	assert.Equal(t, uint8(0xFD), c.S)
	assert.True(t, c.P.IsSet(FlagI))
	assert.True(t, c.P.IsSet(FlagU))
}
