package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWrite16(t *testing.T) {
	b := NewBus()
	Write16(b, 0x0010, 0xBEEF)
	assert.Equal(t, uint8(0xEF), b.Read8(0x0010))
	assert.Equal(t, uint8(0xBE), b.Read8(0x0011))
	assert.Equal(t, uint16(0xBEEF), Read16(b, 0x0010))
}

func TestLoadRawWithinCapacity(t *testing.T) {
	b := NewBus()
	err := b.LoadRaw([]byte{0x01, 0x02, 0x03}, 0x0600)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x01), b.Read8(0x0600))
	assert.Equal(t, uint8(0x02), b.Read8(0x0601))
	assert.Equal(t, uint8(0x03), b.Read8(0x0602))
}

func TestLoadRawTooLarge(t *testing.T) {
	b := NewBus()
	program := make([]byte, 10)
	err := b.LoadRaw(program, 0xFFFC)
	assert.Error(t, err)

	var tooLarge LoadTooLarge
	assert.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, 10, tooLarge.Length)
	assert.Equal(t, 4, tooLarge.Capacity)
}

func TestLoadProgramUsesConventionalAddress(t *testing.T) {
	b := NewBus()
	assert.NoError(t, b.LoadProgram([]byte{0xEA}))
	assert.Equal(t, uint8(0xEA), b.Read8(rawProgramAddr))
}

func TestLoadCartridge(t *testing.T) {
	b := NewBus()
	rom := make([]byte, cartridgeCap)
	rom[0] = 0x4C
	rom[len(rom)-1] = 0x99
	assert.NoError(t, b.LoadCartridge(rom))
	assert.Equal(t, uint8(0x4C), b.Read8(cartridgeAddr))
	assert.Equal(t, uint8(0x99), b.Read8(0xFFFF))
}

func TestLoadCartridgeTooLarge(t *testing.T) {
	b := NewBus()
	rom := make([]byte, cartridgeCap+1)
	err := b.LoadCartridge(rom)
	assert.Error(t, err)
}

func TestPowerOnZeroesRAM(t *testing.T) {
	b := NewBus()
	b.Write8(0x1234, 0xAB)
	b.PowerOn()
	assert.Equal(t, uint8(0), b.Read8(0x1234))
}
