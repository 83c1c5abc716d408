package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSystemLoadTooLarge(t *testing.T) {
	sys := New(Quirks{})

	err := sys.Load(make([]byte, MaxROMSize+1))
	assert.True(t, errors.Is(err, ErrROMTooLarge))
}

func TestSystemReset(t *testing.T) {
	program := []byte{
		0x60, 0x42,
		0xF0, 0x15, // ld DT, V0
		0xF0, 0x29,
		0xD0, 0x05,
	}

	sys := New(Quirks{})
	assert.NoError(t, sys.Load(program))
	sys.SetKey(2, true)

	for i := 0; i < 4; i++ {
		assert.NoError(t, sys.Step())
	}
	assert.True(t, sys.DelayTimer() > 0)

	sys.Reset()

	assert.Equal(t, uint16(ProgramStart), sys.CPU().PC())
	assert.Equal(t, 0, sys.CPU().Register(0))
	assert.Equal(t, 0, sys.DelayTimer())
	assert.False(t, sys.keypad.KeyDown(2))

	for y := 0; y < DisplayHeight; y++ {
		for x := 0; x < DisplayWidth; x++ {
			assert.False(t, sys.Display().Pixel(x, y))
		}
	}

	// the program image is reloaded and runs again
	_, opcode := sys.PeekOpcode()
	assert.Equal(t, uint16(0x6042), opcode)
	assert.NoError(t, sys.Step())
	assert.Equal(t, 0x42, sys.CPU().Register(0))
}

func TestSystemTickTimers(t *testing.T) {
	sys := runProgram(t, Quirks{}, []byte{
		0x60, 0x3C, // 60
		0xF0, 0x15,
		0xF0, 0x18,
	}, 3)

	for i := 0; i < 60; i++ {
		sys.TickTimers()
	}

	assert.Equal(t, 0, sys.DelayTimer())
	assert.Equal(t, 0, sys.SoundTimer())

	sys.TickTimers()
	assert.Equal(t, 0, sys.SoundTimer())
}

func TestSystemPeekOpcode(t *testing.T) {
	sys := New(Quirks{})
	assert.NoError(t, sys.Load([]byte{0x12, 0x34}))

	address, opcode := sys.PeekOpcode()
	assert.Equal(t, uint16(ProgramStart), address)
	assert.Equal(t, uint16(0x1234), opcode)

	// peeking does not advance the machine
	address, _ = sys.PeekOpcode()
	assert.Equal(t, uint16(ProgramStart), address)
}
