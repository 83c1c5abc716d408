package emulator

import (
	"context"
	"errors"
	"testing"

	"github.com/retroenv/chip8go/internal/chip8"
	"github.com/retroenv/chip8go/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// stubFrontend counts frontend calls and quits after a number of polls.
type stubFrontend struct {
	polls       int
	renders     int
	quitAtPoll  int
	soundStates []bool
}

func (s *stubFrontend) Poll(_ *chip8.System) bool {
	s.polls++
	return s.quitAtPoll > 0 && s.polls >= s.quitAtPoll
}

func (s *stubFrontend) Render(_ *chip8.Display) error {
	s.renders++
	return nil
}

func (s *stubFrontend) SetSound(active bool) {
	s.soundStates = append(s.soundStates, active)
}

func (s *stubFrontend) Close() error {
	return nil
}

func newTestEmulator(t *testing.T, program []byte, frontend Frontend) *Emulator {
	t.Helper()

	sys := chip8.New(chip8.Quirks{})
	assert.NoError(t, sys.Load(program))

	opts := options.New()
	return New(log.NewTestLogger(t), sys, frontend, opts)
}

func TestRunUntilQuit(t *testing.T) {
	frontend := &stubFrontend{quitAtPoll: 2}
	// endless loop: jp $200
	emu := newTestEmulator(t, []byte{0x12, 0x00}, frontend)

	err := emu.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, frontend.polls)
	// the initial blank frame got rendered
	assert.Equal(t, 1, frontend.renders)
}

func TestRunHaltsOnIllegalInstruction(t *testing.T) {
	frontend := &stubFrontend{}
	emu := newTestEmulator(t, []byte{0xF0, 0xFF}, frontend)

	err := emu.Run(context.Background())
	var illegal chip8.IllegalInstructionError
	assert.True(t, errors.As(err, &illegal))
	assert.Equal(t, uint16(0xF0FF), illegal.Opcode)
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frontend := &stubFrontend{}
	emu := newTestEmulator(t, []byte{0x12, 0x00}, frontend)

	err := emu.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRunReportsSoundState(t *testing.T) {
	frontend := &stubFrontend{quitAtPoll: 2}
	// set the sound timer and loop
	emu := newTestEmulator(t, []byte{
		0x60, 0x3C,
		0xF0, 0x18, // ld ST, V0
		0x12, 0x04, // jp $204
	}, frontend)

	err := emu.Run(context.Background())
	assert.NoError(t, err)

	assert.True(t, len(frontend.soundStates) > 0)
	assert.True(t, frontend.soundStates[len(frontend.soundStates)-1])
}
