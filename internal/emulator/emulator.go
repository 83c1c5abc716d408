// Package emulator drives the host loop of the virtual machine.
package emulator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/chip8go/internal/chip8"
	"github.com/retroenv/chip8go/internal/disasm"
	"github.com/retroenv/chip8go/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Host loop cadences in Hz. The timer rate is fixed by the machine
// specification, the instruction rate is configurable and decoupled from
// both.
const (
	timerRate   = 60
	refreshRate = 60
)

// Frontend is the collaborator handling rendering, input and audio.
// The emulator core never blocks on any of these operations, frame
// pacing is handled by the host loop.
type Frontend interface {
	// Poll pumps pending input events into the system's keypad.
	// Returns true when the user requested to quit.
	Poll(sys *chip8.System) (quit bool)

	// Render presents the framebuffer.
	Render(display *chip8.Display) error

	// SetSound starts or stops the tone while the sound timer runs.
	SetSound(active bool)

	// Close releases the frontend resources.
	Close() error
}

// Emulator runs a loaded system against a frontend.
type Emulator struct {
	logger   *log.Logger
	sys      *chip8.System
	frontend Frontend
	opts     options.Program
}

// New creates a new emulator.
func New(logger *log.Logger, sys *chip8.System, frontend Frontend, opts options.Program) *Emulator {
	return &Emulator{
		logger:   logger,
		sys:      sys,
		frontend: frontend,
		opts:     opts,
	}
}

// Run executes the host loop until the context is cancelled, the user
// quits or a fatal interpreter error occurs. Timers tick at a steady
// 60 Hz independent of the instruction rate, instructions execute in
// per-frame batches derived from the configured speed. On a fatal error
// the loop stops with display and audio state left intact for
// inspection.
func (e *Emulator) Run(ctx context.Context) error {
	timerTicker := time.NewTicker(time.Second / timerRate)
	defer timerTicker.Stop()
	frameTicker := time.NewTicker(time.Second / refreshRate)
	defer frameTicker.Stop()

	steps := e.opts.Speed / refreshRate
	if steps < 1 {
		steps = 1
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-timerTicker.C:
			e.sys.TickTimers()

		case <-frameTicker.C:
			if quit := e.frontend.Poll(e.sys); quit {
				return nil
			}
			if err := e.runCycles(steps); err != nil {
				return err
			}
			if err := e.renderFrame(); err != nil {
				return err
			}
		}
	}
}

// runCycles executes one frame's batch of instructions. While the CPU
// waits for a key the remaining cycles of the batch are spent on the
// wait state, which keeps the timer and render cadences unaffected.
func (e *Emulator) runCycles(steps int) error {
	for i := 0; i < steps; i++ {
		if e.opts.Trace && !e.sys.CPU().Waiting() {
			address, opcode := e.sys.PeekOpcode()
			e.logger.Info(disasm.Disassemble(opcode),
				log.Hex("address", address),
				log.Hex("opcode", opcode),
			)
		}

		if err := e.sys.Step(); err != nil {
			var illegal chip8.IllegalInstructionError
			if errors.As(err, &illegal) {
				e.logger.Error("Execution halted",
					log.Hex("address", illegal.Address),
					log.Hex("opcode", illegal.Opcode),
					log.Err(err),
				)
			} else {
				e.logger.Error("Execution halted", log.Err(err))
			}
			return fmt.Errorf("executing instruction: %w", err)
		}
	}
	return nil
}

// renderFrame presents the framebuffer if it changed and updates the
// tone state from the sound timer.
func (e *Emulator) renderFrame() error {
	display := e.sys.Display()
	if display.Dirty() {
		if err := e.frontend.Render(display); err != nil {
			return fmt.Errorf("rendering frame: %w", err)
		}
		display.ClearDirty()
	}

	e.frontend.SetSound(e.sys.SoundTimer() > 0)
	return nil
}
