package gui

import (
	"fmt"
	"strings"

	tm "github.com/buger/goterm"
	"github.com/retroenv/chip8go/internal/chip8"
)

// character cells per pixel, two columns approximate a square pixel
const (
	cellOn  = "██"
	cellOff = "  "
)

// Terminal renders the framebuffer as character cells in the terminal.
// It is display and sound only: reading individual key transitions would
// require putting the terminal into raw mode, so keypad-driven ROMs need
// the SDL frontend.
type Terminal struct {
	soundActive bool
}

// NewTerminal creates a terminal frontend.
func NewTerminal() *Terminal {
	tm.Clear()
	return &Terminal{}
}

// Poll is a no-op, the terminal frontend has no input events.
func (t *Terminal) Poll(_ *chip8.System) bool {
	return false
}

// Render redraws the framebuffer in the terminal.
func (t *Terminal) Render(display *chip8.Display) error {
	tm.MoveCursor(1, 1)

	var sb strings.Builder
	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			if display.Pixel(x, y) {
				sb.WriteString(cellOn)
			} else {
				sb.WriteString(cellOff)
			}
		}
		sb.WriteByte('\n')
	}

	tm.Print(sb.String())
	tm.Flush()
	return nil
}

// SetSound rings the terminal bell when a tone starts.
func (t *Terminal) SetSound(active bool) {
	if active && !t.soundActive {
		fmt.Print("\a")
	}
	t.soundActive = active
}

// Close moves the cursor below the framebuffer output.
func (t *Terminal) Close() error {
	tm.MoveCursor(1, chip8.DisplayHeight+1)
	tm.Flush()
	return nil
}
