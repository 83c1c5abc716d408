// Package options contains the program options.
package options

// Default host loop rates.
const (
	// DefaultSpeed is the default instruction execution rate in cycles
	// per second.
	DefaultSpeed = 1000

	// DefaultScale is the default window scale factor of the SDL
	// frontend.
	DefaultScale = 12
)

// Program options of the emulator.
type Program struct {
	Input string // ROM file to run

	Scale    int  // window scale factor
	Speed    int  // instruction rate in cycles per second
	Terminal bool // render to the terminal instead of an SDL window

	ShiftVY    bool // 8xy6/8xyE shift Vy instead of Vx (COSMAC VIP behavior)
	IncrementI bool // Fx55/Fx65 advance I past the copied range

	Trace bool // log every executed instruction as assembly
	Debug bool // enable debug logging
	Quiet bool // only log errors
}

// New returns options with default values.
func New() Program {
	return Program{
		Scale: DefaultScale,
		Speed: DefaultSpeed,
	}
}
