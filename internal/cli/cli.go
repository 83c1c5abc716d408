// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/chip8go/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := options.New()
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	if err := validateOptions(opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8go [options] <ROM file to run>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions checks option values for usable ranges
func validateOptions(opts options.Program) error {
	if opts.Scale < 1 {
		return fmt.Errorf("invalid scale factor %d, must be at least 1", opts.Scale)
	}
	if opts.Speed < 1 {
		return fmt.Errorf("invalid speed %d, must be at least 1 cycle per second", opts.Speed)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "window scale factor of the SDL frontend")
	flags.IntVar(&opts.Speed, "speed", options.DefaultSpeed, "instruction execution rate in cycles per second")
	flags.BoolVar(&opts.Terminal, "terminal", false, "render to the terminal instead of an SDL window")
	flags.BoolVar(&opts.ShiftVY, "shift-vy", false, "shift opcodes operate on Vy instead of Vx (COSMAC VIP behavior)")
	flags.BoolVar(&opts.IncrementI, "increment-i", false, "register load/store opcodes advance the index register (COSMAC VIP behavior)")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction as assembly")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
