// Package main implements the main entry point for a CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/chip8go/internal/chip8"
	"github.com/retroenv/chip8go/internal/cli"
	"github.com/retroenv/chip8go/internal/config"
	"github.com/retroenv/chip8go/internal/emulator"
	"github.com/retroenv/chip8go/internal/gui"
	"github.com/retroenv/chip8go/internal/loader"
	"github.com/retroenv/chip8go/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(opts)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	printBanner(opts)

	if err := run(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Fatal("Emulation failed", log.Err(err))
	}
}

func printBanner(opts options.Program) {
	if opts.Quiet {
		return
	}
	fmt.Println("[---------------------------]")
	fmt.Println("[ chip8go - CHIP-8 emulator ]")
	fmt.Printf("[---------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	rom, err := loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	sys := chip8.New(chip8.Quirks{
		ShiftVY:             opts.ShiftVY,
		LoadStoreIncrementI: opts.IncrementI,
	})
	if err := sys.Load(rom); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	logger.Info("Running ROM",
		log.String("file", opts.Input),
		log.Int("bytes", len(rom)),
		log.Int("speed", opts.Speed),
	)

	frontend, err := createFrontend(opts)
	if err != nil {
		return fmt.Errorf("creating frontend: %w", err)
	}
	defer func() {
		_ = frontend.Close()
	}()

	emu := emulator.New(logger, sys, frontend, opts)
	return emu.Run(ctx)
}

func createFrontend(opts options.Program) (emulator.Frontend, error) {
	if opts.Terminal {
		return gui.NewTerminal(), nil
	}
	return gui.NewSDL(opts.Scale)
}
