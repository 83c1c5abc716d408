// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"os"

	"github.com/retroenv/chip8go/internal/chip8"
)

// Load reads a CHIP-8 ROM image from disk. The on-disk format is raw
// big-endian instruction words with no header, so only the size can be
// validated here.
func Load(path string) ([]byte, error) {
	rom, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	if len(rom) == 0 {
		return nil, fmt.Errorf("file %s is empty", path)
	}
	if len(rom) > chip8.MaxROMSize {
		return nil, fmt.Errorf("file %s has %d bytes: %w", path, len(rom), chip8.ErrROMTooLarge)
	}

	return rom, nil
}
