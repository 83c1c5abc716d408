package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/chip8go/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	rom := []byte{0x12, 0x34, 0x56, 0x78}
	file := createTempFile(t, rom)

	got, err := Load(file)
	assert.NoError(t, err)
	assert.Equal(t, rom, got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.ch8"))
	assert.Error(t, err)
}

func TestLoadEmptyFile(t *testing.T) {
	file := createTempFile(t, nil)

	_, err := Load(file)
	assert.Error(t, err)
}

func TestLoadTooLarge(t *testing.T) {
	file := createTempFile(t, make([]byte, chip8.MaxROMSize+1))

	_, err := Load(file)
	assert.True(t, errors.Is(err, chip8.ErrROMTooLarge))
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()

	name := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(name, data, 0o600))
	return name
}
