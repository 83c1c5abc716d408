// Package chip8 implements the CHIP-8 virtual machine core.
package chip8

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter reserved area, holds the built-in font
//	0x200-0xFFF: User program space (3584 bytes)
const (
	// MemorySize is the total amount of addressable memory.
	MemorySize = 4096

	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	ProgramStart = 0x200

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	MaxAddress = 0xFFF

	// MaxROMSize is the largest program image that fits into the
	// user program space.
	MaxROMSize = MaxAddress - ProgramStart + 1

	// fontBase is the address the built-in font is loaded to. It lies
	// inside the interpreter reserved area below ProgramStart.
	fontBase = 0x50

	// fontGlyphSize is the height in bytes of one font glyph.
	fontGlyphSize = 5
)

// font contains the built-in glyphs for the hexadecimal digits 0-F,
// 5 bytes per glyph, one bit per pixel.
var font = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory holds the 4KB main memory of the machine. The font is loaded
// into the reserved area at construction, programs are loaded at
// ProgramStart. All accesses wrap modulo MemorySize, programs of the era
// rely on silent address wrapping.
type Memory struct {
	data [MemorySize]byte
}

// NewMemory returns memory initialized with the built-in font.
func NewMemory() *Memory {
	m := &Memory{}
	copy(m.data[fontBase:], font[:])
	return m
}

// Read returns the byte at the given address, wrapping modulo MemorySize.
func (m *Memory) Read(address uint16) byte {
	return m.data[address%MemorySize]
}

// Write sets the byte at the given address, wrapping modulo MemorySize.
func (m *Memory) Write(address uint16, value byte) {
	m.data[address%MemorySize] = value
}

// LoadROM copies a program image into memory starting at ProgramStart.
// Returns ErrROMTooLarge if the image does not fit into the user program
// space, leaving memory unchanged.
func (m *Memory) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return ErrROMTooLarge
	}
	copy(m.data[ProgramStart:], rom)
	return nil
}

// FontAddress returns the address of the font glyph for the given
// hexadecimal digit. Only the low nibble of digit is used, so the result
// always points inside the font region.
func (m *Memory) FontAddress(digit byte) uint16 {
	return fontBase + uint16(digit&0x0F)*fontGlyphSize
}

// Reset zeroes the user program space and restores the font region.
func (m *Memory) Reset() {
	m.data = [MemorySize]byte{}
	copy(m.data[fontBase:], font[:])
}
