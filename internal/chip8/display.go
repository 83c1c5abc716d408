package chip8

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Framebuffer pixel values for renderers, packed XRGB. The X byte is
// ignored when rendering.
const (
	pixelOn  = 0x00FFFFFF
	pixelOff = 0x00000000
)

// Display is the monochrome 64x32 framebuffer. Pixels are only ever
// mutated by XOR composition through DrawSprite or cleared as a whole.
// The dirty flag tells renderers whether the buffer changed since the
// last ClearDirty call.
type Display struct {
	pixels [DisplayWidth * DisplayHeight]byte
	dirty  bool
}

// NewDisplay returns a cleared display. It starts out dirty so a renderer
// draws the initial blank frame.
func NewDisplay() *Display {
	return &Display{
		dirty: true,
	}
}

// Clear sets all pixels to off.
func (d *Display) Clear() {
	d.pixels = [DisplayWidth * DisplayHeight]byte{}
	d.dirty = true
}

// Pixel returns whether the pixel at x, y is set. Coordinates wrap
// toroidally.
func (d *Display) Pixel(x, y int) bool {
	x %= DisplayWidth
	y %= DisplayHeight
	return d.pixels[y*DisplayWidth+x] == 1
}

// Dirty returns whether the framebuffer changed since the last
// ClearDirty call.
func (d *Display) Dirty() bool {
	return d.dirty
}

// ClearDirty marks the framebuffer as drawn, typically called by the
// renderer after presenting a frame.
func (d *Display) ClearDirty() {
	d.dirty = false
}

// DrawSprite XOR-composites a sprite onto the framebuffer at x, y.
// Each sprite byte is one row of 8 pixels, the high bit leftmost.
// Coordinates wrap toroidally. Returns true if any pixel transitioned
// from set to unset, the collision result stored in VF by the draw
// opcode.
func (d *Display) DrawSprite(x, y byte, sprite []byte) bool {
	d.dirty = true
	collision := false

	for row, line := range sprite {
		py := (int(y) + row) % DisplayHeight

		for bit := 0; bit < 8; bit++ {
			if line&(0x80>>bit) == 0 {
				continue
			}
			px := (int(x) + bit) % DisplayWidth
			index := py*DisplayWidth + px

			if d.pixels[index] == 1 {
				collision = true
			}
			d.pixels[index] ^= 1
		}
	}
	return collision
}

// Framebuffer returns the display as packed XRGB pixel values in row
// major layout, for renderers that upload the frame as a texture.
func (d *Display) Framebuffer() []uint32 {
	buf := make([]uint32, len(d.pixels))
	for i, p := range d.pixels {
		if p == 1 {
			buf[i] = pixelOn
		} else {
			buf[i] = pixelOff
		}
	}
	return buf
}
