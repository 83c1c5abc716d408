package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDrawSpriteCollision(t *testing.T) {
	d := NewDisplay()
	sprite := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0} // glyph 0

	collision := d.DrawSprite(4, 2, sprite)
	assert.False(t, collision)
	assert.True(t, d.Pixel(4, 2))

	// drawing the same sprite again XORs every pixel back off
	collision = d.DrawSprite(4, 2, sprite)
	assert.True(t, collision)

	for y := 0; y < DisplayHeight; y++ {
		for x := 0; x < DisplayWidth; x++ {
			assert.False(t, d.Pixel(x, y))
		}
	}
}

func TestDrawSpriteWraps(t *testing.T) {
	d := NewDisplay()

	collision := d.DrawSprite(63, 31, []byte{0xC0, 0x80})
	assert.False(t, collision)

	assert.True(t, d.Pixel(63, 31)) // row 0, bit 0
	assert.True(t, d.Pixel(0, 31))  // row 0, bit 1 wraps to column 0
	assert.True(t, d.Pixel(63, 0))  // row 1 wraps to the top
	assert.False(t, d.Pixel(0, 0))
}

func TestDisplayClear(t *testing.T) {
	d := NewDisplay()
	d.DrawSprite(0, 0, []byte{0xFF})
	d.ClearDirty()

	d.Clear()

	assert.True(t, d.Dirty())
	for x := 0; x < 8; x++ {
		assert.False(t, d.Pixel(x, 0))
	}
}

func TestDisplayDirty(t *testing.T) {
	d := NewDisplay()
	assert.True(t, d.Dirty())

	d.ClearDirty()
	assert.False(t, d.Dirty())

	d.DrawSprite(0, 0, []byte{0x80})
	assert.True(t, d.Dirty())
}

func TestDisplayFramebuffer(t *testing.T) {
	d := NewDisplay()
	d.DrawSprite(1, 0, []byte{0x80})

	buf := d.Framebuffer()
	assert.Len(t, buf, DisplayWidth*DisplayHeight)
	assert.Equal(t, uint32(pixelOff), buf[0])
	assert.Equal(t, uint32(pixelOn), buf[1])
}
