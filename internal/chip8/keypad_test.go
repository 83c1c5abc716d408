package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeypadSetKey(t *testing.T) {
	k := NewKeypad()
	assert.False(t, k.KeyDown(5))

	k.SetKey(5, true)
	assert.True(t, k.KeyDown(5))

	k.SetKey(5, false)
	assert.False(t, k.KeyDown(5))
}

func TestKeypadIgnoresInvalidIndex(t *testing.T) {
	k := NewKeypad()

	k.SetKey(KeyCount, true)
	assert.False(t, k.KeyDown(KeyCount))

	_, ok := k.consumePress()
	assert.False(t, ok)
}

func TestKeypadPressLatch(t *testing.T) {
	k := NewKeypad()

	k.SetKey(7, true)

	key, ok := k.consumePress()
	assert.True(t, ok)
	assert.Equal(t, 7, key)

	// the latch is consumed
	_, ok = k.consumePress()
	assert.False(t, ok)

	// holding a key is not a new transition
	k.SetKey(7, true)
	_, ok = k.consumePress()
	assert.False(t, ok)

	// release and press counts again
	k.SetKey(7, false)
	k.SetKey(7, true)
	key, ok = k.consumePress()
	assert.True(t, ok)
	assert.Equal(t, 7, key)
}

func TestKeypadDiscardPress(t *testing.T) {
	k := NewKeypad()
	k.SetKey(3, true)

	k.discardPress()

	_, ok := k.consumePress()
	assert.False(t, ok)
	// key state itself is unaffected
	assert.True(t, k.KeyDown(3))
}

func TestKeypadReset(t *testing.T) {
	k := NewKeypad()
	k.SetKey(0xF, true)

	k.Reset()

	assert.False(t, k.KeyDown(0xF))
	_, ok := k.consumePress()
	assert.False(t, ok)
}
