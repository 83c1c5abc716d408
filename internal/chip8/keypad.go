package chip8

import "sync"

// KeyCount is the number of keys on the CHIP-8 hex keypad.
const KeyCount = 16

// noKey marks the press latch as empty.
const noKey = -1

// Keypad holds the state of the 16-key hex keypad. The input collaborator
// is the sole writer through SetKey, the CPU only reads. In addition to
// the per-key state it latches the most recent unpressed to pressed
// transition, which the key-wait opcode consumes.
type Keypad struct {
	mu        sync.Mutex
	keys      [KeyCount]bool
	lastPress int
}

// NewKeypad returns a keypad with all keys released.
func NewKeypad() *Keypad {
	return &Keypad{
		lastPress: noKey,
	}
}

// SetKey records the state of a key. Indexes outside 0-15 are ignored.
// A transition from unpressed to pressed is latched for the key-wait
// opcode.
func (k *Keypad) SetKey(index byte, pressed bool) {
	if index >= KeyCount {
		return
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if pressed && !k.keys[index] {
		k.lastPress = int(index)
	}
	k.keys[index] = pressed
}

// KeyDown returns whether the given key is currently pressed.
func (k *Keypad) KeyDown(index byte) bool {
	if index >= KeyCount {
		return false
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	return k.keys[index]
}

// consumePress returns the latched key-down transition and clears the
// latch. ok is false if no key was pressed since the last consume.
func (k *Keypad) consumePress() (key byte, ok bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.lastPress == noKey {
		return 0, false
	}
	key = byte(k.lastPress)
	k.lastPress = noKey
	return key, true
}

// discardPress clears the latch so a wait only observes key-down
// transitions that happen after the wait started.
func (k *Keypad) discardPress() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.lastPress = noKey
}

// Reset releases all keys and clears the press latch.
func (k *Keypad) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.keys = [KeyCount]bool{}
	k.lastPress = noKey
}
