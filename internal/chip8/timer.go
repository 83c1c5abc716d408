package chip8

import "sync/atomic"

// Timer is an 8-bit down-counter used for the delay and sound timers.
// The host ticks it at 60 Hz while the CPU reads and writes it on its own
// cadence, so the value is kept behind an atomic. The counter never goes
// below zero, ticks at zero are no-ops.
type Timer struct {
	value atomic.Uint32
}

// Value returns the current counter value.
func (t *Timer) Value() uint8 {
	return uint8(t.value.Load())
}

// Set sets the counter value.
func (t *Timer) Set(value uint8) {
	t.value.Store(uint32(value))
}

// Tick decrements the counter by one if it is running. Called by the
// host at a steady 60 Hz.
func (t *Timer) Tick() {
	for {
		v := t.value.Load()
		if v == 0 {
			return
		}
		if t.value.CompareAndSwap(v, v-1) {
			return
		}
	}
}

// Active returns whether the counter is running.
func (t *Timer) Active() bool {
	return t.value.Load() > 0
}
