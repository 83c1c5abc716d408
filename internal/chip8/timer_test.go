package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestTimerCountsDownToZero(t *testing.T) {
	var timer Timer
	timer.Set(60)
	assert.True(t, timer.Active())

	for i := 0; i < 60; i++ {
		timer.Tick()
	}

	assert.Equal(t, 0, timer.Value())
	assert.False(t, timer.Active())

	// ticks at zero stay at zero
	timer.Tick()
	assert.Equal(t, 0, timer.Value())
}

func TestTimerSet(t *testing.T) {
	var timer Timer
	assert.False(t, timer.Active())

	timer.Set(2)
	assert.Equal(t, 2, timer.Value())

	timer.Tick()
	assert.Equal(t, 1, timer.Value())
	assert.True(t, timer.Active())

	timer.Tick()
	assert.False(t, timer.Active())
}
