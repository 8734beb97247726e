package ws2812bang

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"periph.io/x/conn/v3/physic"
)

var cyclesForClock = []struct {
	Clock  physic.Frequency
	Expect Cycles
}{
	{16 * physic.MegaHertz, Cycles{T0H: 4, T0L: 12, T1H: 12, T1L: 8}},
	{8 * physic.MegaHertz, Cycles{T0H: 1, T0L: 5, T1H: 5, T1L: 3}},
	{1 * physic.GigaHertz, Cycles{T0H: 398, T0L: 898, T1H: 898, T1L: 598}},
	{1 * physic.MegaHertz, Cycles{T0H: 0, T0L: 0, T1H: 0, T1L: 0}},
}

func TestTimingCycles(t *testing.T) {
	for _, entry := range cyclesForClock {
		assert.Equal(t, entry.Expect, DefaultTiming.Cycles(entry.Clock), entry.Clock.String())
	}
}

func TestTimingCyclesRounding(t *testing.T) {
	tm := Timing{T0H: 350 * time.Nanosecond, T0L: 1 * time.Nanosecond, T1H: 1 * time.Microsecond, T1L: 1, Overhead: 0}
	c := tm.Cycles(16 * physic.MegaHertz)
	// 5.6 rounds up, 0.016 rounds down
	assert.Equal(t, uint32(6), c.T0H)
	assert.Equal(t, uint32(0), c.T0L)
	assert.Equal(t, uint32(16), c.T1H)
	assert.Equal(t, uint32(0), c.T1L)
}

func TestTimingValidate(t *testing.T) {
	assert.NoError(t, DefaultTiming.Validate())

	broken := DefaultTiming
	broken.T0H = 0
	assert.Error(t, broken.Validate())

	broken = DefaultTiming
	broken.T0H = broken.T1H
	assert.Error(t, broken.Validate())

	broken = DefaultTiming
	broken.Reset = -time.Microsecond
	assert.Error(t, broken.Validate())
}

func TestTimingPeriod(t *testing.T) {
	assert.Equal(t, 1400*time.Nanosecond, DefaultTiming.Period())
}
