package avr

import (
	"testing"

	"github.com/DerLukas15/ws2812bang"
	"github.com/stretchr/testify/assert"
	"periph.io/x/conn/v3/physic"
)

func TestTimingCycles(t *testing.T) {
	c := Timing.Cycles(16 * physic.MegaHertz)
	assert.Equal(t, ws2812bang.Cycles{T0H: 4, T0L: 12, T1H: 12, T1L: 8}, c)
	assert.NoError(t, checkCycles(c))
	assert.NoError(t, checkCycles(Timing.Cycles(8*physic.MegaHertz)))
	assert.NoError(t, checkCycles(Timing.Cycles(20*physic.MegaHertz)))
}

func TestCheckCyclesRejects(t *testing.T) {
	assert.Error(t, checkCycles(Timing.Cycles(32*physic.MegaHertz)), "T1H does not fit the pulse table")
	assert.Error(t, checkCycles(ws2812bang.Cycles{T0H: 3, T1H: 3}))
}

func TestLowLoops(t *testing.T) {
	assert.Equal(t, uint32(4), lowLoops(12))
	assert.Equal(t, uint32(2), lowLoops(8))
	assert.Equal(t, uint32(0), lowLoops(2))
}
