package avr

import (
	"github.com/DerLukas15/ws2812bang"
	"github.com/pkg/errors"
)

const (
	//storeCycles is the cost of the st which ends a high phase.
	storeCycles = 2
	//loopCycles is one dec plus a taken brne of the delay loop.
	loopCycles = 3
	//maxHighCycles is the longest nop run between the two stores of a pulse.
	maxHighCycles = 20
)

//Timing is the WS2812 timing for this platform. The high phases are nop runs
//followed by a store, so Overhead is the cycle count of that store.
var Timing = func() ws2812bang.Timing {
	t := ws2812bang.DefaultTiming
	t.Overhead = storeCycles
	return t
}()

//checkCycles reports whether c can be produced by the pulse table.
func checkCycles(c ws2812bang.Cycles) error {
	if c.T0H > maxHighCycles || c.T1H > maxHighCycles {
		return errors.Errorf("avr: high phase of %s exceeds %d cycles", c, maxHighCycles)
	}
	if c.T0H >= c.T1H {
		return errors.Errorf("avr: 0 and 1 bits have the same high phase in %s", c)
	}
	return nil
}

//lowLoops returns the delay loop iterations for a low phase of cycles.
func lowLoops(cycles uint32) uint32 {
	return cycles / loopCycles
}
