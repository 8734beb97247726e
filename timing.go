package ws2812bang

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3/physic"
)

//Timing holds the pulse widths of the WS2812 protocol.
type Timing struct {
	T0H time.Duration // high time of a 0 bit
	T0L time.Duration // low time of a 0 bit
	T1H time.Duration // high time of a 1 bit
	T1L time.Duration // low time of a 1 bit

	// Minimum time the line has to stay low between two frames.
	Reset time.Duration

	// Cycles spent by setting or clearing the pin, subtracted from every delay.
	Overhead uint32
}

//DefaultTiming works for WS2812 and WS2812B strips at 800 kHz.
var DefaultTiming = Timing{
	T0H:      400 * time.Nanosecond,
	T0L:      900 * time.Nanosecond,
	T1H:      900 * time.Nanosecond,
	T1L:      600 * time.Nanosecond,
	Reset:    50 * time.Microsecond,
	Overhead: 2,
}

//Cycles is a Timing converted to busy-wait cycles for one clock frequency.
type Cycles struct {
	T0H uint32
	T0L uint32
	T1H uint32
	T1L uint32
}

//Cycles converts the pulse widths for a CPU running at clock.
//Each value is round(ns * clockHz / 1e9) - Overhead, never below zero.
func (t Timing) Cycles(clock physic.Frequency) Cycles {
	hz := int64(clock / physic.Hertz)
	return Cycles{
		T0H: toCycles(t.T0H, hz, t.Overhead),
		T0L: toCycles(t.T0L, hz, t.Overhead),
		T1H: toCycles(t.T1H, hz, t.Overhead),
		T1L: toCycles(t.T1L, hz, t.Overhead),
	}
}

//Period returns the nominal duration of one bit.
func (t Timing) Period() time.Duration {
	return (t.T0H + t.T0L + t.T1H + t.T1L) / 2
}

//Validate checks that the timing can encode distinguishable bits.
func (t Timing) Validate() error {
	if t.T0H <= 0 || t.T0L <= 0 || t.T1H <= 0 || t.T1L <= 0 {
		return errors.Errorf("pulse widths must be positive: %s", t)
	}
	if t.T0H >= t.T1H {
		return errors.Errorf("T0H %s must be shorter than T1H %s", t.T0H, t.T1H)
	}
	if t.Reset < 0 {
		return errors.Errorf("reset interval must not be negative: %s", t.Reset)
	}
	return nil
}

func (t Timing) String() string {
	return fmt.Sprintf("T0H=%s T0L=%s T1H=%s T1L=%s reset=%s overhead=%d", t.T0H, t.T0L, t.T1H, t.T1L, t.Reset, t.Overhead)
}

func (c Cycles) String() string {
	return fmt.Sprintf("T0H=%d T0L=%d T1H=%d T1L=%d", c.T0H, c.T0L, c.T1H, c.T1L)
}

func toCycles(d time.Duration, hz int64, overhead uint32) uint32 {
	cycles := (d.Nanoseconds()*hz + nanosPerSecond/2) / nanosPerSecond
	cycles -= int64(overhead)
	if cycles < 0 {
		return 0
	}
	return uint32(cycles)
}
