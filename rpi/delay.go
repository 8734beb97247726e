package rpi

import (
	"time"

	"periph.io/x/conn/v3/physic"
)

const calibrationLoops = 1 << 22

var sink uint32

//spin burns loops iterations.
//go:noinline
func spin(loops uint64) {
	for i := uint64(0); i < loops; i++ {
		sink++
	}
}

//spinner converts cycles of the virtual clock into spin iterations.
type spinner struct {
	clockHz        uint64
	loopsPerSecond uint64
}

func newSpinner(clock physic.Frequency, loopsPerSecond uint64) *spinner {
	return &spinner{clockHz: uint64(clock / physic.Hertz), loopsPerSecond: loopsPerSecond}
}

//calibrate measures how many spin iterations the CPU runs per second.
func calibrate() uint64 {
	// warm up caches and frequency governor
	spin(calibrationLoops / 4)
	start := time.Now()
	spin(calibrationLoops)
	elapsed := time.Since(start)
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}
	return uint64(calibrationLoops) * uint64(time.Second) / uint64(elapsed)
}

//loops returns the spin iterations matching cycles, rounded to the nearest iteration.
func (s *spinner) loops(cycles uint32) uint64 {
	if s.clockHz == 0 {
		return 0
	}
	return (uint64(cycles)*s.loopsPerSecond + s.clockHz/2) / s.clockHz
}

func (s *spinner) delay(cycles uint32) {
	spin(s.loops(cycles))
}
