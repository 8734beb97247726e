//go:build avr

package avr

import (
	"device"
	"runtime/interrupt"
	"runtime/volatile"
	"time"

	"github.com/DerLukas15/ws2812bang"
	"github.com/pkg/errors"
)

type register struct {
	port *volatile.Register8
	ddr  *volatile.Register8
}

func (r register) Set(mask uint32) {
	r.port.SetBits(uint8(mask))
}

func (r register) Clear(mask uint32) {
	r.port.ClearBits(uint8(mask))
}

//Bits returns a BitWriter emitting the high phases as straight nop runs between two stores.
func (r register) Bits(mask uint32, c ws2812bang.Cycles) (ws2812bang.BitWriter, error) {
	if err := checkCycles(c); err != nil {
		return nil, err
	}
	return &bitWriter{
		port:  r.port,
		mask:  uint8(mask),
		high0: pulses[c.T0H],
		high1: pulses[c.T1H],
		low0:  lowLoops(c.T0L),
		low1:  lowLoops(c.T1L),
	}, nil
}

type bitWriter struct {
	port         *volatile.Register8
	mask         uint8
	high0, high1 pulseFunc
	low0, low1   uint32
}

func (w *bitWriter) WriteBit(one bool) {
	v := w.port.Get()
	if one {
		w.high1(w.port, v|w.mask, v&^w.mask)
		delayLoops(w.low1)
		return
	}
	w.high0(w.port, v|w.mask, v&^w.mask)
	delayLoops(w.low0)
}

//Platform drives the port registers of the chip the program is built for.
type Platform struct {
	start time.Time
}

//New returns the Platform of the running chip.
func New() *Platform {
	return &Platform{start: time.Now()}
}

//Board returns the pin table of the chip.
func (p *Platform) Board() *ws2812bang.Board {
	return board
}

//Port returns the PORTx register of group.
func (p *Platform) Port(group ws2812bang.PortGroup) (ws2812bang.Port, error) {
	reg, ok := registers[group]
	if !ok {
		return nil, errors.Wrapf(ws2812bang.ErrPortNotAvailable, "avr Port %s", group)
	}
	return reg, nil
}

//ConfigureOutput sets the DDRx bit of pin.
func (p *Platform) ConfigureOutput(pin uint8) error {
	pp, ok := board.Resolve(pin)
	if !ok {
		return errors.Errorf("avr: no pin %d", pin)
	}
	reg, ok := registers[pp.Group]
	if !ok {
		return errors.Wrapf(ws2812bang.ErrPortNotAvailable, "avr ConfigureOutput %s", pp.Group)
	}
	reg.ddr.SetBits(uint8(pp.Mask()))
	return nil
}

//DelayCycles busy-waits in steps of loopCycles.
func (p *Platform) DelayCycles(cycles uint32) {
	delayLoops(cycles / loopCycles)
}

func delayLoops(n uint32) {
	for n > 0 {
		step := uint8(255)
		if n < 255 {
			step = uint8(n)
		}
		device.AsmFull(`
		1:
			dec {step}
			brne 1b
		`, map[string]interface{}{"step": step})
		n -= uint32(step)
	}
}

//DisableInterrupts disables all maskable interrupts.
func (p *Platform) DisableInterrupts() ws2812bang.InterruptState {
	return ws2812bang.InterruptState(interrupt.Disable())
}

//RestoreInterrupts restores the interrupt flag saved by DisableInterrupts.
func (p *Platform) RestoreInterrupts(state ws2812bang.InterruptState) {
	interrupt.Restore(interrupt.State(state))
}

//Micros returns the time since New.
func (p *Platform) Micros() uint64 {
	return uint64(time.Since(p.start) / time.Microsecond)
}

var (
	_ ws2812bang.Platform = (*Platform)(nil)
	_ ws2812bang.BitPort  = register{}
)
