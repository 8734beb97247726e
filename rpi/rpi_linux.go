//go:build linux

package rpi

import (
	"os"
	"time"

	"github.com/DerLukas15/rpigpio"
	"github.com/DerLukas15/rpihardware"
	"github.com/DerLukas15/rpimemmap"
	"github.com/DerLukas15/ws2812bang"
	"github.com/pkg/errors"
)

//Platform drives GPIO bank 0 and 1 of a Raspberry Pi through /dev/mem.
/*
Delays are busy loops calibrated at New. User space cannot mask interrupts, so
DisableInterrupts only marks the critical section and the kernel may still
preempt a 0 bit. Run the process with a real-time priority on an isolated core
for stable output.
*/
type Platform struct {
	board       *ws2812bang.Board
	hardware    *rpihardware.Hardware
	hardwareErr error
	gpioMem     rpimemmap.MemMap
	timerMem    rpimemmap.MemMap
	pins        map[uint8]*rpigpio.Pin
	spin        *spinner
	start       time.Time
	critical    bool
}

//New returns a Platform. On hardware which is not a Raspberry Pi the Platform
//reports no board and every Attach fails as unsupported.
func New(opts *Opts) (*Platform, error) {
	clock := DefaultClock
	if opts != nil && opts.Clock != 0 {
		clock = opts.Clock
	}
	p := &Platform{
		pins:  make(map[uint8]*rpigpio.Pin),
		start: time.Now(),
	}
	p.hardware, p.hardwareErr = rpihardware.Check()
	if p.hardwareErr != nil {
		return p, nil
	}
	err := rpigpio.Initialize()
	if err != nil {
		return nil, errors.Wrap(err, "rpi New")
	}
	p.gpioMem, err = mapPeripheral(registerGPIOBusOffset)
	if err != nil {
		return nil, errors.Wrap(err, "rpi New gpio")
	}
	p.timerMem, err = mapPeripheral(registerTimerBusOffset)
	if err != nil {
		p.Close()
		return nil, errors.Wrap(err, "rpi New timer")
	}
	p.spin = newSpinner(clock, calibrate())
	p.board = ws2812bang.NewRPiBoard(clock)
	return p, nil
}

//Map one page of a peripheral and get its virtual address
func mapPeripheral(busOffset uint32) (rpimemmap.MemMap, error) {
	mem := rpimemmap.NewPeripheral(uint32(os.Getpagesize()))
	err := mem.Map(busOffset, rpimemmap.MemDevDefault, 0)
	if err != nil {
		return nil, err
	}
	return mem, nil
}

//Hardware returns the description of the detected Raspberry Pi or the reason detection failed.
func (p *Platform) Hardware() (string, error) {
	if p.hardwareErr != nil {
		return "", p.hardwareErr
	}
	return p.hardware.Desc, nil
}

//Board returns the BCM283x layout or nil if this is no Raspberry Pi.
func (p *Platform) Board() *ws2812bang.Board {
	return p.board
}

type bankPort struct {
	mem  rpimemmap.MemMap
	regs bankRegisters
}

func (b bankPort) Set(mask uint32) {
	*rpimemmap.Reg32(b.mem, b.regs.set) = mask
}

func (b bankPort) Clear(mask uint32) {
	*rpimemmap.Reg32(b.mem, b.regs.clr) = mask
}

//Port returns the set/clear register pair of a GPIO bank.
func (p *Platform) Port(group ws2812bang.PortGroup) (ws2812bang.Port, error) {
	if p.gpioMem == nil {
		return nil, errors.Wrap(ws2812bang.ErrPortNotAvailable, "rpi Port: gpio not mapped")
	}
	regs, ok := banks[group]
	if !ok {
		return nil, errors.Wrapf(ws2812bang.ErrPortNotAvailable, "rpi Port %s", group)
	}
	return bankPort{mem: p.gpioMem, regs: regs}, nil
}

//ConfigureOutput switches pin to output mode.
func (p *Platform) ConfigureOutput(pin uint8) error {
	gpio, ok := p.pins[pin]
	if !ok {
		var err error
		gpio, err = rpigpio.NewPin(uint32(pin))
		if err != nil {
			return errors.Wrap(err, "rpi ConfigureOutput")
		}
		p.pins[pin] = gpio
	}
	gpio.Mode(rpigpio.ModeOut)
	gpio.Set(0)
	return nil
}

//DelayCycles busy-waits.
func (p *Platform) DelayCycles(cycles uint32) {
	p.spin.delay(cycles)
}

//DisableInterrupts marks the start of a critical section.
func (p *Platform) DisableInterrupts() ws2812bang.InterruptState {
	var state ws2812bang.InterruptState
	if p.critical {
		state = 1
	}
	p.critical = true
	return state
}

//RestoreInterrupts marks the end of a critical section.
func (p *Platform) RestoreInterrupts(state ws2812bang.InterruptState) {
	p.critical = state != 0
}

//Micros reads the 1 MHz system timer.
func (p *Platform) Micros() uint64 {
	if p.timerMem == nil {
		return uint64(time.Since(p.start) / time.Microsecond)
	}
	for {
		hi := *rpimemmap.Reg32(p.timerMem, registerOffsetTimerCHI)
		lo := *rpimemmap.Reg32(p.timerMem, registerOffsetTimerCLO)
		if *rpimemmap.Reg32(p.timerMem, registerOffsetTimerCHI) == hi {
			return uint64(hi)<<32 | uint64(lo)
		}
	}
}

//Close unmaps the peripherals. Pins keep their mode.
func (p *Platform) Close() error {
	if p.gpioMem != nil {
		if err := p.gpioMem.Unmap(); err != nil {
			return errors.Wrap(err, "rpi Close gpio")
		}
		p.gpioMem = nil
	}
	if p.timerMem != nil {
		if err := p.timerMem.Unmap(); err != nil {
			return errors.Wrap(err, "rpi Close timer")
		}
		p.timerMem = nil
	}
	p.board = nil
	return nil
}

func (p *Platform) String() string {
	if p.hardwareErr != nil {
		return "rpi(unknown hardware)"
	}
	return "rpi(" + p.board.String() + ")"
}

var _ ws2812bang.Platform = (*Platform)(nil)
