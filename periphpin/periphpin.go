//Package periphpin is a ws2812bang.Platform driving one periph.io gpio.PinOut.
//
//The pin is exposed as bit 0 of port group Bank0. Every edge is a call to
//Out, so the achievable timing depends on the pin driver; memory mapped
//drivers (bcm283x, allwinner) are fast enough, sysfs is not.
package periphpin

import (
	"fmt"
	"time"

	"github.com/DerLukas15/ws2812bang"
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

//DefaultClock makes one delay cycle one nanosecond.
const DefaultClock = 1 * physic.GigaHertz

//Opts configures a Platform.
type Opts struct {
	Clock physic.Frequency // Default: DefaultClock
}

//Platform drives a single gpio.PinOut.
type Platform struct {
	pin     gpio.PinOut
	board   *ws2812bang.Board
	start   time.Time
	clockHz int64
	err     error
}

//New returns a Platform for pin. The board holds a single entry for pin.Number().
func New(pin gpio.PinOut, opts *Opts) (*Platform, error) {
	if pin == nil {
		return nil, errors.New("periphpin: nil pin")
	}
	clock := DefaultClock
	if opts != nil && opts.Clock != 0 {
		clock = opts.Clock
	}
	p := &Platform{pin: pin, start: time.Now(), clockHz: int64(clock / physic.Hertz)}
	if n := pin.Number(); n >= 0 && n <= 0xff {
		p.board = ws2812bang.NewBoard("periph:"+pin.Name(), clock, map[uint8]ws2812bang.PinPort{
			uint8(n): {Group: ws2812bang.Bank0, Bit: 0},
		})
	}
	return p, nil
}

//Board returns the single pin board or nil if the pin number does not fit.
func (p *Platform) Board() *ws2812bang.Board {
	return p.board
}

type pinPort struct {
	p *Platform
}

func (o pinPort) Set(mask uint32) {
	if mask&1 != 0 {
		o.p.out(gpio.High)
	}
}

func (o pinPort) Clear(mask uint32) {
	if mask&1 != 0 {
		o.p.out(gpio.Low)
	}
}

//out keeps the first error, the bit loop has no way to return it.
func (p *Platform) out(l gpio.Level) {
	if err := p.pin.Out(l); err != nil && p.err == nil {
		p.err = err
	}
}

//Port returns the pin as port group Bank0.
func (p *Platform) Port(group ws2812bang.PortGroup) (ws2812bang.Port, error) {
	if group != ws2812bang.Bank0 {
		return nil, errors.Wrapf(ws2812bang.ErrPortNotAvailable, "periphpin Port %s", group)
	}
	return pinPort{p: p}, nil
}

//ConfigureOutput drives the pin low.
func (p *Platform) ConfigureOutput(pin uint8) error {
	if _, ok := p.board.Resolve(pin); !ok {
		return errors.Errorf("periphpin: pin %d is not %s", pin, p.pin)
	}
	return errors.Wrap(p.pin.Out(gpio.Low), "periphpin ConfigureOutput")
}

//DelayCycles spins on the monotonic clock.
func (p *Platform) DelayCycles(cycles uint32) {
	if cycles == 0 || p.clockHz == 0 {
		return
	}
	d := time.Duration(int64(cycles) * int64(time.Second) / p.clockHz)
	for start := time.Now(); time.Since(start) < d; {
	}
}

//DisableInterrupts does nothing. User space cannot mask interrupts.
func (p *Platform) DisableInterrupts() ws2812bang.InterruptState {
	return 0
}

//RestoreInterrupts does nothing.
func (p *Platform) RestoreInterrupts(ws2812bang.InterruptState) {}

//Micros returns the time since New.
func (p *Platform) Micros() uint64 {
	return uint64(time.Since(p.start) / time.Microsecond)
}

//Err returns the first error returned by the pin while sending.
func (p *Platform) Err() error {
	return p.err
}

func (p *Platform) String() string {
	return fmt.Sprintf("periphpin(%s)", p.pin)
}

var _ ws2812bang.Platform = (*Platform)(nil)
