package ws2812bang

import (
	"fmt"
	"image/color"
	"time"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3/physic"
)

//DeviceInfo describes an attached device.
type DeviceInfo struct {
	Pin    uint8
	Pixels int
	Port   PinPort
	Board  string
}

//Reporter receives errors and lifecycle notifications of a Device.
type Reporter interface {
	Attached(info DeviceInfo)
	Detached(info DeviceInfo)
	Error(kind ErrorKind, msg string)
}

//Observer is notified about frames. It must not block.
type Observer interface {
	FrameShown(pin uint8, pixels int)
	ShowDropped(pin uint8)
	PatchApplied(pin uint8, entries int, rejected int)
}

type nopReporter struct{}

func (nopReporter) Attached(DeviceInfo)     {}
func (nopReporter) Detached(DeviceInfo)     {}
func (nopReporter) Error(ErrorKind, string) {}

type nopObserver struct{}

func (nopObserver) FrameShown(uint8, int)        {}
func (nopObserver) ShowDropped(uint8)            {}
func (nopObserver) PatchApplied(uint8, int, int) {}

//Option configures a Device in New.
type Option func(*Device)

//WithTiming replaces DefaultTiming.
func WithTiming(t Timing) Option {
	return func(d *Device) { d.timing = t }
}

//WithRefreshInterval sets the minimum time between two frames sent by Update.
func WithRefreshInterval(interval time.Duration) Option {
	return func(d *Device) { d.refreshInterval = interval }
}

//WithClock overrides the clock frequency of the board for the delay constants.
func WithClock(clock physic.Frequency) Option {
	return func(d *Device) { d.clock = clock }
}

//WithReporter sets where errors and lifecycle notifications go.
func WithReporter(r Reporter) Option {
	return func(d *Device) { d.reporter = r }
}

//WithObserver sets where frame notifications go.
func WithObserver(o Observer) Option {
	return func(d *Device) { d.observer = o }
}

//Device is one WS2812 strip on one pin.
/*
A Device is created unattached. Attach resolves the pin on the board of the
platform, allocates the pixel buffer and fixes the delay constants. Settings can
only be changed while the Device is not attached.

A Device is not safe for concurrent use. The goroutine calling Update is
expected to own it.
*/
type Device struct {
	platform Platform
	reporter Reporter
	observer Observer

	timing          Timing
	refreshInterval time.Duration
	clock           physic.Frequency // 0 uses the clock of the board

	attached bool
	pin      uint8
	pinPort  PinPort
	board    string
	cycles   Cycles
	strip    *LEDStrip
	engine   *engine

	// Timing for next frame
	shown    bool
	lastShow uint64 // µs, Platform.Micros after the last frame
	dirty    bool
}

//New returns an unattached Device driving pins of platform.
/*
Default Timing: DefaultTiming

Default RefreshInterval: DefaultRefreshInterval
*/
func New(platform Platform, opts ...Option) (*Device, error) {
	if platform == nil {
		return nil, errors.Wrap(ErrNoPlatform, "New")
	}
	d := &Device{
		platform:        platform,
		reporter:        nopReporter{},
		observer:        nopObserver{},
		timing:          DefaultTiming,
		refreshInterval: DefaultRefreshInterval,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.reporter == nil {
		d.reporter = nopReporter{}
	}
	if d.observer == nil {
		d.observer = nopObserver{}
	}
	if err := d.timing.Validate(); err != nil {
		return nil, errors.Wrap(err, "New")
	}
	if d.refreshInterval < 0 {
		return nil, errors.Errorf("New: negative refresh interval %s", d.refreshInterval)
	}
	return d, nil
}

//Attach attaches the Device using the payload {pin, pixelCount}.
/*
A Device which is already attached is detached first. On failure the error is
reported to the Reporter and the Device stays unattached.
*/
func (d *Device) Attach(config []byte) error {
	if d.attached {
		if err := d.Detach(); err != nil {
			return errors.Wrap(err, "device Attach")
		}
	}
	if len(config) != attachConfigSize {
		d.reporter.Error(KindInvalidConfiguration, fmt.Sprintf("%s: got %d bytes, want %d", ErrInvalidConfig, len(config), attachConfigSize))
		return errors.Wrap(ErrInvalidConfig, "device Attach")
	}
	pin, count := config[0], int(config[1])
	board := d.platform.Board()
	pinPort, ok := board.Resolve(pin)
	if !ok {
		d.reporter.Error(KindUnsupportedPlatform, fmt.Sprintf("%s: pin %d on board %s", ErrUnsupportedPlatform, pin, board))
		return errors.Wrapf(ErrUnsupportedPlatform, "device Attach pin %d", pin)
	}
	port, err := d.platform.Port(pinPort.Group)
	if err != nil {
		d.reporter.Error(KindUnsupportedPlatform, fmt.Sprintf("%s: %v", pinPort.Group, err))
		return errors.Wrap(err, "device Attach")
	}
	clock := d.clock
	if clock == 0 {
		clock = board.Clock
	}
	cycles := d.timing.Cycles(clock)
	logOutput().Stringer("clock", clock).Stringer("cycles", cycles).Msg("Derived delay constants")
	eng, err := newEngine(d.platform, port, pinPort.Mask(), cycles)
	if err != nil {
		d.reporter.Error(KindUnsupportedPlatform, fmt.Sprintf("%s at %s: %v", cycles, clock, err))
		return errors.Wrap(err, "device Attach")
	}
	logOutput().Uint8("pin", pin).Stringer("port", pinPort).Msg("Configuring pin as output")
	err = d.platform.ConfigureOutput(pin)
	if err != nil {
		d.reporter.Error(KindUnsupportedPlatform, fmt.Sprintf("pin %d: %v", pin, err))
		return errors.Wrap(err, "device Attach")
	}

	d.pin = pin
	d.pinPort = pinPort
	d.board = board.Name
	d.strip = NewLEDStrip(count)
	d.cycles = cycles
	d.engine = eng
	d.engine.release()
	d.attached = true
	d.dirty = true
	d.shown = false
	d.lastShow = 0
	d.reporter.Attached(d.Info())
	return nil
}

//AttachPin is Attach with the payload built from pin and count.
func (d *Device) AttachPin(pin uint8, count uint8) error {
	return d.Attach([]byte{pin, count})
}

//Detach drives the line low and releases the pixel buffer.
func (d *Device) Detach() error {
	if !d.attached {
		return nil
	}
	info := d.Info()
	d.engine.release()
	d.attached = false
	d.strip = nil
	d.engine = nil
	d.dirty = false
	d.shown = false
	d.reporter.Detached(info)
	return nil
}

//SetTiming sets the pulse widths. Only possible while not attached.
func (d *Device) SetTiming(t Timing) error {
	if d.attached {
		return errors.Wrap(ErrDeviceAttached, "device SetTiming")
	}
	if err := t.Validate(); err != nil {
		return errors.Wrap(err, "device SetTiming")
	}
	d.timing = t
	return nil
}

//SetRefreshInterval sets the minimum time between two frames sent by Update. Only possible while not attached.
func (d *Device) SetRefreshInterval(interval time.Duration) error {
	if d.attached {
		return errors.Wrap(ErrDeviceAttached, "device SetRefreshInterval")
	}
	if interval < 0 {
		return errors.Errorf("device SetRefreshInterval: negative interval %s", interval)
	}
	d.refreshInterval = interval
	return nil
}

//SetClock overrides the clock of the board. 0 restores the clock of the board. Only possible while not attached.
func (d *Device) SetClock(clock physic.Frequency) error {
	if d.attached {
		return errors.Wrap(ErrDeviceAttached, "device SetClock")
	}
	d.clock = clock
	return nil
}

//Attached reports whether the Device is attached.
func (d *Device) Attached() bool {
	return d.attached
}

//Pin returns the configured pin.
func (d *Device) Pin() uint8 {
	return d.pin
}

//PinPort returns the port group and bit owning the pin.
func (d *Device) PinPort() PinPort {
	return d.pinPort
}

//Len returns the number of pixels. 0 if not attached.
func (d *Device) Len() int {
	if d.strip == nil {
		return 0
	}
	return d.strip.TotalCount()
}

//Dirty reports whether the buffer changed since the last frame.
func (d *Device) Dirty() bool {
	return d.dirty
}

//Cycles returns the delay constants derived at attach.
func (d *Device) Cycles() Cycles {
	return d.cycles
}

//Timing returns the configured pulse widths.
func (d *Device) Timing() Timing {
	return d.timing
}

//RefreshInterval returns the minimum time between two frames sent by Update.
func (d *Device) RefreshInterval() time.Duration {
	return d.refreshInterval
}

//Info describes the Device.
func (d *Device) Info() DeviceInfo {
	return DeviceInfo{Pin: d.pin, Pixels: d.Len(), Port: d.pinPort, Board: d.board}
}

//Pixel returns the Pixel at position. Black if not attached or out of range.
func (d *Device) Pixel(position int) Pixel {
	if d.strip == nil {
		return Pixel{}
	}
	return d.strip.Pixel(position)
}

//Pixels returns a copy of the buffer.
func (d *Device) Pixels() []Pixel {
	if d.strip == nil {
		return nil
	}
	return d.strip.Copy()
}

//SetPixel sets the Pixel at position.
func (d *Device) SetPixel(position int, p Pixel) error {
	if !d.attached {
		return errors.Wrap(ErrNotAttached, "device SetPixel")
	}
	if !d.strip.SetPixel(position, p) {
		return errors.Wrapf(ErrIndexOutOfRange, "device SetPixel %d", position)
	}
	d.dirty = true
	return nil
}

//SetColor sets the color from color.Color at position.
func (d *Device) SetColor(position int, c color.Color) error {
	return d.SetPixel(position, PixelFromColor(c))
}

//Fill sets every pixel to p.
func (d *Device) Fill(p Pixel) error {
	if !d.attached {
		return errors.Wrap(ErrNotAttached, "device Fill")
	}
	d.strip.Fill(p)
	d.dirty = true
	return nil
}

//ShiftRight rotates the buffer by shift pixels to the right.
func (d *Device) ShiftRight(shift int) error {
	if !d.attached {
		return errors.Wrap(ErrNotAttached, "device ShiftRight")
	}
	d.strip.ShiftRight(shift)
	d.dirty = true
	return nil
}

//ShiftLeft rotates the buffer by shift pixels to the left.
func (d *Device) ShiftLeft(shift int) error {
	if !d.attached {
		return errors.Wrap(ErrNotAttached, "device ShiftLeft")
	}
	d.strip.ShiftLeft(shift)
	d.dirty = true
	return nil
}

func (d *Device) String() string {
	if !d.attached {
		return "ws2812(detached)"
	}
	return fmt.Sprintf("ws2812(pin %d, %s, %d pixels)", d.pin, d.pinPort, d.Len())
}
