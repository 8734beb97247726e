package periphpin

import (
	"testing"

	"github.com/DerLukas15/ws2812bang"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
)

// recordingPin remembers every level written.
type recordingPin struct {
	gpiotest.Pin
	levels []gpio.Level
}

func (r *recordingPin) Out(l gpio.Level) error {
	r.levels = append(r.levels, l)
	return r.Pin.Out(l)
}

func TestNewNilPin(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)
}

func TestBoard(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO18", Num: 18}
	p, err := New(pin, &Opts{Clock: 100 * physic.MegaHertz})
	require.NoError(t, err)

	b := p.Board()
	require.NotNil(t, b)
	assert.Equal(t, "periph:GPIO18", b.Name)
	assert.Equal(t, 100*physic.MegaHertz, b.Clock)
	assert.Equal(t, []uint8{18}, b.Pins())

	_, err = p.Port(ws2812bang.PortB)
	assert.Equal(t, ws2812bang.ErrPortNotAvailable, errors.Cause(err))
	assert.Error(t, p.ConfigureOutput(17))
}

func TestBoardUnknownNumber(t *testing.T) {
	p, err := New(&gpiotest.Pin{N: "virtual", Num: -1}, nil)
	require.NoError(t, err)
	assert.Nil(t, p.Board())

	d, err := ws2812bang.New(p)
	require.NoError(t, err)
	assert.Equal(t, ws2812bang.ErrUnsupportedPlatform, errors.Cause(d.AttachPin(0, 1)))
}

func TestShowWritesEveryBit(t *testing.T) {
	pin := &recordingPin{Pin: gpiotest.Pin{N: "GPIO18", Num: 18}}
	p, err := New(pin, nil)
	require.NoError(t, err)
	d, err := ws2812bang.New(p)
	require.NoError(t, err)

	require.NoError(t, d.AttachPin(18, 2))
	assert.Equal(t, gpio.Low, pin.L)
	require.NoError(t, d.WriteFrame([]byte{1, 2, 3, 4, 5, 6}))
	pin.levels = nil
	require.True(t, d.Show())

	require.Len(t, pin.levels, 2*2*24)
	for i, l := range pin.levels {
		assert.Equal(t, gpio.Level(i%2 == 0), l, "write %d", i)
	}
	assert.Equal(t, gpio.Low, pin.L)
	assert.NoError(t, p.Err())

	require.NoError(t, d.Detach())
	assert.Equal(t, gpio.Low, pin.L)
}

func TestMicrosMonotonic(t *testing.T) {
	p, err := New(&gpiotest.Pin{N: "GPIO4", Num: 4}, nil)
	require.NoError(t, err)
	a := p.Micros()
	p.DelayCycles(2000000) // 2ms at 1 GHz
	assert.GreaterOrEqual(t, p.Micros()-a, uint64(2000))
}
