package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DerLukas15/ws2812bang"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/physic"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := write(t, "strip.yaml", `
platform: sim
board: mega2560
pin: 22
pixels: 30
clock: 8MHz
refresh: 20ms
timing:
  reset: 80us
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mega2560", c.Board)
	assert.Equal(t, uint8(22), c.Pin)
	assert.Equal(t, uint8(30), c.Pixels)
	assert.Equal(t, Frequency(8*physic.MegaHertz), c.Clock)
	assert.Equal(t, Duration(20*time.Millisecond), c.Refresh)
	assert.Equal(t, Duration(80*time.Microsecond), c.Timing.Reset)
	assert.Equal(t, Duration(ws2812bang.DefaultTiming.T0H), c.Timing.T0H, "defaults kept")
	assert.NoError(t, c.Validate())
}

func TestLoadTOML(t *testing.T) {
	path := write(t, "strip.toml", `
platform = "periph"
periph_pin = "GPIO18"
pin = 18
pixels = 60
debug = true

[timing]
t0h = "350ns"
overhead = 0
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "periph", c.Platform)
	assert.Equal(t, "GPIO18", c.PeriphPin)
	assert.True(t, c.Debug)
	assert.Equal(t, 350*time.Nanosecond, c.DeviceTiming().T0H)
	assert.Equal(t, uint32(0), c.DeviceTiming().Overhead)
	assert.Equal(t, ws2812bang.DefaultTiming.T1H, c.DeviceTiming().T1H)
	assert.NoError(t, c.Validate())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(write(t, "strip.json", `{}`))
	assert.Equal(t, ErrUnknownFormat, errors.Cause(err))

	_, err = Load(write(t, "strip.yaml", "refresh: soon\n"))
	assert.Error(t, err)

	_, err = Load(write(t, "strip.toml", "clock = \"fast\"\n"))
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	for _, name := range []string{"strip.yml", "strip.toml"} {
		path := filepath.Join(t.TempDir(), name)
		c := Default()
		c.Pin = 9
		c.Clock = Frequency(16 * physic.MegaHertz)
		require.NoError(t, Save(path, c))

		loaded, err := Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, c, loaded, name)
	}
	assert.Error(t, Save(filepath.Join(t.TempDir(), "strip.ini"), Default()))
}

func TestValidate(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	c.Platform = "esp"
	assert.Error(t, c.Validate())

	c = Default()
	c.Board = "teensy"
	assert.Error(t, c.Validate())

	c = Default()
	c.Platform = "periph"
	assert.Error(t, c.Validate())

	c = Default()
	c.Timing.T0H = c.Timing.T1H
	assert.Error(t, c.Validate())
}

func TestOptions(t *testing.T) {
	c := Default()
	c.Clock = Frequency(8 * physic.MegaHertz)
	c.Refresh = Duration(10 * time.Millisecond)
	d, err := ws2812bang.New(ws2812bang.NewSimPlatform(ws2812bang.BoardUno), c.Options()...)
	require.NoError(t, err)
	require.NoError(t, d.AttachPin(c.Pin, c.Pixels))
	assert.Equal(t, 10*time.Millisecond, d.RefreshInterval())
	assert.Equal(t, ws2812bang.Cycles{T0H: 1, T0L: 5, T1H: 5, T1L: 3}, d.Cycles())
}
