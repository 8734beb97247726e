//Package config holds the settings of ws2812ctl. Files ending in .yaml or .yml
//are read with yaml.v3, files ending in .toml with go-toml.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/DerLukas15/ws2812bang"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"
)

//ErrUnknownFormat is returned for files which are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("unknown config format")

type Timing struct {
	T0H      Duration `yaml:"t0h" toml:"t0h"`
	T0L      Duration `yaml:"t0l" toml:"t0l"`
	T1H      Duration `yaml:"t1h" toml:"t1h"`
	T1L      Duration `yaml:"t1l" toml:"t1l"`
	Reset    Duration `yaml:"reset" toml:"reset"`
	Overhead uint32   `yaml:"overhead" toml:"overhead"`
}

type Config struct {
	Platform string    `yaml:"platform" toml:"platform"` // "sim" | "rpi" | "periph"
	Board    string    `yaml:"board" toml:"board"`       // sim only: uno, nano, mega2560, rpi
	Pin      uint8     `yaml:"pin" toml:"pin"`
	Pixels   uint8     `yaml:"pixels" toml:"pixels"`
	Clock    Frequency `yaml:"clock" toml:"clock"` // 0 keeps the clock of the board
	Refresh  Duration  `yaml:"refresh" toml:"refresh"`
	Timing   Timing    `yaml:"timing" toml:"timing"`

	PeriphPin   string `yaml:"periph_pin,omitempty" toml:"periph_pin,omitempty"` // e.g. GPIO18
	MetricsAddr string `yaml:"metrics_addr,omitempty" toml:"metrics_addr,omitempty"`
	Debug       bool   `yaml:"debug" toml:"debug"`
}

//Default returns the settings used for everything a file leaves out.
func Default() *Config {
	t := ws2812bang.DefaultTiming
	return &Config{
		Platform: "sim",
		Board:    "uno",
		Pin:      6,
		Pixels:   8,
		Refresh:  Duration(ws2812bang.DefaultRefreshInterval),
		Timing: Timing{
			T0H:      Duration(t.T0H),
			T0L:      Duration(t.T0L),
			T1H:      Duration(t.T1H),
			T1L:      Duration(t.T1L),
			Reset:    Duration(t.Reset),
			Overhead: t.Overhead,
		},
	}
}

//Load reads path on top of Default.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	switch format(path) {
	case "yaml":
		err = yaml.Unmarshal(b, c)
	case "toml":
		err = toml.Unmarshal(b, c)
	default:
		return nil, errors.Wrap(ErrUnknownFormat, path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return c, nil
}

//Save writes c to path in the format matching its extension.
func Save(path string, c *Config) error {
	var (
		b   []byte
		err error
	)
	switch format(path) {
	case "yaml":
		b, err = yaml.Marshal(c)
	case "toml":
		b, err = toml.Marshal(c)
	default:
		return errors.Wrap(ErrUnknownFormat, path)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	}
	return ""
}

//DeviceTiming converts the timing section.
func (c *Config) DeviceTiming() ws2812bang.Timing {
	return ws2812bang.Timing{
		T0H:      time.Duration(c.Timing.T0H),
		T0L:      time.Duration(c.Timing.T0L),
		T1H:      time.Duration(c.Timing.T1H),
		T1L:      time.Duration(c.Timing.T1L),
		Reset:    time.Duration(c.Timing.Reset),
		Overhead: c.Timing.Overhead,
	}
}

//Options returns the device options described by c.
func (c *Config) Options() []ws2812bang.Option {
	opts := []ws2812bang.Option{
		ws2812bang.WithTiming(c.DeviceTiming()),
		ws2812bang.WithRefreshInterval(time.Duration(c.Refresh)),
	}
	if c.Clock != 0 {
		opts = append(opts, ws2812bang.WithClock(physic.Frequency(c.Clock)))
	}
	return opts
}

//Validate checks the settings which do not depend on the hardware.
func (c *Config) Validate() error {
	switch c.Platform {
	case "sim", "rpi", "periph":
	default:
		return errors.Errorf("unknown platform %q", c.Platform)
	}
	if c.Platform == "sim" && c.Board != "rpi" && ws2812bang.BoardByName(c.Board) == nil {
		return errors.Errorf("unknown board %q", c.Board)
	}
	if c.Platform == "periph" && c.PeriphPin == "" {
		return errors.New("periph platform needs periph_pin")
	}
	if c.Refresh < 0 {
		return errors.Errorf("negative refresh %s", c.Refresh)
	}
	return errors.Wrap(c.DeviceTiming().Validate(), "timing")
}
