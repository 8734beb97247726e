package main

import (
	"time"

	"github.com/DerLukas15/ws2812bang"
	"github.com/DerLukas15/ws2812bang/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ws2812ctl",
		Short:         "Drive a WS2812 strip by bit-banging a GPIO pin",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	f := root.PersistentFlags()
	f.String("config", "", "YAML or TOML config file")
	f.String("platform", "sim", "platform: sim | rpi | periph")
	f.String("board", "uno", "board simulated by the sim platform")
	f.Uint8("pin", 6, "data pin")
	f.Uint8("pixels", 8, "number of pixels")
	f.String("clock", "", "override the CPU clock, e.g. 16MHz")
	f.Duration("refresh", ws2812bang.DefaultRefreshInterval, "minimum time between frames")
	f.String("periph-pin", "", "periph.io pin name for the periph platform, e.g. GPIO18")
	f.String("metrics-addr", "", "serve Prometheus metrics on this address")
	f.Bool("debug", false, "enable debug output")

	root.AddCommand(newShowCmd(), newTimingCmd(), newBoardsCmd())
	return root
}

// loadConfig reads --config and applies every flag set on the command line on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	cfg := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	var err error
	flags.Visit(func(fl *pflag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "platform":
			cfg.Platform = fl.Value.String()
		case "board":
			cfg.Board = fl.Value.String()
		case "pin":
			cfg.Pin, err = flags.GetUint8("pin")
		case "pixels":
			cfg.Pixels, err = flags.GetUint8("pixels")
		case "clock":
			err = cfg.Clock.UnmarshalText([]byte(fl.Value.String()))
		case "refresh":
			var d = cfg.Refresh
			err = d.UnmarshalText([]byte(fl.Value.String()))
			cfg.Refresh = d
		case "periph-pin":
			cfg.PeriphPin = fl.Value.String()
		case "metrics-addr":
			cfg.MetricsAddr = fl.Value.String()
		case "debug":
			cfg.Debug, err = flags.GetBool("debug")
		}
		err = errors.Wrapf(err, "flag --%s", fl.Name)
	})
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ws2812bang.Debug = cfg.Debug
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ws2812bang.SetLogger(log.Logger.With().Str("pkg", "ws2812bang").Logger())
	ws2812bang.SetLogOutput(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen})
	return cfg, nil
}
