package main

import (
	"github.com/DerLukas15/ws2812bang"
	"github.com/DerLukas15/ws2812bang/internal/config"
	"github.com/DerLukas15/ws2812bang/periphpin"
	"github.com/DerLukas15/ws2812bang/rpi"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// simBoard returns the board the sim platform pretends to be.
func simBoard(name string) *ws2812bang.Board {
	if name == "rpi" {
		return ws2812bang.NewRPiBoard(rpi.DefaultClock)
	}
	return ws2812bang.BoardByName(name)
}

// openPlatform returns the platform selected by cfg and a function releasing it.
// sim is only set for the sim platform.
func openPlatform(cfg *config.Config) (ws2812bang.Platform, *ws2812bang.SimPlatform, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Platform {
	case "sim":
		sim := ws2812bang.NewSimPlatform(simBoard(cfg.Board))
		return sim, sim, noop, nil
	case "rpi":
		pi, err := rpi.New(&rpi.Opts{Clock: physic.Frequency(cfg.Clock)})
		if err != nil {
			return nil, nil, nil, err
		}
		if desc, err := pi.Hardware(); err != nil {
			log.Warn().Err(err).Msg("no Raspberry Pi detected, attach will fail")
		} else {
			log.Debug().Str("hardware", desc).Msg("Raspberry Pi detected")
		}
		return pi, nil, pi.Close, nil
	case "periph":
		if _, err := host.Init(); err != nil {
			return nil, nil, nil, errors.Wrap(err, "periph host init")
		}
		pin := gpioreg.ByName(cfg.PeriphPin)
		if pin == nil {
			return nil, nil, nil, errors.Errorf("periph: no pin %q", cfg.PeriphPin)
		}
		pp, err := periphpin.New(pin, &periphpin.Opts{Clock: physic.Frequency(cfg.Clock)})
		if err != nil {
			return nil, nil, nil, err
		}
		return pp, nil, func() error { return pp.Err() }, nil
	}
	return nil, nil, nil, errors.Errorf("unknown platform %q", cfg.Platform)
}
