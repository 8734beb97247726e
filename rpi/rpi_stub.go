//go:build !linux

package rpi

import (
	"github.com/DerLukas15/ws2812bang"
	"github.com/pkg/errors"
)

//Platform is not available on this OS.
type Platform struct {
	ws2812bang.Platform
}

//New always fails outside of Linux.
func New(opts *Opts) (*Platform, error) {
	return nil, errors.Wrap(ws2812bang.ErrUnsupportedPlatform, "rpi New: linux only")
}

//Close does nothing.
func (p *Platform) Close() error { return nil }

//Hardware reports that no Raspberry Pi can be detected.
func (p *Platform) Hardware() (string, error) {
	return "", errors.Wrap(ws2812bang.ErrUnsupportedPlatform, "rpi Hardware: linux only")
}
