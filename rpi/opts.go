//Package rpi is a ws2812bang.Platform for the Raspberry Pi.
//
//GPIO bank 0 (pins 0-31) and bank 1 (pins 32-53) are driven through their
//GPSET/GPCLR registers, timestamps come from the system timer. Needs root.
package rpi

import (
	"github.com/DerLukas15/ws2812bang"
	"periph.io/x/conn/v3/physic"
)

//DefaultClock makes one delay cycle one nanosecond. The clock only sets the
//resolution of the delay constants, the busy loop is calibrated against it.
const DefaultClock = 1 * physic.GigaHertz

//Opts configures a Platform.
type Opts struct {
	Clock physic.Frequency // Default: DefaultClock
}

var banks = map[ws2812bang.PortGroup]bankRegisters{
	ws2812bang.Bank0: {set: registerOffsetGPSet0, clr: registerOffsetGPClr0},
	ws2812bang.Bank1: {set: registerOffsetGPSet1, clr: registerOffsetGPClr1},
}
