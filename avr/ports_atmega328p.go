//go:build avr && atmega328p

package avr

import (
	"device/avr"

	"github.com/DerLukas15/ws2812bang"
)

var board = ws2812bang.BoardUno

var registers = map[ws2812bang.PortGroup]register{
	ws2812bang.PortB: {port: avr.PORTB, ddr: avr.DDRB},
	ws2812bang.PortC: {port: avr.PORTC, ddr: avr.DDRC},
	ws2812bang.PortD: {port: avr.PORTD, ddr: avr.DDRD},
}
