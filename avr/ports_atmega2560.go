//go:build avr && atmega2560

package avr

import (
	"device/avr"

	"github.com/DerLukas15/ws2812bang"
)

var board = ws2812bang.BoardMega2560

var registers = map[ws2812bang.PortGroup]register{
	ws2812bang.PortA: {port: avr.PORTA, ddr: avr.DDRA},
	ws2812bang.PortB: {port: avr.PORTB, ddr: avr.DDRB},
	ws2812bang.PortC: {port: avr.PORTC, ddr: avr.DDRC},
	ws2812bang.PortD: {port: avr.PORTD, ddr: avr.DDRD},
	ws2812bang.PortE: {port: avr.PORTE, ddr: avr.DDRE},
	ws2812bang.PortF: {port: avr.PORTF, ddr: avr.DDRF},
	ws2812bang.PortG: {port: avr.PORTG, ddr: avr.DDRG},
	ws2812bang.PortH: {port: avr.PORTH, ddr: avr.DDRH},
	ws2812bang.PortJ: {port: avr.PORTJ, ddr: avr.DDRJ},
	ws2812bang.PortK: {port: avr.PORTK, ddr: avr.DDRK},
	ws2812bang.PortL: {port: avr.PORTL, ddr: avr.DDRL},
}
