//Package avr is a ws2812bang.Platform for ATmega boards built with TinyGo.
//
//Pins are driven through their PORTx register. Every port is a
//ws2812bang.BitPort: the high phase of a bit is a run of nops between two st
//instructions, picked at attach from the derived cycles, so no call or branch
//happens while the line is high. Low phases use a dec/brne loop. A 0 bit runs
//with interrupts disabled globally.
//
//Use Timing, its Overhead is the store that ends a high phase. Attach fails
//when the clock needs more than 20 nops for a high phase.
//
//Supported chips: atmega328p (Uno, Nano) and atmega2560 (Mega 2560).
package avr
