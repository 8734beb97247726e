package ws2812bang

//LEDs is the read-only view of a strip used while transmitting. Position defines the physical position on the LED strip starting at 0 to the total number of LEDs on that strip.
type LEDs interface {
	Pixel(position int) Pixel
	TotalCount() int
}
