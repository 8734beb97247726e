package ws2812bang

import "image/color"

//Pixel describes the three color channels of one LED. The zero value is black.
type Pixel struct {
	R uint8
	G uint8
	B uint8
}

//PixelFromColor turns a color.Color into a Pixel. Alpha is ignored.
func PixelFromColor(c color.Color) Pixel {
	// A color's RGBA method returns values in the range [0, 65535]
	red, green, blue, _ := c.RGBA()
	return Pixel{R: uint8(red >> 8), G: uint8(green >> 8), B: uint8(blue >> 8)}
}

//PixelFromUInt32 turns a value of format 0x00RRGGBB into a Pixel.
func PixelFromUInt32(val uint32) Pixel {
	return Pixel{
		R: uint8(val >> 16),
		G: uint8(val >> 8),
		B: uint8(val),
	}
}

//Color returns the Pixel as opaque color.RGBA.
func (p Pixel) Color() color.RGBA {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff}
}

//UInt32 returns the Pixel as uint32. Format 0x00RRGGBB
func (p Pixel) UInt32() uint32 {
	return uint32(p.R)<<16 | uint32(p.G)<<8 | uint32(p.B)
}

// wire returns the channels in transmission order.
func (p Pixel) wire() [channelsPerLED]uint8 {
	return [channelsPerLED]uint8{p.G, p.R, p.B}
}
