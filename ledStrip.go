package ws2812bang

import "image/color"

//LEDStrip is the pixel buffer of a physical continuous strip of LEDs.
//The length is fixed at creation. Positions are 0-based.
type LEDStrip struct {
	pixels []Pixel
}

//NewLEDStrip returns a LEDStrip with count LEDs, all black.
func NewLEDStrip(count int) *LEDStrip {
	if count < 0 {
		count = 0
	}
	return &LEDStrip{pixels: make([]Pixel, count)}
}

//TotalCount returns the number of LEDs in the strip.
func (l *LEDStrip) TotalCount() int {
	return len(l.pixels)
}

//Valid reports whether position addresses a LED of the strip.
func (l *LEDStrip) Valid(position int) bool {
	return position >= 0 && position < len(l.pixels)
}

//Pixel returns the Pixel at position. Positions outside the strip read as black.
func (l *LEDStrip) Pixel(position int) Pixel {
	if !l.Valid(position) {
		return Pixel{}
	}
	return l.pixels[position]
}

//SetPixel sets the Pixel at position. It returns false if position is outside the strip.
func (l *LEDStrip) SetPixel(position int, p Pixel) bool {
	if !l.Valid(position) {
		return false
	}
	l.pixels[position] = p
	return true
}

//SetRGB sets the color value by r, g and b at position.
func (l *LEDStrip) SetRGB(position int, r, g, b uint8) bool {
	return l.SetPixel(position, Pixel{R: r, G: g, B: b})
}

//SetColor sets the color from color.Color at position.
func (l *LEDStrip) SetColor(position int, c color.Color) bool {
	return l.SetPixel(position, PixelFromColor(c))
}

//SetDirect sets the color value for LED at position directly. Format 0x00RRGGBB
func (l *LEDStrip) SetDirect(position int, val uint32) bool {
	return l.SetPixel(position, PixelFromUInt32(val))
}

//Fill sets every LED to p.
func (l *LEDStrip) Fill(p Pixel) {
	for i := range l.pixels {
		l.pixels[i] = p
	}
}

//Clear sets every LED to black.
func (l *LEDStrip) Clear() {
	l.Fill(Pixel{})
}

//Copy returns a snapshot of all pixels.
func (l *LEDStrip) Copy() []Pixel {
	out := make([]Pixel, len(l.pixels))
	copy(out, l.pixels)
	return out
}

//ShiftRight shifts the LED colors by shift to the right. Everything leaving on the right wraps around.
//Use ShiftLeft instead of negative shifts.
func (l *LEDStrip) ShiftRight(shift int) {
	count := len(l.pixels)
	if shift <= 0 || count == 0 || shift%count == 0 {
		return
	}
	l.rotate(count - shift%count)
}

//ShiftLeft shifts the LED colors by shift to the left. Everything leaving on the left wraps around.
//Use ShiftRight instead of negative shifts.
func (l *LEDStrip) ShiftLeft(shift int) {
	count := len(l.pixels)
	if shift <= 0 || count == 0 || shift%count == 0 {
		return
	}
	l.rotate(shift % count)
}

// rotate moves the pixel at k to position 0 in place, keeping the backing array.
func (l *LEDStrip) rotate(k int) {
	reverse(l.pixels[:k])
	reverse(l.pixels[k:])
	reverse(l.pixels)
}

func reverse(p []Pixel) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
