package ws2812bang

//engine bit-bangs the WS2812 waveform on one pin. All fields are fixed at attach.
type engine struct {
	platform Platform
	port     Port
	bits     BitWriter // nil unless port is a BitPort
	mask     uint32
	cycles   Cycles
}

func newEngine(platform Platform, port Port, mask uint32, cycles Cycles) (*engine, error) {
	e := &engine{platform: platform, port: port, mask: mask, cycles: cycles}
	if bp, ok := port.(BitPort); ok {
		bits, err := bp.Bits(mask, cycles)
		if err != nil {
			return nil, err
		}
		e.bits = bits
	}
	return e, nil
}

//sendBit emits one bit. The high phase of a 0 bit must not be stretched, it runs
//with interrupts disabled.
func (e *engine) sendBit(one bool) {
	if e.bits != nil {
		if one {
			e.bits.WriteBit(true)
			return
		}
		state := e.platform.DisableInterrupts()
		e.bits.WriteBit(false)
		e.platform.RestoreInterrupts(state)
		return
	}
	if one {
		e.port.Set(e.mask)
		e.platform.DelayCycles(e.cycles.T1H)
		e.port.Clear(e.mask)
		e.platform.DelayCycles(e.cycles.T1L)
		return
	}
	state := e.platform.DisableInterrupts()
	e.port.Set(e.mask)
	e.platform.DelayCycles(e.cycles.T0H)
	e.port.Clear(e.mask)
	e.platform.DelayCycles(e.cycles.T0L)
	e.platform.RestoreInterrupts(state)
}

//sendByte emits b most significant bit first.
func (e *engine) sendByte(b uint8) {
	for i := bitsPerByte - 1; i >= 0; i-- {
		e.sendBit(b&(1<<uint(i)) != 0)
	}
}

func (e *engine) sendPixel(p Pixel) {
	for _, val := range p.wire() {
		e.sendByte(val)
	}
}

//sendFrame emits every pixel of leds in index order with no gap in between.
func (e *engine) sendFrame(leds LEDs) {
	count := leds.TotalCount()
	for i := 0; i < count; i++ {
		e.sendPixel(leds.Pixel(i))
	}
}

//release drives the line low.
func (e *engine) release() {
	e.port.Clear(e.mask)
}
