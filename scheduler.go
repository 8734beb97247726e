package ws2812bang

import "time"

//Show sends the buffer to the strip.
/*
The strip only latches a frame after the line stayed low for Timing.Reset. A
call arriving earlier is dropped and Show returns false. There is no queue: the
next successful call sends whatever the buffer holds by then.

Show blocks for the whole frame, roughly 30µs per pixel.
*/
func (d *Device) Show() bool {
	if !d.attached {
		return false
	}
	now := d.platform.Micros()
	if d.shown && now-d.lastShow < micros(d.timing.Reset) {
		logOutput().Uint8("pin", d.pin).Uint64("elapsed", now-d.lastShow).Msg("Dropping frame inside reset interval")
		d.observer.ShowDropped(d.pin)
		return false
	}
	d.engine.sendFrame(d.strip)
	d.lastShow = d.platform.Micros()
	d.shown = true
	d.dirty = false
	d.observer.FrameShown(d.pin, d.strip.TotalCount())
	return true
}

//Update is meant to be called from a polling loop. It shows the buffer if it
//changed and RefreshInterval elapsed since the last frame.
func (d *Device) Update() bool {
	if !d.attached || !d.dirty {
		return false
	}
	if d.shown && d.platform.Micros()-d.lastShow < micros(d.refreshInterval) {
		return false
	}
	return d.Show()
}

//Off sets every pixel to black and shows the buffer.
func (d *Device) Off() bool {
	if !d.attached {
		return false
	}
	d.strip.Clear()
	d.dirty = true
	return d.Show()
}

//On shows the buffer again even if nothing changed since the last frame.
func (d *Device) On() bool {
	if !d.attached {
		return false
	}
	d.dirty = true
	return d.Show()
}

func micros(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	return uint64(d / time.Microsecond)
}
