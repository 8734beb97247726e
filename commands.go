package ws2812bang

import (
	"fmt"

	"github.com/pkg/errors"
)

//PatchEntry sets a single pixel in a patch command.
type PatchEntry struct {
	Index uint8
	Pixel Pixel
}

//EncodePatch builds the payload accepted by WritePatch.
/*
Layout:

	[0] command id (0, unused by the driver)
	[1] device id (0, unused by the driver)
	[2] length of the entry region in bytes
	[3...] {index, red, green, blue} per entry

At most 63 entries fit since the length is a single byte. Additional entries are dropped.
*/
func EncodePatch(entries ...PatchEntry) []byte {
	maxEntries := 0xff / patchEntrySize
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}
	cmd := make([]byte, patchDataOffset, patchDataOffset+len(entries)*patchEntrySize)
	cmd[patchLengthOffset] = uint8(len(entries) * patchEntrySize)
	for _, e := range entries {
		cmd = append(cmd, e.Index, e.Pixel.R, e.Pixel.G, e.Pixel.B)
	}
	return cmd
}

//WritePatch overwrites the pixels addressed by a patch command. See EncodePatch for the layout.
/*
Pixels not addressed keep their value. A trailing incomplete entry is ignored.
Entries with an index outside the buffer are skipped and reported, the
remaining entries are still applied and ErrIndexOutOfRange is returned. The
Device only becomes dirty if at least one entry was applied.
A payload too short for its declared length is rejected as a whole.

WritePatch never sends anything to the strip.
*/
func (d *Device) WritePatch(cmd []byte) error {
	if !d.attached {
		return errors.Wrap(ErrNotAttached, "device WritePatch")
	}
	if len(cmd) < patchDataOffset {
		return errors.Wrapf(ErrInvalidCommand, "device WritePatch: %d bytes", len(cmd))
	}
	length := int(cmd[patchLengthOffset])
	if len(cmd) < patchDataOffset+length {
		return errors.Wrapf(ErrInvalidCommand, "device WritePatch: declared %d bytes, got %d", length, len(cmd)-patchDataOffset)
	}
	data := cmd[patchDataOffset : patchDataOffset+length]
	var applied, rejected int
	for offset := 0; offset+patchEntrySize <= len(data); offset += patchEntrySize {
		index := int(data[offset])
		if !d.strip.SetRGB(index, data[offset+1], data[offset+2], data[offset+3]) {
			rejected++
			d.reporter.Error(KindIndexOutOfRange, fmt.Sprintf("%s: %d not in [0, %d)", ErrIndexOutOfRange, index, d.strip.TotalCount()))
			continue
		}
		applied++
	}
	if applied > 0 {
		d.dirty = true
	}
	logOutput().Uint8("pin", d.pin).Int("applied", applied).Int("rejected", rejected).Msg("Patch written")
	d.observer.PatchApplied(d.pin, applied, rejected)
	if rejected > 0 {
		return errors.Wrapf(ErrIndexOutOfRange, "device WritePatch: %d entries", rejected)
	}
	return nil
}

//WriteFrame replaces the whole buffer. rgb holds red, green and blue for every pixel.
func (d *Device) WriteFrame(rgb []byte) error {
	if !d.attached {
		return errors.Wrap(ErrNotAttached, "device WriteFrame")
	}
	count := d.strip.TotalCount()
	if len(rgb) != count*channelsPerLED {
		return errors.Wrapf(ErrFrameLength, "device WriteFrame: got %d bytes, want %d", len(rgb), count*channelsPerLED)
	}
	for i := 0; i < count; i++ {
		d.strip.SetRGB(i, rgb[i*channelsPerLED], rgb[i*channelsPerLED+1], rgb[i*channelsPerLED+2])
	}
	d.dirty = true
	return nil
}
