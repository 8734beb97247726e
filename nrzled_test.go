package ws2812bang_test

import (
	"bytes"
	"testing"

	"github.com/DerLukas15/ws2812bang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spitest"
	"periph.io/x/devices/v3/nrzled"
)

// nrzLatchBytes is the zero preamble nrzled writes ahead of the pixel data.
const nrzLatchBytes = 3

// nrzBits decodes the 4 bit symbols written by nrzled for n data bytes, 0xe is a
// one and 0x8 a zero. Symbols come high nibble first.
func nrzBits(raw []byte, n int) []bool {
	raw = raw[nrzLatchBytes : nrzLatchBytes+4*n]
	out := make([]bool, 0, 8*n)
	for _, b := range raw {
		out = append(out, b>>4 == 0xe, b&0xf == 0xe)
	}
	return out
}

func TestSerializerMatchesNRZLED(t *testing.T) {
	rgb := []byte{255, 0, 0, 0, 0, 0, 0, 0, 255, 10, 20, 30}
	count := len(rgb) / 3

	buf := bytes.Buffer{}
	ref, err := nrzled.NewSPI(spitest.NewRecordRaw(&buf), &nrzled.Opts{NumPixels: count, Channels: 3, Freq: 2500 * physic.KiloHertz})
	require.NoError(t, err)
	_, err = ref.Write(rgb)
	require.NoError(t, err)
	require.GreaterOrEqual(t, buf.Len(), nrzLatchBytes+4*len(rgb))
	want := nrzBits(buf.Bytes(), len(rgb))
	require.Len(t, want, count*24)

	sim := ws2812bang.NewSimPlatform(ws2812bang.BoardUno)
	d, err := ws2812bang.New(sim)
	require.NoError(t, err)
	require.NoError(t, d.AttachPin(5, uint8(count)))
	require.NoError(t, d.WriteFrame(rgb))
	require.True(t, d.Show())

	assert.Equal(t, want, sim.DecodeBits(ws2812bang.PortD, 1<<5, d.Cycles()))
}
