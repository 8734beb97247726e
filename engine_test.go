package ws2812bang

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*SimPlatform, *engine, Cycles) {
	t.Helper()
	sim := NewSimPlatform(BoardUno)
	port, err := sim.Port(PortD)
	require.NoError(t, err)
	cycles := DefaultTiming.Cycles(BoardUno.Clock)
	e, err := newEngine(sim, port, 1<<5, cycles)
	require.NoError(t, err)
	return sim, e, cycles
}

//bitPort hands out a BitWriter recording every bit together with the interrupt state.
type bitPort struct {
	Port
	sim     *SimPlatform
	maxHigh uint32
	bits    []bool
	masked  []bool
	mask    uint32
	cycles  Cycles
}

func (b *bitPort) Bits(mask uint32, c Cycles) (BitWriter, error) {
	if c.T1H > b.maxHigh || c.T0H > b.maxHigh {
		return nil, errors.Errorf("high phase longer than %d cycles", b.maxHigh)
	}
	b.mask, b.cycles = mask, c
	return b, nil
}

func (b *bitPort) WriteBit(one bool) {
	b.bits = append(b.bits, one)
	b.masked = append(b.masked, b.sim.InterruptsDisabled())
}

//bitPlatform serves bitPort for every group.
type bitPlatform struct {
	*SimPlatform
	port *bitPort
}

func (p bitPlatform) Port(group PortGroup) (Port, error) {
	port, err := p.SimPlatform.Port(group)
	if err != nil {
		return nil, err
	}
	p.port.Port = port
	return p.port, nil
}

func newBitPlatform(maxHigh uint32) bitPlatform {
	sim := NewSimPlatform(BoardUno)
	return bitPlatform{SimPlatform: sim, port: &bitPort{sim: sim, maxHigh: maxHigh}}
}

func TestEngineByteMSBFirst(t *testing.T) {
	sim, e, cycles := newTestEngine(t)
	e.sendByte(0xb0)
	assert.Equal(t, []bool{true, false, true, true, false, false, false, false}, sim.DecodeBits(PortD, 1<<5, cycles))
}

func TestEnginePixelOrder(t *testing.T) {
	sim, e, cycles := newTestEngine(t)
	e.sendPixel(Pixel{R: 10, G: 20, B: 30})
	assert.Equal(t, []byte{20, 10, 30}, sim.DecodeBytes(PortD, 1<<5, cycles))
}

func TestEngineBitTiming(t *testing.T) {
	sim, e, cycles := newTestEngine(t)
	e.sendBit(true)
	e.sendBit(false)

	edges := sim.Edges()
	require.Len(t, edges, 4)
	assert.Equal(t, uint64(cycles.T1H), edges[1].Cycle-edges[0].Cycle)
	assert.Equal(t, uint64(cycles.T1L), edges[2].Cycle-edges[1].Cycle)
	assert.Equal(t, uint64(cycles.T0H), edges[3].Cycle-edges[2].Cycle)
	assert.Equal(t, uint64(cycles.T1H+cycles.T1L+cycles.T0H+cycles.T0L), sim.Cycle())
	for _, edge := range edges {
		assert.Equal(t, PortD, edge.Group)
		assert.Equal(t, uint32(1<<5), edge.Mask)
	}
}

func TestEngineMasksInterruptsForZeroBits(t *testing.T) {
	sim, e, _ := newTestEngine(t)
	e.sendByte(0xb0)

	pulses := sim.Pulses(PortD, 1<<5)
	require.Len(t, pulses, 8)
	for i, want := range []bool{false, true, false, false, true, true, true, true} {
		assert.Equal(t, want, pulses[i].Masked, "bit %d", i)
	}
	assert.Equal(t, 5, sim.CriticalSections())
	assert.False(t, sim.InterruptsDisabled())
}

func TestEngineFrame(t *testing.T) {
	sim, e, cycles := newTestEngine(t)
	strip := NewLEDStrip(3)
	strip.SetRGB(0, 1, 2, 3)
	strip.SetRGB(2, 4, 5, 6)
	e.sendFrame(strip)
	assert.Equal(t, []Pixel{{R: 1, G: 2, B: 3}, {}, {R: 4, G: 5, B: 6}}, sim.DecodePixels(PortD, 1<<5, cycles))

	e.release()
	assert.Equal(t, uint32(0), sim.Level(PortD))
}

func TestEngineUsesBitWriter(t *testing.T) {
	p := newBitPlatform(32)
	port, err := p.Port(PortD)
	require.NoError(t, err)
	cycles := DefaultTiming.Cycles(BoardUno.Clock)
	e, err := newEngine(p, port, 1<<5, cycles)
	require.NoError(t, err)

	e.sendByte(0xb0)
	assert.Equal(t, []bool{true, false, true, true, false, false, false, false}, p.port.bits)
	assert.Equal(t, []bool{false, true, false, false, true, true, true, true}, p.port.masked)
	assert.Equal(t, uint32(1<<5), p.port.mask)
	assert.Equal(t, cycles, p.port.cycles)
	assert.Empty(t, p.Edges(), "bits must not go through Set and Clear")
	assert.Equal(t, 5, p.CriticalSections())

	e.release()
	assert.Len(t, p.Edges(), 1)
}

func TestEngineBitWriterRejectsCycles(t *testing.T) {
	p := newBitPlatform(4)
	port, err := p.Port(PortD)
	require.NoError(t, err)
	_, err = newEngine(p, port, 1<<5, DefaultTiming.Cycles(BoardUno.Clock))
	assert.Error(t, err)
}
