package ws2812bang

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3/physic"
)

//Edge is one write to a port recorded by SimPlatform.
type Edge struct {
	Cycle  uint64 // virtual CPU cycle of the write
	Group  PortGroup
	Mask   uint32
	High   bool
	Masked bool // interrupts were disabled
}

//SimPlatform is a Platform without hardware. Time only moves through
//DelayCycles and Advance, which makes the waveform reproducible.
type SimPlatform struct {
	board   *Board
	cycles  uint64
	offset  time.Duration
	masked  bool
	edges   []Edge
	levels  map[PortGroup]uint32
	outputs map[uint8]bool

	criticalSections int
}

//NewSimPlatform returns a SimPlatform for board. board may be nil to simulate an unknown board.
func NewSimPlatform(board *Board) *SimPlatform {
	return &SimPlatform{
		board:   board,
		levels:  make(map[PortGroup]uint32),
		outputs: make(map[uint8]bool),
	}
}

type simPort struct {
	sim   *SimPlatform
	group PortGroup
}

func (p simPort) Set(mask uint32) {
	p.sim.levels[p.group] |= mask
	p.sim.record(p.group, mask, true)
}

func (p simPort) Clear(mask uint32) {
	p.sim.levels[p.group] &^= mask
	p.sim.record(p.group, mask, false)
}

func (s *SimPlatform) record(group PortGroup, mask uint32, high bool) {
	s.edges = append(s.edges, Edge{Cycle: s.cycles, Group: group, Mask: mask, High: high, Masked: s.masked})
}

//Board returns the simulated board.
func (s *SimPlatform) Board() *Board {
	return s.board
}

//Port returns a recording port for every group of the board.
func (s *SimPlatform) Port(group PortGroup) (Port, error) {
	if s.board == nil {
		return nil, errors.Wrapf(ErrPortNotAvailable, "sim %s", group)
	}
	for _, g := range s.board.Groups() {
		if g == group {
			return simPort{sim: s, group: group}, nil
		}
	}
	return nil, errors.Wrapf(ErrPortNotAvailable, "sim %s", group)
}

//ConfigureOutput marks pin as output.
func (s *SimPlatform) ConfigureOutput(pin uint8) error {
	if _, ok := s.board.Resolve(pin); !ok {
		return errors.Errorf("sim: no pin %d", pin)
	}
	s.outputs[pin] = true
	return nil
}

//DelayCycles advances the virtual clock.
func (s *SimPlatform) DelayCycles(cycles uint32) {
	s.cycles += uint64(cycles)
}

//DisableInterrupts enters a critical section.
func (s *SimPlatform) DisableInterrupts() InterruptState {
	var state InterruptState
	if s.masked {
		state = 1
	}
	s.masked = true
	s.criticalSections++
	return state
}

//RestoreInterrupts leaves a critical section.
func (s *SimPlatform) RestoreInterrupts(state InterruptState) {
	s.masked = state != 0
}

//Micros returns the virtual time.
func (s *SimPlatform) Micros() uint64 {
	var fromCycles uint64
	if s.board != nil {
		if hz := uint64(s.board.Clock / physic.Hertz); hz != 0 {
			fromCycles = s.cycles * microsPerSecond / hz
		}
	}
	return fromCycles + uint64(s.offset/time.Microsecond)
}

//Advance moves the virtual time forward by d without touching any port.
func (s *SimPlatform) Advance(d time.Duration) {
	s.offset += d
}

//Cycle returns the virtual cycle counter.
func (s *SimPlatform) Cycle() uint64 {
	return s.cycles
}

//Output reports whether pin was configured as output.
func (s *SimPlatform) Output(pin uint8) bool {
	return s.outputs[pin]
}

//Level returns the current output register of group.
func (s *SimPlatform) Level(group PortGroup) uint32 {
	return s.levels[group]
}

//InterruptsDisabled reports whether a critical section is open.
func (s *SimPlatform) InterruptsDisabled() bool {
	return s.masked
}

//CriticalSections returns how often interrupts were disabled.
func (s *SimPlatform) CriticalSections() int {
	return s.criticalSections
}

//Edges returns a copy of all recorded port writes.
func (s *SimPlatform) Edges() []Edge {
	return append([]Edge(nil), s.edges...)
}

//ResetRecording forgets all recorded port writes and critical sections.
func (s *SimPlatform) ResetRecording() {
	s.edges = nil
	s.criticalSections = 0
}

//Pulse is one high phase of the line.
type Pulse struct {
	High   uint64 // cycles between the rising and the falling edge
	Masked bool   // the rising edge happened with interrupts disabled
}

//Pulses pairs every rising edge on group/mask with the following falling edge.
func (s *SimPlatform) Pulses(group PortGroup, mask uint32) []Pulse {
	var (
		pulses []Pulse
		rising *Edge
	)
	for i := range s.edges {
		e := &s.edges[i]
		if e.Group != group || e.Mask&mask == 0 {
			continue
		}
		switch {
		case e.High && rising == nil:
			rising = e
		case !e.High && rising != nil:
			pulses = append(pulses, Pulse{High: e.Cycle - rising.Cycle, Masked: rising.Masked})
			rising = nil
		}
	}
	return pulses
}

//DecodeBits turns the recorded waveform back into bits. Pulses longer than the
//midpoint between c.T0H and c.T1H are ones.
func (s *SimPlatform) DecodeBits(group PortGroup, mask uint32, c Cycles) []bool {
	threshold := (uint64(c.T0H) + uint64(c.T1H)) / 2
	pulses := s.Pulses(group, mask)
	out := make([]bool, len(pulses))
	for i, p := range pulses {
		out[i] = p.High > threshold
	}
	return out
}

//DecodeBytes groups DecodeBits MSB first. Incomplete trailing bits are dropped.
func (s *SimPlatform) DecodeBytes(group PortGroup, mask uint32, c Cycles) []byte {
	bitsSeen := s.DecodeBits(group, mask, c)
	out := make([]byte, 0, len(bitsSeen)/bitsPerByte)
	for i := 0; i+bitsPerByte <= len(bitsSeen); i += bitsPerByte {
		var b byte
		for _, bit := range bitsSeen[i : i+bitsPerByte] {
			b <<= 1
			if bit {
				b |= 1
			}
		}
		out = append(out, b)
	}
	return out
}

//DecodePixels groups DecodeBytes into pixels sent in green, red, blue order.
func (s *SimPlatform) DecodePixels(group PortGroup, mask uint32, c Cycles) []Pixel {
	raw := s.DecodeBytes(group, mask, c)
	out := make([]Pixel, 0, len(raw)/channelsPerLED)
	for i := 0; i+channelsPerLED <= len(raw); i += channelsPerLED {
		out = append(out, Pixel{G: raw[i], R: raw[i+1], B: raw[i+2]})
	}
	return out
}

//OutputPins returns all pins configured as output in ascending order.
func (s *SimPlatform) OutputPins() []uint8 {
	pins := make([]uint8, 0, len(s.outputs))
	for pin := range s.outputs {
		pins = append(pins, pin)
	}
	sort.Slice(pins, func(i, j int) bool { return pins[i] < pins[j] })
	return pins
}
