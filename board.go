package ws2812bang

import (
	"fmt"
	"sort"
	"strings"

	"periph.io/x/conn/v3/physic"
)

//PinPort is the port group and bit position owning a pin.
type PinPort struct {
	Group PortGroup
	Bit   uint8
}

//Mask returns the identity bitmask of the pin inside its port group.
func (p PinPort) Mask() uint32 {
	return 1 << p.Bit
}

func (p PinPort) String() string {
	return fmt.Sprintf("%s.%d", p.Group, p.Bit)
}

//Board maps the pin numbers of one board to port groups.
type Board struct {
	Name  string
	Clock physic.Frequency // CPU clock the delay constants are derived from
	pins  map[uint8]PinPort
}

//NewBoard returns a Board with the given pin table. The table is copied.
func NewBoard(name string, clock physic.Frequency, pins map[uint8]PinPort) *Board {
	b := &Board{Name: name, Clock: clock, pins: make(map[uint8]PinPort, len(pins))}
	for pin, pp := range pins {
		b.pins[pin] = pp
	}
	return b
}

//Resolve returns the port group and bit owning pin.
func (b *Board) Resolve(pin uint8) (PinPort, bool) {
	if b == nil {
		return PinPort{}, false
	}
	pp, ok := b.pins[pin]
	return pp, ok
}

//Pins returns all usable pins in ascending order.
func (b *Board) Pins() []uint8 {
	if b == nil {
		return nil
	}
	pins := make([]uint8, 0, len(b.pins))
	for pin := range b.pins {
		pins = append(pins, pin)
	}
	sort.Slice(pins, func(i, j int) bool { return pins[i] < pins[j] })
	return pins
}

//Groups returns every port group the board exposes, in ascending order.
func (b *Board) Groups() []PortGroup {
	if b == nil {
		return nil
	}
	seen := make(map[PortGroup]bool)
	var groups []PortGroup
	for _, pp := range b.pins {
		if !seen[pp.Group] {
			seen[pp.Group] = true
			groups = append(groups, pp.Group)
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })
	return groups
}

func (b *Board) String() string {
	if b == nil {
		return "unknown"
	}
	return fmt.Sprintf("%s@%s", b.Name, b.Clock)
}

// sequence maps consecutive pins starting at first onto the listed ports.
func sequence(table map[uint8]PinPort, first uint8, ports ...PinPort) {
	for i, pp := range ports {
		table[first+uint8(i)] = pp
	}
}

func bits(group PortGroup, from, to int) []PinPort {
	var out []PinPort
	step := 1
	if to < from {
		step = -1
	}
	for b := from; ; b += step {
		out = append(out, PinPort{Group: group, Bit: uint8(b)})
		if b == to {
			break
		}
	}
	return out
}

func atmega328pPins() map[uint8]PinPort {
	t := make(map[uint8]PinPort)
	sequence(t, 0, bits(PortD, 0, 7)...)
	sequence(t, 8, bits(PortB, 0, 5)...)
	sequence(t, 14, bits(PortC, 0, 5)...)
	return t
}

func atmega2560Pins() map[uint8]PinPort {
	t := make(map[uint8]PinPort)
	sequence(t, 0,
		PinPort{PortE, 0}, PinPort{PortE, 1}, PinPort{PortE, 4}, PinPort{PortE, 5},
		PinPort{PortG, 5}, PinPort{PortE, 3}, PinPort{PortH, 3}, PinPort{PortH, 4},
		PinPort{PortH, 5}, PinPort{PortH, 6}, PinPort{PortB, 4}, PinPort{PortB, 5},
		PinPort{PortB, 6}, PinPort{PortB, 7}, PinPort{PortJ, 1}, PinPort{PortJ, 0},
		PinPort{PortH, 1}, PinPort{PortH, 0}, PinPort{PortD, 3}, PinPort{PortD, 2},
		PinPort{PortD, 1}, PinPort{PortD, 0},
	)
	sequence(t, 22, bits(PortA, 0, 7)...)
	sequence(t, 30, bits(PortC, 7, 0)...)
	sequence(t, 38, PinPort{PortD, 7}, PinPort{PortG, 2}, PinPort{PortG, 1}, PinPort{PortG, 0})
	sequence(t, 42, bits(PortL, 7, 0)...)
	sequence(t, 50, bits(PortB, 3, 0)...)
	sequence(t, 54, bits(PortF, 0, 7)...)
	sequence(t, 62, bits(PortK, 0, 7)...)
	return t
}

func bcm283xPins() map[uint8]PinPort {
	t := make(map[uint8]PinPort)
	sequence(t, 0, bits(Bank0, 0, 31)...)
	sequence(t, 32, bits(Bank1, 0, 21)...)
	return t
}

//Predefined boards
var (
	BoardUno       = NewBoard("uno", 16*physic.MegaHertz, atmega328pPins())
	BoardNano      = NewBoard("nano", 16*physic.MegaHertz, atmega328pPins())
	BoardMega2560  = NewBoard("mega2560", 16*physic.MegaHertz, atmega2560Pins())
	boardsByName   = map[string]*Board{}
	supportedNames []string
)

func init() {
	for _, b := range []*Board{BoardUno, BoardNano, BoardMega2560} {
		boardsByName[b.Name] = b
		supportedNames = append(supportedNames, b.Name)
	}
}

//NewRPiBoard returns the BCM283x GPIO layout for a CPU running at clock.
func NewRPiBoard(clock physic.Frequency) *Board {
	return NewBoard("rpi", clock, bcm283xPins())
}

//BoardByName returns a predefined board or nil if the name is unknown.
func BoardByName(name string) *Board {
	return boardsByName[strings.ToLower(name)]
}

//BoardNames returns the names accepted by BoardByName.
func BoardNames() []string {
	return append([]string(nil), supportedNames...)
}
