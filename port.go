package ws2812bang

import "fmt"

//PortGroup identifies one bank of GPIO pins sharing a single output register.
type PortGroup uint8

//Valid PortGroups. AVR ports are named after their PORTx register, Bank0/Bank1 are the BCM283x GPIO banks.
const (
	PortA PortGroup = iota + 1
	PortB
	PortC
	PortD
	PortE
	PortF
	PortG
	PortH
	PortJ
	PortK
	PortL
	Bank0
	Bank1
)

var portGroupNames = map[PortGroup]string{
	PortA: "PORTA",
	PortB: "PORTB",
	PortC: "PORTC",
	PortD: "PORTD",
	PortE: "PORTE",
	PortF: "PORTF",
	PortG: "PORTG",
	PortH: "PORTH",
	PortJ: "PORTJ",
	PortK: "PORTK",
	PortL: "PORTL",
	Bank0: "GPIO0",
	Bank1: "GPIO1",
}

func (g PortGroup) String() string {
	if name, ok := portGroupNames[g]; ok {
		return name
	}
	return fmt.Sprintf("PortGroup(%d)", uint8(g))
}

//Port is the output register of one PortGroup.
/*
Set and Clear only touch the bits in mask and must compile down to a single
register write where the platform allows it; the delay constants assume
Timing.Overhead cycles per call.
*/
type Port interface {
	Set(mask uint32)
	Clear(mask uint32)
}

//BitWriter emits complete bits with the delays built in.
type BitWriter interface {
	WriteBit(one bool)
}

//BitPort is implemented by Ports which time the high phase of a bit themselves.
/*
Where a call through Port and Platform.DelayCycles costs more cycles than the
high phase of a 0 bit, the Port emits the high phase as one straight-line
sequence instead. The engine uses the BitWriter returned by Bits for every bit
and still wraps 0 bits in a critical section. Bits fails if the platform cannot
produce the pulse widths of c.
*/
type BitPort interface {
	Port
	Bits(mask uint32, c Cycles) (BitWriter, error)
}

//InterruptState is whatever a platform needs to restore interrupts after a critical section.
type InterruptState uintptr

//Platform is everything the driver needs from the target.
type Platform interface {
	// Board describes the hardware. nil means the board is not recognized.
	Board() *Board
	// Port returns the output register of group.
	Port(group PortGroup) (Port, error)
	// ConfigureOutput switches pin to output mode.
	ConfigureOutput(pin uint8) error
	// DelayCycles busy-waits for exactly cycles CPU cycles.
	DelayCycles(cycles uint32)
	// DisableInterrupts enters a critical section.
	DisableInterrupts() InterruptState
	// RestoreInterrupts leaves the critical section entered with state.
	RestoreInterrupts(state InterruptState)
	// Micros returns a monotonic timestamp in microseconds.
	Micros() uint64
}
