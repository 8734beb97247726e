package rpi

const (
	registerGPIOBusOffset  uint32 = 0x00200000
	registerTimerBusOffset uint32 = 0x00003000

	//GPIO register offsets
	registerOffsetGPSet0 uint32 = 0x1c // Output set, pins 0-31
	registerOffsetGPSet1 uint32 = 0x20 // Output set, pins 32-53
	registerOffsetGPClr0 uint32 = 0x28 // Output clear, pins 0-31
	registerOffsetGPClr1 uint32 = 0x2c // Output clear, pins 32-53

	//System timer register offsets. The counter runs at 1 MHz.
	registerOffsetTimerCLO uint32 = 0x04 // Counter lower 32 bits
	registerOffsetTimerCHI uint32 = 0x08 // Counter higher 32 bits
)

//bankRegisters are the set and clear offsets of one GPIO bank.
type bankRegisters struct {
	set uint32
	clr uint32
}
