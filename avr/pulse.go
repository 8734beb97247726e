//go:build avr

package avr

import (
	"device"
	"runtime/volatile"
)

//pulseFunc writes hi, waits and writes lo with nothing but nops in between.
type pulseFunc func(port *volatile.Register8, hi, lo uint8)

//pulses is indexed by the number of nops between the two stores.
var pulses = [maxHighCycles + 1]pulseFunc{
	pulse0,
	pulse1,
	pulse2,
	pulse3,
	pulse4,
	pulse5,
	pulse6,
	pulse7,
	pulse8,
	pulse9,
	pulse10,
	pulse11,
	pulse12,
	pulse13,
	pulse14,
	pulse15,
	pulse16,
	pulse17,
	pulse18,
	pulse19,
	pulse20,
}

func pulse0(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}

func pulse1(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		nop
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}

func pulse2(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		nop
		nop
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}

func pulse3(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		nop
		nop
		nop
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}

func pulse4(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		nop
		nop
		nop
		nop
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}

func pulse5(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		nop
		nop
		nop
		nop
		nop
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}

func pulse6(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		nop
		nop
		nop
		nop
		nop
		nop
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}

func pulse7(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}

func pulse8(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}

func pulse9(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}

func pulse10(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}

func pulse11(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}

func pulse12(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}

func pulse13(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}

func pulse14(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}

func pulse15(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}

func pulse16(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}

func pulse17(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}

func pulse18(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}

func pulse19(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}

func pulse20(port *volatile.Register8, hi, lo uint8) {
	device.AsmFull(`
		st {port}, {hi}
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		nop
		st {port}, {lo}
	`, map[string]interface{}{"port": port, "hi": hi, "lo": lo})
}
