package cpu

import (
	"fmt"
	"runtime"
)

// BitScan identifies the instruction the Go compiler emits for
// math/bits.TrailingZeros64 on this machine.
type BitScan uint8

const (
	// Software is the portable fallback (de Bruijn multiply and table lookup).
	Software BitScan = iota
	// BSF is x86-64 bit scan forward (plus a zero check).
	BSF
	// TZCNT is x86-64 BMI1 trailing zero count.
	TZCNT
	// RBITCLZ is the arm64 bit reverse + count leading zeros pair.
	RBITCLZ
)

// String returns the string representation of a BitScan.
func (b BitScan) String() string {
	switch b {
	case Software:
		return "software"
	case BSF:
		return "bsf"
	case TZCNT:
		return "tzcnt"
	case RBITCLZ:
		return "rbit+clz"
	default:
		return "unknown"
	}
}

// Package-level state - initialized once at package init.
var (
	bitScan BitScan

	// CPU feature flags (set by platform-specific init)
	hasBMI1   bool // x86-64 TZCNT
	hasPOPCNT bool // x86-64 POPCNT
	hasASIMD  bool // ARM64 NEON (CNT for popcount)
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	switch runtime.GOARCH {
	case "amd64":
		if hasBMI1 {
			bitScan = TZCNT
		} else {
			bitScan = BSF
		}
	case "arm64":
		bitScan = RBITCLZ
	default:
		bitScan = Software
	}
}

// ActiveBitScan returns the lowest-set-bit primitive available on this CPU.
func ActiveBitScan() BitScan {
	return bitScan
}

// HardwareBitScan reports whether trailing zero count is a single hardware
// instruction (or fixed pair) rather than a software sequence.
func HardwareBitScan() bool {
	return bitScan != Software
}

// HardwarePopcount reports whether population count (used for vertex
// degree and edge counts) runs in hardware.
func HardwarePopcount() bool {
	return hasPOPCNT || hasASIMD
}

// Describe returns a one-line summary for logs and the info command.
func Describe() string {
	return fmt.Sprintf("arch=%s bitscan=%s popcount_hw=%t", runtime.GOARCH, bitScan, HardwarePopcount())
}
