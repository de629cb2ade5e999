//go:build amd64

package cpu

import "golang.org/x/sys/cpu"

func init() {
	hasBMI1 = cpu.X86.HasBMI1
	hasPOPCNT = cpu.X86.HasPOPCNT
	initCapabilities()
}
