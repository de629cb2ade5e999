// Package cpu reports which bit-scan and popcount primitives the current
// CPU offers. Detection uses golang.org/x/sys/cpu at package init.
package cpu
