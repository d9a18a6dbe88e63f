//go:build ara

// Minimal bring-up check: write a boot marker into L2, bring the console
// up and say hello. The RTL testbench watches the marker address and the
// UART TX line.
package main

import (
	"runtime/volatile"
	"unsafe"

	"github.com/patrickerich/pulp-ara/serial"
)

// markerAddr must live in the L2 region (0x8000_0000..) so the testbench
// can see the store.
const markerAddr uintptr = 0x8000_1000

func main() {
	(*volatile.Register32)(unsafe.Pointer(markerAddr)).Set(0xDEADBEEF)

	serial.Init()
	serial.WriteString("hello world\n")

	for {
	}
}
