// serial/mmio_ara.go

//go:build ara

package serial

import (
	"runtime/volatile"
	"unsafe"
)

// Volatile access to the memory-mapped UART block at BaseAddr. Every
// logical register access is exactly one load or one store, in program
// order; the volatile cells keep the compiler from fusing, reordering or
// eliding them.

// apbRegs satisfies Regs for the 16550-compatible apb_uart.
type apbRegs struct{}

func reg8(off uint32) *volatile.Register8 {
	return (*volatile.Register8)(unsafe.Pointer(BaseAddr + uintptr(off)))
}

func (apbRegs) ReadReg(off uint32) uint8 { return reg8(off).Get() }

func (apbRegs) WriteReg(off uint32, v uint8) { reg8(off).Set(v) }

// fifoRegs satisfies Regs32 for the fixed-baud FIFO UART, which maps its
// 32-bit register triple at the same base address on the EMU bitstreams.
type fifoRegs struct{}

func reg32(off uint32) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(BaseAddr + uintptr(off)))
}

func (fifoRegs) ReadReg32(off uint32) uint32 { return reg32(off).Get() }

func (fifoRegs) WriteReg32(off uint32, v uint32) { reg32(off).Set(v) }
