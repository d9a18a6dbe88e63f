// serial/console_arafifo.go

//go:build ara && arafifo

package serial

// Console backend for EMU bitstreams with the fixed-baud FIFO UART.

// Port is the console UART handle, the only one over the block at
// BaseAddr for the life of the process.
var Port = NewFIFOUART(fifoRegs{})

// Init is a no-op on this variant: the hardware self-configures and
// exposes no divisor or format registers.
func Init() {}

func putByte(b byte) { Port.WriteByte(b) }
