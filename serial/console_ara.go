// serial/console_ara.go

//go:build ara && !arafifo

package serial

// Console backend for FPGA bitstreams with the 16550-compatible apb_uart.

// Port is the console UART handle. It is the only handle over the block
// at BaseAddr for the life of the process and is never torn down.
var Port = NewUART(apbRegs{})

// Init programs the divisor, frame format and FIFOs from the platform
// constants. The startup code calls it once before the first PutChar;
// calling it again with the same configuration is harmless.
func Init() {
	Port.Init(Config{ClockHz: ClockHz, Baud: Baud})
}

func putByte(b byte) { Port.WriteByte(b) }
