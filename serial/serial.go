// serial/serial.go

// Package serial drives the console UART of the Ara SoC: a blocking
// one-byte-at-a-time transmit primitive that the formatted-output layer
// sits on top of. Two hardware flavours exist (the 16550-compatible
// apb_uart and a fixed-baud FIFO UART used by some bitstreams); a
// capture-cell sink stands in for either when the code runs under a
// simulator or on the host. The backend behind the package-level PutChar
// is fixed at build time, never dispatched per call.
package serial

// Console UART of the AXKU5 bitstream: apb_uart at 0xC000_0000 clocked
// at 50 MHz, driven at 115200 baud.
const (
	BaseAddr uintptr = 0xC000_0000
	ClockHz  uint32  = 50_000_000
	Baud     uint32  = 115_200
)

// Config carries the timing inputs for divisor programming. It is fixed
// at build time for a given bitstream; zero fields fall back to the
// platform constants above.
type Config struct {
	ClockHz uint32
	Baud    uint32
}
