// serial/regs.go

package serial

// apb_uart register map: 16550-compatible byte-wide registers on a
// 4-byte stride (the bus decodes PADDR[4:2]). Offsets 0x00 and 0x04 are
// banked behind LCR.DLAB: with the latch open they are the divisor
// bytes, otherwise the data and interrupt-enable registers.
const (
	RegRBR uint32 = 0x00 // receive buffer (read, DLAB=0)
	RegTHR uint32 = 0x00 // transmit holding (write, DLAB=0)
	RegDLL uint32 = 0x00 // divisor latch low (DLAB=1)
	RegIER uint32 = 0x04 // interrupt enable (DLAB=0)
	RegDLM uint32 = 0x04 // divisor latch high (DLAB=1)
	RegFCR uint32 = 0x08 // FIFO control (write only)
	RegLCR uint32 = 0x0C // line control
	RegMCR uint32 = 0x10 // modem control
	RegLSR uint32 = 0x14 // line status
	RegMSR uint32 = 0x18 // modem status
	RegSCR uint32 = 0x1C // scratch
)

// Line control values. LCR8N1 both closes the divisor latch and sets the
// frame format, so init uses it as a single combined write.
const (
	LCRDLAB uint8 = 0x80 // divisor latch access
	LCR8N1  uint8 = 0x03 // 8 data bits, 1 stop bit, no parity, DLAB=0
)

// FIFO control bits.
const (
	FCREnable  uint8 = 1 << 0
	FCRClearRX uint8 = 1 << 1
	FCRClearTX uint8 = 1 << 2
)

// LSRTHRE: transmit holding register empty, the single backpressure bit
// the transmit path polls.
const LSRTHRE uint8 = 1 << 5

// Fixed-baud FIFO UART variant: three 32-bit registers, no divisor or
// format programming (the hardware self-configures). Note the inverted
// status polarity relative to LSR.THRE: bit 1 set means the TX FIFO is
// full, so the driver spins while it is set.
const (
	RegFIFORx     uint32 = 0x00
	RegFIFOTx     uint32 = 0x04
	RegFIFOStatus uint32 = 0x08
)

// FIFOStatusTxFull: transmit FIFO cannot accept another byte.
const FIFOStatusTxFull uint32 = 1 << 1
