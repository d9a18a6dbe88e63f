// serial/fifouart.go

package serial

// Regs32 is the access primitive for the fixed-baud FIFO UART: 32-bit
// registers, one load or store per logical access, in program order.
type Regs32 interface {
	ReadReg32(off uint32) uint32
	WriteReg32(off uint32, v uint32)
}

// FIFOUART drives the fixed-baud UART variant found on the EMU
// bitstreams: receive, transmit and status registers only, no divisor or
// format programming. It shares the PutChar contract with UART but is a
// separate type; register widths, offsets and status polarity all differ,
// and papering over that with a common register map helps nobody.
type FIFOUART[R Regs32] struct {
	regs R
}

// NewFIFOUART wraps a register block in a driver handle. The hardware
// self-configures, so there is no Init.
func NewFIFOUART[R Regs32](regs R) *FIFOUART[R] {
	return &FIFOUART[R]{regs: regs}
}

// WriteByte transmits one raw byte. The status bit here signals "FIFO
// full" rather than "holding register empty", so the wait spins while
// the bit is set. Only the low byte of the TX store is significant.
func (u *FIFOUART[R]) WriteByte(b byte) {
	for u.regs.ReadReg32(RegFIFOStatus)&FIFOStatusTxFull != 0 {
	}
	u.regs.WriteReg32(RegFIFOTx, uint32(b))
}

// PutChar transmits c with the same LF to CR+LF expansion as the 16550
// driver.
func (u *FIFOUART[R]) PutChar(c byte) {
	if c == '\n' {
		u.WriteByte('\r')
	}
	u.WriteByte(c)
}

// WriteByteBounded gives up after maxPolls full-FIFO status reads and
// reports ErrTxStalled instead of hanging.
func (u *FIFOUART[R]) WriteByteBounded(b byte, maxPolls int) error {
	for i := 0; i < maxPolls; i++ {
		if u.regs.ReadReg32(RegFIFOStatus)&FIFOStatusTxFull == 0 {
			u.regs.WriteReg32(RegFIFOTx, uint32(b))
			return nil
		}
	}
	return ErrTxStalled
}
