// serial/uart16550.go

package serial

import "errors"

// ErrTxStalled is returned by WriteByteBounded when the transmitter
// never reported ready within the poll budget.
var ErrTxStalled = errors.New("serial: transmitter not ready")

// Regs is the register-access primitive the 16550 driver is written
// against: one read or one write of one byte-wide register, exactly as
// issued, in program order. It is a type parameter rather than an
// interface field so the backend is resolved at compile time and the
// transmit path carries no dynamic dispatch.
type Regs interface {
	ReadReg(off uint32) uint8
	WriteReg(off uint32, v uint8)
}

// UART owns a 16550-compatible register block. Exactly one live handle
// may exist per base address for the lifetime of the process; there is
// no teardown. The driver takes no lock: callers in a multi-tasking
// environment must serialize access themselves.
type UART[R Regs] struct {
	regs R
	cfg  Config
}

// NewUART wraps a register block in a driver handle. The handle is inert
// until Init runs.
func NewUART[R Regs](regs R) *UART[R] {
	return &UART[R]{regs: regs}
}

// Init programs the divisor, frame format and FIFOs:
//
//  1. open the divisor latch (LCR.DLAB=1),
//  2. write the divisor low then high byte,
//  3. close the latch and set 8N1 in the same LCR write,
//  4. enable and reset both FIFOs.
//
// It must run once before the first WriteByte. Re-running it with the
// same configuration leaves the register state unchanged.
func (u *UART[R]) Init(cfg Config) {
	if cfg.ClockHz == 0 {
		cfg.ClockHz = ClockHz
	}
	if cfg.Baud == 0 {
		cfg.Baud = Baud
	}
	u.cfg = cfg

	div := Divisor(cfg.ClockHz, cfg.Baud)

	u.regs.WriteReg(RegLCR, LCRDLAB)
	u.regs.WriteReg(RegDLL, uint8(div))
	u.regs.WriteReg(RegDLM, uint8(div>>8))
	u.regs.WriteReg(RegLCR, LCR8N1)
	u.regs.WriteReg(RegFCR, FCREnable|FCRClearRX|FCRClearTX)
}

// WriteByte transmits one raw byte. It spins on LSR until the transmit
// holding register is empty, then performs exactly one THR write. There
// is no timeout: an unresponsive peripheral hangs the caller, which is
// the intended fail-stop for fixed boot hardware. Use WriteByteBounded
// where a stall must surface as an error instead.
func (u *UART[R]) WriteByte(b byte) {
	for u.regs.ReadReg(RegLSR)&LSRTHRE == 0 {
	}
	u.regs.WriteReg(RegTHR, b)
}

// PutChar transmits c, expanding LF to CR+LF so callers never manage
// line endings. Each of the two bytes of an expanded newline goes
// through the full ready-wait protocol.
func (u *UART[R]) PutChar(c byte) {
	if c == '\n' {
		u.WriteByte('\r')
	}
	u.WriteByte(c)
}

// WriteByteBounded is the hosted-friendly variant of WriteByte: it gives
// up after maxPolls status reads and reports ErrTxStalled instead of
// hanging. It is a separate entry point on purpose; the default keeps
// its hang-on-fault semantics.
func (u *UART[R]) WriteByteBounded(b byte, maxPolls int) error {
	for i := 0; i < maxPolls; i++ {
		if u.regs.ReadReg(RegLSR)&LSRTHRE != 0 {
			u.regs.WriteReg(RegTHR, b)
			return nil
		}
	}
	return ErrTxStalled
}
