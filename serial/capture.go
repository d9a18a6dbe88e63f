// serial/capture.go

package serial

// Capture is the simulated sink: a single one-byte cell overwritten on
// every write, the Go rendering of the fake_uart location a simulation
// testbench traps. Writes never block and there is nothing to
// initialize. It is not internally synchronized; concurrent writers need
// external coordination, same as the hardware handle.
type Capture struct {
	cell byte

	// Trap, when non-nil, observes every byte as it lands in the cell.
	// Harnesses install it to record the output stream; the driver never
	// calls anything else on it.
	Trap func(byte)
}

// WriteByte stores b in the cell, clobbering whatever was there.
func (c *Capture) WriteByte(b byte) {
	c.cell = b
	if c.Trap != nil {
		c.Trap(b)
	}
}

// Last returns the most recently captured byte.
func (c *Capture) Last() byte { return c.cell }
