// serial/divisor.go

package serial

// Divisor maps a peripheral clock and target baud rate to the 16-bit
// value programmed into the divisor latch. It rounds to the nearest
// integer rather than truncating, which keeps the cumulative bit-timing
// error over a character frame as small as possible.
//
// baud must be greater than zero; the result is undefined otherwise.
// There is no runtime guard: configurations are fixed at build time and
// the transmit path cannot afford one. A result of zero means the
// requested baud is too fast for the clock (the latch needs at least 1).
func Divisor(clockHz, baud uint32) uint16 {
	return uint16((clockHz + 8*baud) / (16 * baud))
}
