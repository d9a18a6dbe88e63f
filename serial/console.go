// serial/console.go

package serial

// PutChar is the character-output entry point the formatted-output layer
// calls. It blocks until the byte is physically transmitted (hardware
// builds) or captured (default build), and expands LF to CR+LF so no
// caller ever manages line endings. The backend behind putByte is chosen
// at build time; there is no per-call dispatch here.
func PutChar(c byte) {
	if c == '\n' {
		putByte('\r')
	}
	putByte(c)
}

// WriteString sends s byte by byte through PutChar.
func WriteString(s string) {
	for i := 0; i < len(s); i++ {
		PutChar(s[i])
	}
}

// Writer adapts the console to io.Writer for code that wants to hand the
// UART to a formatter. Write cannot fail: a wedged transmitter hangs
// rather than erroring, per the PutChar contract.
type Writer struct{}

func (Writer) Write(p []byte) (int, error) {
	for _, b := range p {
		PutChar(b)
	}
	return len(p), nil
}
