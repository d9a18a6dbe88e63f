//go:build ara

// Probe prints the line configuration and a character sweep so a
// terminal (or a scope on the TX pin) can confirm the programmed rate.
package main

import "github.com/patrickerich/pulp-ara/serial"

func main() {
	serial.Init()

	serial.WriteString("uart probe\n")
	serial.WriteString("  clock   = " + utoa(serial.ClockHz) + "\n")
	serial.WriteString("  baud    = " + utoa(serial.Baud) + "\n")
	serial.WriteString("  divisor = " + utoa(uint32(serial.Divisor(serial.ClockHz, serial.Baud))) + "\n")

	for pass := 0; ; pass++ {
		serial.WriteString("sweep " + utoa(uint32(pass)) + ": ")
		for c := byte(' '); c <= '~'; c++ {
			serial.PutChar(c)
		}
		serial.PutChar('\n')
	}
}

// --- tiny helpers (no fmt) ---

func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
