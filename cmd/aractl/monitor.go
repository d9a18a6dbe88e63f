package main

import (
	"os"

	"github.com/fatih/color"
	"go.bug.st/serial"
)

type MonitorCmd struct {
	Port string `arg name:"port" help:"Host serial device, e.g. /dev/ttyUSB0."`
	Baud int    `optional help:"Line rate in bits per second." default:"115200"`
}

// Run streams console output from the board until the port goes away.
// The target already sends CRLF line endings, so bytes pass through
// untouched.
func (m *MonitorCmd) Run(c *Context) error {
	mode := &serial.Mode{BaudRate: m.Baud} // 8N1 is the library default
	port, err := serial.Open(m.Port, mode)
	if err != nil {
		return err
	}
	defer port.Close()

	color.New(color.FgCyan).Printf("monitoring %s at %d baud, ^C to quit\n", m.Port, m.Baud)

	buf := make([]byte, 256)
	for {
		n, err := port.Read(buf)
		if err != nil {
			return err
		}
		if n > 0 {
			os.Stdout.Write(buf[:n])
		}
	}
}
