// aractl talks to an Ara FPGA board from the host: it loads binaries
// into L2 over the debug module's system bus, dumps target memory, and
// attaches to the serial console.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
)

type Context struct {
	OpenOCD string

	dmi *DMIClient
}

// DMI lazily connects to OpenOCD; the monitor command never needs it.
func (c *Context) DMI() (*DMIClient, error) {
	if c.dmi == nil {
		dmi, err := DialDMI(c.OpenOCD)
		if err != nil {
			return nil, fmt.Errorf("connect to OpenOCD at %s: %w", c.OpenOCD, err)
		}
		c.dmi = dmi
	}
	return c.dmi, nil
}

var CLI struct {
	OpenOCD string `optional help:"OpenOCD telnet address." default:"localhost:4444"`

	Load    LoadCmd    `cmd help:"Load a binary into target memory over the system bus."`
	Read    ReadCmd    `cmd help:"Read and dump target memory."`
	Monitor MonitorCmd `cmd help:"Attach to the board's serial console."`
}

func main() {
	k, err := kong.New(&CLI)
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, err := k.Parse(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		return
	}

	c := &Context{OpenOCD: CLI.OpenOCD}
	defer func() {
		if c.dmi != nil {
			c.dmi.Close()
		}
	}()

	err = ctx.Run(c)
	ctx.FatalIfErrorf(err)
}

// parseAddr accepts decimal or 0x-prefixed target addresses.
func parseAddr(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("bad address %q: %w", s, err)
	}
	return v, nil
}
