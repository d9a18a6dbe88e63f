package main

import (
	"fmt"
	"time"

	"github.com/inancgumus/screen"
)

type ReadCmd struct {
	Addr   string `arg name:"addr" help:"Target address to read from."`
	Amount int    `arg name:"amount" optional default:"64" help:"Number of bytes to read."`
	Loop   bool   `optional help:"Redraw continuously, marking bytes that changed."`
}

func (r *ReadCmd) Run(c *Context) error {
	addr, err := parseAddr(r.Addr)
	if err != nil {
		return err
	}
	if r.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	dmi, err := c.DMI()
	if err != nil {
		return err
	}
	if err := dmi.SetupSBA(addr); err != nil {
		return err
	}

	words := (r.Amount + 3) / 4
	var prev []byte
	mark := make([]bool, words*4)

	for {
		start := time.Now()

		buf := make([]byte, 0, words*4)
		for i := 0; i < words; i++ {
			w, err := dmi.LoadWord(addr + uint64(i)*4)
			if err != nil {
				return fmt.Errorf("read at 0x%08x: %w", addr+uint64(i)*4, err)
			}
			buf = append(buf, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
		}
		buf = buf[:r.Amount]

		if r.Loop {
			screen.Clear()
			screen.MoveTopLeft()
			if prev != nil {
				for i := range prev {
					if prev[i] != buf[i] {
						mark[i] = true
					}
				}
			}
		}
		fmt.Print(hexdump(int(addr), buf, mark[:len(buf)]))

		if !r.Loop {
			return nil
		}
		prev = buf

		// Cap the redraw rate; SBA round trips already dominate.
		if d := time.Since(start); d < 200*time.Millisecond {
			time.Sleep(200*time.Millisecond - d)
		}
	}
}
