package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

type LoadCmd struct {
	Filename string `arg name:"filename" help:"Binary image to load."`
	Base     string `optional help:"Load address in L2." default:"0x80000000"`
	Verify   bool   `optional help:"Read every word back and compare."`
}

func (l *LoadCmd) Run(c *Context) error {
	base, err := parseAddr(l.Base)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(l.Filename)
	if err != nil {
		return err
	}
	// The bus moves whole words; pad the tail.
	for len(data)%4 != 0 {
		data = append(data, 0)
	}

	dmi, err := c.DMI()
	if err != nil {
		return err
	}
	if err := dmi.SetupSBA(base); err != nil {
		return err
	}

	words := len(data) / 4
	fmt.Printf("loading %s: %d bytes to 0x%08x\n", l.Filename, len(data), base)

	for i := 0; i < words; i++ {
		addr := base + uint64(i)*4
		w := word(data[i*4:])
		if err := dmi.StoreWord(addr, w); err != nil {
			return fmt.Errorf("store at 0x%08x: %w", addr, err)
		}
		if i%64 == 63 || i == words-1 {
			fmt.Printf("\r  %d/%d words", i+1, words)
		}
	}
	fmt.Println()

	if l.Verify {
		bad := 0
		for i := 0; i < words; i++ {
			addr := base + uint64(i)*4
			got, err := dmi.LoadWord(addr)
			if err != nil {
				return fmt.Errorf("verify at 0x%08x: %w", addr, err)
			}
			if want := word(data[i*4:]); got != want {
				color.New(color.FgRed).Printf("  mismatch at 0x%08x: got 0x%08x want 0x%08x\n",
					addr, got, want)
				bad++
			}
		}
		if bad > 0 {
			return fmt.Errorf("verify failed: %d words differ", bad)
		}
		color.New(color.FgGreen).Println("verify ok")
	}

	color.New(color.FgGreen).Printf("loaded %d words\n", words)
	return nil
}

// word assembles a little-endian 32-bit word, matching the target's
// memory order.
func word(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
