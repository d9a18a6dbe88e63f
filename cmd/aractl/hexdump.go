package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// hexdump renders data in 16-byte rows with an ASCII gutter. Bytes whose
// mark entry is set print in red; mark may be nil.
func hexdump(offset int, data []byte, mark []bool) string {
	red := color.New(color.FgRed)
	var out strings.Builder

	for len(data) > 0 {
		l := len(data)
		if l > 16 {
			l = 16
		}
		row := data[:l]
		data = data[l:]
		var rowMark []bool
		if mark != nil {
			rowMark = mark[:l]
			mark = mark[l:]
		}

		var hexCol, asciiCol string
		for i := 0; i < 16; i++ {
			if i >= len(row) {
				hexCol += "   "
				asciiCol += " "
			} else {
				b := row[i]
				p := b
				if p < 32 || p > 126 {
					p = '.'
				}
				if rowMark != nil && rowMark[i] {
					hexCol += red.Sprintf("%02x ", b)
					asciiCol += red.Sprintf("%c", p)
				} else {
					hexCol += fmt.Sprintf("%02x ", b)
					asciiCol += fmt.Sprintf("%c", p)
				}
			}
			if i == 7 {
				hexCol += " "
			}
		}

		fmt.Fprintf(&out, "%08x  %s |%s|\n", offset, hexCol, asciiCol)
		offset += l
	}

	return out.String()
}
