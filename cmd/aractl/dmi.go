package main

// DMI register access over OpenOCD's telnet interface. The RISC-V debug
// module's system bus access block (SBCS/SBADDRESS/SBDATA) moves words
// in and out of L2 without involving the core, so a binary can be loaded
// while the core sits in reset.

import (
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Debug module registers reachable through dmi_read/dmi_write.
const (
	regSBCS       = 0x38
	regSBAddress0 = 0x39
	regSBAddress1 = 0x3A
	regSBData0    = 0x3C
)

// sbcsConfig selects 32-bit accesses (sbaccess=2) with read-on-address-
// write (sbreadonaddr=1). Address auto-increment is deliberately left
// off: the loader advances the address itself, which also works with
// older bitstreams and conservative SBA arbiters.
const sbcsConfig = 0x00147000

type DMIClient struct {
	conn net.Conn
}

// DialDMI connects to OpenOCD's telnet port and discards the banner.
func DialDMI(addr string) (*DMIClient, error) {
	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		return nil, err
	}
	c := &DMIClient{conn: conn}
	c.collect(300 * time.Millisecond)
	return c, nil
}

func (c *DMIClient) Close() error { return c.conn.Close() }

// collect reads whatever the server has produced within d. The telnet
// interface has no framing; a short deadline stands in for "response
// complete", same as the reference loader script.
func (c *DMIClient) collect(d time.Duration) string {
	var out []byte
	buf := make([]byte, 4096)
	c.conn.SetReadDeadline(time.Now().Add(d))
	for {
		n, err := c.conn.Read(buf)
		out = append(out, buf[:n]...)
		if err != nil {
			break
		}
	}
	c.conn.SetReadDeadline(time.Time{})
	return string(out)
}

// WriteReg issues a dmi_write and drains the echo to keep the stream in
// sync for the next command.
func (c *DMIClient) WriteReg(reg uint32, val uint32) error {
	if _, err := fmt.Fprintf(c.conn, "riscv dmi_write 0x%02x 0x%08x\n", reg, val); err != nil {
		return err
	}
	c.collect(100 * time.Millisecond)
	return nil
}

// ReadReg issues a dmi_read and parses the value out of the response.
func (c *DMIClient) ReadReg(reg uint32) (uint32, error) {
	if _, err := fmt.Fprintf(c.conn, "riscv dmi_read 0x%02x\n", reg); err != nil {
		return 0, err
	}
	resp := c.collect(250 * time.Millisecond)
	v, ok := parseDMIValue(resp)
	if !ok {
		return 0, fmt.Errorf("dmi_read 0x%02x: no value in response %q", reg, resp)
	}
	return v, nil
}

var hexWord = regexp.MustCompile(`^0x([0-9a-fA-F]+)$`)

// parseDMIValue extracts the standalone hex word from a telnet response,
// skipping the echoed command and the prompt.
func parseDMIValue(resp string) (uint32, bool) {
	for _, line := range strings.Split(resp, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == ">" {
			continue
		}
		if strings.Contains(line, "dmi_read") || strings.Contains(line, "dmi_write") {
			continue
		}
		m := hexWord.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		v, err := strconv.ParseUint(m[1], 16, 32)
		if err != nil {
			continue
		}
		return uint32(v), true
	}
	return 0, false
}

// SetupSBA programs SBCS and the 64-bit start address.
func (c *DMIClient) SetupSBA(base uint64) error {
	if err := c.WriteReg(regSBCS, sbcsConfig); err != nil {
		return err
	}
	if err := c.WriteReg(regSBAddress0, uint32(base)); err != nil {
		return err
	}
	return c.WriteReg(regSBAddress1, uint32(base>>32))
}

// StoreWord writes one 32-bit word at addr. The address is re-programmed
// every time rather than relying on auto-increment.
func (c *DMIClient) StoreWord(addr uint64, v uint32) error {
	if err := c.WriteReg(regSBAddress0, uint32(addr)); err != nil {
		return err
	}
	return c.WriteReg(regSBData0, v)
}

// LoadWord reads one 32-bit word at addr. With sbreadonaddr set, writing
// the address triggers the bus read; the data register then holds the
// result.
func (c *DMIClient) LoadWord(addr uint64) (uint32, error) {
	if err := c.WriteReg(regSBAddress0, uint32(addr)); err != nil {
		return 0, err
	}
	return c.ReadReg(regSBData0)
}
