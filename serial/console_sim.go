// serial/console_sim.go

//go:build !ara

package serial

// Console backend for simulation and host builds: no hardware, writes
// land in a capture cell the harness can trap.

// Output is the process-wide capture cell.
var Output = &Capture{}

// Init is a no-op: the simulated sink needs no setup.
func Init() {}

func putByte(b byte) { Output.WriteByte(b) }
