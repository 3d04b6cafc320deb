// Package trace parses the textual execution traces emitted by the CPU
// simulator testbench.
package trace

import "fmt"

// Record is one simulated cycle as reported by a TRACE line.
type Record struct {
	Cycle  int64
	PC     int64
	Opcode uint32
	ALU    int64
	Acc    int64
	RS1    int64
	RS2    int64
}

// String formats the record the way the testbench prints it.
func (r Record) String() string {
	return fmt.Sprintf("TRACE cycle=%d pc=%d opcode=%x alu=%d acc=%d rs1=%d rs2=%d",
		r.Cycle, r.PC, r.Opcode, r.ALU, r.Acc, r.RS1, r.RS2)
}

// Signal names a numeric field of a Record that can be plotted over cycles.
type Signal int

const (
	SignalPC Signal = iota
	SignalALU
	SignalAcc
)

var signalNames = [...]string{
	SignalPC:  "Program Counter",
	SignalALU: "ALU Result",
	SignalAcc: "Accumulator",
}

func (s Signal) String() string {
	if s < 0 || int(s) >= len(signalNames) {
		return fmt.Sprintf("Signal(%d)", int(s))
	}
	return signalNames[s]
}

// Value returns the sample of signal s carried by r.
func (r Record) Value(s Signal) int64 {
	switch s {
	case SignalPC:
		return r.PC
	case SignalALU:
		return r.ALU
	case SignalAcc:
		return r.Acc
	default:
		return 0
	}
}
