package cpu

import "fmt"

// Snapshot captures the register file of the CPU at a point in time.
type Snapshot struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16
}

// Snapshot returns the current register state.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		A: c.A, F: c.F, B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L,
		SP: c.SP, PC: c.PC,
	}
}

// Restore forces the register state to s. The low nibble of F is
// masked off as it never holds flag state.
func (c *CPU) Restore(s Snapshot) {
	c.A, c.F = s.A, s.F&0xF0
	c.B, c.C = s.B, s.C
	c.D, c.E = s.D, s.E
	c.H, c.L = s.H, s.L
	c.SP, c.PC = s.SP, s.PC
}

// Compare checks the register state against want and returns one
// diagnostic per mismatching field. A nil return means the states
// match.
func (c *CPU) Compare(want Snapshot) []string {
	var diffs []string
	byteField := func(name string, got, want uint8) {
		if got != want {
			diffs = append(diffs, fmt.Sprintf("%s: got 0x%02X, want 0x%02X", name, got, want))
		}
	}
	byteField("A", c.A, want.A)
	byteField("F", c.F, want.F)
	byteField("B", c.B, want.B)
	byteField("C", c.C, want.C)
	byteField("D", c.D, want.D)
	byteField("E", c.E, want.E)
	byteField("H", c.H, want.H)
	byteField("L", c.L, want.L)
	if c.SP != want.SP {
		diffs = append(diffs, fmt.Sprintf("SP: got 0x%04X, want 0x%04X", c.SP, want.SP))
	}
	if c.PC != want.PC {
		diffs = append(diffs, fmt.Sprintf("PC: got 0x%04X, want 0x%04X", c.PC, want.PC))
	}
	return diffs
}
