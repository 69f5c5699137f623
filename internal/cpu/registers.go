package cpu

import "github.com/thelolagemann/sm83/internal/types"

// registerIndex returns the register addressed by the 3-bit field used
// throughout the opcode map. Index 6 is the (HL) slot and has no
// backing register; callers special-case it.
func (c *CPU) registerIndex(index uint8) *types.Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic("invalid register index")
}

// registerPair returns the pair addressed by the 2-bit field of the
// 16-bit opcode rows: BC, DE or HL.
func (c *CPU) registerPair(index uint8) *types.RegisterPair {
	switch index {
	case 0:
		return c.BC
	case 1:
		return c.DE
	case 2:
		return c.HL
	}
	panic("invalid register pair index")
}

func registerName(index uint8) string {
	return [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}[index]
}
