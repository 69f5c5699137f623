package cpu

import "fmt"

// and sets the accumulator to A AND value.
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(value uint8) {
	c.A &= value
	c.setFlags(c.A == 0, false, true, false)
}

// or sets the accumulator to A OR value.
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(value uint8) {
	c.A |= value
	c.setFlags(c.A == 0, false, false, false)
}

// xor sets the accumulator to A XOR value.
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(value uint8) {
	c.A ^= value
	c.setFlags(c.A == 0, false, false, false)
}

func init() {
	for i := uint8(0); i < 8; i++ {
		i := i
		if i == 6 {
			DefineInstruction(0xA6, "AND (HL)", 2, func(c *CPU) { c.and(c.readByte(c.HL.Uint16())) })
			DefineInstruction(0xAE, "XOR (HL)", 2, func(c *CPU) { c.xor(c.readByte(c.HL.Uint16())) })
			DefineInstruction(0xB6, "OR (HL)", 2, func(c *CPU) { c.or(c.readByte(c.HL.Uint16())) })
			continue
		}
		DefineInstruction(0xA0+i, fmt.Sprintf("AND %s", registerName(i)), 1, func(c *CPU) {
			c.and(*c.registerIndex(i))
		})
		DefineInstruction(0xA8+i, fmt.Sprintf("XOR %s", registerName(i)), 1, func(c *CPU) {
			c.xor(*c.registerIndex(i))
		})
		DefineInstruction(0xB0+i, fmt.Sprintf("OR %s", registerName(i)), 1, func(c *CPU) {
			c.or(*c.registerIndex(i))
		})
	}

	DefineInstruction(0xE6, "AND n", 2, func(c *CPU) { c.and(c.readOperand()) })
	DefineInstruction(0xEE, "XOR n", 2, func(c *CPU) { c.xor(c.readOperand()) })
	DefineInstruction(0xF6, "OR n", 2, func(c *CPU) { c.or(c.readOperand()) })
}
