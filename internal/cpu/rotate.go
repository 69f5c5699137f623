package cpu

import "fmt"

// rotateLeft rotates value left by one bit, copying bit 7 into both the
// carry flag and bit 0.
func (c *CPU) rotateLeft(value uint8) uint8 {
	carry := value >> 7
	rotated := value<<1 | carry
	c.setFlags(rotated == 0, false, false, carry == 1)
	return rotated
}

// rotateRight rotates value right by one bit, copying bit 0 into both
// the carry flag and bit 7.
func (c *CPU) rotateRight(value uint8) uint8 {
	carry := value & 1
	rotated := value>>1 | carry<<7
	c.setFlags(rotated == 0, false, false, carry == 1)
	return rotated
}

// rotateLeftThroughCarry rotates value left by one bit through the
// carry flag: the old carry becomes bit 0 and bit 7 becomes the new
// carry.
func (c *CPU) rotateLeftThroughCarry(value uint8) uint8 {
	rotated := value << 1
	if c.isFlagSet(FlagCarry) {
		rotated |= 1
	}
	c.setFlags(rotated == 0, false, false, value&0x80 != 0)
	return rotated
}

// rotateRightThroughCarry rotates value right by one bit through the
// carry flag.
func (c *CPU) rotateRightThroughCarry(value uint8) uint8 {
	rotated := value >> 1
	if c.isFlagSet(FlagCarry) {
		rotated |= 0x80
	}
	c.setFlags(rotated == 0, false, false, value&1 != 0)
	return rotated
}

func init() {
	// The accumulator rotates always clear the zero flag.
	DefineInstruction(0x07, "RLCA", 1, func(c *CPU) {
		c.A = c.rotateLeft(c.A)
		c.clearFlag(FlagZero)
	})
	DefineInstruction(0x0F, "RRCA", 1, func(c *CPU) {
		c.A = c.rotateRight(c.A)
		c.clearFlag(FlagZero)
	})
	DefineInstruction(0x17, "RLA", 1, func(c *CPU) {
		c.A = c.rotateLeftThroughCarry(c.A)
		c.clearFlag(FlagZero)
	})
	DefineInstruction(0x1F, "RRA", 1, func(c *CPU) {
		c.A = c.rotateRightThroughCarry(c.A)
		c.clearFlag(FlagZero)
	})

	for base, rotate := range map[uint8]struct {
		name string
		fn   func(*CPU, uint8) uint8
	}{
		0x00: {"RLC", (*CPU).rotateLeft},
		0x08: {"RRC", (*CPU).rotateRight},
		0x10: {"RL", (*CPU).rotateLeftThroughCarry},
		0x18: {"RR", (*CPU).rotateRightThroughCarry},
	} {
		base := base
		rotate := rotate
		for i := uint8(0); i < 8; i++ {
			i := i
			name := fmt.Sprintf("%s %s", rotate.name, registerName(i))
			if i == 6 {
				DefineInstructionCB(base+i, name, 4, func(c *CPU) {
					c.writeByte(c.HL.Uint16(), rotate.fn(c, c.readByte(c.HL.Uint16())))
				})
				continue
			}
			DefineInstructionCB(base+i, name, 2, func(c *CPU) {
				reg := c.registerIndex(i)
				*reg = rotate.fn(c, *reg)
			})
		}
	}
}
