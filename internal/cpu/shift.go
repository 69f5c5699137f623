package cpu

import "fmt"

// shiftLeftArithmetic shifts value left by one bit. Bit 7 moves to the
// carry flag and bit 0 becomes zero.
func (c *CPU) shiftLeftArithmetic(value uint8) uint8 {
	shifted := value << 1
	c.setFlags(shifted == 0, false, false, value&0x80 != 0)
	return shifted
}

// shiftRightArithmetic shifts value right by one bit, keeping the sign
// bit. Bit 0 moves to the carry flag.
func (c *CPU) shiftRightArithmetic(value uint8) uint8 {
	shifted := value>>1 | value&0x80
	c.setFlags(shifted == 0, false, false, value&1 != 0)
	return shifted
}

// shiftRightLogical shifts value right by one bit. Bit 0 moves to the
// carry flag and bit 7 becomes zero.
func (c *CPU) shiftRightLogical(value uint8) uint8 {
	shifted := value >> 1
	c.setFlags(shifted == 0, false, false, value&1 != 0)
	return shifted
}

// swap exchanges the upper and lower nibbles of value.
func (c *CPU) swap(value uint8) uint8 {
	swapped := value<<4 | value>>4
	c.setFlags(swapped == 0, false, false, false)
	return swapped
}

func init() {
	for base, shift := range map[uint8]struct {
		name string
		fn   func(*CPU, uint8) uint8
	}{
		0x20: {"SLA", (*CPU).shiftLeftArithmetic},
		0x28: {"SRA", (*CPU).shiftRightArithmetic},
		0x30: {"SWAP", (*CPU).swap},
		0x38: {"SRL", (*CPU).shiftRightLogical},
	} {
		base := base
		shift := shift
		for i := uint8(0); i < 8; i++ {
			i := i
			name := fmt.Sprintf("%s %s", shift.name, registerName(i))
			if i == 6 {
				DefineInstructionCB(base+i, name, 4, func(c *CPU) {
					c.writeByte(c.HL.Uint16(), shift.fn(c, c.readByte(c.HL.Uint16())))
				})
				continue
			}
			DefineInstructionCB(base+i, name, 2, func(c *CPU) {
				reg := c.registerIndex(i)
				*reg = shift.fn(c, *reg)
			})
		}
	}
}
