package cpu

import "fmt"

// add adds value (and the carry flag, when withCarry is set) to the
// accumulator.
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(value uint8, withCarry bool) {
	var carry uint8
	if withCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(value) + uint16(carry)
	c.setFlags(uint8(sum) == 0, false, c.A&0xF+value&0xF+carry > 0xF, sum > 0xFF)
	c.A = uint8(sum)
}

// sub subtracts value (and the carry flag, when withCarry is set) from
// the accumulator.
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(value uint8, withCarry bool) {
	var carry uint8
	if withCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	diff := int16(c.A) - int16(value) - int16(carry)
	c.setFlags(uint8(diff) == 0, true, int16(c.A&0xF)-int16(value&0xF)-int16(carry) < 0, diff < 0)
	c.A = uint8(diff)
}

// compare performs a subtraction of value from the accumulator for the
// flag effects alone; the accumulator is left untouched.
func (c *CPU) compare(value uint8) {
	diff := int16(c.A) - int16(value)
	c.setFlags(uint8(diff) == 0, true, int16(c.A&0xF)-int16(value&0xF) < 0, diff < 0)
}

// increment returns value incremented by one. The carry flag is
// preserved.
func (c *CPU) increment(value uint8) uint8 {
	value++
	var adopt uint8
	if value == 0 {
		adopt |= FlagZero
	}
	if value&0xF == 0 {
		adopt |= FlagHalfCarry
	}
	c.applyFlags(adopt, FlagZero|FlagHalfCarry, 0, FlagSubtract)
	return value
}

// decrement returns value decremented by one. The carry flag is
// preserved.
func (c *CPU) decrement(value uint8) uint8 {
	value--
	var adopt uint8
	if value == 0 {
		adopt |= FlagZero
	}
	if value&0xF == 0xF {
		adopt |= FlagHalfCarry
	}
	c.applyFlags(adopt, FlagZero|FlagHalfCarry, FlagSubtract, 0)
	return value
}

// addUint16 adds two 16-bit values, setting the half carry flag on a
// carry out of bit 11. The zero flag is preserved.
func (c *CPU) addUint16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	var adopt uint8
	if a&0xFFF+b&0xFFF > 0xFFF {
		adopt |= FlagHalfCarry
	}
	if sum > 0xFFFF {
		adopt |= FlagCarry
	}
	c.applyFlags(adopt, FlagHalfCarry|FlagCarry, 0, FlagSubtract)
	return uint16(sum)
}

// addSPSigned adds the next operand byte, taken as a signed offset, to
// SP. The half carry and carry flags come from the unsigned low-byte
// addition.
func (c *CPU) addSPSigned() uint16 {
	value := c.readOperand()
	result := c.SP + uint16(int8(value))
	var adopt uint8
	if c.SP&0xF+uint16(value)&0xF > 0xF {
		adopt |= FlagHalfCarry
	}
	if c.SP&0xFF+uint16(value)&0xFF > 0xFF {
		adopt |= FlagCarry
	}
	c.applyFlags(adopt, FlagHalfCarry|FlagCarry, 0, FlagZero|FlagSubtract)
	return result
}

func init() {
	// INC/DEC r and the register column of the 8-bit arithmetic block.
	for i := uint8(0); i < 8; i++ {
		i := i
		if i == 6 {
			DefineInstruction(0x34, "INC (HL)", 3, func(c *CPU) {
				c.writeByte(c.HL.Uint16(), c.increment(c.readByte(c.HL.Uint16())))
			})
			DefineInstruction(0x35, "DEC (HL)", 3, func(c *CPU) {
				c.writeByte(c.HL.Uint16(), c.decrement(c.readByte(c.HL.Uint16())))
			})
			DefineInstruction(0x86, "ADD A, (HL)", 2, func(c *CPU) { c.add(c.readByte(c.HL.Uint16()), false) })
			DefineInstruction(0x8E, "ADC A, (HL)", 2, func(c *CPU) { c.add(c.readByte(c.HL.Uint16()), true) })
			DefineInstruction(0x96, "SUB (HL)", 2, func(c *CPU) { c.sub(c.readByte(c.HL.Uint16()), false) })
			DefineInstruction(0x9E, "SBC A, (HL)", 2, func(c *CPU) { c.sub(c.readByte(c.HL.Uint16()), true) })
			DefineInstruction(0xBE, "CP (HL)", 2, func(c *CPU) { c.compare(c.readByte(c.HL.Uint16())) })
			continue
		}
		DefineInstruction(0x04+i*8, fmt.Sprintf("INC %s", registerName(i)), 1, func(c *CPU) {
			reg := c.registerIndex(i)
			*reg = c.increment(*reg)
		})
		DefineInstruction(0x05+i*8, fmt.Sprintf("DEC %s", registerName(i)), 1, func(c *CPU) {
			reg := c.registerIndex(i)
			*reg = c.decrement(*reg)
		})
		DefineInstruction(0x80+i, fmt.Sprintf("ADD A, %s", registerName(i)), 1, func(c *CPU) {
			c.add(*c.registerIndex(i), false)
		})
		DefineInstruction(0x88+i, fmt.Sprintf("ADC A, %s", registerName(i)), 1, func(c *CPU) {
			c.add(*c.registerIndex(i), true)
		})
		DefineInstruction(0x90+i, fmt.Sprintf("SUB %s", registerName(i)), 1, func(c *CPU) {
			c.sub(*c.registerIndex(i), false)
		})
		DefineInstruction(0x98+i, fmt.Sprintf("SBC A, %s", registerName(i)), 1, func(c *CPU) {
			c.sub(*c.registerIndex(i), true)
		})
		DefineInstruction(0xB8+i, fmt.Sprintf("CP %s", registerName(i)), 1, func(c *CPU) {
			c.compare(*c.registerIndex(i))
		})
	}

	DefineInstruction(0xC6, "ADD A, n", 2, func(c *CPU) { c.add(c.readOperand(), false) })
	DefineInstruction(0xCE, "ADC A, n", 2, func(c *CPU) { c.add(c.readOperand(), true) })
	DefineInstruction(0xD6, "SUB n", 2, func(c *CPU) { c.sub(c.readOperand(), false) })
	DefineInstruction(0xDE, "SBC A, n", 2, func(c *CPU) { c.sub(c.readOperand(), true) })
	DefineInstruction(0xFE, "CP n", 2, func(c *CPU) { c.compare(c.readOperand()) })

	// 16-bit arithmetic on the register pairs and SP.
	for i, pair := range []string{"BC", "DE", "HL", "SP"} {
		i := uint8(i)
		if pair == "SP" {
			DefineInstruction(0x33, "INC SP", 2, func(c *CPU) { c.SP++ })
			DefineInstruction(0x3B, "DEC SP", 2, func(c *CPU) { c.SP-- })
			DefineInstruction(0x39, "ADD HL, SP", 2, func(c *CPU) {
				c.HL.SetUint16(c.addUint16(c.HL.Uint16(), c.SP))
			})
			continue
		}
		DefineInstruction(0x03+i*16, fmt.Sprintf("INC %s", pair), 2, func(c *CPU) {
			c.registerPair(i).Increment()
		})
		DefineInstruction(0x0B+i*16, fmt.Sprintf("DEC %s", pair), 2, func(c *CPU) {
			c.registerPair(i).Decrement()
		})
		DefineInstruction(0x09+i*16, fmt.Sprintf("ADD HL, %s", pair), 2, func(c *CPU) {
			c.HL.SetUint16(c.addUint16(c.HL.Uint16(), c.registerPair(i).Uint16()))
		})
	}

	DefineInstruction(0xE8, "ADD SP, e", 4, func(c *CPU) { c.SP = c.addSPSigned() })
}
