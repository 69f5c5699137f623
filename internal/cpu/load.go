package cpu

import "fmt"

func init() {
	// LD r, r' block (0x40-0x7F). 0x76 is HALT and is defined
	// elsewhere.
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			dst, src := dst, src
			opcode := 0x40 + dst*8 + src
			if opcode == 0x76 {
				continue
			}
			name := fmt.Sprintf("LD %s, %s", registerName(dst), registerName(src))
			switch {
			case dst == 6:
				DefineInstruction(opcode, name, 2, func(c *CPU) {
					c.writeByte(c.HL.Uint16(), *c.registerIndex(src))
				})
			case src == 6:
				DefineInstruction(opcode, name, 2, func(c *CPU) {
					*c.registerIndex(dst) = c.readByte(c.HL.Uint16())
				})
			default:
				DefineInstruction(opcode, name, 1, func(c *CPU) {
					*c.registerIndex(dst) = *c.registerIndex(src)
				})
			}
		}
	}

	// LD r, n
	for i := uint8(0); i < 8; i++ {
		i := i
		if i == 6 {
			DefineInstruction(0x36, "LD (HL), n", 3, func(c *CPU) {
				c.writeByte(c.HL.Uint16(), c.readOperand())
			})
			continue
		}
		DefineInstruction(0x06+i*8, fmt.Sprintf("LD %s, n", registerName(i)), 2, func(c *CPU) {
			*c.registerIndex(i) = c.readOperand()
		})
	}

	// LD rr, nn
	for i, pair := range []string{"BC", "DE", "HL"} {
		i := uint8(i)
		DefineInstruction(0x01+i*16, fmt.Sprintf("LD %s, nn", pair), 3, func(c *CPU) {
			c.registerPair(i).SetUint16(c.readOperand16())
		})
	}
	DefineInstruction(0x31, "LD SP, nn", 3, func(c *CPU) { c.SP = c.readOperand16() })

	// Indirect accumulator loads.
	DefineInstruction(0x02, "LD (BC), A", 2, func(c *CPU) { c.writeByte(c.BC.Uint16(), c.A) })
	DefineInstruction(0x12, "LD (DE), A", 2, func(c *CPU) { c.writeByte(c.DE.Uint16(), c.A) })
	DefineInstruction(0x22, "LD (HL+), A", 2, func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.Increment()
	})
	DefineInstruction(0x32, "LD (HL-), A", 2, func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.Decrement()
	})
	DefineInstruction(0x0A, "LD A, (BC)", 2, func(c *CPU) { c.A = c.readByte(c.BC.Uint16()) })
	DefineInstruction(0x1A, "LD A, (DE)", 2, func(c *CPU) { c.A = c.readByte(c.DE.Uint16()) })
	DefineInstruction(0x2A, "LD A, (HL+)", 2, func(c *CPU) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.Increment()
	})
	DefineInstruction(0x3A, "LD A, (HL-)", 2, func(c *CPU) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.Decrement()
	})

	// LD (nn), SP stores SP little-endian.
	DefineInstruction(0x08, "LD (nn), SP", 5, func(c *CPU) {
		address := c.readOperand16()
		c.writeByte(address, uint8(c.SP))
		c.writeByte(address+1, uint8(c.SP>>8))
	})

	// High-page loads.
	DefineInstruction(0xE0, "LDH (n), A", 3, func(c *CPU) {
		c.writeByte(0xFF00+uint16(c.readOperand()), c.A)
	})
	DefineInstruction(0xF0, "LDH A, (n)", 3, func(c *CPU) {
		c.A = c.readByte(0xFF00 + uint16(c.readOperand()))
	})
	DefineInstruction(0xE2, "LD (C), A", 2, func(c *CPU) { c.writeByte(0xFF00+uint16(c.C), c.A) })
	DefineInstruction(0xF2, "LD A, (C)", 2, func(c *CPU) { c.A = c.readByte(0xFF00 + uint16(c.C)) })

	DefineInstruction(0xEA, "LD (nn), A", 4, func(c *CPU) { c.writeByte(c.readOperand16(), c.A) })
	DefineInstruction(0xFA, "LD A, (nn)", 4, func(c *CPU) { c.A = c.readByte(c.readOperand16()) })

	// Stack operations. POP AF masks the low nibble of F, which never
	// holds flag state.
	for i, pair := range []string{"BC", "DE", "HL"} {
		i := uint8(i)
		DefineInstruction(0xC1+i*16, fmt.Sprintf("POP %s", pair), 3, func(c *CPU) {
			c.registerPair(i).SetUint16(c.popStack())
		})
		DefineInstruction(0xC5+i*16, fmt.Sprintf("PUSH %s", pair), 4, func(c *CPU) {
			c.pushStack(c.registerPair(i).Uint16())
		})
	}
	DefineInstruction(0xF1, "POP AF", 3, func(c *CPU) {
		value := c.popStack()
		c.A = uint8(value >> 8)
		c.F = uint8(value) & 0xF0
	})
	DefineInstruction(0xF5, "PUSH AF", 4, func(c *CPU) {
		c.pushStack(uint16(c.A)<<8 | uint16(c.F))
	})

	DefineInstruction(0xF8, "LD HL, SP+e", 3, func(c *CPU) { c.HL.SetUint16(c.addSPSigned()) })
	DefineInstruction(0xF9, "LD SP, HL", 2, func(c *CPU) { c.SP = c.HL.Uint16() })
}
