package cpu

import "fmt"

// jumpRelative reads the signed displacement operand and, when
// condition holds, applies it to PC. The operand is consumed either
// way.
func (c *CPU) jumpRelative(condition bool) {
	offset := int8(c.readOperand())
	if condition {
		c.PC = uint16(int32(c.PC) + int32(offset))
		c.wait = 3
	}
}

// jumpAbsolute reads the 16-bit target and, when condition holds, jumps
// to it.
func (c *CPU) jumpAbsolute(condition bool) {
	address := c.readOperand16()
	if condition {
		c.PC = address
		c.wait = 4
	}
}

// call reads the 16-bit target and, when condition holds, pushes the
// return address and jumps.
func (c *CPU) call(condition bool) {
	address := c.readOperand16()
	if condition {
		c.pushStack(c.PC)
		c.PC = address
		c.wait = 6
	}
}

// retConditional returns from a subroutine when condition holds.
func (c *CPU) retConditional(condition bool) {
	if condition {
		c.PC = c.popStack()
		c.wait = 5
	}
}

// conditions maps the 2-bit condition field to its predicate.
var conditions = [4]struct {
	name string
	met  func(*CPU) bool
}{
	{"NZ", func(c *CPU) bool { return !c.isFlagSet(FlagZero) }},
	{"Z", func(c *CPU) bool { return c.isFlagSet(FlagZero) }},
	{"NC", func(c *CPU) bool { return !c.isFlagSet(FlagCarry) }},
	{"C", func(c *CPU) bool { return c.isFlagSet(FlagCarry) }},
}

func init() {
	DefineInstruction(0x18, "JR e", 2, func(c *CPU) { c.jumpRelative(true) })
	DefineInstruction(0xC3, "JP nn", 3, func(c *CPU) { c.jumpAbsolute(true) })
	DefineInstruction(0xCD, "CALL nn", 3, func(c *CPU) { c.call(true) })
	DefineInstruction(0xE9, "JP HL", 1, func(c *CPU) { c.PC = c.HL.Uint16() })
	DefineInstruction(0xC9, "RET", 4, func(c *CPU) { c.PC = c.popStack() })
	DefineInstruction(0xD9, "RETI", 4, func(c *CPU) {
		c.PC = c.popStack()
		c.ime = true
	})

	for i, cond := range conditions {
		i := uint8(i)
		cond := cond
		DefineInstruction(0x20+i*8, fmt.Sprintf("JR %s, e", cond.name), 2, func(c *CPU) {
			c.jumpRelative(cond.met(c))
		})
		DefineInstruction(0xC2+i*8, fmt.Sprintf("JP %s, nn", cond.name), 3, func(c *CPU) {
			c.jumpAbsolute(cond.met(c))
		})
		DefineInstruction(0xC4+i*8, fmt.Sprintf("CALL %s, nn", cond.name), 3, func(c *CPU) {
			c.call(cond.met(c))
		})
		DefineInstruction(0xC0+i*8, fmt.Sprintf("RET %s", cond.name), 2, func(c *CPU) {
			c.retConditional(cond.met(c))
		})
	}

	for i := uint8(0); i < 8; i++ {
		i := i
		DefineInstruction(0xC7+i*8, fmt.Sprintf("RST %02XH", i*8), 4, func(c *CPU) {
			c.pushStack(c.PC)
			c.PC = uint16(i) * 8
		})
	}
}
