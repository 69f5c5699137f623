package cpu

import "github.com/thelolagemann/sm83/internal/types"

// Instruction pairs an opcode handler with its mnemonic and contractual
// machine-cycle cost. JR, JP nn, CALL nn and the conditional RET carry
// their not-taken cost, unconditional forms included; the handler raises
// c.wait when the branch is taken.
type Instruction struct {
	name   string
	cycles uint8
	fn     func(*CPU)
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Cycles returns the machine-cycle cost of the instruction. For JR,
// JP nn, CALL nn and the conditional RET this is the not-taken cost,
// even where the branch is unconditional.
func (i Instruction) Cycles() uint8 {
	return i.cycles
}

// InstructionSet is the primary opcode table.
var InstructionSet [256]Instruction

// InstructionSetCB is the CB-prefixed opcode table. Cycle costs include
// the prefix fetch.
var InstructionSetCB [256]Instruction

// DefineInstruction registers an instruction in the primary opcode
// table.
func DefineInstruction(opcode uint8, name string, cycles uint8, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{name: name, cycles: cycles, fn: fn}
}

// DefineInstructionCB registers an instruction in the CB-prefixed
// opcode table.
func DefineInstructionCB(opcode uint8, name string, cycles uint8, fn func(*CPU)) {
	InstructionSetCB[opcode] = Instruction{name: name, cycles: cycles, fn: fn}
}

func init() {
	DefineInstruction(0x00, "NOP", 1, func(c *CPU) {})
	DefineInstruction(0x10, "STOP", 1, func(c *CPU) {
		// STOP is treated as NOP; there is no speed switch or LCD
		// to turn off here.
		c.log.Debugf("STOP executed at 0x%04X", c.PC-1)
	})
	DefineInstruction(0x27, "DAA", 1, func(c *CPU) {
		if !c.isFlagSet(FlagSubtract) {
			if c.isFlagSet(FlagCarry) || c.A > 0x99 {
				c.A += 0x60
				c.setFlag(FlagCarry)
			}
			if c.isFlagSet(FlagHalfCarry) || c.A&0xF > 0x9 {
				c.A += 0x06
				c.clearFlag(FlagHalfCarry)
			}
		} else if c.isFlagSet(FlagCarry) && c.isFlagSet(FlagHalfCarry) {
			c.A += 0x9A
			c.clearFlag(FlagHalfCarry)
		} else if c.isFlagSet(FlagCarry) {
			c.A += 0xA0
		} else if c.isFlagSet(FlagHalfCarry) {
			c.A += 0xFA
			c.clearFlag(FlagHalfCarry)
		}
		c.shouldZeroFlag(c.A)
	})
	DefineInstruction(0x2F, "CPL", 1, func(c *CPU) {
		c.A = 0xFF ^ c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	})
	DefineInstruction(0x37, "SCF", 1, func(c *CPU) {
		c.applyFlags(0, 0, FlagCarry, FlagSubtract|FlagHalfCarry)
	})
	DefineInstruction(0x3F, "CCF", 1, func(c *CPU) {
		c.applyFlags(^c.F, FlagCarry, 0, FlagSubtract|FlagHalfCarry)
	})
	DefineInstruction(0x76, "HALT", 1, func(c *CPU) {
		if !c.ime && c.b.Read(types.IF)&c.b.Read(types.IE)&0x1F != 0 {
			// HALT with interrupts disabled and one already
			// pending triggers the halt bug: the byte after
			// HALT is fetched twice.
			c.haltBug = true
		} else {
			c.halted = true
		}
	})
	DefineInstruction(0xF3, "DI", 1, func(c *CPU) {
		c.ime = false
		c.eiPending = false
	})
	DefineInstruction(0xFB, "EI", 1, func(c *CPU) {
		c.eiPending = true
	})

	for _, opcode := range unusedOpcodes {
		opcode := opcode
		DefineInstruction(opcode, "?", 1, func(c *CPU) {
			c.log.Errorf("unknown opcode 0x%02X at 0x%04X", opcode, c.PC-1)
		})
	}
}

// unusedOpcodes have no defined behaviour on the SM83. Executing one
// logs a warning and otherwise behaves as NOP.
var unusedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}
