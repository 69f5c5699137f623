// Package cpu implements the Sharp SM83 core found in the Game Boy. The
// CPU is driven one machine cycle at a time; an instruction performs all
// of its work on the cycle it is fetched, and the remaining cycles of its
// contractual cost are burned as idle cycles before the next fetch.
package cpu

import (
	"fmt"
	"io"

	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Bus is the memory bus the CPU performs its reads and writes against.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// CPU represents the SM83 CPU.
type CPU struct {
	// A is the accumulator.
	A types.Register
	// F is the flags register. Only the upper nibble is ever set.
	F types.Register
	B, C, D, E, H, L types.Register

	SP uint16
	PC uint16

	BC, DE, HL *types.RegisterPair

	b   Bus
	log log.Logger

	// ime is the master interrupt enable.
	ime bool
	// eiPending is set by EI; the enable takes effect after the
	// following instruction has executed.
	eiPending bool
	halted    bool
	haltBug   bool

	// wait counts the machine cycles remaining until the CPU is next
	// able to fetch.
	wait int

	tracer io.Writer
}

// NewCPU returns a new CPU attached to the given bus. All registers
// start at zero; the harness is responsible for establishing the
// post-boot state.
func NewCPU(b Bus, l log.Logger) *CPU {
	c := &CPU{
		b:   b,
		log: l,
	}
	c.BC = &types.RegisterPair{High: &c.B, Low: &c.C}
	c.DE = &types.RegisterPair{High: &c.D, Low: &c.E}
	c.HL = &types.RegisterPair{High: &c.H, Low: &c.L}
	return c
}

// Trace directs a doctor-style trace line to w before every instruction
// fetch. Pass nil to disable tracing.
func (c *CPU) Trace(w io.Writer) {
	c.tracer = w
}

// IME reports whether the master interrupt enable is set.
func (c *CPU) IME() bool {
	return c.ime
}

// Halted reports whether the CPU is currently halted.
func (c *CPU) Halted() bool {
	return c.halted
}

// Step advances the CPU by one machine cycle. It reports whether an
// instruction was fetched and executed on this cycle; idle cycles,
// halted cycles and the interrupt dispatch cycle all report false.
func (c *CPU) Step() bool {
	if c.wait > 1 {
		c.wait--
		return false
	}
	c.wait = 0

	flag := c.b.Read(types.IF)
	pending := flag & c.b.Read(types.IE) & 0x1F

	if c.ime && pending != 0 {
		c.halted = false
		c.ime = false
		c.serviceInterrupt(flag, pending)
		c.wait = 5
		return false
	}

	if c.halted {
		if pending == 0 {
			return false
		}
		c.halted = false
	}

	if c.tracer != nil {
		fmt.Fprintln(c.tracer, c.TraceFrame())
	}

	opcode := c.b.Read(c.PC)
	if c.haltBug {
		c.haltBug = false
	} else {
		c.PC++
	}

	var ins Instruction
	if opcode == 0xCB {
		ins = InstructionSetCB[c.readOperand()]
	} else {
		ins = InstructionSet[opcode]
	}

	c.wait = int(ins.cycles)
	drain := c.eiPending
	ins.fn(c)
	if drain && c.eiPending {
		c.eiPending = false
		c.ime = true
	}
	return true
}

// serviceInterrupt dispatches the lowest pending interrupt: the current
// PC is pushed and execution resumes at the interrupt vector.
func (c *CPU) serviceInterrupt(flag, pending uint8) {
	for i := uint8(0); i < 5; i++ {
		if pending&(1<<i) == 0 {
			continue
		}
		c.b.Write(types.IF, flag&^(1<<i))
		c.SP--
		c.b.Write(c.SP, uint8(c.PC>>8))
		c.SP--
		c.b.Write(c.SP, uint8(c.PC))
		c.PC = 0x0040 + uint16(i)*8
		return
	}
}

// readOperand fetches the next byte of the instruction stream.
func (c *CPU) readOperand() uint8 {
	value := c.b.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 fetches a little-endian word from the instruction
// stream.
func (c *CPU) readOperand16() uint16 {
	lo := c.readOperand()
	hi := c.readOperand()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) readByte(address uint16) uint8 {
	return c.b.Read(address)
}

func (c *CPU) writeByte(address uint16, value uint8) {
	c.b.Write(address, value)
}

// pushStack pushes a word onto the stack, high byte first.
func (c *CPU) pushStack(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// popStack pops a word from the stack.
func (c *CPU) popStack() uint16 {
	lo := c.readByte(c.SP)
	c.SP++
	hi := c.readByte(c.SP)
	c.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// TraceFrame renders the CPU state in the gameboy-doctor log format,
// including the four bytes of memory at PC.
func (c *CPU) TraceFrame() string {
	return fmt.Sprintf("A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X PCMEM:%02X,%02X,%02X,%02X",
		c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP, c.PC,
		c.b.Read(c.PC), c.b.Read(c.PC+1), c.b.Read(c.PC+2), c.b.Read(c.PC+3))
}
