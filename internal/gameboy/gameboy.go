// Package gameboy wires the CPU, bus, devices and timer into a
// runnable machine.
package gameboy

import (
	io2 "io"

	"github.com/cespare/xxhash"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/io"
	"github.com/thelolagemann/sm83/internal/timer"
	"github.com/thelolagemann/sm83/pkg/debug"
	"github.com/thelolagemann/sm83/pkg/log"
)

// ClockSpeed is the T-cycle frequency of the DMG.
const ClockSpeed = 4194304

// GameBoy owns a CPU, the bus it runs against and the timer that
// shares the machine clock.
type GameBoy struct {
	CPU       *cpu.CPU
	Bus       *io.Bus
	Registers *io.Registers
	Timer     *timer.Controller

	log    log.Logger
	serial io2.Writer
	doctor io2.Writer
	hub    *debug.Hub

	cycles uint64
}

// NewGameBoy builds a machine around the given ROM image and applies
// opts. The CPU starts in the post-boot register state.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		log: log.New(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.Bus = io.NewBus(g.log)
	g.Registers = io.NewRegisters(g.log)
	if err := io.InstallMemoryMap(g.Bus, rom, g.Registers); err != nil {
		return nil, err
	}

	if g.hub != nil {
		w := g.hub.Writer()
		if g.serial != nil {
			g.serial = io2.MultiWriter(g.serial, w)
		} else {
			g.serial = w
		}
		if g.doctor != nil {
			g.doctor = io2.MultiWriter(g.doctor, w)
		}
	}
	if g.serial != nil {
		g.Registers.SerialWriter(g.serial)
	}

	g.CPU = cpu.NewCPU(g.Bus, g.log)
	if g.doctor != nil {
		g.CPU.Trace(g.doctor)
	}
	g.Timer = timer.NewController(g.Bus)

	g.CPU.Restore(cpu.Snapshot{
		A: 0x01, F: 0xB0,
		B: 0x00, C: 0x13,
		D: 0x00, E: 0xD8,
		H: 0x01, L: 0x4D,
		SP: 0xFFFE, PC: 0x0100,
	})

	g.log.Infof("loaded %d byte image %016x", len(rom), xxhash.Sum64(rom))
	return g, nil
}

// Step advances the machine by one machine cycle and reports whether
// the CPU fetched an instruction on it.
func (g *GameBoy) Step() bool {
	fetched := g.CPU.Step()
	g.Timer.Tick()
	g.cycles++
	return fetched
}

// Run executes the machine until the T-cycle budget is spent.
func (g *GameBoy) Run(tCycles uint64) {
	for g.cycles*4 < tCycles {
		g.Step()
	}
}

// Cycles returns the number of machine cycles executed so far.
func (g *GameBoy) Cycles() uint64 {
	return g.cycles
}
