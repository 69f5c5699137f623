package gameboy

import (
	io2 "io"

	"github.com/thelolagemann/sm83/pkg/debug"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Opt configures a GameBoy at construction time.
type Opt func(*GameBoy)

// WithLogger replaces the default logger.
func WithLogger(l log.Logger) Opt {
	return func(g *GameBoy) {
		g.log = l
	}
}

// WithSerialWriter directs bytes sent over the serial port to w.
func WithSerialWriter(w io2.Writer) Opt {
	return func(g *GameBoy) {
		g.serial = w
	}
}

// WithDoctor emits a gameboy-doctor trace line to w before every
// instruction.
func WithDoctor(w io2.Writer) Opt {
	return func(g *GameBoy) {
		g.doctor = w
	}
}

// WithDebugHub broadcasts serial and trace output to the clients of h.
func WithDebugHub(h *debug.Hub) Opt {
	return func(g *GameBoy) {
		g.hub = h
	}
}
