// Package timer drives the divider and timer registers from the
// machine-cycle clock.
package timer

import (
	"github.com/thelolagemann/sm83/internal/io"
	"github.com/thelolagemann/sm83/internal/types"
)

// tacPeriods maps the low two bits of TAC to the TIMA period in
// T-cycles.
var tacPeriods = [4]uint64{1024, 16, 64, 256}

// divPeriod is the DIV period in T-cycles.
const divPeriod = 256

// Controller owns the monotonic T-cycle counter and derives DIV and
// TIMA from it. DIV advances through a relative update so that the
// write-resets-to-zero behaviour of the register is not triggered by
// the tick itself.
type Controller struct {
	b      *io.Bus
	cycles uint64
}

// NewController returns a timer controller driving the registers on b.
func NewController(b *io.Bus) *Controller {
	return &Controller{b: b}
}

// Tick advances the timer by one machine cycle (four T-cycles).
func (c *Controller) Tick() {
	previous := c.cycles
	c.cycles += 4

	if previous/divPeriod != c.cycles/divPeriod {
		c.b.RelativeUpdate(types.DIV, 1)
	}

	tac := c.b.Read(types.TAC)
	if tac&0x04 == 0 {
		return
	}
	period := tacPeriods[tac&0x03]
	for n := c.cycles/period - previous/period; n > 0; n-- {
		tima := c.b.Read(types.TIMA) + 1
		if tima == 0 {
			tima = c.b.Read(types.TMA)
			c.b.RaiseInterrupt(types.IRQTimer)
		}
		c.b.Write(types.TIMA, tima)
	}
}
