package cpu

import "testing"

var flags = []uint8{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry}

func TestFlag(t *testing.T) {
	c, _ := newTestCPU()
	t.Run("set", func(t *testing.T) {
		for _, flag := range flags {
			c.setFlag(flag)
			if !c.isFlagSet(flag) {
				t.Errorf("expected flag %08b to be set", flag)
			}
		}
	})
	t.Run("clear", func(t *testing.T) {
		for _, flag := range flags {
			c.clearFlag(flag)
			if c.isFlagSet(flag) {
				t.Errorf("expected flag %08b to be clear", flag)
			}
		}
	})
	t.Run("setFlags", func(t *testing.T) {
		c.setFlags(true, false, true, false)
		if c.F != FlagZero|FlagHalfCarry {
			t.Errorf("got F=%02X", c.F)
		}
	})
}

func TestApplyFlags(t *testing.T) {
	c, _ := newTestCPU()

	t.Run("adopts masked bits only", func(t *testing.T) {
		c.F = FlagCarry
		c.applyFlags(FlagZero|FlagSubtract, FlagZero, 0, 0)
		if c.F != FlagZero|FlagCarry {
			t.Errorf("got F=%02X", c.F)
		}
	})
	t.Run("on and off override", func(t *testing.T) {
		c.F = 0
		c.applyFlags(0, 0, FlagHalfCarry, FlagSubtract)
		if c.F != FlagHalfCarry {
			t.Errorf("got F=%02X", c.F)
		}
	})
	t.Run("unnamed flags are preserved", func(t *testing.T) {
		c.F = FlagZero | FlagCarry
		c.applyFlags(0, FlagHalfCarry, 0, 0)
		if c.F != FlagZero|FlagCarry {
			t.Errorf("got F=%02X", c.F)
		}
	})
	t.Run("low nibble never sticks", func(t *testing.T) {
		c.F = 0
		c.applyFlags(0x0F, 0xFF, 0, 0)
		if c.F != 0 {
			t.Errorf("got F=%02X", c.F)
		}
	})
}
