package cpu

import "testing"

func TestLogic(t *testing.T) {
	c, _ := newTestCPU()

	t.Run("and", func(t *testing.T) {
		c.A = 0xF0
		c.and(0x0F)
		if c.A != 0x00 {
			t.Errorf("got %02X", c.A)
		}
		if !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagHalfCarry) {
			t.Error("AND must set Z on zero and always set H")
		}
		if c.isFlagSet(FlagSubtract) || c.isFlagSet(FlagCarry) {
			t.Error("AND must clear N and C")
		}
	})
	t.Run("or", func(t *testing.T) {
		c.A = 0xF0
		c.or(0x0F)
		if c.A != 0xFF {
			t.Errorf("got %02X", c.A)
		}
		if c.F != 0 {
			t.Errorf("OR of a non-zero result must clear all flags, F=%02X", c.F)
		}
	})
	t.Run("xor self clears A", func(t *testing.T) {
		c.A = 0xA5
		c.xor(c.A)
		if c.A != 0 || !c.isFlagSet(FlagZero) {
			t.Errorf("got A=%02X F=%02X", c.A, c.F)
		}
	})
	t.Run("compare leaves A untouched", func(t *testing.T) {
		c.A = 0x42
		c.compare(0x42)
		if c.A != 0x42 {
			t.Errorf("got %02X", c.A)
		}
		if !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagSubtract) {
			t.Error("CP of equal values must set Z and N")
		}
		c.compare(0x43)
		if !c.isFlagSet(FlagCarry) {
			t.Error("CP against a larger value must borrow")
		}
	})
}
