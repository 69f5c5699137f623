package io

import (
	"bytes"
	"testing"

	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

func TestRegisters(t *testing.T) {
	t.Run("plain cells pass through", func(t *testing.T) {
		r := NewRegisters(log.NewNullLogger())
		for _, address := range []uint16{types.TIMA, types.TMA, types.TAC, types.IF, types.IE, 0xFF80} {
			r.Write(address, 0x42)
			if got := r.Read(address); got != 0x42 {
				t.Errorf("0x%04X: got %02X", address, got)
			}
		}
	})
	t.Run("div write resets", func(t *testing.T) {
		r := NewRegisters(log.NewNullLogger())
		r.Add(types.DIV, 5)
		if got := r.Read(types.DIV); got != 5 {
			t.Errorf("got %02X", got)
		}
		r.Write(types.DIV, 0xAB)
		if got := r.Read(types.DIV); got != 0 {
			t.Errorf("got %02X after write", got)
		}
	})
	t.Run("ly reads as vblank", func(t *testing.T) {
		r := NewRegisters(log.NewNullLogger())
		r.Write(types.LY, 0x05)
		if got := r.Read(types.LY); got != 0x90 {
			t.Errorf("got %02X", got)
		}
	})
	t.Run("serial transfer", func(t *testing.T) {
		r := NewRegisters(log.NewNullLogger())
		var out bytes.Buffer
		r.SerialWriter(&out)

		r.Write(types.SB, 'G')
		r.Write(types.SC, 0x81)
		if out.String() != "G" {
			t.Errorf("got %q", out.String())
		}
		if got := r.Read(types.SC); got&0x80 != 0 {
			t.Error("busy bit must clear after the transfer")
		}
		if r.Read(types.IF)&(1<<types.IRQSerial) == 0 {
			t.Error("expected a serial interrupt request")
		}
	})
	t.Run("serial without the start bit stays silent", func(t *testing.T) {
		r := NewRegisters(log.NewNullLogger())
		var out bytes.Buffer
		r.SerialWriter(&out)
		r.Write(types.SB, 'G')
		r.Write(types.SC, 0x01)
		if out.Len() != 0 {
			t.Errorf("got %q", out.String())
		}
	})
}
