package io

import (
	"testing"

	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	return NewBus(log.NewNullLogger())
}

func TestBus(t *testing.T) {
	t.Run("unmapped reads return zero", func(t *testing.T) {
		b := newTestBus(t)
		if got := b.Read(0x1234); got != 0x00 {
			t.Errorf("got %02X", got)
		}
	})
	t.Run("unmapped writes are dropped", func(t *testing.T) {
		b := newTestBus(t)
		b.Write(0x1234, 0xFF)
		if got := b.Read(0x1234); got != 0x00 {
			t.Errorf("got %02X", got)
		}
	})
	t.Run("map range dispatches inclusively", func(t *testing.T) {
		b := newTestBus(t)
		ram, err := NewRAM(0xC000, RAMCapacity)
		if err != nil {
			t.Fatal(err)
		}
		b.MapRange(0xC000, 0xDFFF, ram)

		b.Write(0xC000, 0x11)
		b.Write(0xDFFF, 0x22)
		if b.Read(0xC000) != 0x11 || b.Read(0xDFFF) != 0x22 {
			t.Error("range edges not mapped")
		}
		if b.Read(0xBFFF) != 0x00 || b.Read(0xE000) != 0x00 {
			t.Error("mapping leaked outside the range")
		}
	})
	t.Run("readn assembles little-endian", func(t *testing.T) {
		b := newTestBus(t)
		ram, _ := NewRAM(0xC000, RAMCapacity)
		b.MapRange(0xC000, 0xDFFF, ram)
		b.Write(0xC000, 0x78)
		b.Write(0xC001, 0x56)
		b.Write(0xC002, 0x34)
		b.Write(0xC003, 0x12)

		if got := b.ReadN(0xC000, 2); got != 0x5678 {
			t.Errorf("got %04X", got)
		}
		if got := b.ReadN(0xC000, 4); got != 0x12345678 {
			t.Errorf("got %08X", got)
		}
		if got := b.ReadN(0xC000, 9); got != 0x12345678 {
			t.Errorf("oversized read: got %08X", got)
		}
	})
	t.Run("relative update", func(t *testing.T) {
		b := newTestBus(t)
		ram, _ := NewRAM(0xC000, RAMCapacity)
		b.MapRange(0xC000, 0xDFFF, ram)
		b.Write(0xC010, 0xFF)
		b.RelativeUpdate(0xC010, 1)
		if got := b.Read(0xC010); got != 0x00 {
			t.Errorf("got %02X", got)
		}
		b.RelativeUpdate(0x4000, 1) // unmapped, dropped
	})
	t.Run("raise interrupt sets IF bits", func(t *testing.T) {
		b := newTestBus(t)
		b.MapRange(0xFE00, 0xFFFF, NewRegisters(log.NewNullLogger()))
		b.RaiseInterrupt(types.IRQTimer)
		b.RaiseInterrupt(types.IRQVBlank)
		if got := b.Read(types.IF); got != 0b101 {
			t.Errorf("got %05b", got)
		}
	})
}
