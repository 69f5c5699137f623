package io

import "testing"

func TestROM(t *testing.T) {
	t.Run("construction rejects oversized images", func(t *testing.T) {
		if _, err := NewROM(0, make([]uint8, ROMCapacity+1)); err == nil {
			t.Error("expected an error")
		}
	})
	t.Run("writes are dropped", func(t *testing.T) {
		rom, err := NewROM(0, []uint8{0xAA})
		if err != nil {
			t.Fatal(err)
		}
		rom.Write(0, 0x55)
		if got := rom.Read(0); got != 0xAA {
			t.Errorf("got %02X", got)
		}
		rom.Add(0, 1)
		if got := rom.Read(0); got != 0xAA {
			t.Errorf("got %02X", got)
		}
	})
	t.Run("reads past the image return 0xFF", func(t *testing.T) {
		rom, _ := NewROM(0, []uint8{0xAA})
		if got := rom.Read(1); got != 0xFF {
			t.Errorf("got %02X", got)
		}
	})
	t.Run("image is copied at construction", func(t *testing.T) {
		image := []uint8{0x01}
		rom, _ := NewROM(0, image)
		image[0] = 0x02
		if got := rom.Read(0); got != 0x01 {
			t.Errorf("got %02X", got)
		}
	})
}

func TestRAM(t *testing.T) {
	t.Run("construction validates size", func(t *testing.T) {
		for _, size := range []int{0, -1, RAMCapacity + 1} {
			if _, err := NewRAM(0, size); err == nil {
				t.Errorf("expected an error for size %d", size)
			}
		}
	})
	t.Run("read write", func(t *testing.T) {
		ram, err := NewRAM(0xC000, RAMCapacity)
		if err != nil {
			t.Fatal(err)
		}
		ram.Write(0xC123, 0x42)
		if got := ram.Read(0xC123); got != 0x42 {
			t.Errorf("got %02X", got)
		}
	})
	t.Run("addresses wrap around the block", func(t *testing.T) {
		ram, _ := NewRAM(0xC000, RAMCapacity)
		ram.Write(0xC123, 0x42)
		if got := ram.Read(0xE123); got != 0x42 {
			t.Errorf("echo read: got %02X", got)
		}
		ram.Write(0xE456, 0x24)
		if got := ram.Read(0xC456); got != 0x24 {
			t.Errorf("echo write: got %02X", got)
		}
	})
	t.Run("add wraps the cell", func(t *testing.T) {
		ram, _ := NewRAM(0, 0x100)
		ram.Write(0x10, 0xFF)
		ram.Add(0x10, 1)
		if got := ram.Read(0x10); got != 0x00 {
			t.Errorf("got %02X", got)
		}
	})
}
