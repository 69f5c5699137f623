package io

import "fmt"

// InstallMemoryMap builds the flat DMG address layout on b: a fixed and
// a switchable ROM view over the cartridge image, video RAM, cartridge
// RAM, work RAM with its echo, and the register page. There is no
// banking; images larger than 32KiB are rejected.
func InstallMemoryMap(b *Bus, image []uint8, registers *Registers) error {
	if len(image) > 2*ROMCapacity {
		return fmt.Errorf("io: image of %d bytes does not fit the flat 32KiB view", len(image))
	}

	fixed := image
	var switchable []uint8
	if len(image) > ROMCapacity {
		fixed = image[:ROMCapacity]
		switchable = image[ROMCapacity:]
	}

	rom0, err := NewROM(0x0000, fixed)
	if err != nil {
		return err
	}
	romX, err := NewROM(0x4000, switchable)
	if err != nil {
		return err
	}
	vram, err := NewRAM(0x8000, RAMCapacity)
	if err != nil {
		return err
	}
	cartRAM, err := NewRAM(0xA000, RAMCapacity)
	if err != nil {
		return err
	}
	wram, err := NewRAM(0xC000, RAMCapacity)
	if err != nil {
		return err
	}

	b.MapRange(0x0000, 0x3FFF, rom0)
	b.MapRange(0x4000, 0x7FFF, romX)
	b.MapRange(0x8000, 0x9FFF, vram)
	b.MapRange(0xA000, 0xBFFF, cartRAM)
	b.MapRange(0xC000, 0xDFFF, wram)
	// The echo region aliases work RAM through the block's wrap-around
	// indexing.
	b.MapRange(0xE000, 0xFDFF, wram)
	b.MapRange(0xFE00, 0xFFFF, registers)
	return nil
}
