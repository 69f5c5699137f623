package io

import "fmt"

// Device is a region of the address space that can be mapped onto the
// Bus. Add performs a relative update of a cell without passing through
// the device's write behaviour; the divider register depends on this to
// tick while writes to it reset it.
type Device interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	Add(address uint16, delta uint8)
}

const (
	// ROMCapacity is the size of a single ROM block.
	ROMCapacity = 0x4000
	// RAMCapacity is the size of a single RAM block.
	RAMCapacity = 0x2000
)

// ROM is a read-only block of memory. Its contents are fixed at
// construction; writes are dropped.
type ROM struct {
	data   []uint8
	offset uint16
}

// NewROM returns a ROM block mapped at offset holding image. The image
// may be smaller than ROMCapacity; reads beyond it return 0xFF.
func NewROM(offset uint16, image []uint8) (*ROM, error) {
	if len(image) > ROMCapacity {
		return nil, fmt.Errorf("rom: image of %d bytes exceeds capacity of %d", len(image), ROMCapacity)
	}
	r := &ROM{
		data:   make([]uint8, len(image)),
		offset: offset,
	}
	copy(r.data, image)
	return r, nil
}

func (r *ROM) Read(address uint16) uint8 {
	index := int(address - r.offset)
	if index >= len(r.data) {
		return 0xFF
	}
	return r.data[index]
}

func (r *ROM) Write(address uint16, value uint8) {}

func (r *ROM) Add(address uint16, delta uint8) {}

// RAM is a block of memory readable and writable without side effects.
// Addresses wrap around the block size, so mapping the same block at a
// second range aliases it, as the echo region does with work RAM.
type RAM struct {
	data   []uint8
	offset uint16
}

// NewRAM returns a RAM block of the given size mapped at offset.
func NewRAM(offset uint16, size int) (*RAM, error) {
	if size <= 0 || size > RAMCapacity {
		return nil, fmt.Errorf("ram: invalid size %d", size)
	}
	return &RAM{
		data:   make([]uint8, size),
		offset: offset,
	}, nil
}

func (r *RAM) index(address uint16) int {
	return int(address-r.offset) % len(r.data)
}

func (r *RAM) Read(address uint16) uint8 {
	return r.data[r.index(address)]
}

func (r *RAM) Write(address uint16, value uint8) {
	r.data[r.index(address)] = value
}

func (r *RAM) Add(address uint16, delta uint8) {
	r.data[r.index(address)] += delta
}
