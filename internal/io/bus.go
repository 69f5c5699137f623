package io

import (
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Bus dispatches memory accesses to the devices mapped into the 16-bit
// address space. Every address resolves through a flat 65536-slot
// table, so lookup is a single index regardless of how the map is laid
// out. Reads from unmapped addresses return 0x00 and writes to them
// are dropped.
type Bus struct {
	devices [0x10000]Device
	log     log.Logger
}

// NewBus returns an empty bus. Accesses hit nothing until devices are
// mapped with MapRange.
func NewBus(l log.Logger) *Bus {
	return &Bus{log: l}
}

// MapRange maps device over the inclusive address range [start, end].
// Later mappings shadow earlier ones.
func (b *Bus) MapRange(start, end uint16, device Device) {
	for address := uint32(start); address <= uint32(end); address++ {
		b.devices[address] = device
	}
}

// Read reads a single byte.
func (b *Bus) Read(address uint16) uint8 {
	if device := b.devices[address]; device != nil {
		return device.Read(address)
	}
	b.log.Debugf("bus: read from unmapped address 0x%04X", address)
	return 0x00
}

// ReadN reads up to four bytes starting at address, assembled
// little-endian.
func (b *Bus) ReadN(address uint16, n int) uint32 {
	if n > 4 {
		n = 4
	}
	var value uint32
	for i := 0; i < n; i++ {
		value |= uint32(b.Read(address+uint16(i))) << (8 * i)
	}
	return value
}

// Write writes a single byte.
func (b *Bus) Write(address uint16, value uint8) {
	if device := b.devices[address]; device != nil {
		device.Write(address, value)
		return
	}
	b.log.Debugf("bus: write of 0x%02X to unmapped address 0x%04X dropped", value, address)
}

// RelativeUpdate adds delta to the cell at address without invoking the
// device's write behaviour.
func (b *Bus) RelativeUpdate(address uint16, delta uint8) {
	if device := b.devices[address]; device != nil {
		device.Add(address, delta)
	}
}

// RaiseInterrupt requests the interrupt with the given source bit by
// setting it in IF.
func (b *Bus) RaiseInterrupt(bit uint8) {
	b.Write(types.IF, b.Read(types.IF)|1<<bit)
}
