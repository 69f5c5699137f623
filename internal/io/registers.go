package io

import (
	io2 "io"

	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

const registersBase = 0xFE00

// Registers is the device backing the top page of the address space,
// 0xFE00 through 0xFFFF: OAM, the hardware registers, high RAM and IE.
// Most cells are plain storage; a handful of addresses carry
// intercepted behaviour.
type Registers struct {
	data [0x200]uint8

	serial io2.Writer
	log    log.Logger
}

// NewRegisters returns the register page device. Serial output is
// discarded until a writer is attached.
func NewRegisters(l log.Logger) *Registers {
	return &Registers{
		serial: io2.Discard,
		log:    l,
	}
}

// SerialWriter directs bytes sent over the serial port to w.
func (r *Registers) SerialWriter(w io2.Writer) {
	if w == nil {
		w = io2.Discard
	}
	r.serial = w
}

func (r *Registers) Read(address uint16) uint8 {
	switch address {
	case types.LY:
		// There is no PPU; report the first VBlank scanline so ROMs
		// polling for it make progress.
		return 0x90
	}
	return r.data[address-registersBase]
}

func (r *Registers) Write(address uint16, value uint8) {
	switch address {
	case types.DIV:
		// Writing any value resets the divider.
		r.data[types.DIV-registersBase] = 0
		return
	case types.SC:
		r.data[types.SC-registersBase] = value
		if value&0x80 != 0 {
			r.transferSerial()
		}
		return
	}
	r.data[address-registersBase] = value
}

func (r *Registers) Add(address uint16, delta uint8) {
	r.data[address-registersBase] += delta
}

// transferSerial completes a serial transfer started by setting bit 7
// of SC: the byte in SB is emitted to the attached writer, the busy bit
// clears and a serial interrupt is requested.
func (r *Registers) transferSerial() {
	if _, err := r.serial.Write([]byte{r.data[types.SB-registersBase]}); err != nil {
		r.log.Errorf("serial: write failed: %v", err)
	}
	r.data[types.SC-registersBase] &^= 0x80
	r.data[types.IF-registersBase] |= 1 << types.IRQSerial
}
