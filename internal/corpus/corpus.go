// Package corpus executes single-opcode conformance records against a
// fresh core. Each record forces an initial register and memory state,
// steps one instruction and checks every register and referenced cell
// against the expected final state.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/io"
	"github.com/thelolagemann/sm83/pkg/log"
)

// State is one side of a record: the register file plus the memory
// cells the test touches, as [address, value] pairs.
type State struct {
	A   uint8       `json:"a"`
	B   uint8       `json:"b"`
	C   uint8       `json:"c"`
	D   uint8       `json:"d"`
	E   uint8       `json:"e"`
	F   uint8       `json:"f"`
	H   uint8       `json:"h"`
	L   uint8       `json:"l"`
	SP  uint16      `json:"sp"`
	PC  uint16      `json:"pc"`
	RAM [][2]uint16 `json:"ram"`
}

// Record is a single conformance case.
type Record struct {
	Name    string `json:"name"`
	Initial State  `json:"initial"`
	Final   State  `json:"final"`
}

func (s State) snapshot() cpu.Snapshot {
	return cpu.Snapshot{
		A: s.A, F: s.F, B: s.B, C: s.C, D: s.D, E: s.E, H: s.H, L: s.L,
		SP: s.SP, PC: s.PC,
	}
}

// Runner executes records, reporting mismatches through its logger.
type Runner struct {
	log log.Logger
}

// NewRunner returns a Runner.
func NewRunner(l log.Logger) *Runner {
	return &Runner{log: l}
}

// newFlatCore builds a CPU over an address space that is RAM from top
// to bottom, with no register intercepts in the way.
func newFlatCore() (*cpu.CPU, *io.Bus, error) {
	b := io.NewBus(log.NewNullLogger())
	for block := 0; block < 8; block++ {
		offset := uint16(block * io.RAMCapacity)
		ram, err := io.NewRAM(offset, io.RAMCapacity)
		if err != nil {
			return nil, nil, err
		}
		b.MapRange(offset, offset+io.RAMCapacity-1, ram)
	}
	return cpu.NewCPU(b, log.NewNullLogger()), b, nil
}

// RunRecord executes a single record and returns one diagnostic per
// mismatch. A nil return means the core conforms.
func (r *Runner) RunRecord(record Record) ([]string, error) {
	c, b, err := newFlatCore()
	if err != nil {
		return nil, err
	}
	c.Restore(record.Initial.snapshot())
	for _, cell := range record.Initial.RAM {
		b.Write(cell[0], uint8(cell[1]))
	}

	for !c.Step() {
	}

	diffs := c.Compare(record.Final.snapshot())
	for _, cell := range record.Final.RAM {
		if got := b.Read(cell[0]); got != uint8(cell[1]) {
			diffs = append(diffs, fmt.Sprintf("[0x%04X]: got 0x%02X, want 0x%02X", cell[0], got, uint8(cell[1])))
		}
	}
	return diffs, nil
}

// RunFile executes every record in a JSON corpus file and returns the
// number of failing records.
func (r *Runner) RunFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("corpus: %s: %w", path, err)
	}

	failed := 0
	for _, record := range records {
		diffs, err := r.RunRecord(record)
		if err != nil {
			return failed, err
		}
		if len(diffs) > 0 {
			failed++
			for _, diff := range diffs {
				r.log.Errorf("corpus: %s: %s", record.Name, diff)
			}
		}
	}
	return failed, nil
}
