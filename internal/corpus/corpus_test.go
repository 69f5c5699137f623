package corpus

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/thelolagemann/sm83/pkg/log"
)

// incA executes INC A at 0x0100 against a passing expectation.
var incA = Record{
	Name: "3C 0000",
	Initial: State{
		A: 0x41, PC: 0x0100, SP: 0xFFFE,
		RAM: [][2]uint16{{0x0100, 0x3C}},
	},
	Final: State{
		A: 0x42, PC: 0x0101, SP: 0xFFFE,
		RAM: [][2]uint16{{0x0100, 0x3C}},
	},
}

func TestRunRecord(t *testing.T) {
	r := NewRunner(log.NewNullLogger())

	t.Run("conforming record yields no diagnostics", func(t *testing.T) {
		diffs, err := r.RunRecord(incA)
		if err != nil {
			t.Fatal(err)
		}
		if len(diffs) != 0 {
			t.Errorf("got %v", diffs)
		}
	})
	t.Run("memory effects are checked", func(t *testing.T) {
		record := Record{
			Name: "36 0000",
			Initial: State{
				H: 0xC0, L: 0x00, PC: 0x0100,
				RAM: [][2]uint16{{0x0100, 0x36}, {0x0101, 0x42}},
			},
			Final: State{
				H: 0xC0, L: 0x00, PC: 0x0102,
				RAM: [][2]uint16{{0xC000, 0x42}},
			},
		}
		diffs, err := r.RunRecord(record)
		if err != nil {
			t.Fatal(err)
		}
		if len(diffs) != 0 {
			t.Errorf("got %v", diffs)
		}
	})
	t.Run("mismatches are reported per field", func(t *testing.T) {
		record := incA
		record.Final.A = 0x99
		record.Final.RAM = [][2]uint16{{0x0100, 0x77}}
		diffs, err := r.RunRecord(record)
		if err != nil {
			t.Fatal(err)
		}
		if len(diffs) != 2 {
			t.Errorf("got %v", diffs)
		}
	})
}

func TestRunFile(t *testing.T) {
	r := NewRunner(log.NewNullLogger())

	writeCorpus := func(t *testing.T, records []Record) string {
		t.Helper()
		data, err := json.Marshal(records)
		if err != nil {
			t.Fatal(err)
		}
		path := filepath.Join(t.TempDir(), "corpus.json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("counts failing records", func(t *testing.T) {
		bad := incA
		bad.Final.A = 0x00
		failed, err := r.RunFile(writeCorpus(t, []Record{incA, bad, incA}))
		if err != nil {
			t.Fatal(err)
		}
		if failed != 1 {
			t.Errorf("got %d failures", failed)
		}
	})
	t.Run("missing file", func(t *testing.T) {
		if _, err := r.RunFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("expected an error")
		}
	})
	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "corpus.json")
		if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := r.RunFile(path); err == nil {
			t.Error("expected an error")
		}
	})
}
