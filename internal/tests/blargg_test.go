package tests

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/thelolagemann/gomeboy-core/internal/gameboy"
	"github.com/thelolagemann/gomeboy-core/internal/serial"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// blarggCycleLimit is roughly a minute of emulated time, longer
// than any of the individual cpu_instrs ROMs need.
const blarggCycleLimit = 60 * gameboy.ClockSpeed / 4

var blarggROMPath = filepath.Join(romDir, "blargg")

// blarggTest runs a ROM that reports its result over the serial
// port, ending with "Passed" or "Failed".
type blarggTest struct {
	romPath string
	name    string
	passed  bool
}

func (b *blarggTest) Name() string {
	return b.name
}

func (b *blarggTest) Run(t *testing.T) {
	b.passed = testBlarggROM(t, b.romPath)
}

func (b *blarggTest) Passed() bool {
	return b.passed
}

func newBlarggTestCollectionFromDir(suite *TestSuite, dir string) *TestCollection {
	tc := suite.NewTestCollection(dir)
	romDir := filepath.Join(blarggROMPath, dir, "individual")
	for _, rom := range romsInDir(romDir) {
		tc.Add(&blarggTest{
			romPath: filepath.Join(romDir, rom),
			name:    rom,
		})
	}
	return tc
}

func testBlargg(table *TestTable) {
	tS := table.NewTestSuite("blargg")

	newBlarggTestCollectionFromDir(tS, "cpu_instrs")
}

func testBlarggROM(t *testing.T, romFile string) bool {
	passed := false
	t.Run(filepath.Base(romFile), func(t *testing.T) {
		b, err := os.ReadFile(romFile)
		if err != nil {
			t.Skip(err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var output serial.Capture
		done := serial.ObserverFunc(func(uint8) {
			if output.Contains("Passed") || output.Contains("Failed") {
				cancel()
			}
		})
		g, err := gameboy.NewGameBoy(
			b,
			gameboy.WithLogger(log.NewNullLogger()),
			gameboy.WithSerialObserver(&output),
			gameboy.WithSerialObserver(done),
			gameboy.MaxCycles(blarggCycleLimit),
		)
		if err != nil {
			t.Fatal(err)
		}

		if err := g.Run(ctx); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected a result over serial, got %v\n%s", err, output.String())
		}
		if !output.Contains("Passed") {
			t.Errorf("expected Passed, got\n%s", output.String())
			return
		}
		passed = true
	})
	return passed
}
