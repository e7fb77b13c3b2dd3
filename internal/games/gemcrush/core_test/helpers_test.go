package core_test

import (
	"testing"

	"github.com/vovakirdan/gemcrush/internal/games/gemcrush/core"
)

// runFree is a 6x6 board with no horizontal or vertical triples.
const runFree = `
GBYCRB
YCBGYC
GBYCRB
YCBGYC
GBYCRB
YCBGYC`

// threeRed has a single rightward run of three in row 0.
const threeRed = `
RRRBGY
GBYCRB
YCBGYC
GBYCRB
YCBGYC
GBYCRB`

// fourRed has a single run of four in row 0.
const fourRed = `
RRRRGY
GBYCRB
YCBGYC
GBYCRB
YCBGYC
GBYCRB`

// mustBoard parses an ASCII board or fails the test.
func mustBoard(t *testing.T, s string) *core.Board {
	t.Helper()
	b, err := core.ParseBoard(s)
	if err != nil {
		t.Fatalf("ParseBoard failed: %v", err)
	}
	return b
}

// paletteFor returns a palette whose first Size*Size draws recreate s when
// consumed by core.Create (row-major).
func paletteFor(t *testing.T, s string) *core.SequencePalette {
	t.Helper()
	b := mustBoard(t, s)
	var colors []core.Color
	for _, row := range b.Rows() {
		colors = append(colors, row...)
	}
	return core.NewSequencePalette(colors...)
}

// newSession starts a session whose initial board is s.
func newSession(t *testing.T, rules core.Rules, s string) *core.Session {
	t.Helper()
	rules.Size = mustBoard(t, s).Size()
	sess, err := core.NewSession(rules, paletteFor(t, s))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return sess
}
