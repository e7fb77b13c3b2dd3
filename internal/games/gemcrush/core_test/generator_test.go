package core_test

import (
	"testing"

	"github.com/vovakirdan/gemcrush/internal/games/gemcrush/core"
)

func TestCreateFillsEveryCell(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		b := core.Create(6, core.NewPalette(seed))
		if b.EmptyCount() != 0 {
			t.Fatalf("seed %d: generated board has %d empty cells", seed, b.EmptyCount())
		}
		for _, row := range b.Rows() {
			for _, c := range row {
				if !c.IsGem() {
					t.Fatalf("seed %d: cell holds %v, not a palette color", seed, c)
				}
			}
		}
	}
}

func TestCreateDeterministic(t *testing.T) {
	a := core.Create(6, core.NewPalette(42))
	b := core.Create(6, core.NewPalette(42))

	if !a.Equal(b) {
		t.Errorf("same seed should generate the same board:\n%s\n---\n%s", a, b)
	}
}

func TestCreateUsesAllColors(t *testing.T) {
	b := core.Create(12, core.NewPalette(7))
	seen := make(map[core.Color]bool)
	for _, row := range b.Rows() {
		for _, c := range row {
			seen[c] = true
		}
	}
	for _, c := range core.AllColors() {
		if !seen[c] {
			t.Errorf("color %v never drawn on a 12x12 board", c)
		}
	}
}

func TestRefillOnlyTouchesEmpty(t *testing.T) {
	b := mustBoard(t, `
R.G
.B.
YC.`)
	before := b.Clone()

	filled := core.Refill(b, core.NewSequencePalette(core.ColorCyan))

	if filled != 4 {
		t.Errorf("expected 4 cells filled, got %d", filled)
	}
	if b.EmptyCount() != 0 {
		t.Errorf("refill left %d empty cells", b.EmptyCount())
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			p := core.P(r, c)
			if before.At(p) != core.Empty && b.At(p) != before.At(p) {
				t.Errorf("refill changed non-empty cell %v from %v to %v", p, before.At(p), b.At(p))
			}
		}
	}
}

func TestRefillColumnMajorOrder(t *testing.T) {
	b := mustBoard(t, `
..
..`)
	core.Refill(b, core.NewSequencePalette(core.ColorRed, core.ColorGreen, core.ColorBlue, core.ColorYellow))

	want := mustBoard(t, `
RB
GY`)
	if !b.Equal(want) {
		t.Errorf("refill order: got\n%s\nwant\n%s", b, want)
	}
}

func TestSequencePaletteRunFree(t *testing.T) {
	b := core.Create(6, core.NewSequencePalette())
	if members := core.FindChainMembers(b); len(members) != 0 {
		t.Errorf("cycling palette should build a run-free board, found %v in\n%s", members, b)
	}
}
