package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/gemcrush/internal/games/gemcrush/core"
)

func TestParseBoardRoundTrip(t *testing.T) {
	b := mustBoard(t, threeRed)

	if b.Size() != 6 {
		t.Fatalf("expected 6x6 board, got size %d", b.Size())
	}
	if b.At(core.P(0, 0)) != core.ColorRed {
		t.Errorf("expected red at (0,0), got %v", b.At(core.P(0, 0)))
	}
	if b.At(core.P(0, 5)) != core.ColorYellow {
		t.Errorf("expected yellow at (0,5), got %v", b.At(core.P(0, 5)))
	}

	again := mustBoard(t, b.String())
	if !b.Equal(again) {
		t.Errorf("String/ParseBoard round trip changed the board:\n%s\n---\n%s", b, again)
	}
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"ragged rows", "RG\nR"},
		{"not square", "RGB\nRGB"},
		{"unknown color", "RX\nGB"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := core.ParseBoard(tc.input); err == nil {
				t.Errorf("ParseBoard(%q) should fail", tc.input)
			}
		})
	}
}

func TestBoardInBounds(t *testing.T) {
	b := core.NewBoard(6)

	testCases := []struct {
		pos      core.Position
		expected bool
	}{
		{core.P(0, 0), true},
		{core.P(5, 5), true},
		{core.P(-1, 0), false},
		{core.P(0, -1), false},
		{core.P(6, 0), false},
		{core.P(0, 6), false},
	}

	for _, tc := range testCases {
		if got := b.InBounds(tc.pos); got != tc.expected {
			t.Errorf("InBounds(%v): expected %v, got %v", tc.pos, tc.expected, got)
		}
		err := b.Check(tc.pos)
		if tc.expected && err != nil {
			t.Errorf("Check(%v) returned %v for an in-bounds position", tc.pos, err)
		}
		if !tc.expected && !errors.Is(err, core.ErrInvalidPosition) {
			t.Errorf("Check(%v): expected ErrInvalidPosition, got %v", tc.pos, err)
		}
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := mustBoard(t, runFree)
	clone := b.Clone()

	b.Set(core.P(0, 0), core.Empty)

	if clone.At(core.P(0, 0)) == core.Empty {
		t.Error("clone should not be affected by original modification")
	}
	if b.Equal(clone) {
		t.Error("boards should differ after modifying the original")
	}
}

func TestBoardRowsIsCopy(t *testing.T) {
	b := mustBoard(t, runFree)
	rows := b.Rows()
	rows[0][0] = core.Empty

	if b.At(core.P(0, 0)) == core.Empty {
		t.Error("Rows() should return a copy")
	}
}

func TestParseColor(t *testing.T) {
	for _, c := range core.AllColors() {
		parsed, ok := core.ParseColor(c.String())
		if !ok || parsed != c {
			t.Errorf("ParseColor(%q) = %v, %v", c.String(), parsed, ok)
		}
		if !c.IsGem() {
			t.Errorf("%v should be a gem color", c)
		}
	}
	if core.Empty.IsGem() {
		t.Error("Empty must not be a gem color")
	}
	if _, ok := core.ParseColor("purple"); ok {
		t.Error("purple is not in the palette")
	}
}
