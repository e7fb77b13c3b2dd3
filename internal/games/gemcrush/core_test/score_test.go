package core_test

import (
	"testing"

	"github.com/vovakirdan/gemcrush/internal/games/gemcrush/core"
)

func TestScoreDeltaThreeRun(t *testing.T) {
	b := mustBoard(t, threeRed)
	members := core.FindChainMembers(b)

	if len(members) == 0 || members[0] != core.P(0, 0) {
		t.Fatalf("expected (0,0) to be reported, got %v", members)
	}

	// (0,0) measures a rightward run of 3; (0,2) measures 1 and adds nothing.
	if delta := core.ScoreDelta(b, members); delta != 6 {
		t.Errorf("ScoreDelta = %d, want 6", delta)
	}
}

func TestScoreDeltaFourRunMultiplies(t *testing.T) {
	b := mustBoard(t, fourRed)

	// 4*2 = 8 added first, then multiplied by 5.
	if delta := core.ScoreDelta(b, []core.Position{core.P(0, 0)}); delta != 40 {
		t.Errorf("ScoreDelta for a single run of 4 = %d, want 40", delta)
	}

	// Full pass: (0,0) -> (8)*5 = 40, (0,1) -> +6 = 46, (0,2) and (0,3) too short.
	if delta := core.ScoreDelta(b, core.FindChainMembers(b)); delta != 46 {
		t.Errorf("ScoreDelta for the full pass = %d, want 46", delta)
	}
}

func TestScoreDeltaMultipliersCompound(t *testing.T) {
	b := mustBoard(t, `
RRRRGY
GBYCRB
CCCCYB
GBYCRB
YCBGYC
GBYCRB`)

	// (8)*5 = 40, then (40+8)*5 = 240.
	delta := core.ScoreDelta(b, []core.Position{core.P(0, 0), core.P(2, 0)})
	if delta != 240 {
		t.Errorf("ScoreDelta = %d, want 240", delta)
	}
}

func TestScoreDeltaIgnoresVerticalRuns(t *testing.T) {
	b := mustBoard(t, `
RGYCRB
RBYGYC
RCBGYC
GBYCRB
YCBGYC
GBYCRB`)
	members := core.FindChainMembers(b)
	if len(members) == 0 {
		t.Fatal("vertical run should be detected")
	}
	if delta := core.ScoreDelta(b, members); delta != 0 {
		t.Errorf("vertical runs must not score, got %d", delta)
	}
}

func TestScoreDeltaLeftAnchorMeasuresRight(t *testing.T) {
	// (0,4) anchors leftward but measures rightward: run of 1.
	b := mustBoard(t, `
YRRRR
GBCGB
BCYBC
GBCGB
BCYBC`)
	if delta := core.ScoreDelta(b, []core.Position{core.P(0, 4)}); delta != 0 {
		t.Errorf("left anchor at the row end should score 0, got %d", delta)
	}
	if delta := core.ScoreDelta(b, core.FindChainMembers(b)); delta != 46 {
		t.Errorf("full pass = %d, want 46", delta)
	}
}

func TestRunRight(t *testing.T) {
	b := mustBoard(t, `
RRRB
....
GGGG
BRRR`)

	tests := []struct {
		pos      core.Position
		expected int
	}{
		{core.P(0, 0), 3},
		{core.P(0, 1), 2},
		{core.P(0, 3), 1},
		{core.P(1, 0), 0},
		{core.P(2, 0), 4},
		{core.P(3, 1), 3},
	}

	for _, tc := range tests {
		if got := core.RunRight(b, tc.pos); got != tc.expected {
			t.Errorf("RunRight(%v) = %d, expected %d", tc.pos, got, tc.expected)
		}
	}
}
