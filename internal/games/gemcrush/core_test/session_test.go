package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/gemcrush/internal/games/gemcrush/core"
)

func TestNewSession(t *testing.T) {
	s := newSession(t, core.DefaultRules(), runFree)

	if s.State() != core.StatePlaying {
		t.Errorf("expected Playing, got %v", s.State())
	}
	if s.Score() != 0 {
		t.Errorf("expected score 0, got %d", s.Score())
	}
	if s.MovesRemaining() != 20 {
		t.Errorf("expected 20 moves, got %d", s.MovesRemaining())
	}
	if _, ok := s.Selected(); ok {
		t.Error("new session should have no selection")
	}
	if !s.Board().Equal(mustBoard(t, runFree)) {
		t.Errorf("unexpected initial board:\n%s", s.Board())
	}
}

func TestNewSessionRejectsBadRules(t *testing.T) {
	tests := []struct {
		name  string
		rules core.Rules
	}{
		{"tiny board", core.Rules{Size: 2, MoveBudget: 20, WinScore: 100}},
		{"no moves", core.Rules{Size: 6, MoveBudget: 0, WinScore: 100}},
		{"no target", core.Rules{Size: 6, MoveBudget: 20, WinScore: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := core.NewSession(tc.rules, core.NewPalette(1)); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, err := core.NewSession(core.DefaultRules(), nil); err == nil {
		t.Error("expected an error for a nil palette")
	}
}

func TestSelectThenAdjacentSwap(t *testing.T) {
	s := newSession(t, core.DefaultRules(), runFree)
	before := s.Board().Clone()
	a, b := core.P(4, 1), core.P(4, 2)

	res, err := s.Select(a)
	if err != nil || res != core.MoveSelected {
		t.Fatalf("first pick: res=%v err=%v", res, err)
	}
	if sel, ok := s.Selected(); !ok || sel != a {
		t.Errorf("expected selection %v, got %v (%v)", a, sel, ok)
	}

	res, err = s.Select(b)
	if err != nil || res != core.MoveSwapped {
		t.Fatalf("second pick: res=%v err=%v", res, err)
	}
	if s.Board().At(a) != before.At(b) || s.Board().At(b) != before.At(a) {
		t.Error("cells were not exchanged")
	}
	if s.MovesRemaining() != 19 {
		t.Errorf("expected 19 moves, got %d", s.MovesRemaining())
	}
	if _, ok := s.Selected(); ok {
		t.Error("selection should be cleared after a swap")
	}
}

func TestSelectNonAdjacentConsumesMove(t *testing.T) {
	s := newSession(t, core.DefaultRules(), runFree)
	before := s.Board().Clone()

	s.Select(core.P(0, 0))
	res, err := s.Select(core.P(2, 2))
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if res != core.MoveRejected {
		t.Errorf("expected MoveRejected, got %v", res)
	}
	if !s.Board().Equal(before) {
		t.Error("rejected swap changed the board")
	}
	if s.MovesRemaining() != 19 {
		t.Errorf("invalid attempt should still cost a move, got %d left", s.MovesRemaining())
	}
	if _, ok := s.Selected(); ok {
		t.Error("selection should be cleared after an invalid attempt")
	}
}

func TestSelectOutOfRange(t *testing.T) {
	s := newSession(t, core.DefaultRules(), runFree)
	s.Select(core.P(1, 1))

	res, err := s.Select(core.P(6, 1))
	if !errors.Is(err, core.ErrInvalidPosition) {
		t.Errorf("expected ErrInvalidPosition, got %v", err)
	}
	if res != core.MoveIgnored {
		t.Errorf("expected MoveIgnored, got %v", res)
	}
	if s.MovesRemaining() != 20 {
		t.Errorf("off-board pick must not cost a move, got %d left", s.MovesRemaining())
	}
	if sel, ok := s.Selected(); !ok || sel != core.P(1, 1) {
		t.Error("off-board pick must not disturb the pending selection")
	}
}

func TestMoveExhaustionEndsGame(t *testing.T) {
	s := newSession(t, core.DefaultRules(), runFree)

	for i := 0; i < 19; i++ {
		if res, _ := s.Swap(core.P(0, 0), core.P(5, 5)); res != core.MoveRejected {
			t.Fatalf("attempt %d: expected MoveRejected, got %v", i, res)
		}
		s.Tick()
	}
	if s.State() != core.StatePlaying {
		t.Fatalf("game ended early with %d moves left", s.MovesRemaining())
	}

	s.Swap(core.P(0, 0), core.P(5, 5))
	if s.MovesRemaining() != 0 {
		t.Fatalf("expected 0 moves, got %d", s.MovesRemaining())
	}

	res := s.Tick()
	if !res.Ended || s.State() != core.StateGameOver {
		t.Errorf("expected GameOver after 20 attempts, got %v", s.State())
	}
	if s.Score() != 0 {
		t.Errorf("expected score 0, got %d", s.Score())
	}
	if s.Won() {
		t.Error("running out of moves is not a win")
	}

	// Terminal: input and ticks are ignored.
	if res, err := s.Select(core.P(0, 0)); err != nil || res != core.MoveIgnored {
		t.Errorf("input after game over: res=%v err=%v", res, err)
	}
	if tick := s.Tick(); !reflect.DeepEqual(tick, core.TickResult{}) {
		t.Errorf("tick after game over should do nothing, got %+v", tick)
	}
}

func TestWinTransition(t *testing.T) {
	rules := core.ClassicRules()
	rules.WinScore = 12

	s := newSession(t, rules, threeRed)

	first := s.Tick()
	if first.Delta != 6 || s.Score() != 6 {
		t.Fatalf("first tick: delta=%d score=%d", first.Delta, s.Score())
	}
	if s.State() != core.StatePlaying {
		t.Fatal("score below target must not end the game")
	}

	second := s.Tick()
	if !second.Ended || s.State() != core.StateGameOver {
		t.Errorf("reaching the target should end the game, state=%v", s.State())
	}
	if !s.Won() {
		t.Error("expected a win")
	}
}

func TestClassicRulesNeverClear(t *testing.T) {
	s := newSession(t, core.ClassicRules(), threeRed)
	before := s.Board().Clone()

	for i := 0; i < 3; i++ {
		res := s.Tick()
		if res.Cleared != 0 || res.Moved != 0 || res.Refilled != 0 {
			t.Fatalf("tick %d: classic rules should leave the board alone, got %+v", i, res)
		}
	}

	if !s.Board().Equal(before) {
		t.Errorf("board changed under classic rules:\n%s", s.Board())
	}
	if s.Score() != 18 {
		t.Errorf("the same chain should score every tick: got %d, want 18", s.Score())
	}
}

func TestClearRulesResolveChains(t *testing.T) {
	s := newSession(t, core.DefaultRules(), `
GBYCRB
YCBGYC
GBYCRB
RRRGYC
GBYCRB
YCBGYC`)

	res := s.Tick()
	if res.Delta != 6 {
		t.Errorf("expected delta 6, got %d", res.Delta)
	}
	if res.Cleared != 3 {
		t.Errorf("expected 3 gems cleared, got %d", res.Cleared)
	}
	if res.Moved != 9 {
		t.Errorf("expected 9 gems to fall, got %d", res.Moved)
	}
	if res.Refilled != 0 {
		t.Error("refill must wait for a tick without chains")
	}

	expected := mustBoard(t, `
...CRB
GBYGYC
YCBCRB
GBYGYC
GBYCRB
YCBGYC`)
	if !s.Board().Equal(expected) {
		t.Errorf("after clear and compact: got\n%s\nwant\n%s", s.Board(), expected)
	}

	res = s.Tick()
	if len(res.Members) != 0 {
		t.Fatalf("expected no chains on the second tick, got %v", res.Members)
	}
	if res.Refilled != 3 {
		t.Errorf("expected 3 cells refilled, got %d", res.Refilled)
	}
	if s.Board().EmptyCount() != 0 {
		t.Errorf("board should be full after refill:\n%s", s.Board())
	}
	if s.Score() != 6 {
		t.Errorf("expected score 6, got %d", s.Score())
	}
}

func TestResetRestoresMoves(t *testing.T) {
	s := newSession(t, core.DefaultRules(), runFree)
	s.Swap(core.P(0, 0), core.P(0, 1))
	s.Swap(core.P(0, 0), core.P(3, 3))
	s.Select(core.P(2, 2))

	s.Reset()

	if s.MovesRemaining() != 20 {
		t.Errorf("expected move budget restored, got %d", s.MovesRemaining())
	}
	if s.Score() != 0 || s.State() != core.StatePlaying {
		t.Errorf("expected fresh session, got score=%d state=%v", s.Score(), s.State())
	}
	if _, ok := s.Selected(); ok {
		t.Error("reset should clear the selection")
	}
	if s.Board().EmptyCount() != 0 {
		t.Error("reset board must be full")
	}
}

func TestResetKeepsMovesWhenConfigured(t *testing.T) {
	rules := core.DefaultRules()
	rules.ResetMoves = false
	s := newSession(t, rules, runFree)

	for i := 0; i < 5; i++ {
		s.Swap(core.P(0, 0), core.P(4, 4))
	}
	s.Reset()

	if s.MovesRemaining() != 15 {
		t.Errorf("expected spent moves to carry over, got %d", s.MovesRemaining())
	}
}

func TestSessionClone(t *testing.T) {
	s := newSession(t, core.DefaultRules(), runFree)
	s.Select(core.P(1, 1))

	clone := s.Clone()
	s.Select(core.P(1, 2))

	if clone.MovesRemaining() != 20 {
		t.Errorf("clone should not see later moves, got %d", clone.MovesRemaining())
	}
	if sel, ok := clone.Selected(); !ok || sel != core.P(1, 1) {
		t.Errorf("clone lost its selection: %v %v", sel, ok)
	}
	if clone.Board().Equal(s.Board()) {
		t.Error("clone board should be independent of the swapped original")
	}
}

func TestSessionDeterminism(t *testing.T) {
	play := func() []core.Snapshot {
		s, err := core.NewSession(core.DefaultRules(), core.NewPalette(12345))
		if err != nil {
			t.Fatalf("NewSession failed: %v", err)
		}
		var snaps []core.Snapshot
		moves := [][2]core.Position{
			{core.P(0, 0), core.P(0, 1)},
			{core.P(2, 3), core.P(3, 3)},
			{core.P(5, 5), core.P(4, 5)},
			{core.P(1, 1), core.P(3, 1)},
		}
		for _, m := range moves {
			s.Swap(m[0], m[1])
			for i := 0; i < 4; i++ {
				s.Tick()
			}
			snaps = append(snaps, s.Snapshot())
		}
		return snaps
	}

	a, b := play(), play()
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and moves should produce identical snapshots")
	}
}

func TestResetWithPalette(t *testing.T) {
	rules := core.ClassicRules()
	s := newSession(t, rules, threeRed)
	s.Swap(core.P(0, 0), core.P(5, 5))

	s.ResetWith(paletteFor(t, runFree))

	if !s.Board().Equal(mustBoard(t, runFree)) {
		t.Errorf("board should come from the new palette:\n%s", s.Board())
	}
	if s.MovesRemaining() != 19 {
		t.Errorf("classic rules keep spent moves across resets, got %d", s.MovesRemaining())
	}
}
