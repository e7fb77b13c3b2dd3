package core

import "fmt"

// State is the session lifecycle state.
type State uint8

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Rules parameterize a session.
type Rules struct {
	Size        int  // Board dimension
	MoveBudget  int  // Swap attempts per game
	WinScore    int  // Score that ends the game as a win
	ClearChains bool // Empty detected runs before compaction
	ResetMoves  bool // Restore MoveBudget on Reset
}

// DefaultRules returns the standard 6x6, 20-move, 100-point rules with chain
// clearing enabled.
func DefaultRules() Rules {
	return Rules{
		Size:        6,
		MoveBudget:  20,
		WinScore:    100,
		ClearChains: true,
		ResetMoves:  true,
	}
}

// ClassicRules reproduce the original arcade behavior: detected chains are
// scored but never removed, and Reset keeps the spent move budget.
func ClassicRules() Rules {
	r := DefaultRules()
	r.ClearChains = false
	r.ResetMoves = false
	return r
}

// Validate checks that the rules describe a playable session.
func (r Rules) Validate() error {
	if r.Size < MinRun {
		return fmt.Errorf("rules: board size %d is below %d", r.Size, MinRun)
	}
	if r.MoveBudget <= 0 {
		return fmt.Errorf("rules: move budget must be positive, got %d", r.MoveBudget)
	}
	if r.WinScore <= 0 {
		return fmt.Errorf("rules: win score must be positive, got %d", r.WinScore)
	}
	return nil
}

// MoveResult describes what a selection did.
type MoveResult uint8

const (
	MoveIgnored  MoveResult = iota // Session is over; input dropped
	MoveSelected                   // First pick stored
	MoveSwapped                    // Adjacent swap applied, move consumed
	MoveRejected                   // Non-adjacent pick, move consumed
)

// String returns the string representation of a move result.
func (m MoveResult) String() string {
	switch m {
	case MoveIgnored:
		return "ignored"
	case MoveSelected:
		return "selected"
	case MoveSwapped:
		return "swapped"
	case MoveRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// TickResult reports what one engine tick did.
type TickResult struct {
	Members  []Position // Chain members found by detection
	Delta    int        // Points added this tick
	Cleared  int        // Gems emptied (clear mode only)
	Moved    int        // Gems shifted by gravity
	Refilled int        // Cells refilled
	Ended    bool       // Session transitioned to GameOver this tick
}

// Session is one game: board, score, move budget, pending selection and
// lifecycle state. It is single-writer; callers wanting value semantics use
// Clone.
type Session struct {
	rules   Rules
	palette Palette

	board    *Board
	score    int
	moves    int
	selected *Position
	state    State
	ticks    uint64
}

// NewSession starts a Playing session with a freshly generated board.
func NewSession(rules Rules, palette Palette) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if palette == nil {
		return nil, fmt.Errorf("session: palette is required")
	}
	s := &Session{
		rules:   rules,
		palette: palette,
		moves:   rules.MoveBudget,
	}
	s.Reset()
	return s, nil
}

// Rules returns the session rules.
func (s *Session) Rules() Rules { return s.rules }

// Board returns the live board. Callers must not mutate it; use Snapshot for
// a copy.
func (s *Session) Board() *Board { return s.board }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// MovesRemaining returns the swap attempts left.
func (s *Session) MovesRemaining() int { return s.moves }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Ticks returns the number of engine ticks run since the last reset.
func (s *Session) Ticks() uint64 { return s.ticks }

// Selected returns the pending first pick, if any.
func (s *Session) Selected() (Position, bool) {
	if s.selected == nil {
		return Position{}, false
	}
	return *s.selected, true
}

// Won reports whether the session ended by reaching the win score.
// GameOver alone does not distinguish a win from running out of moves.
func (s *Session) Won() bool {
	return s.state == StateGameOver && s.score >= s.rules.WinScore
}

// Select records a pick. The first pick is stored; the second attempts a
// swap with the stored one, consumes a move whether or not the pair is
// adjacent, and clears the selection. Off-board positions are rejected with
// ErrInvalidPosition and leave the session untouched.
func (s *Session) Select(p Position) (MoveResult, error) {
	if err := s.board.Check(p); err != nil {
		return MoveIgnored, err
	}
	if s.state != StatePlaying {
		return MoveIgnored, nil
	}
	if s.selected == nil {
		pick := p
		s.selected = &pick
		return MoveSelected, nil
	}
	first := *s.selected
	return s.Swap(first, p)
}

// Swap attempts to exchange a and b directly, bypassing the selection.
// It consumes a move and clears any pending selection.
func (s *Session) Swap(a, b Position) (MoveResult, error) {
	if err := s.board.Check(a); err != nil {
		return MoveIgnored, err
	}
	if err := s.board.Check(b); err != nil {
		return MoveIgnored, err
	}
	if s.state != StatePlaying {
		return MoveIgnored, nil
	}

	swapped, err := ApplySwap(s.board, a, b)
	s.selected = nil
	if err != nil {
		return MoveIgnored, err
	}
	s.moves--
	if swapped {
		return MoveSwapped, nil
	}
	return MoveRejected, nil
}

// ClearSelection drops the pending pick without consuming a move.
func (s *Session) ClearSelection() {
	s.selected = nil
}

// Tick runs one engine step: detect, score, optionally clear, compact,
// check for game over, and refill when no chains were found.
// It does nothing once the session is over.
func (s *Session) Tick() TickResult {
	var res TickResult
	if s.state != StatePlaying {
		return res
	}
	s.ticks++

	res.Members = FindChainMembers(s.board)
	res.Delta = ScoreDelta(s.board, res.Members)
	s.score += res.Delta

	if s.rules.ClearChains && len(res.Members) > 0 {
		res.Cleared = Clear(s.board, ChainCells(s.board, res.Members))
	}
	res.Moved = Compact(s.board)

	if s.checkGameOver() {
		s.state = StateGameOver
		res.Ended = true
	}

	if len(res.Members) == 0 {
		res.Refilled = Refill(s.board, s.palette)
	}
	return res
}

// checkGameOver returns true when the score target is met or moves ran out.
func (s *Session) checkGameOver() bool {
	return s.score >= s.rules.WinScore || s.moves <= 0
}

// Reset starts over: new board, zero score, no selection, Playing.
// The move budget is restored only when Rules.ResetMoves is set.
func (s *Session) Reset() {
	s.ResetWith(s.palette)
}

// ResetWith is Reset with a replacement palette. A nil palette keeps the
// current one.
func (s *Session) ResetWith(p Palette) {
	if p != nil {
		s.palette = p
	}
	s.board = Create(s.rules.Size, s.palette)
	s.score = 0
	s.selected = nil
	s.state = StatePlaying
	s.ticks = 0
	if s.rules.ResetMoves {
		s.moves = s.rules.MoveBudget
	}
}

// Clone returns an independent copy of the session sharing the palette.
func (s *Session) Clone() *Session {
	clone := *s
	clone.board = s.board.Clone()
	if s.selected != nil {
		sel := *s.selected
		clone.selected = &sel
	}
	return &clone
}

// Snapshot is a read-only copy of the session for rendering and tests.
type Snapshot struct {
	Board          [][]Color
	Score          int
	MovesRemaining int
	Selected       *Position
	State          State
	Won            bool
	Ticks          uint64
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Board:          s.board.Rows(),
		Score:          s.score,
		MovesRemaining: s.moves,
		State:          s.state,
		Won:            s.Won(),
		Ticks:          s.ticks,
	}
	if s.selected != nil {
		sel := *s.selected
		snap.Selected = &sel
	}
	return snap
}
