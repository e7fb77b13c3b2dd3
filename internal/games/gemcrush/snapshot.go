package gemcrush

import "github.com/vovakirdan/gemcrush/internal/games/gemcrush/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Mode   string
	Cursor core.Position
	core.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.tick,
		Mode:   string(g.mode),
		Cursor: g.cursor,
	}
	if g.session != nil {
		snap.Snapshot = g.session.Snapshot()
	}
	return snap
}
