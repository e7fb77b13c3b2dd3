package core

// IsAdjacent returns true iff a and b are orthogonal neighbors
// (Manhattan distance exactly 1).
func IsAdjacent(a, b Position) bool {
	return a.Manhattan(b) == 1
}

// ApplySwap exchanges the contents of a and b when they are adjacent.
// Non-adjacent pairs leave the board unchanged and report false.
// Positions off the board yield ErrInvalidPosition.
func ApplySwap(board *Board, a, b Position) (bool, error) {
	if err := board.Check(a); err != nil {
		return false, err
	}
	if err := board.Check(b); err != nil {
		return false, err
	}
	if !IsAdjacent(a, b) {
		return false, nil
	}

	ia, ib := board.index(a), board.index(b)
	board.cells[ia], board.cells[ib] = board.cells[ib], board.cells[ia]
	return true, nil
}
