package core

const (
	// MinRun is the shortest run that scores.
	MinRun = 3
	// BonusRun is the run length that triggers the multiplier.
	BonusRun = 4
	// PointsPerGem is awarded per gem in a scoring run.
	PointsPerGem = 2
	// BonusMultiplier scales the pass accumulator on a bonus run.
	BonusMultiplier = 5
)

// RunRight measures the run of p's color starting at p and extending
// rightward along its row. p itself counts as 1; Empty yields 0.
func RunRight(b *Board, p Position) int {
	color := b.At(p)
	if color == Empty {
		return 0
	}
	length := 1
	for p.Col+length < b.size && b.At(p.Add(0, length)) == color {
		length++
	}
	return length
}

// ScoreDelta converts one detection pass into points. Members must be in
// detection order. Only rightward horizontal runs are measured, whatever
// direction made a cell a member. Each run of MinRun or more adds
// length*PointsPerGem; a run of BonusRun or more then multiplies everything
// accumulated so far in this pass by BonusMultiplier, so bonuses compound.
func ScoreDelta(b *Board, members []Position) int {
	score := 0
	for _, p := range members {
		length := RunRight(b, p)
		if length < MinRun {
			continue
		}
		score += length * PointsPerGem
		if length >= BonusRun {
			score *= BonusMultiplier
		}
	}
	return score
}
