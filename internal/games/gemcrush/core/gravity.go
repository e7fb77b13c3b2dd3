package core

// Compact lets gems fall toward the bottom of each column. Gems keep their
// relative order and all Empty cells end up contiguous at the top. It never
// empties a cell on its own; clearing happens before it is called.
// Returns the number of gems that moved.
func Compact(b *Board) int {
	moved := 0
	for c := 0; c < b.size; c++ {
		empty := 0
		for r := b.size - 1; r >= 0; r-- {
			p := P(r, c)
			color := b.At(p)
			if color == Empty {
				empty++
				continue
			}
			if empty == 0 {
				continue
			}
			b.Set(P(r+empty, c), color)
			b.Set(p, Empty)
			moved++
		}
	}
	return moved
}
