package core

// Create builds a size x size board filling every cell independently from
// the palette. The result may already contain runs; the first detection
// pass resolves them.
func Create(size int, p Palette) *Board {
	b := NewBoard(size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			b.Set(P(r, c), p.NextColor())
		}
	}
	return b
}

// Refill replaces every Empty cell with a fresh palette draw and returns the
// number of cells filled. Cells are visited column by column, top to bottom.
func Refill(b *Board, p Palette) int {
	filled := 0
	for c := 0; c < b.size; c++ {
		for r := 0; r < b.size; r++ {
			pos := P(r, c)
			if b.At(pos) == Empty {
				b.Set(pos, p.NextColor())
				filled++
			}
		}
	}
	return filled
}
