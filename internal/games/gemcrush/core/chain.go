package core

// anchors reports whether p starts a same-color triple in direction d:
// the two cells strictly beyond p in d are in bounds and match p's color.
func anchors(b *Board, p Position, d Dir) bool {
	color := b.At(p)
	if color == Empty {
		return false
	}
	dr, dc := d.Delta()
	one, two := p.Add(dr, dc), p.Add(2*dr, 2*dc)
	if !b.InBounds(one) || !b.InBounds(two) {
		return false
	}
	return b.At(one) == color && b.At(two) == color
}

// IsChainMember reports whether p anchors a same-color triple in at least
// one of the four axis directions. Empty cells never qualify.
func IsChainMember(b *Board, p Position) bool {
	for _, d := range Dirs {
		if anchors(b, p, d) {
			return true
		}
	}
	return false
}

// FindChainMembers returns every cell that anchors a 3-run, in row-major
// order. The test is local: longer runs and L/T shapes are not merged, and a
// cell is reported regardless of its neighbors. The board is not modified.
func FindChainMembers(b *Board) []Position {
	var members []Position
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			p := P(r, c)
			if IsChainMember(b, p) {
				members = append(members, p)
			}
		}
	}
	return members
}

// ChainCells expands members into the triples they anchor: each member plus
// the two cells beyond it in every qualifying direction. The union is exactly
// the set of cells lying in a same-color run of length 3 or more. Results are
// deduplicated and returned in row-major order.
func ChainCells(b *Board, members []Position) []Position {
	marked := make([]bool, len(b.cells))
	for _, p := range members {
		for _, d := range Dirs {
			if !anchors(b, p, d) {
				continue
			}
			dr, dc := d.Delta()
			for step := 0; step < 3; step++ {
				marked[b.index(p.Add(step*dr, step*dc))] = true
			}
		}
	}

	var cells []Position
	for i, m := range marked {
		if m {
			cells = append(cells, P(i/b.size, i%b.size))
		}
	}
	return cells
}

// Clear sets every given cell to Empty and returns how many gems were removed.
func Clear(b *Board, cells []Position) int {
	removed := 0
	for _, p := range cells {
		if b.At(p) != Empty {
			b.Set(p, Empty)
			removed++
		}
	}
	return removed
}
