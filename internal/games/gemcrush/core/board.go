package core

import (
	"fmt"
	"strings"
)

// Board is a square grid of cells stored in row-major order: index = row*Size + col.
// Its dimensions are fixed at construction.
type Board struct {
	size  int
	cells []Color
}

// NewBoard creates a board with every cell Empty.
func NewBoard(size int) *Board {
	if size < 0 {
		size = 0
	}
	return &Board{
		size:  size,
		cells: make([]Color, size*size),
	}
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// index converts a position to a flat array index.
func (b *Board) index(p Position) int {
	return p.Row*b.size + p.Col
}

// InBounds returns true if the position is within the board.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// Check returns ErrInvalidPosition wrapped with p if p is off the board.
func (b *Board) Check(p Position) error {
	if !b.InBounds(p) {
		return fmt.Errorf("%w: %v on %dx%d board", ErrInvalidPosition, p, b.size, b.size)
	}
	return nil
}

// At returns the cell at p, or Empty when p is out of bounds.
func (b *Board) At(p Position) Color {
	if !b.InBounds(p) {
		return Empty
	}
	return b.cells[b.index(p)]
}

// Set stores c at p. Out-of-bounds positions are ignored.
func (b *Board) Set(p Position, c Color) {
	if b.InBounds(p) {
		b.cells[b.index(p)] = c
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Color, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// Equal returns true if two boards have the same dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i, c := range b.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// EmptyCount returns the number of Empty cells.
func (b *Board) EmptyCount() int {
	count := 0
	for _, c := range b.cells {
		if c == Empty {
			count++
		}
	}
	return count
}

// Rows returns a copy of the board as a slice of rows for rendering.
func (b *Board) Rows() [][]Color {
	rows := make([][]Color, b.size)
	for r := range rows {
		rows[r] = make([]Color, b.size)
		copy(rows[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return rows
}

// Column returns a copy of column col, top to bottom.
func (b *Board) Column(col int) []Color {
	out := make([]Color, 0, b.size)
	for r := 0; r < b.size; r++ {
		out = append(out, b.At(P(r, col)))
	}
	return out
}

// String renders the board as rows of color characters separated by newlines.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.size*b.size + b.size)
	for r := 0; r < b.size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.size; c++ {
			sb.WriteRune(b.At(P(r, c)).Char())
		}
	}
	return sb.String()
}

// ParseBoard builds a board from newline-separated rows of color characters
// (R, G, B, Y, C, and '.' for Empty). Blank lines and surrounding spaces are
// ignored. All rows must have the same length as the number of rows.
func ParseBoard(s string) (*Board, error) {
	var rows []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}

	b := NewBoard(len(rows))
	for r, line := range rows {
		if len([]rune(line)) != len(rows) {
			return nil, fmt.Errorf("parse board: row %d has %d cells, want %d", r, len([]rune(line)), len(rows))
		}
		for c, ch := range []rune(line) {
			color, ok := ParseColor(string(ch))
			if !ok {
				return nil, fmt.Errorf("parse board: unknown color %q at %v", ch, P(r, c))
			}
			b.Set(P(r, c), color)
		}
	}
	return b, nil
}

// MustParseBoard is like ParseBoard but panics on error. Intended for tests
// and fixed layouts.
func MustParseBoard(s string) *Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}
