package core

import "math/rand"

// Palette supplies gem colors for generation and refill.
// Implementations must never return Empty.
type Palette interface {
	NextColor() Color
}

// RandPalette draws uniformly from AllColors using a seeded math/rand source.
type RandPalette struct {
	rng    *rand.Rand
	colors []Color
}

// NewPalette creates a palette seeded with seed. The same seed yields the
// same color sequence.
func NewPalette(seed int64) *RandPalette {
	return &RandPalette{
		rng:    rand.New(rand.NewSource(seed)),
		colors: AllColors(),
	}
}

// NextColor returns a uniformly random gem color.
func (p *RandPalette) NextColor() Color {
	return p.colors[p.rng.Intn(len(p.colors))]
}

// SequencePalette cycles through a fixed list of colors. Useful for
// deterministic boards in tests and demos.
type SequencePalette struct {
	colors []Color
	next   int
}

// NewSequencePalette creates a palette that returns colors in order,
// wrapping around at the end. An empty list falls back to AllColors.
func NewSequencePalette(colors ...Color) *SequencePalette {
	if len(colors) == 0 {
		colors = AllColors()
	}
	return &SequencePalette{colors: colors}
}

// NextColor returns the next color in the sequence.
func (p *SequencePalette) NextColor() Color {
	c := p.colors[p.next%len(p.colors)]
	p.next++
	return c
}
