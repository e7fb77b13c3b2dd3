package gemcrush

import (
	"github.com/vovakirdan/gemcrush/internal/config"
	platformcore "github.com/vovakirdan/gemcrush/internal/core"
	"github.com/vovakirdan/gemcrush/internal/games/gemcrush/core"
)

const (
	hudHeight    = 2 // Title line + separator
	footerHeight = 3 // Status, blank, controls
)

// layout places the board on screen and maps screen cells back to
// board positions.
type layout struct {
	frame  platformcore.Rect // Board including its border
	inner  platformcore.Rect // Gem area
	cellW  int
	cellH  int
	status int // Row of the status line
	fits   bool
}

// computeLayout centers a size x size board under the HUD.
func computeLayout(screenW, screenH, size int, display config.DisplayConfig) layout {
	cellW := max(display.CellWidth, 1)
	cellH := max(display.CellHeight, 1)

	innerW := size * cellW
	innerH := size * cellH
	frameW := innerW + 2
	frameH := innerH + 2

	l := layout{cellW: cellW, cellH: cellH}
	l.fits = screenW >= frameW && screenH >= hudHeight+frameH+footerHeight

	l.frame = platformcore.NewRect((screenW-frameW)/2, hudHeight, frameW, frameH)
	l.inner = platformcore.NewRect(l.frame.X+1, l.frame.Y+1, innerW, innerH)
	l.status = l.frame.Bottom()
	return l
}

// positionAt converts screen coordinates to a board position by
// subtracting the board origin and dividing by the cell size. Points off
// the board yield core.ErrInvalidPosition.
func (l layout) positionAt(x, y int, b *core.Board) (core.Position, error) {
	pos := core.P(
		platformcore.FloorDiv(y-l.inner.Y, l.cellH),
		platformcore.FloorDiv(x-l.inner.X, l.cellW),
	)
	if err := b.Check(pos); err != nil {
		return pos, err
	}
	return pos, nil
}

// cellRect returns the screen area of a board position.
func (l layout) cellRect(p core.Position) platformcore.Rect {
	return platformcore.NewRect(l.inner.X+p.Col*l.cellW, l.inner.Y+p.Row*l.cellH, l.cellW, l.cellH)
}
