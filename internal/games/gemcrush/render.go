package gemcrush

import (
	"fmt"

	platformcore "github.com/vovakirdan/gemcrush/internal/core"
	"github.com/vovakirdan/gemcrush/internal/games/gemcrush/core"
)

// gemColors maps gem colors to screen colors.
var gemColors = map[core.Color]platformcore.Color{
	core.ColorRed:    platformcore.ColorRed,
	core.ColorGreen:  platformcore.ColorGreen,
	core.ColorBlue:   platformcore.ColorBlue,
	core.ColorYellow: platformcore.ColorYellow,
	core.ColorCyan:   platformcore.ColorCyan,
}

const (
	gemRune      = '█'
	selectedRune = '▒'
	emptyRune    = '·'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.session == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)

	if g.session.State() == core.StateGameOver {
		g.renderGameOver(dst)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorDefault)
	need := fmt.Sprintf("Need %dx%d", g.layout.frame.W, hudHeight+g.layout.frame.H+footerHeight)
	dst.DrawTextCentered(y+1, need, platformcore.ColorGray)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	s := g.session
	hud := fmt.Sprintf(" %s | Score: %d/%d | Moves: %d",
		g.Title(), s.Score(), s.Rules().WinScore, s.MovesRemaining())
	if g.lastTick.Delta > 0 {
		hud += fmt.Sprintf(" | +%d", g.lastTick.Delta)
	}
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)
	dst.DrawHLine(0, 1, dst.Width(), '─', platformcore.ColorGray)
}

// renderBoard draws the frame and every gem.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	dst.DrawBox(g.layout.frame, platformcore.ColorGray)

	board := g.session.Board()
	selected, hasSelection := g.session.Selected()
	playing := g.session.State() == core.StatePlaying

	for row := 0; row < board.Size(); row++ {
		for col := 0; col < board.Size(); col++ {
			pos := core.P(row, col)
			g.renderCell(dst, pos, board.At(pos),
				hasSelection && pos == selected,
				playing && pos == g.cursor)
		}
	}
}

// renderCell fills one board cell, leaving a one-column gap on the right
// and a one-row gap at the bottom when the cell is large enough.
func (g *Game) renderCell(dst *platformcore.Screen, pos core.Position, color core.Color, selected, cursor bool) {
	r := g.layout.cellRect(pos)
	if r.W > 1 {
		r.W--
	}
	if r.H > 1 {
		r.H--
	}

	cell := platformcore.Cell{Rune: emptyRune, Color: platformcore.ColorGray}
	if color.IsGem() {
		cell = platformcore.Cell{Rune: gemRune, Color: gemColors[color]}
		if selected {
			cell.Rune = selectedRune
		}
	}
	dst.DrawRect(r, cell)

	if cursor {
		// Reverse video with the gem letter marks the cursor.
		cx, cy := r.Center()
		dst.SetCell(cx, cy, platformcore.Cell{Rune: color.Char(), Color: cell.Color, Reverse: true})
	}
}

// renderFooter draws the status line and control hints.
func (g *Game) renderFooter(dst *platformcore.Screen) {
	if g.status != "" {
		dst.DrawTextCentered(g.layout.status, g.status, platformcore.ColorWhite)
	}
	dst.DrawTextWithColor(0, dst.Height()-1, " "+g.Controls(), platformcore.ColorGray)
}

// renderGameOver draws the result box over the board.
func (g *Game) renderGameOver(dst *platformcore.Screen) {
	title := "OUT OF MOVES"
	color := platformcore.ColorRed
	if g.session.Won() {
		title = "YOU WIN!"
		color = platformcore.ColorGreen
	}
	lines := []string{
		title,
		fmt.Sprintf("Score: %d", g.session.Score()),
		"R: restart  Q: quit",
	}

	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	cx, cy := g.layout.frame.Center()
	box := platformcore.NewRect(cx-(maxLen+4)/2, cy-(len(lines)+2)/2, maxLen+4, len(lines)+2)

	// Clear area behind overlay
	dst.DrawRect(box, platformcore.Cell{Rune: ' '})
	dst.DrawBox(box, color)
	for i, line := range lines {
		c := platformcore.ColorBrightWhite
		if i == 0 {
			c = color
		}
		x := cx - len([]rune(line))/2
		dst.DrawTextWithColor(x, box.Y+1+i, line, c)
	}
}
