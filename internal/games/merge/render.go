package merge

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-merge/internal/core"
	"github.com/vovakirdan/tui-merge/internal/games/merge/model"
)

const (
	hudHeight    = 3 // Title, info line, blank
	footerHeight = 3 // Blank, status, controls
)

// Board row 0 is drawn at the bottom of the grid, matching the model's
// "Y grows towards the top" convention.

// computeLayout centres the grid and checks that everything fits.
func (g *Game) computeLayout() {
	boardW, boardH := g.gridSize()
	g.boardX = (g.screenW - boardW) / 2
	g.boardY = hudHeight

	minW := max(boardW, len(g.Controls())) + 2
	minH := hudHeight + boardH + footerHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize adapts to a new screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.computeLayout()
}

// gridSize returns the grid size in screen cells, borders included.
func (g *Game) gridSize() (int, int) {
	return g.board.Width()*g.cfg.Cell.Width + 1, g.board.Height()*g.cfg.Cell.Height + 1
}

// CellAt converts a screen position to a board cell.
// Returns false when the position is outside the grid.
func (g *Game) CellAt(px, py int) (model.Coord, bool) {
	relX := px - g.boardX
	relY := py - g.boardY
	if relX < 0 || relY < 0 {
		return model.Coord{}, false
	}

	x := relX / g.cfg.Cell.Width
	row := relY / g.cfg.Cell.Height
	if x >= g.board.Width() || row >= g.board.Height() {
		return model.Coord{}, false
	}
	return model.C(x, g.board.Height()-1-row), true
}

// CellOrigin returns the top-left screen position inside the borders of c.
func (g *Game) CellOrigin(c model.Coord) (int, int) {
	row := g.board.Height() - 1 - c.Y
	return g.boardX + c.X*g.cfg.Cell.Width + 1, g.boardY + row*g.cfg.Cell.Height + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	g.renderPieces(dst)

	_, boardH := g.gridSize()
	footerY := g.boardY + boardH + 1
	dst.DrawTextCentered(footerY, g.status)
	dst.DrawTextColor((g.screenW-len(g.Controls()))/2, footerY+1, g.Controls(), core.ColorGray)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	const boxW = 26
	y := g.screenH / 2
	dst.DrawBox(core.NewRect((g.screenW-boxW)/2, y-1, boxW, 4), core.ColorGray)
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, g.layout.Title())

	info := fmt.Sprintf("Moves: %d  Pieces: %d  Free: %d",
		g.moves, g.board.FilledCount(), g.board.EmptyCount())
	dst.DrawTextCentered(1, info)
}

// renderGrid draws the cell borders.
func (g *Game) renderGrid(dst *core.Screen) {
	w, h := g.board.Width(), g.board.Height()
	cw, ch := g.cfg.Cell.Width, g.cfg.Cell.Height

	for y := 0; y < h+1; y++ {
		for x := 0; x < w+1; x++ {
			px := g.boardX + x*cw
			py := g.boardY + y*ch
			dst.Set(px, py, gridJunction(x, y, w, h))

			if x < w {
				for i := 1; i < cw; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < h {
				for i := 1; i < ch; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}
}

func gridJunction(x, y, w, h int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == w:
		return '┐'
	case y == h && x == 0:
		return '└'
	case y == h && x == w:
		return '┘'
	case y == 0:
		return '┬'
	case y == h:
		return '┴'
	case x == 0:
		return '├'
	case x == w:
		return '┤'
	default:
		return '┼'
	}
}

// renderPieces draws glyphs plus cursor and grab markers.
func (g *Game) renderPieces(dst *core.Screen) {
	inner := g.cfg.Cell.Width - 1
	midRow := (g.cfg.Cell.Height - 1) / 2

	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			c := model.C(x, y)
			px, py := g.CellOrigin(c)
			cell, _ := g.board.Cell(x, y)

			if cell.Filled {
				glyph := g.cfg.Glyph(cell.Piece)
				gx := px + (inner-utf8.RuneCountInString(glyph))/2
				dst.DrawTextColor(gx, py+midRow, glyph, g.cfg.Color(cell.Piece.Kind()))
			}

			switch {
			case g.holding && c == g.grabbed:
				dst.SetColor(px, py+midRow, '<', core.ColorBrightCyan)
				dst.SetColor(px+inner-1, py+midRow, '>', core.ColorBrightCyan)
			case c == g.cursor:
				dst.SetColor(px, py+midRow, '[', core.ColorYellow)
				dst.SetColor(px+inner-1, py+midRow, ']', core.ColorYellow)
			}
		}
	}

	if g.holding && g.cursor != g.grabbed {
		px, py := g.CellOrigin(g.cursor)
		dst.SetColor(px, py+midRow, '[', core.ColorBrightCyan)
		dst.SetColor(px+inner-1, py+midRow, ']', core.ColorBrightCyan)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Enter: Grab/Drop | Esc: Cancel | R: Restart | Q: Quit"
}
