package game

import (
	"fmt"
	"math"

	"twenty48/internal/board"
	"twenty48/internal/core"
)

const (
	cellWidth  = 7 // including the left border column
	cellHeight = 2 // including the top border row

	boardWidth  = board.Size*cellWidth + 1
	boardHeight = board.Size*cellHeight + 1

	hudHeight = 2
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardWidth) / 2
	boardY := hudHeight + 1
	if boardX < 0 {
		boardX = 0
	}

	g.renderHUD(dst, boardX)
	g.renderGrid(dst, boardX, boardY)

	switch {
	case g.animating && g.animationPhase == PhaseSlide:
		g.renderSliding(dst, boardX, boardY)
	case g.animating && g.animationPhase == PhasePop:
		g.renderTiles(dst, boardX, boardY, g.session.Board(), g.pendingSpawn)
	default:
		g.renderTiles(dst, boardX, boardY, g.session.Board(), nil)
	}

	helpY := boardY + boardHeight + 1
	dst.DrawTextColored(boardX, helpY, "arrows/wasd: move  r: restart  p: pause  q: quit", core.ColorGray)

	if g.paused {
		g.renderOverlay(dst, "PAUSED")
	} else if g.session.Over() {
		g.renderOverlay(dst, "GAME OVER")
	} else if g.winBannerVisible() {
		g.renderOverlay(dst, fmt.Sprintf("YOU WIN! %d reached. Enter to dismiss", g.session.Target()))
	}
}

// renderHUD draws the title and score line above the board.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	dst.DrawTextColored(boardX, 0, g.Title(), core.ColorBrightYellow)
	score := fmt.Sprintf("Score: %d   Best: %d   Max: %d",
		g.session.Score(), g.session.Best(), board.MaxTile(g.session.Board()))
	dst.DrawText(boardX, 1, score)
}

// renderGrid draws the static board frame.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY int) {
	for row := 0; row <= board.Size; row++ {
		y := boardY + row*cellHeight
		for col := 0; col <= board.Size; col++ {
			x := boardX + col*cellWidth
			dst.SetColored(x, y, '+', core.ColorGray)
			if col < board.Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(x+i, y, '-', core.ColorGray)
				}
			}
		}
		if row < board.Size {
			for dy := 1; dy < cellHeight; dy++ {
				for col := 0; col <= board.Size; col++ {
					dst.SetColored(boardX+col*cellWidth, y+dy, '|', core.ColorGray)
				}
			}
		}
	}
}

// renderTiles draws a settled board. A non-nil spawn gets the pop
// highlight instead of its value color.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY int, b board.Board, spawn *board.Spawn) {
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			value := b[row][col]
			if value == 0 {
				continue
			}
			color := tileColor(value)
			if spawn != nil && spawn.Cell.Row == row && spawn.Cell.Col == col {
				color = core.ColorBrightWhite
			}
			g.drawTile(dst, boardX, boardY, float64(row), float64(col), value, color)
		}
	}
}

// renderSliding draws the mid-slide frame: stationary tiles at their old
// cells, moving tiles at interpolated positions.
func (g *Game) renderSliding(dst *core.Screen, boardX, boardY int) {
	moving := make(map[board.Cell]bool, len(g.animations))
	for _, a := range g.animations {
		moving[a.From] = true
	}
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			value := g.prevBoard[row][col]
			if value == 0 || moving[board.Cell{Row: row, Col: col}] {
				continue
			}
			g.drawTile(dst, boardX, boardY, float64(row), float64(col), value, tileColor(value))
		}
	}
	for _, a := range g.animations {
		fr := float64(a.From.Row) + (float64(a.To.Row)-float64(a.From.Row))*a.Progress
		fc := float64(a.From.Col) + (float64(a.To.Col)-float64(a.From.Col))*a.Progress
		g.drawTile(dst, boardX, boardY, fr, fc, a.Value, tileColor(a.Value))
	}
}

// drawTile centers a tile value inside its cell at fractional grid
// coordinates.
func (g *Game) drawTile(dst *core.Screen, boardX, boardY int, row, col float64, value int, color core.Color) {
	x := boardX + int(math.Round(col*cellWidth)) + 1
	y := boardY + int(math.Round(row*cellHeight)) + 1
	label := fmt.Sprintf("%d", value)
	inner := cellWidth - 1
	if len(label) > inner {
		label = label[:inner]
	}
	pad := (inner - len(label)) / 2
	for i, r := range label {
		dst.SetColored(x+pad+i, y, r, color)
	}
}

// renderOverlay draws a centered banner over the board.
func (g *Game) renderOverlay(dst *core.Screen, text string) {
	dst.DrawTextCenteredColored(dst.Height()/2, text, core.ColorBrightRed)
}

// renderTooSmall tells the player to grow the terminal.
func (g *Game) renderTooSmall(dst *core.Screen) {
	dst.DrawTextCenteredColored(dst.Height()/2, "Terminal too small", core.ColorBrightRed)
	dst.DrawTextCenteredColored(dst.Height()/2+1, fmt.Sprintf("need at least %dx%d", boardWidth+2, boardHeight+hudHeight+2), core.ColorGray)
}

// tileColor picks the classic value ramp.
func tileColor(value int) core.Color {
	switch {
	case value <= 2:
		return core.ColorWhite
	case value <= 4:
		return core.ColorBrightWhite
	case value <= 8:
		return core.ColorOrange
	case value <= 16:
		return core.ColorBrightRed
	case value <= 32:
		return core.ColorRed
	case value <= 64:
		return core.ColorBrightMagenta
	case value <= 128:
		return core.ColorBrightYellow
	case value <= 256:
		return core.ColorYellow
	case value <= 512:
		return core.ColorBrightGreen
	case value <= 1024:
		return core.ColorGreen
	case value <= 2048:
		return core.ColorBrightCyan
	default:
		return core.ColorCyan
	}
}
