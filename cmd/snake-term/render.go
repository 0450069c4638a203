package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/snake/pkg/components"
	"github.com/gonewx/snake/pkg/game"
	"github.com/gonewx/snake/pkg/simulation"
)

var (
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	buttonStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	hoverStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightBlue)
)

// entityRune 各类实体在终端中的字符
func entityRune(kind components.EntityKind) rune {
	switch kind {
	case components.KindSnakeHead:
		return '@'
	case components.KindSnakeSegment:
		return 'o'
	case components.KindCoin:
		return '$'
	}
	return '?'
}

func draw(screen tcell.Screen, sim *simulation.Simulation) {
	screen.Clear()
	session := sim.Session()

	// 蛇头最后绘制，不被节段或金币覆盖
	em := sim.EntityManager()
	for _, kind := range []components.EntityKind{components.KindCoin, components.KindSnakeSegment, components.KindSnakeHead} {
		for _, id := range em.GetEntitiesOfKind(kind) {
			e, ok := em.Get(id)
			if !ok {
				continue
			}
			x, y := session.WorldToScreen(e.Transform.Position)
			col, row := pixelToCell(x, y)
			c := e.Shape.Color
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			screen.SetContent(col, row, entityRune(kind), nil, style)
		}
	}

	drawString(screen, 0, 0, fmt.Sprintf("Score: %d  Best: %d", session.Score, session.BestScore), hudStyle)

	cols, rows := screen.Size()
	switch session.State {
	case game.StatePaused:
		drawCentered(screen, cols, rows/2-1, "Paused (Esc to resume)", titleStyle)
	case game.StateGameOver:
		drawCentered(screen, cols, rows/2-1, fmt.Sprintf("Game Over  Score: %d", session.LastRunScore), titleStyle)
	}
	if session.ResetControlVisible {
		drawButton(screen, sim.ResetButton(), session.WindowWidth, session.WindowHeight)
	}

	screen.Show()
}

func drawButton(screen tcell.Screen, button *components.ButtonComponent, w, h float64) {
	x, y := button.Bounds(w, h)
	left, top := pixelToCell(x, y)
	right, bottom := pixelToCell(x+button.Width, y+button.Height)
	if bottom <= top {
		bottom = top + 1
	}

	style := buttonStyle
	if button.State == components.UIHovered {
		style = hoverStyle
	}
	for row := top; row < bottom; row++ {
		for col := left; col < right; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
	label := button.Text
	mid := top + (bottom-top)/2
	drawString(screen, left+(right-left-len(label))/2, mid, label, style)
}

func drawCentered(screen tcell.Screen, cols, row int, s string, style tcell.Style) {
	drawString(screen, (cols-len(s))/2, row, s, style)
}

func drawString(screen tcell.Screen, col, row int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(col+i, row, r, nil, style)
	}
}
