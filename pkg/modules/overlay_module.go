package modules

import (
	"fmt"
	"image/color"

	"github.com/gonewx/snake/pkg/components"
	"github.com/gonewx/snake/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	dimOverlayColor   = color.RGBA{A: 140}
	buttonColor       = color.RGBA{R: 60, G: 120, B: 200, A: 255}
	buttonHoverColor  = color.RGBA{R: 80, G: 150, B: 230, A: 255}
	buttonBorderColor = color.RGBA{R: 200, G: 220, B: 255, A: 255}
)

// OverlayModule 暂停和游戏结束覆盖层
//
// 暂停时显示 "Paused"，结束时显示本局得分；
// 会话要求显示重新开始按钮时绘制按钮（悬停高亮）。
type OverlayModule struct {
	faces  *UIFaces
	button *components.ButtonComponent
}

// NewOverlayModule 创建覆盖层模块
func NewOverlayModule(faces *UIFaces, button *components.ButtonComponent) *OverlayModule {
	return &OverlayModule{faces: faces, button: button}
}

// Title 返回当前状态下的覆盖层标题和副标题，游戏进行中返回空字符串
func (m *OverlayModule) Title(session *game.GameSession) (title, subtitle string) {
	switch session.State {
	case game.StatePaused:
		return "Paused", "Press Esc to resume"
	case game.StateGameOver:
		return "Game Over", fmt.Sprintf("Score: %d", session.LastRunScore)
	}
	return "", ""
}

// Draw 绘制覆盖层和按钮
func (m *OverlayModule) Draw(screen *ebiten.Image, session *game.GameSession) {
	bounds := screen.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	if title, subtitle := m.Title(session); title != "" {
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), dimOverlayColor, false)
		m.drawCentered(screen, title, m.faces.Title, w/2, h/2-m.faces.Normal.Size*1.5)
		m.drawCentered(screen, subtitle, m.faces.Normal, w/2, h/2-m.faces.Normal.Size*0.3)
	}

	if session.ResetControlVisible {
		m.drawButton(screen, w, h)
	}
}

func (m *OverlayModule) drawButton(screen *ebiten.Image, w, h float64) {
	x, y := m.button.Bounds(w, h)
	fill := buttonColor
	if m.button.State == components.UIHovered {
		fill = buttonHoverColor
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(m.button.Width), float32(m.button.Height), fill, true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(m.button.Width), float32(m.button.Height), 2, buttonBorderColor, true)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter   // 水平居中
	op.LayoutOptions.SecondaryAlign = text.AlignCenter // 垂直居中
	op.GeoM.Translate(x+m.button.Width/2, y+m.button.Height/2)
	op.ColorScale.ScaleWithColor(hudTextColor)
	text.Draw(screen, m.button.Text, m.faces.Normal, op)
}

func (m *OverlayModule) drawCentered(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64) {
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignEnd
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudTextColor)
	text.Draw(screen, str, face, op)
}
