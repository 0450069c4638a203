package modules

import (
	"fmt"
	"image/color"

	"github.com/gonewx/snake/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// hudPadding HUD 文字距窗口边缘的距离（像素）
const hudPadding = 12

var hudTextColor = color.RGBA{R: 240, G: 240, B: 240, A: 255}

// HUDModule 得分、最高分和帧率显示
type HUDModule struct {
	faces   *UIFaces
	showFPS bool
}

// NewHUDModule 创建 HUD 模块
func NewHUDModule(faces *UIFaces, showFPS bool) *HUDModule {
	return &HUDModule{faces: faces, showFPS: showFPS}
}

// Draw 绘制 HUD
func (m *HUDModule) Draw(screen *ebiten.Image, session *game.GameSession) {
	lineHeight := m.faces.Normal.Size * 1.3
	drawText(screen, fmt.Sprintf("Score: %d", session.Score), m.faces.Normal, hudPadding, hudPadding, text.AlignStart)
	drawText(screen, fmt.Sprintf("Best: %d", session.BestScore), m.faces.Normal, hudPadding, hudPadding+lineHeight, text.AlignStart)

	if m.showFPS {
		w := float64(screen.Bounds().Dx())
		drawText(screen, fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()), m.faces.Normal, w-hudPadding, hudPadding, text.AlignEnd)
	}
}

func drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, align text.Align) {
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = align
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudTextColor)
	text.Draw(screen, str, face, op)
}
