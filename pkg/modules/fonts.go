// Package modules 提供游戏场景内可组合的界面模块
//
// 每个模块封装一块界面功能（HUD、覆盖层、音效设置）的状态与渲染，
// 通过回调与场景交互，由 GameScene 组合使用。
package modules

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// UIFaces 界面字体
type UIFaces struct {
	Normal *text.GoTextFace
	Title  *text.GoTextFace
}

// NewUIFaces 加载内置 Go Regular 字体
func NewUIFaces(size float64) (*UIFaces, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load UI font: %w", err)
	}
	return &UIFaces{
		Normal: &text.GoTextFace{Source: source, Size: size},
		Title:  &text.GoTextFace{Source: source, Size: size * 2},
	}, nil
}
