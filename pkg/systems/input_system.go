package systems

import (
	"log"

	"github.com/gonewx/snake/pkg/components"
	"github.com/gonewx/snake/pkg/game"
)

// InputSystem 读取输入协作方，更新窗口尺寸与指针位置，并处理暂停切换和重新开始按钮
type InputSystem struct {
	session   *game.GameSession
	input     InputSource
	gameState *GameStateSystem
	button    *components.ButtonComponent

	noWindow absenceLog
}

// NewInputSystem 创建输入系统
// input 可为 nil（无头运行时由调用方直接写入会话）
func NewInputSystem(session *game.GameSession, input InputSource, gameState *GameStateSystem, button *components.ButtonComponent) *InputSystem {
	return &InputSystem{
		session:   session,
		input:     input,
		gameState: gameState,
		button:    button,
	}
}

// Update 处理本帧输入
func (s *InputSystem) Update(deltaTime float64) {
	if s.input == nil {
		return
	}

	// 暂停键与窗口无关，始终处理
	if s.input.IsPauseJustPressed() {
		s.gameState.TogglePause()
	}

	w, h, ok := s.input.WindowSize()
	if !ok {
		// 窗口不可用：跳过本帧的指针跟踪
		s.session.HasWindow = false
		s.noWindow.warn("[InputSystem] Window unavailable, skipping pointer tracking")
		return
	}
	s.noWindow.clear()
	s.session.WindowWidth, s.session.WindowHeight = w, h
	s.session.HasWindow = true

	cx, cy, hasCursor := s.input.CursorPosition()
	if hasCursor {
		s.session.MousePosition = s.session.ScreenToWorld(cx, cy)
		s.session.HasPointer = true
	}

	s.updateButton(cx, cy, hasCursor, w, h)
}

// updateButton 更新重新开始按钮的悬停状态，并在按钮内松开左键时触发重置
func (s *InputSystem) updateButton(cx, cy float64, hasCursor bool, w, h float64) {
	if s.button == nil {
		return
	}
	if !s.session.ResetControlVisible {
		s.button.State = components.UINormal
		// 按钮隐藏时丢弃点击
		s.input.ClickJustReleased()
		return
	}

	if hasCursor && s.button.Contains(cx, cy, w, h) {
		s.button.State = components.UIHovered
	} else {
		s.button.State = components.UINormal
	}

	x, y, clicked := s.input.ClickJustReleased()
	if !clicked || !s.button.Contains(x, y, w, h) {
		return
	}
	s.button.State = components.UIClicked
	log.Printf("[InputSystem] %q clicked", s.button.Text)
	s.gameState.Reset()
}
