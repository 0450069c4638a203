package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenInput 基于 ebiten 的输入协作方
//
// 每帧在模拟更新前调用 Poll() 采集一次输入，系统随后读取采集结果。
// 支持鼠标和触摸：触摸点视为指针，手指抬起视为一次点击。
type EbitenInput struct {
	width, height int

	cursorX, cursorY float64
	hasCursor        bool

	// 首次采样的鼠标位置；鼠标离开该位置前不报告指针
	cursorSampled  bool
	firstX, firstY int

	pausePressed bool

	clickX, clickY float64
	clicked        bool

	// 最近一次触摸位置（抬起时 ebiten 已无法查询该触摸点）
	lastTouchX, lastTouchY int
	touching               bool

	touchIDs []ebiten.TouchID
}

// NewEbitenInput 创建输入协作方，初始窗口尺寸取自配置
func NewEbitenInput(width, height int) *EbitenInput {
	return &EbitenInput{width: width, height: height}
}

// SetWindowSize 记录当前窗口尺寸（由 Layout 调用）
func (in *EbitenInput) SetWindowSize(width, height int) {
	in.width = width
	in.height = height
}

// Poll 采集本帧输入
func (in *EbitenInput) Poll() {
	in.pausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	in.clicked = false

	// 触摸优先
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	if len(in.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(in.touchIDs[0])
		in.lastTouchX, in.lastTouchY = x, y
		in.touching = true
		in.cursorX, in.cursorY = float64(x), float64(y)
		in.hasCursor = true
		return
	}
	if in.touching {
		// 手指刚抬起：在最后位置产生一次点击
		in.touching = false
		in.clickX, in.clickY = float64(in.lastTouchX), float64(in.lastTouchY)
		in.clicked = true
		in.cursorX, in.cursorY = in.clickX, in.clickY
		in.hasCursor = true
		return
	}

	x, y := ebiten.CursorPosition()
	in.applyCursor(x, y, inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))
}

// applyCursor 记录鼠标位置和左键松开
//
// 启动时 ebiten 会报告一个鼠标从未到过的位置（如 (0, 0)），
// 因此只有鼠标移动过或点击过之后才报告指针，在此之前蛇保持静止。
func (in *EbitenInput) applyCursor(x, y int, released bool) {
	if !in.cursorSampled {
		in.cursorSampled = true
		in.firstX, in.firstY = x, y
	}
	if x != in.firstX || y != in.firstY || released {
		in.hasCursor = true
	}
	in.cursorX, in.cursorY = float64(x), float64(y)

	if released {
		in.clickX, in.clickY = in.cursorX, in.cursorY
		in.clicked = true
	}
}

// WindowSize 返回当前窗口尺寸
func (in *EbitenInput) WindowSize() (float64, float64, bool) {
	if in.width <= 0 || in.height <= 0 {
		return 0, 0, false
	}
	return float64(in.width), float64(in.height), true
}

// CursorPosition 返回当前指针位置
func (in *EbitenInput) CursorPosition() (float64, float64, bool) {
	return in.cursorX, in.cursorY, in.hasCursor
}

// IsPauseJustPressed 暂停键（Esc 或 P）是否刚被按下
func (in *EbitenInput) IsPauseJustPressed() bool {
	return in.pausePressed
}

// ClickJustReleased 鼠标左键或触摸是否在本帧刚松开
func (in *EbitenInput) ClickJustReleased() (float64, float64, bool) {
	return in.clickX, in.clickY, in.clicked
}
