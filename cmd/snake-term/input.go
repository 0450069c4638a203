package main

import (
	"github.com/gdamore/tcell/v2"
)

// termInput 把 tcell 事件转换为窗口像素坐标下的输入
//
// 单元格 (col, row) 映射到其中心点的像素坐标；
// 暂停和点击为边沿事件，每帧结束时由 EndTick 清除。
type termInput struct {
	cols, rows int

	cursorX, cursorY float64
	hasCursor        bool

	buttonDown     bool
	clickX, clickY float64
	clicked        bool

	pausePressed bool
}

func newTermInput(cols, rows int) *termInput {
	return &termInput{cols: cols, rows: rows}
}

// HandleEvent 处理一个 tcell 事件，返回 false 表示退出
func (in *termInput) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyEscape:
			in.pausePressed = true
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'p' || ev.Rune() == 'P'):
			in.pausePressed = true
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		in.cursorX, in.cursorY = cellCenter(col, row)
		in.hasCursor = true

		down := ev.Buttons()&tcell.Button1 != 0
		if in.buttonDown && !down {
			in.clickX, in.clickY = in.cursorX, in.cursorY
			in.clicked = true
		}
		in.buttonDown = down

	case *tcell.EventResize:
		in.cols, in.rows = ev.Size()
	}
	return true
}

// EndTick 清除本帧的边沿事件
func (in *termInput) EndTick() {
	in.pausePressed = false
	in.clicked = false
}

func (in *termInput) WindowSize() (float64, float64, bool) {
	if in.cols <= 0 || in.rows <= 0 {
		return 0, 0, false
	}
	return float64(in.cols) * cellWidth, float64(in.rows) * cellHeight, true
}

func (in *termInput) CursorPosition() (float64, float64, bool) {
	return in.cursorX, in.cursorY, in.hasCursor
}

func (in *termInput) IsPauseJustPressed() bool {
	return in.pausePressed
}

func (in *termInput) ClickJustReleased() (float64, float64, bool) {
	return in.clickX, in.clickY, in.clicked
}

// cellCenter 单元格中心的像素坐标
func cellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * cellWidth, (float64(row) + 0.5) * cellHeight
}

// pixelToCell 像素坐标所在的单元格
func pixelToCell(x, y float64) (int, int) {
	return int(x / cellWidth), int(y / cellHeight)
}
