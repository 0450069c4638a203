package components

// UIState represents the current state of a UI element (e.g., button).
type UIState int

const (
	// UINormal indicates the UI element is in its default state.
	UINormal UIState = iota
	// UIHovered indicates the mouse cursor is hovering over the UI element.
	UIHovered
	// UIClicked indicates the UI element has just been clicked.
	UIClicked
)

// ButtonComponent 按钮组件
// 包含按钮的文字、尺寸和交互状态；是否可见由 GameSession 决定
//
// 按钮水平居中于窗口，垂直方向位于窗口中心下方 OffsetY 像素处。
// 坐标使用窗口像素坐标（原点左上角），与输入协作方的指针坐标一致。
type ButtonComponent struct {
	Text    string  // 按钮文字，如 "Play Again"
	Width   float64 // 按钮宽度（像素）
	Height  float64 // 按钮高度（像素）
	OffsetY float64 // 相对窗口中心的垂直偏移（像素，向下为正）
	State   UIState // 当前交互状态
}

// Bounds 返回按钮在给定窗口尺寸下的左上角坐标
func (b *ButtonComponent) Bounds(windowWidth, windowHeight float64) (x, y float64) {
	x = windowWidth/2 - b.Width/2
	y = windowHeight/2 + b.OffsetY
	return x, y
}

// Contains 检测窗口像素坐标 (px, py) 是否位于按钮范围内
func (b *ButtonComponent) Contains(px, py, windowWidth, windowHeight float64) bool {
	x, y := b.Bounds(windowWidth, windowHeight)
	return px >= x && px <= x+b.Width && py >= y && py <= y+b.Height
}
