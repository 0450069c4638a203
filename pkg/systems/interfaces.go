package systems

// InputSource 输入协作方
// 每帧由 InputSystem 查询一次；所有坐标为窗口像素坐标（原点左上角）
type InputSource interface {
	// WindowSize 返回当前窗口尺寸，窗口不可用时 ok 为 false
	WindowSize() (width, height float64, ok bool)
	// CursorPosition 返回当前指针位置，指针不可用时 ok 为 false
	CursorPosition() (x, y float64, ok bool)
	// IsPauseJustPressed 暂停键是否在本帧刚被按下（边沿触发）
	IsPauseJustPressed() bool
	// ClickJustReleased 鼠标左键是否在本帧刚松开，并返回松开时的位置
	ClickJustReleased() (x, y float64, ok bool)
}

// SoundPlayer 音频协作方，播放一次性音效
type SoundPlayer interface {
	// PlaySound 播放指定ID的音效，音效未加载或已静音时返回 false
	PlaySound(id string) bool
}

// ScoreRecorder 成绩记录方（最高分持久化）
type ScoreRecorder interface {
	// RecordScore 记录一局的最终得分，返回是否刷新了最高分
	RecordScore(score int) bool
	// BestScore 返回历史最高分
	BestScore() int
}
