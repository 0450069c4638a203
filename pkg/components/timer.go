package components

// TimerComponent 通用计时器组件
// 用于处理需要时间延迟的行为（如金币生成周期、节段碰撞免疫）
//
// 计时逻辑由 systems.TickTimer 驱动，组件本身只保存数据。
type TimerComponent struct {
	Name        string  // 计时器名称，如 "segment_immunity"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	Repeating   bool    // 完成后是否自动开始下一个周期
	IsReady     bool    // 本次推进中是否刚刚完成（仅在完成的那一帧为 true）
	TimesFired  int     // 累计完成次数
}

// NewTimer 创建一个从 0 开始计时的计时器
func NewTimer(name string, seconds float64, repeating bool) TimerComponent {
	return TimerComponent{
		Name:       name,
		TargetTime: seconds,
		Repeating:  repeating,
	}
}
