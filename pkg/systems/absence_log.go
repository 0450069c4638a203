package systems

import "log"

// absenceLog 对"缺失"类情况（蛇头不存在、窗口不可用等）只记录一次，
// 直到情况恢复后才允许再次记录，避免每帧刷屏
type absenceLog struct {
	logged bool
}

func (a *absenceLog) warn(format string, args ...any) {
	if a.logged {
		return
	}
	a.logged = true
	log.Printf(format, args...)
}

func (a *absenceLog) clear() {
	a.logged = false
}
