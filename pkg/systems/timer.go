package systems

import "github.com/gonewx/snake/pkg/components"

// TickTimer 推进计时器
//
// 返回计时器是否在本次推进中完成，结果同时写入 IsReady。
// 重复计时器完成后保留超出部分继续计时；一次性计时器完成后停在目标时间，
// 之后的推进不会再次报告完成。
func TickTimer(timer *components.TimerComponent, deltaTime float64) bool {
	timer.IsReady = false
	if deltaTime <= 0 || timer.TargetTime <= 0 {
		return false
	}
	if !timer.Repeating && timer.TimesFired > 0 {
		return false
	}

	timer.CurrentTime += deltaTime
	if timer.CurrentTime < timer.TargetTime {
		return false
	}

	timer.IsReady = true
	if timer.Repeating {
		for timer.CurrentTime >= timer.TargetTime {
			timer.CurrentTime -= timer.TargetTime
			timer.TimesFired++
		}
	} else {
		timer.CurrentTime = timer.TargetTime
		timer.TimesFired++
	}
	return true
}
