package components

import "github.com/gonewx/snake/pkg/utils"

// TransformComponent 存储实体的空间变换
// Position 使用游戏坐标（原点位于窗口中心，Y 轴向上）
// Rotation 为绕 Z 轴的旋转角（弧度），0 表示本地 +X 轴朝右
type TransformComponent struct {
	Position utils.Vec2
	Rotation float64
}
