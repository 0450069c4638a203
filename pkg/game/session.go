// Package game 保存一局游戏的会话状态，以及设置与最高分的持久化
package game

import (
	"github.com/gonewx/snake/pkg/ecs"
	"github.com/gonewx/snake/pkg/utils"
)

// State 游戏状态
// 任意时刻只有一个状态处于激活中
type State int

const (
	// StateInGame 游戏进行中（初始状态）
	StateInGame State = iota
	// StatePaused 已暂停
	StatePaused
	// StateGameOver 游戏结束，等待重新开始
	StateGameOver
)

// String 返回状态名称（用于日志和 HUD）
func (s State) String() string {
	switch s {
	case StateInGame:
		return "InGame"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameSession 一局游戏的全部可变状态
//
// 由 Simulation 持有，并以指针显式传给每个系统。
// 单线程访问，不需要加锁。
type GameSession struct {
	State State

	// 计分
	Score        int // 当前得分
	BestScore    int // 历史最高分（来自持久化记录）
	LastRunScore int // 上一局结束时的得分

	// 速度
	SnakeSpeed     float64 // 当前速度（单位/秒）
	BaseSpeed      float64 // 初始速度，重置时恢复
	SpeedIncrement float64 // 每增加一节的加速量

	// Chain 蛇链，索引 0 为蛇头
	Chain []ecs.EntityID

	// 指针与方向（游戏坐标）
	MousePosition utils.Vec2
	HasPointer    bool // 是否已经收到过指针位置
	LastDirection utils.Vec2

	// 窗口尺寸（像素），HasWindow 为 false 时表示窗口不可用
	WindowWidth  float64
	WindowHeight float64
	HasWindow    bool

	GameOverAudioPlayed bool // 游戏结束音效是否已播放
	ResetControlVisible bool // "Play Again" 按钮是否可见
}

// NewGameSession 创建处于 InGame 状态的新会话
func NewGameSession(baseSpeed, speedIncrement float64) *GameSession {
	return &GameSession{
		State:          StateInGame,
		SnakeSpeed:     baseSpeed,
		BaseSpeed:      baseSpeed,
		SpeedIncrement: speedIncrement,
		Chain:          make([]ecs.EntityID, 0, 32),
	}
}

// Head 返回蛇头实体ID，蛇链为空时返回 false
func (s *GameSession) Head() (ecs.EntityID, bool) {
	if len(s.Chain) == 0 {
		return ecs.InvalidEntity, false
	}
	return s.Chain[0], true
}

// Tail 返回蛇链最后一节
func (s *GameSession) Tail() (ecs.EntityID, bool) {
	if len(s.Chain) == 0 {
		return ecs.InvalidEntity, false
	}
	return s.Chain[len(s.Chain)-1], true
}

// ChainLength 蛇链长度（含蛇头）
func (s *GameSession) ChainLength() int {
	return len(s.Chain)
}

// IsInGame 是否处于游戏进行中
func (s *GameSession) IsInGame() bool {
	return s.State == StateInGame
}

// WindowCenter 返回窗口中心的像素坐标
func (s *GameSession) WindowCenter() (float64, float64) {
	return s.WindowWidth / 2, s.WindowHeight / 2
}

// ScreenToWorld 将窗口像素坐标（原点左上角，Y 向下）转换为游戏坐标（原点在中心，Y 向上）
func (s *GameSession) ScreenToWorld(x, y float64) utils.Vec2 {
	cx, cy := s.WindowCenter()
	return utils.Vec2{X: x - cx, Y: -(y - cy)}
}

// WorldToScreen 将游戏坐标转换为窗口像素坐标
func (s *GameSession) WorldToScreen(p utils.Vec2) (float64, float64) {
	cx, cy := s.WindowCenter()
	return p.X + cx, cy - p.Y
}
