package event

import (
	"github.com/gonewx/snake/pkg/ecs"
	"github.com/gonewx/snake/pkg/utils"
)

// SnakeCollidedEvent 蛇头碰到金币（蛇链增长的触发事件）
type SnakeCollidedEvent struct{}

// CoinCollectedEvent 金币被收集
type CoinCollectedEvent struct {
	Coin     ecs.EntityID
	Position utils.Vec2
}

// GameOverEvent 蛇头撞到自身节段
type GameOverEvent struct {
	Segment ecs.EntityID
}

// Bus 游戏事件总线
// 持有三个逐帧事件队列，检测系统写入，状态/音频/计分系统读取
type Bus struct {
	SnakeCollided *Queue[SnakeCollidedEvent]
	CoinCollected *Queue[CoinCollectedEvent]
	GameOver      *Queue[GameOverEvent]
}

// NewBus 创建事件总线
func NewBus() *Bus {
	return &Bus{
		SnakeCollided: NewQueue[SnakeCollidedEvent](),
		CoinCollected: NewQueue[CoinCollectedEvent](),
		GameOver:      NewQueue[GameOverEvent](),
	}
}

// Update 帧边界处轮换所有队列
func (b *Bus) Update() {
	b.SnakeCollided.Update()
	b.CoinCollected.Update()
	b.GameOver.Update()
}
