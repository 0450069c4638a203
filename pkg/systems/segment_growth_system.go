package systems

import (
	"log"

	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/ecs"
	"github.com/gonewx/snake/pkg/entities"
	"github.com/gonewx/snake/pkg/event"
	"github.com/gonewx/snake/pkg/game"
)

// SegmentGrowthSystem 消费 SnakeCollided 事件，在蛇尾追加新节段
//
// 每个事件：复制蛇尾的变换生成新节段（带免疫倒计时），加速并加分。
type SegmentGrowthSystem struct {
	entityManager *ecs.EntityManager
	session       *game.GameSession
	bus           *event.Bus
	reader        *event.Reader[event.SnakeCollidedEvent]
	snakeConfig   config.SnakeSettings
}

// NewSegmentGrowthSystem 创建蛇链增长系统
func NewSegmentGrowthSystem(em *ecs.EntityManager, session *game.GameSession, bus *event.Bus, cfg config.SnakeSettings) *SegmentGrowthSystem {
	return &SegmentGrowthSystem{
		entityManager: em,
		session:       session,
		bus:           bus,
		reader:        bus.SnakeCollided.NewReader(),
		snakeConfig:   cfg,
	}
}

// Update 处理本帧的 SnakeCollided 事件
// 非游戏进行中时读取并丢弃事件
func (s *SegmentGrowthSystem) Update(deltaTime float64) {
	events := s.reader.Read(s.bus.SnakeCollided)
	if len(events) == 0 || !s.session.IsInGame() {
		return
	}
	for range events {
		s.Grow()
	}
}

// Grow 在蛇尾追加一个节段
// 蛇链为空或蛇尾缺失时不做任何事
func (s *SegmentGrowthSystem) Grow() {
	tail, ok := s.session.Tail()
	if !ok {
		log.Printf("[SegmentGrowthSystem] Snake chain is empty, cannot grow")
		return
	}
	tailTransform, ok := s.entityManager.GetTransform(tail)
	if !ok {
		log.Printf("[SegmentGrowthSystem] Tail entity %d missing, cannot grow", tail)
		return
	}

	segment := entities.NewSnakeSegment(s.entityManager, s.snakeConfig, *tailTransform)
	s.session.Chain = append(s.session.Chain, segment)
	s.session.SnakeSpeed += s.session.SpeedIncrement
	s.session.Score++

	log.Printf("[SegmentGrowthSystem] Segment %d added: length=%d speed=%.0f score=%d",
		segment, s.session.ChainLength(), s.session.SnakeSpeed, s.session.Score)
}
