package systems

import (
	"log"

	"github.com/gonewx/snake/pkg/components"
	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/ecs"
	"github.com/gonewx/snake/pkg/event"
	"github.com/gonewx/snake/pkg/game"
	"github.com/gonewx/snake/pkg/utils"
)

// CollisionSystem 检测蛇头与金币、蛇头与自身节段的碰撞
//
// 拾取：蛇头与金币距离 < 蛇半径 + 金币半径 时，发送 CoinCollected 和 SnakeCollided，
// 并立即销毁金币（销毁后对查询不可见，每枚金币只会被收集一次）。
// 自撞：距离 + 松弛量 < 蛇半径 时发送 GameOver；免疫中的节段跳过。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	session       *game.GameSession
	bus           *event.Bus

	pickupDistance float64
	snakeRadius    float64
	slack          float64
}

// NewCollisionSystem 创建碰撞检测系统
func NewCollisionSystem(em *ecs.EntityManager, session *game.GameSession, bus *event.Bus, cfg *config.SnakeConfig) *CollisionSystem {
	return &CollisionSystem{
		entityManager:  em,
		session:        session,
		bus:            bus,
		pickupDistance: cfg.Snake.Radius + cfg.Coin.Radius,
		snakeRadius:    cfg.Snake.Radius,
		slack:          cfg.Snake.SelfCollisionSlack,
	}
}

// Update 执行本帧碰撞检测
func (s *CollisionSystem) Update(deltaTime float64) {
	if !s.session.IsInGame() {
		return
	}

	head, ok := s.session.Head()
	if !ok {
		return
	}
	headTransform, ok := s.entityManager.GetTransform(head)
	if !ok {
		return
	}
	headPos := headTransform.Position

	s.checkCoins(headPos)
	s.checkSelfCollision(head, headPos)
}

func (s *CollisionSystem) checkCoins(headPos utils.Vec2) {
	for _, coin := range s.entityManager.GetEntitiesOfKind(components.KindCoin) {
		transform, ok := s.entityManager.GetTransform(coin)
		if !ok {
			continue
		}
		if headPos.Distance(transform.Position) >= s.pickupDistance {
			continue
		}

		s.bus.CoinCollected.Send(event.CoinCollectedEvent{Coin: coin, Position: transform.Position})
		s.bus.SnakeCollided.Send(event.SnakeCollidedEvent{})
		s.entityManager.DestroyEntity(coin)
		log.Printf("[CollisionSystem] Coin %d collected at (%.1f, %.1f)", coin, transform.Position.X, transform.Position.Y)
	}
}

func (s *CollisionSystem) checkSelfCollision(head ecs.EntityID, headPos utils.Vec2) {
	for _, id := range s.session.Chain[1:] {
		if id == head {
			continue
		}
		segment, ok := s.entityManager.GetSegment(id)
		if !ok || segment.IgnoreCollision {
			continue
		}
		transform, ok := s.entityManager.GetTransform(id)
		if !ok {
			continue
		}

		if headPos.Distance(transform.Position)+s.slack < s.snakeRadius {
			log.Printf("[CollisionSystem] Head hit segment %d", id)
			s.bus.GameOver.Send(event.GameOverEvent{Segment: id})
			return
		}
	}
}
