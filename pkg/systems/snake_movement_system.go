package systems

import (
	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/ecs"
	"github.com/gonewx/snake/pkg/game"
)

// SnakeMovementSystem 驱动蛇头朝指针方向移动
//
// 指针与蛇头的距离超过死区时更新 LastDirection；
// 否则沿上一次的方向继续前进。蛇头的本地 +X 轴始终指向 LastDirection。
type SnakeMovementSystem struct {
	entityManager *ecs.EntityManager
	session       *game.GameSession
	deadzone      float64

	noHead absenceLog
}

// NewSnakeMovementSystem 创建蛇头移动系统
func NewSnakeMovementSystem(em *ecs.EntityManager, session *game.GameSession, cfg config.SnakeSettings) *SnakeMovementSystem {
	return &SnakeMovementSystem{
		entityManager: em,
		session:       session,
		deadzone:      cfg.SteerDeadzone,
	}
}

// Update 更新蛇头的朝向与位置（只写蛇头的 Transform）
func (s *SnakeMovementSystem) Update(deltaTime float64) {
	if !s.session.IsInGame() {
		return
	}

	head, ok := s.session.Head()
	if !ok {
		s.noHead.warn("[SnakeMovementSystem] Snake chain is empty, skipping movement")
		return
	}
	transform, ok := s.entityManager.GetTransform(head)
	if !ok {
		s.noHead.warn("[SnakeMovementSystem] Head entity %d missing, skipping movement", head)
		return
	}
	s.noHead.clear()

	toTarget := s.session.MousePosition.Sub(transform.Position)
	if toTarget.Length() > s.deadzone {
		s.session.LastDirection = toTarget.NormalizeOrZero()
	}

	direction := s.session.LastDirection
	if !direction.IsZero() {
		transform.Rotation = direction.Angle()
	}
	transform.Position = transform.Position.Add(direction.Scale(s.session.SnakeSpeed * deltaTime))
}
