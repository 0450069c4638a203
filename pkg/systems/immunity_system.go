package systems

import (
	"github.com/gonewx/snake/pkg/ecs"
	"github.com/gonewx/snake/pkg/game"
)

// ImmunitySystem 推进新节段的碰撞免疫倒计时
//
// 倒计时第一次完成时关闭免疫。关闭后不再推进该计时器，
// 因此即使计时器声明为重复计时，免疫也只会结束一次，之后永久可碰撞。
type ImmunitySystem struct {
	entityManager *ecs.EntityManager
	session       *game.GameSession
}

// NewImmunitySystem 创建免疫倒计时系统
func NewImmunitySystem(em *ecs.EntityManager, session *game.GameSession) *ImmunitySystem {
	return &ImmunitySystem{
		entityManager: em,
		session:       session,
	}
}

// Update 推进所有免疫中节段的倒计时
func (s *ImmunitySystem) Update(deltaTime float64) {
	if !s.session.IsInGame() || s.session.ChainLength() < 2 {
		return
	}

	for _, id := range s.session.Chain[1:] {
		segment, ok := s.entityManager.GetSegment(id)
		if !ok || !segment.IgnoreCollision {
			continue
		}
		if TickTimer(&segment.CollisionTimer, deltaTime) {
			segment.IgnoreCollision = false
		}
	}
}
