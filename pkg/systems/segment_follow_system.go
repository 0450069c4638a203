package systems

import (
	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/ecs"
	"github.com/gonewx/snake/pkg/game"
	"github.com/gonewx/snake/pkg/utils"
)

// SegmentFollowSystem 让蛇身节段依次跟随前一节
//
// 每一节都朝前一节"更新前"的位姿插值，形成拖尾效果：
//
//	target = 蛇头当前位姿
//	for i := 1..n:
//	    prev = chain[i] 的当前位姿
//	    chain[i] 朝 target 插值（位置线性，角度走最短弧）
//	    target = prev
//
// 每一步依赖前一节被覆盖前的位姿，必须按蛇链顺序单次遍历。
type SegmentFollowSystem struct {
	entityManager *ecs.EntityManager
	session       *game.GameSession
	followRate    float64
	speedFactor   float64
}

// NewSegmentFollowSystem 创建节段跟随系统
func NewSegmentFollowSystem(em *ecs.EntityManager, session *game.GameSession, cfg config.SnakeSettings) *SegmentFollowSystem {
	return &SegmentFollowSystem{
		entityManager: em,
		session:       session,
		followRate:    cfg.FollowRate,
		speedFactor:   cfg.SpeedFollowFactor,
	}
}

// BlendFactor 返回本帧的插值系数，限制在 [0, 1]
func (s *SegmentFollowSystem) BlendFactor(deltaTime float64) float64 {
	return utils.Clamp01(s.followRate*deltaTime + s.session.SnakeSpeed*s.speedFactor)
}

// Update 按蛇链顺序更新所有节段（只写节段的 Transform）
func (s *SegmentFollowSystem) Update(deltaTime float64) {
	if !s.session.IsInGame() || s.session.ChainLength() < 2 {
		return
	}

	head := s.session.Chain[0]
	headTransform, ok := s.entityManager.GetTransform(head)
	if !ok {
		return
	}

	f := s.BlendFactor(deltaTime)
	target := *headTransform
	for _, id := range s.session.Chain[1:] {
		transform, ok := s.entityManager.GetTransform(id)
		if !ok {
			continue
		}
		prev := *transform
		transform.Position = transform.Position.Lerp(target.Position, f)
		transform.Rotation = utils.SlerpAngle(transform.Rotation, target.Rotation, f)
		target = prev
	}
}
