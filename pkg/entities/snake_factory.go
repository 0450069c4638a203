package entities

import (
	"github.com/gonewx/snake/pkg/components"
	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/ecs"
	"github.com/gonewx/snake/pkg/utils"
)

// 计时器名称
const segmentImmunityTimer = "segment_immunity"

// NewSnakeHead 创建蛇头实体
// 参数:
//   - manager: EntityManager 实例
//   - cfg: 蛇的配置（半径、颜色）
//   - position: 初始位置（游戏坐标）
//
// 蛇头持有零值节段状态（免疫关闭、计时器为空）
//
// 返回: 创建的实体ID
func NewSnakeHead(manager *ecs.EntityManager, cfg config.SnakeSettings, position utils.Vec2) ecs.EntityID {
	id := manager.CreateEntity(components.KindSnakeHead,
		components.TransformComponent{Position: position},
		components.ShapeComponent{Radius: cfg.Radius, Color: cfg.Color.Color()},
	)
	manager.SetSegment(id, components.SegmentComponent{})
	return id
}

// NewSnakeSegment 创建新的蛇身节段
// 新节段复制给定的变换（通常是当前蛇尾），并带有一个新的碰撞免疫倒计时
func NewSnakeSegment(manager *ecs.EntityManager, cfg config.SnakeSettings, transform components.TransformComponent) ecs.EntityID {
	id := manager.CreateEntity(components.KindSnakeSegment,
		transform,
		components.ShapeComponent{Radius: cfg.Radius, Color: cfg.Color.Color()},
	)
	manager.SetSegment(id, components.SegmentComponent{
		IgnoreCollision: true,
		CollisionTimer:  components.NewTimer(segmentImmunityTimer, cfg.ImmunitySeconds, true),
	})
	return id
}
