package entities

import (
	"github.com/gonewx/snake/pkg/components"
	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/ecs"
	"github.com/gonewx/snake/pkg/utils"
)

// NewCoin 创建金币实体
// 绘制半径使用 DrawRadius；拾取判定使用 CoinSettings.Radius，由碰撞系统读取配置
func NewCoin(manager *ecs.EntityManager, cfg config.CoinSettings, position utils.Vec2) ecs.EntityID {
	return manager.CreateEntity(components.KindCoin,
		components.TransformComponent{Position: position},
		components.ShapeComponent{Radius: cfg.DrawRadius, Color: cfg.Color.Color()},
	)
}
