// Package ecs 提供空间实体存储
//
// 本游戏的实体集合小而固定（蛇头、蛇身节段、金币），因此不使用
// 以组件类型为键的通用存储，而是为每个实体保存一条固定结构的记录。
// 记录按实体ID索引，并按创建顺序维护遍历顺序，保证每帧结果确定。
package ecs

import (
	"github.com/gonewx/snake/pkg/components"
)

// EntityID 是实体的唯一标识符
// ID 从 1 开始递增，0 保留为无效ID，ID 永不复用
type EntityID uint64

// InvalidEntity 无效实体ID
const InvalidEntity EntityID = 0

// Entity 实体记录
// 所有实体都有 Transform 和 Shape；Segment 仅蛇链实体持有（金币为 nil）
type Entity struct {
	ID        EntityID
	Kind      components.EntityKind
	Transform components.TransformComponent
	Shape     components.ShapeComponent
	Segment   *components.SegmentComponent
}

// EntityManager 管理所有实体记录
type EntityManager struct {
	nextID   uint64
	entities map[EntityID]*Entity
	order    []EntityID // 创建顺序
	// 待删除的实体ID
	entitiesToDestroy map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		entities:          make(map[EntityID]*Entity),
		order:             make([]EntityID, 0, 64),
		entitiesToDestroy: make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity(kind components.EntityKind, transform components.TransformComponent, shape components.ShapeComponent) EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.entities[id] = &Entity{
		ID:        id,
		Kind:      kind,
		Transform: transform,
		Shape:     shape,
	}
	em.order = append(em.order, id)
	return id
}

// SetSegment 为实体附加节段状态
func (em *EntityManager) SetSegment(id EntityID, segment components.SegmentComponent) bool {
	e, ok := em.Get(id)
	if !ok {
		return false
	}
	e.Segment = &segment
	return true
}

// DestroyEntity 标记实体待删除(不立即删除)
//
// 标记后实体对所有查询立即不可见，记录在 RemoveMarkedEntities 时释放。
// 对不存在或已标记的实体重复调用是安全的。
func (em *EntityManager) DestroyEntity(id EntityID) {
	if _, exists := em.entities[id]; !exists {
		return
	}
	em.entitiesToDestroy[id] = struct{}{}
}

// IsAlive 实体是否存在且未被标记删除
func (em *EntityManager) IsAlive(id EntityID) bool {
	if _, exists := em.entities[id]; !exists {
		return false
	}
	_, marked := em.entitiesToDestroy[id]
	return !marked
}

// Get 返回实体记录
// 实体不存在或已被标记删除时返回 false，调用方不得再修改它
func (em *EntityManager) Get(id EntityID) (*Entity, bool) {
	if !em.IsAlive(id) {
		return nil, false
	}
	return em.entities[id], true
}

// GetTransform 返回实体的变换组件
func (em *EntityManager) GetTransform(id EntityID) (*components.TransformComponent, bool) {
	e, ok := em.Get(id)
	if !ok {
		return nil, false
	}
	return &e.Transform, true
}

// GetSegment 返回实体的节段组件
func (em *EntityManager) GetSegment(id EntityID) (*components.SegmentComponent, bool) {
	e, ok := em.Get(id)
	if !ok || e.Segment == nil {
		return nil, false
	}
	return e.Segment, true
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	if len(em.entitiesToDestroy) == 0 {
		return
	}
	for id := range em.entitiesToDestroy {
		delete(em.entities, id)
	}
	kept := em.order[:0]
	for _, id := range em.order {
		if _, marked := em.entitiesToDestroy[id]; !marked {
			kept = append(kept, id)
		}
	}
	em.order = kept
	clear(em.entitiesToDestroy)
}

// GetEntitiesOfKind 按创建顺序返回指定种类的所有存活实体
func (em *EntityManager) GetEntitiesOfKind(kind components.EntityKind) []EntityID {
	result := make([]EntityID, 0)
	for _, id := range em.order {
		if e, ok := em.Get(id); ok && e.Kind == kind {
			result = append(result, id)
		}
	}
	return result
}

// Entities 按创建顺序返回所有存活实体
func (em *EntityManager) Entities() []*Entity {
	result := make([]*Entity, 0, len(em.order))
	for _, id := range em.order {
		if e, ok := em.Get(id); ok {
			result = append(result, e)
		}
	}
	return result
}

// Count 返回存活实体数量
func (em *EntityManager) Count() int {
	return len(em.entities) - len(em.entitiesToDestroy)
}
