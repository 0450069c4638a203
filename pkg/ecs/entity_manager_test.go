package ecs

import (
	"testing"

	"github.com/gonewx/snake/pkg/components"
	"github.com/gonewx/snake/pkg/utils"
)

func newTestEntity(em *EntityManager, kind components.EntityKind, x, y float64) EntityID {
	return em.CreateEntity(kind, components.TransformComponent{Position: utils.Vec2{X: x, Y: y}}, components.ShapeComponent{Radius: 10})
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := newTestEntity(em, components.KindSnakeHead, 0, 0)
	id2 := newTestEntity(em, components.KindCoin, 5, 5)

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}

	if em.Count() != 2 {
		t.Errorf("Expected 2 entities, got %d", em.Count())
	}
}

func TestGetTransform(t *testing.T) {
	em := NewEntityManager()
	id := newTestEntity(em, components.KindCoin, 100, 200)

	tr, ok := em.GetTransform(id)
	if !ok {
		t.Fatal("Transform should be found")
	}
	if tr.Position.X != 100 || tr.Position.Y != 200 {
		t.Errorf("Transform mismatch, expected (100, 200), got (%f, %f)", tr.Position.X, tr.Position.Y)
	}

	// 通过指针修改后再次读取
	tr.Position.X = 42
	tr2, _ := em.GetTransform(id)
	if tr2.Position.X != 42 {
		t.Errorf("Expected mutation to persist, got %f", tr2.Position.X)
	}
}

func TestSegmentOnlyWhenAttached(t *testing.T) {
	em := NewEntityManager()
	coin := newTestEntity(em, components.KindCoin, 0, 0)
	seg := newTestEntity(em, components.KindSnakeSegment, 0, 0)

	if _, ok := em.GetSegment(coin); ok {
		t.Error("Coin should not have a segment component")
	}

	em.SetSegment(seg, components.SegmentComponent{IgnoreCollision: true})
	s, ok := em.GetSegment(seg)
	if !ok {
		t.Fatal("Segment component should be attached")
	}
	if !s.IgnoreCollision {
		t.Error("Expected IgnoreCollision=true")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := newTestEntity(em, components.KindCoin, 0, 0)

	// 标记删除
	em.DestroyEntity(id)

	// 标记后立即对查询不可见
	if em.IsAlive(id) {
		t.Error("Entity should not be alive after being marked")
	}
	if _, ok := em.GetTransform(id); ok {
		t.Error("Marked entity should not expose its transform")
	}
	if len(em.GetEntitiesOfKind(components.KindCoin)) != 0 {
		t.Error("Marked entity should not appear in queries")
	}

	// 重复标记是安全的
	em.DestroyEntity(id)

	em.RemoveMarkedEntities()
	if em.Count() != 0 {
		t.Errorf("Expected 0 entities after cleanup, got %d", em.Count())
	}
}

func TestDestroyUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	em.DestroyEntity(999)
	em.RemoveMarkedEntities()

	if em.Count() != 0 {
		t.Errorf("Expected 0 entities, got %d", em.Count())
	}
}

func TestGetEntitiesOfKindKeepsCreationOrder(t *testing.T) {
	em := NewEntityManager()
	c1 := newTestEntity(em, components.KindCoin, 0, 0)
	newTestEntity(em, components.KindSnakeHead, 0, 0)
	c2 := newTestEntity(em, components.KindCoin, 0, 0)
	c3 := newTestEntity(em, components.KindCoin, 0, 0)

	em.DestroyEntity(c2)
	em.RemoveMarkedEntities()

	coins := em.GetEntitiesOfKind(components.KindCoin)
	if len(coins) != 2 {
		t.Fatalf("Expected 2 coins, got %d", len(coins))
	}
	if coins[0] != c1 || coins[1] != c3 {
		t.Errorf("Expected [%d %d], got %v", c1, c3, coins)
	}
}

func TestIDsAreNeverReused(t *testing.T) {
	em := NewEntityManager()
	id1 := newTestEntity(em, components.KindCoin, 0, 0)
	em.DestroyEntity(id1)
	em.RemoveMarkedEntities()

	id2 := newTestEntity(em, components.KindCoin, 0, 0)
	if id2 == id1 {
		t.Errorf("Entity ID %d was reused", id1)
	}
}

func TestEntitiesSnapshot(t *testing.T) {
	em := NewEntityManager()
	newTestEntity(em, components.KindSnakeHead, 0, 0)
	coin := newTestEntity(em, components.KindCoin, 1, 1)
	em.DestroyEntity(coin)

	all := em.Entities()
	if len(all) != 1 {
		t.Fatalf("Expected 1 live entity, got %d", len(all))
	}
	if all[0].Kind != components.KindSnakeHead {
		t.Errorf("Expected head, got %s", all[0].Kind)
	}
}
