package systems

import (
	"testing"

	"github.com/gonewx/snake/pkg/components"
	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/ecs"
	"github.com/gonewx/snake/pkg/entities"
	"github.com/gonewx/snake/pkg/event"
	"github.com/gonewx/snake/pkg/game"
	"github.com/gonewx/snake/pkg/utils"
)

// fakeInput 可编程的输入源
// 暂停键和点击是边沿事件，被读取一次后自动清除
type fakeInput struct {
	width, height float64
	hasWindow     bool

	cursorX, cursorY float64
	hasCursor        bool

	pausePressed bool

	clickX, clickY float64
	clicked        bool
}

func (f *fakeInput) WindowSize() (float64, float64, bool) {
	return f.width, f.height, f.hasWindow
}

func (f *fakeInput) CursorPosition() (float64, float64, bool) {
	return f.cursorX, f.cursorY, f.hasCursor
}

func (f *fakeInput) IsPauseJustPressed() bool {
	pressed := f.pausePressed
	f.pausePressed = false
	return pressed
}

func (f *fakeInput) ClickJustReleased() (float64, float64, bool) {
	clicked := f.clicked
	f.clicked = false
	return f.clickX, f.clickY, clicked
}

// fakeSoundPlayer 记录播放过的音效ID
type fakeSoundPlayer struct {
	played []string
}

func (f *fakeSoundPlayer) PlaySound(id string) bool {
	f.played = append(f.played, id)
	return true
}

func (f *fakeSoundPlayer) count(id string) int {
	n := 0
	for _, p := range f.played {
		if p == id {
			n++
		}
	}
	return n
}

// fakeRecorder 内存成绩记录
type fakeRecorder struct {
	best     int
	recorded []int
}

func (f *fakeRecorder) RecordScore(score int) bool {
	f.recorded = append(f.recorded, score)
	if score > f.best {
		f.best = score
		return true
	}
	return false
}

func (f *fakeRecorder) BestScore() int {
	return f.best
}

// testWorld 测试用的最小游戏世界：默认配置、蛇头位于原点
type testWorld struct {
	cfg     *config.SnakeConfig
	em      *ecs.EntityManager
	session *game.GameSession
	bus     *event.Bus
	head    ecs.EntityID
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg := config.DefaultSnakeConfig()
	em := ecs.NewEntityManager()
	session := game.NewGameSession(cfg.Snake.BaseSpeed, cfg.Snake.SpeedIncrement)
	session.WindowWidth, session.WindowHeight, session.HasWindow = 800, 600, true

	head := entities.NewSnakeHead(em, cfg.Snake, utils.Vec2{})
	session.Chain = append(session.Chain, head)

	return &testWorld{
		cfg:     cfg,
		em:      em,
		session: session,
		bus:     event.NewBus(),
		head:    head,
	}
}

// addSegment 在指定位置追加一个节段，immune 决定是否处于免疫期
func (w *testWorld) addSegment(t *testing.T, pos utils.Vec2, immune bool) ecs.EntityID {
	t.Helper()
	id := entities.NewSnakeSegment(w.em, w.cfg.Snake, components.TransformComponent{Position: pos})
	seg, _ := w.em.GetSegment(id)
	seg.IgnoreCollision = immune
	w.session.Chain = append(w.session.Chain, id)
	return id
}

func (w *testWorld) addCoin(pos utils.Vec2) ecs.EntityID {
	return entities.NewCoin(w.em, w.cfg.Coin, pos)
}

func (w *testWorld) headTransform(t *testing.T) *components.TransformComponent {
	t.Helper()
	tr, ok := w.em.GetTransform(w.head)
	if !ok {
		t.Fatal("Head transform should exist")
	}
	return tr
}

// endTick 模拟帧边界
func (w *testWorld) endTick() {
	w.bus.Update()
	w.em.RemoveMarkedEntities()
}

func approxEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
