package systems

import (
	"math"
	"testing"

	"github.com/gonewx/snake/pkg/game"
	"github.com/gonewx/snake/pkg/utils"
)

func TestHeadMovesTowardPointer(t *testing.T) {
	w := newTestWorld(t)
	sys := NewSnakeMovementSystem(w.em, w.session, w.cfg.Snake)

	w.session.MousePosition = utils.Vec2{X: 300, Y: 400}
	sys.Update(0.1)

	// 方向 (0.6, 0.8)，速度 200，dt 0.1 -> 位移 20
	tr := w.headTransform(t)
	if !approxEqual(tr.Position.X, 12) || !approxEqual(tr.Position.Y, 16) {
		t.Errorf("Expected head at (12, 16), got %v", tr.Position)
	}
	if !approxEqual(tr.Rotation, math.Atan2(0.8, 0.6)) {
		t.Errorf("Expected rotation %f, got %f", math.Atan2(0.8, 0.6), tr.Rotation)
	}
	if w.session.LastDirection != (utils.Vec2{X: 0.6, Y: 0.8}) {
		t.Errorf("Expected LastDirection (0.6, 0.8), got %v", w.session.LastDirection)
	}
}

func TestHeadPositionFollowsSpeedAndDelta(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		dt    float64
	}{
		{"零帧", 200, 0},
		{"一帧", 200, 1.0 / 60},
		{"加速后", 350, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			sys := NewSnakeMovementSystem(w.em, w.session, w.cfg.Snake)
			w.session.SnakeSpeed = tt.speed
			w.session.MousePosition = utils.Vec2{X: -1000}

			sys.Update(tt.dt)

			want := -tt.speed * tt.dt
			if got := w.headTransform(t).Position.X; !approxEqual(got, want) {
				t.Errorf("Expected head X %f, got %f", want, got)
			}
		})
	}
}

func TestHeadKeepsDirectionInsideDeadzone(t *testing.T) {
	w := newTestWorld(t)
	sys := NewSnakeMovementSystem(w.em, w.session, w.cfg.Snake)

	w.session.LastDirection = utils.Vec2{X: 1}
	w.headTransform(t).Rotation = 0
	// 指针几乎与蛇头重合
	w.session.MousePosition = utils.Vec2{X: 0.5}
	sys.Update(0.1)

	tr := w.headTransform(t)
	if !approxEqual(tr.Position.X, 20) {
		t.Errorf("Expected head to keep moving +X to 20, got %f", tr.Position.X)
	}
	if w.session.LastDirection != (utils.Vec2{X: 1}) {
		t.Errorf("LastDirection should be unchanged, got %v", w.session.LastDirection)
	}
}

func TestHeadStationaryWithoutDirection(t *testing.T) {
	w := newTestWorld(t)
	sys := NewSnakeMovementSystem(w.em, w.session, w.cfg.Snake)

	// 指针与蛇头重合且从未有过方向
	sys.Update(0.1)

	tr := w.headTransform(t)
	if tr.Position != (utils.Vec2{}) {
		t.Errorf("Expected head to stay at origin, got %v", tr.Position)
	}
	if math.IsNaN(tr.Rotation) {
		t.Error("Rotation must not be NaN")
	}
}

func TestHeadFrozenWhenNotInGame(t *testing.T) {
	for _, state := range []game.State{game.StatePaused, game.StateGameOver} {
		t.Run(state.String(), func(t *testing.T) {
			w := newTestWorld(t)
			sys := NewSnakeMovementSystem(w.em, w.session, w.cfg.Snake)
			w.session.State = state
			w.session.MousePosition = utils.Vec2{X: 100}

			sys.Update(0.1)

			if w.headTransform(t).Position != (utils.Vec2{}) {
				t.Errorf("Head should not move in state %s", state)
			}
		})
	}
}

func TestHeadMissingIsSkipped(t *testing.T) {
	w := newTestWorld(t)
	sys := NewSnakeMovementSystem(w.em, w.session, w.cfg.Snake)

	w.em.DestroyEntity(w.head)
	w.session.MousePosition = utils.Vec2{X: 100}
	sys.Update(0.1) // 不应 panic

	w.session.Chain = w.session.Chain[:0]
	sys.Update(0.1)
}
