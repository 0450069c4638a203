package systems

import (
	"math"
	"testing"

	"github.com/gonewx/snake/pkg/game"
	"github.com/gonewx/snake/pkg/utils"
)

func TestBlendFactor(t *testing.T) {
	w := newTestWorld(t)
	sys := NewSegmentFollowSystem(w.em, w.session, w.cfg.Snake)

	// 10*0.01 + 200*0.0003 = 0.16
	if f := sys.BlendFactor(0.01); !approxEqual(f, 0.16) {
		t.Errorf("Expected blend factor 0.16, got %f", f)
	}
	// 大帧时间被限制为 1
	if f := sys.BlendFactor(5); f != 1 {
		t.Errorf("Expected blend factor clamped to 1, got %f", f)
	}
}

func TestSegmentsFollowPreviousPose(t *testing.T) {
	w := newTestWorld(t)
	sys := NewSegmentFollowSystem(w.em, w.session, w.cfg.Snake)

	w.headTransform(t).Position = utils.Vec2{X: 100}
	s1 := w.addSegment(t, utils.Vec2{X: 50}, true)
	s2 := w.addSegment(t, utils.Vec2{X: 0}, true)

	const dt = 0.01
	f := sys.BlendFactor(dt)
	sys.Update(dt)

	tr1, _ := w.em.GetTransform(s1)
	tr2, _ := w.em.GetTransform(s2)

	// s1 追蛇头当前位置；s2 追 s1 更新前的位置（50），而不是 s1 的新位置
	want1 := 50 + (100-50)*f
	want2 := 0 + (50-0)*f
	if !approxEqual(tr1.Position.X, want1) {
		t.Errorf("Expected segment 1 at %f, got %f", want1, tr1.Position.X)
	}
	if !approxEqual(tr2.Position.X, want2) {
		t.Errorf("Expected segment 2 to chase previous pose: want %f, got %f", want2, tr2.Position.X)
	}

	// 蛇头不被跟随系统修改
	if w.headTransform(t).Position.X != 100 {
		t.Errorf("Head should not be written by follow system, got %f", w.headTransform(t).Position.X)
	}
}

func TestSegmentRotationBlends(t *testing.T) {
	w := newTestWorld(t)
	sys := NewSegmentFollowSystem(w.em, w.session, w.cfg.Snake)

	w.headTransform(t).Rotation = math.Pi / 2
	s1 := w.addSegment(t, utils.Vec2{}, true)

	sys.Update(10) // f = 1
	tr, _ := w.em.GetTransform(s1)
	if !approxEqual(tr.Rotation, math.Pi/2) {
		t.Errorf("Expected rotation π/2 with full blend, got %f", tr.Rotation)
	}
}

func TestFollowSkippedWhenPaused(t *testing.T) {
	w := newTestWorld(t)
	sys := NewSegmentFollowSystem(w.em, w.session, w.cfg.Snake)

	w.headTransform(t).Position = utils.Vec2{X: 100}
	s1 := w.addSegment(t, utils.Vec2{}, true)
	w.session.State = game.StatePaused

	sys.Update(0.1)
	tr, _ := w.em.GetTransform(s1)
	if tr.Position != (utils.Vec2{}) {
		t.Errorf("Segment should not move while paused, got %v", tr.Position)
	}
}

func TestFollowWithHeadOnly(t *testing.T) {
	w := newTestWorld(t)
	sys := NewSegmentFollowSystem(w.em, w.session, w.cfg.Snake)
	sys.Update(0.1) // 只有蛇头：无操作

	w.session.Chain = w.session.Chain[:0]
	sys.Update(0.1) // 空蛇链：不应 panic
}
