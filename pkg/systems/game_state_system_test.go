package systems

import (
	"testing"

	"github.com/gonewx/snake/pkg/event"
	"github.com/gonewx/snake/pkg/game"
	"github.com/gonewx/snake/pkg/utils"
)

func TestPauseToggleRoundTrip(t *testing.T) {
	w := newTestWorld(t)
	sys := NewGameStateSystem(w.em, w.session, w.bus, nil)

	if got := sys.TogglePause(); got != game.StatePaused {
		t.Fatalf("Expected Paused after first toggle, got %s", got)
	}
	if got := sys.TogglePause(); got != game.StateInGame {
		t.Fatalf("Expected InGame after second toggle, got %s", got)
	}
}

func TestPauseIgnoredInGameOver(t *testing.T) {
	w := newTestWorld(t)
	sys := NewGameStateSystem(w.em, w.session, w.bus, nil)
	w.session.State = game.StateGameOver

	if got := sys.TogglePause(); got != game.StateGameOver {
		t.Errorf("Pause toggle should be ignored in GameOver, got %s", got)
	}
}

func TestEnterGameOver(t *testing.T) {
	w := newTestWorld(t)
	recorder := &fakeRecorder{best: 3}
	sys := NewGameStateSystem(w.em, w.session, w.bus, recorder)

	s1 := w.addSegment(t, utils.Vec2{X: 1}, false)
	s2 := w.addSegment(t, utils.Vec2{X: 2}, false)
	coin := w.addCoin(utils.Vec2{X: 100})
	w.session.Score = 5
	w.session.SnakeSpeed = 220

	w.bus.GameOver.Send(event.GameOverEvent{Segment: s1})
	sys.Update(0.01)

	if w.session.State != game.StateGameOver {
		t.Fatalf("Expected GameOver, got %s", w.session.State)
	}
	if w.session.Score != 0 {
		t.Errorf("Expected score reset to 0, got %d", w.session.Score)
	}
	if w.session.LastRunScore != 5 {
		t.Errorf("Expected last run score 5, got %d", w.session.LastRunScore)
	}
	if !w.session.ResetControlVisible {
		t.Error("Reset control should be visible after game over")
	}
	if w.em.IsAlive(coin) || w.em.IsAlive(s1) || w.em.IsAlive(s2) {
		t.Error("Coins and body segments should be despawned")
	}
	if !w.em.IsAlive(w.head) {
		t.Error("Head should survive game over")
	}
	if w.session.ChainLength() != 1 || w.session.Chain[0] != w.head {
		t.Errorf("Chain should collapse to the head, got %v", w.session.Chain)
	}
	if len(recorder.recorded) != 1 || recorder.recorded[0] != 5 {
		t.Errorf("Expected score 5 to be recorded, got %v", recorder.recorded)
	}
	if w.session.BestScore != 5 {
		t.Errorf("Expected best score 5, got %d", w.session.BestScore)
	}
	// 速度在重新开始时才恢复
	if w.session.SnakeSpeed != 220 {
		t.Errorf("Speed should be kept until reset, got %f", w.session.SnakeSpeed)
	}
}

func TestRepeatedGameOverIgnored(t *testing.T) {
	w := newTestWorld(t)
	recorder := &fakeRecorder{}
	sys := NewGameStateSystem(w.em, w.session, w.bus, recorder)
	w.session.Score = 2

	w.bus.GameOver.Send(event.GameOverEvent{})
	w.bus.GameOver.Send(event.GameOverEvent{})
	sys.Update(0.01)
	w.endTick()
	w.bus.GameOver.Send(event.GameOverEvent{})
	sys.Update(0.01)

	if len(recorder.recorded) != 1 {
		t.Errorf("Game over cleanup should run once, recorded %v", recorder.recorded)
	}
	if w.session.LastRunScore != 2 {
		t.Errorf("Expected last run score 2, got %d", w.session.LastRunScore)
	}
}

func TestResetAfterGameOver(t *testing.T) {
	w := newTestWorld(t)
	sys := NewGameStateSystem(w.em, w.session, w.bus, nil)
	w.addSegment(t, utils.Vec2{X: 1}, false)
	w.session.SnakeSpeed = 210
	w.session.Score = 1

	w.bus.GameOver.Send(event.GameOverEvent{})
	sys.Update(0.01)
	w.session.GameOverAudioPlayed = true

	sys.Reset()

	if w.session.State != game.StateInGame {
		t.Errorf("Expected InGame after reset, got %s", w.session.State)
	}
	if w.session.ResetControlVisible {
		t.Error("Reset control should be hidden after reset")
	}
	if w.session.ChainLength() != 1 {
		t.Errorf("Expected chain length 1, got %d", w.session.ChainLength())
	}
	if w.session.SnakeSpeed != 200 {
		t.Errorf("Expected speed 200, got %f", w.session.SnakeSpeed)
	}
	if w.session.GameOverAudioPlayed {
		t.Error("Game over audio guard should be cleared")
	}
	if w.session.Score != 0 {
		t.Errorf("Expected score 0, got %d", w.session.Score)
	}
}

func TestResetIsIdempotentInGame(t *testing.T) {
	w := newTestWorld(t)
	sys := NewGameStateSystem(w.em, w.session, w.bus, nil)
	before := w.em.Count()

	sys.Reset()
	sys.Reset()

	if w.session.State != game.StateInGame {
		t.Errorf("Expected InGame, got %s", w.session.State)
	}
	if w.session.ChainLength() != 1 || w.session.Chain[0] != w.head {
		t.Errorf("Expected chain [head], got %v", w.session.Chain)
	}
	if w.session.SnakeSpeed != 200 {
		t.Errorf("Expected speed 200, got %f", w.session.SnakeSpeed)
	}
	if w.session.Score != 0 {
		t.Errorf("Expected score 0, got %d", w.session.Score)
	}
	if w.em.Count() != before {
		t.Errorf("Reset should not spawn or despawn entities, count %d -> %d", before, w.em.Count())
	}
}

func TestResetDuringRunKeepsChainMatchingScore(t *testing.T) {
	w := newTestWorld(t)
	sys := NewGameStateSystem(w.em, w.session, w.bus, nil)

	// 吃了 3 个金币后的局面
	for i := 1; i <= 3; i++ {
		w.addSegment(t, utils.Vec2{X: float64(-20 * i)}, false)
	}
	w.session.Score = 3
	w.session.SnakeSpeed = 230

	sys.Reset()

	if w.session.ChainLength() != 1+w.session.Score {
		t.Errorf("Expected chain length 1 + score, got chain %d score %d", w.session.ChainLength(), w.session.Score)
	}
	if w.session.Score != 0 {
		t.Errorf("Expected score 0 after reset, got %d", w.session.Score)
	}
	if w.session.SnakeSpeed != 200 {
		t.Errorf("Expected speed 200, got %f", w.session.SnakeSpeed)
	}
	if w.session.State != game.StateInGame {
		t.Errorf("Expected InGame, got %s", w.session.State)
	}
}

func TestBestScoreLoadedFromRecorder(t *testing.T) {
	w := newTestWorld(t)
	NewGameStateSystem(w.em, w.session, w.bus, &fakeRecorder{best: 42})

	if w.session.BestScore != 42 {
		t.Errorf("Expected best score 42, got %d", w.session.BestScore)
	}
}
