package systems

import (
	"log"

	"github.com/gonewx/snake/pkg/components"
	"github.com/gonewx/snake/pkg/ecs"
	"github.com/gonewx/snake/pkg/event"
	"github.com/gonewx/snake/pkg/game"
)

// GameStateSystem 游戏状态机
//
//	InGame  --暂停键-->   Paused
//	Paused  --暂停键-->   InGame
//	InGame  --GameOver--> GameOver
//	GameOver --重新开始--> InGame
//
// 进入 GameOver 时立即清理：销毁金币和所有非蛇头节段，并把蛇链截断为只剩蛇头。
// 已处于 GameOver 时收到的 GameOver 事件被忽略。
type GameStateSystem struct {
	entityManager *ecs.EntityManager
	session       *game.GameSession
	bus           *event.Bus
	reader        *event.Reader[event.GameOverEvent]
	recorder      ScoreRecorder // 可为 nil
}

// NewGameStateSystem 创建游戏状态系统
func NewGameStateSystem(em *ecs.EntityManager, session *game.GameSession, bus *event.Bus, recorder ScoreRecorder) *GameStateSystem {
	if recorder != nil {
		session.BestScore = recorder.BestScore()
	}
	return &GameStateSystem{
		entityManager: em,
		session:       session,
		bus:           bus,
		reader:        bus.GameOver.NewReader(),
		recorder:      recorder,
	}
}

// Update 处理本帧的 GameOver 事件
func (s *GameStateSystem) Update(deltaTime float64) {
	for _, e := range s.reader.Read(s.bus.GameOver) {
		if s.session.State == game.StateGameOver {
			continue
		}
		s.enterGameOver(e)
	}
}

// TogglePause 在 InGame 与 Paused 之间切换
// GameOver 状态下忽略
func (s *GameStateSystem) TogglePause() game.State {
	switch s.session.State {
	case game.StateInGame:
		s.session.State = game.StatePaused
		log.Printf("[GameStateSystem] Game paused")
	case game.StatePaused:
		s.session.State = game.StateInGame
		log.Printf("[GameStateSystem] Game resumed")
	}
	return s.session.State
}

// Reset 重新开始
//
// 隐藏重新开始按钮并回到 InGame；蛇链截断为只剩蛇头，得分清零，
// 速度恢复初始值，清除游戏结束音效标记。
// 蛇链长度始终等于 1 + 得分；已在 InGame 且只有蛇头时调用不改变任何状态。
func (s *GameStateSystem) Reset() {
	s.session.ResetControlVisible = false
	s.session.State = game.StateInGame
	s.truncateChain()
	s.session.Score = 0
	s.session.SnakeSpeed = s.session.BaseSpeed
	s.session.GameOverAudioPlayed = false
	log.Printf("[GameStateSystem] Game reset")
}

// enterGameOver 进入 GameOver 并执行清理
func (s *GameStateSystem) enterGameOver(e event.GameOverEvent) {
	for _, coin := range s.entityManager.GetEntitiesOfKind(components.KindCoin) {
		s.entityManager.DestroyEntity(coin)
	}
	s.truncateChain()

	score := s.session.Score
	s.session.LastRunScore = score
	if s.recorder != nil {
		s.recorder.RecordScore(score)
		s.session.BestScore = s.recorder.BestScore()
	} else if score > s.session.BestScore {
		s.session.BestScore = score
	}

	s.session.Score = 0
	s.session.ResetControlVisible = true
	s.session.State = game.StateGameOver
	log.Printf("[GameStateSystem] Game over (hit segment %d), final score %d", e.Segment, score)
}

// truncateChain 销毁所有非蛇头节段，蛇链只保留蛇头
func (s *GameStateSystem) truncateChain() {
	if s.session.ChainLength() <= 1 {
		return
	}
	for _, id := range s.session.Chain[1:] {
		s.entityManager.DestroyEntity(id)
	}
	s.session.Chain = s.session.Chain[:1]
}
