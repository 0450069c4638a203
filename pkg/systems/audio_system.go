package systems

import (
	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/event"
	"github.com/gonewx/snake/pkg/game"
)

// AudioSystem 把游戏事件转换为音效
//
// 每个 CoinCollected 事件播放一次金币音效；
// 游戏结束音效只在第一次 GameOver 时播放，直到重新开始清除标记。
type AudioSystem struct {
	session    *game.GameSession
	bus        *event.Bus
	player     SoundPlayer // 可为 nil（静音）
	coinReader *event.Reader[event.CoinCollectedEvent]
	overReader *event.Reader[event.GameOverEvent]
}

// NewAudioSystem 创建音效系统
func NewAudioSystem(session *game.GameSession, bus *event.Bus, player SoundPlayer) *AudioSystem {
	return &AudioSystem{
		session:    session,
		bus:        bus,
		player:     player,
		coinReader: bus.CoinCollected.NewReader(),
		overReader: bus.GameOver.NewReader(),
	}
}

// Update 消费本帧的音效相关事件
func (s *AudioSystem) Update(deltaTime float64) {
	for range s.coinReader.Read(s.bus.CoinCollected) {
		s.play(config.SoundCoin)
	}

	for range s.overReader.Read(s.bus.GameOver) {
		if s.session.GameOverAudioPlayed {
			continue
		}
		s.play(config.SoundGameOver)
		s.session.GameOverAudioPlayed = true
	}
}

func (s *AudioSystem) play(id string) {
	if s.player == nil {
		return
	}
	s.player.PlaySound(id)
}
