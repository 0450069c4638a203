package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/snake/pkg/components"
	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/ecs"
	"github.com/gonewx/snake/pkg/entities"
	"github.com/gonewx/snake/pkg/game"
	"github.com/gonewx/snake/pkg/utils"
)

// CoinSpawnSystem 管理金币的定时生成
// 游戏进行中每隔 spawnInterval 秒在窗口内（扣除边距）随机生成一枚金币
type CoinSpawnSystem struct {
	entityManager *ecs.EntityManager
	session       *game.GameSession
	coinConfig    config.CoinSettings
	timer         components.TimerComponent
	rng           *rand.Rand

	noRoom absenceLog
}

// NewCoinSpawnSystem 创建金币生成系统
// rng 为 nil 时使用固定种子的随机源
func NewCoinSpawnSystem(em *ecs.EntityManager, session *game.GameSession, cfg config.CoinSettings, rng *rand.Rand) *CoinSpawnSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	log.Printf("[CoinSpawnSystem] Initialized with interval=%.1fs, margin=%.0f", cfg.SpawnIntervalSeconds, cfg.SpawnMargin)
	return &CoinSpawnSystem{
		entityManager: em,
		session:       session,
		coinConfig:    cfg,
		timer:         components.NewTimer("coin_spawn", cfg.SpawnIntervalSeconds, true),
		rng:           rng,
	}
}

// Update 推进生成计时器，到期时生成一枚金币
func (s *CoinSpawnSystem) Update(deltaTime float64) {
	if !s.session.IsInGame() || !s.session.HasWindow {
		return
	}
	if !TickTimer(&s.timer, deltaTime) {
		return
	}

	halfW := s.session.WindowWidth/2 - s.coinConfig.SpawnMargin
	halfH := s.session.WindowHeight/2 - s.coinConfig.SpawnMargin
	if halfW <= 0 || halfH <= 0 {
		s.noRoom.warn("[CoinSpawnSystem] Window %.0fx%.0f too small for margin %.0f, skipping spawn",
			s.session.WindowWidth, s.session.WindowHeight, s.coinConfig.SpawnMargin)
		return
	}
	s.noRoom.clear()

	position := utils.Vec2{
		X: (s.rng.Float64()*2 - 1) * halfW,
		Y: (s.rng.Float64()*2 - 1) * halfH,
	}
	id := entities.NewCoin(s.entityManager, s.coinConfig, position)
	log.Printf("[CoinSpawnSystem] Coin %d spawned at (%.1f, %.1f)", id, position.X, position.Y)
}
