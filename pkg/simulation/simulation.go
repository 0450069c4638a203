// Package simulation 组装游戏核心：实体存储、会话、事件总线和全部系统
//
// Simulation 不依赖任何渲染或音频后端；前端（ebiten 窗口、终端、无头验证）
// 通过 InputSource / SoundPlayer / ScoreRecorder 接入，并通过只读访问器读取状态。
package simulation

import (
	"log"
	"math/rand"

	"github.com/gonewx/snake/pkg/components"
	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/ecs"
	"github.com/gonewx/snake/pkg/entities"
	"github.com/gonewx/snake/pkg/event"
	"github.com/gonewx/snake/pkg/game"
	"github.com/gonewx/snake/pkg/systems"
	"github.com/gonewx/snake/pkg/utils"
)

// Options 可选协作方，均可为 nil
type Options struct {
	Input    systems.InputSource
	Sounds   systems.SoundPlayer
	Recorder systems.ScoreRecorder
	Rand     *rand.Rand
}

// Simulation 单线程、按帧推进的游戏模拟
type Simulation struct {
	config        *config.SnakeConfig
	entityManager *ecs.EntityManager
	session       *game.GameSession
	bus           *event.Bus
	resetButton   *components.ButtonComponent

	inputSystem     *systems.InputSystem
	coinSpawn       *systems.CoinSpawnSystem
	snakeMovement   *systems.SnakeMovementSystem
	segmentFollow   *systems.SegmentFollowSystem
	collisionSystem *systems.CollisionSystem
	immunitySystem  *systems.ImmunitySystem
	segmentGrowth   *systems.SegmentGrowthSystem
	gameStateSystem *systems.GameStateSystem
	audioSystem     *systems.AudioSystem

	ticks uint64
}

// NewSimulation 创建模拟并在原点生成蛇头
func NewSimulation(cfg *config.SnakeConfig, opts Options) *Simulation {
	em := ecs.NewEntityManager()
	session := game.NewGameSession(cfg.Snake.BaseSpeed, cfg.Snake.SpeedIncrement)
	session.WindowWidth = float64(cfg.Window.Width)
	session.WindowHeight = float64(cfg.Window.Height)
	session.HasWindow = true
	bus := event.NewBus()

	button := &components.ButtonComponent{
		Text:    cfg.UI.ResetButton.Text,
		Width:   cfg.UI.ResetButton.Width,
		Height:  cfg.UI.ResetButton.Height,
		OffsetY: cfg.UI.ResetButton.OffsetY,
	}

	sim := &Simulation{
		config:        cfg,
		entityManager: em,
		session:       session,
		bus:           bus,
		resetButton:   button,
	}

	sim.gameStateSystem = systems.NewGameStateSystem(em, session, bus, opts.Recorder)
	sim.inputSystem = systems.NewInputSystem(session, opts.Input, sim.gameStateSystem, button)
	sim.coinSpawn = systems.NewCoinSpawnSystem(em, session, cfg.Coin, opts.Rand)
	sim.snakeMovement = systems.NewSnakeMovementSystem(em, session, cfg.Snake)
	sim.segmentFollow = systems.NewSegmentFollowSystem(em, session, cfg.Snake)
	sim.collisionSystem = systems.NewCollisionSystem(em, session, bus, cfg)
	sim.immunitySystem = systems.NewImmunitySystem(em, session)
	sim.segmentGrowth = systems.NewSegmentGrowthSystem(em, session, bus, cfg.Snake)
	sim.audioSystem = systems.NewAudioSystem(session, bus, opts.Sounds)

	head := entities.NewSnakeHead(em, cfg.Snake, utils.Vec2{})
	session.Chain = append(session.Chain, head)
	log.Printf("[Simulation] Snake head %d spawned", head)

	return sim
}

// Tick 推进一帧
//
// 系统按固定顺序执行：输入先于蛇头移动，蛇头移动先于碰撞检测，
// 事件消费者在生产者之后。帧末轮换事件队列并释放已销毁的实体。
func (s *Simulation) Tick(deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}

	s.inputSystem.Update(deltaTime)
	s.coinSpawn.Update(deltaTime)
	s.snakeMovement.Update(deltaTime)
	s.segmentFollow.Update(deltaTime)
	s.collisionSystem.Update(deltaTime)
	s.immunitySystem.Update(deltaTime)
	s.segmentGrowth.Update(deltaTime)
	s.gameStateSystem.Update(deltaTime)
	s.audioSystem.Update(deltaTime)

	s.bus.Update()
	s.entityManager.RemoveMarkedEntities()
	s.ticks++
}

// TogglePause 切换暂停（供没有 InputSource 的前端直接调用）
func (s *Simulation) TogglePause() game.State {
	return s.gameStateSystem.TogglePause()
}

// Reset 重新开始
func (s *Simulation) Reset() {
	s.gameStateSystem.Reset()
}

// Config 返回游戏配置
func (s *Simulation) Config() *config.SnakeConfig {
	return s.config
}

// Session 返回会话状态（前端只读）
func (s *Simulation) Session() *game.GameSession {
	return s.session
}

// EntityManager 返回实体存储（前端只读）
func (s *Simulation) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// ResetButton 返回重新开始按钮
func (s *Simulation) ResetButton() *components.ButtonComponent {
	return s.resetButton
}

// Score 当前得分
func (s *Simulation) Score() int {
	return s.session.Score
}

// State 当前游戏状态
func (s *Simulation) State() game.State {
	return s.session.State
}

// Ticks 已推进的帧数
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// HeadPosition 返回蛇头位置
func (s *Simulation) HeadPosition() (utils.Vec2, bool) {
	head, ok := s.session.Head()
	if !ok {
		return utils.Vec2{}, false
	}
	tr, ok := s.entityManager.GetTransform(head)
	if !ok {
		return utils.Vec2{}, false
	}
	return tr.Position, true
}

// SetPointer 直接设置指针目标（游戏坐标），供无头运行使用
func (s *Simulation) SetPointer(p utils.Vec2) {
	s.session.MousePosition = p
	s.session.HasPointer = true
}

// SetWindowSize 直接设置窗口尺寸，供没有 InputSource 的前端使用
func (s *Simulation) SetWindowSize(width, height float64) {
	s.session.WindowWidth, s.session.WindowHeight = width, height
	s.session.HasWindow = width > 0 && height > 0
}

// SpawnCoin 在指定位置生成金币（无头验证与测试用）
func (s *Simulation) SpawnCoin(p utils.Vec2) ecs.EntityID {
	return entities.NewCoin(s.entityManager, s.config.Coin, p)
}
