package scenes

import (
	"image/color"
	"log"

	"github.com/gonewx/snake/pkg/components"
	"github.com/gonewx/snake/pkg/ecs"
	"github.com/gonewx/snake/pkg/modules"
	"github.com/gonewx/snake/pkg/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var backgroundColor = color.RGBA{R: 24, G: 24, B: 32, A: 255}

// GameScene 游戏场景：驱动模拟并用 ebiten 绘制
//
// 渲染只读取模拟状态（实体位置与形状、得分、游戏状态、按钮），
// 界面部分交给 HUD、覆盖层和音效设置模块。
type GameScene struct {
	sim *simulation.Simulation

	hud           *modules.HUDModule
	overlay       *modules.OverlayModule
	soundSettings *modules.SoundSettingsModule // 可为 nil
}

// NewGameScene 创建游戏场景
// soundSettings 为 nil 时不提供音效设置按键
func NewGameScene(sim *simulation.Simulation, faces *modules.UIFaces, soundSettings *modules.SoundSettingsModule) *GameScene {
	ui := sim.Config().UI
	log.Printf("[GameScene] Created (font size %.0f, show FPS %v)", ui.FontSize, ui.ShowFPS)
	return &GameScene{
		sim:           sim,
		hud:           modules.NewHUDModule(faces, ui.ShowFPS),
		overlay:       modules.NewOverlayModule(faces, sim.ResetButton()),
		soundSettings: soundSettings,
	}
}

// Simulation 返回场景驱动的模拟
func (s *GameScene) Simulation() *simulation.Simulation {
	return s.sim
}

// Update 推进一帧模拟
func (s *GameScene) Update(deltaTime float64) {
	if s.soundSettings != nil {
		s.soundSettings.Update(deltaTime)
	}
	s.sim.Tick(deltaTime)
}

// Draw 绘制实体、HUD 和覆盖层
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	session := s.sim.Session()
	for _, e := range drawOrder(s.sim.EntityManager().Entities()) {
		x, y := session.WorldToScreen(e.Transform.Position)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(e.Shape.Radius), e.Shape.Color, true)
	}

	s.hud.Draw(screen, session)
	s.overlay.Draw(screen, session)
	if s.soundSettings != nil {
		s.soundSettings.Draw(screen)
	}
}

// drawOrder 金币在最下层，其次蛇身，蛇头在最上层；同类实体保持创建顺序
func drawOrder(all []*ecs.Entity) []*ecs.Entity {
	ordered := make([]*ecs.Entity, 0, len(all))
	for _, kind := range []components.EntityKind{components.KindCoin, components.KindSnakeSegment, components.KindSnakeHead} {
		for _, e := range all {
			if e.Kind == kind {
				ordered = append(ordered, e)
			}
		}
	}
	return ordered
}
