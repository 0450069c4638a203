// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	snakeaudio "github.com/gonewx/snake/internal/audio"
	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/game"
	"github.com/gonewx/snake/pkg/modules"
	"github.com/gonewx/snake/pkg/scenes"
	"github.com/gonewx/snake/pkg/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// audioSampleRate 音频上下文采样率
const audioSampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏配置文件路径，为空则使用嵌入配置
	ConfigPath string
	// Fullscreen 以全屏启动（覆盖已保存的设置）
	Fullscreen bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	gameConfig       *config.SnakeConfig
	sceneManager     *scenes.SceneManager
	input            *EbitenInput
	settingsManager  *game.SettingsManager
	highScoreManager *game.HighScoreManager

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	log.Printf("[App] Config loaded: window %dx%d, base speed %.0f",
		gameConfig.Window.Width, gameConfig.Window.Height, gameConfig.Snake.BaseSpeed)

	// 持久化存储（失败时降级为仅内存）
	storage := game.OpenStorage(game.StorageAppName)
	settingsManager := game.NewSettingsManager(storage)
	highScoreManager := game.NewHighScoreManager(storage)

	// 初始化音频上下文
	audioContext := audio.NewContext(audioSampleRate)
	audioManager := snakeaudio.NewAudioManager(audioContext, gameConfig.Sounds, os.ReadFile, settingsManager)
	log.Printf("[App] AudioManager initialized")

	input := NewEbitenInput(gameConfig.Window.Width, gameConfig.Window.Height)
	sim := simulation.NewSimulation(gameConfig, simulation.Options{
		Input:    input,
		Sounds:   audioManager,
		Recorder: highScoreManager,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	})

	faces, err := modules.NewUIFaces(gameConfig.UI.FontSize)
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}
	soundSettings := modules.NewSoundSettingsModule(settingsManager, faces, modules.SoundSettingsCallbacks{
		OnVolumeChanged: audioManager.SetSoundVolume,
	})
	gameScene := scenes.NewGameScene(sim, faces, soundSettings)
	sceneManager := scenes.NewSceneManager()
	sceneManager.SwitchTo(gameScene)

	if cfg.Fullscreen || settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		gameConfig:       gameConfig,
		sceneManager:     sceneManager,
		input:            input,
		settingsManager:  settingsManager,
		highScoreManager: highScoreManager,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameConfig.Window.Width, a.gameConfig.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.gameConfig.Window.Width, a.gameConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.settingsManager.SetFullscreen(false)
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
			a.settingsManager.SetFullscreen(true)
		}
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: Failed to save settings: %v", err)
		}
	}

	a.input.Poll()

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 逻辑尺寸跟随窗口尺寸，游戏坐标以窗口中心为原点
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.input.SetWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GameConfig 返回已加载的游戏配置
func (a *App) GameConfig() *config.SnakeConfig {
	return a.gameConfig
}

// SaveOnExit 程序退出前保存设置和成绩
func (a *App) SaveOnExit() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
	if err := a.highScoreManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save records: %v", err)
	}
	a.sceneManager.SaveOnExit()
	log.Printf("[App] Saved on exit (best score %d)", a.highScoreManager.BestScore())
}
