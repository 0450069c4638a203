package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 内置配置文件路径（位于嵌入的 data/ 目录）
const DefaultConfigPath = "data/config/snake.yaml"

// SnakeConfig 游戏配置
//
// 配置文件位置: data/config/snake.yaml
type SnakeConfig struct {
	Window WindowConfig  `yaml:"window"`
	Snake  SnakeSettings `yaml:"snake"`
	Coin   CoinSettings  `yaml:"coin"`
	UI     UIConfig      `yaml:"ui"`
	Sounds []SoundConfig `yaml:"sounds"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// SnakeSettings 蛇的运动与碰撞参数
type SnakeSettings struct {
	BaseSpeed          float64 `yaml:"baseSpeed"`
	SpeedIncrement     float64 `yaml:"speedIncrement"`
	Radius             float64 `yaml:"radius"`
	FollowRate         float64 `yaml:"followRate"`
	SpeedFollowFactor  float64 `yaml:"speedFollowFactor"`
	SelfCollisionSlack float64 `yaml:"selfCollisionSlack"`
	ImmunitySeconds    float64 `yaml:"immunitySeconds"`
	SteerDeadzone      float64 `yaml:"steerDeadzone"`
	Color              RGBA    `yaml:"color"`
}

// CoinSettings 金币参数
type CoinSettings struct {
	Radius               float64 `yaml:"radius"`
	DrawRadius           float64 `yaml:"drawRadius"`
	SpawnIntervalSeconds float64 `yaml:"spawnIntervalSeconds"`
	SpawnMargin          float64 `yaml:"spawnMargin"`
	Color                RGBA    `yaml:"color"`
}

// UIConfig 界面配置
type UIConfig struct {
	FontSize    float64      `yaml:"fontSize"`
	ShowFPS     bool         `yaml:"showFPS"`
	ResetButton ButtonConfig `yaml:"resetButton"`
}

// ButtonConfig 按钮配置
type ButtonConfig struct {
	Text    string  `yaml:"text"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetY float64 `yaml:"offsetY"`
}

// SoundConfig 音效配置
// Path 指向的文件不存在或无法解码时，使用 Tone 合成音效
type SoundConfig struct {
	ID   string     `yaml:"id"`
	Path string     `yaml:"path"`
	Tone ToneConfig `yaml:"tone"`
}

// ToneConfig 合成正弦音参数
type ToneConfig struct {
	Frequency float64 `yaml:"frequency"` // 赫兹
	Duration  float64 `yaml:"duration"`  // 秒
	Volume    float64 `yaml:"volume"`    // 0.0 ~ 1.0
}

// RGBA 以 [r, g, b, a] 数组形式书写的颜色
type RGBA [4]uint8

// Color 转换为 color.RGBA
func (c RGBA) Color() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// 音效资源ID
const (
	SoundCoin     = "SOUND_COIN"
	SoundGameOver = "SOUND_GAMEOVER"
)

// DefaultSnakeConfig 返回默认配置
// 与 data/config/snake.yaml 的内容一致，供没有嵌入资源的构建（如移动端）使用
func DefaultSnakeConfig() *SnakeConfig {
	return &SnakeConfig{
		Window: WindowConfig{
			Width:     1024,
			Height:    768,
			Title:     "Awesome Snake Game",
			Resizable: true,
		},
		Snake: SnakeSettings{
			BaseSpeed:          200,
			SpeedIncrement:     10,
			Radius:             10,
			FollowRate:         10,
			SpeedFollowFactor:  0.0003,
			SelfCollisionSlack: 7,
			ImmunitySeconds:    2,
			SteerDeadzone:      1,
			Color:              RGBA{0, 200, 0, 255},
		},
		Coin: CoinSettings{
			Radius:               10,
			DrawRadius:           5,
			SpawnIntervalSeconds: 1,
			SpawnMargin:          30,
			Color:                RGBA{220, 30, 30, 255},
		},
		UI: UIConfig{
			FontSize: 24,
			ShowFPS:  true,
			ResetButton: ButtonConfig{
				Text:    "Play Again",
				Width:   200,
				Height:  50,
				OffsetY: 20,
			},
		},
		Sounds: []SoundConfig{
			{
				ID:   SoundCoin,
				Path: "assets/audio/coin.ogg",
				Tone: ToneConfig{Frequency: 1320, Duration: 0.08, Volume: 0.4},
			},
			{
				ID:   SoundGameOver,
				Path: "assets/audio/gameover.ogg",
				Tone: ToneConfig{Frequency: 196, Duration: 0.6, Volume: 0.5},
			},
		},
	}
}

// LoadSnakeConfig 从磁盘加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/config/snake.yaml"）
//
// 返回:
//   - *SnakeConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadSnakeConfig(path string) (*SnakeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snake config: %w", err)
	}
	return ParseSnakeConfig(data)
}

// ParseSnakeConfig 解析 YAML 格式的游戏配置
// 未出现在 YAML 中的字段保留默认值
func ParseSnakeConfig(data []byte) (*SnakeConfig, error) {
	config := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse snake config: %w", err)
	}

	// 验证配置
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snake config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 检查配置值是否在合理范围内：
//   - 速度、半径、时间间隔必须为正
//   - 加速量、边距、跟随系数不能为负
//   - 音效ID不能为空且不能重复
func (c *SnakeConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Snake.BaseSpeed <= 0 {
		return fmt.Errorf("snake baseSpeed must be positive, got %.2f", c.Snake.BaseSpeed)
	}
	if c.Snake.SpeedIncrement < 0 {
		return fmt.Errorf("snake speedIncrement must not be negative, got %.2f", c.Snake.SpeedIncrement)
	}
	if c.Snake.Radius <= 0 {
		return fmt.Errorf("snake radius must be positive, got %.2f", c.Snake.Radius)
	}
	if c.Snake.FollowRate < 0 || c.Snake.SpeedFollowFactor < 0 {
		return fmt.Errorf("snake follow factors must not be negative: followRate=%.4f speedFollowFactor=%.4f",
			c.Snake.FollowRate, c.Snake.SpeedFollowFactor)
	}
	if c.Snake.SelfCollisionSlack < 0 {
		return fmt.Errorf("snake selfCollisionSlack must not be negative, got %.2f", c.Snake.SelfCollisionSlack)
	}
	if c.Snake.ImmunitySeconds <= 0 {
		return fmt.Errorf("snake immunitySeconds must be positive, got %.2f", c.Snake.ImmunitySeconds)
	}
	if c.Snake.SteerDeadzone < 0 {
		return fmt.Errorf("snake steerDeadzone must not be negative, got %.2f", c.Snake.SteerDeadzone)
	}
	if c.Coin.Radius <= 0 || c.Coin.DrawRadius <= 0 {
		return fmt.Errorf("coin radii must be positive: radius=%.2f drawRadius=%.2f", c.Coin.Radius, c.Coin.DrawRadius)
	}
	if c.Coin.SpawnIntervalSeconds <= 0 {
		return fmt.Errorf("coin spawnIntervalSeconds must be positive, got %.2f", c.Coin.SpawnIntervalSeconds)
	}
	if c.Coin.SpawnMargin < 0 {
		return fmt.Errorf("coin spawnMargin must not be negative, got %.2f", c.Coin.SpawnMargin)
	}
	if c.UI.ResetButton.Width <= 0 || c.UI.ResetButton.Height <= 0 {
		return fmt.Errorf("reset button size must be positive: %.0fx%.0f", c.UI.ResetButton.Width, c.UI.ResetButton.Height)
	}

	seen := make(map[string]bool, len(c.Sounds))
	for i, s := range c.Sounds {
		if s.ID == "" {
			return fmt.Errorf("sound #%d has empty id", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate sound id: %s", s.ID)
		}
		seen[s.ID] = true
	}

	return nil
}

// FindSound 按ID查找音效配置
func (c *SnakeConfig) FindSound(id string) (SoundConfig, bool) {
	for _, s := range c.Sounds {
		if s.ID == id {
			return s, true
		}
	}
	return SoundConfig{}, false
}
