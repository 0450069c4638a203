// validate_config 检查游戏配置文件
//
// 严格解析 YAML（未知字段视为错误），校验数值范围，
// 要求金币与结束音效都已配置，并报告找不到文件、将使用合成音的音效。
//
// 用法:
//
//	go run ./cmd/validate_config [path ...]
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/gonewx/snake/pkg/config"
	"gopkg.in/yaml.v3"
)

// requiredSounds 游戏事件会播放的音效
var requiredSounds = []string{config.SoundCoin, config.SoundGameOver}

func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		paths = []string{config.DefaultConfigPath}
	}

	failed := 0
	for _, path := range paths {
		if err := validateFile(path); err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("✅ %s\n", path)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func validateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取文件失败: %w", err)
	}

	cfg, err := decodeStrict(data)
	if err != nil {
		return err
	}

	for _, s := range cfg.Sounds {
		if s.Path == "" {
			continue
		}
		if _, err := os.Stat(s.Path); err != nil {
			fmt.Printf("   ⚠️ %s: 音效文件 %s 不存在，将使用合成音 (%.0f Hz)\n", s.ID, s.Path, s.Tone.Frequency)
		}
	}
	fmt.Printf("   窗口 %dx%d, 基础速度 %.0f, 音效 %d 个\n",
		cfg.Window.Width, cfg.Window.Height, cfg.Snake.BaseSpeed, len(cfg.Sounds))
	return nil
}

// decodeStrict 解析配置，拒绝未知字段
func decodeStrict(data []byte) (*config.SnakeConfig, error) {
	cfg := config.DefaultSnakeConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("YAML 解析失败: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("配置无效: %w", err)
	}
	for _, id := range requiredSounds {
		if _, ok := cfg.FindSound(id); !ok {
			return nil, fmt.Errorf("缺少音效 %s", id)
		}
	}
	return cfg, nil
}
