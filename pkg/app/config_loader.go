package app

import (
	"fmt"
	"log"

	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/embedded"
)

// loadGameConfig 按优先级加载游戏配置
//
//  1. path 非空时从磁盘读取（失败即返回错误）
//  2. 嵌入资源已初始化时读取 data/config/snake.yaml
//  3. 否则使用内置默认配置
func loadGameConfig(path string) (*config.SnakeConfig, error) {
	if path != "" {
		log.Printf("[Config] Loading config from disk: %s", path)
		return config.LoadSnakeConfig(path)
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] Embedded data not initialized, using built-in defaults")
		return config.DefaultSnakeConfig(), nil
	}

	if !embedded.Exists(config.DefaultConfigPath) {
		return nil, fmt.Errorf("embedded config %s not found", config.DefaultConfigPath)
	}
	data, err := embedded.ReadFile(config.DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}
	log.Printf("[Config] Loading embedded config: %s", config.DefaultConfigPath)
	return config.ParseSnakeConfig(data)
}
