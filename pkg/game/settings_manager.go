package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// GameSettings 玩家偏好，跨局保存
type GameSettings struct {
	SoundVolume  float64 `yaml:"soundVolume"`  // 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"`
	Fullscreen   bool    `yaml:"fullscreen"` // 下次启动时生效
}

// DefaultSettings 首次启动使用的偏好
func DefaultSettings() *GameSettings {
	return &GameSettings{SoundVolume: 0.8, SoundEnabled: true}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager 持有当前偏好
//
// Set* 只改内存，Save 才落盘。storage 为 nil 时所有持久化操作都是空操作。
type SettingsManager struct {
	storage  *gdata.Manager
	settings *GameSettings
}

// NewSettingsManager 创建并立即加载偏好，加载失败时沿用默认值
func NewSettingsManager(storage *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{storage: storage, settings: DefaultSettings()}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm
}

// Load 重新读取存档
// 存档里缺失的字段保留默认值；读取或解析失败时整体回退到默认值
func (sm *SettingsManager) Load() error {
	loaded := DefaultSettings()
	found, err := loadRecord(sm.storage, settingsObject, settingsProperty, loaded)
	if err != nil || !found {
		sm.settings = DefaultSettings()
		return err
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	sm.settings = loaded
	log.Printf("[SettingsManager] Loaded: volume=%.2f sound=%v fullscreen=%v",
		loaded.SoundVolume, loaded.SoundEnabled, loaded.Fullscreen)
	return nil
}

// Save 写入当前偏好
func (sm *SettingsManager) Save() error {
	return saveRecord(sm.storage, settingsObject, settingsProperty, sm.settings)
}

func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetSoundVolume 超出 [0, 1] 的值会被截断
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}
