package modules

import (
	"fmt"
	"log"
	"math"

	"github.com/gonewx/snake/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	// volumeStep 每次按键调整的音量
	volumeStep = 0.1
	// messageDuration 提示文字显示时长（秒）
	messageDuration = 1.5
)

// SoundSettingsCallbacks 音效设置变化时的回调
type SoundSettingsCallbacks struct {
	OnVolumeChanged func(volume float64) // 可为 nil
}

// SoundSettingsModule 音效设置模块
//
// M 切换静音，- / = 调整音量。每次修改立即写入 SettingsManager 并保存，
// 并在屏幕底部短暂显示当前设置。
type SoundSettingsModule struct {
	settingsManager *game.SettingsManager
	faces           *UIFaces
	callbacks       SoundSettingsCallbacks

	message      string
	messageTimer float64
}

// NewSoundSettingsModule 创建音效设置模块
// faces 为 nil 时不绘制提示
func NewSoundSettingsModule(sm *game.SettingsManager, faces *UIFaces, callbacks SoundSettingsCallbacks) *SoundSettingsModule {
	return &SoundSettingsModule{
		settingsManager: sm,
		faces:           faces,
		callbacks:       callbacks,
	}
}

// Update 处理按键并推进提示计时
func (m *SoundSettingsModule) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		m.ToggleMute()
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		m.AdjustVolume(-volumeStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		m.AdjustVolume(volumeStep)
	}
	m.tickMessage(deltaTime)
}

// ToggleMute 切换音效开关
func (m *SoundSettingsModule) ToggleMute() {
	settings := m.settingsManager.GetSettings()
	m.settingsManager.SetSoundEnabled(!settings.SoundEnabled)
	m.save()

	if settings.SoundEnabled {
		m.showMessage(fmt.Sprintf("Sound: on (%d%%)", volumePercent(settings.SoundVolume)))
	} else {
		m.showMessage("Sound: off")
	}
}

// AdjustVolume 调整音量（结果限制在 0 ~ 1）
func (m *SoundSettingsModule) AdjustVolume(delta float64) {
	settings := m.settingsManager.GetSettings()
	m.settingsManager.SetSoundVolume(settings.SoundVolume + delta)
	m.save()

	if m.callbacks.OnVolumeChanged != nil {
		m.callbacks.OnVolumeChanged(settings.SoundVolume)
	}
	m.showMessage(fmt.Sprintf("Volume: %d%%", volumePercent(settings.SoundVolume)))
}

// Message 当前提示文字，没有时返回空字符串
func (m *SoundSettingsModule) Message() string {
	return m.message
}

// Draw 在屏幕底部绘制提示
func (m *SoundSettingsModule) Draw(screen *ebiten.Image) {
	msg := m.Message()
	if msg == "" || m.faces == nil {
		return
	}
	bounds := screen.Bounds()
	drawText(screen, msg, m.faces.Normal, hudPadding,
		float64(bounds.Dy())-hudPadding-m.faces.Normal.Size*1.3, text.AlignStart)
}

func (m *SoundSettingsModule) showMessage(msg string) {
	m.message = msg
	m.messageTimer = messageDuration
}

func (m *SoundSettingsModule) tickMessage(deltaTime float64) {
	if m.messageTimer <= 0 {
		return
	}
	m.messageTimer -= deltaTime
	if m.messageTimer <= 0 {
		m.message = ""
	}
}

func (m *SoundSettingsModule) save() {
	if err := m.settingsManager.Save(); err != nil {
		log.Printf("[SoundSettingsModule] Warning: Failed to save settings: %v", err)
	}
}

func volumePercent(volume float64) int {
	return int(math.Round(volume * 100))
}
