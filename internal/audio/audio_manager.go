package audio

import (
	"log"

	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// FileReader 读取音效文件内容（磁盘或嵌入资源）
type FileReader func(path string) ([]byte, error)

// AudioManager 音频管理器
//
// 按音效ID管理播放器：优先加载配置中的音效文件，
// 文件不存在或无法解码时使用配置的合成音。
// 播放时读取 SettingsManager 的音效开关与音量。
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *game.SettingsManager // 可为 nil
	soundPlayers    map[string]*audio.Player
}

// NewAudioManager 创建音频管理器并预加载所有音效
//
// 参数：
//   - ctx: ebiten 音频上下文
//   - sounds: 音效配置
//   - readFile: 音效文件读取函数
//   - sm: 设置管理器（可为 nil，使用默认音量）
func NewAudioManager(ctx *audio.Context, sounds []config.SoundConfig, readFile FileReader, sm *game.SettingsManager) *AudioManager {
	am := &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player, len(sounds)),
	}
	for _, s := range sounds {
		if player := am.loadSound(s, readFile); player != nil {
			am.soundPlayers[s.ID] = player
		}
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(am.soundPlayers))
	return am
}

// loadSound 加载单个音效
func (am *AudioManager) loadSound(s config.SoundConfig, readFile FileReader) *audio.Player {
	sampleRate := am.audioContext.SampleRate()

	if s.Path != "" && readFile != nil {
		data, err := readFile(s.Path)
		if err == nil {
			stream, err := DecodeSound(s.Path, data, sampleRate)
			if err == nil {
				player, err := am.audioContext.NewPlayer(stream)
				if err == nil {
					return player
				}
				log.Printf("[AudioManager] Warning: Failed to create player for %s: %v", s.ID, err)
			} else {
				log.Printf("[AudioManager] Warning: %v", err)
			}
		} else {
			log.Printf("[AudioManager] Sound file for %s not available (%v), using synthesized tone", s.ID, err)
		}
	}

	pcm := SynthesizeTone(sampleRate, s.Tone)
	if pcm == nil {
		log.Printf("[AudioManager] Warning: Sound %s has neither a file nor a tone", s.ID)
		return nil
	}
	return am.audioContext.NewPlayerFromBytes(pcm)
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放
//
// 返回是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player, ok := am.soundPlayers[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return false
	}

	player.SetVolume(am.GetSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// SetSoundVolume 设置音效音量，影响后续播放
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for _, player := range am.soundPlayers {
		player.SetVolume(am.GetSoundVolume())
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return game.DefaultSettings().SoundVolume
}
