package main

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gonewx/snake/pkg/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// beepPlayer 使用 beep 合成音播放音效
// 终端模式不读取音效文件，只使用配置中的 tone
type beepPlayer struct {
	mu          sync.Mutex
	tones       map[string]config.ToneConfig
	initialized bool
}

func newBeepPlayer(sounds []config.SoundConfig) *beepPlayer {
	tones := make(map[string]config.ToneConfig, len(sounds))
	for _, s := range sounds {
		if s.Tone.Frequency > 0 && s.Tone.Duration > 0 {
			tones[s.ID] = s.Tone
		}
	}
	return &beepPlayer{tones: tones}
}

// Init 初始化扬声器
func (p *beepPlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

// Close 关闭扬声器
func (p *beepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		speaker.Close()
		p.initialized = false
	}
}

// PlaySound 播放指定ID的合成音
func (p *beepPlayer) PlaySound(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return false
	}
	tone, ok := p.tones[id]
	if !ok {
		log.Printf("[beepPlayer] Sound not configured: %s", id)
		return false
	}

	sine, err := generators.SineTone(sampleRate, tone.Frequency)
	if err != nil {
		log.Printf("[beepPlayer] Failed to create tone for %s: %v", id, err)
		return false
	}
	duration := time.Duration(tone.Duration * float64(time.Second))
	speaker.Play(newVolume(beep.Take(sampleRate.N(duration), sine), tone.Volume))
	return true
}

// newVolume 音量为 0 时静音（log2(0) 为 -Inf）
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
