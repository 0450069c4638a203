package audio

import (
	"math"

	"github.com/gonewx/snake/pkg/config"
)

// toneFade 淡入淡出时长（秒），避免起止处的爆音
const toneFade = 0.005

// SynthesizeTone 合成正弦音效，返回 16 位双声道小端 PCM
// 频率、时长或音量不为正时返回 nil
func SynthesizeTone(sampleRate int, tone config.ToneConfig) []byte {
	if sampleRate <= 0 || tone.Frequency <= 0 || tone.Duration <= 0 || tone.Volume <= 0 {
		return nil
	}

	volume := math.Min(tone.Volume, 1)
	frames := int(tone.Duration * float64(sampleRate))
	fadeFrames := int(toneFade * float64(sampleRate))
	buf := make([]byte, frames*bytesPerFrame)

	for f := 0; f < frames; f++ {
		envelope := 1.0
		if fadeFrames > 0 {
			if f < fadeFrames {
				envelope = float64(f) / float64(fadeFrames)
			} else if remaining := frames - 1 - f; remaining < fadeFrames {
				envelope = float64(remaining) / float64(fadeFrames)
			}
		}
		t := float64(f) / float64(sampleRate)
		v := math.Sin(2*math.Pi*tone.Frequency*t) * volume * envelope
		putStereo(buf, f, int16(v*math.MaxInt16))
	}
	return buf
}
