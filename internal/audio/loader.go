package audio

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

// DecodeSound 按扩展名解码音效文件，并重采样到 sampleRate
//
// 支持 .ogg、.mp3、.au
func DecodeSound(path string, data []byte, sampleRate int) (io.ReadSeeker, error) {
	reader := bytes.NewReader(data)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		stream, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err)
		}
		return stream, nil
	case ".au":
		stream, err := DecodeAU(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode AU sound effect %s: %w", path, err)
		}
		if stream.SampleRate() == sampleRate {
			return stream, nil
		}
		return audio.Resample(stream, stream.Length(), stream.SampleRate(), sampleRate), nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .au)", ext)
	}
}
