// Package audio 提供 ebiten 音频后端使用的解码、合成与播放管理
//
// 所有内部 PCM 数据统一为 16 位有符号小端、双声道交错格式，
// 与 ebiten audio.Context 的输入格式一致。
package audio

import (
	"fmt"
	"io"
)

// bytesPerFrame 每帧字节数（16 位 × 双声道）
const bytesPerFrame = 4

// PCMStream 内存中的 16 位双声道 PCM 数据流
// 实现 io.ReadSeeker，可直接交给 audio.Context.NewPlayer
type PCMStream struct {
	data       []byte
	sampleRate int
	offset     int64
}

// NewPCMStream 包装已有的双声道 PCM 数据
func NewPCMStream(data []byte, sampleRate int) *PCMStream {
	return &PCMStream{data: data, sampleRate: sampleRate}
}

// Read 实现 io.Reader
func (s *PCMStream) Read(p []byte) (int, error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

// Seek 实现 io.Seeker
func (s *PCMStream) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = s.offset + offset
	case io.SeekEnd:
		next = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if next < 0 {
		return 0, fmt.Errorf("negative position: %d", next)
	}
	s.offset = next
	return next, nil
}

// Length 返回数据总字节数
func (s *PCMStream) Length() int64 {
	return int64(len(s.data))
}

// SampleRate 返回采样率
func (s *PCMStream) SampleRate() int {
	return s.sampleRate
}

// putStereo 把一个采样写入两个声道
func putStereo(buf []byte, frame int, sample int16) {
	i := frame * bytesPerFrame
	buf[i] = byte(sample)
	buf[i+1] = byte(sample >> 8)
	buf[i+2] = byte(sample)
	buf[i+3] = byte(sample >> 8)
}
