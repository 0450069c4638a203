package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// auHeader Sun/NeXT .au 文件头（大端，至少 24 字节）
type auHeader struct {
	Magic      uint32 // 0x2e736e64 (".snd")
	DataOffset uint32 // 音频数据偏移
	DataSize   uint32 // 数据长度，未知时为 0xFFFFFFFF
	Encoding   uint32
	SampleRate uint32
	Channels   uint32
}

const (
	auMagic         = 0x2e736e64
	auEncodingULaw  = 1 // 8 位 μ-law
	auEncodingPCM16 = 3 // 16 位线性 PCM（大端）
)

// mulawTable μ-law 字节到 16 位 PCM 的解压表
var mulawTable = [256]int16{
	-32124, -31100, -30076, -29052, -28028, -27004, -25980, -24956,
	-23932, -22908, -21884, -20860, -19836, -18812, -17788, -16764,
	-15996, -15484, -14972, -14460, -13948, -13436, -12924, -12412,
	-11900, -11388, -10876, -10364, -9852, -9340, -8828, -8316,
	-7932, -7676, -7420, -7164, -6908, -6652, -6396, -6140,
	-5884, -5628, -5372, -5116, -4860, -4604, -4348, -4092,
	-3900, -3772, -3644, -3516, -3388, -3260, -3132, -3004,
	-2876, -2748, -2620, -2492, -2364, -2236, -2108, -1980,
	-1884, -1820, -1756, -1692, -1628, -1564, -1500, -1436,
	-1372, -1308, -1244, -1180, -1116, -1052, -988, -924,
	-876, -844, -812, -780, -748, -716, -684, -652,
	-620, -588, -556, -524, -492, -460, -428, -396,
	-372, -356, -340, -324, -308, -292, -276, -260,
	-244, -228, -212, -196, -180, -164, -148, -132,
	-120, -112, -104, -96, -88, -80, -72, -64,
	-56, -48, -40, -32, -24, -16, -8, 0,
	32124, 31100, 30076, 29052, 28028, 27004, 25980, 24956,
	23932, 22908, 21884, 20860, 19836, 18812, 17788, 16764,
	15996, 15484, 14972, 14460, 13948, 13436, 12924, 12412,
	11900, 11388, 10876, 10364, 9852, 9340, 8828, 8316,
	7932, 7676, 7420, 7164, 6908, 6652, 6396, 6140,
	5884, 5628, 5372, 5116, 4860, 4604, 4348, 4092,
	3900, 3772, 3644, 3516, 3388, 3260, 3132, 3004,
	2876, 2748, 2620, 2492, 2364, 2236, 2108, 1980,
	1884, 1820, 1756, 1692, 1628, 1564, 1500, 1436,
	1372, 1308, 1244, 1180, 1116, 1052, 988, 924,
	876, 844, 812, 780, 748, 716, 684, 652,
	620, 588, 556, 524, 492, 460, 428, 396,
	372, 356, 340, 324, 308, 292, 276, 260,
	244, 228, 212, 196, 180, 164, 148, 132,
	120, 112, 104, 96, 88, 80, 72, 64,
	56, 48, 40, 32, 24, 16, 8, 0,
}

// DecodeAU 解码 .au 音效文件
//
// 支持 μ-law 与 16 位线性 PCM 编码、单声道或双声道；
// 结果统一转换为 16 位双声道小端 PCM，采样率保持文件原值。
func DecodeAU(r io.Reader) (*PCMStream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read AU file: %w", err)
	}
	if len(data) < 24 {
		return nil, fmt.Errorf("AU file too short: %d bytes (minimum 24)", len(data))
	}

	var header auHeader
	if err := binary.Read(bytes.NewReader(data), binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read AU header: %w", err)
	}
	if header.Magic != auMagic {
		return nil, fmt.Errorf("invalid AU magic number: 0x%08x (expected 0x%08x)", header.Magic, auMagic)
	}
	if header.Channels < 1 || header.Channels > 2 {
		return nil, fmt.Errorf("unsupported channel count: %d (only 1-2 supported)", header.Channels)
	}
	if header.SampleRate == 0 {
		return nil, fmt.Errorf("invalid AU sample rate: 0")
	}

	offset := int(header.DataOffset)
	if offset < 24 || offset >= len(data) {
		return nil, fmt.Errorf("invalid data offset: %d (file size: %d)", offset, len(data))
	}
	payload := data[offset:]
	if header.DataSize != 0xFFFFFFFF && int(header.DataSize) < len(payload) {
		payload = payload[:header.DataSize]
	}

	var samples []int16
	switch header.Encoding {
	case auEncodingULaw:
		samples = make([]int16, len(payload))
		for i, b := range payload {
			samples[i] = mulawTable[b]
		}
	case auEncodingPCM16:
		samples = make([]int16, len(payload)/2)
		for i := range samples {
			samples[i] = int16(binary.BigEndian.Uint16(payload[i*2:]))
		}
	default:
		return nil, fmt.Errorf("unsupported AU encoding: %d (supported: 1 μ-law, 3 PCM16)", header.Encoding)
	}

	channels := int(header.Channels)
	frames := len(samples) / channels
	pcm := make([]byte, frames*bytesPerFrame)
	for f := 0; f < frames; f++ {
		if channels == 1 {
			putStereo(pcm, f, samples[f])
			continue
		}
		left, right := samples[f*2], samples[f*2+1]
		i := f * bytesPerFrame
		pcm[i] = byte(left)
		pcm[i+1] = byte(left >> 8)
		pcm[i+2] = byte(right)
		pcm[i+3] = byte(right >> 8)
	}

	return NewPCMStream(pcm, int(header.SampleRate)), nil
}
