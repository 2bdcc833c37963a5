package audio

import (
	"encoding/binary"
	"fmt"

	"github.com/gopxl/beep"
)

// pcmStreamer plays decoded mono samples on both channels.
type pcmStreamer struct {
	samples []float64
	pos     int
}

// DecodePCM16 decodes 16-bit little-endian mono PCM into a streamer.
func DecodePCM16(pcm []byte) (beep.StreamSeekCloser, error) {
	if len(pcm)%2 != 0 {
		return nil, fmt.Errorf("audio: odd PCM length %d", len(pcm))
	}
	samples := make([]float64, len(pcm)/2)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(pcm[2*i:]))
		samples[i] = float64(v) / 32768
	}
	return &pcmStreamer{samples: samples}, nil
}

func (s *pcmStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n = copyMono(samples, s.samples[s.pos:])
	s.pos += n
	return n, true
}

func copyMono(dst [][2]float64, src []float64) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i][0] = src[i]
		dst[i][1] = src[i]
	}
	return n
}

func (s *pcmStreamer) Err() error { return nil }

func (s *pcmStreamer) Len() int { return len(s.samples) }

func (s *pcmStreamer) Position() int { return s.pos }

func (s *pcmStreamer) Seek(p int) error {
	if p < 0 || p > len(s.samples) {
		return fmt.Errorf("audio: seek %d out of range [0, %d]", p, len(s.samples))
	}
	s.pos = p
	return nil
}

func (s *pcmStreamer) Close() error { return nil }
