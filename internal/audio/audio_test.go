package audio

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestRampAt(t *testing.T) {
	tests := []struct {
		name string
		ramp Ramp
		at   time.Duration
		want float64
	}{
		{"exponential start", Ramp{150, 600, 100 * time.Millisecond, RampExponential}, 0, 150},
		{"exponential middle", Ramp{150, 600, 100 * time.Millisecond, RampExponential}, 50 * time.Millisecond, 300},
		{"exponential end holds", Ramp{150, 600, 100 * time.Millisecond, RampExponential}, 150 * time.Millisecond, 600},
		{"linear middle", Ramp{0.2, 0, 300 * time.Millisecond, RampLinear}, 150 * time.Millisecond, 0.1},
		{"exponential to zero falls back to linear", Ramp{1, 0, time.Second, RampExponential}, 500 * time.Millisecond, 0.5},
		{"step before", Ramp{440, 880, 50 * time.Millisecond, RampStep}, 49 * time.Millisecond, 440},
		{"step after", Ramp{440, 880, 50 * time.Millisecond, RampStep}, 50 * time.Millisecond, 880},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ramp.At(tt.at); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("At(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)

	tests := []struct {
		name string
		tone Tone
		peak float64
	}{
		{"jump", JumpTone, 0.1},
		{"squish", SquishTone, 0.2},
		{"score", ScoreTone, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := drain(NewToneStreamer(tt.tone, rate))
			if want := rate.N(tt.tone.Duration); len(samples) != want {
				t.Errorf("got %d samples, want %d", len(samples), want)
			}
			for i, s := range samples {
				if math.Abs(s[0]) > tt.peak+1e-9 {
					t.Fatalf("sample %d = %v exceeds gain %v", i, s[0], tt.peak)
				}
				if s[0] != s[1] {
					t.Fatalf("sample %d is not mono", i)
				}
			}
		})
	}
}

func TestWaveShapes(t *testing.T) {
	tests := []struct {
		wave  WaveType
		phase float64
		want  float64
	}{
		{WaveSine, 0.25, 1},
		{WaveSaw, 0, -1},
		{WaveSaw, 0.5, 0},
		{WaveTriangle, 0, -1},
		{WaveTriangle, 0.5, 1},
		{WaveTriangle, 0.25, 0},
	}

	for _, tt := range tests {
		if got := waveAt(tt.wave, tt.phase); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("waveAt(%v, %v) = %v, want %v", tt.wave, tt.phase, got, tt.want)
		}
	}
}

func TestDecodePCM16(t *testing.T) {
	pcm := []byte{
		0x00, 0x00, // 0
		0xff, 0x7f, // 32767
		0x00, 0x80, // -32768
		0x00, 0x40, // 16384
	}

	s, err := DecodePCM16(pcm)
	if err != nil {
		t.Fatalf("DecodePCM16: %v", err)
	}
	if s.Len() != 4 {
		t.Fatalf("Len = %d, want 4", s.Len())
	}

	got := drain(s)
	want := []float64{0, 32767.0 / 32768, -1, 0.5}
	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i][0] != want[i] || got[i][1] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}

	if err := s.Seek(1); err != nil || s.Position() != 1 {
		t.Errorf("Seek(1): err %v position %d", err, s.Position())
	}
	if err := s.Seek(5); err == nil {
		t.Error("Seek past the end should fail")
	}
}

func TestDecodePCM16OddLength(t *testing.T) {
	if _, err := DecodePCM16([]byte{1, 2, 3}); err == nil {
		t.Error("expected error for odd length")
	}
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	p := NewPlayer(config.AudioConfig{SampleRate: 44100, Volume: 1}, nil)

	// Cues before Init are dropped quietly
	p.Jump()
	p.Squish()
	p.ScoreTick()

	if err := p.PlayPCM([]byte{0, 0}, 24000); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("PlayPCM before Init: %v, want ErrNotInitialized", err)
	}
	if err := p.PlayPCM([]byte{0, 0}, 0); err == nil {
		t.Error("PlayPCM with rate 0 should fail")
	}
	p.Close()
}

func TestNewVolume(t *testing.T) {
	buf := make([][2]float64, 4)

	silent := newVolume(NewToneStreamer(JumpTone, 8000), 0)
	silent.Stream(buf)
	for _, s := range buf {
		if s[0] != 0 {
			t.Fatalf("muted sample = %v", s[0])
		}
	}

	half := newVolume(beep.StreamerFunc(func(s [][2]float64) (int, bool) {
		for i := range s {
			s[i] = [2]float64{1, 1}
		}
		return len(s), true
	}), 0.5)
	half.Stream(buf)
	if math.Abs(buf[0][0]-0.5) > 1e-9 {
		t.Errorf("half volume sample = %v, want 0.5", buf[0][0])
	}
}
