package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSaw
	WaveTriangle
)

// RampType defines how a parameter moves from its start to its end value.
type RampType int

const (
	RampExponential RampType = iota
	RampLinear
	RampStep // Jumps to the end value once the ramp time has passed
)

// Ramp describes a parameter that starts at From and reaches To after Over.
// The value holds at To for the rest of the tone.
type Ramp struct {
	From, To float64
	Over     time.Duration
	Kind     RampType
}

// At returns the ramp value t into the tone.
func (r Ramp) At(t time.Duration) float64 {
	if t >= r.Over || r.Over <= 0 {
		return r.To
	}
	frac := float64(t) / float64(r.Over)
	switch r.Kind {
	case RampStep:
		return r.From
	case RampLinear:
		return r.From + (r.To-r.From)*frac
	default:
		// Exponential ramps need both ends on the same side of zero
		if r.From <= 0 || r.To <= 0 {
			return r.From + (r.To-r.From)*frac
		}
		return r.From * math.Pow(r.To/r.From, frac)
	}
}

// Tone is a single oscillator shaped by a frequency ramp and a gain ramp.
type Tone struct {
	Wave     WaveType
	Freq     Ramp
	Gain     Ramp
	Duration time.Duration
}

// Cue tones
var (
	JumpTone = Tone{
		Wave:     WaveSine,
		Freq:     Ramp{From: 150, To: 600, Over: 100 * time.Millisecond, Kind: RampExponential},
		Gain:     Ramp{From: 0.1, To: 0.01, Over: 200 * time.Millisecond, Kind: RampExponential},
		Duration: 200 * time.Millisecond,
	}
	SquishTone = Tone{
		Wave:     WaveSaw,
		Freq:     Ramp{From: 100, To: 20, Over: 300 * time.Millisecond, Kind: RampExponential},
		Gain:     Ramp{From: 0.2, To: 0, Over: 300 * time.Millisecond, Kind: RampLinear},
		Duration: 300 * time.Millisecond,
	}
	ScoreTone = Tone{
		Wave:     WaveTriangle,
		Freq:     Ramp{From: 440, To: 880, Over: 50 * time.Millisecond, Kind: RampStep},
		Gain:     Ramp{From: 0.05, To: 0.01, Over: 100 * time.Millisecond, Kind: RampExponential},
		Duration: 100 * time.Millisecond,
	}
)

// toneStreamer renders a Tone sample by sample.
type toneStreamer struct {
	tone     Tone
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
}

// NewToneStreamer returns a finite streamer that plays t at the given rate.
func NewToneStreamer(t Tone, rate beep.SampleRate) beep.Streamer {
	return &toneStreamer{
		tone:  t,
		rate:  rate,
		total: rate.N(t.Duration),
	}
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		at := s.rate.D(s.position)

		val := waveAt(s.tone.Wave, s.phase) * s.tone.Gain.At(at)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.tone.Freq.At(at) / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }

// waveAt evaluates one period of the wave at phase in [0, 1).
func waveAt(w WaveType, phase float64) float64 {
	switch w {
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
