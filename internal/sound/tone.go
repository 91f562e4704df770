package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/faiface/beep"
)

// tone is a finite beep.Streamer: a sine wave with a short attack and a
// linear release so it starts and ends without clicks.
type tone struct {
	sr     beep.SampleRate
	freq   float64
	gain   float64
	length int
	pos    int
}

func newTone(sr beep.SampleRate, freq float64, dur time.Duration, gain float64) *tone {
	return &tone{sr: sr, freq: freq, gain: gain, length: sr.N(dur)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.length {
			break
		}
		x := float64(t.pos) / float64(t.sr)
		v := t.gain * envelope(float64(t.pos)/float64(t.length)) * math.Sin(2*math.Pi*t.freq*x)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

// noise is a finite burst of white noise with the same envelope, used for
// the confetti pop.
type noise struct {
	rng    *rand.Rand
	gain   float64
	length int
	pos    int
}

func newNoise(sr beep.SampleRate, dur time.Duration, gain float64, rng *rand.Rand) *noise {
	return &noise{rng: rng, gain: gain, length: sr.N(dur)}
}

func (s *noise) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if s.pos >= s.length {
			break
		}
		v := s.gain * envelope(float64(s.pos)/float64(s.length)) * (s.rng.Float64()*2 - 1)
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *noise) Err() error { return nil }

// envelope shapes a unit progress value: 10% linear attack, 50% sustain,
// 40% linear release.
func envelope(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x < 0.1:
		return x / 0.1
	case x < 0.6:
		return 1
	case x < 1:
		return (1 - x) / 0.4
	default:
		return 0
	}
}
