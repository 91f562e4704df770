// Package sound synthesizes the short UI tones: theme clicks, submit
// feedback and the confetti pop. Everything is generated, no audio assets.
package sound

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player owns the speaker. Playing while disabled is a no-op, so callers
// never need to check the sound setting themselves.
type Player struct {
	sr      beep.SampleRate
	rng     *rand.Rand
	enabled bool
	ready   bool
}

// NewPlayer prepares the speaker when enabled. A speaker that fails to open
// returns an error alongside a muted player that is still safe to use.
func NewPlayer(enabled bool, rng *rand.Rand) (*Player, error) {
	p := &Player{sr: sampleRate, rng: rng, enabled: enabled}
	if !enabled {
		return p, nil
	}
	if err := speaker.Init(p.sr, p.sr.N(time.Second/10)); err != nil {
		p.enabled = false
		return p, fmt.Errorf("initializing speaker: %w", err)
	}
	p.ready = true
	return p, nil
}

// Enabled reports whether tones will actually play.
func (p *Player) Enabled() bool { return p.enabled && p.ready }

// SetEnabled toggles sound, opening the speaker on first use.
func (p *Player) SetEnabled(on bool) error {
	p.enabled = on
	if !on || p.ready {
		return nil
	}
	if err := speaker.Init(p.sr, p.sr.N(time.Second/10)); err != nil {
		p.enabled = false
		return fmt.Errorf("initializing speaker: %w", err)
	}
	p.ready = true
	return nil
}

// Close releases the speaker.
func (p *Player) Close() {
	if p.ready {
		speaker.Close()
	}
}

func (p *Player) play(s beep.Streamer) {
	if !p.Enabled() {
		return
	}
	speaker.Play(s)
}

// ThemeClick is the short blip on a palette switch.
func (p *Player) ThemeClick() {
	p.play(newTone(p.sr, 880, 70*time.Millisecond, 0.25))
}

// NavTick is the quiet tick when a nav entry is activated.
func (p *Player) NavTick() {
	p.play(newTone(p.sr, 1320, 40*time.Millisecond, 0.15))
}

// SubmitSuccess is a rising three-note chime.
func (p *Player) SubmitSuccess() {
	p.play(beep.Seq(successChime(p.sr)...))
}

// SubmitFailure is a falling two-note buzz.
func (p *Player) SubmitFailure() {
	p.play(beep.Seq(failureBuzz(p.sr)...))
}

// successChime steps up a major triad, the last note held a little longer.
func successChime(sr beep.SampleRate) []beep.Streamer {
	return []beep.Streamer{
		newTone(sr, 523.25, 90*time.Millisecond, 0.3),
		newTone(sr, 659.25, 90*time.Millisecond, 0.3),
		newTone(sr, 783.99, 120*time.Millisecond, 0.3),
	}
}

// failureBuzz is two low tones stepping down.
func failureBuzz(sr beep.SampleRate) []beep.Streamer {
	return []beep.Streamer{
		newTone(sr, 220, 150*time.Millisecond, 0.3),
		newTone(sr, 174.61, 200*time.Millisecond, 0.3),
	}
}

// ConfettiPop is the noise burst when the confetti lands.
func (p *Player) ConfettiPop() {
	p.play(newNoise(p.sr, 120*time.Millisecond, 0.35, p.rng))
}
