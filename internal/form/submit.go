package form

import (
	"math/rand"
	"time"
)

// ticksPerSecond matches the app loop rate.
const ticksPerSecond = 60

// Outcome is the result of one Submitter tick.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeFailure
)

// Submitter simulates sending the form to a backend that does not exist.
// A send takes a fixed delay and then succeeds with the configured
// probability. The coin is flipped when the delay elapses, not when the send
// starts. Only one send can be in flight and a failed send is never retried
// on its own.
type Submitter struct {
	delayTicks int
	rate       float64
	rng        *rand.Rand

	pending   bool
	remaining int
}

// NewSubmitter builds a Submitter resolving after delay with the given
// success rate in [0, 1].
func NewSubmitter(delay time.Duration, rate float64, rng *rand.Rand) *Submitter {
	ticks := int(delay * ticksPerSecond / time.Second)
	if ticks < 1 {
		ticks = 1
	}
	return &Submitter{delayTicks: ticks, rate: rate, rng: rng}
}

// Start begins a send. It reports false if one is already in flight.
func (s *Submitter) Start() bool {
	if s.pending {
		return false
	}
	s.pending = true
	s.remaining = s.delayTicks
	return true
}

// Pending reports whether a send is in flight.
func (s *Submitter) Pending() bool { return s.pending }

// Update advances the in-flight send by one tick. It returns OutcomeNone
// until the delay elapses, then exactly one OutcomeSuccess or OutcomeFailure.
func (s *Submitter) Update() Outcome {
	if !s.pending {
		return OutcomeNone
	}
	s.remaining--
	if s.remaining > 0 {
		return OutcomeNone
	}
	s.pending = false
	if s.rng.Float64() < s.rate {
		return OutcomeSuccess
	}
	return OutcomeFailure
}
