// Package perf samples frame timings and reports them through the logger at
// a fixed cadence, the desktop equivalent of a page printing its paint
// timings to the console.
package perf

import (
	"fmt"
	"log/slog"
	"time"
)

// reportEvery is how many frames go into one report, five seconds at 60 TPS.
const reportEvery = 300

// Sampler aggregates per-frame update durations.
type Sampler struct {
	log   *slog.Logger
	start time.Time

	frames int
	total  time.Duration
	worst  time.Duration
}

// NewSampler starts a sampler. The start time anchors the session length
// reported at shutdown.
func NewSampler(log *slog.Logger) *Sampler {
	return &Sampler{log: log, start: time.Now()}
}

// Observe records one frame. Every reportEvery frames it emits a report with
// the average and worst update time plus the engine's own tick and frame
// rates, then starts over.
func (s *Sampler) Observe(frame time.Duration, tps, fps float64) {
	s.frames++
	s.total += frame
	if frame > s.worst {
		s.worst = frame
	}
	if s.frames < reportEvery {
		return
	}

	avgMS := s.total.Seconds() * 1000 / float64(s.frames)
	s.log.Info("frame report",
		"avg_ms", avgMS,
		"worst_ms", s.worst.Seconds()*1000,
		"tps", tps,
		"fps", fps,
	)

	s.frames = 0
	s.total = 0
	s.worst = 0
}

// Uptime returns the session length as MM:SS for the shutdown log.
func (s *Sampler) Uptime() string {
	return formatDuration(time.Since(s.start))
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
