package perf

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestObserveReportsAtCadence(t *testing.T) {
	var buf bytes.Buffer
	s := NewSampler(slog.New(slog.NewJSONHandler(&buf, nil)))

	for i := 0; i < reportEvery-1; i++ {
		s.Observe(2*time.Millisecond, 60, 60)
	}
	if buf.Len() != 0 {
		t.Fatalf("report emitted early: %s", buf.String())
	}

	s.Observe(8*time.Millisecond, 60, 59.9)
	line := buf.String()
	if !strings.Contains(line, `"msg":"frame report"`) {
		t.Fatalf("no frame report in %q", line)
	}
	if !strings.Contains(line, `"worst_ms":8`) {
		t.Errorf("worst frame not reported: %s", line)
	}
}

func TestObserveResetsAfterReport(t *testing.T) {
	var buf bytes.Buffer
	s := NewSampler(slog.New(slog.NewJSONHandler(&buf, nil)))

	for i := 0; i < reportEvery; i++ {
		s.Observe(10*time.Millisecond, 60, 60)
	}
	buf.Reset()

	// The next window starts from scratch: a lone 1ms frame must not
	// inherit the previous worst.
	for i := 0; i < reportEvery; i++ {
		s.Observe(time.Millisecond, 60, 60)
	}
	line := buf.String()
	if strings.Contains(line, `"worst_ms":10`) {
		t.Errorf("worst carried across windows: %s", line)
	}
	if !strings.Contains(line, `"worst_ms":1`) {
		t.Errorf("fresh window worst missing: %s", line)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{65 * time.Second, "01:05"},
		{10 * time.Minute, "10:00"},
		{3*time.Minute + 7*time.Second, "03:07"},
	}
	for _, c := range cases {
		if got := formatDuration(c.d); got != c.want {
			t.Errorf("formatDuration(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}
