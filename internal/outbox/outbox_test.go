package outbox

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddAndListNewestFirst(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer s.Close()

	for _, name := range []string{"first", "second", "third"} {
		if _, err := s.Add(name, "a@b.co", "hello there"); err != nil {
			t.Fatalf("Add(%s): %v", name, err)
		}
	}

	msgs, err := s.List(0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3", len(msgs))
	}
	want := []string{"third", "second", "first"}
	for i, m := range msgs {
		if m.Name != want[i] {
			t.Errorf("message %d = %q, want %q", i, m.Name, want[i])
		}
	}
}

func TestListLimit(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer s.Close()

	for i := 0; i < 5; i++ {
		if _, err := s.Add("n", "a@b.co", "body"); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	msgs, err := s.List(2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(msgs) != 2 {
		t.Errorf("got %d messages, want 2", len(msgs))
	}
}

func TestCount(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer s.Close()

	if n, _ := s.Count(); n != 0 {
		t.Errorf("fresh store count = %d", n)
	}
	s.Add("n", "a@b.co", "body")
	s.Add("n", "a@b.co", "body")
	if n, _ := s.Count(); n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestMessageRoundTrip(t *testing.T) {
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer s.Close()

	added, err := s.Add("Илья", "ilya@burimskiy.dev", "line one\nline two\n🚋")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.ID == "" {
		t.Error("no id assigned")
	}

	msgs, err := s.List(1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	got := msgs[0]
	if got.ID != added.ID || got.Name != added.Name || got.Email != added.Email || got.Body != added.Body {
		t.Errorf("round trip mismatch: %+v vs %+v", got, added)
	}
	if !got.CreatedAt.Equal(added.CreatedAt) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, added.CreatedAt)
	}
}

func TestOpenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outbox", "messages.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := s.Add("n", "a@b.co", "survives reopen"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	s.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database file missing: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	msgs, err := s2.List(0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Body != "survives reopen" {
		t.Errorf("persisted messages = %+v", msgs)
	}
}
