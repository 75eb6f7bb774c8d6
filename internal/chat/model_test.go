package chat

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseConversationID(t *testing.T) {
	id, err := ParseConversationID("matrix:!room:example.org")
	if err != nil {
		t.Fatal(err)
	}
	if id.Backend != "matrix" || id.Native != "!room:example.org" {
		t.Errorf("id = %#v", id)
	}
	if id.String() != "matrix:!room:example.org" {
		t.Errorf("String() = %q", id.String())
	}

	for _, bad := range []string{"", "nocolon", ":native", "backend:"} {
		if _, err := ParseConversationID(bad); err == nil {
			t.Errorf("ParseConversationID(%q) should fail", bad)
		}
	}
}

func TestMessageBefore(t *testing.T) {
	t0 := time.Unix(1000, 0)
	a := Message{ID: "a", Timestamp: t0, ReceivedAt: t0.Add(time.Second)}
	b := Message{ID: "b", Timestamp: t0, ReceivedAt: t0.Add(2 * time.Second)}
	c := Message{ID: "c", Timestamp: t0.Add(-time.Minute), ReceivedAt: t0.Add(3 * time.Second)}

	if !a.Before(b) || b.Before(a) {
		t.Error("equal timestamps should order by receipt time")
	}
	if !c.Before(a) {
		t.Error("older backend timestamp should sort first regardless of receipt")
	}
	same := a
	same.ID = "z"
	if !a.Before(same) {
		t.Error("full tie should order by id")
	}
}

func TestParticipantMerge(t *testing.T) {
	p := Participant{ID: "u1", Name: "Alice", Presence: Online}
	got := p.Merge(Participant{ID: "u1", Typing: true})
	if got.Name != "Alice" || got.Presence != Online || !got.Typing {
		t.Errorf("merge = %+v", got)
	}
	got = got.Merge(Participant{ID: "u1", Name: "Alice B"})
	if got.Name != "Alice B" || got.Typing {
		t.Errorf("merge = %+v", got)
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0B"},
		{1000, "1000B"},
		{1001, "1KB"},
		{2_500_000, "2MB"},
		{3_000_000_001, "3GB"},
	}
	for _, tt := range tests {
		if got := (Attachment{Size: tt.size}).HumanSize(); got != tt.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestBodyPreview(t *testing.T) {
	if got := (Body{Text: "hello\nworld"}).Preview(); got != "hello" {
		t.Errorf("Preview = %q", got)
	}
	b := Body{Attachments: []Attachment{{Name: "cat.png", Size: 2048}}}
	if got := b.Preview(); got != "+ cat.png 2KB (remote)" {
		t.Errorf("Preview = %q", got)
	}
	if !(Body{Text: "  "}).IsEmpty() {
		t.Error("whitespace body should be empty")
	}
}

func TestSendErrorUnwraps(t *testing.T) {
	err := &SendError{Conversation: NewConversationID("local", "self"), MessageID: "m1", Reason: "disconnected"}
	if !errors.Is(err, ErrSendFailed) {
		t.Error("SendError should unwrap to ErrSendFailed")
	}
	if !errors.Is(Malformed("no id"), ErrMalformedEvent) {
		t.Error("Malformed should wrap ErrMalformedEvent")
	}
}

func TestClockStrictlyIncreasing(t *testing.T) {
	fixed := time.Unix(5000, 0)
	c := &Clock{now: func() time.Time { return fixed }}
	prev := c.Now()
	for range 5 {
		next := c.Now()
		if !next.After(prev) {
			t.Fatalf("clock went from %v to %v", prev, next)
		}
		prev = next
	}

	c.now = func() time.Time { return fixed.Add(-time.Hour) }
	if next := c.Now(); !next.After(prev) {
		t.Errorf("clock followed wall clock backwards: %v", next)
	}
}

func TestClockAfter(t *testing.T) {
	future := time.Now().Add(time.Hour)
	if got := ClockAfter(future).Now(); !got.After(future) {
		t.Errorf("first receipt %v not after %v", got, future)
	}
	if got := ClockAfter(time.Time{}).Now(); time.Since(got) > time.Minute {
		t.Errorf("zero floor should follow the wall clock, got %v", got)
	}
}

func TestReadAttachment(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "cat.png")
	if err := os.WriteFile(png, []byte("\x89PNG\r\n\x1a\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	a, err := ReadAttachment(png)
	if err != nil {
		t.Fatal(err)
	}
	if a.Name != "cat.png" || a.MIMEType != "image/png" || a.Size != 8 || len(a.Inline) != 8 {
		t.Errorf("attachment = %+v", a)
	}

	noext := filepath.Join(dir, "notes")
	if err := os.WriteFile(noext, []byte("plain words"), 0o600); err != nil {
		t.Fatal(err)
	}
	a, err = ReadAttachment(noext)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(a.MIMEType, "text/plain") {
		t.Errorf("sniffed type = %q", a.MIMEType)
	}

	if _, err := ReadAttachment(filepath.Join(dir, "missing")); err == nil {
		t.Error("missing file accepted")
	}
}
