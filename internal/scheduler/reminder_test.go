package scheduler

import (
	"sync"
	"testing"

	"go.uber.org/zap"
)

type captureNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (c *captureNotifier) Notify(title, body string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, title+"|"+body)
	return nil
}

func newTestReminder(n Notifier, lang string) *Reminder {
	return NewReminder(n, func() string { return lang }, zap.NewNop())
}

func TestScheduleRejectsBadHour(t *testing.T) {
	r := newTestReminder(&captureNotifier{}, "it")
	if err := r.Schedule(24); err == nil {
		t.Error("expected error for hour 24")
	}
	if err := r.Schedule(-1); err == nil {
		t.Error("expected error for hour -1")
	}
	if r.Scheduled() {
		t.Error("failed schedules must not register an entry")
	}
}

func TestScheduleIsIdempotent(t *testing.T) {
	r := newTestReminder(&captureNotifier{}, "it")
	for i := 0; i < 3; i++ {
		if err := r.Schedule(10); err != nil {
			t.Fatalf("schedule %d failed: %v", i, err)
		}
	}
	if got := len(r.cron.Entries()); got != 1 {
		t.Errorf("expected a single cron entry, got %d", got)
	}
}

func TestCancelRemovesEntry(t *testing.T) {
	r := newTestReminder(&captureNotifier{}, "it")
	if err := r.Schedule(10); err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	r.Cancel()
	if r.Scheduled() {
		t.Error("entry still registered after cancel")
	}
	if got := len(r.cron.Entries()); got != 0 {
		t.Errorf("expected no cron entries, got %d", got)
	}
	// Cancelling twice is a no-op.
	r.Cancel()
}

func TestFireUsesConfiguredLanguage(t *testing.T) {
	n := &captureNotifier{}
	r := newTestReminder(n, "en")
	r.fire()

	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.calls) != 1 {
		t.Fatalf("expected one delivery, got %d", len(n.calls))
	}
	if n.calls[0] == "|" {
		t.Error("reminder text must not be empty")
	}
}
