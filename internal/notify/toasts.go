package notify

import (
	"sync"
	"time"
)

const (
	DefaultTTL      = 4 * time.Second
	DefaultCapacity = 5
)

// Toasts keeps the most recent notifications for a limited time. Views read
// the active ones on every render; nothing blocks on them.
type Toasts struct {
	mu    sync.Mutex
	ttl   time.Duration
	limit int
	items []Notification
	now   func() time.Time
}

func NewToasts(ttl time.Duration, capacity int) *Toasts {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Toasts{ttl: ttl, limit: capacity, now: time.Now}
}

// WithClock replaces the time source. Used by tests.
func (t *Toasts) WithClock(now func() time.Time) *Toasts {
	t.mu.Lock()
	t.now = now
	t.mu.Unlock()

	return t
}

func (t *Toasts) Notify(level Level, message string) {
	t.Push(Notification{Level: level, Message: message})
}

func (t *Toasts) Push(n Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n.At.IsZero() {
		n.At = t.now()
	}

	t.items = append(t.items, n)
	if over := len(t.items) - t.limit; over > 0 {
		t.items = t.items[over:]
	}
}

// Active returns the notifications that have not expired, oldest first,
// and forgets the expired ones.
func (t *Toasts) Active() []Notification {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	kept := t.items[:0]
	for _, n := range t.items {
		if now.Sub(n.At) < t.ttl {
			kept = append(kept, n)
		}
	}
	t.items = kept

	out := make([]Notification, len(kept))
	copy(out, kept)

	return out
}

// Latest returns the newest active notification.
func (t *Toasts) Latest() (Notification, bool) {
	active := t.Active()
	if len(active) == 0 {
		return Notification{}, false
	}

	return active[len(active)-1], true
}

// Drain returns the active notifications and clears the buffer, so each
// one is shown at most once.
func (t *Toasts) Drain() []Notification {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	var out []Notification
	for _, n := range t.items {
		if now.Sub(n.At) < t.ttl {
			out = append(out, n)
		}
	}
	t.items = nil

	return out
}

func (t *Toasts) TTL() time.Duration { return t.ttl }
