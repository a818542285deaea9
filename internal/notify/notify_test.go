package notify

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func TestMulti_FansOut(t *testing.T) {
	var got []string
	rec := Func(func(level Level, message string) {
		got = append(got, string(level)+":"+message)
	})

	Multi{rec, nil, Nop{}, rec}.Notify(LevelSuccess, "Task deleted")

	if len(got) != 2 {
		t.Fatalf("got %d deliveries, want 2", len(got))
	}
	if got[0] != "success:Task deleted" {
		t.Fatalf("got %q", got[0])
	}
}

func TestLogger_Writes(t *testing.T) {
	var buf bytes.Buffer
	Logger{L: log.New(&buf, "", 0)}.Notify(LevelError, "Please enter a task title")

	if !strings.Contains(buf.String(), "[error] Please enter a task title") {
		t.Fatalf("log output = %q", buf.String())
	}
}

func TestToasts_Expire(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	toasts := NewToasts(time.Second, 3).WithClock(func() time.Time { return now })

	toasts.Notify(LevelSuccess, "one")
	now = now.Add(600 * time.Millisecond)
	toasts.Notify(LevelSuccess, "two")

	if n := len(toasts.Active()); n != 2 {
		t.Fatalf("Active() len = %d, want 2", n)
	}

	now = now.Add(500 * time.Millisecond)
	active := toasts.Active()
	if len(active) != 1 || active[0].Message != "two" {
		t.Fatalf("Active() = %+v, want only two", active)
	}

	now = now.Add(time.Second)
	if _, ok := toasts.Latest(); ok {
		t.Fatal("Latest() ok = true, want false after expiry")
	}
}

func TestToasts_Capacity(t *testing.T) {
	toasts := NewToasts(time.Minute, 2)

	toasts.Notify(LevelSuccess, "a")
	toasts.Notify(LevelSuccess, "b")
	toasts.Notify(LevelError, "c")

	active := toasts.Active()
	if len(active) != 2 || active[0].Message != "b" || active[1].Message != "c" {
		t.Fatalf("Active() = %+v, want [b c]", active)
	}

	latest, ok := toasts.Latest()
	if !ok || latest.Level != LevelError {
		t.Fatalf("Latest() = %+v, %v", latest, ok)
	}
}

func TestToasts_Drain(t *testing.T) {
	toasts := NewToasts(0, 0)
	if toasts.TTL() != DefaultTTL {
		t.Fatalf("TTL() = %v, want %v", toasts.TTL(), DefaultTTL)
	}

	toasts.Notify(LevelSuccess, "a")
	if got := toasts.Drain(); len(got) != 1 {
		t.Fatalf("Drain() len = %d, want 1", len(got))
	}
	if got := toasts.Drain(); len(got) != 0 {
		t.Fatalf("second Drain() len = %d, want 0", len(got))
	}
}

func TestToasts_DrainSkipsExpired(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	toasts := NewToasts(time.Second, 5).WithClock(func() time.Time { return now })

	toasts.Notify(LevelSuccess, "old")
	now = now.Add(2 * time.Second)
	toasts.Notify(LevelError, "new")

	got := toasts.Drain()
	if len(got) != 1 || got[0].Message != "new" {
		t.Fatalf("Drain() = %+v, want only new", got)
	}
}
