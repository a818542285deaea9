// Package notify delivers the short success and error messages the
// dashboard shows after each create, update or delete.
package notify

import (
	"log"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

func (l Level) String() string { return string(l) }

type Notification struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

type Notifier interface {
	Notify(level Level, message string)
}

// Func adapts a plain function to Notifier.
type Func func(level Level, message string)

func (f Func) Notify(level Level, message string) { f(level, message) }

// Nop drops every notification.
type Nop struct{}

func (Nop) Notify(Level, string) {}

// Multi fans a notification out to every notifier in order.
type Multi []Notifier

func (m Multi) Notify(level Level, message string) {
	for _, n := range m {
		if n != nil {
			n.Notify(level, message)
		}
	}
}

// Logger writes notifications through a standard logger.
type Logger struct {
	L *log.Logger
}

func (l Logger) Notify(level Level, message string) {
	if l.L == nil {
		log.Printf("[%s] %s", level, message)
		return
	}
	l.L.Printf("[%s] %s", level, message)
}
