package domain

import (
	"errors"
	"testing"
)

func TestComputeStats_Seed(t *testing.T) {
	got := ComputeStats(SeedTasks())
	want := Stats{Total: 4, Pending: 1, InProgress: 1, Completed: 1, Failed: 1}

	if got != want {
		t.Fatalf("ComputeStats() = %+v, want %+v", got, want)
	}
}

func TestComputeStats_CountersSumToTotal(t *testing.T) {
	tasks := []Task{
		{ID: "a", Status: StatusPending},
		{ID: "b", Status: StatusPending},
		{ID: "c", Status: StatusFailed},
		{ID: "d", Status: StatusCompleted},
		{ID: "e", Status: StatusInProgress},
		{ID: "f", Status: StatusInProgress},
		{ID: "g", Status: StatusInProgress},
	}

	s := ComputeStats(tasks)
	if s.Total != len(tasks) {
		t.Fatalf("Total = %d, want %d", s.Total, len(tasks))
	}
	sum := 0
	for _, st := range AllStatuses() {
		sum += s.Count(st)
	}
	if sum != s.Total {
		t.Fatalf("sum of counters = %d, want %d", sum, s.Total)
	}
	if s.InProgress != 3 {
		t.Fatalf("InProgress = %d, want 3", s.InProgress)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	if got := ComputeStats(nil); got != (Stats{}) {
		t.Fatalf("ComputeStats(nil) = %+v, want zero", got)
	}
}

func TestParseStatus(t *testing.T) {
	for _, st := range AllStatuses() {
		got, err := ParseStatus(string(st))
		if err != nil || got != st {
			t.Fatalf("ParseStatus(%q) = %q, %v", st, got, err)
		}
	}

	_, err := ParseStatus("running")
	if !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("ParseStatus(running) err = %v, want %v", err, ErrUnknownStatus)
	}
}

func TestParsePriority(t *testing.T) {
	for _, p := range AllPriorities() {
		got, err := ParsePriority(string(p))
		if err != nil || got != p {
			t.Fatalf("ParsePriority(%q) = %q, %v", p, got, err)
		}
	}

	_, err := ParsePriority("urgent")
	if !errors.Is(err, ErrUnknownPriority) {
		t.Fatalf("ParsePriority(urgent) err = %v, want %v", err, ErrUnknownPriority)
	}
}

func TestStatus_UnmarshalText_Rejects(t *testing.T) {
	var s Status
	if err := s.UnmarshalText([]byte("done")); err == nil {
		t.Fatal("UnmarshalText(done) err = nil, want non-nil")
	}
	if err := s.UnmarshalText([]byte("in-progress")); err != nil {
		t.Fatalf("UnmarshalText(in-progress) err = %v", err)
	}
	if s != StatusInProgress {
		t.Fatalf("status = %q, want %q", s, StatusInProgress)
	}
}

func TestLabels(t *testing.T) {
	if StatusInProgress.Label() != "In Progress" {
		t.Fatalf("label = %q", StatusInProgress.Label())
	}
	if PriorityHigh.Label() != "High" {
		t.Fatalf("label = %q", PriorityHigh.Label())
	}
}

func TestDraft_ApplyKeepsIdentity(t *testing.T) {
	orig := SeedTasks()[0]
	d := Draft{Title: "new", Description: "desc", Status: StatusFailed, Priority: PriorityLow}

	got := d.Apply(orig)
	if got.ID != orig.ID || !got.CreatedAt.Equal(orig.CreatedAt) {
		t.Fatalf("Apply() changed identity: %+v", got)
	}
	if got.Title != "new" || got.Description != "desc" || got.Status != StatusFailed || got.Priority != PriorityLow {
		t.Fatalf("Apply() = %+v", got)
	}
}

func TestNewDraft(t *testing.T) {
	d := NewDraft()
	if d.Title != "" || d.Description != "" || d.Status != StatusPending || d.Priority != PriorityMedium {
		t.Fatalf("NewDraft() = %+v", d)
	}
}
