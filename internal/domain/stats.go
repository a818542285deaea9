package domain

// Stats are the dashboard counters. They are always derived from a task
// collection and never stored on their own.
type Stats struct {
	Total      int `json:"total" yaml:"total"`
	Pending    int `json:"pending" yaml:"pending"`
	InProgress int `json:"inProgress" yaml:"in_progress"`
	Completed  int `json:"completed" yaml:"completed"`
	Failed     int `json:"failed" yaml:"failed"`
}

func ComputeStats(tasks []Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case StatusPending:
			s.Pending++
		case StatusInProgress:
			s.InProgress++
		case StatusCompleted:
			s.Completed++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}

// Count returns the counter for a single status.
func (s Stats) Count(st Status) int {
	switch st {
	case StatusPending:
		return s.Pending
	case StatusInProgress:
		return s.InProgress
	case StatusCompleted:
		return s.Completed
	case StatusFailed:
		return s.Failed
	default:
		return 0
	}
}
