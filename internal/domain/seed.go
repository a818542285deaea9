package domain

import "time"

// SeedTasks returns the sample tasks the dashboard starts with.
func SeedTasks() []Task {
	return []Task{
		{
			ID:          "1",
			Title:       "Update user database schema",
			Description: "Migrate the user database to support new authentication features",
			Status:      StatusInProgress,
			Priority:    PriorityHigh,
			CreatedAt:   time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Title:       "Fix API rate limiting",
			Description: "Implement proper rate limiting for the bot API endpoints",
			Status:      StatusPending,
			Priority:    PriorityMedium,
			CreatedAt:   time.Date(2024, time.January, 14, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Title:       "Add webhook support",
			Description: "Enable webhooks for real-time task updates",
			Status:      StatusCompleted,
			Priority:    PriorityHigh,
			CreatedAt:   time.Date(2024, time.January, 13, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:          "4",
			Title:       "Optimize database queries",
			Description: "Improve query performance for large datasets",
			Status:      StatusFailed,
			Priority:    PriorityMedium,
			CreatedAt:   time.Date(2024, time.January, 12, 16, 45, 0, 0, time.UTC),
		},
	}
}
