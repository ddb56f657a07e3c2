package models

import "strings"

// DefaultTaskStatus is applied when a task is created without a status.
const DefaultTaskStatus = "pending"

// CounterStatuses is the write-side vocabulary: only these statuses count
// toward a project's completed_* columns.
var CounterStatuses = []string{"completed"}

// CompletionStatuses is the read-side vocabulary used by the completion
// aggregator. It additionally accepts "done". The two sets are kept
// distinct on purpose; do not unify them without settling the status
// vocabulary with the shop floor first.
var CompletionStatuses = []string{"completed", "done"}

// IsCompleted reports whether a task status has counter significance.
// Comparison is case-insensitive; no other status affects counters.
func IsCompleted(status string) bool {
	return matchesAny(status, CounterStatuses)
}

// CountsTowardCompletion reports whether a status is counted as finished
// by the completion aggregator.
func CountsTowardCompletion(status string) bool {
	return matchesAny(status, CompletionStatuses)
}

func matchesAny(status string, vocabulary []string) bool {
	status = strings.TrimSpace(status)
	for _, v := range vocabulary {
		if strings.EqualFold(status, v) {
			return true
		}
	}
	return false
}
