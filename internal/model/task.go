package model

import (
	"fmt"
	"time"
)

// TimeLayout is the timestamp format used on disk and on screen
const TimeLayout = "2006-01-02 15:04:05"

// Status represents the current state of a task.
// The ordinal only drives menu order; the persisted label comes from String.
type Status int

const (
	StatusOpen Status = iota + 1
	StatusBlocked
	StatusInProgress
	StatusReview
	StatusDone
)

var statusLabels = map[Status]string{
	StatusOpen:       "Open",
	StatusBlocked:    "Blocked",
	StatusInProgress: "In Progress",
	StatusReview:     "Review",
	StatusDone:       "Done",
}

// Statuses returns every status in menu order
func Statuses() []Status {
	return []Status{
		StatusOpen,
		StatusBlocked,
		StatusInProgress,
		StatusReview,
		StatusDone,
	}
}

// StatusAt returns the status at a 1-based menu choice
func StatusAt(choice int) (Status, bool) {
	all := Statuses()
	if choice < 1 || choice > len(all) {
		return 0, false
	}
	return all[choice-1], true
}

// ParseStatus parses a persisted status label
func ParseStatus(label string) (Status, error) {
	for s, l := range statusLabels {
		if l == label {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown status %q", label)
}

// String returns the label for a status
func (s Status) String() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Task represents a todo item
type Task struct {
	Title           string
	Status          Status
	CreatedAt       time.Time
	StatusUpdatedAt time.Time
}

// IsDone returns true if the task has reached the final status
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}

// Equal reports whether two tasks carry the same values
func (t *Task) Equal(o Task) bool {
	return t.Title == o.Title &&
		t.Status == o.Status &&
		t.CreatedAt.Equal(o.CreatedAt) &&
		t.StatusUpdatedAt.Equal(o.StatusUpdatedAt)
}
