// Package store keeps the task list in memory and persists it to a
// pipe-delimited text file.
package store

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/dori/tasklist/internal/model"
)

// Store owns the ordered task list for one session
type Store struct {
	path    string
	tasks   []model.Task
	skipped []int
	now     func() time.Time
}

// Option configures a Store
type Option func(*Store)

// WithClock replaces the clock used for timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty store that will be saved to path
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:  path,
		tasks: []model.Task{},
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads the task file at path into a new store
func Open(path string, opts ...Option) (*Store, error) {
	tasks, skipped, err := load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	s := New(path, opts...)
	s.tasks = tasks
	s.skipped = skipped
	return s, nil
}

// Path returns the file the store was opened from
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of tasks
func (s *Store) Len() int {
	return len(s.tasks)
}

// Skipped returns the line numbers Open dropped as malformed. They are not
// written back by Flush.
func (s *Store) Skipped() []int {
	return slices.Clone(s.skipped)
}

// Tasks returns a copy of the task list
func (s *Store) Tasks() []model.Task {
	return slices.Clone(s.tasks)
}

// Flush writes the task list back to disk
func (s *Store) Flush() error {
	return Save(s.path, s.tasks)
}

// Add appends a new open task
func (s *Store) Add(title string) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, ErrEmptyTitle
	}
	if strings.ContainsAny(title, delimiter+"\r\n") {
		return model.Task{}, ErrInvalidTitle
	}

	now := s.timestamp()
	t := model.Task{
		Title:           title,
		Status:          model.StatusOpen,
		CreatedAt:       now,
		StatusUpdatedAt: now,
	}
	s.tasks = append(s.tasks, t)
	return t, nil
}

// View yields (position, task) pairs over a snapshot of the list.
// It returns ErrNoTasks when the list is empty.
func (s *Store) View() (iter.Seq2[int, model.Task], error) {
	if len(s.tasks) == 0 {
		return nil, ErrNoTasks
	}

	snapshot := slices.Clone(s.tasks)
	return func(yield func(int, model.Task) bool) {
		for i, t := range snapshot {
			if !yield(i+1, t) {
				return
			}
		}
	}, nil
}

// Get returns the task at a 1-based position
func (s *Store) Get(position int) (model.Task, error) {
	i, err := s.index(position)
	if err != nil {
		return model.Task{}, err
	}
	return s.tasks[i], nil
}

// UpdateStatus sets the status of the task at position and refreshes its
// status timestamp
func (s *Store) UpdateStatus(position int, status model.Status) (model.Task, error) {
	i, err := s.index(position)
	if err != nil {
		return model.Task{}, err
	}
	if !status.Valid() {
		return model.Task{}, fmt.Errorf("invalid status %d", int(status))
	}

	t := &s.tasks[i]
	now := s.timestamp()
	// a clock that steps backwards must not move the timestamp back
	if now.Before(t.StatusUpdatedAt) {
		now = t.StatusUpdatedAt
	}
	t.Status = status
	t.StatusUpdatedAt = now
	return *t, nil
}

// Remove deletes the task at position and returns it
func (s *Store) Remove(position int) (model.Task, error) {
	i, err := s.index(position)
	if err != nil {
		return model.Task{}, err
	}

	removed := s.tasks[i]
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return removed, nil
}

// Edit is not supported
func (s *Store) Edit(position int, title string) error {
	return ErrNotImplemented
}

func (s *Store) index(position int) (int, error) {
	if position < 1 || position > len(s.tasks) {
		return 0, &OutOfRangeError{Position: position, Len: len(s.tasks)}
	}
	return position - 1, nil
}

func (s *Store) timestamp() time.Time {
	return s.now().Truncate(time.Second)
}
