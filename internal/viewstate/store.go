// Package viewstate holds the task list view state and the routines that keep it
// in sync with the task service.
//
// The list is a cache of the server's collection: every successful mutation is
// followed by a full re-sync, and the list is only ever replaced wholesale.
// Failures are logged and returned; the list and inputs are left as they were.
package viewstate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/alexrayosb/CRUD-TodoList/internal/service"
)

// ErrTitleRequired is returned by Submit when the trimmed title is empty.
// No request is sent in that case.
var ErrTitleRequired = errors.New("title required")

// Store is the view state of one task list instance.
// It is safe for concurrent use. Requests are neither serialized nor
// de-duplicated: the last re-sync to complete determines the list.
type Store struct {
	svc service.Service
	log logrus.FieldLogger

	mu          sync.RWMutex
	tasks       []service.Task
	title       string
	description string
}

// New creates an empty Store backed by svc.
func New(svc service.Service, log logrus.FieldLogger) *Store {
	return &Store{svc: svc, log: log}
}

// Tasks returns a copy of the current list in server order.
func (s *Store) Tasks() []service.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]service.Task, len(s.tasks))
	copy(result, s.tasks)
	return result
}

// Len returns the number of listed tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// At returns the task at 1-based row n.
func (s *Store) At(n int) (service.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n < 1 || n > len(s.tasks) {
		return service.Task{}, false
	}
	return s.tasks[n-1], true
}

// Lookup finds a listed task by ID.
func (s *Store) Lookup(id service.TaskID) (service.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID.Equal(id) {
			return t, true
		}
	}
	return service.Task{}, false
}

// Title returns the title input value.
func (s *Store) Title() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.title
}

// Description returns the description input value.
func (s *Store) Description() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.description
}

// SetTitle sets the title input value.
func (s *Store) SetTitle(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = v
}

// SetDescription sets the description input value.
func (s *Store) SetDescription(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.description = v
}

// Sync replaces the list with the server's collection.
// On failure the list is left unchanged.
func (s *Store) Sync(ctx context.Context) error {
	tasks, err := s.svc.ListTasks(ctx)
	if err != nil {
		s.log.WithError(err).Error("error fetching tasks")
		return fmt.Errorf("fetch tasks: %w", err)
	}

	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()

	s.log.WithField("count", len(tasks)).Debug("tasks synced")
	return nil
}

// Submit creates a task from the current inputs.
// On success both inputs are cleared and the list is re-synced.
// On failure the inputs stay populated.
func (s *Store) Submit(ctx context.Context) error {
	s.mu.RLock()
	title := strings.TrimSpace(s.title)
	description := s.description
	s.mu.RUnlock()

	if title == "" {
		return ErrTitleRequired
	}

	if err := s.svc.CreateTask(ctx, service.NewTask{Title: title, Description: description}); err != nil {
		s.log.WithError(err).Error("error creating task")
		return fmt.Errorf("create task: %w", err)
	}

	s.mu.Lock()
	s.title = ""
	s.description = ""
	s.mu.Unlock()

	return s.Sync(ctx)
}

// Create sets both inputs and submits them.
func (s *Store) Create(ctx context.Context, title, description string) error {
	s.mu.Lock()
	s.title = title
	s.description = description
	s.mu.Unlock()
	return s.Submit(ctx)
}

// Toggle sends task with Completed inverted as a full replacement, then re-syncs.
// The listed task does not change until the re-sync succeeds.
func (s *Store) Toggle(ctx context.Context, task service.Task) error {
	if err := s.svc.UpdateTask(ctx, task.Toggled()); err != nil {
		s.log.WithError(err).WithField("task_id", task.ID.String()).Error("error updating task")
		return fmt.Errorf("update task: %w", err)
	}
	return s.Sync(ctx)
}

// Delete deletes the task with the given ID, then re-syncs.
func (s *Store) Delete(ctx context.Context, id service.TaskID) error {
	if err := s.svc.DeleteTask(ctx, id); err != nil {
		s.log.WithError(err).WithField("task_id", id.String()).Error("error deleting task")
		return fmt.Errorf("delete task: %w", err)
	}
	return s.Sync(ctx)
}
