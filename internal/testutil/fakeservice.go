// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"github.com/alexrayosb/CRUD-TodoList/internal/service"
)

// Call records one request the fake received.
type Call struct {
	Op   string // "list", "create", "update", "delete", "ping"
	ID   service.TaskID
	New  service.NewTask
	Task service.Task
}

// FakeService is an in-memory implementation of service.Service for testing.
// It records every call, including failed ones.
type FakeService struct {
	mu     sync.RWMutex
	tasks  []service.Task
	nextID int64
	calls  []Call

	// Error injection for testing
	ListTasksErr  error
	CreateTaskErr error
	UpdateTaskErr error
	DeleteTaskErr error
	PingErr       error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// AddTask seeds a task and returns its numeric ID.
func (f *FakeService) AddTask(title, description string, completed bool) service.TaskID {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := service.NumericID(f.nextID)
	f.nextID++
	f.tasks = append(f.tasks, service.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   completed,
	})
	return id
}

// SeedTask stores task as given, keeping its ID and JSON kind.
func (f *FakeService) SeedTask(task service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, task)
}

// Tasks returns a copy of the stored tasks.
func (f *FakeService) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result
}

// Calls returns a copy of the recorded calls.
func (f *FakeService) Calls() []Call {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]Call, len(f.calls))
	copy(result, f.calls)
	return result
}

// Ops returns the recorded operation names in order.
func (f *FakeService) Ops() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	ops := make([]string, len(f.calls))
	for i, c := range f.calls {
		ops[i] = c.Op
	}
	return ops
}

// ResetCalls forgets recorded calls.
func (f *FakeService) ResetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

func (f *FakeService) record(c Call) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

func failed(op string, status int) error {
	return &service.RequestError{Op: op, Method: "FAKE", URL: "fake://" + op, StatusCode: status}
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	f.record(Call{Op: "list"})
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	return f.Tasks(), nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, task service.NewTask) error {
	f.record(Call{Op: "create", New: task})
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	f.AddTask(task.Title, task.Description, false)
	return nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, task service.Task) error {
	f.record(Call{Op: "update", ID: task.ID, Task: task})
	if f.UpdateTaskErr != nil {
		return f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID.Equal(task.ID) {
			f.tasks[i] = task
			return nil
		}
	}
	return failed("update", 500)
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id service.TaskID) error {
	f.record(Call{Op: "delete", ID: id})
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID.Equal(id) {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return failed("delete", 404)
}

// Ping implements service.Service.
func (f *FakeService) Ping(ctx context.Context) error {
	f.record(Call{Op: "ping"})
	return f.PingErr
}

// ServerError returns a RequestFailed error carrying status, for injection.
func ServerError(op string, status int) error {
	return failed(op, status)
}
