// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// All HTTP calls to the task service go through this interface.
// The view-state store and commands never build requests directly.
type Service interface {
	// ListTasks returns the full task collection in server order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask asks the server to create a task.
	// The response body is not used.
	CreateTask(ctx context.Context, task NewTask) error

	// UpdateTask sends task as a full replacement of the stored task with the same ID.
	UpdateTask(ctx context.Context, task Task) error

	// DeleteTask deletes the task with the given ID.
	DeleteTask(ctx context.Context, id TaskID) error

	// Ping checks that the service answers its health check.
	Ping(ctx context.Context) error
}
