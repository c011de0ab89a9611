// Package rest implements the service.Service interface over the plain /tasks REST API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/googleapi"

	"github.com/alexrayosb/CRUD-TodoList/internal/config"
	"github.com/alexrayosb/CRUD-TodoList/internal/service"
)

const (
	// TasksPath is the task collection resource.
	TasksPath = "/tasks"

	// HealthPath is the service health check.
	HealthPath = "/health_check"

	// RequestIDHeader carries a per-request UUID.
	RequestIDHeader = "X-Request-ID"
)

// Client implements service.Service against a task service base URL.
type Client struct {
	http    *http.Client
	baseURL string
	timeout time.Duration
	log     logrus.FieldLogger
}

// New creates a client from config.
func New(cfg *config.Config) *Client {
	return NewWithHTTPClient(http.DefaultClient, cfg.BaseURL, cfg.Timeout, cfg.Log())
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(httpClient *http.Client, baseURL string, timeout time.Duration, log logrus.FieldLogger) *Client {
	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		timeout: timeout,
		log:     log,
	}
}

// ListTasks returns the full task collection in server order.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var tasks []service.Task
	if err := c.do(ctx, "list", http.MethodGet, TasksPath, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task. The response body is discarded.
func (c *Client) CreateTask(ctx context.Context, task service.NewTask) error {
	return c.do(ctx, "create", http.MethodPost, TasksPath, task, nil)
}

// UpdateTask sends task as a full replacement.
func (c *Client) UpdateTask(ctx context.Context, task service.Task) error {
	return c.do(ctx, "update", http.MethodPut, taskPath(task.ID), task, nil)
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id service.TaskID) error {
	return c.do(ctx, "delete", http.MethodDelete, taskPath(id), nil, nil)
}

// Ping checks the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "ping", http.MethodGet, HealthPath, nil, nil)
}

func taskPath(id service.TaskID) string {
	return TasksPath + "/" + url.PathEscape(id.String())
}

// do sends one request. body is JSON-encoded when non-nil; out is decoded
// from a 2xx response when non-nil.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	target := c.baseURL + path
	requestID := uuid.NewString()
	log := c.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     method,
		"path":       path,
	})
	fail := func(status int, err error) error {
		return &service.RequestError{Op: op, Method: method, URL: target, StatusCode: status, Err: err}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fail(0, fmt.Errorf("failed to encode body: %w", err))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fail(0, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	log.Debug("request started")

	res, err := c.http.Do(req)
	if err != nil {
		return fail(0, wrapError(err))
	}
	defer googleapi.CloseBody(res)

	log = log.WithFields(logrus.Fields{
		"status":      res.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if err := googleapi.CheckResponse(res); err != nil {
		log.Debug("request rejected")
		return fail(res.StatusCode, err)
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			log.WithError(err).Debug("invalid response body")
			return fail(0, fmt.Errorf("invalid response body: %w", err))
		}
	}

	log.Debug("request completed")
	return nil
}

// wrapError shortens transport errors for display.
func wrapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out")
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("request cancelled")
	}
	return err
}
