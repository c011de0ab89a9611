package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/alexrayosb/CRUD-TodoList/internal/service"
)

// Request records one HTTP request received by TaskServer.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// TaskServer is an in-process HTTP task service implementing the /tasks contract.
type TaskServer struct {
	*httptest.Server

	mu       sync.Mutex
	tasks    []service.Task
	nextID   int64
	requests []Request
	failures map[string]int // method -> status
}

type updateBody struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// NewTaskServer starts a TaskServer. It is closed when the test ends.
func NewTaskServer(t testing.TB) *TaskServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	s := &TaskServer{
		nextID:   1,
		failures: make(map[string]int),
	}

	router := gin.New()
	router.Use(s.recordRequest, s.injectFailure)
	router.GET("/health_check", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is running")
	})
	router.GET("/tasks", s.listTasks)
	router.POST("/tasks", s.createTask)
	router.PUT("/tasks/:id", s.updateTask)
	router.DELETE("/tasks/:id", s.deleteTask)

	s.Server = httptest.NewServer(router)
	t.Cleanup(s.Close)
	return s
}

// Seed adds a task with the next numeric ID.
func (s *TaskServer) Seed(title, description string, completed bool) service.TaskID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := service.NumericID(s.nextID)
	s.nextID++
	s.tasks = append(s.tasks, service.Task{ID: id, Title: title, Description: description, Completed: completed})
	return id
}

// Fail makes every request with the given method answer with status.
// A status of 0 clears the failure.
func (s *TaskServer) Fail(method string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.failures, method)
		return
	}
	s.failures[method] = status
}

// Requests returns the recorded requests.
func (s *TaskServer) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]Request, len(s.requests))
	copy(result, s.requests)
	return result
}

// Tasks returns a copy of the stored tasks.
func (s *TaskServer) Tasks() []service.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]service.Task, len(s.tasks))
	copy(result, s.tasks)
	return result
}

func (s *TaskServer) recordRequest(c *gin.Context) {
	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}
	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Header: c.Request.Header.Clone(),
		Body:   body,
	})
	s.mu.Unlock()
	c.Next()
}

func (s *TaskServer) injectFailure(c *gin.Context) {
	s.mu.Lock()
	status, ok := s.failures[c.Request.Method]
	s.mu.Unlock()
	if ok {
		c.AbortWithStatusJSON(status, gin.H{"error": http.StatusText(status)})
		return
	}
	c.Next()
}

func (s *TaskServer) listTasks(c *gin.Context) {
	c.JSON(http.StatusOK, s.Tasks())
}

func (s *TaskServer) createTask(c *gin.Context) {
	var body service.NewTask
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := s.Seed(body.Title, body.Description, false)
	c.JSON(http.StatusCreated, service.Task{ID: id, Title: body.Title, Description: body.Description})
}

func (s *TaskServer) updateTask(c *gin.Context) {
	var body updateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID.String() != c.Param("id") {
			continue
		}
		if body.Title != nil {
			t.Title = *body.Title
		}
		if body.Description != nil {
			t.Description = *body.Description
		}
		if body.Completed != nil {
			t.Completed = *body.Completed
		}
		s.tasks[i] = t
		c.JSON(http.StatusOK, t)
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
}

func (s *TaskServer) deleteTask(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID.String() == c.Param("id") {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	c.Status(http.StatusNotFound)
}
