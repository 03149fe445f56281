// Package taskclient calls the task REST API.
//
// Each method issues exactly one request. Failures come back as *Error tagged
// with the operation that failed, wrapping ErrTransport when the server could
// not be reached and ErrUnexpectedStatus when it answered with a non-2xx code.
// There are no retries.
package taskclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL matches the server's default listening port.
	DefaultBaseURL = "http://localhost:5000"

	tasksPath = "/api/tasks"
)

// Task is the wire shape of a task as served by the API.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Client talks to one task API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used to report failed operations.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client for baseURL (scheme and host, no trailing path).
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches every task.
func (c *Client) List(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, tasksPath, nil, &tasks); err != nil {
		return nil, c.fail(OpFetch, "", err)
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Create adds a task and returns it with its server-assigned fields.
func (c *Client) Create(ctx context.Context, title, description string) (Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPost, tasksPath, createRequest{Title: title, Description: description}, &task); err != nil {
		return Task{}, c.fail(OpCreate, "", err)
	}
	return task, nil
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus sets the status of task id and returns the updated task.
func (c *Client) UpdateStatus(ctx context.Context, id, status string) (Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPatch, taskPath(id), updateStatusRequest{Status: status}, &task); err != nil {
		return Task{}, c.fail(OpUpdate, id, err)
	}
	return task, nil
}

// Delete removes task id. The server answers without a body, so the id
// returned is the one that was passed in.
func (c *Client) Delete(ctx context.Context, id string) (string, error) {
	if err := c.do(ctx, http.MethodDelete, taskPath(id), nil, nil); err != nil {
		return "", c.fail(OpDelete, id, err)
	}
	return id, nil
}

func taskPath(id string) string {
	return tasksPath + "/" + url.PathEscape(id)
}

func (c *Client) fail(op Op, id string, err error) error {
	opErr := &Error{Op: op, TaskID: id}
	var status *statusError
	if errors.As(err, &status) {
		opErr.StatusCode = status.code
		opErr.Message = status.message
		opErr.Err = ErrUnexpectedStatus
	} else {
		opErr.Err = err
	}

	c.logger.Error("task api call failed",
		zap.String("op", string(op)),
		zap.String("task_id", id),
		zap.Int("status", opErr.StatusCode),
		zap.Error(err),
	)
	return opErr
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %w", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(resp.StatusCode, respBody)
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
