package viewstate

import (
	"context"
	"strings"

	"taskmanager/internal/core/domain"
	"taskmanager/pkg/taskclient"
)

// Client is the subset of taskclient.Client the controller needs.
type Client interface {
	List(ctx context.Context) ([]Task, error)
	Create(ctx context.Context, title, description string) (Task, error)
	UpdateStatus(ctx context.Context, id, status string) (Task, error)
	Delete(ctx context.Context, id string) (string, error)
}

var _ Client = (*taskclient.Client)(nil)

// Controller runs one request at a time and folds its outcome into State.
// It is not safe for concurrent use.
type Controller struct {
	client Client
	state  State
}

func NewController(client Client) *Controller {
	return &Controller{client: client, state: New()}
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Visible() []Task {
	return Visible(c.state)
}

func (c *Controller) apply(e Event) State {
	c.state = Reduce(c.state, e)
	return c.state
}

// Load replaces the mirror with the server's list.
func (c *Controller) Load(ctx context.Context) State {
	return c.apply(FetchCmd(ctx, c.client))
}

// Create adds a task. A blank title sends nothing and leaves the state as is.
func (c *Controller) Create(ctx context.Context, title, description string) State {
	if strings.TrimSpace(title) == "" {
		return c.state
	}
	return c.apply(CreateCmd(ctx, c.client, title, description))
}

func (c *Controller) UpdateStatus(ctx context.Context, id, status string) State {
	return c.apply(UpdateStatusCmd(ctx, c.client, id, status))
}

// Toggle flips a task between pending and completed based on the mirror.
// Unknown ids are ignored.
func (c *Controller) Toggle(ctx context.Context, id string) State {
	task, ok := c.state.Find(id)
	if !ok {
		return c.state
	}
	next := domain.TaskStatus(task.Status).Toggle()
	return c.UpdateStatus(ctx, id, string(next))
}

func (c *Controller) Delete(ctx context.Context, id string) State {
	return c.apply(DeleteCmd(ctx, c.client, id))
}

func (c *Controller) SetFilter(filter Filter) State {
	return c.apply(FilterChanged{Filter: filter})
}

// FetchCmd performs the list request and returns its outcome as an Event.
func FetchCmd(ctx context.Context, client Client) Event {
	tasks, err := client.List(ctx)
	if err != nil {
		return Failed(err, taskclient.OpFetch)
	}
	return FetchSucceeded{Tasks: tasks}
}

func CreateCmd(ctx context.Context, client Client, title, description string) Event {
	task, err := client.Create(ctx, title, description)
	if err != nil {
		return Failed(err, taskclient.OpCreate)
	}
	return CreateSucceeded{Task: task}
}

func UpdateStatusCmd(ctx context.Context, client Client, id, status string) Event {
	task, err := client.UpdateStatus(ctx, id, status)
	if err != nil {
		return Failed(err, taskclient.OpUpdate)
	}
	return UpdateSucceeded{Task: task}
}

func DeleteCmd(ctx context.Context, client Client, id string) Event {
	deleted, err := client.Delete(ctx, id)
	if err != nil {
		return Failed(err, taskclient.OpDelete)
	}
	return DeleteSucceeded{ID: deleted}
}
