package domain

import (
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

var TaskStatuses = []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Toggle flips a completed task back to pending and anything else to completed.
func (s TaskStatus) Toggle() TaskStatus {
	if s == TaskStatusCompleted {
		return TaskStatusPending
	}
	return TaskStatusCompleted
}

// ParseTaskStatus rejects unknown values instead of coercing them.
func ParseTaskStatus(value string) (TaskStatus, error) {
	status := TaskStatus(value)
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	CreatedAt   time.Time
}

type CreateTaskInput struct {
	Title       string
	Description string
}

// NewTask trims and validates the write-once fields of a task.
func NewTask(title, description string) (CreateTaskInput, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return CreateTaskInput{}, ErrEmptyTitle
	}

	return CreateTaskInput{
		Title:       title,
		Description: strings.TrimSpace(description),
	}, nil
}
