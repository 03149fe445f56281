package ports

import (
	"context"

	"taskmanager/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	ListAll(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id string) (domain.Task, error)
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) (domain.Task, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

type TaskService interface {
	CreateTask(ctx context.Context, title, description string) (domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, id string) (domain.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status domain.TaskStatus) (domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
