package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

const (
	insertTaskQuery       = `INSERT INTO tasks (id, title, description, status, created_at) VALUES (?, ?, ?, ?, ?)`
	listTasksQuery        = `SELECT id, title, description, status, created_at FROM tasks ORDER BY seq DESC`
	getTaskQuery          = `SELECT id, title, description, status, created_at FROM tasks WHERE id = ?`
	updateTaskStatusQuery = `UPDATE tasks SET status = ? WHERE id = ?`
	deleteTaskQuery       = `DELETE FROM tasks WHERE id = ?`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	input, err := domain.NewTask(input.Title, input.Description)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.TaskStatusPending,
		// DATETIME(6) keeps microseconds; truncating keeps the returned task equal to the stored one.
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	if _, err := r.db.ExecContext(
		ctx,
		insertTaskQuery,
		task.ID,
		task.Title,
		task.Description,
		string(task.Status),
		task.CreatedAt,
	); err != nil {
		return domain.Task{}, fmt.Errorf("insert task: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) ListAll(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("get task %s: %w", id, err)
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) (domain.Task, error) {
	if !status.Valid() {
		return domain.Task{}, domain.ErrInvalidStatus
	}

	// MySQL reports zero affected rows when the status is unchanged, so existence
	// is decided by the read that follows rather than by RowsAffected.
	if _, err := r.db.ExecContext(ctx, updateTaskStatusQuery, string(status), id); err != nil {
		return domain.Task{}, fmt.Errorf("update task %s: %w", id, err)
	}

	return r.GetByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, id)
	if err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Status:      domain.TaskStatus(row.Status),
		CreatedAt:   row.CreatedAt.UTC(),
	}
}
