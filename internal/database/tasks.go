package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jobtrackr/jobtrackr/pkg/models"
)

// ListTasks returns every task in unspecified order.
func (s *Store) ListTasks(ctx context.Context) ([]models.Task, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	query := `SELECT id, title, description, due_date, completed, application_id, created_at
			  FROM tasks`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		var appID sql.NullString
		err := rows.Scan(&task.ID, &task.Title, &task.Description, &task.DueDate,
			&task.Completed, &appID, &task.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if appID.Valid {
			task.ApplicationID = appID.String
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	slog.Debug("listed tasks", "count", len(tasks))
	return tasks, nil
}

// AddTask inserts a new task, failing with ErrDuplicateID on an existing id.
func (s *Store) AddTask(ctx context.Context, task models.Task) error {
	if err := s.ready(); err != nil {
		return err
	}

	query := `INSERT INTO tasks (id, title, description, due_date, completed, application_id,
			  created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, task.ID, task.Title, task.Description,
		task.DueDate, task.Completed, nullable(task.ApplicationID), task.CreatedAt)
	if err != nil {
		return asDuplicate(err, "tasks", task.ID)
	}
	return nil
}

// UpdateTask upserts the full record at task.ID.
func (s *Store) UpdateTask(ctx context.Context, task models.Task) error {
	if err := s.ready(); err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO tasks (id, title, description, due_date, completed,
			  application_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, task.ID, task.Title, task.Description,
		task.DueDate, task.Completed, nullable(task.ApplicationID), task.CreatedAt)
	if err != nil {
		return fmt.Errorf("update task %q: %w", task.ID, err)
	}
	return nil
}

// DeleteTask removes the record at id; absent ids are a no-op success.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id=?`, id); err != nil {
		return fmt.Errorf("delete task %q: %w", id, err)
	}
	return nil
}

// nullable stores an empty soft reference as NULL.
func nullable(id string) any {
	if id == "" {
		return nil
	}
	return id
}
