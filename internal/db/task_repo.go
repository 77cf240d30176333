package db

import (
	"database/sql"
	"errors"

	"github.com/samba-rgb/AIDE/internal/models"
)

// TaskRepository handles task database operations.
type TaskRepository struct {
	db *DB
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task.
func (r *TaskRepository) Create(task *models.Task) error {
	query := `
		INSERT INTO tasks (name, priority, status, task_log_file_path, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := r.db.Exec(query,
		task.Name,
		task.Priority,
		task.Status,
		task.LogFilePath,
		task.CreatedAt,
	)
	if err != nil {
		return err
	}
	task.ID, _ = res.LastInsertId()
	return nil
}

// Get retrieves a task by exact name, (nil, nil) when absent.
func (r *TaskRepository) Get(name string) (*models.Task, error) {
	var task models.Task
	query := `SELECT * FROM tasks WHERE name = ?`
	err := r.db.DB.Get(&task, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateStatus sets a task's status, reporting whether a row changed.
func (r *TaskRepository) UpdateStatus(name string, status models.TaskStatus) (bool, error) {
	res, err := r.db.Exec(`UPDATE tasks SET status = ? WHERE name = ?`, status, name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// UpdatePriority sets a task's priority, reporting whether a row changed.
func (r *TaskRepository) UpdatePriority(name string, priority int) (bool, error) {
	res, err := r.db.Exec(`UPDATE tasks SET priority = ? WHERE name = ?`, priority, name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// List returns all tasks, highest priority first.
func (r *TaskRepository) List() ([]*models.Task, error) {
	var tasks []*models.Task
	query := `SELECT * FROM tasks ORDER BY priority, created_at`
	if err := r.db.Select(&tasks, query); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Names returns the ordered task name list the similarity index builds from.
func (r *TaskRepository) Names() ([]string, error) {
	var names []string
	if err := r.db.Select(&names, `SELECT name FROM tasks ORDER BY id`); err != nil {
		return nil, err
	}
	return names, nil
}
