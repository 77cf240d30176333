package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samba-rgb/AIDE/internal/models"
	"github.com/samba-rgb/AIDE/internal/search"
)

// OpenTask runs the creation-intent protocol for a task name and returns
// the task it lands on, creating it (row plus log file) when no existing
// task applies. The bool reports whether a new task was created. Opening
// the log in an editor is the caller's business.
func (s *Session) OpenTask(name string) (*models.Task, bool, error) {
	res, err := search.ResolveForCreate(s.taskIndex, name, s.confirm)
	if err != nil {
		return nil, false, err
	}

	task, err := s.tasks.Get(res.Name)
	if err != nil {
		return nil, false, err
	}
	if task != nil {
		return task, false, nil
	}

	if err := os.MkdirAll(s.tasksDir(), 0755); err != nil {
		return nil, false, fmt.Errorf("create tasks directory: %w", err)
	}

	task = &models.Task{
		Name:        res.Name,
		Priority:    models.PriorityDefault,
		Status:      models.TaskStatusCreated,
		LogFilePath: filepath.Join(s.tasksDir(), res.Name+".txt"),
		CreatedAt:   models.Timestamp(),
	}
	header := fmt.Sprintf("Task: %s\nStatus: %s\nPriority: %d\nCreated: %s\n\n--- Task Log ---\n",
		task.Name, task.Status, task.Priority, task.CreatedAt)

	if err := s.tasks.Create(task); err != nil {
		return nil, false, fmt.Errorf("create task: %w", err)
	}
	if err := os.WriteFile(task.LogFilePath, []byte(header), 0644); err != nil {
		return nil, false, fmt.Errorf("write task log: %w", err)
	}

	// Store write succeeded; the index follows.
	s.taskIndex.Add(task.Name)
	s.log.Debug("task created", "name", task.Name)
	return task, true, nil
}

// SetTaskStatus resolves the name and updates the status, returning the
// actual task name used.
func (s *Session) SetTaskStatus(name string, status models.TaskStatus) (string, error) {
	if !status.Valid() {
		return "", fmt.Errorf("invalid status %q (valid: created, in_progress, completed)", status)
	}

	actual, err := s.lookup(s.taskIndex, "task", name)
	if err != nil {
		return "", err
	}

	ok, err := s.tasks.UpdateStatus(actual, status)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &NotFoundError{Kind: "task", Name: actual}
	}
	return actual, nil
}

// SetTaskPriority resolves the name and updates the priority, returning the
// actual task name used.
func (s *Session) SetTaskPriority(name string, priority int) (string, error) {
	if !models.ValidPriority(priority) {
		return "", fmt.Errorf("invalid priority %d (1 is highest, 5 is lowest)", priority)
	}

	actual, err := s.lookup(s.taskIndex, "task", name)
	if err != nil {
		return "", err
	}

	ok, err := s.tasks.UpdatePriority(actual, priority)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &NotFoundError{Kind: "task", Name: actual}
	}
	return actual, nil
}

// TaskLogPath resolves the name and returns the task's log file path.
func (s *Session) TaskLogPath(name string) (string, error) {
	actual, err := s.lookup(s.taskIndex, "task", name)
	if err != nil {
		return "", err
	}
	task, err := s.tasks.Get(actual)
	if err != nil {
		return "", err
	}
	if task == nil {
		return "", &NotFoundError{Kind: "task", Name: actual}
	}
	return task.LogFilePath, nil
}

// AppendTaskLog adds a timestamped entry to the task's log file, returning
// the actual task name used.
func (s *Session) AppendTaskLog(name, text string) (string, error) {
	actual, err := s.lookup(s.taskIndex, "task", name)
	if err != nil {
		return "", err
	}
	task, err := s.tasks.Get(actual)
	if err != nil {
		return "", err
	}
	if task == nil {
		return "", &NotFoundError{Kind: "task", Name: actual}
	}

	content, err := os.ReadFile(task.LogFilePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("read task log: %w", err)
		}
		content = []byte(fmt.Sprintf("Task: %s\n\n--- Task Log ---\n", actual))
	}

	entry := fmt.Sprintf("\n[%s] %s", models.Timestamp(), text)
	content = append(content, entry...)
	if err := os.WriteFile(task.LogFilePath, content, 0644); err != nil {
		return "", fmt.Errorf("write task log: %w", err)
	}
	return actual, nil
}

// Tasks lists all tasks, highest priority first.
func (s *Session) Tasks() ([]*models.Task, error) {
	return s.tasks.List()
}
