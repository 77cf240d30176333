// Package models defines the row types stored by aide.
package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "created"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Valid reports whether s is one of the accepted statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusCreated, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task priorities run 1 (highest) to 5 (lowest).
const (
	PriorityHighest = 1
	PriorityDefault = 3
	PriorityLowest  = 5
)

// ValidPriority reports whether p is in the accepted 1..5 range.
func ValidPriority(p int) bool {
	return p >= PriorityHighest && p <= PriorityLowest
}

// Task is one tracked task with an on-disk log file.
type Task struct {
	ID          int64      `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Priority    int        `json:"priority" db:"priority"`
	Status      TaskStatus `json:"status" db:"status"`
	LogFilePath string     `json:"log_file_path" db:"task_log_file_path"`
	CreatedAt   string     `json:"created_at" db:"created_at"`
}

// AideType distinguishes text aides (database only) from file aides (also
// mirrored to ~/.aide/<name>.txt).
type AideType string

const (
	AideTypeText AideType = "text"
	AideTypeFile AideType = "file"
)

// Valid reports whether t is a known aide type.
func (t AideType) Valid() bool {
	return t == AideTypeText || t == AideTypeFile
}

// Aide is a named note bucket.
type Aide struct {
	ID   int64    `json:"id" db:"id"`
	Name string   `json:"name" db:"name"`
	Type AideType `json:"aide_type" db:"aide_type"`
}

// AideSummary is an aide plus its stored entry count, for listings.
type AideSummary struct {
	Name      string   `json:"name" db:"name"`
	Type      AideType `json:"aide_type" db:"aide_type"`
	DataCount int      `json:"data_count" db:"data_count"`
}

// DataEntry is one note attached to an aide.
type DataEntry struct {
	ID            string `json:"id" db:"id"`
	AideID        int64  `json:"aide_id" db:"aide_id"`
	InputText     string `json:"input_text" db:"input_text"`
	CommandOutput string `json:"command_output" db:"command_output"`
	CreatedAt     string `json:"created_at" db:"created_at"`
}

// NewDataEntry builds an entry with a fresh id and timestamp. The stored
// command_output carries the timestamp prefix the original log format used.
func NewDataEntry(aideID int64, content string) *DataEntry {
	now := Timestamp()
	return &DataEntry{
		ID:            uuid.New().String(),
		AideID:        aideID,
		InputText:     content,
		CommandOutput: "[" + now + "] " + content,
		CreatedAt:     now,
	}
}

// StoredEntry is a data row joined with its owning aide, for search.
type StoredEntry struct {
	AideName      string `json:"aide_name" db:"name"`
	InputText     string `json:"input_text" db:"input_text"`
	CommandOutput string `json:"command_output" db:"command_output"`
}

// ConfigEntry is one configuration key/value pair.
type ConfigEntry struct {
	Key       string `json:"key" db:"key"`
	Value     string `json:"value" db:"value"`
	UpdatedAt string `json:"updated_at" db:"updated_at"`
}

// Timestamp returns UTC now in the storage format used across tables and
// log files.
func Timestamp() string {
	return time.Now().UTC().Format("2006-01-02 15:04:05")
}
