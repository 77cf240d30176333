// Package session ties the sqlite store to the three similarity indexes and
// runs the name-resolution protocol for every named-entity operation.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/samba-rgb/AIDE/internal/db"
	"github.com/samba-rgb/AIDE/internal/search"
)

// ErrCancelled reports that the user declined a suggested name. It is
// expected control flow, not a failure.
var ErrCancelled = errors.New("operation cancelled")

// NotFoundError reports that an input resolved to no existing entity.
type NotFoundError struct {
	Kind string // "task", "aide", or "config key"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.Name)
}

// Session owns the database connection and one similarity index per entity
// class. The indexes are built from the stored name lists at construction
// and maintained incrementally: every successful create or delete applies
// the store write first and then the matching index mutation. Sessions are
// single-threaded.
type Session struct {
	db     *db.DB
	tasks  *db.TaskRepository
	aides  *db.AideRepository
	config *db.ConfigRepository

	taskIndex   *search.Index
	aideIndex   *search.Index
	configIndex *search.Index

	confirm search.Confirmer
	dataDir string
	log     *slog.Logger
}

// New builds a session over an open database. The confirmer is consulted
// whenever a fuzzy suggestion needs a human decision.
func New(database *db.DB, confirm search.Confirmer) (*Session, error) {
	s := &Session{
		db:      database,
		tasks:   db.NewTaskRepository(database),
		aides:   db.NewAideRepository(database),
		config:  db.NewConfigRepository(database),
		confirm: confirm,
		dataDir: database.DataDir(),
		log:     slog.Default().With("component", "session"),
	}
	if err := s.rebuildIndexes(); err != nil {
		return nil, err
	}
	return s, nil
}

// rebuildIndexes derives all three indexes from the stored name lists. The
// indexes have no persisted form; this is also the recovery path after a
// crash left one stale.
func (s *Session) rebuildIndexes() error {
	taskNames, err := s.tasks.Names()
	if err != nil {
		return fmt.Errorf("load task names: %w", err)
	}
	aideNames, err := s.aides.Names()
	if err != nil {
		return fmt.Errorf("load aide names: %w", err)
	}
	configKeys, err := s.config.Keys()
	if err != nil {
		return fmt.Errorf("load config keys: %w", err)
	}

	s.taskIndex = search.NewIndex(taskNames)
	s.aideIndex = search.NewIndex(aideNames)
	s.configIndex = search.NewIndex(configKeys)

	s.log.Debug("indexes built",
		"tasks", s.taskIndex.Len(),
		"aides", s.aideIndex.Len(),
		"config_keys", s.configIndex.Len())
	return nil
}

// lookup runs the lookup-intent protocol and maps the outcome to the
// session's error vocabulary.
func (s *Session) lookup(ix *search.Index, kind, input string) (string, error) {
	res, err := search.ResolveExisting(ix, input, s.confirm)
	if err != nil {
		return "", err
	}
	if res.Decision == search.Proceed {
		return res.Name, nil
	}
	if res.Declined {
		return "", ErrCancelled
	}
	return "", &NotFoundError{Kind: kind, Name: input}
}

// Clear wipes tasks, aides, and data, reseeds the default task_log aide,
// and rebuilds every index.
func (s *Session) Clear() error {
	if err := s.db.ClearAll(); err != nil {
		return err
	}
	return s.rebuildIndexes()
}

// ConfigValue returns the raw value for an exact key, "" when unset. Used
// for programmatic settings (llm_endpoint and friends) that must not go
// through fuzzy resolution.
func (s *Session) ConfigValue(key string) string {
	entry, err := s.config.Get(key)
	if err != nil || entry == nil {
		return ""
	}
	return entry.Value
}

func (s *Session) tasksDir() string {
	return filepath.Join(s.dataDir, "tasks")
}

func (s *Session) aideFilePath(name string) string {
	return filepath.Join(s.dataDir, name+".txt")
}
