package db

import (
	"database/sql"
	"errors"

	"github.com/samba-rgb/AIDE/internal/models"
)

// ConfigRepository handles configuration key/value operations.
type ConfigRepository struct {
	db *DB
}

// NewConfigRepository creates a new config repository.
func NewConfigRepository(db *DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

// Set inserts or overwrites a key.
func (r *ConfigRepository) Set(key, value string) error {
	query := `
		INSERT INTO config_data (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	_, err := r.db.Exec(query, key, value, models.Timestamp())
	return err
}

// Get retrieves a key, (nil, nil) when absent.
func (r *ConfigRepository) Get(key string) (*models.ConfigEntry, error) {
	var entry models.ConfigEntry
	query := `SELECT key, value, updated_at FROM config_data WHERE key = ?`
	err := r.db.DB.Get(&entry, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns all entries ordered by key.
func (r *ConfigRepository) List() ([]*models.ConfigEntry, error) {
	var entries []*models.ConfigEntry
	query := `SELECT key, value, updated_at FROM config_data ORDER BY key`
	if err := r.db.Select(&entries, query); err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes a key, reporting whether it existed.
func (r *ConfigRepository) Delete(key string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM config_data WHERE key = ?`, key)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Keys returns the ordered key list the similarity index builds from.
func (r *ConfigRepository) Keys() ([]string, error) {
	var keys []string
	if err := r.db.Select(&keys, `SELECT key FROM config_data ORDER BY rowid`); err != nil {
		return nil, err
	}
	return keys, nil
}
