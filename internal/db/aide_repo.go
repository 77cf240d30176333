package db

import (
	"database/sql"
	"errors"

	"github.com/samba-rgb/AIDE/internal/models"
)

// AideRepository handles aide and data-entry database operations.
type AideRepository struct {
	db *DB
}

// NewAideRepository creates a new aide repository.
func NewAideRepository(db *DB) *AideRepository {
	return &AideRepository{db: db}
}

// Create inserts a new aide.
func (r *AideRepository) Create(name string, aideType models.AideType) error {
	_, err := r.db.Exec(`INSERT INTO aides (name, aide_type) VALUES (?, ?)`, name, aideType)
	return err
}

// Get retrieves an aide by exact name, (nil, nil) when absent.
func (r *AideRepository) Get(name string) (*models.Aide, error) {
	var aide models.Aide
	query := `SELECT id, name, aide_type FROM aides WHERE name = ?`
	err := r.db.DB.Get(&aide, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &aide, nil
}

// List returns all aides with their data-entry counts.
func (r *AideRepository) List() ([]*models.AideSummary, error) {
	var aides []*models.AideSummary
	query := `
		SELECT a.name, a.aide_type, COUNT(d.id) AS data_count
		FROM aides a
		LEFT JOIN data d ON a.id = d.aide_id
		GROUP BY a.name, a.aide_type
		ORDER BY a.name
	`
	if err := r.db.Select(&aides, query); err != nil {
		return nil, err
	}
	return aides, nil
}

// Names returns the ordered aide name list the similarity index builds from.
func (r *AideRepository) Names() ([]string, error) {
	var names []string
	if err := r.db.Select(&names, `SELECT name FROM aides ORDER BY id`); err != nil {
		return nil, err
	}
	return names, nil
}

// AddData stores one entry.
func (r *AideRepository) AddData(entry *models.DataEntry) error {
	query := `
		INSERT INTO data (id, aide_id, input_text, command_output, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		entry.ID,
		entry.AideID,
		entry.InputText,
		entry.CommandOutput,
		entry.CreatedAt,
	)
	return err
}

// AllEntries returns every data row joined with its owning aide, for search.
func (r *AideRepository) AllEntries() ([]*models.StoredEntry, error) {
	var entries []*models.StoredEntry
	query := `
		SELECT a.name, d.input_text, d.command_output
		FROM data d
		JOIN aides a ON d.aide_id = a.id
	`
	if err := r.db.Select(&entries, query); err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateContent overwrites the stored output of an aide's entries, reporting
// how many rows changed.
func (r *AideRepository) UpdateContent(name, content string) (int64, error) {
	query := `
		UPDATE data SET command_output = ?
		WHERE aide_id = (SELECT id FROM aides WHERE name = ?)
	`
	res, err := r.db.Exec(query, content, name)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
