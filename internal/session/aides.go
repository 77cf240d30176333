package session

import (
	"fmt"
	"os"

	"github.com/samba-rgb/AIDE/internal/models"
	"github.com/samba-rgb/AIDE/internal/search"
)

// CreateAide runs the creation-intent protocol for an aide name. The bool
// reports whether a new aide was created; false means an existing aide
// (exact or confirmed suggestion) was reused.
func (s *Session) CreateAide(name string, aideType models.AideType) (string, bool, error) {
	if !aideType.Valid() {
		return "", false, fmt.Errorf("invalid aide type %q (valid: text, file)", aideType)
	}

	res, err := search.ResolveForCreate(s.aideIndex, name, s.confirm)
	if err != nil {
		return "", false, err
	}
	if res.Decision == search.Proceed {
		return res.Name, false, nil
	}

	if err := s.aides.Create(res.Name, aideType); err != nil {
		return "", false, fmt.Errorf("create aide: %w", err)
	}
	s.aideIndex.Add(res.Name)
	s.log.Debug("aide created", "name", res.Name, "type", aideType)
	return res.Name, true, nil
}

// AddData resolves the aide name and attaches one entry to it. File aides
// additionally get the entry appended to their text file under the data
// directory.
func (s *Session) AddData(name, content string) (string, error) {
	actual, err := s.lookup(s.aideIndex, "aide", name)
	if err != nil {
		return "", err
	}

	aide, err := s.aides.Get(actual)
	if err != nil {
		return "", err
	}
	if aide == nil {
		return "", &NotFoundError{Kind: "aide", Name: actual}
	}

	entry := models.NewDataEntry(aide.ID, content)
	if err := s.aides.AddData(entry); err != nil {
		return "", fmt.Errorf("store data: %w", err)
	}

	if aide.Type == models.AideTypeFile {
		if err := s.appendToAideFile(actual, entry); err != nil {
			return "", err
		}
	}
	return actual, nil
}

// appendToAideFile mirrors an entry into ~/.aide/<name>.txt, creating the
// file with a header on first use.
func (s *Session) appendToAideFile(name string, entry *models.DataEntry) error {
	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	path := s.aideFilePath(name)
	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("read aide file: %w", err)
		}
		content = []byte(aideFileHeader(name))
	}

	content = append(content, fmt.Sprintf("%s\n* %s\n", entry.CreatedAt, entry.InputText)...)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("write aide file: %w", err)
	}
	return nil
}

// AideFilePath resolves the aide name and returns its text file path,
// creating the file if needed. Only file aides have one.
func (s *Session) AideFilePath(name string) (string, error) {
	actual, err := s.lookup(s.aideIndex, "aide", name)
	if err != nil {
		return "", err
	}

	aide, err := s.aides.Get(actual)
	if err != nil {
		return "", err
	}
	if aide == nil {
		return "", &NotFoundError{Kind: "aide", Name: actual}
	}
	if aide.Type != models.AideTypeFile {
		return "", fmt.Errorf("'%s' is a %s aide; 'write' works with file aides only", actual, aide.Type)
	}

	path := s.aideFilePath(actual)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(s.dataDir, 0755); err != nil {
			return "", fmt.Errorf("create data directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(aideFileHeader(actual)), 0644); err != nil {
			return "", fmt.Errorf("create aide file: %w", err)
		}
	}
	return path, nil
}

// UpdateAideContent resolves the aide name and overwrites its stored
// entries, falling back to adding a new entry when none exist yet.
func (s *Session) UpdateAideContent(name, content string) (string, error) {
	actual, err := s.lookup(s.aideIndex, "aide", name)
	if err != nil {
		return "", err
	}

	rows, err := s.aides.UpdateContent(actual, content)
	if err != nil {
		return "", err
	}
	if rows == 0 {
		return s.AddData(actual, content)
	}
	return actual, nil
}

// SearchData returns the best-scoring stored entry for the query, nil when
// nothing scores above zero. Entries are ranked with the same string
// heuristic the resolver uses.
func (s *Session) SearchData(query string) (*models.StoredEntry, error) {
	entries, err := s.aides.AllEntries()
	if err != nil {
		return nil, err
	}

	var best *models.StoredEntry
	bestScore := 0.0
	for _, e := range entries {
		if score := search.StringSimilarity(query, e.InputText); score > bestScore {
			best = e
			bestScore = score
		}
	}
	return best, nil
}

// Aides lists all aides with their entry counts.
func (s *Session) Aides() ([]*models.AideSummary, error) {
	return s.aides.List()
}

func aideFileHeader(name string) string {
	return fmt.Sprintf("# %s\n\nCreated: %s\n\n", name, models.Timestamp())
}
