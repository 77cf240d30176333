package session

import (
	"github.com/samba-rgb/AIDE/internal/models"
	"github.com/samba-rgb/AIDE/internal/search"
)

// SetConfig runs the creation-intent protocol for a config key and writes
// the value. A confirmed suggestion overwrites the existing near-match key
// instead of minting a near-duplicate.
func (s *Session) SetConfig(key, value string) (string, error) {
	res, err := search.ResolveForCreate(s.configIndex, key, s.confirm)
	if err != nil {
		return "", err
	}

	if err := s.config.Set(res.Name, value); err != nil {
		return "", err
	}
	if res.Decision == search.CreateNew {
		s.configIndex.Add(res.Name)
	}
	return res.Name, nil
}

// GetConfig resolves the key and returns its entry.
func (s *Session) GetConfig(key string) (*models.ConfigEntry, error) {
	actual, err := s.lookup(s.configIndex, "config key", key)
	if err != nil {
		return nil, err
	}

	entry, err := s.config.Get(actual)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, &NotFoundError{Kind: "config key", Name: actual}
	}
	return entry, nil
}

// DeleteConfig resolves the key, deletes it, and drops it from the index.
func (s *Session) DeleteConfig(key string) (string, error) {
	actual, err := s.lookup(s.configIndex, "config key", key)
	if err != nil {
		return "", err
	}

	ok, err := s.config.Delete(actual)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &NotFoundError{Kind: "config key", Name: actual}
	}
	s.configIndex.Remove(actual)
	return actual, nil
}

// Configs lists all configuration entries.
func (s *Session) Configs() ([]*models.ConfigEntry, error) {
	return s.config.List()
}
