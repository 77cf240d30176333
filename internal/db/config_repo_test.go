package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSetAndGet(t *testing.T) {
	repo := NewConfigRepository(openTestDB(t))

	require.NoError(t, repo.Set("llm_endpoint", "http://localhost:11434/v1"))

	entry, err := repo.Get("llm_endpoint")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "http://localhost:11434/v1", entry.Value)
	assert.NotEmpty(t, entry.UpdatedAt)
}

func TestConfigGetMissing(t *testing.T) {
	repo := NewConfigRepository(openTestDB(t))

	entry, err := repo.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestConfigSetOverwrites(t *testing.T) {
	repo := NewConfigRepository(openTestDB(t))

	require.NoError(t, repo.Set("llm_model", "phi3"))
	require.NoError(t, repo.Set("llm_model", "llama3"))

	entry, err := repo.Get("llm_model")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "llama3", entry.Value)

	keys, err := repo.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"llm_model"}, keys)
}

func TestConfigListOrdersByKey(t *testing.T) {
	repo := NewConfigRepository(openTestDB(t))

	require.NoError(t, repo.Set("zeta", "1"))
	require.NoError(t, repo.Set("alpha", "2"))

	entries, err := repo.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "alpha", entries[0].Key)
	assert.Equal(t, "zeta", entries[1].Key)
}

func TestConfigKeysPreserveInsertionOrder(t *testing.T) {
	repo := NewConfigRepository(openTestDB(t))

	require.NoError(t, repo.Set("zeta", "1"))
	require.NoError(t, repo.Set("alpha", "2"))

	keys, err := repo.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha"}, keys)
}

func TestConfigDelete(t *testing.T) {
	repo := NewConfigRepository(openTestDB(t))
	require.NoError(t, repo.Set("llm_model", "phi3"))

	ok, err := repo.Delete("llm_model")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete("llm_model")
	require.NoError(t, err)
	assert.False(t, ok)

	entry, err := repo.Get("llm_model")
	require.NoError(t, err)
	assert.Nil(t, entry)
}
