package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndexEmpty(t *testing.T) {
	ix := NewIndex(nil)
	assert.Equal(t, 0, ix.Len())

	m := ix.Resolve("anything")
	assert.Equal(t, MatchNone, m.Kind)
}

func TestNewIndexBuild(t *testing.T) {
	names := []string{"deploy-staging", "deploy-prod", "fix-login-bug"}
	ix := NewIndex(names)

	assert.Equal(t, len(names), ix.Len())
	assert.Equal(t, names, ix.Names())

	for _, name := range names {
		m := ix.Resolve(name)
		assert.Equal(t, MatchExact, m.Kind, "name %q", name)
		assert.Equal(t, name, m.Name)
	}
}

func TestResolveSuggestion(t *testing.T) {
	ix := NewIndex([]string{"deploy-staging", "deploy-prod", "fix-login-bug"})

	m := ix.Resolve("deploy-stagng")
	require.Equal(t, MatchSuggestion, m.Kind)
	assert.Equal(t, "deploy-staging", m.Name)
	assert.GreaterOrEqual(t, m.Score, FuzzyMatchThreshold)
}

func TestResolveNoMatch(t *testing.T) {
	ix := NewIndex([]string{"deploy-staging", "deploy-prod", "fix-login-bug"})

	m := ix.Resolve("zzz")
	assert.Equal(t, MatchNone, m.Kind)
}

func TestResolveThreshold(t *testing.T) {
	ix := NewIndex([]string{"alpha"})

	// "alp" is a substring of "alpha": 0.7*0.8 = 0.56, above threshold.
	m := ix.Resolve("alp")
	require.Equal(t, MatchSuggestion, m.Kind)
	assert.Equal(t, "alpha", m.Name)

	// "ql" shares one ordered character out of five: 0.7*0.2 = 0.14,
	// below threshold.
	m = ix.Resolve("ql")
	assert.Equal(t, MatchNone, m.Kind)
}

func TestResolveScoreAtThresholdIncluded(t *testing.T) {
	ix := NewIndex([]string{"aybycyy"})

	// Neither string contains the other, the ordered-character overlap is 3
	// of 7, and the query token is out of vocabulary so cosine contributes
	// nothing: the combined score is 0.7*(3/7), which is exactly 0.3 in
	// float64. A score landing on the threshold still counts.
	m := ix.Resolve("axbxcxx")
	require.Equal(t, MatchSuggestion, m.Kind)
	assert.Equal(t, FuzzyMatchThreshold, m.Score)
	assert.Equal(t, "aybycyy", m.Name)
}

func TestResolveExactIsCaseSensitive(t *testing.T) {
	ix := NewIndex([]string{"Notes"})

	m := ix.Resolve("notes")
	assert.NotEqual(t, MatchExact, m.Kind)

	m = ix.Resolve("Notes")
	assert.Equal(t, MatchExact, m.Kind)
}

func TestResolveMultiTokenNames(t *testing.T) {
	ix := NewIndex([]string{"deploy staging", "deploy prod", "rotate certs"})

	m := ix.Resolve("deploy stagin")
	require.Equal(t, MatchSuggestion, m.Kind)
	assert.Equal(t, "deploy staging", m.Name)
}

func TestResolveTieBreakKeepsFirst(t *testing.T) {
	// Both names score identically against the query; the earlier
	// insertion must win.
	ix := NewIndex([]string{"aaa bbb", "bbb aaa"})

	m := ix.Resolve("aaa")
	require.Equal(t, MatchSuggestion, m.Kind)
	assert.Equal(t, "aaa bbb", m.Name)
}

func TestAddThenResolve(t *testing.T) {
	ix := NewIndex([]string{"deploy-staging"})
	ix.Add("fix-login-bug")

	m := ix.Resolve("fix-login-bug")
	assert.Equal(t, MatchExact, m.Kind)
	assert.Equal(t, 2, ix.Len())
}

func TestAddToEmptyIndex(t *testing.T) {
	ix := NewIndex(nil)
	ix.Add("first")

	assert.Equal(t, 1, ix.Len())
	assert.Equal(t, MatchExact, ix.Resolve("first").Kind)
}

func TestAddIsIdempotent(t *testing.T) {
	ix := NewIndex([]string{"a", "b"})
	ix.Add("c")
	names := ix.Names()

	ix.Add("c")
	assert.Equal(t, names, ix.Names())
	assert.Equal(t, 3, ix.Len())
}

func TestRemove(t *testing.T) {
	ix := NewIndex([]string{"deploy-staging", "deploy-prod"})

	assert.True(t, ix.Remove("deploy-prod"))
	assert.False(t, ix.Remove("deploy-prod"))
	assert.False(t, ix.Remove("never-existed"))

	assert.Equal(t, 1, ix.Len())
	assert.NotEqual(t, MatchExact, ix.Resolve("deploy-prod").Kind)
	assert.Equal(t, MatchExact, ix.Resolve("deploy-staging").Kind)
}

func TestRemoveLastEntry(t *testing.T) {
	ix := NewIndex([]string{"only"})
	assert.True(t, ix.Remove("only"))
	assert.Equal(t, 0, ix.Len())
	assert.Equal(t, MatchNone, ix.Resolve("only").Kind)
}

func TestRoundTripMatchesRebuild(t *testing.T) {
	ix := NewIndex([]string{"deploy staging", "deploy prod"})
	ix.Add("fix login bug")
	ix.Add("rotate certs")
	ix.Remove("deploy prod")
	ix.Add("deploy canary")

	rebuilt := NewIndex(ix.Names())
	require.Equal(t, ix.Len(), rebuilt.Len())

	// Exact-match behavior must agree even though incremental IDF weights
	// may drift from a fresh build.
	for _, name := range ix.Names() {
		assert.Equal(t, MatchExact, ix.Resolve(name).Kind)
		assert.Equal(t, MatchExact, rebuilt.Resolve(name).Kind)
	}
	assert.NotEqual(t, MatchExact, ix.Resolve("deploy prod").Kind)
}

func TestResolveQueryNotInserted(t *testing.T) {
	ix := NewIndex([]string{"deploy staging"})
	before := ix.Len()

	ix.Resolve("deploy stagin")
	ix.Resolve("brand new name")

	assert.Equal(t, before, ix.Len())
}

func TestDocumentFrequencyTracking(t *testing.T) {
	ix := NewIndex([]string{"deploy staging", "deploy prod"})

	id, ok := ix.vocabulary["deploy"]
	require.True(t, ok)
	assert.Equal(t, 2.0, ix.docFreqs[id])

	ix.Add("deploy canary")
	assert.Equal(t, 3.0, ix.docFreqs[id])

	ix.Remove("deploy prod")
	assert.Equal(t, 2.0, ix.docFreqs[id])
}

func TestZeroTokenNameIsHarmless(t *testing.T) {
	ix := NewIndex([]string{"---", "real name"})
	assert.Equal(t, 2, ix.Len())

	m := ix.Resolve("real name")
	assert.Equal(t, MatchExact, m.Kind)
}

func TestResolvePanicsOnDesync(t *testing.T) {
	ix := NewIndex([]string{"a", "b"})
	ix.vectors = ix.vectors[:1]

	assert.Panics(t, func() { ix.Resolve("a") })
}
