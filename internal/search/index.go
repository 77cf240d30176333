// Package search implements the fuzzy name-resolution engine: a small
// incrementally maintained TF-IDF index over entity names combined with a
// string-similarity heuristic, and the confirm-or-abort protocol callers use
// to turn a user-typed name into a definite entity.
package search

import (
	"fmt"
	"math"
)

// FuzzyMatchThreshold is the minimum combined score for a name to be offered
// as a suggestion.
const FuzzyMatchThreshold = 0.3

// Score blend between the string heuristic and TF-IDF cosine similarity.
const (
	stringWeight = 0.7
	tfidfWeight  = 0.3
)

// MatchKind classifies a resolution result.
type MatchKind int

const (
	// MatchNone means no indexed name reached the threshold.
	MatchNone MatchKind = iota
	// MatchExact means the input equals an indexed name, case-sensitive.
	MatchExact
	// MatchSuggestion means the best non-exact candidate at or above the
	// threshold.
	MatchSuggestion
)

// Match is the outcome of resolving an input against an Index.
type Match struct {
	Kind  MatchKind
	Name  string
	Score float64
}

// Index holds the TF-IDF state for one entity class (tasks, aides, or config
// keys). Indexes are independent: no shared vocabulary or id space. An Index
// is rebuilt from the stored name list at session start and maintained
// incrementally afterwards; it is never persisted. Single-threaded use only.
type Index struct {
	vocabulary map[string]int  // token -> dense id, first-seen order
	docFreqs   []float64       // per id: number of names containing the token
	vectors    []map[int]float64 // sparse TF-IDF weights, parallel to names
	names      []string
	totalDocs  int
}

// NewIndex builds an index from the full current name list for one entity
// class. An empty list yields an empty index.
func NewIndex(names []string) *Index {
	ix := &Index{vocabulary: make(map[string]int)}
	if len(names) == 0 {
		return ix
	}

	docCount := make(map[string]int)
	for _, name := range names {
		seen := make(map[string]struct{})
		for _, tok := range Tokenize(name) {
			if _, ok := ix.vocabulary[tok]; !ok {
				ix.vocabulary[tok] = len(ix.vocabulary)
			}
			seen[tok] = struct{}{}
		}
		for tok := range seen {
			docCount[tok]++
		}
	}

	ix.docFreqs = make([]float64, len(ix.vocabulary))
	for tok, id := range ix.vocabulary {
		ix.docFreqs[id] = float64(docCount[tok])
	}

	ix.totalDocs = len(names)
	ix.names = append(ix.names, names...)
	for _, name := range names {
		ix.vectors = append(ix.vectors, ix.vectorFor(Tokenize(name)))
	}
	return ix
}

// Len returns the number of indexed entities.
func (ix *Index) Len() int {
	return len(ix.names)
}

// Names returns a copy of the indexed names in insertion order.
func (ix *Index) Names() []string {
	out := make([]string, len(ix.names))
	copy(out, ix.names)
	return out
}

// Contains reports whether name is indexed, by exact string match.
func (ix *Index) Contains(name string) bool {
	return ix.position(name) >= 0
}

// Add inserts one entity into the index. It is a no-op if name is already
// present. New tokens get fresh vocabulary ids, document frequencies and
// total_docs are bumped, and the new vector is computed against the updated
// statistics. Vectors are then rescaled only for ids minted by this call;
// weights for older ids keep the total_docs they were computed against. That
// staleness is the intended trade: O(changed ids) work on insert instead of
// touching every document. Remove pays the full recompute instead.
func (ix *Index) Add(name string) {
	if ix.Contains(name) {
		return
	}

	tokens := Tokenize(name)
	var newIDs []int
	for _, tok := range tokens {
		if _, ok := ix.vocabulary[tok]; !ok {
			id := len(ix.vocabulary)
			ix.vocabulary[tok] = id
			ix.docFreqs = append(ix.docFreqs, 0)
			newIDs = append(newIDs, id)
		}
	}

	seen := make(map[int]struct{})
	for _, tok := range tokens {
		seen[ix.vocabulary[tok]] = struct{}{}
	}
	for id := range seen {
		ix.docFreqs[id]++
	}

	ix.totalDocs++
	ix.vectors = append(ix.vectors, ix.vectorFor(tokens))
	ix.names = append(ix.names, name)

	for _, vec := range ix.vectors {
		for _, id := range newIDs {
			if w, ok := vec[id]; ok {
				vec[id] = w * ix.idf(id)
			}
		}
	}
}

// Remove deletes the entity with the exact given name, reporting whether it
// existed. Deletion shrinks total_docs, which sits in every remaining
// document's IDF denominator, so every remaining vector is recomputed from
// scratch; a partial update would be wrong here.
func (ix *Index) Remove(name string) bool {
	pos := ix.position(name)
	if pos < 0 {
		return false
	}

	seen := make(map[int]struct{})
	for _, tok := range Tokenize(name) {
		if id, ok := ix.vocabulary[tok]; ok {
			seen[id] = struct{}{}
		}
	}
	for id := range seen {
		ix.docFreqs[id]--
	}

	ix.names = append(ix.names[:pos], ix.names[pos+1:]...)
	ix.vectors = append(ix.vectors[:pos], ix.vectors[pos+1:]...)
	ix.totalDocs--

	for i, n := range ix.names {
		ix.vectors[i] = ix.vectorFor(Tokenize(n))
	}
	return true
}

// Resolve matches input against the index. Exact match is checked first,
// case-sensitive and unnormalized. Otherwise every candidate is scored as
// 0.7*string similarity + 0.3*TF-IDF cosine and the best candidate at or
// above FuzzyMatchThreshold is suggested; on equal scores the earlier
// insertion wins. The query vector is computed against the current
// vocabulary and never inserted.
func (ix *Index) Resolve(input string) Match {
	if len(ix.names) != len(ix.vectors) {
		panic(fmt.Sprintf("search: index desynchronized: %d names, %d vectors",
			len(ix.names), len(ix.vectors)))
	}

	if ix.Contains(input) {
		return Match{Kind: MatchExact, Name: input, Score: 1.0}
	}

	var query map[int]float64
	if len(ix.vocabulary) > 0 {
		query = ix.vectorFor(Tokenize(input))
	}

	best := Match{Kind: MatchNone}
	for i, name := range ix.names {
		score := stringWeight * StringSimilarity(input, name)
		if query != nil {
			score += tfidfWeight * cosineSimilarity(query, ix.vectors[i])
		}
		if score >= FuzzyMatchThreshold && (best.Kind == MatchNone || score > best.Score) {
			best = Match{Kind: MatchSuggestion, Name: name, Score: score}
		}
	}
	return best
}

func (ix *Index) position(name string) int {
	for i, n := range ix.names {
		if n == name {
			return i
		}
	}
	return -1
}

// idf applies Laplace smoothing in the denominator so a df of zero stays
// finite and a token present in every document is actively de-weighted
// (negative IDF is accepted).
func (ix *Index) idf(id int) float64 {
	return math.Log(float64(ix.totalDocs) / (ix.docFreqs[id] + 1))
}

// termFrequencies counts in-vocabulary tokens and normalizes by the token
// sequence length. A zero-token document yields an empty map, which keeps
// the normalization away from dividing by zero.
func termFrequencies(tokens []string, vocab map[string]int) map[int]float64 {
	tf := make(map[int]float64)
	for _, tok := range tokens {
		if id, ok := vocab[tok]; ok {
			tf[id]++
		}
	}
	n := float64(len(tokens))
	for id := range tf {
		tf[id] /= n
	}
	return tf
}

func (ix *Index) vectorFor(tokens []string) map[int]float64 {
	vec := termFrequencies(tokens, ix.vocabulary)
	for id, tf := range vec {
		vec[id] = tf * ix.idf(id)
	}
	return vec
}
