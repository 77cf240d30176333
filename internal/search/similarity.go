package search

import (
	"math"
	"strings"
)

// StringSimilarity scores how close input is to target, in [0, 1].
// Case-insensitive. Substring containment wins outright: 0.8 when target
// contains input, 0.6 when input contains target. Otherwise both strings are
// walked left to right with two cursors, counting positions where the
// characters agree and trying a one-step lookahead on either side to
// resynchronize after a mismatch. The count is divided by the longer length.
// This is a cheap heuristic, not an edit distance; some transpositions score
// lower than they deserve.
func StringSimilarity(input, target string) float64 {
	in := strings.ToLower(input)
	tg := strings.ToLower(target)

	if strings.Contains(tg, in) {
		return 0.8
	}
	if strings.Contains(in, tg) {
		return 0.6
	}

	ic := []rune(in)
	tc := []rune(tg)

	common := 0
	i, j := 0, 0
	for i < len(ic) && j < len(tc) {
		switch {
		case ic[i] == tc[j]:
			common++
			i++
			j++
		case i < len(ic)-1 && ic[i+1] == tc[j]:
			i++
		case j < len(tc)-1 && ic[i] == tc[j+1]:
			j++
		default:
			i++
			j++
		}
	}

	maxLen := len(ic)
	if len(tc) > maxLen {
		maxLen = len(tc)
	}
	if maxLen == 0 {
		return 0.0
	}
	return float64(common) / float64(maxLen)
}

// cosineSimilarity is the normalized dot product of two sparse vectors,
// 0 when either vector has zero magnitude.
func cosineSimilarity(u, v map[int]float64) float64 {
	var dot, normU, normV float64
	for id, a := range u {
		dot += a * v[id]
		normU += a * a
	}
	for _, b := range v {
		normV += b * b
	}
	if normU == 0 || normV == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normU) * math.Sqrt(normV))
}
