package services

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	SimilarityLow    = 0.35
	SimilarityMedium = 0.50
	SimilarityHigh   = 0.65
)

const (
	SuggestionCoreConcepts   = "Strengthened backend, cloud, or system design concepts"
	SuggestionTechnicalDepth = "Projects could be improved by emphasizing measurable results and technical depth"
	SuggestionResponsibility = "Experience descriptions can be improved with clearer responsibilities and outcomes"
)

// Similarity returns the cosine similarity of the TF-IDF vectors of text and
// reference, fitted over the two-document corpus {text, reference} with
// English stop words removed. Both inputs are expected lower-cased.
// A zero vector on either side yields 0.
func Similarity(text, reference string) float64 {
	docs := [2]map[string]int{termCounts(text), termCounts(reference)}

	df := make(map[string]int)
	for _, counts := range docs {
		for term := range counts {
			df[term]++
		}
	}
	if len(df) == 0 {
		return 0
	}

	// Sum in a fixed term order so the result does not depend on map iteration.
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	var dot, normA, normB float64
	for _, term := range terms {
		weight := math.Log((1+n)/(1+float64(df[term]))) + 1
		a := float64(docs[0][term]) * weight
		b := float64(docs[1][term]) * weight
		dot += a * b
		normA += a * a
		normB += b * b
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(0, math.Min(1, sim))
}

// SimilaritySuggestions maps a similarity value to suggestions. Each threshold
// is checked independently, so a weak match collects all three.
func SimilaritySuggestions(similarity float64) []string {
	suggestions := []string{}
	if similarity < SimilarityLow {
		suggestions = append(suggestions, SuggestionCoreConcepts)
	}
	if similarity < SimilarityMedium {
		suggestions = append(suggestions, SuggestionTechnicalDepth)
	}
	if similarity < SimilarityHigh {
		suggestions = append(suggestions, SuggestionResponsibility)
	}
	return suggestions
}

func termCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, token := range tokenize(text) {
		if _, stop := englishStopWords[token]; stop {
			continue
		}
		counts[token]++
	}
	return counts
}

// tokenize splits text into runs of two or more word runes
// (letters, numbers or underscore).
func tokenize(text string) []string {
	var tokens []string
	start := -1
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = appendToken(tokens, text[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = appendToken(tokens, text[start:])
	}
	return tokens
}

func appendToken(tokens []string, token string) []string {
	if utf8.RuneCountInString(token) < 2 {
		return tokens
	}
	return append(tokens, token)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.N, r)
}

// wordCount counts whitespace-separated fields.
func wordCount(text string) int {
	return len(strings.Fields(text))
}
