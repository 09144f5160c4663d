package services

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_Degenerate(t *testing.T) {
	profile := DefaultVocabulary().IdealProfile

	assert.Equal(t, 0.0, Similarity("", profile))
	assert.Equal(t, 0.0, Similarity("the and of to a", profile))
	assert.Equal(t, 0.0, Similarity("", ""))
	assert.Equal(t, 0.0, Similarity("golang", "the"))
}

func TestSimilarity_IdenticalText(t *testing.T) {
	profile := DefaultVocabulary().IdealProfile
	assert.InDelta(t, 1.0, Similarity(profile, profile), 1e-9)
}

func TestSimilarity_Disjoint(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("kubernetes golang", "baking bread"))
}

func TestSimilarity_KnownValue(t *testing.T) {
	// cloud appears in both documents (idf 1), backend and database in one each.
	rare := math.Log(1.5) + 1
	want := 1 / (1 + rare*rare)

	assert.InDelta(t, want, Similarity("cloud backend", "cloud database"), 1e-12)
}

func TestSimilarity_Symmetric(t *testing.T) {
	a := "built scalable backend services on aws with measurable impact"
	b := DefaultVocabulary().IdealProfile
	assert.InDelta(t, Similarity(a, b), Similarity(b, a), 1e-12)
}

func TestSimilarity_Bounds(t *testing.T) {
	profile := DefaultVocabulary().IdealProfile
	texts := []string{
		"",
		"lorem ipsum",
		"strong technical skills backend databases cloud",
		profile + " " + profile,
		"projects projects projects experience",
	}
	for _, text := range texts {
		sim := Similarity(text, profile)
		assert.GreaterOrEqual(t, sim, 0.0, text)
		assert.LessOrEqual(t, sim, 1.0, text)
	}
}

func TestSimilarity_StableAcrossRuns(t *testing.T) {
	profile := DefaultVocabulary().IdealProfile

	var b strings.Builder
	b.WriteString(profile)
	for i := 0; i < 400; i++ {
		fmt.Fprintf(&b, " term%d", i)
		if i%3 == 0 {
			fmt.Fprintf(&b, " term%d", i)
		}
	}
	text := b.String()

	first := Similarity(text, profile)
	for i := 0; i < 200; i++ {
		assert.Equal(t, first, Similarity(text, profile), "run %d", i)
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t,
		[]string{"ci", "cd", "node", "js", "x_y", "2024"},
		tokenize("c++ ci/cd a node.js x_y 2024"),
	)
	assert.Empty(t, tokenize(""))
	assert.Equal(t, []string{"café", "über"}, tokenize("café, über!"))
	assert.Equal(t, []string{"café", "x²y"}, tokenize("café x²y"))
	// A combining accent is not a word rune.
	assert.Equal(t, []string{"cafe", "ab"}, tokenize("cafe\u0301ab"))
}

func TestTermCounts_RemovesStopWords(t *testing.T) {
	counts := termCounts("the system design of the system")
	assert.Equal(t, map[string]int{"design": 1}, counts)
}

func TestSimilaritySuggestions(t *testing.T) {
	tests := []struct {
		sim  float64
		want []string
	}{
		{0, []string{SuggestionCoreConcepts, SuggestionTechnicalDepth, SuggestionResponsibility}},
		{0.34, []string{SuggestionCoreConcepts, SuggestionTechnicalDepth, SuggestionResponsibility}},
		{0.35, []string{SuggestionTechnicalDepth, SuggestionResponsibility}},
		{0.5, []string{SuggestionResponsibility}},
		{0.65, []string{}},
		{1, []string{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SimilaritySuggestions(tt.sim), "similarity=%v", tt.sim)
	}
}
