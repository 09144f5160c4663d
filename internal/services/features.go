package services

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MatchMode selects how vocabulary terms are found in the text.
type MatchMode string

const (
	// MatchSubstring is plain containment: "education" matches inside "reeducation".
	MatchSubstring MatchMode = "substring"
	// MatchWord requires the term to be bounded by non-alphanumeric runes or the text edges.
	MatchWord MatchMode = "word"
)

func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchSubstring:
		return MatchSubstring, nil
	case MatchWord:
		return MatchWord, nil
	default:
		return MatchSubstring, fmt.Errorf("unknown match mode %q", s)
	}
}

// FeatureSet is the result of matching normalized text against a Vocabulary.
// Slices keep vocabulary order, not occurrence order.
type FeatureSet struct {
	FoundSkills         []string
	SectionsFound       []string
	AdvancedFound       []string
	HasProjectImpact    bool
	HasExperienceAction bool
}

func (f FeatureSet) HasSection(name string) bool {
	for _, s := range f.SectionsFound {
		if s == name {
			return true
		}
	}
	return false
}

// ExtractFeatures scans already lower-cased text for every vocabulary list.
func ExtractFeatures(text string, vocab *Vocabulary, mode MatchMode) FeatureSet {
	contains := containsFunc(mode)

	features := FeatureSet{
		FoundSkills:   matchTerms(text, vocab.Skills, contains),
		SectionsFound: []string{},
		AdvancedFound: matchTerms(text, vocab.AdvancedSkills, contains),
	}

	for _, section := range vocab.Sections {
		if containsAny(text, section.Keywords, contains) {
			features.SectionsFound = append(features.SectionsFound, section.Name)
		}
	}

	features.HasProjectImpact = containsAny(text, vocab.ImpactWords, contains)
	features.HasExperienceAction = containsAny(text, vocab.ActionWords, contains)

	return features
}

func matchTerms(text string, terms []string, contains func(string, string) bool) []string {
	found := []string{}
	for _, term := range terms {
		if contains(text, term) {
			found = append(found, term)
		}
	}
	return found
}

func containsAny(text string, terms []string, contains func(string, string) bool) bool {
	for _, term := range terms {
		if contains(text, term) {
			return true
		}
	}
	return false
}

func containsFunc(mode MatchMode) func(string, string) bool {
	if mode == MatchWord {
		return containsWord
	}
	return strings.Contains
}

// containsWord reports whether term occurs in text with no letter or digit
// directly before or after it.
func containsWord(text, term string) bool {
	if term == "" {
		return true
	}
	offset := 0
	for {
		idx := strings.Index(text[offset:], term)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(term)

		before, _ := utf8.DecodeLastRuneInString(text[:start])
		after, _ := utf8.DecodeRuneInString(text[end:])
		if (start == 0 || !isAlnum(before)) && (end == len(text) || !isAlnum(after)) {
			return true
		}

		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
