package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFeatures_VocabularyOrder(t *testing.T) {
	vocab := DefaultVocabulary()
	text := "linux aws docker python experienced in sql"

	features := ExtractFeatures(text, vocab, MatchSubstring)

	assert.Equal(t, []string{"python", "sql", "docker", "aws", "linux"}, features.FoundSkills)
	assert.Equal(t, []string{"experience"}, features.SectionsFound)
	assert.Equal(t, []string{"docker", "aws"}, features.AdvancedFound)
}

func TestExtractFeatures_EmptyInputs(t *testing.T) {
	features := ExtractFeatures("", DefaultVocabulary(), MatchSubstring)
	assert.Empty(t, features.FoundSkills)
	assert.Empty(t, features.SectionsFound)
	assert.Empty(t, features.AdvancedFound)
	assert.False(t, features.HasProjectImpact)
	assert.False(t, features.HasExperienceAction)

	features = ExtractFeatures("python projects led", &Vocabulary{}, MatchSubstring)
	assert.NotNil(t, features.FoundSkills)
	assert.Empty(t, features.FoundSkills)
	assert.NotNil(t, features.SectionsFound)
	assert.Empty(t, features.SectionsFound)
	assert.False(t, features.HasProjectImpact)
}

func TestExtractFeatures_SubstringMatching(t *testing.T) {
	vocab := DefaultVocabulary()

	tests := []struct {
		name     string
		text     string
		skills   []string
		sections []string
	}{
		{
			name:     "section keyword inside unrelated word",
			text:     "completed a reeducation program",
			skills:   []string{},
			sections: []string{"education"},
		},
		{
			name:     "java matched inside javascript",
			text:     "javascript",
			skills:   []string{"java", "javascript"},
			sections: []string{},
		},
		{
			name:     "multi-word phrase matches literally",
			text:     "deep learning and data analysis",
			skills:   []string{"deep learning", "data analysis"},
			sections: []string{},
		},
		{
			name:     "section variants",
			text:     "academic projects / internship / qualification",
			skills:   []string{},
			sections: []string{"projects", "experience", "education"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features := ExtractFeatures(tt.text, vocab, MatchSubstring)
			assert.Equal(t, tt.skills, features.FoundSkills)
			assert.Equal(t, tt.sections, features.SectionsFound)
		})
	}
}

func TestExtractFeatures_WordMode(t *testing.T) {
	vocab := DefaultVocabulary()

	features := ExtractFeatures("reeducation in javascript", vocab, MatchWord)
	assert.Equal(t, []string{"javascript"}, features.FoundSkills)
	assert.Empty(t, features.SectionsFound)

	features = ExtractFeatures("c++, ci/cd and node. education", vocab, MatchWord)
	assert.Equal(t, []string{"c++", "node"}, features.FoundSkills)
	assert.Equal(t, []string{"ci/cd"}, features.AdvancedFound)
	assert.Equal(t, []string{"education"}, features.SectionsFound)
}

func TestExtractFeatures_ImpactAndAction(t *testing.T) {
	vocab := DefaultVocabulary()

	features := ExtractFeatures("we improved latency", vocab, MatchSubstring)
	assert.True(t, features.HasProjectImpact)
	assert.False(t, features.HasExperienceAction)

	features = ExtractFeatures("collaborated with design", vocab, MatchSubstring)
	assert.False(t, features.HasProjectImpact)
	assert.True(t, features.HasExperienceAction)
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		text, term string
		want       bool
	}{
		{"go developer", "go", true},
		{"golang", "go", false},
		{"ago go", "go", true},
		{"(aws)", "aws", true},
		{"laws", "aws", false},
		{"", "go", false},
		{"naïve go", "go", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, containsWord(tt.text, tt.term), "containsWord(%q, %q)", tt.text, tt.term)
	}
}

func TestParseMatchMode(t *testing.T) {
	mode, err := ParseMatchMode("")
	assert.NoError(t, err)
	assert.Equal(t, MatchSubstring, mode)

	mode, err = ParseMatchMode("WORD")
	assert.NoError(t, err)
	assert.Equal(t, MatchWord, mode)

	mode, err = ParseMatchMode("fuzzy")
	assert.Error(t, err)
	assert.Equal(t, MatchSubstring, mode)
}
