package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeVocabulary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocabulary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultVocabulary(t *testing.T) {
	vocab := DefaultVocabulary()

	require.NoError(t, vocab.Validate())
	names := make([]string, 0, len(vocab.Sections))
	for _, s := range vocab.Sections {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"skills", "projects", "experience", "education"}, names)
	assert.Contains(t, vocab.IdealProfile, "system design")
	assert.NotContains(t, vocab.IdealProfile, "Strong")
}

func TestDefaultVocabulary_IsACopy(t *testing.T) {
	a := DefaultVocabulary()
	a.Skills[0] = "cobol"
	assert.Equal(t, "python", DefaultVocabulary().Skills[0])
}

func TestLoadVocabulary_PartialOverride(t *testing.T) {
	path := writeVocabulary(t, `
skills:
  - Go
  - " Rust "
sections:
  - name: Projects
    keywords: [portfolio, Side Projects]
ideal_profile: Backend Engineer
`)

	vocab, err := LoadVocabulary(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "rust"}, vocab.Skills)
	assert.Equal(t, []Section{{Name: "projects", Keywords: []string{"portfolio", "side projects"}}}, vocab.Sections)
	assert.Equal(t, "backend engineer", vocab.IdealProfile)
	assert.Equal(t, DefaultVocabulary().ActionWords, vocab.ActionWords)
	assert.Equal(t, DefaultVocabulary().AdvancedSkills, vocab.AdvancedSkills)
}

func TestLoadVocabulary_Errors(t *testing.T) {
	_, err := LoadVocabulary(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadVocabulary(writeVocabulary(t, "skills: [unclosed"))
	assert.Error(t, err)

	_, err = LoadVocabulary(writeVocabulary(t, `
sections:
  - name: skills
    keywords: [skills]
  - name: Skills
    keywords: [abilities]
`))
	assert.ErrorContains(t, err, "duplicate section")

	_, err = LoadVocabulary(writeVocabulary(t, `
sections:
  - keywords: [skills]
`))
	assert.ErrorContains(t, err, "must not be empty")
}
