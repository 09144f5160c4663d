package services

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Section is a named résumé block and the keyword variants that reveal it.
type Section struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Vocabulary holds the fixed term lists the analyzer matches against.
// A Vocabulary is read-only once built and safe to share between goroutines.
type Vocabulary struct {
	Skills         []string  `yaml:"skills"`
	Sections       []Section `yaml:"sections"`
	AdvancedSkills []string  `yaml:"advanced_skills"`
	ImpactWords    []string  `yaml:"impact_words"`
	ActionWords    []string  `yaml:"action_words"`
	IdealProfile   string    `yaml:"ideal_profile"`
}

const (
	SectionSkills     = "skills"
	SectionProjects   = "projects"
	SectionExperience = "experience"
	SectionEducation  = "education"
)

const defaultIdealProfile = `
Strong technical skills including backend, databases, cloud, and system design.
Projects should demonstrate measurable impact and problem solving.
Experience should include internships or real-world exposure with clear outcomes.
Knowledge of version control, deployment, and scalability is expected.
`

// DefaultVocabulary returns a fresh copy of the built-in vocabulary.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Skills: []string{
			"python", "java", "c++", "javascript", "sql", "html", "css",
			"machine learning", "deep learning", "data analysis",
			"flask", "django", "react", "node", "docker", "kubernetes", "git",
			"aws", "linux",
		},
		Sections: []Section{
			{Name: SectionSkills, Keywords: []string{"skills", "technical skills"}},
			{Name: SectionProjects, Keywords: []string{"projects", "academic projects"}},
			{Name: SectionExperience, Keywords: []string{"experience", "internship", "work experience"}},
			{Name: SectionEducation, Keywords: []string{"education", "qualification"}},
		},
		AdvancedSkills: []string{
			"docker", "kubernetes", "aws", "azure", "gcp",
			"microservices", "mlops", "ci/cd", "system design",
		},
		ImpactWords: []string{
			"improved", "increased", "reduced", "optimized",
			"achieved", "built", "developed", "designed",
		},
		ActionWords: []string{
			"led", "implemented", "managed", "designed",
			"optimized", "deployed", "collaborated",
		},
		IdealProfile: strings.ToLower(defaultIdealProfile),
	}
}

// LoadVocabulary reads a YAML vocabulary file. Lists absent from the file keep
// their built-in values. Every term is lower-cased on load.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	var loaded Vocabulary
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file: %w", err)
	}

	vocab := DefaultVocabulary()
	if loaded.Skills != nil {
		vocab.Skills = lowerAll(loaded.Skills)
	}
	if loaded.Sections != nil {
		vocab.Sections = make([]Section, len(loaded.Sections))
		for i, s := range loaded.Sections {
			vocab.Sections[i] = Section{
				Name:     strings.ToLower(strings.TrimSpace(s.Name)),
				Keywords: lowerAll(s.Keywords),
			}
		}
	}
	if loaded.AdvancedSkills != nil {
		vocab.AdvancedSkills = lowerAll(loaded.AdvancedSkills)
	}
	if loaded.ImpactWords != nil {
		vocab.ImpactWords = lowerAll(loaded.ImpactWords)
	}
	if loaded.ActionWords != nil {
		vocab.ActionWords = lowerAll(loaded.ActionWords)
	}
	if strings.TrimSpace(loaded.IdealProfile) != "" {
		vocab.IdealProfile = strings.ToLower(loaded.IdealProfile)
	}

	if err := vocab.Validate(); err != nil {
		return nil, err
	}

	return vocab, nil
}

// Validate checks that section names are present and unique.
func (v *Vocabulary) Validate() error {
	seen := make(map[string]bool, len(v.Sections))
	for _, s := range v.Sections {
		if s.Name == "" {
			return errors.New("vocabulary: section name must not be empty")
		}
		if seen[s.Name] {
			return fmt.Errorf("vocabulary: duplicate section %q", s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

func lowerAll(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
