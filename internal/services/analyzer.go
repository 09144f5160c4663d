package services

import (
	"strings"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type AnalyzerService interface {
	Analyze(text string) *models.AnalysisResult
}

type analyzerService struct {
	vocab        *Vocabulary
	mode         MatchMode
	idealProfile string
}

// NewAnalyzerService builds an analyzer over a fixed vocabulary. A nil
// vocabulary selects DefaultVocabulary.
func NewAnalyzerService(vocab *Vocabulary, mode MatchMode) AnalyzerService {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &analyzerService{
		vocab:        vocab,
		mode:         mode,
		idealProfile: strings.ToLower(vocab.IdealProfile),
	}
}

// Analyze scores raw document text. It never fails and holds no state between calls.
func (a *analyzerService) Analyze(text string) *models.AnalysisResult {
	normalized := strings.ToLower(text)

	features := ExtractFeatures(normalized, a.vocab, a.mode)
	words := wordCount(normalized)
	rules := ScoreFeatures(features, words)

	similarity := Similarity(normalized, a.idealProfile)

	suggestions := make([]string, 0, len(rules.Suggestions)+3)
	suggestions = append(suggestions, rules.Suggestions...)
	suggestions = append(suggestions, SimilaritySuggestions(similarity)...)

	return &models.AnalysisResult{
		Feedback: models.FeedbackPayload{
			ResumeScore:   rules.Breakdown.Total,
			SkillsFound:   features.FoundSkills,
			SectionsFound: features.SectionsFound,
			Improvements:  rules.Improvements,
			Suggestions:   suggestions,
		},
		Breakdown:  rules.Breakdown,
		WordCount:  words,
		Similarity: similarity,
	}
}
