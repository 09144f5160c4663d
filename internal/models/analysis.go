package models

import (
	"time"

	"github.com/google/uuid"
)

// Analysis is a stored analysis result. The uploaded document itself is never persisted.
type Analysis struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OriginalFileName string    `gorm:"type:text" json:"original_filename"`
	WordCount        int       `gorm:"not null" json:"word_count"`
	ResumeScore      int       `gorm:"not null" json:"resume_score"`
	SkillScore       int       `gorm:"not null" json:"skill_score"`
	SectionScore     int       `gorm:"not null" json:"section_score"`
	LengthScore      int       `gorm:"not null" json:"length_score"`
	Similarity       float64   `gorm:"type:decimal(5,4)" json:"similarity"`
	SkillsFound      []string  `gorm:"type:jsonb;serializer:json" json:"skills_found"`
	SectionsFound    []string  `gorm:"type:jsonb;serializer:json" json:"sections_found"`
	Improvements     []string  `gorm:"type:jsonb;serializer:json" json:"improvements"`
	Suggestions      []string  `gorm:"type:jsonb;serializer:json" json:"suggestions"`
	CreatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Analysis) TableName() string {
	return "analyses"
}

// NewAnalysis builds a history record from an analysis result.
func NewAnalysis(filename string, result *AnalysisResult) *Analysis {
	return &Analysis{
		ID:               uuid.New(),
		OriginalFileName: filename,
		WordCount:        result.WordCount,
		ResumeScore:      result.Feedback.ResumeScore,
		SkillScore:       result.Breakdown.SkillScore,
		SectionScore:     result.Breakdown.SectionScore,
		LengthScore:      result.Breakdown.LengthScore,
		Similarity:       result.Similarity,
		SkillsFound:      result.Feedback.SkillsFound,
		SectionsFound:    result.Feedback.SectionsFound,
		Improvements:     result.Feedback.Improvements,
		Suggestions:      result.Feedback.Suggestions,
		CreatedAt:        time.Now(),
	}
}
