package models

// FeedbackPayload is the response body of an analysis.
type FeedbackPayload struct {
	ID            string   `json:"id,omitempty"`
	ResumeScore   int      `json:"resume_score"`
	SkillsFound   []string `json:"skills_found"`
	SectionsFound []string `json:"sections_found"`
	Improvements  []string `json:"improvements"`
	Suggestions   []string `json:"suggestions"`
}

// ScoreBreakdown holds the capped rule-based components. Total is min(sum, 100).
type ScoreBreakdown struct {
	SkillScore   int `json:"skill_score"`
	SectionScore int `json:"section_score"`
	LengthScore  int `json:"length_score"`
	Total        int `json:"total"`
}

// AnalysisResult is the full output of one analysis run.
type AnalysisResult struct {
	Feedback   FeedbackPayload
	Breakdown  ScoreBreakdown
	WordCount  int
	Similarity float64
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type AnalysisListResponse struct {
	Analyses []Analysis `json:"analyses"`
	Count    int        `json:"count"`
}
