package services

import (
	"alfredoptarigan/resume-analyzer/internal/models"
)

const (
	skillPoints    = 5
	skillCap       = 40
	skillThreshold = 20
	sectionPoints  = 7
	sectionCap     = 30
	lengthPoints   = 15
	minWordCount   = 300
	maxWordCount   = 900
	maxTotalScore  = 100

	tierGood   = 70
	tierStrong = 85
)

// Feedback messages, in the order the checks run.
const (
	ImprovementLimitedSkills = "Limited technical skills detected"
	SuggestionMoreSkills     = "Add more relevant technical skills"

	ImprovementNoProjects = "Projects section missing"
	SuggestionAddProjects = "Add academic or personal projects"

	ImprovementNoExperience = "Experience section missing"
	SuggestionAddExperience = "Include internship or work experience"

	ImprovementLength = "Resume length not optimal"
	SuggestionLength  = "Keep resume between 1–2 pages"

	SuggestionAdvancedTools = "Consider adding advanced tools like Docker, cloud platforms, or system design concepts"

	ImprovementProjectImpact = "Project descriptions lack measurable impact"
	SuggestionProjectImpact  = "Quantify project outcomes (e.g., improved performance by 20%)"

	ImprovementActionVerbs = "Experience section lacks strong action verbs"
	SuggestionActionVerbs  = "Use strong action verbs like implemented, optimized, deployed"

	SuggestionTierEntry  = "Resume is suitable for entry-level roles but needs strengthening for competitive positions"
	SuggestionTierGood   = "Good resume overall; refining skills and project impact can significantly improve it"
	SuggestionTierStrong = "Strong resume; tailor it specifically for each job role to maximize shortlisting chances"
)

// RuleResult is the output of the rule-based scorer.
type RuleResult struct {
	Breakdown    models.ScoreBreakdown
	Improvements []string
	Suggestions  []string
}

func (r *RuleResult) add(improvement, suggestion string) {
	if improvement != "" {
		r.Improvements = append(r.Improvements, improvement)
	}
	r.Suggestions = append(r.Suggestions, suggestion)
}

// ScoreFeatures applies the fixed scoring rules. Every check runs; the order
// of improvements and suggestions follows the order of the checks.
func ScoreFeatures(features FeatureSet, wordCount int) RuleResult {
	result := RuleResult{
		Improvements: []string{},
		Suggestions:  []string{},
	}

	skillScore := min(len(features.FoundSkills)*skillPoints, skillCap)
	if skillScore < skillThreshold {
		result.add(ImprovementLimitedSkills, SuggestionMoreSkills)
	}

	sectionScore := min(len(features.SectionsFound)*sectionPoints, sectionCap)
	hasProjects := features.HasSection(SectionProjects)
	hasExperience := features.HasSection(SectionExperience)

	if !hasProjects {
		result.add(ImprovementNoProjects, SuggestionAddProjects)
	}
	if !hasExperience {
		result.add(ImprovementNoExperience, SuggestionAddExperience)
	}

	lengthScore := 0
	if wordCount >= minWordCount && wordCount <= maxWordCount {
		lengthScore = lengthPoints
	} else {
		result.add(ImprovementLength, SuggestionLength)
	}

	// Suggestion only; there is no matching improvement.
	if len(features.AdvancedFound) == 0 {
		result.add("", SuggestionAdvancedTools)
	}

	if hasProjects && !features.HasProjectImpact {
		result.add(ImprovementProjectImpact, SuggestionProjectImpact)
	}
	if hasExperience && !features.HasExperienceAction {
		result.add(ImprovementActionVerbs, SuggestionActionVerbs)
	}

	total := min(skillScore+sectionScore+lengthScore, maxTotalScore)

	switch {
	case total < tierGood:
		result.add("", SuggestionTierEntry)
	case total < tierStrong:
		result.add("", SuggestionTierGood)
	default:
		result.add("", SuggestionTierStrong)
	}

	result.Breakdown = models.ScoreBreakdown{
		SkillScore:   skillScore,
		SectionScore: sectionScore,
		LengthScore:  lengthScore,
		Total:        total,
	}

	return result
}
