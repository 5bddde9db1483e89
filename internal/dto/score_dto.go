package dto

import "time"

// The scoring result is a nested structure walked by report rendering:
// overall -> sections -> areas. Percentage fields are 0..1 fractions of "Yes"
// answers; Score fields are the legacy 1.0-4.0 remapping kept for older
// report templates.

// AreaScoreDTO is the score of one area over its in-scope binary questions.
type AreaScoreDTO struct {
	AreaID           string  `json:"area_id"`
	AreaName         string  `json:"area_name"`
	Score            float64 `json:"score"`
	ScoreDisplay     string  `json:"score_display"`
	AreaPercentage   float64 `json:"area_percentage"`
	DomainNormalized float64 `json:"domain_normalized"`
	SSELevel         string  `json:"sse_level"`
	Weight           float64 `json:"weight"`
	ResponsesCount   int     `json:"responses_count"`
	TotalQuestions   int     `json:"total_questions"`
	Coverage         float64 `json:"coverage"`
}

// SectionScoreDTO aggregates the section's participating areas. Areas with no
// in-scope questions are absent from AreaScores and from the average.
type SectionScoreDTO struct {
	SectionID         string         `json:"section_id"`
	SectionName       string         `json:"section_name"`
	Score             float64        `json:"score"`
	ScoreDisplay      string         `json:"score_display"`
	SectionPercentage float64        `json:"section_percentage"`
	AreaScores        []AreaScoreDTO `json:"area_scores"`
	Coverage          float64        `json:"coverage"`
	ResponsesCount    int            `json:"responses_count"`
	TotalQuestions    int            `json:"total_questions"`
}

// LevelDetailsDTO is the static description of a maturity level.
type LevelDetailsDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ImprovementPotentialDTO is the legacy-compatible gap-to-target record.
type ImprovementPotentialDTO struct {
	CurrentScore         float64 `json:"current_score"`
	CurrentLevel         string  `json:"current_level"`
	TargetLevel          string  `json:"target_level"`
	TargetMinScore       float64 `json:"target_min_score"`
	TargetMaxScore       float64 `json:"target_max_score"`
	GapToTarget          float64 `json:"gap_to_target"`
	PotentialImprovement float64 `json:"potential_improvement"`
	IsAchievable         bool    `json:"is_achievable"`
}

// CompletionStatusDTO counts logical questions (grouped A-F checklist rows
// collapse to their base ID; ungrouped IDs are their own group of one).
type CompletionStatusDTO struct {
	TotalQuestions       int     `json:"total_questions"`
	AnsweredQuestions    int     `json:"answered_questions"`
	UnansweredQuestions  int     `json:"unanswered_questions"`
	CompletionPercentage float64 `json:"completion_percentage"`
	IsComplete           bool    `json:"is_complete"`
	IsSubstantial        bool    `json:"is_substantial"`
}

// ScoringMetadataDTO stamps the result. CalculationTimestamp tracks the
// assessment's last write, so rescoring without intervening writes is
// deterministic.
type ScoringMetadataDTO struct {
	CalculationTimestamp time.Time `json:"calculation_timestamp"`
	TotalResponses       int       `json:"total_responses"`
	ScoringVersion       string    `json:"scoring_version"`
}

// ScoreResultDTO is the full nested scoring result for one assessment.
type ScoreResultDTO struct {
	AssessmentID   uint   `json:"assessment_id"`
	AssessmentName string `json:"assessment_name"`

	OverallPercentage    float64         `json:"overall_percentage"`
	OverallScore0to5     float64         `json:"overall_score_0to5"`
	MaturityLevel        string          `json:"maturity_level"`
	MaturityLevelDisplay string          `json:"maturity_level_display"`
	MaturityDetails      LevelDetailsDTO `json:"maturity_details"`

	DevIQScore        float64                 `json:"deviq_score"`
	DevIQScoreDisplay string                  `json:"deviq_score_display"`
	OverallNormalized float64                 `json:"overall_normalized"`
	Improvement       ImprovementPotentialDTO `json:"improvement_potential"`

	SectionScores    []SectionScoreDTO   `json:"section_scores"`
	CompletionStatus CompletionStatusDTO `json:"completion_status"`
	Metadata         ScoringMetadataDTO  `json:"scoring_metadata"`
}
