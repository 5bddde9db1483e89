package dto

import "time"

// AssessmentCreateDTO carries the organization/candidate metadata captured at
// assessment creation.
type AssessmentCreateDTO struct {
	OrganizationName string `json:"organization_name" binding:"required"`
	TeamName         string `json:"team_name"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email" binding:"omitempty,email"`
	Industry         string `json:"industry"`
}

// AssessmentResponseDTO is the assessment detail payload.
type AssessmentResponseDTO struct {
	ID                  uint       `json:"id"`
	OrganizationName    string     `json:"organization_name"`
	TeamName            string     `json:"team_name,omitempty"`
	FirstName           string     `json:"first_name,omitempty"`
	LastName            string     `json:"last_name,omitempty"`
	Email               string     `json:"email,omitempty"`
	Industry            string     `json:"industry,omitempty"`
	Status              string     `json:"status"`
	OverallScore        *float64   `json:"overall_score,omitempty"`
	DevIQClassification string     `json:"deviq_classification,omitempty"`
	CompletionDate      *time.Time `json:"completion_date,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// AssessmentSummaryDTO is the list-view row.
type AssessmentSummaryDTO struct {
	ID               uint       `json:"id"`
	OrganizationName string     `json:"organization_name"`
	TeamName         string     `json:"team_name,omitempty"`
	Status           string     `json:"status"`
	OverallScore     *float64   `json:"overall_score,omitempty"`
	CompletionDate   *time.Time `json:"completion_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ResponseSubmitDTO is one binary answer: 1 = No, 2 = Yes.
type ResponseSubmitDTO struct {
	QuestionID string  `json:"question_id" binding:"required"`
	Score      int     `json:"score" binding:"required,min=1,max=2"`
	Notes      *string `json:"notes"`
}

// ResponseSubmitResultDTO echoes the stored answer plus updated logical
// progress, matching the autosave contract the progress bar polls.
type ResponseSubmitResultDTO struct {
	QuestionID         string  `json:"question_id"`
	Score              int     `json:"score"`
	AnsweredQuestions  int     `json:"answered_questions"`
	TotalQuestions     int     `json:"total_questions"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// SectionProgressDTO is the per-section completion row of the progress page.
type SectionProgressDTO struct {
	SectionID          string  `json:"section_id"`
	SectionName        string  `json:"section_name"`
	TotalQuestions     int     `json:"total_questions"`
	RespondedQuestions int     `json:"responded_questions"`
	ProgressPercentage float64 `json:"progress_percentage"`
	IsComplete         bool    `json:"is_complete"`
}

// ProgressDTO is the completion structure plus the section breakdown.
type ProgressDTO struct {
	AssessmentID     uint                 `json:"assessment_id"`
	Status           string               `json:"status"`
	Completion       CompletionStatusDTO  `json:"completion"`
	SectionProgress  []SectionProgressDTO `json:"section_progress"`
	LastResponseTime *time.Time           `json:"last_response_date,omitempty"`
}

// FinalizeRequestDTO gates report generation: finalization below 80% logical
// completion is rejected unless ForceComplete is set.
type FinalizeRequestDTO struct {
	ForceComplete bool `json:"force_complete"`
}

// FinalizeResultDTO is returned on successful finalization.
type FinalizeResultDTO struct {
	AssessmentID   uint           `json:"assessment_id"`
	Status         string         `json:"status"`
	CompletionDate *time.Time     `json:"completion_date,omitempty"`
	Scores         ScoreResultDTO `json:"scores"`
}
