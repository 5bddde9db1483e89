package model

import "time"

// Binary answer scores. Anything other than ScoreYes is treated as "not yes"
// by the scoring engine.
const (
	ScoreNo  = 1
	ScoreYes = 2
)

// Response is one stored binary answer for an (assessment, question) pair.
// The composite unique index makes concurrent submissions for the same
// question converge on a single row; writes go through an atomic upsert.
type Response struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	AssessmentID uint      `json:"assessment_id" gorm:"not null;uniqueIndex:idx_responses_assessment_question"`
	QuestionID   string    `json:"question_id" gorm:"not null;uniqueIndex:idx_responses_assessment_question"`
	Score        int       `json:"score" gorm:"not null"`
	Notes        *string   `json:"notes,omitempty" gorm:"type:text"`
	Timestamp    time.Time `json:"timestamp"`
}

// IsYes reports whether the stored score counts as a confirmed capability.
// Out-of-range values count as No rather than erroring.
func (r *Response) IsYes() bool {
	return r.Score >= ScoreYes
}
