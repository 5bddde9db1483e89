package model

import "time"

// Assessment statuses. Once an assessment is COMPLETED or LOCKED no response
// may be created or modified for it; reports are served from the frozen
// ResultsJSON snapshot.
const (
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusLocked     = "LOCKED"
)

// Assessment is one organization's run through the checklist.
type Assessment struct {
	ID               uint   `json:"id" gorm:"primarykey"`
	OrganizationName string `json:"organization_name" gorm:"type:text;not null"`
	TeamName         string `json:"team_name,omitempty" gorm:"type:text"`
	FirstName        string `json:"first_name,omitempty" gorm:"type:text"`
	LastName         string `json:"last_name,omitempty" gorm:"type:text"`
	Email            string `json:"email,omitempty" gorm:"type:text"`
	Industry         string `json:"industry,omitempty" gorm:"type:text"`
	Status           string `json:"status" gorm:"not null;default:'IN_PROGRESS';index"`

	// Cached results written at finalization. The legacy per-section columns
	// mirror the historical four-section schema keyed FC/TC/EI/SG.
	OverallScore         *float64 `json:"overall_score,omitempty"`
	DevIQClassification  string   `json:"deviq_classification,omitempty" gorm:"type:text"`
	FoundationalScore    *float64 `json:"foundational_score,omitempty"`
	TransformationScore  *float64 `json:"transformation_score,omitempty"`
	EnterpriseScore      *float64 `json:"enterprise_score,omitempty"`
	GovernanceScore      *float64 `json:"governance_score,omitempty"`
	ResultsJSON          string   `json:"-" gorm:"type:text"`

	Responses      []Response `json:"responses,omitempty" gorm:"foreignKey:AssessmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Name returns the display name for reports: team name when set, otherwise
// the organization.
func (a *Assessment) Name() string {
	if a.TeamName != "" {
		return a.TeamName
	}
	return a.OrganizationName
}

// IsEditable reports whether responses may still be written.
func (a *Assessment) IsEditable() bool {
	return a.Status != StatusCompleted && a.Status != StatusLocked
}
