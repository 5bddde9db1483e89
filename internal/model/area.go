package model

import "time"

// Area is an assessment area within a section ("GSA-GSC"). Its percentage is
// defined only over its binary, active, allowed questions.
type Area struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	SectionID    string     `json:"section_id" gorm:"not null;index"`
	Name         string     `json:"name" gorm:"type:text"`
	Description  string     `json:"description,omitempty" gorm:"type:text"`
	DisplayOrder int        `json:"display_order" gorm:"not null;default:0"`
	Questions    []Question `json:"questions,omitempty" gorm:"foreignKey:AreaID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
