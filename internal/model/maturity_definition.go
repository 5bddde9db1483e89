package model

import "time"

// Maturity definition entity types.
const (
	EntityArea     = "area"
	EntityQuestion = "question"
)

// MaturityDefinition describes the CURRENT maturity level of an area or
// question: what operating at that level looks like. Distinct from
// MaturityProgression, which describes how to reach the next level.
type MaturityDefinition struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	EntityType      string    `json:"entity_type" gorm:"not null;index:idx_maturity_definitions_entity"`
	EntityID        string    `json:"entity_id" gorm:"not null;index:idx_maturity_definitions_entity"`
	MaturityLevel   int       `json:"maturity_level" gorm:"not null;index:idx_maturity_definitions_entity"`
	Title           string    `json:"title,omitempty" gorm:"type:text"`
	Summary         string    `json:"summary,omitempty" gorm:"type:text"`
	Characteristics string    `json:"characteristics,omitempty" gorm:"type:text"`
	Expectations    string    `json:"expectations,omitempty" gorm:"type:text"`
	Guidance        string    `json:"guidance,omitempty" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
