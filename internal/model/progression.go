package model

import "time"

// MaturityProgression is step-by-step guidance for advancing an area from one
// maturity level to the next. Target levels run 2-4; level 1 is the baseline.
type MaturityProgression struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	AreaID         string    `json:"area_id" gorm:"not null;index"`
	CurrentLevel   *int      `json:"current_level,omitempty"`
	TargetLevel    int       `json:"target_level" gorm:"not null"`
	Prerequisites  string    `json:"prerequisites,omitempty" gorm:"type:text"`
	ActionItems    string    `json:"action_items,omitempty" gorm:"type:text"`
	SuccessMetrics string    `json:"success_metrics,omitempty" gorm:"type:text"`
	Timeline       string    `json:"timeline,omitempty" gorm:"type:text"`
	CommonPitfall  string    `json:"common_pitfall,omitempty" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
