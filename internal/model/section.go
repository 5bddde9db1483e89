package model

import "time"

// Section is a top-level grouping of the assessment catalog, e.g. "Governance,
// Strategy and Accountability". Catalog entities use human-assigned string IDs
// ("GSA") rather than auto-increment keys.
type Section struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"type:text"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	DisplayOrder int       `json:"display_order" gorm:"not null;default:0"`
	Color        string    `json:"color,omitempty" gorm:"type:text;default:'#3b82f6'"`
	Icon         string    `json:"icon,omitempty" gorm:"type:text;default:'fas fa-cog'"`
	Areas        []Area    `json:"areas,omitempty" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
