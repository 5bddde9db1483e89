package model

import "time"

// Question is a single checklist item. Binary checklist items follow an ID
// convention like GSA-GSC-01A .. GSA-GSC-01F: a two-digit sequence plus an A-F
// suffix. All physical items sharing a base ID ("GSA-GSC-01") belong to one
// logical question for completion counting.
type Question struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	AreaID       string    `json:"area_id" gorm:"not null;index"`
	Text         string    `json:"text" gorm:"column:question;type:text;not null"`
	DisplayOrder int       `json:"display_order" gorm:"not null;default:0"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	Level1Desc   string    `json:"level_1_desc,omitempty" gorm:"type:text"`
	Level2Desc   string    `json:"level_2_desc,omitempty" gorm:"type:text"`
	Level3Desc   string    `json:"level_3_desc,omitempty" gorm:"type:text"`
	Level4Desc   string    `json:"level_4_desc,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// hasGroupSuffix reports whether id matches the <digits><digit><A-F> grouping
// pattern, i.e. ends in A-F with two digits immediately before the letter.
func hasGroupSuffix(id string) bool {
	if len(id) < 3 {
		return false
	}
	suffix := id[len(id)-1]
	if suffix < 'A' || suffix > 'F' {
		return false
	}
	d1, d2 := id[len(id)-3], id[len(id)-2]
	return d1 >= '0' && d1 <= '9' && d2 >= '0' && d2 <= '9'
}

// IsBinary reports whether this question is a binary Yes/No item. A question
// is binary when its ID carries the A-F grouping suffix, or when exactly
// levels 1 and 2 have descriptions and levels 3-4 do not.
func (q *Question) IsBinary() bool {
	if hasGroupSuffix(q.ID) {
		return true
	}
	return q.Level1Desc != "" && q.Level2Desc != "" && q.Level3Desc == "" && q.Level4Desc == ""
}

// BinaryWeight is 1.0 for binary questions and 0.0 otherwise. The schema does
// not persist weights; every in-scope binary question counts equally.
func (q *Question) BinaryWeight() float64 {
	if q.IsBinary() {
		return 1.0
	}
	return 0.0
}

// BinarySubLevel infers a 1-4 maturity sub-level from the A-F suffix position
// within a six-item checklist: A,B -> 1; C -> 2; D,E -> 3; F -> 4. Items
// without a suffix default to 1. Not used by the scoring path.
func (q *Question) BinarySubLevel() int {
	if q.ID == "" {
		return 1
	}
	switch q.ID[len(q.ID)-1] {
	case 'A', 'B':
		return 1
	case 'C':
		return 2
	case 'D', 'E':
		return 3
	case 'F':
		return 4
	default:
		return 1
	}
}

// BaseID returns the logical question ID: the physical ID with its trailing
// A-F letter stripped when the grouping pattern matches, otherwise the ID
// unchanged.
func (q *Question) BaseID() string {
	if hasGroupSuffix(q.ID) {
		return q.ID[:len(q.ID)-1]
	}
	return q.ID
}
