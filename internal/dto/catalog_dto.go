package dto

// QuestionDTO is a catalog question as served to clients. Text carries the
// translated overlay when one exists for the requested language.
type QuestionDTO struct {
	ID             string `json:"id"`
	AreaID         string `json:"area_id"`
	Text           string `json:"text"`
	DisplayOrder   int    `json:"display_order"`
	IsActive       bool   `json:"is_active"`
	IsBinary       bool   `json:"is_binary"`
	BaseID         string `json:"base_id"`
	BinarySubLevel int    `json:"binary_sub_level"`
	Level1Desc     string `json:"level_1_desc,omitempty"`
	Level2Desc     string `json:"level_2_desc,omitempty"`
	Level3Desc     string `json:"level_3_desc,omitempty"`
	Level4Desc     string `json:"level_4_desc,omitempty"`
}

type AreaDTO struct {
	ID           string        `json:"id"`
	SectionID    string        `json:"section_id"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	DisplayOrder int           `json:"display_order"`
	Questions    []QuestionDTO `json:"questions,omitempty"`
}

type SectionDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	DisplayOrder int       `json:"display_order"`
	Color        string    `json:"color,omitempty"`
	Icon         string    `json:"icon,omitempty"`
	Areas        []AreaDTO `json:"areas,omitempty"`
}

// BinaryLabelsDTO carries the localized Yes/No labels for binary questions.
type BinaryLabelsDTO struct {
	Level1 string `json:"level_1"`
	Level2 string `json:"level_2"`
}

// CatalogDTO is the full catalog payload for the requested language.
type CatalogDTO struct {
	Sections     []SectionDTO    `json:"sections"`
	BinaryLabels BinaryLabelsDTO `json:"binary_labels"`
	Language     string          `json:"language"`
}
