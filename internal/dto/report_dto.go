package dto

import "time"

// Report structures: the walkable form of the scoring result that the charts
// and roadmap views consume.

// ReportAreaDTO is one area row of the section breakdown.
type ReportAreaDTO struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Score          float64 `json:"score"`
	Level          string  `json:"level"`
	Percentage     float64 `json:"percentage"`
	Score0to5      float64 `json:"score_0to5"`
	ResponsesCount int     `json:"responses_count"`
}

// ReportSectionDTO is one section of the report breakdown, with display color
// and its area rows.
type ReportSectionDTO struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Score          float64         `json:"score"`
	Level          string          `json:"level"`
	LevelNum       int             `json:"level_num"`
	Color          string          `json:"color"`
	Percentage     float64         `json:"percentage"`
	Score0to5      float64         `json:"score_0to5"`
	ResponsesCount int             `json:"responses_count"`
	Areas          []ReportAreaDTO `json:"areas"`
}

// InsightDTO is a generated key finding (strongest section, priority gap,
// variance warning).
type InsightDTO struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// PriorityAreaDTO ranks a low-scoring section for the improvement roadmap.
type PriorityAreaDTO struct {
	Rank                 int             `json:"rank"`
	Name                 string          `json:"name"`
	Score                float64         `json:"score"`
	Percentage           float64         `json:"percentage"`
	Score0to5            float64         `json:"score_0to5"`
	Level                string          `json:"level"`
	Color                string          `json:"color"`
	Areas                []ReportAreaDTO `json:"areas"`
	ImprovementPotential float64         `json:"improvement_potential"`
}

// AreaRoadmapDTO is the current-state card for one area: confirmed strengths,
// open gaps and the definition of the level the area sits at.
type AreaRoadmapDTO struct {
	AreaID           string                 `json:"area_id"`
	AreaName         string                 `json:"area_name"`
	AreaDescription  string                 `json:"area_description,omitempty"`
	CurrentLevel     int                    `json:"current_level"`
	CurrentLevelName string                 `json:"current_level_name"`
	DomainNormalized float64                `json:"domain_normalized"`
	Gaps             []string               `json:"gaps"`
	Strengths        []string               `json:"strengths"`
	LevelCard        *MaturityDefinitionDTO `json:"level_card,omitempty"`
	DomainDetail     *AreaDomainDetailDTO   `json:"domain_detail,omitempty"`
	Progressions     []ProgressionDTO       `json:"progressions,omitempty"`
}

// AreaDomainDetailDTO is the risk-context card of one area: what can go wrong
// in the area and where MITRE ATLAS / NIST AI RMF discuss it.
type AreaDomainDetailDTO struct {
	RiskDescription string           `json:"risk_description"`
	References      AreaReferenceDTO `json:"references"`
}

type AreaReferenceDTO struct {
	Mitre []string `json:"mitre"`
	Nist  []string `json:"nist"`
}

// MaturityDefinitionDTO is the definition card of one (entity, level) pair.
type MaturityDefinitionDTO struct {
	EntityType      string `json:"entity_type"`
	EntityID        string `json:"entity_id"`
	MaturityLevel   int    `json:"maturity_level"`
	Title           string `json:"title,omitempty"`
	Summary         string `json:"summary,omitempty"`
	Characteristics string `json:"characteristics,omitempty"`
	Expectations    string `json:"expectations,omitempty"`
	Guidance        string `json:"guidance,omitempty"`
}

// ProgressionDTO is one step of an area's next-level roadmap.
type ProgressionDTO struct {
	AreaID         string `json:"area_id"`
	CurrentLevel   *int   `json:"current_level,omitempty"`
	TargetLevel    int    `json:"target_level"`
	Prerequisites  string `json:"prerequisites,omitempty"`
	ActionItems    string `json:"action_items,omitempty"`
	SuccessMetrics string `json:"success_metrics,omitempty"`
	Timeline       string `json:"timeline,omitempty"`
	CommonPitfall  string `json:"common_pitfall,omitempty"`
}

// ChartDataDTO feeds the report charts.
type ChartDataDTO struct {
	SectionScores        []ReportSectionDTO `json:"section_scores"`
	MaturityDistribution map[string]int     `json:"maturity_distribution"`
	AreaComparison       []AreaComparisonDTO `json:"area_comparison"`
}

// AreaComparisonDTO is one bar of the cross-section area comparison chart.
type AreaComparisonDTO struct {
	Name    string  `json:"name"`
	Score   float64 `json:"score"`
	Section string  `json:"section"`
}

// ReportDTO is the complete report payload for a finalized assessment.
type ReportDTO struct {
	AssessmentID      uint                      `json:"assessment_id"`
	OrganizationName  string                    `json:"organization_name"`
	OverallScore      float64                   `json:"overall_score"`
	OverallPercentage float64                   `json:"overall_percentage"`
	OverallScore0to5  float64                   `json:"overall_score_0to5"`
	OverallLevel      string                    `json:"overall_level"`
	SectionScores     []ReportSectionDTO        `json:"section_scores"`
	ChartData         ChartDataDTO              `json:"chart_data"`
	Insights          []InsightDTO              `json:"insights"`
	PriorityAreas     []PriorityAreaDTO         `json:"priority_areas"`
	AreaRoadmaps      map[string]AreaRoadmapDTO `json:"area_roadmaps"`
	Recommendations   []string                  `json:"recommendations,omitempty"`
	ResponsesCount    int                       `json:"responses_count"`
	TotalQuestions    int                       `json:"total_questions"`
	CompletionDate    *time.Time                `json:"completion_date,omitempty"`
}
