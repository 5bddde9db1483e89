package service

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/afslabs/assessor/internal/dto"
	"github.com/afslabs/assessor/internal/i18n"
	"github.com/afslabs/assessor/internal/model"
	"github.com/afslabs/assessor/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// Fallback palette for sections that carry no color of their own.
const defaultSectionColor = "#3b82f6"

// Insight thresholds over section percentages, in percentage points.
const (
	varianceWarningSpread = 20.0
	consistencySpread     = 5.0
)

// ReportService turns a finalized assessment's frozen scoring snapshot into
// the report payload: section/area breakdowns, generated insights, priority
// sections, per-area roadmaps and chart data. Reports are only available once
// an assessment has been finalized; they never rescore.
type ReportService interface {
	BuildReport(assessmentID uint, lang string) (*dto.ReportDTO, error)
}

type reportService struct {
	assessmentRepo repository.AssessmentRepository
	responseRepo   repository.ResponseRepository
	catalogRepo    repository.CatalogRepository
	definitionRepo repository.DefinitionRepository
	catalogSvc     CatalogService
	translator     *i18n.Translator
	areaDetails    *i18n.AreaDetails
}

func NewReportService(
	assessmentRepo repository.AssessmentRepository,
	responseRepo repository.ResponseRepository,
	catalogRepo repository.CatalogRepository,
	definitionRepo repository.DefinitionRepository,
	catalogSvc CatalogService,
	translator *i18n.Translator,
	areaDetails *i18n.AreaDetails,
) ReportService {
	return &reportService{
		assessmentRepo: assessmentRepo,
		responseRepo:   responseRepo,
		catalogRepo:    catalogRepo,
		definitionRepo: definitionRepo,
		catalogSvc:     catalogSvc,
		translator:     translator,
		areaDetails:    areaDetails,
	}
}

func (s *reportService) BuildReport(assessmentID uint, lang string) (*dto.ReportDTO, error) {
	assessment, err := s.assessmentRepo.FindByID(assessmentID)
	if err != nil {
		return nil, fmt.Errorf("assessment %d not found: %w", assessmentID, err)
	}
	if assessment.IsEditable() || assessment.ResultsJSON == "" {
		return nil, fmt.Errorf("%w: assessment %d has status %s", ErrReportUnavailable, assessmentID, assessment.Status)
	}

	var frozen dto.ScoreResultDTO
	if err := json.Unmarshal([]byte(assessment.ResultsJSON), &frozen); err != nil {
		return nil, fmt.Errorf("error reading frozen results for assessment %d: %w", assessmentID, err)
	}

	activeIDs, err := s.catalogSvc.ActiveSectionIDs()
	if err != nil {
		return nil, err
	}
	sections, err := s.catalogRepo.FindSectionsWithQuestions(activeIDs)
	if err != nil {
		return nil, fmt.Errorf("error loading sections for report: %w", err)
	}
	colors := make(map[string]string, len(sections))
	areaIndex := make(map[string]*model.Area)
	for i := range sections {
		colors[sections[i].ID] = sections[i].Color
		for j := range sections[i].Areas {
			areaIndex[sections[i].Areas[j].ID] = &sections[i].Areas[j]
		}
	}

	sectionDTOs := buildReportSections(frozen.SectionScores, colors)
	roadmaps, err := s.buildAreaRoadmaps(assessmentID, frozen.SectionScores, areaIndex, lang)
	if err != nil {
		return nil, err
	}

	report := &dto.ReportDTO{
		AssessmentID:      assessmentID,
		OrganizationName:  assessment.Name(),
		OverallScore:      frozen.DevIQScore,
		OverallPercentage: frozen.OverallPercentage,
		OverallScore0to5:  frozen.OverallScore0to5,
		OverallLevel:      frozen.MaturityLevelDisplay,
		SectionScores:     sectionDTOs,
		ChartData: dto.ChartDataDTO{
			SectionScores:        sectionDTOs,
			MaturityDistribution: maturityDistribution(frozen.SectionScores),
			AreaComparison:       areaComparison(frozen.SectionScores),
		},
		Insights:       buildInsights(sectionDTOs),
		PriorityAreas:  buildPriorityAreas(sectionDTOs),
		AreaRoadmaps:   roadmaps,
		ResponsesCount: frozen.Metadata.TotalResponses,
		TotalQuestions: frozen.CompletionStatus.TotalQuestions,
		CompletionDate: assessment.CompletionDate,
	}
	log.Info().Uint("assessmentID", assessmentID).Int("sections", len(sectionDTOs)).Msg("Report built")
	return report, nil
}

func buildReportSections(sections []dto.SectionScoreDTO, colors map[string]string) []dto.ReportSectionDTO {
	out := make([]dto.ReportSectionDTO, 0, len(sections))
	for i := range sections {
		sec := &sections[i]
		level := ClassifyPercentage(sec.SectionPercentage)
		color, ok := colors[sec.SectionID]
		if !ok || color == "" {
			color = defaultSectionColor
		}

		areas := make([]dto.ReportAreaDTO, 0, len(sec.AreaScores))
		for j := range sec.AreaScores {
			a := &sec.AreaScores[j]
			areas = append(areas, dto.ReportAreaDTO{
				ID:             a.AreaID,
				Name:           a.AreaName,
				Score:          a.Score,
				Level:          a.SSELevel,
				Percentage:     a.AreaPercentage,
				Score0to5:      round2(a.AreaPercentage * 5.0),
				ResponsesCount: a.ResponsesCount,
			})
		}

		out = append(out, dto.ReportSectionDTO{
			ID:             sec.SectionID,
			Name:           sec.SectionName,
			Score:          sec.Score,
			Level:          string(level),
			LevelNum:       level.Rank(),
			Color:          color,
			Percentage:     round3(sec.SectionPercentage),
			Score0to5:      round2(sec.SectionPercentage * 5.0),
			ResponsesCount: sec.ResponsesCount,
			Areas:          areas,
		})
	}
	return out
}

// maturityDistribution counts areas per maturity level, including levels with
// zero areas so the distribution chart always shows all five bands.
func maturityDistribution(sections []dto.SectionScoreDTO) map[string]int {
	dist := make(map[string]int, 5)
	for _, level := range []SSELevel{LevelInformal, LevelDefined, LevelSystematic, LevelIntegrated, LevelOptimized} {
		dist[string(level)] = 0
	}
	for i := range sections {
		for j := range sections[i].AreaScores {
			dist[sections[i].AreaScores[j].SSELevel]++
		}
	}
	return dist
}

func areaComparison(sections []dto.SectionScoreDTO) []dto.AreaComparisonDTO {
	var out []dto.AreaComparisonDTO
	for i := range sections {
		for j := range sections[i].AreaScores {
			a := &sections[i].AreaScores[j]
			out = append(out, dto.AreaComparisonDTO{
				Name:    a.AreaName,
				Score:   round2(a.AreaPercentage * 5.0),
				Section: sections[i].SectionName,
			})
		}
	}
	return out
}

// buildInsights generates the key-findings list: strongest section, weakest
// section, then either a variance warning (spread above 20 points) or a
// consistency note (spread below 5 points).
func buildInsights(sections []dto.ReportSectionDTO) []dto.InsightDTO {
	if len(sections) == 0 {
		return nil
	}

	strongest, weakest := &sections[0], &sections[0]
	for i := range sections {
		if sections[i].Percentage > strongest.Percentage {
			strongest = &sections[i]
		}
		if sections[i].Percentage < weakest.Percentage {
			weakest = &sections[i]
		}
	}

	insights := []dto.InsightDTO{
		{
			Type:        "strength",
			Title:       "Strongest Capability",
			Description: fmt.Sprintf("%s leads with %.0f%% of practices confirmed (%s).", strongest.Name, strongest.Percentage*100, strongest.Level),
			Icon:        "fas fa-trophy",
		},
		{
			Type:        "priority",
			Title:       "Top Improvement Priority",
			Description: fmt.Sprintf("%s trails at %.0f%% of practices confirmed (%s).", weakest.Name, weakest.Percentage*100, weakest.Level),
			Icon:        "fas fa-bullseye",
		},
	}

	spread := (strongest.Percentage - weakest.Percentage) * 100
	if spread > varianceWarningSpread {
		insights = append(insights, dto.InsightDTO{
			Type:        "warning",
			Title:       "Uneven Maturity",
			Description: fmt.Sprintf("A %.0f-point spread separates your strongest and weakest sections; uneven maturity tends to bottleneck on the weakest link.", spread),
			Icon:        "fas fa-exclamation-triangle",
		})
	} else if spread < consistencySpread {
		insights = append(insights, dto.InsightDTO{
			Type:        "consistency",
			Title:       "Consistent Capability",
			Description: fmt.Sprintf("Section scores sit within %.0f points of each other, indicating evenly developed practices.", spread),
			Icon:        "fas fa-balance-scale",
		})
	}
	return insights
}

// buildPriorityAreas ranks the three lowest-scoring sections for the
// improvement roadmap; ties break on section ID to keep the ranking stable.
func buildPriorityAreas(sections []dto.ReportSectionDTO) []dto.PriorityAreaDTO {
	ranked := make([]dto.ReportSectionDTO, len(sections))
	copy(ranked, sections)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Percentage != ranked[j].Percentage {
			return ranked[i].Percentage < ranked[j].Percentage
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}

	out := make([]dto.PriorityAreaDTO, 0, len(ranked))
	for i := range ranked {
		sec := &ranked[i]
		out = append(out, dto.PriorityAreaDTO{
			Rank:                 i + 1,
			Name:                 sec.Name,
			Score:                sec.Score,
			Percentage:           sec.Percentage,
			Score0to5:            sec.Score0to5,
			Level:                sec.Level,
			Color:                sec.Color,
			Areas:                sec.Areas,
			ImprovementPotential: round1((1.0 - sec.Percentage) * 100),
		})
	}
	return out
}

// buildAreaRoadmaps assembles the current-state card for every scored area:
// strengths are the questions answered Yes, gaps are those answered No or not
// answered at all, plus the definition card and progression steps for the
// level the area currently sits at.
func (s *reportService) buildAreaRoadmaps(
	assessmentID uint,
	sections []dto.SectionScoreDTO,
	areaIndex map[string]*model.Area,
	lang string,
) (map[string]dto.AreaRoadmapDTO, error) {
	responses, err := s.responseRepo.FindByAssessment(assessmentID)
	if err != nil {
		return nil, fmt.Errorf("error loading responses for roadmaps: %w", err)
	}
	byQuestion := make(map[string]model.Response, len(responses))
	for _, r := range responses {
		byQuestion[r.QuestionID] = r
	}

	roadmaps := make(map[string]dto.AreaRoadmapDTO)
	for i := range sections {
		for j := range sections[i].AreaScores {
			score := &sections[i].AreaScores[j]
			area, ok := areaIndex[score.AreaID]
			if !ok {
				continue
			}
			roadmap, err := s.areaRoadmap(area, score, byQuestion, lang)
			if err != nil {
				return nil, err
			}
			roadmaps[score.AreaID] = roadmap
		}
	}
	return roadmaps, nil
}

func (s *reportService) areaRoadmap(
	area *model.Area,
	score *dto.AreaScoreDTO,
	responses map[string]model.Response,
	lang string,
) (dto.AreaRoadmapDTO, error) {
	level := SSELevel(score.SSELevel)

	var gaps, strengths []string
	for i := range area.Questions {
		q := &area.Questions[i]
		if !q.IsActive || !q.IsBinary() {
			continue
		}
		text := q.Text
		if translated, ok := s.translator.QuestionText(q.ID, lang); ok {
			text = translated
		}
		if resp, ok := responses[q.ID]; ok && resp.IsYes() {
			strengths = append(strengths, text)
		} else {
			gaps = append(gaps, text)
		}
	}

	roadmap := dto.AreaRoadmapDTO{
		AreaID:           area.ID,
		AreaName:         area.Name,
		AreaDescription:  area.Description,
		CurrentLevel:     level.Rank(),
		CurrentLevelName: string(level),
		DomainNormalized: score.DomainNormalized,
		Gaps:             gaps,
		Strengths:        strengths,
	}

	if detail, ok := s.areaDetails.Detail(area.ID, lang); ok {
		roadmap.DomainDetail = &dto.AreaDomainDetailDTO{
			RiskDescription: detail.RiskDescription,
			References: dto.AreaReferenceDTO{
				Mitre: detail.MitreReferences,
				Nist:  detail.NistReferences,
			},
		}
	}

	def, err := s.definitionRepo.FindAreaDefinition(area.ID, level.Rank())
	if err != nil {
		return dto.AreaRoadmapDTO{}, fmt.Errorf("error loading definition for area %s: %w", area.ID, err)
	}
	if def != nil {
		var card dto.MaturityDefinitionDTO
		if err := copier.Copy(&card, def); err != nil {
			return dto.AreaRoadmapDTO{}, fmt.Errorf("error mapping definition card: %w", err)
		}
		roadmap.LevelCard = &card
	}

	progressions, err := s.definitionRepo.FindProgressionsForArea(area.ID)
	if err != nil {
		return dto.AreaRoadmapDTO{}, fmt.Errorf("error loading progressions for area %s: %w", area.ID, err)
	}
	for i := range progressions {
		if progressions[i].TargetLevel <= level.Rank() {
			continue
		}
		var step dto.ProgressionDTO
		if err := copier.Copy(&step, &progressions[i]); err != nil {
			return dto.AreaRoadmapDTO{}, fmt.Errorf("error mapping progression step: %w", err)
		}
		roadmap.Progressions = append(roadmap.Progressions, step)
	}
	return roadmap, nil
}
