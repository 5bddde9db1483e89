package service

import (
	"fmt"
	"math"

	"github.com/afslabs/assessor/internal/dto"
	"github.com/afslabs/assessor/internal/model"
	"github.com/afslabs/assessor/internal/repository"
	"github.com/rs/zerolog/log"
)

// ScoringVersion tags every scoring result so frozen snapshots can be told
// apart from results produced by older scheme revisions.
const ScoringVersion = "2.0"

// ScoringService reduces binary answers to percentages and maturity levels:
// per-question Yes/No -> area percentage -> section percentage -> overall.
// Every mean along the way is a simple unweighted average over participating
// children; entities with zero in-scope questions are skipped, not averaged
// in as zero.
type ScoringService interface {
	CalculateAssessmentScore(assessmentID uint) (*dto.ScoreResultDTO, error)
	CompletionStatus(assessmentID uint, allowed *AllowedQuestions) (dto.CompletionStatusDTO, error)
}

type scoringService struct {
	catalogSvc     CatalogService
	catalogRepo    repository.CatalogRepository
	assessmentRepo repository.AssessmentRepository
	responseRepo   repository.ResponseRepository
}

func NewScoringService(
	catalogSvc CatalogService,
	catalogRepo repository.CatalogRepository,
	assessmentRepo repository.AssessmentRepository,
	responseRepo repository.ResponseRepository,
) ScoringService {
	return &scoringService{
		catalogSvc:     catalogSvc,
		catalogRepo:    catalogRepo,
		assessmentRepo: assessmentRepo,
		responseRepo:   responseRepo,
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

// simpleAverage is the arithmetic mean, 0.0 for an empty slice.
func simpleAverage(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// legacyScore maps a 0..1 percentage onto the backward-compatible 1.0-4.0
// scale old report templates expect.
func legacyScore(percentage float64) float64 {
	return round2(1.0 + percentage*3.0)
}

// coverageFraction clamps responded/total to 0..1, 0 for an empty total.
func coverageFraction(responded, total int) float64 {
	if total <= 0 {
		return 0.0
	}
	c := float64(responded) / float64(total)
	return math.Max(0.0, math.Min(1.0, c))
}

func formatScore(score float64) string {
	return fmt.Sprintf("%.1f", score)
}

// areaResult is the internal area aggregate; percentage is unrounded so
// upstream means are not distorted by display rounding.
type areaResult struct {
	percentage     float64
	level          SSELevel
	responsesCount int
	totalQuestions int
	coverage       float64
}

// scoreArea reduces one area's in-scope binary questions to the fraction of
// Yes answers. An area with no in-scope questions returns the zero sentinel;
// callers MUST treat it as absent, never as a zero-scoring area.
func (s *scoringService) scoreArea(area *model.Area, allowed *AllowedQuestions, responses map[string]model.Response) areaResult {
	var inScope []model.Question
	for _, q := range area.Questions {
		if allowed.Contains(q.ID) && q.IsBinary() {
			inScope = append(inScope, q)
		}
	}
	if len(inScope) == 0 {
		return areaResult{level: LevelInformal}
	}

	yesCount := 0
	responsesCount := 0
	for _, q := range inScope {
		resp, ok := responses[q.ID]
		if !ok {
			continue
		}
		responsesCount++
		if resp.IsYes() {
			yesCount++
		}
	}

	percentage := float64(yesCount) / float64(len(inScope))
	return areaResult{
		percentage:     percentage,
		level:          ClassifyPercentage(percentage),
		responsesCount: responsesCount,
		totalQuestions: len(inScope),
		coverage:       coverageFraction(responsesCount, len(inScope)),
	}
}

// scoreSection averages the percentages of the section's participating areas
// (those with at least one in-scope question) and sums their coverage
// counters.
func (s *scoringService) scoreSection(section *model.Section, allowed *AllowedQuestions, responses map[string]model.Response) dto.SectionScoreDTO {
	var areaPcts []float64
	var areaDTOs []dto.AreaScoreDTO
	totalResponses := 0
	totalQuestions := 0

	for i := range section.Areas {
		area := &section.Areas[i]
		ar := s.scoreArea(area, allowed, responses)
		if ar.totalQuestions == 0 {
			continue
		}

		areaPcts = append(areaPcts, ar.percentage)
		totalResponses += ar.responsesCount
		totalQuestions += ar.totalQuestions

		areaDTOs = append(areaDTOs, dto.AreaScoreDTO{
			AreaID:           area.ID,
			AreaName:         area.Name,
			Score:            legacyScore(ar.percentage),
			ScoreDisplay:     formatScore(legacyScore(ar.percentage)),
			AreaPercentage:   round3(ar.percentage),
			DomainNormalized: round3(ar.percentage),
			SSELevel:         string(ar.level),
			Weight:           1.0,
			ResponsesCount:   ar.responsesCount,
			TotalQuestions:   ar.totalQuestions,
			Coverage:         ar.coverage,
		})
	}

	sectionPct := simpleAverage(areaPcts)
	return dto.SectionScoreDTO{
		SectionID:         section.ID,
		SectionName:       section.Name,
		Score:             legacyScore(sectionPct),
		ScoreDisplay:      formatScore(legacyScore(sectionPct)),
		SectionPercentage: sectionPct,
		AreaScores:        areaDTOs,
		Coverage:          coverageFraction(totalResponses, totalQuestions),
		ResponsesCount:    totalResponses,
		TotalQuestions:    totalQuestions,
	}
}

// CalculateAssessmentScore scores an entire assessment. The overall
// percentage is the average of section percentages (equal weight per section,
// not reweighted by question count); each section's percentage is already the
// average of its own area percentages.
func (s *scoringService) CalculateAssessmentScore(assessmentID uint) (*dto.ScoreResultDTO, error) {
	assessment, err := s.assessmentRepo.FindByID(assessmentID)
	if err != nil {
		log.Error().Err(err).Uint("assessmentID", assessmentID).Msg("CalculateAssessmentScore: assessment not found")
		return nil, fmt.Errorf("assessment %d not found: %w", assessmentID, err)
	}

	allowed, err := s.catalogSvc.ResolveAllowedQuestions()
	if err != nil {
		return nil, err
	}
	activeIDs, err := s.catalogSvc.ActiveSectionIDs()
	if err != nil {
		return nil, err
	}
	sections, err := s.catalogRepo.FindSectionsWithQuestions(activeIDs)
	if err != nil {
		return nil, fmt.Errorf("error loading sections for scoring: %w", err)
	}

	responseRows, err := s.responseRepo.FindByAssessment(assessmentID)
	if err != nil {
		return nil, fmt.Errorf("error loading responses for assessment %d: %w", assessmentID, err)
	}
	responses := make(map[string]model.Response, len(responseRows))
	for _, r := range responseRows {
		responses[r.QuestionID] = r
	}

	var sectionDTOs []dto.SectionScoreDTO
	var sectionPcts []float64
	for i := range sections {
		secDTO := s.scoreSection(&sections[i], allowed, responses)
		if secDTO.TotalQuestions == 0 {
			// A section with no in-scope questions is absent, not zero.
			continue
		}
		sectionDTOs = append(sectionDTOs, secDTO)
		sectionPcts = append(sectionPcts, secDTO.SectionPercentage)
	}

	overallPct := simpleAverage(sectionPcts)
	overallLevel := ClassifyPercentage(overallPct)
	deviq := legacyScore(overallPct)

	completion, err := s.CompletionStatus(assessmentID, allowed)
	if err != nil {
		return nil, err
	}

	result := &dto.ScoreResultDTO{
		AssessmentID:   assessmentID,
		AssessmentName: assessment.Name(),

		OverallPercentage:    round3(overallPct),
		OverallScore0to5:     round2(overallPct * 5.0),
		MaturityLevel:        overallLevel.Name(),
		MaturityLevelDisplay: string(overallLevel),
		MaturityDetails: dto.LevelDetailsDTO{
			Name:        string(overallLevel),
			Description: overallLevel.Description(),
		},

		DevIQScore:        deviq,
		DevIQScoreDisplay: formatScore(deviq),
		OverallNormalized: round3(overallPct),
		Improvement: dto.ImprovementPotentialDTO{
			CurrentScore:         deviq,
			CurrentLevel:         string(overallLevel),
			TargetLevel:          string(LevelOptimized),
			TargetMinScore:       4.0,
			TargetMaxScore:       4.0,
			GapToTarget:          round1((1.0 - overallPct) * 100),
			PotentialImprovement: round1((1.0 - overallPct) * 100),
			IsAchievable:         overallPct < 1.0,
		},

		SectionScores:    sectionDTOs,
		CompletionStatus: completion,
		Metadata: dto.ScoringMetadataDTO{
			CalculationTimestamp: assessment.UpdatedAt,
			TotalResponses:       len(responseRows),
			ScoringVersion:       ScoringVersion,
		},
	}

	log.Info().
		Uint("assessmentID", assessmentID).
		Float64("overall_percentage", result.OverallPercentage).
		Str("level", string(overallLevel)).
		Msg("Assessment scored")
	return result, nil
}

// CompletionStatus counts logical questions: a suffixed A-F group counts as
// answered as soon as ANY member has a stored response, so the progress bar
// moves in whole user-facing questions rather than physical checklist rows.
func (s *scoringService) CompletionStatus(assessmentID uint, allowed *AllowedQuestions) (dto.CompletionStatusDTO, error) {
	responseRows, err := s.responseRepo.FindByAssessment(assessmentID)
	if err != nil {
		return dto.CompletionStatusDTO{}, fmt.Errorf("error loading responses for completion: %w", err)
	}
	answered := make(map[string]struct{}, len(responseRows))
	for _, r := range responseRows {
		answered[r.QuestionID] = struct{}{}
	}

	groups := allowed.LogicalGroups()
	total := len(groups)
	answeredGroups := 0
	for _, members := range groups {
		for _, id := range members {
			if _, ok := answered[id]; ok {
				answeredGroups++
				break
			}
		}
	}

	pct := 0.0
	if total > 0 {
		pct = float64(answeredGroups) / float64(total) * 100.0
	}
	return dto.CompletionStatusDTO{
		TotalQuestions:       total,
		AnsweredQuestions:    answeredGroups,
		UnansweredQuestions:  total - answeredGroups,
		CompletionPercentage: round1(pct),
		IsComplete:           pct >= 100.0,
		IsSubstantial:        pct >= 80.0,
	}, nil
}
