package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/afslabs/assessor/internal/dto"
	"github.com/afslabs/assessor/internal/model"
	"github.com/afslabs/assessor/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// AssessmentService owns the assessment lifecycle: creation, answer
// submission with live progress, and finalization, which freezes the scoring
// result into the assessment row.
type AssessmentService interface {
	Create(req dto.AssessmentCreateDTO) (*dto.AssessmentResponseDTO, error)
	Get(id uint) (*dto.AssessmentResponseDTO, error)
	List() ([]dto.AssessmentSummaryDTO, error)
	Delete(id uint) error
	SubmitResponse(assessmentID uint, req dto.ResponseSubmitDTO) (*dto.ResponseSubmitResultDTO, error)
	Progress(assessmentID uint) (*dto.ProgressDTO, error)
	Finalize(assessmentID uint, force bool) (*dto.FinalizeResultDTO, error)
}

type assessmentService struct {
	assessmentRepo repository.AssessmentRepository
	responseRepo   repository.ResponseRepository
	catalogRepo    repository.CatalogRepository
	catalogSvc     CatalogService
	scoringSvc     ScoringService
}

func NewAssessmentService(
	assessmentRepo repository.AssessmentRepository,
	responseRepo repository.ResponseRepository,
	catalogRepo repository.CatalogRepository,
	catalogSvc CatalogService,
	scoringSvc ScoringService,
) AssessmentService {
	return &assessmentService{
		assessmentRepo: assessmentRepo,
		responseRepo:   responseRepo,
		catalogRepo:    catalogRepo,
		catalogSvc:     catalogSvc,
		scoringSvc:     scoringSvc,
	}
}

func (s *assessmentService) Create(req dto.AssessmentCreateDTO) (*dto.AssessmentResponseDTO, error) {
	assessment := model.Assessment{
		OrganizationName: req.OrganizationName,
		TeamName:         req.TeamName,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Industry:         req.Industry,
		Status:           model.StatusInProgress,
	}
	if err := s.assessmentRepo.Create(&assessment); err != nil {
		log.Error().Err(err).Msg("Failed to create assessment")
		return nil, fmt.Errorf("error creating assessment: %w", err)
	}
	log.Info().Uint("assessmentID", assessment.ID).Str("organization", assessment.OrganizationName).Msg("Assessment created")
	return toAssessmentDTO(&assessment)
}

func (s *assessmentService) Get(id uint) (*dto.AssessmentResponseDTO, error) {
	assessment, err := s.assessmentRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("assessment %d not found: %w", id, err)
	}
	return toAssessmentDTO(assessment)
}

func (s *assessmentService) List() ([]dto.AssessmentSummaryDTO, error) {
	assessments, err := s.assessmentRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error listing assessments: %w", err)
	}
	summaries := make([]dto.AssessmentSummaryDTO, 0, len(assessments))
	for i := range assessments {
		var summary dto.AssessmentSummaryDTO
		if err := copier.Copy(&summary, &assessments[i]); err != nil {
			return nil, fmt.Errorf("error mapping assessment summary: %w", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *assessmentService) Delete(id uint) error {
	if _, err := s.assessmentRepo.FindByID(id); err != nil {
		return fmt.Errorf("assessment %d not found: %w", id, err)
	}
	if err := s.assessmentRepo.Delete(id); err != nil {
		return fmt.Errorf("error deleting assessment %d: %w", id, err)
	}
	log.Info().Uint("assessmentID", id).Msg("Assessment deleted")
	return nil
}

// SubmitResponse upserts one binary answer. The write is atomic on the
// (assessment, question) unique index, so concurrent autosaves for the same
// question converge on a single row with last-write-wins semantics.
func (s *assessmentService) SubmitResponse(assessmentID uint, req dto.ResponseSubmitDTO) (*dto.ResponseSubmitResultDTO, error) {
	assessment, err := s.assessmentRepo.FindByID(assessmentID)
	if err != nil {
		return nil, fmt.Errorf("assessment %d not found: %w", assessmentID, err)
	}
	if !assessment.IsEditable() {
		return nil, ErrAssessmentLocked
	}

	allowed, err := s.catalogSvc.ResolveAllowedQuestions()
	if err != nil {
		return nil, err
	}
	if !allowed.Contains(req.QuestionID) {
		return nil, fmt.Errorf("%w: %s", ErrQuestionNotAllowed, req.QuestionID)
	}

	response := model.Response{
		AssessmentID: assessmentID,
		QuestionID:   req.QuestionID,
		Score:        req.Score,
		Notes:        req.Notes,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.responseRepo.Upsert(&response); err != nil {
		log.Error().Err(err).Uint("assessmentID", assessmentID).Str("questionID", req.QuestionID).Msg("Failed to store response")
		return nil, fmt.Errorf("error storing response: %w", err)
	}
	if err := s.assessmentRepo.Update(assessment); err != nil {
		return nil, fmt.Errorf("error touching assessment %d: %w", assessmentID, err)
	}

	completion, err := s.scoringSvc.CompletionStatus(assessmentID, allowed)
	if err != nil {
		return nil, err
	}
	return &dto.ResponseSubmitResultDTO{
		QuestionID:         req.QuestionID,
		Score:              req.Score,
		AnsweredQuestions:  completion.AnsweredQuestions,
		TotalQuestions:     completion.TotalQuestions,
		ProgressPercentage: completion.CompletionPercentage,
	}, nil
}

// Progress reports logical completion overall and per section. Sections with
// no in-scope questions are omitted from the breakdown.
func (s *assessmentService) Progress(assessmentID uint) (*dto.ProgressDTO, error) {
	assessment, err := s.assessmentRepo.FindByID(assessmentID)
	if err != nil {
		return nil, fmt.Errorf("assessment %d not found: %w", assessmentID, err)
	}

	allowed, err := s.catalogSvc.ResolveAllowedQuestions()
	if err != nil {
		return nil, err
	}
	completion, err := s.scoringSvc.CompletionStatus(assessmentID, allowed)
	if err != nil {
		return nil, err
	}

	responses, err := s.responseRepo.FindByAssessment(assessmentID)
	if err != nil {
		return nil, fmt.Errorf("error loading responses for assessment %d: %w", assessmentID, err)
	}
	answered := make(map[string]struct{}, len(responses))
	var lastResponse *time.Time
	for i := range responses {
		answered[responses[i].QuestionID] = struct{}{}
		if lastResponse == nil || responses[i].Timestamp.After(*lastResponse) {
			lastResponse = &responses[i].Timestamp
		}
	}

	activeIDs, err := s.catalogSvc.ActiveSectionIDs()
	if err != nil {
		return nil, err
	}
	sections, err := s.catalogRepo.FindSectionsWithQuestions(activeIDs)
	if err != nil {
		return nil, fmt.Errorf("error loading sections for progress: %w", err)
	}

	var sectionProgress []dto.SectionProgressDTO
	for i := range sections {
		row := sectionProgressRow(&sections[i], allowed, answered)
		if row.TotalQuestions == 0 {
			continue
		}
		sectionProgress = append(sectionProgress, row)
	}

	return &dto.ProgressDTO{
		AssessmentID:     assessmentID,
		Status:           assessment.Status,
		Completion:       completion,
		SectionProgress:  sectionProgress,
		LastResponseTime: lastResponse,
	}, nil
}

// sectionProgressRow counts the section's logical questions: grouped rows
// count once per base ID and are answered as soon as any member is.
func sectionProgressRow(section *model.Section, allowed *AllowedQuestions, answered map[string]struct{}) dto.SectionProgressDTO {
	groups := make(map[string]bool)
	for ai := range section.Areas {
		for qi := range section.Areas[ai].Questions {
			q := &section.Areas[ai].Questions[qi]
			if !allowed.Contains(q.ID) {
				continue
			}
			base := q.BaseID()
			if _, ok := answered[q.ID]; ok {
				groups[base] = true
			} else if !groups[base] {
				groups[base] = false
			}
		}
	}

	total := len(groups)
	responded := 0
	for _, done := range groups {
		if done {
			responded++
		}
	}
	pct := 0.0
	if total > 0 {
		pct = round1(float64(responded) / float64(total) * 100.0)
	}
	return dto.SectionProgressDTO{
		SectionID:          section.ID,
		SectionName:        section.Name,
		TotalQuestions:     total,
		RespondedQuestions: responded,
		ProgressPercentage: pct,
		IsComplete:         total > 0 && responded == total,
	}
}

// Finalize scores the assessment, freezes the result as JSON on the row, and
// flips the status to COMPLETED. Below 80% logical completion the call is
// rejected unless force is set. Finalizing an already finalized assessment is
// idempotent and returns the frozen snapshot untouched.
func (s *assessmentService) Finalize(assessmentID uint, force bool) (*dto.FinalizeResultDTO, error) {
	assessment, err := s.assessmentRepo.FindByID(assessmentID)
	if err != nil {
		return nil, fmt.Errorf("assessment %d not found: %w", assessmentID, err)
	}

	if !assessment.IsEditable() {
		var frozen dto.ScoreResultDTO
		if err := json.Unmarshal([]byte(assessment.ResultsJSON), &frozen); err != nil {
			return nil, fmt.Errorf("error reading frozen results for assessment %d: %w", assessmentID, err)
		}
		return &dto.FinalizeResultDTO{
			AssessmentID:   assessmentID,
			Status:         assessment.Status,
			CompletionDate: assessment.CompletionDate,
			Scores:         frozen,
		}, nil
	}

	allowed, err := s.catalogSvc.ResolveAllowedQuestions()
	if err != nil {
		return nil, err
	}
	completion, err := s.scoringSvc.CompletionStatus(assessmentID, allowed)
	if err != nil {
		return nil, err
	}
	if !completion.IsSubstantial && !force {
		return nil, fmt.Errorf("%w: %.1f%% answered", ErrIncompleteAssessment, completion.CompletionPercentage)
	}

	result, err := s.scoringSvc.CalculateAssessmentScore(assessmentID)
	if err != nil {
		return nil, err
	}
	snapshot, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("error freezing results for assessment %d: %w", assessmentID, err)
	}

	now := time.Now().UTC()
	assessment.Status = model.StatusCompleted
	assessment.CompletionDate = &now
	assessment.ResultsJSON = string(snapshot)
	assessment.OverallScore = &result.DevIQScore
	assessment.DevIQClassification = result.MaturityLevelDisplay
	cacheSectionScores(assessment, result.SectionScores)

	if err := s.assessmentRepo.Update(assessment); err != nil {
		log.Error().Err(err).Uint("assessmentID", assessmentID).Msg("Failed to finalize assessment")
		return nil, fmt.Errorf("error finalizing assessment %d: %w", assessmentID, err)
	}

	log.Info().
		Uint("assessmentID", assessmentID).
		Float64("deviq_score", result.DevIQScore).
		Str("level", result.MaturityLevelDisplay).
		Msg("Assessment finalized")
	return &dto.FinalizeResultDTO{
		AssessmentID:   assessmentID,
		Status:         assessment.Status,
		CompletionDate: assessment.CompletionDate,
		Scores:         *result,
	}, nil
}

// cacheSectionScores mirrors section scores into the historical four-column
// schema. Only the legacy section IDs map onto columns; other sections are
// represented solely in the JSON snapshot.
func cacheSectionScores(assessment *model.Assessment, sections []dto.SectionScoreDTO) {
	for i := range sections {
		score := sections[i].Score
		switch sections[i].SectionID {
		case "FC":
			assessment.FoundationalScore = &score
		case "TC":
			assessment.TransformationScore = &score
		case "EI":
			assessment.EnterpriseScore = &score
		case "SG":
			assessment.GovernanceScore = &score
		}
	}
}

func toAssessmentDTO(assessment *model.Assessment) (*dto.AssessmentResponseDTO, error) {
	var out dto.AssessmentResponseDTO
	if err := copier.Copy(&out, assessment); err != nil {
		return nil, fmt.Errorf("error mapping assessment: %w", err)
	}
	return &out, nil
}
