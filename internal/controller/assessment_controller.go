package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/afslabs/assessor/internal/dto"
	"github.com/afslabs/assessor/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AssessmentController struct {
	assessmentSvc service.AssessmentService
	scoringSvc    service.ScoringService
	catalogSvc    service.CatalogService
}

func NewAssessmentController(
	assessmentSvc service.AssessmentService,
	scoringSvc service.ScoringService,
	catalogSvc service.CatalogService,
) *AssessmentController {
	return &AssessmentController{
		assessmentSvc: assessmentSvc,
		scoringSvc:    scoringSvc,
		catalogSvc:    catalogSvc,
	}
}

// parseID extracts the :id path parameter; a nil return means a 400 has
// already been written.
func parseID(ctx *gin.Context) *uint {
	val, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid assessment ID format"})
		return nil
	}
	id := uint(val)
	return &id
}

// respondServiceError maps service errors onto HTTP statuses: missing rows to
// 404, scope/validation errors to 400, lifecycle conflicts to 409, the rest
// to 500.
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrQuestionNotAllowed):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrAssessmentLocked),
		errors.Is(err, service.ErrIncompleteAssessment),
		errors.Is(err, service.ErrReportUnavailable):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
	}
}

// CreateAssessment godoc
// @Summary Create a new assessment
// @Description Create an assessment in IN_PROGRESS status for an organization.
// @Tags Assessments
// @Accept json
// @Produce json
// @Param assessment body dto.AssessmentCreateDTO true "Organization and candidate metadata"
// @Success 201 {object} dto.AssessmentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments [post]
func (c *AssessmentController) CreateAssessment(ctx *gin.Context) {
	var req dto.AssessmentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateAssessment: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	created, err := c.assessmentSvc.Create(req)
	if err != nil {
		log.Error().Err(err).Msg("CreateAssessment: Service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// GetAllAssessments godoc
// @Summary List assessments
// @Description Get all assessments, newest first.
// @Tags Assessments
// @Produce json
// @Success 200 {array} dto.AssessmentSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments [get]
func (c *AssessmentController) GetAllAssessments(ctx *gin.Context) {
	assessments, err := c.assessmentSvc.List()
	if err != nil {
		log.Error().Err(err).Msg("GetAllAssessments: Service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, assessments)
}

// GetAssessment godoc
// @Summary Get one assessment
// @Description Get assessment metadata and status.
// @Tags Assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 200 {object} dto.AssessmentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid assessment ID format"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/{id} [get]
func (c *AssessmentController) GetAssessment(ctx *gin.Context) {
	id := parseID(ctx)
	if id == nil {
		return
	}
	assessment, err := c.assessmentSvc.Get(*id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, assessment)
}

// DeleteAssessment godoc
// @Summary Delete an assessment
// @Description Delete an assessment and all its responses.
// @Tags Assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 204 "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid assessment ID format"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/{id} [delete]
func (c *AssessmentController) DeleteAssessment(ctx *gin.Context) {
	id := parseID(ctx)
	if id == nil {
		return
	}
	if err := c.assessmentSvc.Delete(*id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// SubmitResponse godoc
// @Summary Submit one binary answer
// @Description Store or overwrite the answer for one question (autosave). Score 1 = No, 2 = Yes. Returns updated logical progress.
// @Tags Assessments
// @Accept json
// @Produce json
// @Param id path int true "Assessment ID"
// @Param response body dto.ResponseSubmitDTO true "Question ID and score"
// @Success 200 {object} dto.ResponseSubmitResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid body or question not in scope"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 409 {object} dto.ErrorResponse "Assessment is finalized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/{id}/responses [post]
func (c *AssessmentController) SubmitResponse(ctx *gin.Context) {
	id := parseID(ctx)
	if id == nil {
		return
	}
	var req dto.ResponseSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitResponse: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	result, err := c.assessmentSvc.SubmitResponse(*id, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetProgress godoc
// @Summary Get completion progress
// @Description Get logical-question completion overall and per section.
// @Tags Assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 200 {object} dto.ProgressDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid assessment ID format"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/{id}/progress [get]
func (c *AssessmentController) GetProgress(ctx *gin.Context) {
	id := parseID(ctx)
	if id == nil {
		return
	}
	progress, err := c.assessmentSvc.Progress(*id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, progress)
}

// GetScore godoc
// @Summary Get the current scoring result
// @Description Score the assessment as it stands: area and section percentages, maturity levels, completion. Does not finalize.
// @Tags Assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 200 {object} dto.ScoreResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid assessment ID format"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/{id}/score [get]
func (c *AssessmentController) GetScore(ctx *gin.Context) {
	id := parseID(ctx)
	if id == nil {
		return
	}
	result, err := c.scoringSvc.CalculateAssessmentScore(*id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// FinalizeAssessment godoc
// @Summary Finalize an assessment
// @Description Freeze the scoring result and mark the assessment COMPLETED. Rejected below 80% completion unless force_complete is set. Idempotent once finalized.
// @Tags Assessments
// @Accept json
// @Produce json
// @Param id path int true "Assessment ID"
// @Param options body dto.FinalizeRequestDTO false "Force flag"
// @Success 200 {object} dto.FinalizeResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid assessment ID format"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 409 {object} dto.ErrorResponse "Below the completion threshold"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/{id}/finalize [post]
func (c *AssessmentController) FinalizeAssessment(ctx *gin.Context) {
	id := parseID(ctx)
	if id == nil {
		return
	}
	var req dto.FinalizeRequestDTO
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			log.Warn().Err(err).Msg("FinalizeAssessment: Failed to bind JSON")
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
			return
		}
	}
	result, err := c.assessmentSvc.Finalize(*id, req.ForceComplete)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
