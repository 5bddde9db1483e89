package controller

import (
	"net/http"

	"github.com/afslabs/assessor/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ReportController struct {
	reportSvc         service.ReportService
	recommendationSvc service.RecommendationService
}

func NewReportController(reportSvc service.ReportService, recommendationSvc service.RecommendationService) *ReportController {
	return &ReportController{reportSvc: reportSvc, recommendationSvc: recommendationSvc}
}

// GetReport godoc
// @Summary Get the report for a finalized assessment
// @Description Get the full report built from the frozen scoring snapshot: breakdowns, insights, priority sections, area roadmaps and chart data. With recommendations=true an AI-generated narrative is appended.
// @Tags Reports
// @Produce json
// @Param id path int true "Assessment ID"
// @Param lang query string false "Language code for question text in roadmaps (default 'en')"
// @Param recommendations query bool false "Include AI-generated recommendations"
// @Success 200 {object} dto.ReportDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid assessment ID format"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 409 {object} dto.ErrorResponse "Assessment not finalized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/{id}/report [get]
func (c *ReportController) GetReport(ctx *gin.Context) {
	id := parseID(ctx)
	if id == nil {
		return
	}
	lang := ctx.DefaultQuery("lang", "en")

	report, err := c.reportSvc.BuildReport(*id, lang)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	if ctx.Query("recommendations") == "true" {
		recommendations, err := c.recommendationSvc.GetRecommendations(report)
		if err != nil {
			// The report itself is fine; a recommendation failure is logged
			// and the field left empty.
			log.Error().Err(err).Uint("assessmentID", *id).Msg("GetReport: Recommendation generation failed")
		} else {
			report.Recommendations = recommendations
		}
	}
	ctx.JSON(http.StatusOK, report)
}
