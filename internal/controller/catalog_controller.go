package controller

import (
	"net/http"

	"github.com/afslabs/assessor/internal/dto"
	"github.com/afslabs/assessor/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type CatalogController struct {
	catalogSvc service.CatalogService
}

func NewCatalogController(catalogSvc service.CatalogService) *CatalogController {
	return &CatalogController{catalogSvc: catalogSvc}
}

// GetSections godoc
// @Summary List the active assessment catalog
// @Description Get the active sections with their areas and binary questions. Question text follows the 'lang' overlay with English fallback.
// @Tags Catalog
// @Produce json
// @Param lang query string false "Language code for question text (default 'en')"
// @Success 200 {object} dto.CatalogDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections [get]
func (c *CatalogController) GetSections(ctx *gin.Context) {
	lang := ctx.DefaultQuery("lang", "en")
	catalog, err := c.catalogSvc.GetCatalog(lang)
	if err != nil {
		log.Error().Err(err).Msg("GetSections: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve catalog", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, catalog)
}
