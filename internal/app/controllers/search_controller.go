package controllers

import (
	"net/http"

	"github.com/anirudh/campusconnect/internal/app/models/dto"
	"github.com/anirudh/campusconnect/internal/app/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SearchController handles combined event/club search
type SearchController struct {
	searchService services.SearchService
	logger        zerolog.Logger
}

// NewSearchController creates a new SearchController
func NewSearchController(searchService services.SearchService, logger zerolog.Logger) *SearchController {
	return &SearchController{
		searchService: searchService,
		logger:        logger,
	}
}

// Search returns events and clubs matching the query
// @Summary Search events and clubs
// @Description Case-insensitive substring search over events and clubs; a blank query returns empty result sets
// @Tags search
// @Produce json
// @Param query query string false "Search term"
// @Success 200 {object} dto.SearchResponse
// @Failure 500 {object} dto.SearchErrorResponse
// @Router /search [get]
func (c *SearchController) Search(ctx *gin.Context) {
	query := ctx.Query("query")

	results, err := c.searchService.Search(ctx.Request.Context(), query)
	if err != nil {
		c.logger.Error().Err(err).Str("query", query).Msg("Search failed")
		ctx.JSON(http.StatusInternalServerError, dto.NewSearchErrorResponse(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, results)
}
