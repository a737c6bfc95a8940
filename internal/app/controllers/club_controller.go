package controllers

import (
	"net/http"

	"github.com/anirudh/campusconnect/internal/app/models/dto"
	"github.com/anirudh/campusconnect/internal/app/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ClubController handles club listing operations
type ClubController struct {
	clubService services.ClubService
	logger      zerolog.Logger
}

// NewClubController creates a new ClubController
func NewClubController(clubService services.ClubService, logger zerolog.Logger) *ClubController {
	return &ClubController{
		clubService: clubService,
		logger:      logger,
	}
}

// ListClubs returns all clubs
// @Summary List clubs
// @Description Returns all clubs
// @Tags clubs
// @Produce json
// @Success 200 {array} dto.ClubResponse
// @Failure 500 {object} dto.ListErrorResponse
// @Router /clubs [get]
func (c *ClubController) ListClubs(ctx *gin.Context) {
	clubs, err := c.clubService.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to fetch clubs")
		ctx.JSON(http.StatusInternalServerError, dto.ListErrorResponse{
			Error: "Failed to fetch clubs",
		})
		return
	}

	ctx.JSON(http.StatusOK, clubs)
}
