package controllers

import (
	"net/http"
	"strconv"

	"github.com/anirudh/campusconnect/internal/app/models/dto"
	"github.com/anirudh/campusconnect/internal/app/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// EventController handles event listing operations
type EventController struct {
	eventService services.EventService
	logger       zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, logger zerolog.Logger) *EventController {
	return &EventController{
		eventService: eventService,
		logger:       logger,
	}
}

// ListEvents returns all events
// @Summary List events
// @Description Returns all events joined with their hosting club, ordered by date ascending
// @Tags events
// @Produce json
// @Success 200 {array} dto.EventResponse
// @Failure 500 {object} dto.ListErrorResponse
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	events, err := c.eventService.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to fetch events")
		ctx.JSON(http.StatusInternalServerError, dto.ListErrorResponse{
			Error:   "Error fetching events",
			Details: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// ListUserEvents returns the events a user registered for
// @Summary List a user's registered events
// @Description Returns the events the user registered for, each with the registration timestamp, ordered by date ascending
// @Tags events
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} dto.EventResponse
// @Failure 400 {object} dto.ListErrorResponse
// @Failure 500 {object} dto.ListErrorResponse
// @Router /user-events/{userId} [get]
func (c *EventController) ListUserEvents(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		c.logger.Warn().Str("userId", ctx.Param("userId")).Msg("Invalid user ID in path")
		ctx.JSON(http.StatusBadRequest, dto.ListErrorResponse{
			Error: "Failed to fetch user events",
		})
		return
	}

	events, err := c.eventService.ListForUser(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to fetch user events")
		ctx.JSON(http.StatusInternalServerError, dto.ListErrorResponse{
			Error: "Failed to fetch user events",
		})
		return
	}

	ctx.JSON(http.StatusOK, events)
}
