package controllers

import (
	"errors"
	"net/http"

	"github.com/anirudh/campusconnect/internal/app/models/dto"
	"github.com/anirudh/campusconnect/internal/app/services"
	"github.com/anirudh/campusconnect/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RegistrationController handles event registration requests
type RegistrationController struct {
	registrationService services.RegistrationService
	logger              zerolog.Logger
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService services.RegistrationService, logger zerolog.Logger) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
		logger:              logger,
	}
}

// Register handles event registration
// @Summary Register for an event
// @Description Records that a user attends an event; registering twice reports success=false with an explanatory message
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User and event identifiers"
// @Success 200 {object} dto.RegisterResponse "Registration result"
// @Failure 400 {object} dto.RegisterResponse "Missing identifiers"
// @Failure 500 {object} dto.RegisterResponse "Storage failure"
// @Router /register [post]
func (c *RegistrationController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		ctx.JSON(http.StatusBadRequest, dto.RegisterResponse{
			Success: false,
			Message: "Missing required data: User ID and Event ID",
		})
		return
	}

	if req.UserID == 0 || req.EventID == 0 {
		c.logger.Warn().
			Int64("userID", req.UserID).
			Int64("eventID", req.EventID).
			Msg("Registration request missing identifiers")
		ctx.JSON(http.StatusBadRequest, dto.RegisterResponse{
			Success: false,
			Message: missingDataMessage(req.UserID == 0, req.EventID == 0),
		})
		return
	}

	err := c.registrationService.Register(ctx.Request.Context(), req.UserID, req.EventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyRegistered) {
			// Duplicate registration is not an error, just an unsuccessful outcome
			ctx.JSON(http.StatusOK, dto.RegisterResponse{
				Success: false,
				Message: "You're already registered for this event!",
			})
			return
		}

		c.logger.Error().Err(err).
			Int64("userID", req.UserID).
			Int64("eventID", req.EventID).
			Msg("Registration failed")
		ctx.JSON(http.StatusInternalServerError, dto.RegisterResponse{
			Success: false,
			Message: "Server error",
			Error:   err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.RegisterResponse{
		Success: true,
		Message: "Registration successful",
	})
}

// missingDataMessage itemizes which identifiers were absent
func missingDataMessage(userMissing, eventMissing bool) string {
	switch {
	case userMissing && eventMissing:
		return "Missing required data: User ID and Event ID"
	case userMissing:
		return "Missing required data: User ID"
	default:
		return "Missing required data: Event ID"
	}
}
