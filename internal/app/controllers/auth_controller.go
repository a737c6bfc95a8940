// Package controllers handles HTTP request handling
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

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login handles user login
// @Summary User login
// @Description Authenticates a user by email and password and returns the sanitized user record
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login result; success=false carries a message instead of a user"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusOK, dto.LoginResponse{
			Success: false,
			Message: "Email and password are required",
		})
		return
	}

	user, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Username).Msg("Login failed")
		ctx.JSON(http.StatusOK, dto.LoginResponse{
			Success: false,
			Message: loginFailureMessage(err),
		})
		return
	}

	c.logger.Info().Str("email", user.Email).Msg("User logged in")
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		User:    user,
	})
}

// Signup handles account creation
// @Summary Create an account
// @Description Creates a new user account; the display name defaults to the email local-part
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup information"
// @Success 200 {object} dto.SignupResponse "Signup result"
// @Router /signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid signup request payload")
		ctx.JSON(http.StatusOK, dto.SignupResponse{
			Success: false,
			Message: "All fields are required",
		})
		return
	}

	if err := c.authService.Signup(ctx.Request.Context(), &req); err != nil {
		c.logger.Warn().Err(err).Msg("Signup failed")
		ctx.JSON(http.StatusOK, dto.SignupResponse{
			Success: false,
			Message: signupFailureMessage(err),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SignupResponse{
		Success: true,
		Message: "Account created successfully",
	})
}

// loginFailureMessage maps a login error onto the client-facing message
func loginFailureMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		return "Email and password are required"
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return "Invalid credentials"
	default:
		return "An error occurred"
	}
}

// signupFailureMessage maps a signup error onto the client-facing message
func signupFailureMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		return "All fields are required"
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return "Email is already registered"
	case errors.Is(err, apperrors.ErrEnrollmentAlreadyExists):
		return "Enrollment number is already registered"
	default:
		return "Server error"
	}
}
