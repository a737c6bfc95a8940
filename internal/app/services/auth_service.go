// Package services contains the business rules between the HTTP handlers
// and the repositories.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/anirudh/campusconnect/internal/app/models"
	"github.com/anirudh/campusconnect/internal/app/models/dto"
	"github.com/anirudh/campusconnect/internal/app/repositories"
	"github.com/anirudh/campusconnect/internal/pkg/apperrors"
	"github.com/anirudh/campusconnect/internal/pkg/auth"
	"github.com/anirudh/campusconnect/internal/pkg/dberrors"
	"github.com/rs/zerolog"
)

// AuthService handles login and signup
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error)
	Signup(ctx context.Context, req *dto.SignupRequest) error
}

type authService struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Login authenticates a user by email and password and returns the
// sanitized user projection.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperrors.ErrValidationFailed
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Username)
	if err != nil {
		s.logger.Error().Err(err).Str("email", req.Username).Msg("Failed to look up user")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return sanitizeUser(user), nil
}

// Signup creates a new account. The account email may arrive in either the
// email or the legacy username field; a missing display name defaults to
// the email local-part.
func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) error {
	email := req.Email
	if email == "" {
		email = req.Username
	}

	if email == "" || req.Password == "" || req.EnrollmentNumber == "" {
		return apperrors.ErrValidationFailed
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return apperrors.ErrEmailAlreadyExists
	}

	exists, err = s.userRepo.EnrollmentNumberExists(ctx, req.EnrollmentNumber)
	if err != nil {
		return fmt.Errorf("error checking if enrollment number exists: %w", err)
	}
	if exists {
		return apperrors.ErrEnrollmentAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	name := req.Name
	if name == "" {
		name = emailLocalPart(email)
	}

	user := &models.User{
		Email:            email,
		Name:             name,
		PasswordHash:     hashedPassword,
		EnrollmentNumber: req.EnrollmentNumber,
	}

	if _, err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent signup can slip past the existence checks; the unique
		// constraints report it as the matching conflict.
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "users_enrollment_number_key") {
			return apperrors.ErrEnrollmentAlreadyExists
		}
		return fmt.Errorf("user creation error: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("email", email).Msg("User created")
	return nil
}

// sanitizeUser projects a user row onto the fields safe to return to clients
func sanitizeUser(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		Name:             user.Name,
		EnrollmentNumber: user.EnrollmentNumber,
	}
}

// emailLocalPart returns everything before the @ of an email address
func emailLocalPart(email string) string {
	if idx := strings.Index(email, "@"); idx > 0 {
		return email[:idx]
	}
	return email
}
