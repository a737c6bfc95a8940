package services

import (
	"context"
	"fmt"

	"github.com/anirudh/campusconnect/internal/app/repositories"
	"github.com/anirudh/campusconnect/internal/pkg/apperrors"
	"github.com/anirudh/campusconnect/internal/pkg/dberrors"
	"github.com/rs/zerolog"
)

// RegistrationService handles event registrations
type RegistrationService interface {
	Register(ctx context.Context, userID, eventID int64) error
}

type registrationService struct {
	registrationRepo repositories.IRegistrationRepository
	logger           zerolog.Logger
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(registrationRepo repositories.IRegistrationRepository, logger zerolog.Logger) RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		logger:           logger,
	}
}

// Register records that a user attends an event. Registering twice for the
// same event reports ErrAlreadyRegistered; the unique pair constraint closes
// the window between the existence check and the insert, so a concurrent
// duplicate lands on the same error instead of a second row.
func (s *registrationService) Register(ctx context.Context, userID, eventID int64) error {
	exists, err := s.registrationRepo.Exists(ctx, userID, eventID)
	if err != nil {
		s.logger.Error().Err(err).
			Int64("userID", userID).
			Int64("eventID", eventID).
			Msg("Failed to check registration status")
		return fmt.Errorf("error checking registration status: %w", err)
	}

	if exists {
		return apperrors.ErrAlreadyRegistered
	}

	if err := s.registrationRepo.Create(ctx, userID, eventID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, repositories.RegistrationConstraint) {
			return apperrors.ErrAlreadyRegistered
		}
		s.logger.Error().Err(err).
			Int64("userID", userID).
			Int64("eventID", eventID).
			Msg("Failed to create registration")
		return fmt.Errorf("error creating registration: %w", err)
	}

	s.logger.Info().
		Int64("userID", userID).
		Int64("eventID", eventID).
		Msg("Registration created")
	return nil
}
