package services

import (
	"context"
	"fmt"

	"github.com/anirudh/campusconnect/internal/app/models"
	"github.com/anirudh/campusconnect/internal/app/models/dto"
	"github.com/anirudh/campusconnect/internal/app/repositories"
	"github.com/rs/zerolog"
)

// ClubService serves club listings
type ClubService interface {
	List(ctx context.Context) ([]dto.ClubResponse, error)
}

type clubService struct {
	clubRepo repositories.IClubRepository
	logger   zerolog.Logger
}

// NewClubService creates a new ClubService
func NewClubService(clubRepo repositories.IClubRepository, logger zerolog.Logger) ClubService {
	return &clubService{
		clubRepo: clubRepo,
		logger:   logger,
	}
}

// List returns all clubs in natural storage order.
func (s *clubService) List(ctx context.Context) ([]dto.ClubResponse, error) {
	rows, err := s.clubRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list clubs")
		return nil, fmt.Errorf("error listing clubs: %w", err)
	}

	return toClubResponses(rows), nil
}

// toClubResponses maps club rows onto the wire shape; the result is never nil.
func toClubResponses(rows []*models.Club) []dto.ClubResponse {
	clubs := make([]dto.ClubResponse, 0, len(rows))
	for _, row := range rows {
		clubs = append(clubs, dto.ClubResponse{
			ID:          row.ID,
			Name:        row.Name,
			LogoURL:     row.LogoURL,
			Description: row.Description,
		})
	}

	return clubs
}
