package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/anirudh/campusconnect/internal/app/models/dto"
	"github.com/anirudh/campusconnect/internal/app/repositories"
	"github.com/rs/zerolog"
)

// SearchService answers combined event/club queries
type SearchService interface {
	Search(ctx context.Context, query string) (*dto.SearchResponse, error)
}

type searchService struct {
	eventRepo repositories.IEventRepository
	clubRepo  repositories.IClubRepository
	logger    zerolog.Logger
}

// NewSearchService creates a new SearchService
func NewSearchService(eventRepo repositories.IEventRepository, clubRepo repositories.IClubRepository, logger zerolog.Logger) SearchService {
	return &searchService{
		eventRepo: eventRepo,
		clubRepo:  clubRepo,
		logger:    logger,
	}
}

// Search matches the query case-insensitively as a substring over event
// title/description/venue/club name and over club name/description. A blank
// query returns empty result sets without touching storage.
func (s *searchService) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return dto.NewSearchResponse(), nil
	}

	eventRows, err := s.eventRepo.Search(ctx, term)
	if err != nil {
		s.logger.Error().Err(err).Str("query", term).Msg("Event search failed")
		return nil, fmt.Errorf("error searching events: %w", err)
	}

	clubRows, err := s.clubRepo.Search(ctx, term)
	if err != nil {
		s.logger.Error().Err(err).Str("query", term).Msg("Club search failed")
		return nil, fmt.Errorf("error searching clubs: %w", err)
	}

	return &dto.SearchResponse{
		Events: toEventResponses(eventRows),
		Clubs:  toClubResponses(clubRows),
	}, nil
}
