package services

import (
	"context"
	"fmt"
	"time"

	"github.com/anirudh/campusconnect/internal/app/models"
	"github.com/anirudh/campusconnect/internal/app/models/dto"
	"github.com/anirudh/campusconnect/internal/app/repositories"
	"github.com/anirudh/campusconnect/internal/cache"
	"github.com/rs/zerolog"
)

// dateLayout is the wire format of event dates.
const dateLayout = "2006-01-02"

// EventService serves event listings
type EventService interface {
	List(ctx context.Context) ([]dto.EventResponse, error)
	ListForUser(ctx context.Context, userID int64) ([]dto.EventResponse, error)
}

type eventService struct {
	eventRepo repositories.IEventRepository
	cache     *cache.EventsCache
	logger    zerolog.Logger
}

// NewEventService creates a new EventService. The cache may be nil, in which
// case every listing reads from the database.
func NewEventService(eventRepo repositories.IEventRepository, eventsCache *cache.EventsCache, logger zerolog.Logger) EventService {
	return &eventService{
		eventRepo: eventRepo,
		cache:     eventsCache,
		logger:    logger,
	}
}

// List returns all events with their hosting club, date ascending.
func (s *eventService) List(ctx context.Context) ([]dto.EventResponse, error) {
	if s.cache != nil {
		if events, ok := s.cache.Get(ctx); ok {
			return events, nil
		}
	}

	rows, err := s.eventRepo.GetAllWithClub(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list events")
		return nil, fmt.Errorf("error listing events: %w", err)
	}

	events := toEventResponses(rows)

	if s.cache != nil {
		s.cache.Set(ctx, events)
	}

	return events, nil
}

// ListForUser returns the events the user registered for, each carrying the
// registration timestamp, date ascending.
func (s *eventService) ListForUser(ctx context.Context, userID int64) ([]dto.EventResponse, error) {
	rows, err := s.eventRepo.GetRegisteredByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to list user events")
		return nil, fmt.Errorf("error listing user events: %w", err)
	}

	return toEventResponses(rows), nil
}

// toEventResponses maps joined event rows onto the wire shape. The result
// is never nil so listings serialize as [] rather than null.
func toEventResponses(rows []*models.EventWithClub) []dto.EventResponse {
	events := make([]dto.EventResponse, 0, len(rows))
	for _, row := range rows {
		event := dto.EventResponse{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			Date:        row.Date.Format(dateLayout),
			Time:        row.Time,
			Venue:       row.Venue,
			URL:         row.URL,
			ClubID:      row.ClubID,
			Club:        row.ClubName,
			ClubLogo:    row.ClubLogo,
		}
		if row.RegistrationDate != nil {
			event.RegistrationDate = row.RegistrationDate.Format(time.RFC3339)
		}
		events = append(events, event)
	}

	return events
}
