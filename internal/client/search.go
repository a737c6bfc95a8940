package client

import (
	"context"
	"strings"

	"github.com/anirudh/campusconnect/internal/app/models/dto"
)

// Searcher finds events and clubs matching a query.
type Searcher interface {
	Search(ctx context.Context, query string) (*dto.SearchResponse, error)
}

// RemoteSearcher delegates to the server-side search endpoint.
type RemoteSearcher struct {
	client *Client
}

// NewRemoteSearcher creates a RemoteSearcher backed by the given client.
func NewRemoteSearcher(client *Client) *RemoteSearcher {
	return &RemoteSearcher{client: client}
}

func (s *RemoteSearcher) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	return s.client.SearchRemote(ctx, query)
}

// LocalSearcher filters the full listings client-side with the same
// case-insensitive substring semantics the server applies.
type LocalSearcher struct {
	client *Client
}

// NewLocalSearcher creates a LocalSearcher backed by the given client.
func NewLocalSearcher(client *Client) *LocalSearcher {
	return &LocalSearcher{client: client}
}

func (s *LocalSearcher) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	result := dto.NewSearchResponse()
	query = strings.TrimSpace(query)
	if query == "" {
		return result, nil
	}

	events, err := s.client.FetchEvents(ctx)
	if err != nil {
		return nil, err
	}
	clubs, err := s.client.FetchClubs(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	for _, event := range events {
		if matchesEvent(event, needle) {
			result.Events = append(result.Events, event)
		}
	}
	for _, club := range clubs {
		if matchesClub(club, needle) {
			result.Clubs = append(result.Clubs, club)
		}
	}
	return result, nil
}

func matchesEvent(event dto.EventResponse, needle string) bool {
	return containsFold(event.Title, needle) ||
		containsFold(event.Description, needle) ||
		containsFold(event.Venue, needle) ||
		containsFold(event.Club, needle)
}

func matchesClub(club dto.ClubResponse, needle string) bool {
	return containsFold(club.Name, needle) ||
		containsFold(club.Description, needle)
}

// containsFold expects needle already lowercased.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// FallbackSearcher tries a primary strategy and falls back to a secondary
// one when the primary fails.
type FallbackSearcher struct {
	primary  Searcher
	fallback Searcher
}

// NewFallbackSearcher composes two search strategies.
func NewFallbackSearcher(primary, fallback Searcher) *FallbackSearcher {
	return &FallbackSearcher{primary: primary, fallback: fallback}
}

func (s *FallbackSearcher) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	result, err := s.primary.Search(ctx, query)
	if err == nil && recognizedShape(result) {
		return result, nil
	}
	return s.fallback.Search(ctx, query)
}

// recognizedShape reports whether the response carries the search result
// shape. A body without the events and clubs keys decodes into nil slices
// and is not a search result, however successful the request was.
func recognizedShape(result *dto.SearchResponse) bool {
	return result != nil && (result.Events != nil || result.Clubs != nil)
}

// DefaultSearcher returns the standard composite: remote search first,
// local filtering when the remote tier fails.
func DefaultSearcher(client *Client) Searcher {
	return NewFallbackSearcher(NewRemoteSearcher(client), NewLocalSearcher(client))
}
