package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/anirudh/campusconnect/internal/app/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// eventColumns are the selected columns for event rows joined with clubs.
var eventColumns = []string{
	"e.id", "e.title", "e.description", "e.date", "e.time", "e.venue", "e.url", "e.club_id",
	"COALESCE(c.name, '') AS club_name",
	"COALESCE(c.logo_url, '') AS club_logo",
}

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

// GetAllWithClub retrieves all events joined with their hosting club,
// ordered by date ascending.
func (r *EventRepository) GetAllWithClub(ctx context.Context) ([]*models.EventWithClub, error) {
	query := squirrel.Select(eventColumns...).
		From("events e").
		LeftJoin("clubs c ON e.club_id = c.id").
		OrderBy("e.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return scanEventRows(rows, false)
}

// GetRegisteredByUser retrieves the events a user has registered for, with
// the registration timestamp attached, ordered by date ascending.
func (r *EventRepository) GetRegisteredByUser(ctx context.Context, userID int64) ([]*models.EventWithClub, error) {
	columns := append(append([]string{}, eventColumns...), "r.registration_date")

	query := squirrel.Select(columns...).
		From("registrations r").
		Join("events e ON r.event_id = e.id").
		LeftJoin("clubs c ON e.club_id = c.id").
		Where("r.user_id = ?", userID).
		OrderBy("e.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return scanEventRows(rows, true)
}

// Search retrieves events whose title, description, venue or club name
// contains the term, case-insensitively, ordered by date ascending.
func (r *EventRepository) Search(ctx context.Context, term string) ([]*models.EventWithClub, error) {
	pattern := "%" + term + "%"

	query := squirrel.Select(eventColumns...).
		From("events e").
		LeftJoin("clubs c ON e.club_id = c.id").
		Where(squirrel.Or{
			squirrel.ILike{"e.title": pattern},
			squirrel.ILike{"e.description": pattern},
			squirrel.ILike{"e.venue": pattern},
			squirrel.Expr("c.name ILIKE ?", pattern),
		}).
		OrderBy("e.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return scanEventRows(rows, false)
}

// Count returns the number of events
func (r *EventRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting events: %w", err)
	}

	return count, nil
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (title, description, date, time, venue, url, club_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		event.Title, event.Description, event.Date, event.Time,
		event.Venue, event.URL, event.ClubID,
	).Scan(&event.ID)
	if err != nil {
		return err
	}

	return nil
}

// scanEventRows scans joined event rows; withRegistration adds the trailing
// registration_date column of the per-user listing.
func scanEventRows(rows pgx.Rows, withRegistration bool) ([]*models.EventWithClub, error) {
	var events []*models.EventWithClub
	for rows.Next() {
		var event models.EventWithClub
		dest := []any{
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Date,
			&event.Time,
			&event.Venue,
			&event.URL,
			&event.ClubID,
			&event.ClubName,
			&event.ClubLogo,
		}
		if withRegistration {
			dest = append(dest, &event.RegistrationDate)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, &event)
	}

	return events, rows.Err()
}
