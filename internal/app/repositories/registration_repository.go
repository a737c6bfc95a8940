package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RegistrationConstraint is the unique constraint name guarding the
// (user_id, event_id) pair.
const RegistrationConstraint = "registrations_user_id_event_id_key"

// RegistrationRepository handles database operations for event registrations
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
	}
}

// Exists checks if a registration row exists for the (user, event) pair
func (r *RegistrationRepository) Exists(ctx context.Context, userID, eventID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM registrations WHERE user_id = $1 AND event_id = $2)`,
		userID, eventID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking registration existence: %w", err)
	}

	return exists, nil
}

// Create inserts a registration row with the current timestamp. The unique
// pair constraint makes a concurrent duplicate insert fail rather than
// produce a second row.
func (r *RegistrationRepository) Create(ctx context.Context, userID, eventID int64) error {
	query := `
		INSERT INTO registrations (user_id, event_id, registration_date)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
	`

	_, err := r.db.Exec(ctx, query, userID, eventID)
	if err != nil {
		return err
	}

	return nil
}
