package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/anirudh/campusconnect/internal/app/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClubRepository handles database operations for clubs
type ClubRepository struct {
	db *pgxpool.Pool
}

// NewClubRepository creates a new club repository
func NewClubRepository(db *pgxpool.Pool) *ClubRepository {
	return &ClubRepository{
		db: db,
	}
}

// GetAll retrieves all clubs in natural storage order
func (r *ClubRepository) GetAll(ctx context.Context) ([]*models.Club, error) {
	query := `
		SELECT id, name, logo_url, description
		FROM clubs
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clubs []*models.Club
	for rows.Next() {
		var club models.Club
		if err := rows.Scan(
			&club.ID,
			&club.Name,
			&club.LogoURL,
			&club.Description,
		); err != nil {
			return nil, err
		}
		clubs = append(clubs, &club)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clubs, nil
}

// Search retrieves clubs whose name or description contains the term,
// case-insensitively, ordered by name.
func (r *ClubRepository) Search(ctx context.Context, term string) ([]*models.Club, error) {
	pattern := "%" + term + "%"

	query := squirrel.Select("id", "name", "logo_url", "description").
		From("clubs").
		Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		}).
		OrderBy("name ASC").
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

	var clubs []*models.Club
	for rows.Next() {
		var club models.Club
		if err := rows.Scan(
			&club.ID,
			&club.Name,
			&club.LogoURL,
			&club.Description,
		); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		clubs = append(clubs, &club)
	}

	return clubs, rows.Err()
}

// Count returns the number of clubs
func (r *ClubRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM clubs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting clubs: %w", err)
	}

	return count, nil
}

// Create inserts a new club
func (r *ClubRepository) Create(ctx context.Context, club *models.Club) error {
	query := `
		INSERT INTO clubs (name, logo_url, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, club.Name, club.LogoURL, club.Description).Scan(&club.ID)
	if err != nil {
		return err
	}

	return nil
}
