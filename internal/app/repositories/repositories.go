// Package repositories contains the database access layer.
package repositories

import (
	"context"

	"github.com/anirudh/campusconnect/internal/app/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IUserRepository defines database operations on users
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	EnrollmentNumberExists(ctx context.Context, enrollmentNumber string) (bool, error)
}

// IClubRepository defines database operations on clubs
type IClubRepository interface {
	GetAll(ctx context.Context) ([]*models.Club, error)
	Search(ctx context.Context, term string) ([]*models.Club, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, club *models.Club) error
}

// IEventRepository defines database operations on events
type IEventRepository interface {
	GetAllWithClub(ctx context.Context) ([]*models.EventWithClub, error)
	GetRegisteredByUser(ctx context.Context, userID int64) ([]*models.EventWithClub, error)
	Search(ctx context.Context, term string) ([]*models.EventWithClub, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, event *models.Event) error
}

// IRegistrationRepository defines database operations on event registrations
type IRegistrationRepository interface {
	Exists(ctx context.Context, userID, eventID int64) (bool, error)
	Create(ctx context.Context, userID, eventID int64) error
}

// Repositories bundles the concrete repositories for dependency injection
type Repositories struct {
	UserRepository         IUserRepository
	ClubRepository         IClubRepository
	EventRepository        IEventRepository
	RegistrationRepository IRegistrationRepository
}

// NewRepositories creates all repositories on a shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		ClubRepository:         NewClubRepository(db),
		EventRepository:        NewEventRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
	}
}
