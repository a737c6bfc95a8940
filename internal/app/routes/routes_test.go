package routes

import (
	"context"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirudh/campusconnect/internal/app/controllers"
	"github.com/anirudh/campusconnect/internal/app/models"
	"github.com/anirudh/campusconnect/internal/app/models/dto"
	"github.com/anirudh/campusconnect/internal/app/repositories"
	"github.com/anirudh/campusconnect/internal/app/services"
	"github.com/anirudh/campusconnect/internal/client"
)

// memoryStore backs all four repository interfaces for in-process tests.
type memoryStore struct {
	mu            sync.Mutex
	nextUserID    int64
	users         map[string]*models.User
	clubs         []*models.Club
	events        []*models.EventWithClub
	registrations map[[2]int64]time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:         make(map[string]*models.User),
		registrations: make(map[[2]int64]time.Time),
	}
}

func (m *memoryStore) Create(ctx context.Context, user *models.User) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextUserID++
	user.ID = m.nextUserID
	copied := *user
	m.users[user.Email] = &copied
	return user.ID, nil
}

func (m *memoryStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *memoryStore) EmailExists(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.users[email]
	return ok, nil
}

func (m *memoryStore) EnrollmentNumberExists(_ context.Context, enrollmentNumber string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.EnrollmentNumber == enrollmentNumber {
			return true, nil
		}
	}
	return false, nil
}

type memoryClubRepo struct{ store *memoryStore }

func (r *memoryClubRepo) GetAll(_ context.Context) ([]*models.Club, error) {
	return r.store.clubs, nil
}

func (r *memoryClubRepo) Search(_ context.Context, _ string) ([]*models.Club, error) {
	return nil, nil
}

func (r *memoryClubRepo) Count(_ context.Context) (int, error) {
	return len(r.store.clubs), nil
}

func (r *memoryClubRepo) Create(_ context.Context, club *models.Club) error {
	r.store.clubs = append(r.store.clubs, club)
	return nil
}

type memoryEventRepo struct{ store *memoryStore }

func (r *memoryEventRepo) GetAllWithClub(_ context.Context) ([]*models.EventWithClub, error) {
	return r.store.events, nil
}

func (r *memoryEventRepo) GetRegisteredByUser(_ context.Context, userID int64) ([]*models.EventWithClub, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var rows []*models.EventWithClub
	for _, event := range r.store.events {
		registeredAt, ok := r.store.registrations[[2]int64{userID, event.ID}]
		if !ok {
			continue
		}
		copied := *event
		at := registeredAt
		copied.RegistrationDate = &at
		rows = append(rows, &copied)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows, nil
}

func (r *memoryEventRepo) Search(_ context.Context, _ string) ([]*models.EventWithClub, error) {
	return nil, nil
}

func (r *memoryEventRepo) Count(_ context.Context) (int, error) {
	return len(r.store.events), nil
}

func (r *memoryEventRepo) Create(_ context.Context, _ *models.Event) error {
	return nil
}

type memoryRegistrationRepo struct{ store *memoryStore }

func (r *memoryRegistrationRepo) Exists(_ context.Context, userID, eventID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	_, ok := r.store.registrations[[2]int64{userID, eventID}]
	return ok, nil
}

func (r *memoryRegistrationRepo) Create(_ context.Context, userID, eventID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	key := [2]int64{userID, eventID}
	if _, ok := r.store.registrations[key]; ok {
		return &pgconn.PgError{Code: "23505", ConstraintName: repositories.RegistrationConstraint}
	}
	r.store.registrations[key] = time.Now().UTC()
	return nil
}

func newTestServer(t *testing.T, store *memoryStore) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	lgr := zerolog.Nop()
	authSvc := services.NewAuthService(store, lgr)
	eventSvc := services.NewEventService(&memoryEventRepo{store}, nil, lgr)
	clubSvc := services.NewClubService(&memoryClubRepo{store}, lgr)
	registrationSvc := services.NewRegistrationService(&memoryRegistrationRepo{store}, lgr)
	searchSvc := services.NewSearchService(&memoryEventRepo{store}, &memoryClubRepo{store}, lgr)

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(authSvc, lgr),
		controllers.NewEventController(eventSvc, lgr),
		controllers.NewClubController(clubSvc, lgr),
		controllers.NewRegistrationController(registrationSvc, lgr),
		controllers.NewSearchController(searchSvc, lgr),
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// Full journey through the HTTP surface via the client data layer:
// signup, login, register, list the user's events, then register again.
func TestRoutes_SignupLoginRegisterJourney(t *testing.T) {
	store := newMemoryStore()
	clubID := int64(1)
	store.clubs = []*models.Club{{ID: 1, Name: "Coding Club", Description: "We build things"}}
	store.events = []*models.EventWithClub{
		{
			Event: models.Event{
				ID:     3,
				Title:  "HackNight",
				Date:   time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC),
				Time:   "18:00",
				Venue:  "Lab 2",
				ClubID: &clubID,
			},
			ClubName: "Coding Club",
		},
	}

	server := newTestServer(t, store)
	c := client.New(server.URL, server.Client())
	ctx := context.Background()

	signupResp, err := c.Signup(ctx, dto.SignupRequest{
		Email:            "jane@campus.edu",
		Password:         "pw123",
		EnrollmentNumber: "EN2301",
		Name:             "Jane",
	})
	require.NoError(t, err)
	require.True(t, signupResp.Success, signupResp.Message)

	loginResp, err := c.Login(ctx, "jane@campus.edu", "pw123")
	require.NoError(t, err)
	require.True(t, loginResp.Success, loginResp.Message)
	require.NotNil(t, loginResp.User)
	userID := loginResp.User.ID

	registerResp, err := c.Register(ctx, userID, 3)
	require.NoError(t, err)
	assert.True(t, registerResp.Success)
	assert.Equal(t, "Registration successful", registerResp.Message)

	userEvents, err := c.FetchUserEvents(ctx, userID)
	require.NoError(t, err)
	require.Len(t, userEvents, 1)
	assert.Equal(t, "HackNight", userEvents[0].Title)
	assert.Equal(t, "Coding Club", userEvents[0].Club)
	assert.NotEmpty(t, userEvents[0].RegistrationDate)

	// Second registration reports unsuccessful, not an error
	registerAgain, err := c.Register(ctx, userID, 3)
	require.NoError(t, err)
	assert.False(t, registerAgain.Success)
	assert.Equal(t, "You're already registered for this event!", registerAgain.Message)
}

func TestRoutes_PublicListings(t *testing.T) {
	store := newMemoryStore()
	store.clubs = []*models.Club{
		{ID: 1, Name: "Coding Club"},
		{ID: 2, Name: "Drama Club"},
	}

	server := newTestServer(t, store)
	c := client.New(server.URL, server.Client())
	ctx := context.Background()

	clubs, err := c.FetchClubs(ctx)
	require.NoError(t, err)
	assert.Len(t, clubs, 2)

	events, err := c.FetchEvents(ctx)
	require.NoError(t, err)
	assert.NotNil(t, events, "empty listing must decode as [], not null")
	assert.Empty(t, events)
}
