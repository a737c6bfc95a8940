package services

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirudh/campusconnect/internal/app/models"
	"github.com/anirudh/campusconnect/internal/app/models/dto"
	"github.com/anirudh/campusconnect/internal/pkg/apperrors"
)

// fakeUserRepo is an in-memory IUserRepository.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.users[user.Email] = &copied
	return user.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[email]
	return ok, nil
}

func (r *fakeUserRepo) EnrollmentNumberExists(_ context.Context, enrollmentNumber string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.EnrollmentNumber == enrollmentNumber {
			return true, nil
		}
	}
	return false, nil
}

func TestAuthService_SignupLoginRoundtrip(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), zerolog.Nop())
	ctx := context.Background()

	err := svc.Signup(ctx, &dto.SignupRequest{
		Email:            "jane@campus.edu",
		Password:         "pw123",
		EnrollmentNumber: "EN2301",
		Name:             "Jane",
	})
	require.NoError(t, err)

	user, err := svc.Login(ctx, &dto.LoginRequest{Username: "jane@campus.edu", Password: "pw123"})
	require.NoError(t, err)

	assert.Equal(t, "jane@campus.edu", user.Email)
	assert.Equal(t, "Jane", user.Name)
	assert.Equal(t, "EN2301", user.EnrollmentNumber)
	assert.NotZero(t, user.ID)
}

func TestAuthService_SignupNameDefaultsToEmailLocalPart(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, zerolog.Nop())
	ctx := context.Background()

	err := svc.Signup(ctx, &dto.SignupRequest{
		// Legacy clients send the email in the username field
		Username:         "rahul@campus.edu",
		Password:         "pw123",
		EnrollmentNumber: "EN2302",
	})
	require.NoError(t, err)

	user, err := repo.GetByEmail(ctx, "rahul@campus.edu")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "rahul", user.Name)
}

func TestAuthService_SignupDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), zerolog.Nop())
	ctx := context.Background()

	first := &dto.SignupRequest{Email: "dup@campus.edu", Password: "pw", EnrollmentNumber: "EN1"}
	require.NoError(t, svc.Signup(ctx, first))

	// A different enrollment number does not help: the email wins.
	second := &dto.SignupRequest{Email: "dup@campus.edu", Password: "pw", EnrollmentNumber: "EN2"}
	err := svc.Signup(ctx, second)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAuthService_SignupDuplicateEnrollmentNumber(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), zerolog.Nop())
	ctx := context.Background()

	first := &dto.SignupRequest{Email: "a@campus.edu", Password: "pw", EnrollmentNumber: "EN1"}
	require.NoError(t, svc.Signup(ctx, first))

	second := &dto.SignupRequest{Email: "b@campus.edu", Password: "pw", EnrollmentNumber: "EN1"}
	err := svc.Signup(ctx, second)
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentAlreadyExists)
}

func TestAuthService_SignupValidation(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		name string
		req  *dto.SignupRequest
	}{
		{"missing email", &dto.SignupRequest{Password: "pw", EnrollmentNumber: "EN1"}},
		{"missing password", &dto.SignupRequest{Email: "x@campus.edu", EnrollmentNumber: "EN1"}},
		{"missing enrollment number", &dto.SignupRequest{Email: "x@campus.edu", Password: "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Signup(ctx, tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &dto.SignupRequest{
		Email:            "jane@campus.edu",
		Password:         "pw123",
		EnrollmentNumber: "EN2301",
	}))

	tests := []struct {
		name    string
		req     *dto.LoginRequest
		wantErr error
	}{
		{"empty credentials", &dto.LoginRequest{}, apperrors.ErrValidationFailed},
		{"unknown user", &dto.LoginRequest{Username: "nobody@campus.edu", Password: "pw"}, apperrors.ErrInvalidCredentials},
		{"wrong password", &dto.LoginRequest{Username: "jane@campus.edu", Password: "nope"}, apperrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Login(ctx, tt.req)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
