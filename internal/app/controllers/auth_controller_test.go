package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirudh/campusconnect/internal/app/models/dto"
	"github.com/anirudh/campusconnect/internal/pkg/apperrors"
)

// fakeAuthService returns canned results per call.
type fakeAuthService struct {
	loginUser *dto.UserResponse
	loginErr  error
	signupErr error
}

func (s *fakeAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.UserResponse, error) {
	return s.loginUser, s.loginErr
}

func (s *fakeAuthService) Signup(_ context.Context, _ *dto.SignupRequest) error {
	return s.signupErr
}

func performRequest(t *testing.T, handler gin.HandlerFunc, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")

	handler(ctx)
	return recorder
}

func TestAuthController_LoginSuccess(t *testing.T) {
	svc := &fakeAuthService{loginUser: &dto.UserResponse{
		ID:               1,
		Email:            "jane@campus.edu",
		Name:             "Jane",
		EnrollmentNumber: "EN2301",
	}}
	controller := NewAuthController(svc, zerolog.Nop())

	recorder := performRequest(t, controller.Login, http.MethodPost,
		`{"username":"jane@campus.edu","password":"pw123"}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.User)
	assert.Equal(t, "jane@campus.edu", resp.User.Email)

	// The password hash must never appear on the wire
	assert.NotContains(t, recorder.Body.String(), "password")
	assert.NotContains(t, recorder.Body.String(), "hash")
}

func TestAuthController_LoginFailures(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{"validation", apperrors.ErrValidationFailed, "Email and password are required"},
		{"bad credentials", apperrors.ErrInvalidCredentials, "Invalid credentials"},
		{"storage failure", assert.AnError, "An error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := NewAuthController(&fakeAuthService{loginErr: tt.err}, zerolog.Nop())

			recorder := performRequest(t, controller.Login, http.MethodPost,
				`{"username":"x@campus.edu","password":"pw"}`)

			// Failures still answer 200 with success=false
			require.Equal(t, http.StatusOK, recorder.Code)

			var resp dto.LoginResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Nil(t, resp.User)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestAuthController_SignupMessages(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantSuccess bool
		wantMessage string
	}{
		{"created", nil, true, "Account created successfully"},
		{"missing fields", apperrors.ErrValidationFailed, false, "All fields are required"},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, false, "Email is already registered"},
		{"duplicate enrollment", apperrors.ErrEnrollmentAlreadyExists, false, "Enrollment number is already registered"},
		{"storage failure", assert.AnError, false, "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := NewAuthController(&fakeAuthService{signupErr: tt.err}, zerolog.Nop())

			recorder := performRequest(t, controller.Signup, http.MethodPost,
				`{"email":"x@campus.edu","password":"pw","enrollment_number":"EN1"}`)

			require.Equal(t, http.StatusOK, recorder.Code)

			var resp dto.SignupResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantSuccess, resp.Success)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}
