package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirudh/campusconnect/internal/app/models/dto"
)

func registrationServer(t *testing.T, responses []dto.RegisterResponse) (*httptest.Server, *int) {
	t.Helper()
	calls := new(int)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := responses[*calls]
		*calls++
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)
	return server, calls
}

func TestRegistrationFlow_MissingEventFailsWithoutNetworkCall(t *testing.T) {
	server, calls := registrationServer(t, nil)
	c := New(server.URL, server.Client())

	flow := NewRegistrationFlow(c, 1, nil)
	assert.Equal(t, StateIdle, flow.State())

	state := flow.Start(context.Background())

	assert.Equal(t, StateFailed, state)
	assert.Equal(t, MissingEventMessage, flow.Message())
	assert.Zero(t, *calls, "no request may be sent without a target event")
}

func TestRegistrationFlow_Success(t *testing.T) {
	server, _ := registrationServer(t, []dto.RegisterResponse{
		{Success: true, Message: "Registration successful"},
	})
	c := New(server.URL, server.Client())
	event := &dto.EventResponse{ID: 3, Title: "HackNight"}

	flow := NewRegistrationFlow(c, 1, event)
	state := flow.Start(context.Background())

	assert.Equal(t, StateSucceeded, state)
	assert.Equal(t, RegisteredMessage, flow.Message())

	// Succeeded is terminal: another Start is a no-op
	assert.Equal(t, StateSucceeded, flow.Start(context.Background()))
}

func TestRegistrationFlow_ServerRejectionShowsReturnedMessage(t *testing.T) {
	server, _ := registrationServer(t, []dto.RegisterResponse{
		{Success: false, Message: "You're already registered for this event!"},
	})
	c := New(server.URL, server.Client())
	event := &dto.EventResponse{ID: 3}

	flow := NewRegistrationFlow(c, 1, event)
	state := flow.Start(context.Background())

	assert.Equal(t, StateFailed, state)
	assert.Equal(t, "You're already registered for this event!", flow.Message())
}

func TestRegistrationFlow_RetryAfterFailure(t *testing.T) {
	server, calls := registrationServer(t, []dto.RegisterResponse{
		{Success: false, Message: "Server error"},
		{Success: true},
	})
	c := New(server.URL, server.Client())
	event := &dto.EventResponse{ID: 3}

	flow := NewRegistrationFlow(c, 1, event)

	require.Equal(t, StateFailed, flow.Start(context.Background()))
	require.Equal(t, StateSucceeded, flow.Start(context.Background()))
	assert.Equal(t, RegisteredMessage, flow.Message())
	assert.Equal(t, 2, *calls)
}

func TestRegistrationFlow_NetworkFailure(t *testing.T) {
	c := New("http://127.0.0.1:1", nil)
	event := &dto.EventResponse{ID: 3}

	flow := NewRegistrationFlow(c, 1, event)
	state := flow.Start(context.Background())

	assert.Equal(t, StateFailed, state)
	assert.Equal(t, RegistrationErrMessage, flow.Message())
}
