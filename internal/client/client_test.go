package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirudh/campusconnect/internal/app/models/dto"
)

func TestClient_TransportFailureNormalizesToNetworkError(t *testing.T) {
	// Nothing listens here
	c := New("http://127.0.0.1:1", &http.Client{Timeout: 200 * time.Millisecond})

	_, err := c.FetchEvents(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, NetworkError, apiErr.Kind)
	assert.NotEmpty(t, apiErr.Message)
}

func TestClient_UndecodableBodyNormalizesToNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	c := New(server.URL, server.Client())

	_, err := c.FetchClubs(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, NetworkError, apiErr.Kind)
}

func TestClient_ServerErrorCarriesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(dto.ListErrorResponse{Error: "Error fetching events"})
	}))
	defer server.Close()

	c := New(server.URL, server.Client())

	_, err := c.FetchEvents(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ServerError, apiErr.Kind)
	assert.Equal(t, "Error fetching events", apiErr.Message)
}

func TestClient_LoginRejectionIsAValueNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dto.LoginResponse{Success: false, Message: "Invalid credentials"})
	}))
	defer server.Close()

	c := New(server.URL, server.Client())

	resp, err := c.Login(context.Background(), "jane@campus.edu", "wrong")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid credentials", resp.Message)
}

func TestClient_ContextTimeoutNormalizesToNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	c := New(server.URL, server.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.FetchEvents(ctx)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, NetworkError, apiErr.Kind)
}
