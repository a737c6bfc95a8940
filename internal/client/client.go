// Package client implements the HTTP data layer used by the CLI views.
// It speaks the same wire contract as internal/app and never leaks raw
// transport errors to callers.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/anirudh/campusconnect/internal/app/models/dto"
)

// ErrorKind classifies client-side failures.
type ErrorKind string

const (
	// NetworkError covers transport failures, timeouts and bodies the
	// client cannot decode.
	NetworkError ErrorKind = "network"
	// ServerError covers well-formed non-2xx responses with an error body.
	ServerError ErrorKind = "server"
)

// APIError is the only error type returned by Client operations.
type APIError struct {
	Kind    ErrorKind
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func networkError(err error) *APIError {
	return &APIError{Kind: NetworkError, Message: err.Error()}
}

// DefaultTimeout bounds each request when the caller supplies no http.Client.
const DefaultTimeout = 10 * time.Second

// Client talks to the CampusConnect API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the given base URL. A nil httpClient gets a
// default one with DefaultTimeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// BaseURL returns the API base URL the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return networkError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return networkError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return networkError(err)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		var serverErr dto.ListErrorResponse
		if json.Unmarshal(data, &serverErr) == nil && serverErr.Error != "" {
			return &APIError{Kind: ServerError, Message: serverErr.Error}
		}
		return &APIError{Kind: ServerError, Message: resp.Status}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return networkError(err)
	}
	return nil
}

// Login authenticates with the API. Rejected credentials come back as a
// response with Success=false, not as an error.
func (c *Client) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	req := dto.LoginRequest{Username: username, Password: password}
	var resp dto.LoginResponse
	if err := c.postJSON(ctx, "/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup creates an account.
func (c *Client) Signup(ctx context.Context, req dto.SignupRequest) (*dto.SignupResponse, error) {
	var resp dto.SignupResponse
	if err := c.postJSON(ctx, "/signup", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FetchEvents returns all events with their club names attached.
func (c *Client) FetchEvents(ctx context.Context) ([]dto.EventResponse, error) {
	var events []dto.EventResponse
	if err := c.getJSON(ctx, "/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// FetchClubs returns all clubs.
func (c *Client) FetchClubs(ctx context.Context) ([]dto.ClubResponse, error) {
	var clubs []dto.ClubResponse
	if err := c.getJSON(ctx, "/clubs", &clubs); err != nil {
		return nil, err
	}
	return clubs, nil
}

// FetchUserEvents returns the events the user registered for.
func (c *Client) FetchUserEvents(ctx context.Context, userID int64) ([]dto.EventResponse, error) {
	var events []dto.EventResponse
	path := "/user-events/" + strconv.FormatInt(userID, 10)
	if err := c.getJSON(ctx, path, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Register registers the user for an event. Business rejections, such as an
// existing registration, arrive as a response with Success=false.
func (c *Client) Register(ctx context.Context, userID, eventID int64) (*dto.RegisterResponse, error) {
	req := dto.RegisterRequest{UserID: userID, EventID: eventID}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, networkError(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/register", bytes.NewReader(body))
	if err != nil {
		return nil, networkError(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	// The register endpoint reports business failures on non-2xx statuses
	// with the same response shape, so decode regardless of status.
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, networkError(err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, networkError(err)
	}

	var resp dto.RegisterResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, networkError(err)
	}
	return &resp, nil
}

// SearchRemote queries the server-side search endpoint.
func (c *Client) SearchRemote(ctx context.Context, query string) (*dto.SearchResponse, error) {
	var resp dto.SearchResponse
	path := "/search?query=" + url.QueryEscape(query)
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
