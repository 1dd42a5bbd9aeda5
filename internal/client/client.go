// Package client implements the group and roster store over the turmas HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/aidar/turmas/internal/domain"
)

// Client talks to the turmas API. Domain errors returned by the server are
// restored as *domain.DomainError values, so callers handle remote and
// local stores the same way.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration

	mu    sync.RWMutex
	token string
}

// Option configures a Client
type Option func(*Client)

// defaultTimeout applies to the client built by New
const defaultTimeout = 30 * time.Second

// WithHTTPClient replaces the default HTTP client. The client is used as
// given; WithTimeout does not modify it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithToken sets the bearer token sent with every request
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTimeout sets the request timeout of the default HTTP client.
// It has no effect together with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// New creates a Client for the API at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// APIError is an error response that does not carry a domain error
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API returned status %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

// Unwrap maps the response onto the matching domain sentinel
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		switch e.Message {
		case domain.ErrGroupNotFound.Error():
			return domain.ErrGroupNotFound
		case domain.ErrPlayerNotFound.Error():
			return domain.ErrPlayerNotFound
		default:
			return domain.ErrNotFound
		}
	default:
		return nil
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

var domainCodes = map[domain.ErrorCode]bool{
	domain.CodeGroupExists:  true,
	domain.CodePlayerExists: true,
	domain.CodeInvalidTeam:  true,
	domain.CodeEmptyName:    true,
}

// Login exchanges a device ID for a token and keeps it for later requests
func (c *Client) Login(ctx context.Context, deviceID string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{"device_id": deviceID}, &resp); err != nil {
		return "", err
	}

	c.mu.Lock()
	c.token = resp.Token
	c.mu.Unlock()

	return resp.Token, nil
}

// GetAllGroups returns the names of all groups in creation order
func (c *Client) GetAllGroups(ctx context.Context) ([]string, error) {
	var resp struct {
		Groups []string `json:"groups"`
	}
	if err := c.do(ctx, http.MethodGet, "/groups", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Groups, nil
}

// CreateGroup creates an empty group
func (c *Client) CreateGroup(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, "/groups", map[string]string{"name": name}, nil)
}

// RemoveGroup deletes a group and its players
func (c *Client) RemoveGroup(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, groupPath(name), nil, nil)
}

// AddPlayerToGroup adds a player to a group
func (c *Client) AddPlayerToGroup(ctx context.Context, player domain.Player, group string) error {
	return c.do(ctx, http.MethodPost, groupPath(group)+"/players", player, nil)
}

// RemovePlayerFromGroup removes a player from a group
func (c *Client) RemovePlayerFromGroup(ctx context.Context, playerName, group string) error {
	return c.do(ctx, http.MethodDelete, groupPath(group)+"/players/"+url.PathEscape(playerName), nil, nil)
}

// GetPlayersByGroupAndTeam returns the roster of one team
func (c *Client) GetPlayersByGroupAndTeam(ctx context.Context, group, team string) ([]domain.Player, error) {
	var resp struct {
		Players []domain.Player `json:"players"`
	}
	query := url.Values{"team": {team}}
	if err := c.do(ctx, http.MethodGet, groupPath(group)+"/players?"+query.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Players, nil
}

// ShuffleTeams re-splits the players of a group across both teams
func (c *Client) ShuffleTeams(ctx context.Context, group string) ([]domain.Player, error) {
	var resp struct {
		Players []domain.Player `json:"players"`
	}
	if err := c.do(ctx, http.MethodPost, groupPath(group)+"/shuffle", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Players, nil
}

func groupPath(group string) string {
	return "/groups/" + url.PathEscape(group)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read error response: %w", err)
	}

	var envelope errorResponse
	if err := json.Unmarshal(data, &envelope); err != nil || envelope.Error.Code == "" {
		return &APIError{StatusCode: resp.StatusCode, Code: http.StatusText(resp.StatusCode), Message: strings.TrimSpace(string(data))}
	}

	code := domain.ErrorCode(envelope.Error.Code)
	if domainCodes[code] {
		return domain.DomainErrorByCode(code, envelope.Error.Message)
	}

	return &APIError{StatusCode: resp.StatusCode, Code: envelope.Error.Code, Message: envelope.Error.Message}
}
