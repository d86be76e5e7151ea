// Package userapi is a client for the fitness backend's user and workout
// endpoints.
package userapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is where the backend listens during local development.
	DefaultBaseURL = "http://localhost:8000"

	defaultTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

// ErrUnexpectedStatus wraps every non-2xx response.
var ErrUnexpectedStatus = errors.New("userapi: unexpected status")

// Client talks to the backend REST API.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		timeout: defaultTimeout,
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetUser fetches the user resource.
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	body, err := c.do(ctx, http.MethodGet, "/auth/user/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, err
	}

	var u User
	if err := json.Unmarshal(body, &u); err != nil {
		return nil, fmt.Errorf("userapi: parsing user: %w", err)
	}
	return &u, nil
}

// UpdateCalorieGoal stores a new daily calorie goal for the user.
func (c *Client) UpdateCalorieGoal(ctx context.Context, userID string, goal int) error {
	_, err := c.do(ctx, http.MethodPut, "/auth/user/"+url.PathEscape(userID), goalUpdate{CalorieGoal: goal})
	return err
}

// CountWorkouts returns how many workouts the user has logged.
func (c *Client) CountWorkouts(ctx context.Context, userID string) (int, error) {
	body, err := c.do(ctx, http.MethodGet, "/workouts/user/"+url.PathEscape(userID), nil)
	if err != nil {
		return 0, err
	}

	var workouts []Workout
	if err := json.Unmarshal(body, &workouts); err != nil {
		return 0, fmt.Errorf("userapi: parsing workouts: %w", err)
	}
	return len(workouts), nil
}

// do performs a request and returns the response body of a 2xx response.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("userapi: encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("userapi: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "github.com/theirongolddev/fitdash/1.0")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("userapi: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, fmt.Errorf("%w %d for %s %s", ErrUnexpectedStatus, resp.StatusCode, method, path)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("userapi: reading response: %w", err)
	}
	return body, nil
}
