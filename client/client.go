// Package client is a Go SDK for the pricing admin API. It speaks the same
// wire contract as the browser console: a bare JWT from login, replayed as a
// Bearer header on every other call.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrInvalidLogin   = errors.New("invalid username or password")
	ErrMalformedToken = errors.New("server did not return a token")
)

const loginPath = "/api/auth/login"

type Client struct {
	http  *resty.Client
	store TokenStore
}

type Option func(*Client)

func WithTokenStore(store TokenStore) Option {
	return func(c *Client) { c.store = store }
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(timeout) }
}

func New(baseURL string, opts ...Option) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	c := &Client{
		http:  httpClient,
		store: NewMemoryTokenStore(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if strings.HasSuffix(req.URL, loginPath) {
			return nil
		}
		token, err := c.store.Token()
		if err != nil {
			if errors.Is(err, ErrNoToken) {
				return nil
			}
			return err
		}
		req.SetHeader("Authorization", "Bearer "+token)
		return nil
	})

	return c
}

// Login authenticates and stores the returned token. The server responds
// with the bare JWT, but wrapped {"token": ...} / {"access_token": ...}
// shapes are accepted too so the SDK survives a gateway that re-envelopes
// the body.
func (c *Client) Login(ctx context.Context, username, password string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"username": username, "password": password}).
		Post(loginPath)
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}

	switch resp.StatusCode() {
	case 200:
	case 401:
		return ErrInvalidLogin
	case 403:
		return ErrForbidden
	default:
		return apiError(resp)
	}

	token := normalizeToken(resp.Body())
	if token == "" {
		return ErrMalformedToken
	}

	return c.store.Save(token)
}

// normalizeToken accepts the raw JWT body or a JSON envelope carrying it.
// JWTs are base64 JSON, so a well-formed one always starts with "ey".
func normalizeToken(body []byte) string {
	raw := strings.TrimSpace(string(body))
	if strings.HasPrefix(raw, "ey") {
		return raw
	}

	var wrapped struct {
		Token       string `json:"token"`
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return ""
	}

	for _, candidate := range []string{wrapped.Token, wrapped.AccessToken} {
		candidate = strings.TrimSpace(candidate)
		if strings.HasPrefix(candidate, "ey") {
			return candidate
		}
	}
	return ""
}

// Logout tells the server and drops the local token either way.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Post("/api/auth/logout")
	clearErr := c.store.Clear()
	if err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	if resp.StatusCode() != 204 && resp.StatusCode() != 200 {
		return apiError(resp)
	}
	return clearErr
}

// User is the authenticated account as reported by /api/auth/me.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	TenantID *string   `json:"tenantId,omitempty"`
	StoreID  *string   `json:"storeId,omitempty"`
	IsActive bool      `json:"isActive"`
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&user).
		Get("/api/auth/me")
	if err != nil {
		return nil, fmt.Errorf("me request failed: %w", err)
	}
	if err := checkStatus(c, resp); err != nil {
		return nil, err
	}
	return &user, nil
}

// checkStatus maps error statuses to sentinels. A 401 also drops the stored
// token; the session is dead and replaying it would only 401 again.
func checkStatus(c *Client, resp *resty.Response) error {
	switch resp.StatusCode() {
	case 200, 201, 204:
		return nil
	case 401:
		_ = c.store.Clear()
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	case 409:
		return ErrConflict
	default:
		return apiError(resp)
	}
}

func apiError(resp *resty.Response) error {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error.Message != "" {
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode(), body.Error.Message)
	}
	return fmt.Errorf("api error (status %d)", resp.StatusCode())
}
