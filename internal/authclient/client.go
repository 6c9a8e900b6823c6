// Package authclient is the HTTP client for the external auth service.
// All session state lives upstream: tokens are opaque strings issued by the
// service and validated by forwarding them back on every authenticated
// request. There is no local token parsing, verification, or caching.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
)

// Client talks to a GoTrue-style auth service.
// anonKey is sent as the apikey header on unprivileged calls; serviceKey
// authorizes admin operations (account deletion) and must never reach a
// response body or log line.
type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	http       *http.Client
}

// NewClient constructs an auth service client. baseURL has no trailing slash.
func NewClient(baseURL, anonKey, serviceKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		anonKey:    anonKey,
		serviceKey: serviceKey,
		http:       &http.Client{Timeout: timeout},
	}
}

// AuthUser is the identity record the auth service returns for a valid token.
type AuthUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Session is an issued token pair plus the user it belongs to.
type Session struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int      `json:"expires_in"`
	User         AuthUser `json:"user"`
}

// SignUp registers a new account and returns its initial session.
func (c *Client) SignUp(ctx context.Context, email, password string) (Session, error) {
	return c.sessionRequest(ctx, "/auth/v1/signup", credentials{Email: email, Password: password})
}

// SignInWithPassword exchanges email/password credentials for a session.
// Rejected credentials return domain.ErrUnauthorized.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (Session, error) {
	return c.sessionRequest(ctx, "/auth/v1/token?grant_type=password", credentials{Email: email, Password: password})
}

// Refresh exchanges a refresh token for a fresh session.
// An invalid or expired refresh token returns domain.ErrUnauthorized.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	return c.sessionRequest(ctx, "/auth/v1/token?grant_type=refresh_token", refreshRequest{RefreshToken: refreshToken})
}

// SignOut revokes the session behind accessToken.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/v1/logout", nil)
	if err != nil {
		return fmt.Errorf("authclient.Client.SignOut: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("authclient.Client.SignOut: %w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("authclient.Client.SignOut: %w: %s", domain.ErrUpstream, readError(resp))
	}
	return nil
}

// GetUser validates accessToken by forwarding it to the auth service and
// returns the identity it belongs to. Any 401/403 from upstream maps to
// domain.ErrUnauthorized; other failures map to domain.ErrUpstream.
func (c *Client) GetUser(ctx context.Context, accessToken string) (AuthUser, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/auth/v1/user", nil)
	if err != nil {
		return AuthUser{}, fmt.Errorf("authclient.Client.GetUser: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return AuthUser{}, fmt.Errorf("authclient.Client.GetUser: %w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return AuthUser{}, fmt.Errorf("authclient.Client.GetUser: %w", domain.ErrUnauthorized)
	}
	if resp.StatusCode != http.StatusOK {
		return AuthUser{}, fmt.Errorf("authclient.Client.GetUser: %w: %s", domain.ErrUpstream, readError(resp))
	}

	var user AuthUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return AuthUser{}, fmt.Errorf("authclient.Client.GetUser: decode: %w: %v", domain.ErrUpstream, err)
	}
	return user, nil
}

// AdminDeleteUser removes an account using the privileged service key.
// The database cascade handles the user's trips, stops, and activities.
func (c *Client) AdminDeleteUser(ctx context.Context, userID uuid.UUID) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/auth/v1/admin/users/"+userID.String(), nil)
	if err != nil {
		return fmt.Errorf("authclient.Client.AdminDeleteUser: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("authclient.Client.AdminDeleteUser: %w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("authclient.Client.AdminDeleteUser: %w: %s", domain.ErrUpstream, readError(resp))
	}
	return nil
}

// --- internals --------------------------------------------------------------

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// sessionRequest posts a JSON payload and decodes a Session from the response.
// 400/401/422 responses are treated as rejected credentials or tokens.
func (c *Client) sessionRequest(ctx context.Context, path string, payload any) (Session, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Session{}, fmt.Errorf("authclient: marshal: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return Session{}, fmt.Errorf("authclient: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("authclient: %w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusUnprocessableEntity:
		return Session{}, fmt.Errorf("authclient: %w: %s", domain.ErrUnauthorized, readError(resp))
	default:
		return Session{}, fmt.Errorf("authclient: %w: %s", domain.ErrUpstream, readError(resp))
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return Session{}, fmt.Errorf("authclient: decode: %w: %v", domain.ErrUpstream, err)
	}
	return session, nil
}

// newRequest builds a request with the anon apikey header set.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.anonKey)
	return req, nil
}

// readError extracts a short error description from an upstream response body.
type upstreamError struct {
	Message   string `json:"message"`
	Msg       string `json:"msg"`
	ErrorDesc string `json:"error_description"`
}

func readError(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var e upstreamError
	if err := json.Unmarshal(raw, &e); err == nil {
		for _, m := range []string{e.Message, e.Msg, e.ErrorDesc} {
			if m != "" {
				return m
			}
		}
	}
	return fmt.Sprintf("status %d", resp.StatusCode)
}
