package authclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadarshsenapati/globetrotter/backend/internal/authclient"
	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
)

func newClient(t *testing.T, handler http.HandlerFunc) *authclient.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return authclient.NewClient(srv.URL, "anon-key", "service-key", time.Second)
}

func sessionBody(t *testing.T, id uuid.UUID) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"access_token":  "at-123",
		"refresh_token": "rt-456",
		"expires_in":    3600,
		"user":          map[string]string{"id": id.String(), "email": "ada@example.com"},
	})
	require.NoError(t, err)
	return b
}

func TestSignInWithPassword(t *testing.T) {
	userID := uuid.New()
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "ada@example.com", creds["email"])

		_, _ = w.Write(sessionBody(t, userID))
	})

	session, err := c.SignInWithPassword(context.Background(), "ada@example.com", "hunter22")

	require.NoError(t, err)
	assert.Equal(t, "at-123", session.AccessToken)
	assert.Equal(t, "rt-456", session.RefreshToken)
	assert.Equal(t, userID, session.User.ID)
}

func TestSignInWithPassword_BadCredentials(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error_description":"Invalid login credentials"}`))
	})

	_, err := c.SignInWithPassword(context.Background(), "ada@example.com", "wrong")

	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid login credentials")
}

func TestRefresh_UsesRefreshGrant(t *testing.T) {
	userID := uuid.New()
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "refresh_token", r.URL.Query().Get("grant_type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "rt-old", body["refresh_token"])

		_, _ = w.Write(sessionBody(t, userID))
	})

	session, err := c.Refresh(context.Background(), "rt-old")

	require.NoError(t, err)
	assert.Equal(t, "at-123", session.AccessToken)
}

func TestGetUser(t *testing.T) {
	userID := uuid.New()
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "Bearer at-123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":"` + userID.String() + `","email":"ada@example.com"}`))
	})

	user, err := c.GetUser(context.Background(), "at-123")

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestGetUser_ExpiredToken(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"msg":"JWT expired"}`))
	})

	_, err := c.GetUser(context.Background(), "stale")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAdminDeleteUser_UsesServiceKey(t *testing.T) {
	userID := uuid.New()
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/auth/v1/admin/users/"+userID.String(), r.URL.Path)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	})

	err := c.AdminDeleteUser(context.Background(), userID)

	assert.NoError(t, err)
}

func TestSignOut(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/logout", r.URL.Path)
		assert.Equal(t, "Bearer at-123", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.SignOut(context.Background(), "at-123")

	assert.NoError(t, err)
}

func TestSessionRequest_ServerError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.SignInWithPassword(context.Background(), "ada@example.com", "hunter22")

	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}
