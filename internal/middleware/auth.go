package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/aadarshsenapati/globetrotter/backend/internal/authclient"
	"github.com/aadarshsenapati/globetrotter/backend/internal/domain"
)

// TokenValidator validates an access token against the external auth service
// and returns the identity it belongs to. Satisfied by *authclient.Client.
type TokenValidator interface {
	GetUser(ctx context.Context, accessToken string) (authclient.AuthUser, error)
}

// ctxKey is an unexported context key type so no other package can collide
// with the values this middleware stores.
type ctxKey int

const (
	userKey ctxKey = iota
	tokenKey
)

// NewAuthenticator returns a middleware that requires a valid bearer token.
// The token is forwarded to the auth service on every request — there is no
// local verification or caching, so revocation upstream takes effect
// immediately. On success the identity and raw token are stored on the
// request context for handlers.
func NewAuthenticator(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeUnauthorized(w, "missing or malformed Authorization header")
				return
			}

			user, err := validator.GetUser(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					writeUnauthorized(w, "invalid or expired token")
					return
				}
				writeUnauthorized(w, "could not validate credentials")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			ctx = context.WithValue(ctx, tokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated identity stored by NewAuthenticator.
func UserFromContext(ctx context.Context) (authclient.AuthUser, bool) {
	user, ok := ctx.Value(userKey).(authclient.AuthUser)
	return user, ok
}

// UserIDFromContext returns just the authenticated user id.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	user, ok := UserFromContext(ctx)
	return user.ID, ok
}

// TokenFromContext returns the raw bearer token stored by NewAuthenticator,
// for handlers that forward it upstream (logout).
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) || len(header) == len(prefix) {
		return "", false
	}
	return header[len(prefix):], true
}

// writeUnauthorized writes the same error envelope the handler package uses,
// duplicated here to keep the middleware free of a handler import cycle.
func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": "unauthorized", "message": message},
	})
}
