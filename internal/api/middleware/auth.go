package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/anvitha1105/Capstone-finalreview/internal/api/apierr"
	"github.com/anvitha1105/Capstone-finalreview/internal/model"
	"github.com/anvitha1105/Capstone-finalreview/internal/services/auth"
)

type contextKey string

const userContextKey contextKey = "user"

// Identity resolves the caller on every request. A bearer token maps to
// its registered account; no credential at all maps to the shared guest
// identity. Only a credential that is present but unusable is rejected.
func Identity(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := authService.Resolve(r.Context(), extractToken(r))
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken pulls the session token from the request, preferring the
// Authorization header over the session cookie
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	cookie, err := r.Cookie("session")
	if err == nil {
		return cookie.Value
	}

	return ""
}

// GetUser returns the resolved user from the request context
func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

// MustGetUser returns the resolved user or panics
func MustGetUser(ctx context.Context) *model.User {
	user := GetUser(ctx)
	if user == nil {
		panic("no user in context - identity middleware not applied?")
	}
	return user
}
