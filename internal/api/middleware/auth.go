package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/vocadeck/vocadeck-api/internal/api/shared"
	"github.com/vocadeck/vocadeck-api/internal/service/session"
)

// AuthMiddleware validates session tokens on protected routes.
type AuthMiddleware struct {
	tokenService session.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService session.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate validates the session token from the Authorization header and
// adds the session ID to the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		token := parts[1]

		sessionID, err := m.tokenService.ValidateToken(r.Context(), token)
		if err != nil {
			switch err {
			case session.ErrExpiredToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Session token expired")
			case session.ErrInvalidToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid session token")
			default:
				slog.Error("failed to validate session token", "error", err)
				shared.RespondWithError(
					w,
					r,
					http.StatusInternalServerError,
					"Authentication error",
				)
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.SessionIDContextKey, sessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID extracts the session ID from the request context.
// Returns the session ID and a boolean indicating if it was found.
func GetSessionID(r *http.Request) (uuid.UUID, bool) {
	sessionID, ok := r.Context().Value(shared.SessionIDContextKey).(uuid.UUID)
	return sessionID, ok
}
