package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/vocadeck/vocadeck-api/internal/api/middleware"
	"github.com/vocadeck/vocadeck-api/internal/api/shared"
	"github.com/vocadeck/vocadeck-api/internal/platform/logger"
)

// HandleAPIError maps an internal error onto a status code and a sanitized
// message and writes the response. When userMessage is non-empty it overrides
// the mapped message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}

// sessionIDFromRequest extracts the authenticated session ID placed in the
// context by the auth middleware. It writes a 401 response when the ID is
// missing, which only happens if a route was wired without the middleware.
func sessionIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sessionID, ok := middleware.GetSessionID(r)
	if !ok || sessionID == uuid.Nil {
		log := logger.FromContextOrDefault(r.Context(), nil)
		log.Warn("session ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Session required")
		return uuid.Nil, false
	}
	return sessionID, true
}
