package api

import (
	"net/http"
	"time"

	"github.com/vocadeck/vocadeck-api/internal/api/shared"
	"github.com/vocadeck/vocadeck-api/internal/platform/logger"
	"github.com/vocadeck/vocadeck-api/internal/service/session"
	"github.com/vocadeck/vocadeck-api/internal/store"
)

// SessionHandler handles session lifecycle API requests.
type SessionHandler struct {
	sessions      store.SessionStore
	tokenService  session.TokenService
	tokenLifetime time.Duration
}

// NewSessionHandler creates a new SessionHandler with the given dependencies.
func NewSessionHandler(
	sessions store.SessionStore,
	tokenService session.TokenService,
	tokenLifetime time.Duration,
) *SessionHandler {
	return &SessionHandler{
		sessions:      sessions,
		tokenService:  tokenService,
		tokenLifetime: tokenLifetime,
	}
}

// Create handles POST /api/sessions. Sessions are anonymous; the response
// token is the only handle on the created store and card pair.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), nil)

	sess := h.sessions.Create()

	token, err := h.tokenService.GenerateToken(r.Context(), sess.ID)
	if err != nil {
		// A session without a reachable token is garbage; drop it.
		h.sessions.Delete(sess.ID)
		log.Error("failed to generate session token", "error", err, "session_id", sess.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create session")
		return
	}

	log.Info("session created", "session_id", sess.ID)

	shared.RespondWithJSON(w, r, http.StatusCreated, SessionResponse{
		SessionID: sess.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(h.tokenLifetime).UTC().Format(time.RFC3339),
	})
}
