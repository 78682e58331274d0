package api

import (
	"net/http"

	"github.com/vocadeck/vocadeck-api/internal/api/shared"
	"github.com/vocadeck/vocadeck-api/internal/platform/logger"
	"github.com/vocadeck/vocadeck-api/internal/service/deck"
)

// DeckHandler handles deck loading API requests.
type DeckHandler struct {
	deckService deck.DeckService
}

// NewDeckHandler creates a new DeckHandler with the given dependencies.
func NewDeckHandler(deckService deck.DeckService) *DeckHandler {
	return &DeckHandler{
		deckService: deckService,
	}
}

// LoadSample handles POST /api/deck/sample. It replaces the session's
// entries with the built-in sample set.
func (h *DeckHandler) LoadSample(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromRequest(w, r)
	if !ok {
		return
	}

	count, err := h.deckService.LoadSample(r.Context(), sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoadResponse{Count: count})
}

// LoadFromSource handles POST /api/deck/source. It fetches the configured
// spreadsheet and replaces the session's entries atomically; on any failure
// the previous entries stay in place and the error maps to a status code
// naming the failure class.
func (h *DeckHandler) LoadFromSource(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), nil)

	sessionID, ok := sessionIDFromRequest(w, r)
	if !ok {
		return
	}

	count, err := h.deckService.LoadFromSource(r.Context(), sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("deck loaded from source", "session_id", sessionID, "count", count)

	shared.RespondWithJSON(w, r, http.StatusOK, LoadResponse{Count: count})
}
