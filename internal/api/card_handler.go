package api

import (
	"net/http"

	"github.com/vocadeck/vocadeck-api/internal/api/shared"
	"github.com/vocadeck/vocadeck-api/internal/service/deck"
)

// CardHandler handles card viewing API requests.
type CardHandler struct {
	deckService deck.DeckService
}

// NewCardHandler creates a new CardHandler with the given dependencies.
func NewCardHandler(deckService deck.DeckService) *CardHandler {
	return &CardHandler{
		deckService: deckService,
	}
}

// Draw handles POST /api/cards/draw. It picks a random entry and returns
// its front view. Drawing from an empty store is a conflict, not a crash;
// the current card is left as it was.
func (h *CardHandler) Draw(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromRequest(w, r)
	if !ok {
		return
	}

	view, err := h.deckService.Draw(r.Context(), sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CardResponse{View: view})
}

// Flip handles POST /api/cards/flip. Flipping with nothing drawn is a
// no-op that returns the empty view.
func (h *CardHandler) Flip(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromRequest(w, r)
	if !ok {
		return
	}

	view, err := h.deckService.Flip(r.Context(), sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CardResponse{View: view})
}

// Current handles GET /api/cards/current. It returns the current render
// state without mutating anything.
func (h *CardHandler) Current(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromRequest(w, r)
	if !ok {
		return
	}

	view, err := h.deckService.View(r.Context(), sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CardResponse{View: view})
}
