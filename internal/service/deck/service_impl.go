package deck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vocadeck/vocadeck-api/internal/domain"
	"github.com/vocadeck/vocadeck-api/internal/platform/logger"
	"github.com/vocadeck/vocadeck-api/internal/source"
	"github.com/vocadeck/vocadeck-api/internal/store"
)

// Verify interface compliance at compile time
var _ DeckService = (*deckServiceImpl)(nil)

// deckServiceImpl implements the DeckService interface.
type deckServiceImpl struct {
	sessions store.SessionStore
	src      source.Source // nil when no external source is configured
	logger   *slog.Logger
}

// NewDeckService creates a new DeckService implementation. src may be nil;
// LoadFromSource then reports ErrNoSource.
func NewDeckService(
	sessions store.SessionStore,
	src source.Source,
	logger *slog.Logger,
) DeckService {
	if sessions == nil {
		panic("sessions cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &deckServiceImpl{
		sessions: sessions,
		src:      src,
		logger:   logger.With(slog.String("component", "deck_service")),
	}
}

// LoadSample implements DeckService.LoadSample.
func (s *deckServiceImpl) LoadSample(ctx context.Context, sessionID uuid.UUID) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	session, err := s.session(sessionID)
	if err != nil {
		return 0, err
	}

	session.Lock()
	defer session.Unlock()

	session.Vocabulary.LoadSample()
	count := session.Vocabulary.Len()

	log.Info("sample entries loaded",
		slog.String("session_id", sessionID.String()),
		slog.Int("count", count))
	return count, nil
}

// LoadFromSource implements DeckService.LoadFromSource. The fetch and the
// record conversion both happen before the store is touched, so a failure
// at any point leaves the previous entries in place.
func (s *deckServiceImpl) LoadFromSource(ctx context.Context, sessionID uuid.UUID) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	session, err := s.session(sessionID)
	if err != nil {
		return 0, err
	}

	if s.src == nil {
		log.Warn("external source load requested but none configured",
			slog.String("session_id", sessionID.String()))
		return 0, ErrNoSource
	}

	session.Lock()
	defer session.Unlock()

	records, err := s.src.FetchRecords(ctx)
	if err != nil {
		log.Warn("source fetch failed",
			slog.String("session_id", sessionID.String()),
			slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to fetch records: %w", err)
	}

	if len(records) == 0 {
		log.Warn("source returned no records",
			slog.String("session_id", sessionID.String()))
		return 0, source.ErrEmptyResult
	}

	// All-or-nothing: one malformed record aborts the whole load.
	entries := make([]domain.Entry, 0, len(records))
	for i, rec := range records {
		entry, err := domain.EntryFromRecord(rec)
		if err != nil {
			log.Warn("record conversion failed",
				slog.String("session_id", sessionID.String()),
				slog.Int("record_index", i),
				slog.String("error", err.Error()))
			return 0, fmt.Errorf("record %d: %w", i, err)
		}
		entries = append(entries, entry)
	}

	if err := session.Vocabulary.ReplaceAll(entries); err != nil {
		return 0, NewLoadError("failed to replace entries", err)
	}

	log.Info("entries loaded from external source",
		slog.String("session_id", sessionID.String()),
		slog.Int("count", len(entries)))
	return len(entries), nil
}

// Draw implements DeckService.Draw.
func (s *deckServiceImpl) Draw(ctx context.Context, sessionID uuid.UUID) (domain.CardView, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	session, err := s.session(sessionID)
	if err != nil {
		return domain.CardView{}, err
	}

	session.Lock()
	defer session.Unlock()

	entry, ok := session.Vocabulary.PickRandom()
	if !ok {
		log.Debug("draw attempted on empty store",
			slog.String("session_id", sessionID.String()))
		return domain.CardView{}, ErrNoEntries
	}

	session.Card.DrawNew(entry)

	log.Debug("entry drawn",
		slog.String("session_id", sessionID.String()),
		slog.String("word", entry.Word))
	return session.Card.CurrentView(), nil
}

// Flip implements DeckService.Flip.
func (s *deckServiceImpl) Flip(ctx context.Context, sessionID uuid.UUID) (domain.CardView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return domain.CardView{}, err
	}

	session.Lock()
	defer session.Unlock()

	session.Card.Flip()
	return session.Card.CurrentView(), nil
}

// View implements DeckService.View.
func (s *deckServiceImpl) View(ctx context.Context, sessionID uuid.UUID) (domain.CardView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return domain.CardView{}, err
	}

	session.Lock()
	defer session.Unlock()

	return session.Card.CurrentView(), nil
}

// session resolves a session ID, mapping the store error onto the service
// sentinel.
func (s *deckServiceImpl) session(sessionID uuid.UUID) (*store.Session, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	return session, nil
}
