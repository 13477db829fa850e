package session

import (
	"context"
	"fmt"
	"sync"

	"senacheck/internal/domain"
	"senacheck/internal/engine"
	"senacheck/internal/event"
	"senacheck/internal/logger"
	"senacheck/internal/metrics"
)

// Service owns the single checking session: the drawn-number selection,
// the hits-only filter, and the celebration gate. Every method completes
// one action in full under one lock, so observers only ever see settled
// states.
type Service interface {
	// View returns the current session snapshot without mutating anything.
	View(ctx context.Context) domain.SessionView

	// Toggle flips one drawn number. Adding an absent number to a full
	// selection is a silent no-op; removing a present number is always
	// allowed. Out-of-range numbers are an error.
	Toggle(ctx context.Context, number int) (domain.SessionView, error)

	// Clear empties the selection. The hits-only filter is untouched.
	Clear(ctx context.Context) domain.SessionView

	// SetFilter switches the hits-only display filter.
	SetFilter(ctx context.Context, enabled bool) domain.SessionView

	// Games returns the loaded games in load order.
	Games(ctx context.Context) []domain.Game

	// CheckHealth reports whether the service can answer queries.
	CheckHealth(ctx context.Context) error
}

type service struct {
	mu sync.Mutex

	engine engine.Service
	bus    event.Bus

	selection      domain.Selection
	filterHitsOnly bool
	gate           celebrationGate
}

// NewService creates the session service. The bus receives one
// session.updated event per completed mutation, plus celebration.fired
// and selection.rejected events as those situations arise.
func NewService(eng engine.Service, bus event.Bus) Service {
	return &service{
		engine: eng,
		bus:    bus,
	}
}

func (s *service) View(ctx context.Context) domain.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.buildViewLocked(s.engine.Evaluate(s.selection))
}

func (s *service) Toggle(ctx context.Context, number int) (domain.SessionView, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if number < domain.MinNumber || number > domain.MaxNumber {
		return domain.SessionView{}, fmt.Errorf("%w: %d", domain.ErrNumberOutOfRange, number)
	}

	log.Info(LogMsgToggleCalled, "number", number, "selected", s.selection.Size())

	switch {
	case s.selection.Has(number):
		s.selection = s.selection.Remove(number)
	case s.selection.Size() >= domain.MaxSelectionSize:
		// Full board: refuse the add but complete without error so the
		// caller still gets the settled view.
		log.Info(LogMsgToggleRejectedFull, "number", number)
		s.publish(ctx, event.NewSelectionRejectedEvent(number, event.ReasonSelectionFull))
		return s.buildViewLocked(s.engine.Evaluate(s.selection)), nil
	default:
		s.selection = s.selection.Add(number)
	}

	return s.completeActionLocked(ctx, event.ActionToggle), nil
}

func (s *service) Clear(ctx context.Context) domain.SessionView {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	log.Info(LogMsgSelectionCleared, "had_selected", s.selection.Size())
	s.selection = domain.Selection(0)

	return s.completeActionLocked(ctx, event.ActionClear)
}

func (s *service) SetFilter(ctx context.Context, enabled bool) domain.SessionView {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	log.Info(LogMsgFilterSet, "enabled", enabled)
	s.filterHitsOnly = enabled

	return s.completeActionLocked(ctx, event.ActionFilter)
}

func (s *service) Games(ctx context.Context) []domain.Game {
	return s.engine.Games()
}

func (s *service) CheckHealth(ctx context.Context) error {
	if len(s.engine.Games()) == 0 {
		return domain.ErrNoTicketsDefined
	}
	return nil
}

// completeActionLocked runs the shared tail of every mutation: evaluate,
// feed the gate, build the view, then publish. The session.updated event
// goes out before any celebration so observers render the new state first.
func (s *service) completeActionLocked(ctx context.Context, action string) domain.SessionView {
	result := s.engine.Evaluate(s.selection)

	fire := s.gate.observe(result.BestTier)
	view := s.buildViewLocked(result)

	s.publish(ctx, event.NewSessionUpdatedEvent(action, view))
	if fire {
		logger.FromContext(ctx).Info(LogMsgCelebrationFired,
			"tier", result.BestTier.Name(),
			"winners", result.WinningGameIDs[result.BestTier])
		s.publish(ctx, event.NewCelebrationEvent(result.BestTier, result.WinningGameIDs[result.BestTier]))
	}

	return view
}

func (s *service) buildViewLocked(result domain.MatchResult) domain.SessionView {
	rows := engine.BuildRows(result.Scores, s.filterHitsOnly)

	return domain.SessionView{
		Selection:         s.selection.Numbers(),
		FilterHitsOnly:    s.filterHitsOnly,
		TotalGames:        len(result.Scores),
		ShownGames:        len(rows),
		Rows:              rows,
		PrizeCounts:       result.PrizeCounts,
		WinningGameIDs:    result.WinningGameIDs,
		BestTier:          result.BestTier,
		BestTierName:      result.BestTier.Name(),
		LastAnnouncedTier: s.gate.lastAnnounced,
	}
}

// publish sends an event to the bus and logs failures without failing
// the action. Publishing happens under the session lock, which keeps
// event order identical to action order.
func (s *service) publish(ctx context.Context, e event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(string(e.Type)).Inc()
		logger.FromContext(ctx).Error(LogMsgEventPublishFailed, "error", err, "event_type", string(e.Type))
	}
}
