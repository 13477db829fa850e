package engine

import (
	"github.com/hashicorp/golang-lru/v2/expirable"

	"senacheck/internal/domain"
	"senacheck/internal/metrics"
)

// Service evaluates number selections against a fixed set of loaded games.
type Service interface {
	// Evaluate returns the match result for the selection. Results are
	// memoized per selection and shared between callers, so they must be
	// treated as read-only.
	Evaluate(sel domain.Selection) domain.MatchResult

	// Games returns the loaded games in load order.
	Games() []domain.Game
}

type service struct {
	games []domain.Game
	memo  *expirable.LRU[domain.Selection, domain.MatchResult]
}

// NewService creates an evaluation service over a fixed set of games.
// The selection bitmask is the cache key, which is only sound because the
// game set never changes after load.
func NewService(games []domain.Game) Service {
	return &service{
		games: games,
		memo:  expirable.NewLRU[domain.Selection, domain.MatchResult](EvaluationCacheSize, nil, EvaluationCacheTTL),
	}
}

func (s *service) Evaluate(sel domain.Selection) domain.MatchResult {
	if result, found := s.memo.Get(sel); found {
		metrics.EngineEvaluations.WithLabelValues(metrics.CacheOutcomeHit).Inc()
		return result
	}

	result := Evaluate(s.games, sel)
	s.memo.Add(sel, result)
	metrics.EngineEvaluations.WithLabelValues(metrics.CacheOutcomeMiss).Inc()
	return result
}

func (s *service) Games() []domain.Game {
	return s.games
}
