package engine

import (
	"sort"

	"senacheck/internal/domain"
)

// Evaluate scores every game against the selection and tallies prizes.
// Scores keep the games' load order. PrizeCounts always carries explicit
// entries for Quadra, Quina and Sena, zero included, so renderers never
// probe for missing keys. WinningGameIDs lists winners per tier in load
// order. BestTier is the highest tier with at least one winner, TierNone
// when nothing reached Quadra.
func Evaluate(games []domain.Game, sel domain.Selection) domain.MatchResult {
	scores := make([]domain.GameScore, 0, len(games))
	prizeCounts := map[domain.PrizeTier]int{
		domain.TierQuadra: 0,
		domain.TierQuina:  0,
		domain.TierSena:   0,
	}
	winners := make(map[domain.PrizeTier][]string)
	best := domain.TierNone

	for _, g := range games {
		hits := hitNumbers(g.Numbers, sel)
		scores = append(scores, domain.GameScore{
			GameID:     g.ID,
			SourceID:   g.SourceID,
			Numbers:    g.Numbers,
			HitCount:   len(hits),
			HitNumbers: hits,
		})

		tier := domain.PrizeTier(len(hits))
		if !tier.IsPrize() {
			continue
		}
		prizeCounts[tier]++
		winners[tier] = append(winners[tier], g.ID)
		if tier > best {
			best = tier
		}
	}

	return domain.MatchResult{
		Scores:         scores,
		PrizeCounts:    prizeCounts,
		WinningGameIDs: winners,
		BestTier:       best,
	}
}

// BuildRows shapes per-game scores for display. With the filter on, only
// games with at least one hit remain, ordered by hit count descending;
// ties keep load order. With the filter off, the scores pass through in
// load order untouched.
func BuildRows(scores []domain.GameScore, filterHitsOnly bool) []domain.GameScore {
	if !filterHitsOnly {
		return scores
	}

	rows := make([]domain.GameScore, 0, len(scores))
	for _, s := range scores {
		if s.HitCount > 0 {
			rows = append(rows, s)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].HitCount > rows[j].HitCount
	})
	return rows
}

// hitNumbers returns the game numbers present in the selection, ascending.
func hitNumbers(numbers []int, sel domain.Selection) []int {
	hits := make([]int, 0, domain.NumbersPerGame)
	for _, n := range numbers {
		if sel.Has(n) {
			hits = append(hits, n)
		}
	}
	sort.Ints(hits)
	return hits
}
