package domain

// PrizeTier identifies a Mega-Sena prize bracket by its hit count.
type PrizeTier int

// Prize tiers. TierNone means no game reached a paying bracket.
const (
	TierNone   PrizeTier = 0
	TierQuadra PrizeTier = 4
	TierQuina  PrizeTier = 5
	TierSena   PrizeTier = 6
)

// PrizeTiers lists the paying brackets in ascending order.
var PrizeTiers = []PrizeTier{TierQuadra, TierQuina, TierSena}

// Name returns the bracket name, or "" for TierNone.
func (t PrizeTier) Name() string {
	switch t {
	case TierQuadra:
		return "Quadra"
	case TierQuina:
		return "Quina"
	case TierSena:
		return "Sena"
	default:
		return ""
	}
}

// IsPrize reports whether the tier is a paying bracket.
func (t PrizeTier) IsPrize() bool {
	return t >= TierQuadra
}

// GameScore is the per-game outcome of checking one selection.
// HitNumbers is ascending regardless of how the bet was written.
type GameScore struct {
	GameID     string `json:"game_id"`
	SourceID   string `json:"source_id"`
	Numbers    []int  `json:"numbers"`
	HitCount   int    `json:"hit_count"`
	HitNumbers []int  `json:"hit_numbers"`
}

// MatchResult aggregates the outcome of checking every game against one
// selection. Scores and the id lists in WinningGameIDs follow load order
// regardless of any display filter.
type MatchResult struct {
	Scores         []GameScore            `json:"scores"`
	PrizeCounts    map[PrizeTier]int      `json:"prize_counts"`
	WinningGameIDs map[PrizeTier][]string `json:"winning_game_ids"`
	BestTier       PrizeTier              `json:"best_tier"`
}

// SessionView is the snapshot served to the presentation layer after each
// action. Rows respect the hits-only filter; the tallies never do.
type SessionView struct {
	Selection         []int                  `json:"selection"`
	FilterHitsOnly    bool                   `json:"filter_hits_only"`
	TotalGames        int                    `json:"total_games"`
	ShownGames        int                    `json:"shown_games"`
	Rows              []GameScore            `json:"rows"`
	PrizeCounts       map[PrizeTier]int      `json:"prize_counts"`
	WinningGameIDs    map[PrizeTier][]string `json:"winning_game_ids"`
	BestTier          PrizeTier              `json:"best_tier"`
	BestTierName      string                 `json:"best_tier_name,omitempty"`
	LastAnnouncedTier PrizeTier              `json:"last_announced_tier"`
}
