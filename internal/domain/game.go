package domain

// Game number constraints
const (
	// NumbersPerGame is how many picks a single game carries
	NumbersPerGame = 6

	// MinNumber is the lowest pickable number
	MinNumber = 1

	// MaxNumber is the highest pickable number
	MaxNumber = 60
)

// Game is one normalized 6-number bet derived from a raw ticket entry.
// Multi-bet tickets are split into one Game per bet; SourceID keeps the
// back-reference to the original ticket for display grouping.
type Game struct {
	ID       string `json:"id"`
	SourceID string `json:"source_id"`
	Numbers  []int  `json:"numbers"`
}
