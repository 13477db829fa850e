package session

import "senacheck/internal/domain"

// celebrationGate decides when a best-tier change deserves a fresh
// announcement. It fires exactly once per strict rise above the last
// announced tier and re-arms only after the best tier falls back below
// Quadra. Re-reaching an already announced tier stays silent.
type celebrationGate struct {
	lastAnnounced domain.PrizeTier
}

// observe feeds one evaluation outcome through the gate and reports
// whether a celebration is due.
func (g *celebrationGate) observe(best domain.PrizeTier) bool {
	if !best.IsPrize() {
		g.lastAnnounced = domain.TierNone
		return false
	}

	if best > g.lastAnnounced {
		g.lastAnnounced = best
		return true
	}

	return false
}
