package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"senacheck/internal/domain"
)

func TestCelebrationGate_FiresOncePerStrictRise(t *testing.T) {
	var gate celebrationGate

	// Best-tier sequence with one rise to Quadra, a repeat, a jump to
	// Sena, then a fall back to Quina. Only the two rises fire.
	sequence := []domain.PrizeTier{
		domain.TierNone,
		domain.TierQuadra,
		domain.TierQuadra,
		domain.TierSena,
		domain.TierQuina,
	}
	want := []bool{false, true, false, true, false}

	for i, best := range sequence {
		assert.Equal(t, want[i], gate.observe(best), "step %d (best=%d)", i, best)
	}
}

func TestCelebrationGate_ResetsAfterDip(t *testing.T) {
	var gate celebrationGate

	assert.True(t, gate.observe(domain.TierQuadra), "first Quadra fires")
	assert.False(t, gate.observe(domain.TierNone), "dip never fires")
	assert.True(t, gate.observe(domain.TierQuadra), "Quadra fires again after a dip")
}

func TestCelebrationGate_NoRefireOnRereach(t *testing.T) {
	var gate celebrationGate

	assert.True(t, gate.observe(domain.TierSena))
	assert.False(t, gate.observe(domain.TierQuina), "falling to Quina stays silent")
	assert.False(t, gate.observe(domain.TierSena), "re-reaching Sena without a dip stays silent")
}

func TestCelebrationGate_SkipsTiersOnDirectHit(t *testing.T) {
	var gate celebrationGate

	assert.True(t, gate.observe(domain.TierSena), "jumping straight to Sena fires once")
	assert.False(t, gate.observe(domain.TierQuadra))
	assert.False(t, gate.observe(domain.TierQuina))
}
