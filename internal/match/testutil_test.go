package match

import (
	"testing"

	"github.com/jmadsen/voltduel/internal/log"
)

// testAbilities is a small catalog with short timers so state
// transitions are easy to step through.
func testAbilities(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog([]*Ability{
		{Name: "Surge", Tier: Tier1, UnlockCost: 10, ActivationCost: 3, CooldownTicks: 5, EffectTicks: 2, Effect: EffectDash},
		{Name: "Hex", Tier: Tier2, UnlockCost: 20, ActivationCost: 5, CooldownTicks: 10, EffectTicks: 4, Effect: EffectPaddleShrinkFoe},
		{Name: "Rift", Tier: Tier3, UnlockCost: 50, ActivationCost: 10, CooldownTicks: 20, EffectTicks: 8, Effect: EffectPortal},
	})
	if err != nil {
		t.Fatalf("test catalog: %v", err)
	}
	return c
}

// testConfig strips chaos out so tests drive pure economy/phase logic.
func testConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Abilities = testAbilities(t)
	cfg.Phases = []PhaseSpec{
		{Threshold: 5, Bonus: 10},
		{Threshold: 10, Bonus: 15},
		{Threshold: 20, Bonus: 25},
	}
	chaos, err := NewChaosCatalog(nil, len(cfg.Phases))
	if err != nil {
		t.Fatalf("empty chaos catalog: %v", err)
	}
	cfg.Chaos = chaos
	return cfg
}

// newTestMatch creates a match over testConfig with a MemoryLogger.
func newTestMatch(t *testing.T) (*Match, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	m := NewMatch(testConfig(t), logger)
	return m, logger
}

// advance runs n ticks.
func advance(m *Match, n int) {
	for i := 0; i < n; i++ {
		m.Advance()
	}
}

// mustID resolves an ability name to its ID.
func mustID(t *testing.T, c *Catalog, name string) AbilityID {
	t.Helper()
	a, err := c.ByName(name)
	if err != nil {
		t.Fatalf("lookup %q: %v", name, err)
	}
	return a.ID
}

// grantHits feeds n rally hits for a player through the queue, one
// tick per hit.
func grantHits(m *Match, player PlayerID, n int) {
	for i := 0; i < n; i++ {
		m.QueueHit(player)
		m.Advance()
	}
}
