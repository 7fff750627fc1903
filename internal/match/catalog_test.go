package match

import (
	"errors"
	"testing"
)

func TestDefaultCatalogValid(t *testing.T) {
	c := DefaultCatalog()
	if c.Count() == 0 {
		t.Fatal("builtin catalog is empty")
	}
	for _, a := range c.Abilities() {
		got, err := c.Get(a.ID)
		if err != nil {
			t.Errorf("get %q: %v", a.Name, err)
		}
		if got != a {
			t.Errorf("get %q returned a different entry", a.Name)
		}
	}
}

func TestCatalogRejectsBadEntries(t *testing.T) {
	cases := []struct {
		name      string
		abilities []*Ability
	}{
		{"zero unlock cost", []*Ability{
			{Name: "X", Tier: Tier1, UnlockCost: 0, ActivationCost: 1, CooldownTicks: 1, EffectTicks: 1},
			{Name: "Y", Tier: Tier2, UnlockCost: 1, ActivationCost: 1, CooldownTicks: 1, EffectTicks: 1},
			{Name: "Z", Tier: Tier3, UnlockCost: 1, ActivationCost: 1, CooldownTicks: 1, EffectTicks: 1},
		}},
		{"bad tier", []*Ability{
			{Name: "X", Tier: 4, UnlockCost: 1, ActivationCost: 1, CooldownTicks: 1, EffectTicks: 1},
		}},
		{"duplicate names", []*Ability{
			{Name: "X", Tier: Tier1, UnlockCost: 1, ActivationCost: 1, CooldownTicks: 1, EffectTicks: 1},
			{Name: "X", Tier: Tier2, UnlockCost: 1, ActivationCost: 1, CooldownTicks: 1, EffectTicks: 1},
			{Name: "Z", Tier: Tier3, UnlockCost: 1, ActivationCost: 1, CooldownTicks: 1, EffectTicks: 1},
		}},
		{"empty tier", []*Ability{
			{Name: "X", Tier: Tier1, UnlockCost: 1, ActivationCost: 1, CooldownTicks: 1, EffectTicks: 1},
			{Name: "Y", Tier: Tier1, UnlockCost: 1, ActivationCost: 1, CooldownTicks: 1, EffectTicks: 1},
		}},
		{"empty catalog", nil},
	}
	for _, tc := range cases {
		if _, err := NewCatalog(tc.abilities); !errors.Is(err, ErrInvalidCatalogEntry) {
			t.Errorf("%s: want ErrInvalidCatalogEntry, got %v", tc.name, err)
		}
	}
}

func TestChaosCatalogRejectsBadEntries(t *testing.T) {
	cases := []struct {
		name string
		spec *ChaosSpec
	}{
		{"both trigger modes", &ChaosSpec{Name: "X", PeriodTicks: 5, ProbabilityPerTick: 0.5, DurationTicks: 1}},
		{"no trigger mode", &ChaosSpec{Name: "X", DurationTicks: 1}},
		{"probability too high", &ChaosSpec{Name: "X", ProbabilityPerTick: 1.5, DurationTicks: 1}},
		{"zero duration", &ChaosSpec{Name: "X", PeriodTicks: 5}},
		{"phase gate out of range", &ChaosSpec{Name: "X", PeriodTicks: 5, DurationTicks: 1, MinPhaseIndex: 9}},
	}
	for _, tc := range cases {
		if _, err := NewChaosCatalog([]*ChaosSpec{tc.spec}, 3); !errors.Is(err, ErrInvalidCatalogEntry) {
			t.Errorf("%s: want ErrInvalidCatalogEntry, got %v", tc.name, err)
		}
	}
}

func TestBuildConfigFromYAMLEntries(t *testing.T) {
	cf := &ConfigFile{
		Sequence:  "fibonacci",
		BonusMode: "conceder",
		Seed:      99,
		Phases: []PhaseEntry{
			{Threshold: 4, Bonus: 5},
			{Threshold: 8, Bonus: 10},
		},
		Abilities: []AbilityEntry{
			{Name: "Jolt", Tier: 1, UnlockCost: 5, ActivationCost: 2, CooldownTicks: 10, EffectTicks: 5, Effect: "dash"},
			{Name: "Warp", Tier: 2, UnlockCost: 15, ActivationCost: 4, CooldownTicks: 20, EffectTicks: 8, Effect: "portal"},
			{Name: "Nova", Tier: 3, UnlockCost: 40, ActivationCost: 9, CooldownTicks: 40, EffectTicks: 12, Effect: "ball_split"},
		},
		Chaos: []ChaosEntry{
			{Name: "Squall", MinPhase: 1, PeriodTicks: 50, Kind: "speed_surge", DurationTicks: 10},
		},
	}

	cfg, err := BuildConfig(cf)
	if err != nil {
		t.Fatalf("build config: %v", err)
	}
	if cfg.Sequence != SequenceFibonacci {
		t.Errorf("sequence: want Fibonacci, got %s", cfg.Sequence)
	}
	if cfg.Bonus != BonusConceder {
		t.Errorf("bonus mode: want conceder, got %s", cfg.Bonus)
	}
	if cfg.Seed != 99 {
		t.Errorf("seed: want 99, got %d", cfg.Seed)
	}
	if cfg.Abilities.Count() != 3 {
		t.Errorf("abilities: want 3, got %d", cfg.Abilities.Count())
	}
	if a, err := cfg.Abilities.ByName("Warp"); err != nil || a.Effect != EffectPortal {
		t.Errorf("Warp lookup: %v / %v", a, err)
	}
	if len(cfg.Chaos.Specs()) != 1 || cfg.Chaos.Specs()[0].Kind != ChaosSpeedSurge {
		t.Errorf("chaos specs not loaded: %v", cfg.Chaos.Specs())
	}
}

func TestBuildConfigRejections(t *testing.T) {
	cases := []struct {
		name string
		cf   *ConfigFile
	}{
		{"bad sequence", &ConfigFile{Sequence: "geometric"}},
		{"bad bonus mode", &ConfigFile{BonusMode: "winner_takes_all"}},
		{"non-ascending phases", &ConfigFile{Phases: []PhaseEntry{{Threshold: 10}, {Threshold: 5}}}},
		{"bad effect kind", &ConfigFile{Abilities: []AbilityEntry{
			{Name: "X", Tier: 1, UnlockCost: 1, ActivationCost: 1, CooldownTicks: 1, EffectTicks: 1, Effect: "fireball"},
		}}},
		{"bad chaos kind", &ConfigFile{Chaos: []ChaosEntry{
			{Name: "X", PeriodTicks: 5, Kind: "earthquake", DurationTicks: 1},
		}}},
	}
	for _, tc := range cases {
		if _, err := BuildConfig(tc.cf); !errors.Is(err, ErrInvalidCatalogEntry) {
			t.Errorf("%s: want ErrInvalidCatalogEntry, got %v", tc.name, err)
		}
	}
}
