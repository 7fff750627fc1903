package match

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BonusMode selects who receives the charge bonus when an evolution
// phase fires. The symmetric default follows the "both players enter
// the shop" rule; the asymmetric variants exist as rubber-band options.
type BonusMode int

const (
	BonusBoth BonusMode = iota
	BonusScorer
	BonusConceder
)

func (m BonusMode) String() string {
	switch m {
	case BonusScorer:
		return "scorer"
	case BonusConceder:
		return "conceder"
	default:
		return "both"
	}
}

// PhaseSpec is one evolution threshold: when combined score reaches
// Threshold, the phase fires once and grants Bonus charge.
type PhaseSpec struct {
	Threshold int
	Bonus     int
}

// Config is the full immutable configuration for one match.
type Config struct {
	Abilities *Catalog
	Chaos     *ChaosCatalog
	Phases    []PhaseSpec
	Sequence  SequenceMode
	Bonus     BonusMode

	// Win rules: first to MaxScore, or a mercy win at MercyScore
	// against a scoreless opponent.
	MaxScore   int
	MercyScore int

	// Seed drives the chaos scheduler's deterministic RNG.
	Seed uint64
}

// DefaultConfig returns the builtin configuration: builtin catalogs,
// thresholds 5/10/20/30/50, linear rally sequence, symmetric bonuses,
// first to 11 with mercy at 7-0.
func DefaultConfig() *Config {
	phases := []PhaseSpec{
		{Threshold: 5, Bonus: 10},
		{Threshold: 10, Bonus: 15},
		{Threshold: 20, Bonus: 25},
		{Threshold: 30, Bonus: 40},
		{Threshold: 50, Bonus: 60},
	}
	chaos, err := NewChaosCatalog(DefaultChaosSpecs(), len(phases))
	if err != nil {
		panic(fmt.Sprintf("builtin chaos catalog invalid: %v", err))
	}
	return &Config{
		Abilities:  DefaultCatalog(),
		Chaos:      chaos,
		Phases:     phases,
		Sequence:   SequenceLinear,
		Bonus:      BonusBoth,
		MaxScore:   11,
		MercyScore: 7,
		Seed:       1,
	}
}

// --- YAML schema ---

// ConfigFile represents the top-level YAML structure.
type ConfigFile struct {
	Sequence   string         `yaml:"sequence"` // "linear" | "fibonacci"
	BonusMode  string         `yaml:"bonus_mode,omitempty"`
	MaxScore   int            `yaml:"max_score,omitempty"`
	MercyScore int            `yaml:"mercy_score,omitempty"`
	Seed       uint64         `yaml:"seed,omitempty"`
	Phases     []PhaseEntry   `yaml:"phases"`
	Abilities  []AbilityEntry `yaml:"abilities"`
	Chaos      []ChaosEntry   `yaml:"chaos"`
}

// PhaseEntry is one evolution threshold in the YAML file.
type PhaseEntry struct {
	Threshold int `yaml:"threshold"`
	Bonus     int `yaml:"bonus"`
}

// AbilityEntry is one ability in the YAML file.
type AbilityEntry struct {
	Name           string `yaml:"name"`
	Tier           int    `yaml:"tier"`
	UnlockCost     int    `yaml:"unlock_cost"`
	ActivationCost int    `yaml:"activation_cost"`
	CooldownTicks  int    `yaml:"cooldown_ticks"`
	EffectTicks    int    `yaml:"effect_ticks"`
	Effect         string `yaml:"effect"`
}

// ChaosEntry is one chaos event in the YAML file.
type ChaosEntry struct {
	Name               string  `yaml:"name"`
	MinPhase           int     `yaml:"min_phase"`
	PeriodTicks        int     `yaml:"period_ticks,omitempty"`
	ProbabilityPerTick float64 `yaml:"probability_per_tick,omitempty"`
	Kind               string  `yaml:"kind"`
	DurationTicks      int     `yaml:"duration_ticks"`
}

// LoadConfig parses and validates a YAML match configuration. Sections
// left empty fall back to the builtin defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cf ConfigFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse config YAML: %w", err)
	}
	return BuildConfig(&cf)
}

// BuildConfig converts a parsed ConfigFile into a validated Config.
func BuildConfig(cf *ConfigFile) (*Config, error) {
	cfg := DefaultConfig()

	switch cf.Sequence {
	case "", "linear":
		cfg.Sequence = SequenceLinear
	case "fibonacci":
		cfg.Sequence = SequenceFibonacci
	default:
		return nil, fmt.Errorf("%w: sequence must be linear or fibonacci, got %q", ErrInvalidCatalogEntry, cf.Sequence)
	}

	switch cf.BonusMode {
	case "", "both":
		cfg.Bonus = BonusBoth
	case "scorer":
		cfg.Bonus = BonusScorer
	case "conceder":
		cfg.Bonus = BonusConceder
	default:
		return nil, fmt.Errorf("%w: bonus_mode must be both, scorer, or conceder, got %q", ErrInvalidCatalogEntry, cf.BonusMode)
	}

	if cf.MaxScore > 0 {
		cfg.MaxScore = cf.MaxScore
	}
	if cf.MercyScore > 0 {
		cfg.MercyScore = cf.MercyScore
	}
	if cf.Seed != 0 {
		cfg.Seed = cf.Seed
	}

	if len(cf.Phases) > 0 {
		var phases []PhaseSpec
		prev := 0
		for i, p := range cf.Phases {
			if p.Threshold <= prev {
				return nil, fmt.Errorf("%w: phase %d threshold %d not strictly ascending", ErrInvalidCatalogEntry, i, p.Threshold)
			}
			if p.Bonus < 0 {
				return nil, fmt.Errorf("%w: phase %d bonus must be non-negative", ErrInvalidCatalogEntry, i)
			}
			prev = p.Threshold
			phases = append(phases, PhaseSpec{Threshold: p.Threshold, Bonus: p.Bonus})
		}
		cfg.Phases = phases
	}

	if len(cf.Abilities) > 0 {
		var abilities []*Ability
		for _, e := range cf.Abilities {
			kind, err := ParseEffectKind(e.Effect)
			if err != nil {
				return nil, fmt.Errorf("%w: ability %q: %v", ErrInvalidCatalogEntry, e.Name, err)
			}
			abilities = append(abilities, &Ability{
				Name:           e.Name,
				Tier:           Tier(e.Tier),
				UnlockCost:     e.UnlockCost,
				ActivationCost: e.ActivationCost,
				CooldownTicks:  e.CooldownTicks,
				EffectTicks:    e.EffectTicks,
				Effect:         kind,
			})
		}
		catalog, err := NewCatalog(abilities)
		if err != nil {
			return nil, err
		}
		cfg.Abilities = catalog
	}

	// Chaos specs validate against the effective phase count, so they
	// are rebuilt even when only the phases changed.
	specs := DefaultChaosSpecs()
	if len(cf.Chaos) > 0 {
		specs = specs[:0]
		for _, e := range cf.Chaos {
			kind, err := ParseChaosKind(e.Kind)
			if err != nil {
				return nil, fmt.Errorf("%w: chaos %q: %v", ErrInvalidCatalogEntry, e.Name, err)
			}
			specs = append(specs, &ChaosSpec{
				Name:               e.Name,
				MinPhaseIndex:      e.MinPhase,
				PeriodTicks:        e.PeriodTicks,
				ProbabilityPerTick: e.ProbabilityPerTick,
				Kind:               kind,
				DurationTicks:      e.DurationTicks,
			})
		}
	}
	chaos, err := NewChaosCatalog(specs, len(cfg.Phases))
	if err != nil {
		return nil, err
	}
	cfg.Chaos = chaos

	return cfg, nil
}
