package match

import (
	"fmt"
	"strings"
)

// Catalog is the immutable ability definition table for a match.
// AbilityIDs are dense slice indices, assigned in catalog order.
type Catalog struct {
	abilities []*Ability
	byName    map[string]AbilityID
}

// NewCatalog builds and validates a catalog from ability definitions.
// Validation failures wrap ErrInvalidCatalogEntry and are fatal: a
// match never starts with a malformed catalog.
func NewCatalog(abilities []*Ability) (*Catalog, error) {
	var errs []string
	byName := make(map[string]AbilityID, len(abilities))
	tiers := make(map[Tier]int)

	if len(abilities) == 0 {
		errs = append(errs, "catalog is empty")
	}
	for i, a := range abilities {
		a.ID = AbilityID(i)
		if a.Name == "" {
			errs = append(errs, fmt.Sprintf("ability %d has no name", i))
			continue
		}
		if _, dup := byName[a.Name]; dup {
			errs = append(errs, fmt.Sprintf("duplicate ability name %q", a.Name))
		}
		byName[a.Name] = a.ID
		if a.Tier < Tier1 || a.Tier > Tier3 {
			errs = append(errs, fmt.Sprintf("%s: tier must be 1-3, got %d", a.Name, a.Tier))
		}
		tiers[a.Tier]++
		if a.UnlockCost <= 0 {
			errs = append(errs, fmt.Sprintf("%s: unlock_cost must be positive", a.Name))
		}
		if a.ActivationCost <= 0 {
			errs = append(errs, fmt.Sprintf("%s: activation_cost must be positive", a.Name))
		}
		if a.CooldownTicks <= 0 {
			errs = append(errs, fmt.Sprintf("%s: cooldown_ticks must be positive", a.Name))
		}
		if a.EffectTicks <= 0 {
			errs = append(errs, fmt.Sprintf("%s: effect_ticks must be positive", a.Name))
		}
	}
	for t := Tier1; t <= Tier3; t++ {
		if len(abilities) > 0 && tiers[t] == 0 {
			errs = append(errs, fmt.Sprintf("tier %d has no abilities", t))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalogEntry, strings.Join(errs, "; "))
	}
	return &Catalog{abilities: abilities, byName: byName}, nil
}

// DefaultCatalog returns the builtin catalog. The builtin set always
// validates; a failure here is a programming error.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultAbilities())
	if err != nil {
		panic(fmt.Sprintf("builtin ability catalog invalid: %v", err))
	}
	return c
}

// Get looks up an ability by ID.
func (c *Catalog) Get(id AbilityID) (*Ability, error) {
	if id < 0 || int(id) >= len(c.abilities) {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownAbility, id)
	}
	return c.abilities[id], nil
}

// ByName looks up an ability by its catalog name.
func (c *Catalog) ByName(name string) (*Ability, error) {
	id, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAbility, name)
	}
	return c.abilities[id], nil
}

// Count returns the number of abilities in the catalog.
func (c *Catalog) Count() int {
	return len(c.abilities)
}

// Abilities returns the catalog entries in ID order. Callers must not
// mutate them.
func (c *Catalog) Abilities() []*Ability {
	return c.abilities
}

// ChaosCatalog is the immutable chaos event table for a match.
type ChaosCatalog struct {
	specs []*ChaosSpec
}

// NewChaosCatalog builds and validates a chaos catalog. Each spec must
// carry exactly one trigger mode: periodic or probabilistic.
func NewChaosCatalog(specs []*ChaosSpec, phaseCount int) (*ChaosCatalog, error) {
	var errs []string
	seen := make(map[string]bool, len(specs))

	for i, s := range specs {
		s.ID = ChaosID(i)
		if s.Name == "" {
			errs = append(errs, fmt.Sprintf("chaos spec %d has no name", i))
			continue
		}
		if seen[s.Name] {
			errs = append(errs, fmt.Sprintf("duplicate chaos name %q", s.Name))
		}
		seen[s.Name] = true
		periodic := s.PeriodTicks > 0
		probabilistic := s.ProbabilityPerTick > 0
		if periodic == probabilistic {
			errs = append(errs, fmt.Sprintf("%s: exactly one of period_ticks or probability_per_tick required", s.Name))
		}
		if probabilistic && s.ProbabilityPerTick >= 1 {
			errs = append(errs, fmt.Sprintf("%s: probability_per_tick must be in (0,1)", s.Name))
		}
		if s.DurationTicks <= 0 {
			errs = append(errs, fmt.Sprintf("%s: duration_ticks must be positive", s.Name))
		}
		if s.MinPhaseIndex < 0 || s.MinPhaseIndex >= phaseCount {
			errs = append(errs, fmt.Sprintf("%s: min_phase_index must be in [0,%d)", s.Name, phaseCount))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalogEntry, strings.Join(errs, "; "))
	}
	return &ChaosCatalog{specs: specs}, nil
}

// Specs returns the chaos entries in ID order.
func (c *ChaosCatalog) Specs() []*ChaosSpec {
	return c.specs
}
