package match

import "fmt"

// Player holds one side's entire economy state: score, charge balance,
// and the runtime state of every catalog ability. Mutated only through
// the ledger, the phase controller, and the activation engine.
type Player struct {
	ID      PlayerID
	Score   int
	Charge  int
	Ability []AbilityRuntimeState // indexed by AbilityID
}

// NewPlayer creates a player with every ability Locked.
func NewPlayer(id PlayerID, catalog *Catalog) *Player {
	return &Player{
		ID:      id,
		Ability: make([]AbilityRuntimeState, catalog.Count()),
	}
}

// GrantCharge adds charge to the balance, saturating at MaxCharge.
// Returns the new balance.
func (p *Player) GrantCharge(amount int) int {
	p.Charge += amount
	if p.Charge > MaxCharge {
		p.Charge = MaxCharge
	}
	return p.Charge
}

// State returns the runtime state for an ability.
func (p *Player) State(id AbilityID) AbilityRuntimeState {
	return p.Ability[id]
}

// Unlock converts an ability from Locked to Available, paying its
// unlock cost. The rejection order is fixed: ownership before funds.
func (p *Player) Unlock(catalog *Catalog, id AbilityID) (*Ability, error) {
	a, err := catalog.Get(id)
	if err != nil {
		return nil, err
	}
	if p.Ability[id].Tag != StateLocked {
		return a, fmt.Errorf("%w: %s", ErrAlreadyUnlocked, a.Name)
	}
	if p.Charge < a.UnlockCost {
		return a, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientCharge, a.Name, a.UnlockCost, p.Charge)
	}
	p.Charge -= a.UnlockCost
	p.Ability[id] = AbilityRuntimeState{Tag: StateAvailable}
	return a, nil
}

// Activate fires an unlocked ability at the given tick, paying its
// activation cost and marking it Active until tick+effectTicks.
// An OnCooldown state whose readyAtTick has passed counts as Available
// even if TickAbilities has not swept it yet.
func (p *Player) Activate(catalog *Catalog, id AbilityID, tick Tick) (*Ability, error) {
	a, err := catalog.Get(id)
	if err != nil {
		return nil, err
	}
	st := p.Ability[id]
	switch st.Tag {
	case StateLocked:
		return a, fmt.Errorf("%w: %s", ErrNotUnlocked, a.Name)
	case StateActive:
		if tick < st.ExpiresAtTick {
			return a, fmt.Errorf("%w: %s until t%d", ErrAlreadyActive, a.Name, st.ExpiresAtTick)
		}
		// Effect lapsed this tick; the timer sweep has not run yet but
		// the cooldown already counts from the expiry.
		return a, fmt.Errorf("%w: %s ready at t%d", ErrOnCooldown, a.Name, st.ExpiresAtTick+Tick(a.CooldownTicks))
	case StateOnCooldown:
		if tick < st.ReadyAtTick {
			return a, fmt.Errorf("%w: %s ready at t%d", ErrOnCooldown, a.Name, st.ReadyAtTick)
		}
	}
	if p.Charge < a.ActivationCost {
		return a, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientCharge, a.Name, a.ActivationCost, p.Charge)
	}
	p.Charge -= a.ActivationCost
	p.Ability[id] = AbilityRuntimeState{Tag: StateActive, ExpiresAtTick: tick + Tick(a.EffectTicks)}
	return a, nil
}

// TickAbilities advances ability timers for the given tick. Active
// expiry is processed before cooldown readiness, so an ability whose
// effect and cooldown boundaries coincide is never Active and
// Available in the same tick.
func (p *Player) TickAbilities(catalog *Catalog, tick Tick) {
	for id := range p.Ability {
		st := &p.Ability[id]
		if st.Tag == StateActive && tick >= st.ExpiresAtTick {
			a := catalog.abilities[id]
			*st = AbilityRuntimeState{
				Tag:         StateOnCooldown,
				ReadyAtTick: st.ExpiresAtTick + Tick(a.CooldownTicks),
			}
		}
		if st.Tag == StateOnCooldown && tick >= st.ReadyAtTick {
			*st = AbilityRuntimeState{Tag: StateAvailable}
		}
	}
}

// UnlockedCount returns how many abilities the player has unlocked.
func (p *Player) UnlockedCount() int {
	n := 0
	for _, st := range p.Ability {
		if st.Tag != StateLocked {
			n++
		}
	}
	return n
}
