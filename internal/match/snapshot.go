package match

// Snapshot is a value copy of everything that determines future match
// behavior. Two runs fed identical inputs and seeds produce equal
// snapshots; the replay tests compare them directly.
type Snapshot struct {
	Tick       Tick
	Server     PlayerID
	PhaseIndex int
	RallyHits  int
	Over       bool
	Winner     int

	Players [2]PlayerSnapshot
	Chaos   []ChaosSnapshot
}

// PlayerSnapshot captures one side's economy state.
type PlayerSnapshot struct {
	Score   int
	Charge  int
	Ability []AbilityRuntimeState
}

// ChaosSnapshot captures one live chaos event.
type ChaosSnapshot struct {
	Name          string
	ExpiresAtTick Tick
}

// Snapshot copies the current state. The copy shares nothing with the
// live match.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       m.Tick,
		Server:     m.Server,
		PhaseIndex: m.Phases.Current(),
		RallyHits:  m.Rally.HitCount,
		Over:       m.Over,
		Winner:     m.Winner,
	}
	for i, p := range m.Players {
		s.Players[i] = PlayerSnapshot{
			Score:   p.Score,
			Charge:  p.Charge,
			Ability: append([]AbilityRuntimeState(nil), p.Ability...),
		}
	}
	for _, e := range m.Chaos.Active() {
		s.Chaos = append(s.Chaos, ChaosSnapshot{Name: e.Spec.Name, ExpiresAtTick: e.ExpiresAtTick})
	}
	return s
}
