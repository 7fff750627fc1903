package match

// ChaosScheduler emits timer- and phase-gated environmental events.
// Every event hits both players symmetrically; the scheduler never
// targets one side.
type ChaosScheduler struct {
	catalog *ChaosCatalog
	rng     RandomSource

	// nextFire holds, per periodic spec, the tick of its next firing.
	// Zero means the spec's phase gate has not opened yet.
	nextFire map[ChaosID]Tick

	active []*ActiveChaosEvent
}

// NewChaosScheduler creates a scheduler over the given catalog and
// deterministic random source.
func NewChaosScheduler(catalog *ChaosCatalog, rng RandomSource) *ChaosScheduler {
	return &ChaosScheduler{
		catalog:  catalog,
		rng:      rng,
		nextFire: make(map[ChaosID]Tick),
	}
}

// Active returns the live chaos events. Callers must not mutate.
func (s *ChaosScheduler) Active() []*ActiveChaosEvent {
	return s.active
}

// isLive reports whether an instance of the spec is currently running.
// A spec never stacks: no new instance fires while one is live.
func (s *ChaosScheduler) isLive(id ChaosID) bool {
	for _, e := range s.active {
		if e.Spec.ID == id {
			return true
		}
	}
	return false
}

// TickExpiry retires events whose duration has elapsed, returning the
// expired specs for event emission.
func (s *ChaosScheduler) TickExpiry(tick Tick) []*ChaosSpec {
	var ended []*ChaosSpec
	live := s.active[:0]
	for _, e := range s.active {
		if tick >= e.ExpiresAtTick {
			ended = append(ended, e.Spec)
		} else {
			live = append(live, e)
		}
	}
	s.active = live
	return ended
}

// Evaluate runs one tick of trigger evaluation given the highest phase
// index reached so far (-1 before any phase fires). Returns the events
// that fired this tick.
//
// The probabilistic roll happens for every gated spec on every tick,
// even when suppressed by a live instance, so the RNG stream consumed
// by a replay does not depend on suppression timing.
func (s *ChaosScheduler) Evaluate(tick Tick, phaseIndex int) []*ActiveChaosEvent {
	var fired []*ActiveChaosEvent
	for _, spec := range s.catalog.Specs() {
		if phaseIndex < spec.MinPhaseIndex {
			continue
		}

		trigger := false
		if spec.PeriodTicks > 0 {
			next, open := s.nextFire[spec.ID]
			if !open {
				// Gate just opened: first firing one full period out.
				s.nextFire[spec.ID] = tick + Tick(spec.PeriodTicks)
				continue
			}
			if tick >= next {
				s.nextFire[spec.ID] = next + Tick(spec.PeriodTicks)
				trigger = true
			}
		} else {
			roll := s.rng.Float64()
			trigger = roll < spec.ProbabilityPerTick
		}

		if !trigger || s.isLive(spec.ID) {
			continue
		}
		ev := &ActiveChaosEvent{
			Spec:          spec,
			ExpiresAtTick: tick + Tick(spec.DurationTicks),
		}
		s.active = append(s.active, ev)
		fired = append(fired, ev)
	}
	return fired
}
