package match

// PhaseController fires evolution phases as the combined score crosses
// the configured thresholds. Each phase fires exactly once, and always
// in ascending order: a jump past several thresholds fires them all in
// the same update, earliest first.
type PhaseController struct {
	phases    []PhaseSpec
	triggered []bool
	current   int // highest fired phase index, -1 before the first
}

// NewPhaseController creates a controller over ascending thresholds.
func NewPhaseController(phases []PhaseSpec) *PhaseController {
	return &PhaseController{
		phases:    phases,
		triggered: make([]bool, len(phases)),
		current:   -1,
	}
}

// Current returns the highest phase index reached, -1 if none.
func (pc *PhaseController) Current() int {
	return pc.current
}

// Count returns the number of configured phases.
func (pc *PhaseController) Count() int {
	return len(pc.phases)
}

// FiredPhase reports one phase transition from a Check call.
type FiredPhase struct {
	Index int
	Bonus int
}

// Check fires every untriggered phase whose threshold the combined
// score has reached, in order, and returns them.
func (pc *PhaseController) Check(combinedScore int) []FiredPhase {
	var fired []FiredPhase
	for i := pc.current + 1; i < len(pc.phases); i++ {
		if combinedScore < pc.phases[i].Threshold {
			break
		}
		pc.triggered[i] = true
		pc.current = i
		fired = append(fired, FiredPhase{Index: i, Bonus: pc.phases[i].Bonus})
	}
	return fired
}
