package match

// MaxCharge caps a player's balance. Fibonacci rallies grow fast; the
// cap keeps long volleys from overflowing the economy.
const MaxCharge = 9999

// RallyState tracks the current rally and converts sustained volleys
// into charge. Reset to zero hits after every goal.
type RallyState struct {
	HitCount int
	Mode     SequenceMode

	fib []int // memoized fibonacci values, 1-indexed via fib[n-1]
}

// NewRallyState creates a rally ledger with the given escalation mode.
func NewRallyState(mode SequenceMode) *RallyState {
	return &RallyState{Mode: mode, fib: []int{1, 1}}
}

// OnHit records a return and reports the charge value for it.
// Linear mode awards the hit count itself; Fibonacci mode awards
// fib(hitCount) with fib(1)=fib(2)=1. Never fails.
func (r *RallyState) OnHit() int {
	r.HitCount++
	return r.Value(r.HitCount)
}

// OnGoal resets the rally. Charge balances and ability states are
// untouched; a goal only ends the volley.
func (r *RallyState) OnGoal() {
	r.HitCount = 0
}

// Value returns the charge awarded for the nth hit of a rally.
// n <= 0 awards nothing.
func (r *RallyState) Value(n int) int {
	if n <= 0 {
		return 0
	}
	if r.Mode == SequenceLinear {
		return min(n, MaxCharge)
	}
	for len(r.fib) < n {
		next := r.fib[len(r.fib)-1] + r.fib[len(r.fib)-2]
		if next > MaxCharge {
			next = MaxCharge
		}
		r.fib = append(r.fib, next)
	}
	return r.fib[n-1]
}
