package match

import "testing"

func TestLinearRallyValues(t *testing.T) {
	r := NewRallyState(SequenceLinear)
	for want := 1; want <= 5; want++ {
		got := r.OnHit()
		if got != want {
			t.Errorf("hit %d: want value %d, got %d", want, want, got)
		}
	}
}

func TestFibonacciRallyValues(t *testing.T) {
	r := NewRallyState(SequenceFibonacci)
	want := []int{1, 1, 2, 3, 5, 8, 13, 21}
	for i, w := range want {
		got := r.OnHit()
		if got != w {
			t.Errorf("hit %d: want fib value %d, got %d", i+1, w, got)
		}
	}
}

// Fibonacci awards must be strictly non-decreasing over any rally.
func TestFibonacciNonDecreasing(t *testing.T) {
	r := NewRallyState(SequenceFibonacci)
	prev := 0
	for i := 0; i < 100; i++ {
		v := r.OnHit()
		if v < prev {
			t.Fatalf("hit %d: award %d dropped below previous %d", i+1, v, prev)
		}
		prev = v
	}
}

func TestRallyValueZeroForNoHits(t *testing.T) {
	r := NewRallyState(SequenceLinear)
	if v := r.Value(0); v != 0 {
		t.Errorf("value at hitCount=0: want 0, got %d", v)
	}
}

// Long fibonacci rallies saturate at the charge cap instead of
// overflowing.
func TestFibonacciSaturatesAtCap(t *testing.T) {
	r := NewRallyState(SequenceFibonacci)
	var last int
	for i := 0; i < 200; i++ {
		last = r.OnHit()
	}
	if last != MaxCharge {
		t.Errorf("deep rally award: want cap %d, got %d", MaxCharge, last)
	}
}

// A goal resets the rally count and nothing else.
func TestGoalResetsRallyOnly(t *testing.T) {
	m, _ := newTestMatch(t)
	surge := mustID(t, m.Config.Abilities, "Surge")

	grantHits(m, PlayerA, 4) // 1+2+3+4 = 10 charge
	m.QueueCommand(Command{Type: CommandUnlock, Player: PlayerA, Ability: surge})
	m.Advance()

	charge := m.Player(PlayerA).Charge
	state := m.Player(PlayerA).State(surge)

	m.QueueGoal(PlayerB)
	m.Advance()

	if m.Rally.HitCount != 0 {
		t.Errorf("rally hit count after goal: want 0, got %d", m.Rally.HitCount)
	}
	if got := m.Player(PlayerA).Charge; got != charge {
		t.Errorf("charge after goal: want %d unchanged, got %d", charge, got)
	}
	if got := m.Player(PlayerA).State(surge); got != state {
		t.Errorf("ability state after goal: want %v unchanged, got %v", state, got)
	}
}
