package match

import (
	"testing"

	"github.com/jmadsen/voltduel/internal/log"
)

func firedIndices(fired []FiredPhase) []int {
	var idx []int
	for _, f := range fired {
		idx = append(idx, f.Index)
	}
	return idx
}

// A jump past several thresholds fires each crossed phase once, in
// ascending order, and never the ones beyond the new score.
func TestPhaseJumpFiresInOrder(t *testing.T) {
	pc := NewPhaseController([]PhaseSpec{
		{Threshold: 5, Bonus: 1},
		{Threshold: 10, Bonus: 2},
		{Threshold: 20, Bonus: 3},
	})

	if fired := pc.Check(3); len(fired) != 0 {
		t.Fatalf("score 3: want no phases, got %v", firedIndices(fired))
	}

	fired := pc.Check(12)
	got := firedIndices(fired)
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Fatalf("score 12: want phases [0 1], got %v", got)
	}

	// Neither phase fires again, and phase 2 stays pending.
	if fired := pc.Check(12); len(fired) != 0 {
		t.Errorf("repeat check: want no phases, got %v", firedIndices(fired))
	}
	if fired := pc.Check(19); len(fired) != 0 {
		t.Errorf("score 19: want no phases, got %v", firedIndices(fired))
	}
	if fired := pc.Check(20); len(fired) != 1 || fired[0].Index != 2 {
		t.Errorf("score 20: want phase [2], got %v", firedIndices(fired))
	}
	if pc.Current() != 2 {
		t.Errorf("current phase: want 2, got %d", pc.Current())
	}
}

func TestPhaseBonusGrantedToBoth(t *testing.T) {
	m, logger := newTestMatch(t)

	// 5 combined goals reach the first threshold.
	for i := 0; i < 3; i++ {
		m.QueueGoal(PlayerA)
		m.Advance()
	}
	for i := 0; i < 2; i++ {
		m.QueueGoal(PlayerB)
		m.Advance()
	}

	entered := logger.EventsOfType(log.EventPhaseEntered)
	if len(entered) != 1 {
		t.Fatalf("want 1 PhaseEntered, got %d", len(entered))
	}
	if entered[0].Value != 0 || entered[0].Aux != 10 {
		t.Errorf("PhaseEntered payload: want index 0 bonus 10, got %d/%d", entered[0].Value, entered[0].Aux)
	}
	if got := m.Player(PlayerA).Charge; got != 10 {
		t.Errorf("player A bonus: want 10, got %d", got)
	}
	if got := m.Player(PlayerB).Charge; got != 10 {
		t.Errorf("player B bonus: want 10, got %d", got)
	}
}

func TestPhaseBonusConcederMode(t *testing.T) {
	cfg := testConfig(t)
	cfg.Bonus = BonusConceder
	m := NewMatch(cfg, nil)

	for i := 0; i < 5; i++ {
		m.QueueGoal(PlayerA)
		m.Advance()
	}

	if got := m.Player(PlayerA).Charge; got != 0 {
		t.Errorf("scorer charge in conceder mode: want 0, got %d", got)
	}
	if got := m.Player(PlayerB).Charge; got != 10 {
		t.Errorf("conceder charge: want 10, got %d", got)
	}
}

// A goal and an ability command in the same tick: the phase bonus
// lands before the command step, so the bonus funds the command.
func TestPhaseBonusSpendableSameTick(t *testing.T) {
	m, _ := newTestMatch(t)
	surge := mustID(t, m.Config.Abilities, "Surge") // unlock cost 10

	for i := 0; i < 4; i++ {
		m.QueueGoal(PlayerA)
		m.Advance()
	}
	// Fifth goal crosses threshold 5 (bonus 10); unlock issued the
	// same tick must see the bonus.
	m.QueueGoal(PlayerA)
	m.QueueCommand(Command{Type: CommandUnlock, Player: PlayerB, Ability: surge})
	m.Advance()

	if got := m.Player(PlayerB).State(surge).Tag; got != StateAvailable {
		t.Errorf("unlock funded by same-tick phase bonus: want Available, got %s", got)
	}
	if got := m.Player(PlayerB).Charge; got != 0 {
		t.Errorf("player B charge: want 0 after spending bonus, got %d", got)
	}
}
