package match

import (
	"errors"
	"testing"
)

func TestUnlockDeductsCharge(t *testing.T) {
	c := testAbilities(t)
	p := NewPlayer(PlayerA, c)
	p.GrantCharge(25)

	surge := mustID(t, c, "Surge")
	if _, err := p.Unlock(c, surge); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if p.Charge != 15 {
		t.Errorf("charge after unlock: want 15, got %d", p.Charge)
	}
	if got := p.State(surge).Tag; got != StateAvailable {
		t.Errorf("state after unlock: want Available, got %s", got)
	}
}

func TestUnlockRejections(t *testing.T) {
	c := testAbilities(t)
	p := NewPlayer(PlayerA, c)

	surge := mustID(t, c, "Surge")
	if _, err := p.Unlock(c, surge); !errors.Is(err, ErrInsufficientCharge) {
		t.Errorf("broke unlock: want ErrInsufficientCharge, got %v", err)
	}
	p.GrantCharge(100)
	if _, err := p.Unlock(c, surge); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if _, err := p.Unlock(c, surge); !errors.Is(err, ErrAlreadyUnlocked) {
		t.Errorf("double unlock: want ErrAlreadyUnlocked, got %v", err)
	}
	if _, err := p.Unlock(c, AbilityID(99)); !errors.Is(err, ErrUnknownAbility) {
		t.Errorf("bogus id: want ErrUnknownAbility, got %v", err)
	}
}

// Unlock and activation costs are independent economies: draining the
// balance on the unlock leaves nothing for the activation.
func TestUnlockThenActivateInsufficient(t *testing.T) {
	c := testAbilities(t)
	p := NewPlayer(PlayerA, c)
	p.GrantCharge(10)

	surge := mustID(t, c, "Surge") // unlock 10, activate 3
	if _, err := p.Unlock(c, surge); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if p.Charge != 0 {
		t.Fatalf("charge after unlock: want 0, got %d", p.Charge)
	}
	if _, err := p.Activate(c, surge, 0); !errors.Is(err, ErrInsufficientCharge) {
		t.Errorf("activate on empty balance: want ErrInsufficientCharge, got %v", err)
	}
}

func TestActivateRejections(t *testing.T) {
	c := testAbilities(t)
	p := NewPlayer(PlayerA, c)
	p.GrantCharge(100)

	surge := mustID(t, c, "Surge")
	if _, err := p.Activate(c, surge, 0); !errors.Is(err, ErrNotUnlocked) {
		t.Errorf("locked activate: want ErrNotUnlocked, got %v", err)
	}
	if _, err := p.Unlock(c, surge); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if _, err := p.Activate(c, surge, 10); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if _, err := p.Activate(c, surge, 11); !errors.Is(err, ErrAlreadyActive) {
		t.Errorf("re-activate while live: want ErrAlreadyActive, got %v", err)
	}
	// Effect expires at 12, cooldown 5 runs to 17.
	if _, err := p.Activate(c, surge, 13); !errors.Is(err, ErrOnCooldown) {
		t.Errorf("activate during cooldown: want ErrOnCooldown, got %v", err)
	}
}

// Activation on an unlocked, ready, funded ability succeeds and costs
// exactly the activation cost.
func TestActivateDeductsExactly(t *testing.T) {
	c := testAbilities(t)
	p := NewPlayer(PlayerA, c)
	p.GrantCharge(40)

	hex := mustID(t, c, "Hex") // unlock 20, activate 5
	if _, err := p.Unlock(c, hex); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	before := p.Charge
	if _, err := p.Activate(c, hex, 0); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if p.Charge != before-5 {
		t.Errorf("charge after activation: want %d, got %d", before-5, p.Charge)
	}
}

// Cooldown 5, effect 2, activated at tick 100: Active until 102,
// OnCooldown until 107, Available at 107 and after.
func TestAbilityTimeline(t *testing.T) {
	c := testAbilities(t)
	p := NewPlayer(PlayerA, c)
	p.GrantCharge(50)

	surge := mustID(t, c, "Surge")
	if _, err := p.Unlock(c, surge); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if _, err := p.Activate(c, surge, 100); err != nil {
		t.Fatalf("activate: %v", err)
	}

	wantTag := func(tick Tick, want AbilityStateTag) {
		t.Helper()
		p.TickAbilities(c, tick)
		if got := p.State(surge).Tag; got != want {
			t.Errorf("tick %d: want %s, got %s", tick, want, got)
		}
	}

	wantTag(100, StateActive)
	wantTag(101, StateActive)
	wantTag(102, StateOnCooldown)
	wantTag(106, StateOnCooldown)
	wantTag(107, StateAvailable)
	wantTag(108, StateAvailable)
}

// An OnCooldown slot whose ready tick has passed activates without
// waiting for the timer sweep.
func TestActivateAfterCooldownWithoutSweep(t *testing.T) {
	c := testAbilities(t)
	p := NewPlayer(PlayerA, c)
	p.GrantCharge(50)

	surge := mustID(t, c, "Surge")
	if _, err := p.Unlock(c, surge); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if _, err := p.Activate(c, surge, 100); err != nil {
		t.Fatalf("activate: %v", err)
	}
	p.TickAbilities(c, 102) // Active → OnCooldown(ready 107)

	if _, err := p.Activate(c, surge, 107); err != nil {
		t.Errorf("activate at ready tick: %v", err)
	}
}
