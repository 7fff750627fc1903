package match

import "github.com/jmadsen/voltduel/internal/log"

// processCommand executes one player command against the economy
// state. Every command yields either a mutation plus its events or a
// typed rejection event; nothing is dropped silently. Given the same
// ordered command stream and tick sequence, two runs mutate state
// identically.
func (m *Match) processCommand(cmd Command) {
	switch cmd.Type {
	case CommandUnlock:
		m.processUnlock(cmd)
	case CommandActivate:
		m.processActivate(cmd)
	}
}

func (m *Match) processUnlock(cmd Command) {
	p := m.Players[cmd.Player]
	a, err := p.Unlock(m.Config.Abilities, cmd.Ability)
	if err != nil {
		m.reject(cmd, a, err)
		return
	}
	m.log(log.NewAbilityUnlockedEvent(int64(m.Tick), int(cmd.Player), a.Name, a.UnlockCost))
	m.log(log.NewChargeChangedEvent(int64(m.Tick), int(cmd.Player), p.Charge, "unlock "+a.Name))
}

func (m *Match) processActivate(cmd Command) {
	p := m.Players[cmd.Player]
	a, err := p.Activate(m.Config.Abilities, cmd.Ability, m.Tick)
	if err != nil {
		m.reject(cmd, a, err)
		return
	}
	st := p.State(cmd.Ability)
	m.log(log.NewAbilityActivatedEvent(int64(m.Tick), int(cmd.Player), a.Name, int64(st.ExpiresAtTick)))
	m.log(log.NewChargeChangedEvent(int64(m.Tick), int(cmd.Player), p.Charge, "activate "+a.Name))
}

// reject converts a command failure into a user-visible rejection
// event. The ability may be nil when the ID itself was unknown.
func (m *Match) reject(cmd Command, a *Ability, err error) {
	name := "?"
	if a != nil {
		name = a.Name
	}
	m.log(log.NewAbilityRejectedEvent(int64(m.Tick), int(cmd.Player), name, RejectReason(err)))
}
