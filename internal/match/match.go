package match

import (
	"fmt"

	"github.com/jmadsen/voltduel/internal/log"
)

// inboundKind tags queued collision/scoring events from the physics
// collaborator.
type inboundKind int

const (
	inboundHit inboundKind = iota
	inboundGoal
)

type inboundEvent struct {
	kind   inboundKind
	player PlayerID // hitter for hits, scorer for goals
}

// Match is the rules core for one duel session. All mutation happens
// inside Advance, driven single-threaded by the external game loop;
// collaborators queue inbound events and read published events and
// snapshots.
type Match struct {
	Config  *Config
	Players [2]*Player
	Rally   *RallyState
	Phases  *PhaseController
	Chaos   *ChaosScheduler
	Logger  log.EventLogger

	Tick   Tick
	Server PlayerID // who serves the next ball; loser of the last point

	Over   bool
	Winner int // 0, 1, or -1 while undecided
	Result string

	inbound    []inboundEvent
	commands   []Command
	lastScorer PlayerID
}

// NewMatch creates a fresh match from a validated config.
func NewMatch(cfg *Config, logger log.EventLogger) *Match {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	return &Match{
		Config: cfg,
		Players: [2]*Player{
			NewPlayer(PlayerA, cfg.Abilities),
			NewPlayer(PlayerB, cfg.Abilities),
		},
		Rally:  NewRallyState(cfg.Sequence),
		Phases: NewPhaseController(cfg.Phases),
		Chaos:  NewChaosScheduler(cfg.Chaos, NewSeededRNG(cfg.Seed)),
		Logger: logger,
		Winner: -1,
	}
}

// Player returns the state for one side.
func (m *Match) Player(id PlayerID) *Player {
	return m.Players[id]
}

// CombinedScore returns scoreA + scoreB, the phase-driving quantity.
func (m *Match) CombinedScore() int {
	return m.Players[PlayerA].Score + m.Players[PlayerB].Score
}

// QueueHit records a paddle return for processing on the next tick.
func (m *Match) QueueHit(player PlayerID) {
	m.inbound = append(m.inbound, inboundEvent{kind: inboundHit, player: player})
}

// QueueGoal records a goal for processing on the next tick.
func (m *Match) QueueGoal(scorer PlayerID) {
	m.inbound = append(m.inbound, inboundEvent{kind: inboundGoal, player: scorer})
}

// QueueCommand records a player-issued ability command. Commands are
// processed in issue order during the command step of the next tick.
func (m *Match) QueueCommand(cmd Command) {
	m.commands = append(m.commands, cmd)
}

// Advance runs one simulation tick. The step order is fixed so that,
// for example, charge granted by a goal-triggered phase bonus is
// spendable by a command issued the same tick:
//
//	1. queued rally/goal events
//	2. evolution phase checks
//	3. player ability commands
//	4. ability and chaos timer advance
//	5. chaos trigger evaluation
func (m *Match) Advance() {
	if m.Over {
		return
	}

	// 1. Rally and goal events from physics.
	for _, ev := range m.inbound {
		switch ev.kind {
		case inboundHit:
			m.applyHit(ev.player)
		case inboundGoal:
			m.applyGoal(ev.player)
		}
	}
	m.inbound = m.inbound[:0]

	// 2. Evolution phase thresholds.
	m.checkPhases()

	// 3. Player commands, in issue order.
	for _, cmd := range m.commands {
		m.processCommand(cmd)
	}
	m.commands = m.commands[:0]

	// 4. Cooldown, effect, and chaos timers.
	for _, p := range m.Players {
		p.TickAbilities(m.Config.Abilities, m.Tick)
	}
	for _, spec := range m.Chaos.TickExpiry(m.Tick) {
		m.log(log.NewChaosEndedEvent(int64(m.Tick), spec.Name))
	}

	// 5. Chaos triggers.
	for _, ev := range m.Chaos.Evaluate(m.Tick, m.Phases.Current()) {
		m.log(log.NewChaosFiredEvent(int64(m.Tick), ev.Spec.Name, int64(ev.ExpiresAtTick)))
	}

	m.Tick++
}

// applyHit credits the hitter with the rally's next charge value.
func (m *Match) applyHit(player PlayerID) {
	value := m.Rally.OnHit()
	m.log(log.NewRallyHitEvent(int64(m.Tick), int(player), m.Rally.HitCount, value))
	if value > 0 {
		balance := m.Players[player].GrantCharge(value)
		m.log(log.NewChargeChangedEvent(int64(m.Tick), int(player), balance, "rally"))
	}
}

// applyGoal scores a point, resets the rally, hands the serve to the
// scored-upon side, and checks the win conditions.
func (m *Match) applyGoal(scorer PlayerID) {
	m.Players[scorer].Score++
	m.Rally.OnGoal()
	m.lastScorer = scorer
	m.log(log.NewGoalEvent(int64(m.Tick), int(scorer),
		m.Players[PlayerA].Score, m.Players[PlayerB].Score))

	m.Server = scorer.Opponent()
	m.log(log.NewServeChangeEvent(int64(m.Tick), int(m.Server)))

	m.checkWin()
}

// checkWin applies the court rules: first to MaxScore, or a mercy win
// at MercyScore to nil.
func (m *Match) checkWin() {
	a := m.Players[PlayerA].Score
	b := m.Players[PlayerB].Score

	winner := -1
	reason := ""
	switch {
	case a >= m.Config.MaxScore:
		winner, reason = 0, "match win"
	case b >= m.Config.MaxScore:
		winner, reason = 1, "match win"
	case a >= m.Config.MercyScore && b == 0:
		winner, reason = 0, "mercy win"
	case b >= m.Config.MercyScore && a == 0:
		winner, reason = 1, "mercy win"
	}
	if winner < 0 {
		return
	}
	m.Over = true
	m.Winner = winner
	m.Result = fmt.Sprintf("%s wins %d - %d (%s)", PlayerID(winner), a, b, reason)
	m.log(log.NewMatchOverEvent(int64(m.Tick), winner, m.Result))
}

// checkPhases fires every newly reached evolution phase in order and
// grants its charge bonus per the configured bonus mode.
func (m *Match) checkPhases() {
	for _, fired := range m.Phases.Check(m.CombinedScore()) {
		m.log(log.NewPhaseEnteredEvent(int64(m.Tick), fired.Index, fired.Bonus))
		for _, p := range m.Players {
			if !m.bonusEligible(p.ID) {
				continue
			}
			balance := p.GrantCharge(fired.Bonus)
			m.log(log.NewChargeChangedEvent(int64(m.Tick), int(p.ID), balance,
				fmt.Sprintf("phase %d bonus", fired.Index+1)))
		}
	}
}

// bonusEligible applies the phase bonus mode to one player.
func (m *Match) bonusEligible(id PlayerID) bool {
	switch m.Config.Bonus {
	case BonusScorer:
		return id == m.lastScorer
	case BonusConceder:
		return id == m.lastScorer.Opponent()
	default:
		return true
	}
}

// log emits a match event through the logger.
func (m *Match) log(event log.MatchEvent) {
	m.Logger.Log(event)
}
