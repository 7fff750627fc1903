package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging match events.
type EventLogger interface {
	Log(event MatchEvent)
	Events() []MatchEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []MatchEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event MatchEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []MatchEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []MatchEvent {
	var result []MatchEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() MatchEvent {
	if len(l.events) == 0 {
		return MatchEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event MatchEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// playerName returns "A" or "B" for display, "-" when no single player acts.
func playerName(p int) string {
	switch p {
	case 0:
		return "A"
	case 1:
		return "B"
	default:
		return "-"
	}
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e MatchEvent) string {
	kind := e.Type.String()
	for len(kind) < 16 {
		kind += " "
	}
	return fmt.Sprintf("t%-6d %s| %s", e.Tick, kind, e.Detail)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []MatchEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewRallyHitEvent(tick int64, player int, hitCount int, charge int) MatchEvent {
	return MatchEvent{
		Tick:   tick,
		Player: player,
		Type:   EventRallyHit,
		Value:  int64(hitCount),
		Aux:    int64(charge),
		Detail: fmt.Sprintf("%s returns the ball (rally %d, +%d charge)", playerName(player), hitCount, charge),
	}
}

func NewGoalEvent(tick int64, scorer int, scoreA, scoreB int) MatchEvent {
	return MatchEvent{
		Tick:   tick,
		Player: scorer,
		Type:   EventGoal,
		Value:  int64(scoreA),
		Aux:    int64(scoreB),
		Detail: fmt.Sprintf("%s scores! %d - %d", playerName(scorer), scoreA, scoreB),
	}
}

func NewChargeChangedEvent(tick int64, player int, newBalance int, reason string) MatchEvent {
	return MatchEvent{
		Tick:   tick,
		Player: player,
		Type:   EventChargeChanged,
		Value:  int64(newBalance),
		Detail: fmt.Sprintf("%s charge → %d (%s)", playerName(player), newBalance, reason),
	}
}

func NewAbilityUnlockedEvent(tick int64, player int, ability string, cost int) MatchEvent {
	return MatchEvent{
		Tick:    tick,
		Player:  player,
		Type:    EventAbilityUnlocked,
		Ability: ability,
		Value:   int64(cost),
		Detail:  fmt.Sprintf("%s unlocks %s (-%d charge)", playerName(player), ability, cost),
	}
}

func NewAbilityActivatedEvent(tick int64, player int, ability string, expiresAt int64) MatchEvent {
	return MatchEvent{
		Tick:    tick,
		Player:  player,
		Type:    EventAbilityActivated,
		Ability: ability,
		Value:   expiresAt,
		Detail:  fmt.Sprintf("%s activates %s (until t%d)", playerName(player), ability, expiresAt),
	}
}

func NewAbilityRejectedEvent(tick int64, player int, ability string, reason string) MatchEvent {
	return MatchEvent{
		Tick:    tick,
		Player:  player,
		Type:    EventAbilityRejected,
		Ability: ability,
		Reason:  reason,
		Detail:  fmt.Sprintf("%s cannot use %s (%s)", playerName(player), ability, reason),
	}
}

func NewPhaseEnteredEvent(tick int64, index int, bonus int) MatchEvent {
	return MatchEvent{
		Tick:   tick,
		Player: -1,
		Type:   EventPhaseEntered,
		Value:  int64(index),
		Aux:    int64(bonus),
		Detail: fmt.Sprintf("=== Phase %d begins (+%d charge bonus) ===", index+1, bonus),
	}
}

func NewChaosFiredEvent(tick int64, name string, expiresAt int64) MatchEvent {
	return MatchEvent{
		Tick:    tick,
		Player:  -1,
		Type:    EventChaosFired,
		Ability: name,
		Value:   expiresAt,
		Detail:  fmt.Sprintf("chaos: %s erupts (until t%d)", name, expiresAt),
	}
}

func NewChaosEndedEvent(tick int64, name string) MatchEvent {
	return MatchEvent{
		Tick:    tick,
		Player:  -1,
		Type:    EventChaosEnded,
		Ability: name,
		Detail:  fmt.Sprintf("chaos: %s subsides", name),
	}
}

func NewServeChangeEvent(tick int64, server int) MatchEvent {
	return MatchEvent{
		Tick:   tick,
		Player: server,
		Type:   EventServeChange,
		Detail: fmt.Sprintf("%s serves next", playerName(server)),
	}
}

func NewMatchOverEvent(tick int64, winner int, result string) MatchEvent {
	return MatchEvent{
		Tick:   tick,
		Player: winner,
		Type:   EventMatchOver,
		Value:  int64(winner),
		Detail: result,
	}
}
