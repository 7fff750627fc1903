package log

// EventType enumerates all observable match events.
type EventType int

const (
	EventRallyHit EventType = iota
	EventGoal
	EventChargeChanged
	EventAbilityUnlocked
	EventAbilityActivated
	EventAbilityRejected
	EventPhaseEntered
	EventChaosFired
	EventChaosEnded
	EventServeChange
	EventMatchOver
)

func (e EventType) String() string {
	switch e {
	case EventRallyHit:
		return "RallyHit"
	case EventGoal:
		return "Goal"
	case EventChargeChanged:
		return "ChargeChanged"
	case EventAbilityUnlocked:
		return "AbilityUnlocked"
	case EventAbilityActivated:
		return "AbilityActivated"
	case EventAbilityRejected:
		return "AbilityRejected"
	case EventPhaseEntered:
		return "PhaseEntered"
	case EventChaosFired:
		return "ChaosFired"
	case EventChaosEnded:
		return "ChaosEnded"
	case EventServeChange:
		return "ServeChange"
	case EventMatchOver:
		return "MatchOver"
	default:
		return "Unknown"
	}
}

// MatchEvent represents a single observable event in a match.
//
// Value and Aux carry the structured payload for the event type:
//
//	RallyHit         Value=hit count, Aux=charge awarded
//	Goal             Value=scorer's new score
//	ChargeChanged    Value=new balance
//	AbilityActivated Value=expiresAtTick
//	PhaseEntered     Value=phase index, Aux=bonus charge
//	ChaosFired       Value=expiresAtTick
//	MatchOver        Value=winner (-1 for a draw)
type MatchEvent struct {
	Seq     int       // monotonic sequence number
	Tick    int64     // simulation tick the event fired on
	Player  int       // acting player (0=A, 1=B, -1 for both/neither)
	Type    EventType // event type
	Ability string    // ability or chaos event name (if applicable)
	Reason  string    // rejection reason token (AbilityRejected only)
	Value   int64
	Aux     int64
	Detail  string // human-readable detail string
}
