package match

import "fmt"

// --- Enums ---

// PlayerID identifies one of the two paddles.
type PlayerID int

const (
	PlayerA PlayerID = iota
	PlayerB
)

func (p PlayerID) String() string {
	if p == PlayerA {
		return "A"
	}
	return "B"
}

// Opponent returns the other player.
func (p PlayerID) Opponent() PlayerID {
	return 1 - p
}

// AbilityID is a dense index into the ability catalog. Runtime ability
// state is an array keyed by AbilityID, so IDs must stay contiguous.
type AbilityID int

// SequenceMode selects how rally hit counts convert to charge.
type SequenceMode int

const (
	SequenceLinear SequenceMode = iota
	SequenceFibonacci
)

func (m SequenceMode) String() string {
	if m == SequenceFibonacci {
		return "Fibonacci"
	}
	return "Linear"
}

// Tier is the ability cost/power bracket: 1 = cheap/early, 3 = ultimate.
type Tier int

const (
	Tier1 Tier = 1
	Tier2 Tier = 2
	Tier3 Tier = 3
)

// EffectKind is the closed set of ability effects. The core only
// bookkeeps activations; physics/rendering collaborators pattern-match
// on the kind to apply the actual effect.
type EffectKind int

const (
	EffectPaddleGrow EffectKind = iota
	EffectPaddleShrinkFoe
	EffectBallSplit
	EffectBallCurve
	EffectDash
	EffectPortal
	EffectChargeMagnet
	EffectTimeDilation
)

func (e EffectKind) String() string {
	switch e {
	case EffectPaddleGrow:
		return "PaddleGrow"
	case EffectPaddleShrinkFoe:
		return "PaddleShrinkFoe"
	case EffectBallSplit:
		return "BallSplit"
	case EffectBallCurve:
		return "BallCurve"
	case EffectDash:
		return "Dash"
	case EffectPortal:
		return "Portal"
	case EffectChargeMagnet:
		return "ChargeMagnet"
	case EffectTimeDilation:
		return "TimeDilation"
	default:
		return "Unknown"
	}
}

var effectKinds = map[string]EffectKind{
	"paddle_grow":       EffectPaddleGrow,
	"paddle_shrink_foe": EffectPaddleShrinkFoe,
	"ball_split":        EffectBallSplit,
	"ball_curve":        EffectBallCurve,
	"dash":              EffectDash,
	"portal":            EffectPortal,
	"charge_magnet":     EffectChargeMagnet,
	"time_dilation":     EffectTimeDilation,
}

// ParseEffectKind maps a catalog YAML name to an EffectKind.
func ParseEffectKind(s string) (EffectKind, error) {
	k, ok := effectKinds[s]
	if !ok {
		return 0, fmt.Errorf("unknown effect kind %q", s)
	}
	return k, nil
}

// ChaosKind is the closed set of chaos event effects. Chaos events are
// always symmetric; kinds never reference a single player.
type ChaosKind int

const (
	ChaosGravityFlip ChaosKind = iota
	ChaosSpeedSurge
	ChaosFogBank
	ChaosShrinkCourt
	ChaosMirrorControls
)

func (c ChaosKind) String() string {
	switch c {
	case ChaosGravityFlip:
		return "GravityFlip"
	case ChaosSpeedSurge:
		return "SpeedSurge"
	case ChaosFogBank:
		return "FogBank"
	case ChaosShrinkCourt:
		return "ShrinkCourt"
	case ChaosMirrorControls:
		return "MirrorControls"
	default:
		return "Unknown"
	}
}

var chaosKinds = map[string]ChaosKind{
	"gravity_flip":    ChaosGravityFlip,
	"speed_surge":     ChaosSpeedSurge,
	"fog_bank":        ChaosFogBank,
	"shrink_court":    ChaosShrinkCourt,
	"mirror_controls": ChaosMirrorControls,
}

// ParseChaosKind maps a catalog YAML name to a ChaosKind.
func ParseChaosKind(s string) (ChaosKind, error) {
	k, ok := chaosKinds[s]
	if !ok {
		return 0, fmt.Errorf("unknown chaos kind %q", s)
	}
	return k, nil
}

// --- Ability definition (static, from catalog) ---

// Ability is a catalog entry. Immutable for the match lifetime.
// UnlockCost and ActivationCost are independent economies: charge is
// saved up to unlock, then spent per activation.
type Ability struct {
	ID             AbilityID
	Name           string
	Tier           Tier
	UnlockCost     int
	ActivationCost int
	CooldownTicks  int
	EffectTicks    int
	Effect         EffectKind
}

func (a *Ability) String() string {
	return a.Name
}

// --- Ability runtime state (tagged variant) ---

// AbilityStateTag discriminates the per-(player, ability) runtime state.
// Exactly one tag holds at any tick.
type AbilityStateTag int

const (
	StateLocked AbilityStateTag = iota
	StateAvailable
	StateOnCooldown
	StateActive
)

func (t AbilityStateTag) String() string {
	switch t {
	case StateLocked:
		return "Locked"
	case StateAvailable:
		return "Available"
	case StateOnCooldown:
		return "OnCooldown"
	case StateActive:
		return "Active"
	default:
		return "Unknown"
	}
}

// AbilityRuntimeState is one slot in a player's ability state table.
// ReadyAtTick is meaningful only for OnCooldown, ExpiresAtTick only for
// Active.
type AbilityRuntimeState struct {
	Tag           AbilityStateTag
	ReadyAtTick   Tick
	ExpiresAtTick Tick
}

func (s AbilityRuntimeState) String() string {
	switch s.Tag {
	case StateOnCooldown:
		return fmt.Sprintf("OnCooldown(ready %d)", s.ReadyAtTick)
	case StateActive:
		return fmt.Sprintf("Active(expires %d)", s.ExpiresAtTick)
	default:
		return s.Tag.String()
	}
}

// Tick is a discrete simulation step, the unit of all timing.
type Tick int64

// --- Chaos definitions ---

// ChaosID is a dense index into the chaos catalog.
type ChaosID int

// ChaosSpec is a chaos catalog entry. Exactly one of PeriodTicks or
// ProbabilityPerTick is set: periodic specs fire deterministically,
// probabilistic ones roll the injected RandomSource once per tick.
type ChaosSpec struct {
	ID                 ChaosID
	Name               string
	MinPhaseIndex      int
	PeriodTicks        int
	ProbabilityPerTick float64
	Kind               ChaosKind
	DurationTicks      int
}

func (c *ChaosSpec) String() string {
	return c.Name
}

// ActiveChaosEvent is a live chaos instance, owned by the scheduler and
// discarded at expiry.
type ActiveChaosEvent struct {
	Spec          *ChaosSpec
	ExpiresAtTick Tick
}

// --- Commands ---

// CommandType enumerates player-issued ability commands.
type CommandType int

const (
	CommandUnlock CommandType = iota
	CommandActivate
)

func (c CommandType) String() string {
	if c == CommandUnlock {
		return "Unlock"
	}
	return "Activate"
}

// Command is a queued player request, processed in issue order during
// the command step of each tick.
type Command struct {
	Type    CommandType
	Player  PlayerID
	Ability AbilityID
}

func (c Command) String() string {
	return fmt.Sprintf("%s %s ability %d", c.Player, c.Type, c.Ability)
}
