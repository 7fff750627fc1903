package match

// Builtin ability definitions. These form the default catalog when no
// YAML catalog is supplied; a catalog file can replace them wholesale.
// Costs are in charge; durations and cooldowns in ticks (60/s cadence).

// OverdrivePaddle — Tier 1. Grows your paddle for a few seconds.
func OverdrivePaddle() *Ability {
	return &Ability{
		Name:           "Overdrive Paddle",
		Tier:           Tier1,
		UnlockCost:     8,
		ActivationCost: 3,
		CooldownTicks:  120,
		EffectTicks:    180,
		Effect:         EffectPaddleGrow,
	}
}

// FlashStep — Tier 1. Short burst of paddle speed.
func FlashStep() *Ability {
	return &Ability{
		Name:           "Flash Step",
		Tier:           Tier1,
		UnlockCost:     10,
		ActivationCost: 2,
		CooldownTicks:  90,
		EffectTicks:    30,
		Effect:         EffectDash,
	}
}

// ChargeMagnet — Tier 1. Pulls loose charge pickups toward your side.
func ChargeMagnet() *Ability {
	return &Ability{
		Name:           "Charge Magnet",
		Tier:           Tier1,
		UnlockCost:     12,
		ActivationCost: 4,
		CooldownTicks:  150,
		EffectTicks:    240,
		Effect:         EffectChargeMagnet,
	}
}

// GremlinHex — Tier 2. Shrinks the opponent's paddle.
func GremlinHex() *Ability {
	return &Ability{
		Name:           "Gremlin Hex",
		Tier:           Tier2,
		UnlockCost:     25,
		ActivationCost: 6,
		CooldownTicks:  240,
		EffectTicks:    180,
		Effect:         EffectPaddleShrinkFoe,
	}
}

// SplitShot — Tier 2. The next return splits the ball in two.
func SplitShot() *Ability {
	return &Ability{
		Name:           "Split Shot",
		Tier:           Tier2,
		UnlockCost:     30,
		ActivationCost: 8,
		CooldownTicks:  300,
		EffectTicks:    60,
		Effect:         EffectBallSplit,
	}
}

// CurveballProtocol — Tier 2. Returns curve mid-flight.
func CurveballProtocol() *Ability {
	return &Ability{
		Name:           "Curveball Protocol",
		Tier:           Tier2,
		UnlockCost:     28,
		ActivationCost: 7,
		CooldownTicks:  240,
		EffectTicks:    150,
		Effect:         EffectBallCurve,
	}
}

// RiftGate — Tier 3. Opens a portal pair on the court.
func RiftGate() *Ability {
	return &Ability{
		Name:           "Rift Gate",
		Tier:           Tier3,
		UnlockCost:     60,
		ActivationCost: 12,
		CooldownTicks:  480,
		EffectTicks:    300,
		Effect:         EffectPortal,
	}
}

// ChronoBrake — Tier 3. Slows the ball near your goal line.
func ChronoBrake() *Ability {
	return &Ability{
		Name:           "Chrono Brake",
		Tier:           Tier3,
		UnlockCost:     75,
		ActivationCost: 15,
		CooldownTicks:  600,
		EffectTicks:    240,
		Effect:         EffectTimeDilation,
	}
}

// AbilityRegistry maps ability names to their constructor functions.
var AbilityRegistry = map[string]func() *Ability{
	"Overdrive Paddle":   OverdrivePaddle,
	"Flash Step":         FlashStep,
	"Charge Magnet":      ChargeMagnet,
	"Gremlin Hex":        GremlinHex,
	"Split Shot":         SplitShot,
	"Curveball Protocol": CurveballProtocol,
	"Rift Gate":          RiftGate,
	"Chrono Brake":       ChronoBrake,
}

// DefaultAbilities returns the builtin ability set in catalog order.
func DefaultAbilities() []*Ability {
	return []*Ability{
		OverdrivePaddle(),
		FlashStep(),
		ChargeMagnet(),
		GremlinHex(),
		SplitShot(),
		CurveballProtocol(),
		RiftGate(),
		ChronoBrake(),
	}
}

// Builtin chaos event definitions.

// GravityWell — periodic court-wide gravity flip once phase 2 is live.
func GravityWell() *ChaosSpec {
	return &ChaosSpec{
		Name:          "Gravity Well",
		MinPhaseIndex: 1,
		PeriodTicks:   900,
		Kind:          ChaosGravityFlip,
		DurationTicks: 240,
	}
}

// SpeedSurge — probabilistic ball speedup from the first phase.
func SpeedSurge() *ChaosSpec {
	return &ChaosSpec{
		Name:               "Speed Surge",
		MinPhaseIndex:      0,
		ProbabilityPerTick: 0.002,
		Kind:               ChaosSpeedSurge,
		DurationTicks:      180,
	}
}

// FogBank — probabilistic mid-court fog in late phases.
func FogBank() *ChaosSpec {
	return &ChaosSpec{
		Name:               "Fog Bank",
		MinPhaseIndex:      2,
		ProbabilityPerTick: 0.001,
		Kind:               ChaosFogBank,
		DurationTicks:      300,
	}
}

// CourtCrunch — periodic court shrink in the endgame phases.
func CourtCrunch() *ChaosSpec {
	return &ChaosSpec{
		Name:          "Court Crunch",
		MinPhaseIndex: 3,
		PeriodTicks:   1200,
		Kind:          ChaosShrinkCourt,
		DurationTicks: 360,
	}
}

// MirrorJinx — rare control inversion, final phase only.
func MirrorJinx() *ChaosSpec {
	return &ChaosSpec{
		Name:               "Mirror Jinx",
		MinPhaseIndex:      4,
		ProbabilityPerTick: 0.0005,
		Kind:               ChaosMirrorControls,
		DurationTicks:      120,
	}
}

// DefaultChaosSpecs returns the builtin chaos set in catalog order.
func DefaultChaosSpecs() []*ChaosSpec {
	return []*ChaosSpec{
		GravityWell(),
		SpeedSurge(),
		FogBank(),
		CourtCrunch(),
		MirrorJinx(),
	}
}
