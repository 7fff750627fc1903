package net

// Message types for the JSON protocol over TCP.

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"`

	// For "welcome"
	Session string `json:"session,omitempty"`
	Player  string `json:"player,omitempty"`

	// For "event"
	Event *EventView `json:"event,omitempty"`

	// For "state"
	State *StateView `json:"state,omitempty"`

	// For "match_over"
	Winner string `json:"winner,omitempty"`
	Result string `json:"result,omitempty"`
}

// EventView is a simplified match event for the client.
type EventView struct {
	Tick    int64  `json:"tick"`
	Player  int    `json:"player"`
	Type    string `json:"type"`
	Ability string `json:"ability,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Value   int64  `json:"value,omitempty"`
	Aux     int64  `json:"aux,omitempty"`
	Details string `json:"details"`
}

// AbilityView describes one catalog ability and its runtime state for
// a player.
type AbilityView struct {
	Name           string `json:"name"`
	Tier           int    `json:"tier"`
	UnlockCost     int    `json:"unlock_cost"`
	ActivationCost int    `json:"activation_cost"`
	State          string `json:"state"`
	ReadyAtTick    int64  `json:"ready_at_tick,omitempty"`
	ExpiresAtTick  int64  `json:"expires_at_tick,omitempty"`
}

// ChaosView describes a live chaos event.
type ChaosView struct {
	Name          string `json:"name"`
	Kind          string `json:"kind"`
	ExpiresAtTick int64  `json:"expires_at_tick"`
}

// PlayerView shows one side's economy.
type PlayerView struct {
	Score     int           `json:"score"`
	Charge    int           `json:"charge"`
	Abilities []AbilityView `json:"abilities"`
}

// StateView is the match state from one player's perspective.
type StateView struct {
	You       PlayerView  `json:"you"`
	Opponent  PlayerView  `json:"opponent"`
	Tick      int64       `json:"tick"`
	Phase     int         `json:"phase"` // highest phase index reached, -1 before the first
	RallyHits int         `json:"rally_hits"`
	YouServe  bool        `json:"you_serve"`
	Chaos     []ChaosView `json:"chaos,omitempty"`
	Over      bool        `json:"over,omitempty"`
	Result    string      `json:"result,omitempty"`
}

// --- Client → Server messages ---

// ClientMessage is the envelope for all client-to-server messages.
// "hit" and "goal" come from the sender's physics/input collaborator;
// "unlock" and "activate" are ability commands by name.
type ClientMessage struct {
	Type    string `json:"type"` // "join", "hit", "goal", "unlock", "activate", "state"
	Ability string `json:"ability,omitempty"`
}
