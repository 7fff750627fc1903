package mcp

import (
	"fmt"
	"strings"

	"github.com/jmadsen/voltduel/internal/match"
)

// parsePlayer maps a tool argument to a player ID. Accepts "a"/"b" in
// either case.
func parsePlayer(s string) (match.PlayerID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a":
		return match.PlayerA, nil
	case "b":
		return match.PlayerB, nil
	default:
		return 0, fmt.Errorf("player must be \"A\" or \"B\", got %q", s)
	}
}

// RegisterHit queues a paddle return for the player and advances one
// tick so the charge lands.
func (s *MatchSession) RegisterHit(player match.PlayerID) *ToolResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.match.QueueHit(player)
	return s.respond(1)
}

// RegisterGoal queues a goal for the scorer and advances one tick.
func (s *MatchSession) RegisterGoal(scorer match.PlayerID) *ToolResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.match.QueueGoal(scorer)
	return s.respond(1)
}

// Unlock queues an unlock command by ability name. Unknown names still
// go through the engine so the rejection is logged.
func (s *MatchSession) Unlock(player match.PlayerID, ability string) *ToolResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.match.QueueCommand(match.Command{
		Type:    match.CommandUnlock,
		Player:  player,
		Ability: s.abilityID(ability),
	})
	return s.respond(1)
}

// Activate queues an activation command by ability name.
func (s *MatchSession) Activate(player match.PlayerID, ability string) *ToolResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.match.QueueCommand(match.Command{
		Type:    match.CommandActivate,
		Player:  player,
		Ability: s.abilityID(ability),
	})
	return s.respond(1)
}

// AdvanceTicks steps the clock without any queued input. Cooldowns,
// effect expiry, phase checks, and chaos scheduling all run.
func (s *MatchSession) AdvanceTicks(n int) *ToolResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.respond(n)
}

// CurrentState builds a response without advancing the clock.
func (s *MatchSession) CurrentState() *ToolResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.respond(0)
}

func (s *MatchSession) abilityID(name string) match.AbilityID {
	a, err := s.match.Config.Abilities.ByName(name)
	if err != nil {
		return match.AbilityID(-1)
	}
	return a.ID
}
